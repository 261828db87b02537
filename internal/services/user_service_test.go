package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
)

func TestUserService_CreateRespectsHierarchy(t *testing.T) {
	env := newTestEnv(t)
	admin, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	created, err := env.userService.Create(ctx, CreateUserInput{
		FullName: "New Manager",
		Email:    "nm@example.com",
		Role:     constants.RoleManager,
	}, admin.ID)
	require.NoError(t, err)
	require.NotNil(t, created.CreatedBy)
	assert.Equal(t, admin.ID, *created.CreatedBy)

	created, err = env.userService.Create(ctx, CreateUserInput{
		FullName: "New Member",
		Email:    "nb@example.com",
		Role:     constants.RoleMember,
	}, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, manager.ID, *created.CreatedBy)

	// A manager cannot mint managers, and members provision nobody.
	_, err = env.userService.Create(ctx, CreateUserInput{
		FullName: "Sneaky", Email: "s@example.com", Role: constants.RoleManager,
	}, manager.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotAllowed)

	_, err = env.userService.Create(ctx, CreateUserInput{
		FullName: "Sneaky", Email: "s2@example.com", Role: constants.RoleMember,
	}, member.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotAllowed)

	// Nobody provisions admins through this path.
	_, err = env.userService.Create(ctx, CreateUserInput{
		FullName: "Root Two", Email: "r2@example.com", Role: constants.RoleAdmin,
	}, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
}

func TestUserService_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	admin, _, _ := env.seedHierarchy(t)
	ctx := context.Background()

	_, err := env.userService.Create(ctx, CreateUserInput{Email: "x@example.com", Role: constants.RoleMember}, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrFullNameRequired)

	_, err = env.userService.Create(ctx, CreateUserInput{FullName: "X", Role: constants.RoleMember}, admin.ID)
	assert.ErrorIs(t, err, apperrors.ErrEmailRequired)
}

func TestUserService_ListManaged(t *testing.T) {
	env := newTestEnv(t)
	admin, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	// The manager's managed list resolves through its scope root, the
	// admin, so it sees its peers rather than its reports.
	managed, err := env.userService.ListManaged(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, manager.ID, managed[0].ID)

	managed, err = env.userService.ListManaged(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, member.ID, managed[0].ID)

	managed, err = env.userService.ListManaged(ctx, admin.ID)
	require.NoError(t, err)
	require.Len(t, managed, 1)
	assert.Equal(t, manager.ID, managed[0].ID)
}
