package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "taskpro.com/taskpro/internal/errors"
)

func TestNotification_MarkReadIsRecipientOnly(t *testing.T) {
	env := newTestEnv(t)
	_, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	env.notifier.Notify(ctx, member.ID, "You have been assigned a new task Demo")

	notifications, err := env.notifier.List(ctx, member.ID, true)
	require.NoError(t, err)
	require.Len(t, notifications, 1)

	err = env.notifier.MarkRead(ctx, notifications[0].ID, manager.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotAllowed)

	require.NoError(t, env.notifier.MarkRead(ctx, notifications[0].ID, member.ID))

	unread, err := env.notifier.List(ctx, member.ID, true)
	require.NoError(t, err)
	assert.Len(t, unread, 0)

	all, err := env.notifier.List(ctx, member.ID, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].IsRead)

	// Marking twice stays a no-op.
	require.NoError(t, env.notifier.MarkRead(ctx, all[0].ID, member.ID))

	err = env.notifier.MarkRead(ctx, "missing", member.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)
}
