package services

import (
	"context"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

// UserService provisions accounts into the hierarchy the directory reads.
// Admins create Managers and Members, Managers create Members; the created
// account is anchored to its creator via CreatedBy.
type UserService struct {
	users     *repository.UserRepository
	directory *DirectoryService
}

func NewUserService(users *repository.UserRepository, directory *DirectoryService) *UserService {
	return &UserService{users: users, directory: directory}
}

type CreateUserInput struct {
	FullName string
	Email    string
	Role     string
}

func (s *UserService) Create(ctx context.Context, input CreateUserInput, actorID string) (*model.User, error) {
	if input.FullName == "" {
		return nil, apperrors.ErrFullNameRequired
	}
	if input.Email == "" {
		return nil, apperrors.ErrEmailRequired
	}
	if input.Role != constants.RoleManager && input.Role != constants.RoleMember {
		return nil, apperrors.ErrInvalidRole
	}

	actor, err := s.directory.FindUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case constants.RoleAdmin:
		// Admins may create either role.
	case constants.RoleManager:
		if input.Role != constants.RoleMember {
			return nil, apperrors.ErrNotAllowed
		}
	default:
		return nil, apperrors.ErrNotAllowed
	}

	return s.users.Create(ctx, input.FullName, input.Email, input.Role, &actorID)
}

// ListManaged returns the users under the actor's scope root, the list the
// assignment and report screens draw from.
func (s *UserService) ListManaged(ctx context.Context, actorID string) ([]model.User, error) {
	scopeRoot, err := s.directory.ScopeRoot(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return s.directory.ListManagedUsers(ctx, scopeRoot)
}
