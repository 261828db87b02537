package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

// DirectoryService is the read-only view over accounts and the
// creator hierarchy. Every visibility decision in the system goes through
// its scope-root resolution.
type DirectoryService struct {
	users *repository.UserRepository
}

func NewDirectoryService(users *repository.UserRepository) *DirectoryService {
	return &DirectoryService{users: users}
}

func (s *DirectoryService) FindUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ScopeRoot resolves the identifier anchoring the actor's visibility
// subtree: an Admin anchors itself, everyone else hangs off the account
// that provisioned them.
func (s *DirectoryService) ScopeRoot(ctx context.Context, actorID string) (string, error) {
	actor, err := s.FindUser(ctx, actorID)
	if err != nil {
		return "", err
	}
	return scopeRootOf(actor), nil
}

func scopeRootOf(user *model.User) string {
	if user.Role == constants.RoleAdmin || user.CreatedBy == nil {
		return user.ID
	}
	return *user.CreatedBy
}

// ListManagedUsers returns every non-Admin account provisioned by the
// scope root.
func (s *DirectoryService) ListManagedUsers(ctx context.Context, scopeRoot string) ([]model.User, error) {
	users, err := s.users.ListByCreator(ctx, scopeRoot)
	if err != nil {
		return nil, err
	}

	managed := make([]model.User, 0, len(users))
	for _, u := range users {
		if u.Role != constants.RoleAdmin {
			managed = append(managed, u)
		}
	}
	return managed, nil
}

// ListAssignableMembers returns the Member accounts a task in this scope
// can be assigned to.
func (s *DirectoryService) ListAssignableMembers(ctx context.Context, scopeRoot string) ([]model.User, error) {
	return s.users.ListByCreatorAndRole(ctx, scopeRoot, constants.RoleMember)
}

// ListManagersOf returns the Manager accounts provisioned by the scope
// root. An Admin's task and report views include tasks these managers
// created.
func (s *DirectoryService) ListManagersOf(ctx context.Context, scopeRoot string) ([]model.User, error) {
	return s.users.ListByCreatorAndRole(ctx, scopeRoot, constants.RoleManager)
}

// VisibleCreatorIDs resolves the set of task creators the actor may see:
// always the actor itself, plus the managers an Admin has provisioned.
func (s *DirectoryService) VisibleCreatorIDs(ctx context.Context, actorID string) ([]string, error) {
	actor, err := s.FindUser(ctx, actorID)
	if err != nil {
		return nil, err
	}

	ids := []string{actor.ID}
	if actor.Role == constants.RoleAdmin {
		managers, err := s.ListManagersOf(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		for _, m := range managers {
			ids = append(ids, m.ID)
		}
	}
	return ids, nil
}

// DashboardViewerIDs resolves the users whose cached dashboards a write to
// one of creatorID's tasks can change: the creator itself plus, when the
// creator is a Manager, the Admin above it.
func (s *DirectoryService) DashboardViewerIDs(ctx context.Context, creatorID string) []string {
	ids := []string{creatorID}

	creator, err := s.users.FindByID(ctx, creatorID)
	if err != nil {
		return ids
	}
	if creator.Role != constants.RoleAdmin && creator.CreatedBy != nil {
		ids = append(ids, *creator.CreatedBy)
	}
	return ids
}
