package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/constants"
	model "taskpro.com/taskpro/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, fullName, email, role string, createdBy *string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		FullName:  fullName,
		Email:     email,
		Role:      role,
		CreatedBy: createdBy,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListByCreator(ctx context.Context, creatorID string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("created_by = ?", creatorID).
		Order("full_name asc").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) ListByCreatorAndRole(ctx context.Context, creatorID, role string) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("created_by = ? AND role = ?", creatorID, role).
		Order("full_name asc").
		Find(&users).Error
	return users, err
}

// FindRootAdmin returns the seeded Admin account, the only user without a
// CreatedBy reference.
func (r *UserRepository) FindRootAdmin(ctx context.Context) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND created_by IS NULL", constants.RoleAdmin).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
