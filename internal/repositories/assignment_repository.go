package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/constants"
	model "taskpro.com/taskpro/internal/models"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

func (r *AssignmentRepository) FindByID(ctx context.Context, id string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) FindByPair(ctx context.Context, taskID, userID string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).
		Preload("Update").
		First(&assignment, "task_id = ? AND assigned_to = ?", taskID, userID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *AssignmentRepository) ExistsByPair(ctx context.Context, taskID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskAssignment{}).
		Where("task_id = ? AND assigned_to = ?", taskID, userID).
		Count(&count).Error
	return count > 0, err
}

// CreateWithInitialUpdate writes the assignment and its Pending status
// record as one transaction, both stamped with the same instant. An
// assignment may never exist without its status record.
func (r *AssignmentRepository) CreateWithInitialUpdate(ctx context.Context, taskID, userID string) (*model.TaskAssignment, error) {
	now := time.Now().UTC()

	assignment := &model.TaskAssignment{
		ID:         uuid.NewString(),
		TaskID:     taskID,
		AssignedTo: userID,
		AssignedAt: now,
	}
	update := &model.TaskUpdate{
		ID:               uuid.NewString(),
		TaskAssignmentID: assignment.ID,
		Status:           constants.StatusPending,
		UpdatedAt:        now,
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(assignment).Error; err != nil {
			return err
		}
		return tx.Create(update).Error
	})
	if err != nil {
		return nil, err
	}

	assignment.Update = update
	return assignment, nil
}

// DeleteCascade removes the status records before the assignment itself,
// honoring the foreign-key direction.
func (r *AssignmentRepository) DeleteCascade(ctx context.Context, assignmentID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_assignment_id = ?", assignmentID).Delete(&model.TaskUpdate{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", assignmentID).Delete(&model.TaskAssignment{}).Error
	})
}

func (r *AssignmentRepository) FindUpdateByAssignment(ctx context.Context, assignmentID string) (*model.TaskUpdate, error) {
	var update model.TaskUpdate
	err := r.db.WithContext(ctx).
		First(&update, "task_assignment_id = ?", assignmentID).Error
	if err != nil {
		return nil, err
	}
	return &update, nil
}

func (r *AssignmentRepository) SaveUpdate(ctx context.Context, update *model.TaskUpdate) error {
	return r.db.WithContext(ctx).Save(update).Error
}

// ListByAssignee loads a member's assignments with their task and status
// record, newest task first.
func (r *AssignmentRepository) ListByAssignee(ctx context.Context, userID string) ([]model.TaskAssignment, error) {
	var assignments []model.TaskAssignment
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Update").
		Joins("JOIN tasks ON tasks.id = task_assignments.task_id").
		Where("task_assignments.assigned_to = ?", userID).
		Order("tasks.created_at desc").
		Find(&assignments).Error
	return assignments, err
}

func (r *AssignmentRepository) ListByTask(ctx context.Context, taskID string) ([]model.TaskAssignment, error) {
	var assignments []model.TaskAssignment
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Preload("Update").
		Where("task_id = ?", taskID).
		Order("assigned_at asc").
		Find(&assignments).Error
	return assignments, err
}
