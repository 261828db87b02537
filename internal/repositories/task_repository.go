package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/constants"
	model "taskpro.com/taskpro/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

var ErrVersionConflict = errors.New("task version conflict")

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, title, description string, priority constants.TaskPriority, deadline time.Time, creatorID string) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Priority:    priority,
		Deadline:    deadline,
		CreatedBy:   creatorID,
		CreatedAt:   time.Now().UTC(),
		Version:     1,
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) FindByIDWithGraph(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignments.Assignee").
		Preload("Assignments.Update").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByCreators loads the full task graph for every task whose creator is
// in the given set, newest first.
func (r *TaskRepository) ListByCreators(ctx context.Context, creatorIDs []string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Assignments.Assignee").
		Preload("Assignments.Update").
		Where("created_by IN ?", creatorIDs).
		Order("created_at desc").
		Find(&tasks).Error
	return tasks, err
}

// Update writes the editable fields guarded by the version column. A stale
// version leaves zero rows affected and reports ErrVersionConflict.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ? AND version = ?", task.ID, task.Version).
		Updates(map[string]interface{}{
			"title":       task.Title,
			"description": task.Description,
			"priority":    task.Priority,
			"deadline":    task.Deadline,
			"updated_by":  task.UpdatedBy,
			"updated_at":  task.UpdatedAt,
			"version":     gorm.Expr("version + 1"),
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}

	task.Version++
	return nil
}

// DeleteCascade removes a task together with its assignments and their
// status records in one transaction. Cross-table cleanup is application
// managed, the schema carries no cascade rules.
func (r *TaskRepository) DeleteCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&model.TaskAssignment{}).Select("id").Where("task_id = ?", id)

		if err := tx.Where("task_assignment_id IN (?)", sub).Delete(&model.TaskUpdate{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskAssignment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Task{}).Error
	})
}
