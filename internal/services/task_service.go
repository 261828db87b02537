package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/cache"
	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/logging"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

type TaskService struct {
	tasks      *repository.TaskRepository
	directory  *DirectoryService
	dashboards *cache.DashboardCache
}

func NewTaskService(
	tasks *repository.TaskRepository,
	directory *DirectoryService,
	dashboards *cache.DashboardCache,
) *TaskService {
	return &TaskService{
		tasks:      tasks,
		directory:  directory,
		dashboards: dashboards,
	}
}

type TaskInput struct {
	Title       string
	Description string
	Priority    constants.TaskPriority
	Deadline    time.Time
}

func validateTaskInput(input TaskInput) error {
	if input.Title == "" {
		return apperrors.ErrTitleRequired
	}
	if !input.Priority.Valid() {
		return apperrors.ErrInvalidPriority
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, input TaskInput, actorID string) (*model.Task, error) {
	if err := validateTaskInput(input); err != nil {
		return nil, err
	}
	if _, err := s.directory.FindUser(ctx, actorID); err != nil {
		return nil, err
	}

	task, err := s.tasks.Create(ctx, input.Title, input.Description, input.Priority, input.Deadline, actorID)
	if err != nil {
		return nil, err
	}

	s.invalidateDashboards(ctx, actorID)
	return task, nil
}

// Update edits the task fields guarded by the version the caller read. A
// concurrent edit surfaces as a conflict, never a silent overwrite.
func (s *TaskService) Update(ctx context.Context, id string, input TaskInput, version uint, actorID string) (*model.Task, error) {
	if err := validateTaskInput(input); err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	now := time.Now().UTC()
	task.Title = input.Title
	task.Description = input.Description
	task.Priority = input.Priority
	task.Deadline = input.Deadline
	task.UpdatedBy = &actorID
	task.UpdatedAt = &now
	task.Version = version

	if err := s.tasks.Update(ctx, task); err != nil {
		if errors.Is(err, repository.ErrVersionConflict) {
			return nil, apperrors.ErrEditConflict
		}
		return nil, err
	}

	s.invalidateDashboards(ctx, task.CreatedBy)
	return task, nil
}

// Delete removes the task and cascades over its assignments and their
// status records.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTaskNotFound
		}
		return err
	}

	if err := s.tasks.DeleteCascade(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboards(ctx, task.CreatedBy)
	return nil
}

// TaskSummary is a task with its derived state attached. Rollup and
// overdue are computed fresh on every read, never persisted.
type TaskSummary struct {
	Task    model.Task           `json:"task"`
	Rollup  constants.TaskStatus `json:"rollup"`
	Overdue bool                 `json:"overdue"`
}

func (s *TaskService) Get(ctx context.Context, id string) (*TaskSummary, error) {
	task, err := s.tasks.FindByIDWithGraph(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	rollup, err := RollupTask(task)
	if err != nil {
		logging.Logger.Errorf("task %s has an assignment without a status record", task.ID)
		return nil, err
	}
	overdue, _ := IsOverdue(task, time.Now().UTC())

	return &TaskSummary{Task: *task, Rollup: rollup, Overdue: overdue}, nil
}

type TaskListFilter struct {
	Status  *constants.TaskStatus
	Overdue *bool
}

// ListVisible returns the tasks in the actor's visibility scope: the
// actor's own tasks plus, for an Admin, tasks created by managers the
// Admin provisioned. Corrupt task graphs are logged and skipped.
func (s *TaskService) ListVisible(ctx context.Context, actorID string, filter TaskListFilter) ([]TaskSummary, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	creatorIDs, err := s.directory.VisibleCreatorIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByCreators(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summaries := make([]TaskSummary, 0, len(tasks))
	for i := range tasks {
		rollup, err := RollupTask(&tasks[i])
		if err != nil {
			logging.Logger.Errorf("task %s has an assignment without a status record, skipping", tasks[i].ID)
			continue
		}
		overdue, _ := IsOverdue(&tasks[i], now)

		if filter.Status != nil && rollup != *filter.Status {
			continue
		}
		if filter.Overdue != nil && overdue != *filter.Overdue {
			continue
		}

		summaries = append(summaries, TaskSummary{Task: tasks[i], Rollup: rollup, Overdue: overdue})
	}

	return summaries, nil
}

func (s *TaskService) invalidateDashboards(ctx context.Context, creatorID string) {
	s.dashboards.Invalidate(ctx, s.directory.DashboardViewerIDs(ctx, creatorID)...)
}
