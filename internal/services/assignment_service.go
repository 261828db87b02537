package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/cache"
	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/logging"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

// AssignmentService owns the assignment lifecycle: attaching members to
// tasks, detaching them, and recording their status changes.
type AssignmentService struct {
	tasks       *repository.TaskRepository
	assignments *repository.AssignmentRepository
	directory   *DirectoryService
	notifier    *NotificationService
	dashboards  *cache.DashboardCache
}

func NewAssignmentService(
	tasks *repository.TaskRepository,
	assignments *repository.AssignmentRepository,
	directory *DirectoryService,
	notifier *NotificationService,
	dashboards *cache.DashboardCache,
) *AssignmentService {
	return &AssignmentService{
		tasks:       tasks,
		assignments: assignments,
		directory:   directory,
		notifier:    notifier,
		dashboards:  dashboards,
	}
}

// Assign pairs a member with a task. An existing assignment for the pair
// makes the call a no-op, so re-submitting an assignment form is safe. The
// assignment and its initial Pending status record are written in one
// transaction; the notification happens after commit and its failure never
// propagates.
func (s *AssignmentService) Assign(ctx context.Context, taskID, memberID string) (*model.TaskAssignment, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if _, err := s.directory.FindUser(ctx, memberID); err != nil {
		return nil, err
	}

	exists, err := s.assignments.ExistsByPair(ctx, taskID, memberID)
	if err != nil {
		return nil, err
	}
	if exists {
		return s.assignments.FindByPair(ctx, taskID, memberID)
	}

	assignment, err := s.assignments.CreateWithInitialUpdate(ctx, taskID, memberID)
	if err != nil {
		// A concurrent assign that won the race hits the unique index on
		// (task_id, assigned_to); the loser observes the existing row.
		if isDuplicatePair(err) {
			return s.assignments.FindByPair(ctx, taskID, memberID)
		}
		return nil, err
	}

	s.notifier.Notify(ctx, memberID, fmt.Sprintf("You have been assigned a new task %s", task.Title))
	s.invalidateDashboards(ctx, task.CreatedBy)

	return assignment, nil
}

// Unassign detaches the member from the task, removing the status records
// before the assignment itself. A missing pair is a no-op.
func (s *AssignmentService) Unassign(ctx context.Context, taskID, memberID string) error {
	assignment, err := s.assignments.FindByPair(ctx, taskID, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := s.assignments.DeleteCascade(ctx, assignment.ID); err != nil {
		return err
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err == nil {
		s.notifier.Notify(ctx, memberID, fmt.Sprintf("You have been unassigned from the task '%s'", task.Title))
		s.invalidateDashboards(ctx, task.CreatedBy)
	}

	return nil
}

// RecordStatusChange overwrites the assignment's single status record. An
// assignment without one indicates a prior partial failure; the call
// refuses to proceed rather than fabricate a record.
func (s *AssignmentService) RecordStatusChange(ctx context.Context, assignmentID string, newStatus constants.TaskStatus, comment *string, actorID string) (*model.TaskUpdate, error) {
	if !newStatus.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	assignment, err := s.assignments.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAssignmentNotFound
		}
		return nil, err
	}

	update, err := s.assignments.FindUpdateByAssignment(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logging.Logger.Errorf("assignment %s has no status record", assignmentID)
			return nil, apperrors.ErrStatusRecordMissing
		}
		return nil, err
	}

	update.Status = newStatus
	if comment != nil {
		update.Comment = comment
	}
	update.UpdatedBy = &actorID
	update.UpdatedAt = time.Now().UTC()

	if err := s.assignments.SaveUpdate(ctx, update); err != nil {
		return nil, err
	}

	if task, err := s.tasks.FindByID(ctx, assignment.TaskID); err == nil {
		s.invalidateDashboards(ctx, task.CreatedBy)
	}

	return update, nil
}

func (s *AssignmentService) ListForTask(ctx context.Context, taskID string) ([]model.TaskAssignment, error) {
	if _, err := s.tasks.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return s.assignments.ListByTask(ctx, taskID)
}

// MemberTaskFilter narrows a member's board. Date bounds apply to the task
// deadline at date granularity, inclusive.
type MemberTaskFilter struct {
	Priority *constants.TaskPriority
	Status   *constants.TaskStatus
	Search   string
	FromDate *time.Time
	ToDate   *time.Time
}

// ListMemberBoard returns the member's own assignments with their task and
// current status, newest task first.
func (s *AssignmentService) ListMemberBoard(ctx context.Context, memberID string, filter MemberTaskFilter) ([]model.TaskAssignment, error) {
	if filter.Priority != nil && !filter.Priority.Valid() {
		return nil, apperrors.ErrInvalidPriority
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if filter.FromDate != nil && filter.ToDate != nil && dateOf(*filter.FromDate).After(dateOf(*filter.ToDate)) {
		return nil, apperrors.ErrInvalidDateRange
	}

	assignments, err := s.assignments.ListByAssignee(ctx, memberID)
	if err != nil {
		return nil, err
	}

	matched := make([]model.TaskAssignment, 0, len(assignments))
	for _, a := range assignments {
		if a.Task == nil {
			continue
		}
		if filter.Priority != nil && a.Task.Priority != *filter.Priority {
			continue
		}
		if filter.Status != nil {
			if a.Update == nil || a.Update.Status != *filter.Status {
				continue
			}
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(a.Task.Title), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.FromDate != nil && dateOf(a.Task.Deadline).Before(dateOf(*filter.FromDate)) {
			continue
		}
		if filter.ToDate != nil && dateOf(a.Task.Deadline).After(dateOf(*filter.ToDate)) {
			continue
		}
		matched = append(matched, a)
	}

	return matched, nil
}

func (s *AssignmentService) invalidateDashboards(ctx context.Context, creatorID string) {
	s.dashboards.Invalidate(ctx, s.directory.DashboardViewerIDs(ctx, creatorID)...)
}

func isDuplicatePair(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
