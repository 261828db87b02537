package services

import (
	"context"
	"sort"
	"time"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/logging"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

// ReportService flattens the task/assignment graph into report rows. A
// report is a pure read: the same filter over the same data produces the
// same rows in the same order.
type ReportService struct {
	tasks     *repository.TaskRepository
	directory *DirectoryService
}

func NewReportService(tasks *repository.TaskRepository, directory *DirectoryService) *ReportService {
	return &ReportService{tasks: tasks, directory: directory}
}

// ReportFilter narrows the report. Date bounds compare against the task's
// creation date at date granularity, inclusive on both ends.
type ReportFilter struct {
	UserID   *string
	FromDate *time.Time
	ToDate   *time.Time
	Status   *constants.TaskStatus
}

// ReportRow is one (task, assignment) pair. A task with three assignees
// yields up to three rows; rows are never deduplicated.
type ReportRow struct {
	TaskTitle    string     `json:"task_title"`
	AssignedUser string     `json:"assigned_user"`
	Status       string     `json:"status"`
	CreatedDate  time.Time  `json:"created_date"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

func (s *ReportService) Generate(ctx context.Context, actorID string, filter ReportFilter) ([]ReportRow, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if filter.FromDate != nil && filter.ToDate != nil && dateOf(*filter.FromDate).After(dateOf(*filter.ToDate)) {
		return nil, apperrors.ErrInvalidDateRange
	}

	creatorIDs, err := s.directory.VisibleCreatorIDs(ctx, actorID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByCreators(ctx, creatorIDs)
	if err != nil {
		return nil, err
	}

	rows := []ReportRow{}
	for i := range tasks {
		task := &tasks[i]

		if filter.FromDate != nil && dateOf(task.CreatedAt).Before(dateOf(*filter.FromDate)) {
			continue
		}
		if filter.ToDate != nil && dateOf(task.CreatedAt).After(dateOf(*filter.ToDate)) {
			continue
		}

		assignments := make([]model.TaskAssignment, len(task.Assignments))
		copy(assignments, task.Assignments)
		sort.Slice(assignments, func(a, b int) bool {
			if !assignments[a].AssignedAt.Equal(assignments[b].AssignedAt) {
				return assignments[a].AssignedAt.Before(assignments[b].AssignedAt)
			}
			return assignments[a].ID < assignments[b].ID
		})

		for j := range assignments {
			a := &assignments[j]

			if filter.UserID != nil && a.AssignedTo != *filter.UserID {
				continue
			}
			if a.Update == nil {
				logging.Logger.Errorf("assignment %s has no status record, excluded from report", a.ID)
				continue
			}
			if filter.Status != nil && a.Update.Status != *filter.Status {
				continue
			}

			assignedUser := "N/A"
			if a.Assignee != nil {
				assignedUser = a.Assignee.FullName
			}

			// The initial Pending record carries no UpdatedBy; only a
			// member's own status change counts as an update.
			var lastUpdated *time.Time
			if a.Update.UpdatedBy != nil {
				t := a.Update.UpdatedAt
				lastUpdated = &t
			}

			rows = append(rows, ReportRow{
				TaskTitle:    task.Title,
				AssignedUser: assignedUser,
				Status:       a.Update.Status.String(),
				CreatedDate:  task.CreatedAt,
				LastUpdated:  lastUpdated,
			})
		}
	}

	return rows, nil
}
