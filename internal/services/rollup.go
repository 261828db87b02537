package services

import (
	"time"

	"taskpro.com/taskpro/internal/constants"
	apperrors "taskpro.com/taskpro/internal/errors"
	model "taskpro.com/taskpro/internal/models"
)

// Rollup derives a task's aggregate status from its assignment statuses.
// All Completed wins, all Pending stays Pending, anything mixed is
// InProgress. A task with no assignments reads as Pending.
func Rollup(statuses []constants.TaskStatus) constants.TaskStatus {
	if len(statuses) == 0 {
		return constants.StatusPending
	}

	allPending := true
	allCompleted := true
	for _, s := range statuses {
		if s != constants.StatusPending {
			allPending = false
		}
		if s != constants.StatusCompleted {
			allCompleted = false
		}
	}

	switch {
	case allCompleted:
		return constants.StatusCompleted
	case allPending:
		return constants.StatusPending
	default:
		return constants.StatusInProgress
	}
}

// assignmentStatuses collects the status of every assignment on a loaded
// task graph. An assignment without its status record is corrupt and stops
// the walk.
func assignmentStatuses(task *model.Task) ([]constants.TaskStatus, error) {
	statuses := make([]constants.TaskStatus, 0, len(task.Assignments))
	for i := range task.Assignments {
		if task.Assignments[i].Update == nil {
			return nil, apperrors.ErrStatusRecordMissing
		}
		statuses = append(statuses, task.Assignments[i].Update.Status)
	}
	return statuses, nil
}

// RollupTask computes the aggregate status of a loaded task graph.
func RollupTask(task *model.Task) (constants.TaskStatus, error) {
	statuses, err := assignmentStatuses(task)
	if err != nil {
		return 0, err
	}
	return Rollup(statuses), nil
}

// IsOverdue reports whether the task's deadline has passed without the work
// being completed. Unassigned tasks are never overdue: there is no work
// item whose completion could be late.
func IsOverdue(task *model.Task, now time.Time) (bool, error) {
	if len(task.Assignments) == 0 {
		return false, nil
	}
	if !task.Deadline.Before(now) {
		return false, nil
	}

	rollup, err := RollupTask(task)
	if err != nil {
		return false, err
	}
	return rollup != constants.StatusCompleted, nil
}
