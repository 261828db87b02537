package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taskpro.com/taskpro/internal/constants"
	model "taskpro.com/taskpro/internal/models"
)

func allStatusCombos(n int) [][]constants.TaskStatus {
	all := []constants.TaskStatus{
		constants.StatusPending,
		constants.StatusInProgress,
		constants.StatusCompleted,
	}

	if n == 0 {
		return [][]constants.TaskStatus{{}}
	}

	var combos [][]constants.TaskStatus
	for _, prefix := range allStatusCombos(n - 1) {
		for _, s := range all {
			combo := append(append([]constants.TaskStatus{}, prefix...), s)
			combos = append(combos, combo)
		}
	}
	return combos
}

func expectedRollup(statuses []constants.TaskStatus) constants.TaskStatus {
	allPending, allCompleted := true, true
	for _, s := range statuses {
		allPending = allPending && s == constants.StatusPending
		allCompleted = allCompleted && s == constants.StatusCompleted
	}
	if allCompleted {
		return constants.StatusCompleted
	}
	if allPending {
		return constants.StatusPending
	}
	return constants.StatusInProgress
}

func TestRollup_TruthTable(t *testing.T) {
	for n := 1; n <= 3; n++ {
		for _, combo := range allStatusCombos(n) {
			assert.Equalf(t, expectedRollup(combo), Rollup(combo),
				"rollup mismatch for statuses %v", combo)
		}
	}
}

func TestRollup_NoAssignments(t *testing.T) {
	assert.Equal(t, constants.StatusPending, Rollup(nil))
}

func taskWithStatuses(deadline time.Time, statuses ...constants.TaskStatus) *model.Task {
	task := &model.Task{ID: "t1", Deadline: deadline}
	for i, s := range statuses {
		task.Assignments = append(task.Assignments, model.TaskAssignment{
			ID:     string(rune('a' + i)),
			Update: &model.TaskUpdate{Status: s},
		})
	}
	return task
}

func TestIsOverdue(t *testing.T) {
	now := time.Now().UTC()
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	overdue, err := IsOverdue(taskWithStatuses(yesterday, constants.StatusPending), now)
	assert.NoError(t, err)
	assert.True(t, overdue, "pending work past deadline is overdue")

	overdue, err = IsOverdue(taskWithStatuses(yesterday, constants.StatusCompleted, constants.StatusCompleted), now)
	assert.NoError(t, err)
	assert.False(t, overdue, "completed work is never overdue")

	overdue, err = IsOverdue(taskWithStatuses(tomorrow, constants.StatusPending), now)
	assert.NoError(t, err)
	assert.False(t, overdue, "deadline not yet passed")

	overdue, err = IsOverdue(taskWithStatuses(yesterday), now)
	assert.NoError(t, err)
	assert.False(t, overdue, "unassigned tasks are never overdue")

	// Completing any assignment after the deadline clears the flag only
	// when the rollup reaches Completed.
	overdue, err = IsOverdue(taskWithStatuses(yesterday, constants.StatusCompleted, constants.StatusInProgress), now)
	assert.NoError(t, err)
	assert.True(t, overdue)
}

func TestRollupTask_MissingStatusRecord(t *testing.T) {
	task := &model.Task{
		ID:       "t1",
		Deadline: time.Now(),
		Assignments: []model.TaskAssignment{
			{ID: "a1", Update: nil},
		},
	}

	_, err := RollupTask(task)
	assert.Error(t, err)
}
