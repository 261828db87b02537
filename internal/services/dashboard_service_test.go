package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpro.com/taskpro/internal/constants"
)

// Scenario from the product brief: Manager M (created by Admin A) creates
// a task with a passed deadline and assigns it to Member B, whose status
// is Pending. Admin A counts it once as Pending and once as Overdue; a
// manager under a different admin never sees it.
func TestDashboard_OverdueScenario(t *testing.T) {
	env := newTestEnv(t)
	admin, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	otherAdmin := env.createUser(t, "Other Admin", "a2@example.com", constants.RoleAdmin, nil)
	otherManager := env.createUser(t, "Manager Two", "m2@example.com", constants.RoleManager, &otherAdmin.ID)

	task := env.createTask(t, "Task X", manager.ID, time.Now().Add(-24*time.Hour))
	_, err := env.assignmentService.Assign(ctx, task.ID, member.ID)
	require.NoError(t, err)

	snapshot, err := env.dashboardService.Get(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.PendingCount)
	assert.Equal(t, 0, snapshot.InProgressCount)
	assert.Equal(t, 0, snapshot.CompletedCount)
	assert.Equal(t, 1, snapshot.OverdueCount)

	foreign, err := env.dashboardService.Get(ctx, otherManager.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, foreign.PendingCount)
	assert.Equal(t, 0, foreign.OverdueCount)
}

func TestDashboard_CountsTasksByRollup(t *testing.T) {
	env := newTestEnv(t)
	_, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	second := env.createUser(t, "Member Two", "b2@example.com", constants.RoleMember, &manager.ID)

	// Task 1: both assignees pending -> Pending.
	t1 := env.createTask(t, "T1", manager.ID, time.Now().Add(24*time.Hour))
	_, err := env.assignmentService.Assign(ctx, t1.ID, member.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.Assign(ctx, t1.ID, second.ID)
	require.NoError(t, err)

	// Task 2: one of two completed -> InProgress.
	t2 := env.createTask(t, "T2", manager.ID, time.Now().Add(24*time.Hour))
	a21, err := env.assignmentService.Assign(ctx, t2.ID, member.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.Assign(ctx, t2.ID, second.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.RecordStatusChange(ctx, a21.ID, constants.StatusCompleted, nil, member.ID)
	require.NoError(t, err)

	// Task 3: sole assignee completed -> Completed.
	t3 := env.createTask(t, "T3", manager.ID, time.Now().Add(24*time.Hour))
	a31, err := env.assignmentService.Assign(ctx, t3.ID, member.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.RecordStatusChange(ctx, a31.ID, constants.StatusCompleted, nil, member.ID)
	require.NoError(t, err)

	snapshot, err := env.dashboardService.Get(ctx, manager.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.PendingCount)
	assert.Equal(t, 1, snapshot.InProgressCount)
	assert.Equal(t, 1, snapshot.CompletedCount)
	assert.Equal(t, 0, snapshot.OverdueCount)
}

func TestDashboard_MemberLoadsExcludeCompleted(t *testing.T) {
	env := newTestEnv(t)
	_, manager, member := env.seedHierarchy(t)
	ctx := context.Background()

	second := env.createUser(t, "Member Two", "b2@example.com", constants.RoleMember, &manager.ID)

	t1 := env.createTask(t, "T1", manager.ID, time.Now().Add(24*time.Hour))
	t2 := env.createTask(t, "T2", manager.ID, time.Now().Add(24*time.Hour))

	a1, err := env.assignmentService.Assign(ctx, t1.ID, member.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.Assign(ctx, t2.ID, member.ID)
	require.NoError(t, err)
	_, err = env.assignmentService.Assign(ctx, t2.ID, second.ID)
	require.NoError(t, err)

	// Completed work drops out of the active load.
	_, err = env.assignmentService.RecordStatusChange(ctx, a1.ID, constants.StatusCompleted, nil, member.ID)
	require.NoError(t, err)

	snapshot, err := env.dashboardService.Get(ctx, manager.ID)
	require.NoError(t, err)
	require.Len(t, snapshot.MemberLoads, 2)

	loads := map[string]int{}
	for _, l := range snapshot.MemberLoads {
		loads[l.UserID] = l.ActiveTasks
	}
	assert.Equal(t, 1, loads[member.ID])
	assert.Equal(t, 1, loads[second.ID])
}
