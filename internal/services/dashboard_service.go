package services

import (
	"context"
	"sort"
	"time"

	"taskpro.com/taskpro/internal/cache"
	"taskpro.com/taskpro/internal/constants"
	"taskpro.com/taskpro/internal/logging"
	repository "taskpro.com/taskpro/internal/repositories"
)

// DashboardService derives the scope-filtered counts behind the Admin and
// Manager dashboards. Nothing here is persisted; every number is computed
// from the task graph at read time, with an optional short-lived Redis
// snapshot in front.
type DashboardService struct {
	tasks      *repository.TaskRepository
	directory  *DirectoryService
	dashboards *cache.DashboardCache
}

func NewDashboardService(
	tasks *repository.TaskRepository,
	directory *DirectoryService,
	dashboards *cache.DashboardCache,
) *DashboardService {
	return &DashboardService{
		tasks:      tasks,
		directory:  directory,
		dashboards: dashboards,
	}
}

// MemberLoad is a member's count of not-yet-completed assignments, the
// workload-balance number, not a historical total.
type MemberLoad struct {
	UserID      string `json:"user_id"`
	FullName    string `json:"full_name"`
	ActiveTasks int    `json:"active_tasks"`
}

type DashboardSnapshot struct {
	PendingCount    int          `json:"pending_count"`
	InProgressCount int          `json:"in_progress_count"`
	CompletedCount  int          `json:"completed_count"`
	OverdueCount    int          `json:"overdue_count"`
	MemberLoads     []MemberLoad `json:"member_loads"`
}

// Get computes the actor's dashboard, serving a cached snapshot when one
// is fresh. Staleness up to the cache TTL is accepted.
func (s *DashboardService) Get(ctx context.Context, actorID string) (*DashboardSnapshot, error) {
	var cached DashboardSnapshot
	if s.dashboards.Get(ctx, actorID, &cached) {
		return &cached, nil
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
	snapshot := &DashboardSnapshot{MemberLoads: []MemberLoad{}}
	loads := map[string]*MemberLoad{}

	for i := range tasks {
		task := &tasks[i]

		rollup, err := RollupTask(task)
		if err != nil {
			logging.Logger.Errorf("task %s has an assignment without a status record, excluded from dashboard", task.ID)
			continue
		}

		switch rollup {
		case constants.StatusPending:
			snapshot.PendingCount++
		case constants.StatusInProgress:
			snapshot.InProgressCount++
		case constants.StatusCompleted:
			snapshot.CompletedCount++
		}

		if overdue, _ := IsOverdue(task, now); overdue {
			snapshot.OverdueCount++
		}

		for j := range task.Assignments {
			a := &task.Assignments[j]
			if a.Update == nil || a.Update.Status == constants.StatusCompleted {
				continue
			}

			load, ok := loads[a.AssignedTo]
			if !ok {
				load = &MemberLoad{UserID: a.AssignedTo}
				if a.Assignee != nil {
					load.FullName = a.Assignee.FullName
				}
				loads[a.AssignedTo] = load
			}
			load.ActiveTasks++
		}
	}

	for _, load := range loads {
		snapshot.MemberLoads = append(snapshot.MemberLoads, *load)
	}
	sort.Slice(snapshot.MemberLoads, func(i, j int) bool {
		if snapshot.MemberLoads[i].FullName != snapshot.MemberLoads[j].FullName {
			return snapshot.MemberLoads[i].FullName < snapshot.MemberLoads[j].FullName
		}
		return snapshot.MemberLoads[i].UserID < snapshot.MemberLoads[j].UserID
	})

	s.dashboards.Set(ctx, actorID, snapshot)
	return snapshot, nil
}
