package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskpro.com/taskpro/internal/cache"
	"taskpro.com/taskpro/internal/constants"
	model "taskpro.com/taskpro/internal/models"
	repository "taskpro.com/taskpro/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	// A single connection keeps every statement on the same private
	// in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.TaskAssignment{},
		&model.TaskUpdate{},
		&model.Notification{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

type testEnv struct {
	db            *gorm.DB
	users         *repository.UserRepository
	tasks         *repository.TaskRepository
	assignments   *repository.AssignmentRepository
	notifications *repository.NotificationRepository

	directory         *DirectoryService
	notifier          *NotificationService
	taskService       *TaskService
	assignmentService *AssignmentService
	dashboardService  *DashboardService
	reportService     *ReportService
	userService       *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	users := repository.NewUserRepository(db)
	tasks := repository.NewTaskRepository(db)
	assignments := repository.NewAssignmentRepository(db)
	notifications := repository.NewNotificationRepository(db)

	// No Redis in tests; the cache degrades to a no-op.
	dashboards := cache.NewDashboardCache(nil, 30)

	directory := NewDirectoryService(users)
	notifier := NewNotificationService(notifications)

	return &testEnv{
		db:                db,
		users:             users,
		tasks:             tasks,
		assignments:       assignments,
		notifications:     notifications,
		directory:         directory,
		notifier:          notifier,
		taskService:       NewTaskService(tasks, directory, dashboards),
		assignmentService: NewAssignmentService(tasks, assignments, directory, notifier, dashboards),
		dashboardService:  NewDashboardService(tasks, directory, dashboards),
		reportService:     NewReportService(tasks, directory),
		userService:       NewUserService(users, directory),
	}
}

func (e *testEnv) createUser(t *testing.T, name, email, role string, createdBy *string) *model.User {
	user, err := e.users.Create(context.Background(), name, email, role, createdBy)
	if err != nil {
		t.Fatalf("failed to create user %s: %v", name, err)
	}
	return user
}

func (e *testEnv) createTask(t *testing.T, title, creatorID string, deadline time.Time) *model.Task {
	task, err := e.tasks.Create(context.Background(), title, "desc", constants.PriorityMedium, deadline, creatorID)
	if err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}

// seedHierarchy provisions the root Admin, a Manager under it and a Member
// under the Manager.
func (e *testEnv) seedHierarchy(t *testing.T) (admin, manager, member *model.User) {
	admin = e.createUser(t, "Root Admin", "admin@example.com", constants.RoleAdmin, nil)
	manager = e.createUser(t, "Manager One", "m1@example.com", constants.RoleManager, &admin.ID)
	member = e.createUser(t, "Member One", "b1@example.com", constants.RoleMember, &manager.ID)
	return admin, manager, member
}
