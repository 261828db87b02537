package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "taskpro.com/taskpro/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/:id", h.GetTask)
	e.PUT("/tasks/:id", h.UpdateTask)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.POST("/tasks/:id/assignments", h.AssignUser)
	e.GET("/tasks/:id/assignments", h.ListTaskAssignments)
	e.DELETE("/tasks/:id/assignments/:userId", h.UnassignUser)
	e.PUT("/assignments/:id/status", h.UpdateAssignmentStatus)

	e.GET("/member/tasks", h.MemberBoard)
	e.GET("/dashboard", h.Dashboard)

	e.POST("/reports", h.GenerateReport)
	e.POST("/reports/export", h.ExportReport)

	e.GET("/users", h.ListUsers)
	e.POST("/users", h.CreateUser)

	e.GET("/notifications", h.ListNotifications)
	e.POST("/notifications/:id/read", h.MarkNotificationRead)
}
