package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"taskpro.com/taskpro/internal/constants"
	dto "taskpro.com/taskpro/internal/data_models"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/http/validators"
	"taskpro.com/taskpro/internal/services"
)

type Handler struct {
	tasks         *services.TaskService
	assignments   *services.AssignmentService
	dashboards    *services.DashboardService
	reports       *services.ReportService
	users         *services.UserService
	notifications *services.NotificationService
}

func NewHandler(
	tasks *services.TaskService,
	assignments *services.AssignmentService,
	dashboards *services.DashboardService,
	reports *services.ReportService,
	users *services.UserService,
	notifications *services.NotificationService,
) *Handler {
	return &Handler{
		tasks:         tasks,
		assignments:   assignments,
		dashboards:    dashboards,
		reports:       reports,
		users:         users,
		notifications: notifications,
	}
}

// actorID reads the identity the auth layer above placed on the request.
func actorID(c echo.Context) (string, error) {
	id := c.Request().Header.Get("X-User-ID")
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing X-User-ID header")
	}
	return id, nil
}

func httpError(err error) error {
	code := apperrors.StatusCode(err)
	var ex *apperrors.Exception
	if errors.As(err, &ex) {
		return echo.NewHTTPError(code, ex.Message)
	}
	return echo.NewHTTPError(code, "internal server error")
}

func (h *Handler) CreateTask(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	input, err := validators.TaskInput(req.Title, req.Description, req.Priority, req.Deadline)
	if err != nil {
		return httpError(err)
	}

	task, err := h.tasks.Create(c.Request().Context(), input, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var filter services.TaskListFilter
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := constants.ParseStatus(raw)
		if !ok {
			return httpError(apperrors.ErrInvalidStatus)
		}
		filter.Status = &status
	}
	if raw := c.QueryParam("overdue"); raw != "" {
		overdue := raw == "true"
		filter.Overdue = &overdue
	}

	tasks, err := h.tasks.ListVisible(c.Request().Context(), actor, filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.tasks.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	input, err := validators.TaskInput(req.Title, req.Description, req.Priority, req.Deadline)
	if err != nil {
		return httpError(err)
	}

	task, err := h.tasks.Update(c.Request().Context(), c.Param("id"), input, req.Version, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	if err := h.tasks.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
