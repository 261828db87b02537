package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskpro.com/taskpro/internal/constants"
	dto "taskpro.com/taskpro/internal/data_models"
	apperrors "taskpro.com/taskpro/internal/errors"
	"taskpro.com/taskpro/internal/services"
)

func (h *Handler) AssignUser(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	var req dto.AssignRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if req.UserID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user_id is required")
	}

	assignment, err := h.assignments.Assign(c.Request().Context(), c.Param("id"), req.UserID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) UnassignUser(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	if err := h.assignments.Unassign(c.Request().Context(), c.Param("id"), c.Param("userId")); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListTaskAssignments(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return err
	}

	assignments, err := h.assignments.ListForTask(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(assignments),
		"assignments": assignments,
	})
}

func (h *Handler) UpdateAssignmentStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	status, ok := constants.ParseStatus(req.Status)
	if !ok {
		return httpError(apperrors.ErrInvalidStatus)
	}

	update, err := h.assignments.RecordStatusChange(c.Request().Context(), c.Param("id"), status, req.Comment, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, update)
}

func (h *Handler) MemberBoard(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var filter services.MemberTaskFilter
	if raw := c.QueryParam("priority"); raw != "" {
		priority, ok := constants.ParsePriority(raw)
		if !ok {
			return httpError(apperrors.ErrInvalidPriority)
		}
		filter.Priority = &priority
	}
	if raw := c.QueryParam("status"); raw != "" {
		status, ok := constants.ParseStatus(raw)
		if !ok {
			return httpError(apperrors.ErrInvalidStatus)
		}
		filter.Status = &status
	}
	filter.Search = c.QueryParam("search")
	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return httpError(apperrors.ErrInvalidDateRange)
		}
		filter.FromDate = &from
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return httpError(apperrors.ErrInvalidDateRange)
		}
		filter.ToDate = &to
	}

	assignments, err := h.assignments.ListMemberBoard(c.Request().Context(), actor, filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":       len(assignments),
		"assignments": assignments,
	})
}
