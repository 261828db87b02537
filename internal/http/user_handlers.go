package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskpro.com/taskpro/internal/data_models"
	"taskpro.com/taskpro/internal/services"
)

func (h *Handler) ListUsers(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	users, err := h.users.ListManaged(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(users),
		"users": users,
	})
}

func (h *Handler) CreateUser(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.users.Create(c.Request().Context(), services.CreateUserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
	}, actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	onlyUnread := c.QueryParam("all") != "true"

	notifications, err := h.notifications.List(c.Request().Context(), actor, onlyUnread)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func (h *Handler) MarkNotificationRead(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	if err := h.notifications.MarkRead(c.Request().Context(), c.Param("id"), actor); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
