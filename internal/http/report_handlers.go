package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskpro.com/taskpro/internal/data_models"
	"taskpro.com/taskpro/internal/http/validators"
	"taskpro.com/taskpro/pkg/export"
)

func (h *Handler) GenerateReport(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	filter, err := validators.ReportFilter(&req)
	if err != nil {
		return httpError(err)
	}

	rows, err := h.reports.Generate(c.Request().Context(), actor, filter)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(rows),
		"rows":  rows,
	})
}

func (h *Handler) ExportReport(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.ReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	filter, err := validators.ReportFilter(&req)
	if err != nil {
		return httpError(err)
	}

	rows, err := h.reports.Generate(c.Request().Context(), actor, filter)
	if err != nil {
		return httpError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="TaskReport.csv"`)
	return c.Blob(http.StatusOK, "text/csv", export.ReportCSV(rows))
}

func (h *Handler) Dashboard(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}

	snapshot, err := h.dashboards.Get(c.Request().Context(), actor)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, snapshot)
}
