package handler

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/export"
	"github.com/eventbooking/admin/internal/repository"
)

// CustomerReport handles GET /v1/reports/customers.
func (h *Handler) CustomerReport(c echo.Context) error {
	return h.renderReport(c, h.Reports.CustomerSummary, "customer")
}

// CustomerReportExport handles GET /v1/reports/customers/export.
func (h *Handler) CustomerReportExport(c echo.Context) error {
	return h.exportReport(c, h.Reports.CustomerSummary, "customer_report.csv")
}

// EventReport handles GET /v1/reports/events.
func (h *Handler) EventReport(c echo.Context) error {
	return h.renderReport(c, h.Reports.EventPerformance, "event")
}

// EventReportExport handles GET /v1/reports/events/export.
func (h *Handler) EventReportExport(c echo.Context) error {
	return h.exportReport(c, h.Reports.EventPerformance, "event_report.csv")
}

// TheaterReport handles GET /v1/reports/theaters.
func (h *Handler) TheaterReport(c echo.Context) error {
	return h.renderReport(c, h.Reports.TheaterUtilization, "theater")
}

// TheaterReportExport handles GET /v1/reports/theaters/export.
func (h *Handler) TheaterReportExport(c echo.Context) error {
	return h.exportReport(c, h.Reports.TheaterUtilization, "theater_report.csv")
}

type reportFunc func(context.Context) (repository.Table, error)

func (h *Handler) renderReport(c echo.Context, fetch reportFunc, name string) error {
	t, err := fetch(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError,
			echo.Map{"error": fmt.Sprintf("could not load %s report", name)})
	}
	return c.JSON(http.StatusOK, t)
}

// exportReport serves the same table the render endpoint shows, as a CSV
// download with the given filename.
func (h *Handler) exportReport(c echo.Context, fetch reportFunc, filename string) error {
	t, err := fetch(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not build report export"})
	}
	var buf bytes.Buffer
	if err := export.WriteTable(&buf, t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not build report export"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
