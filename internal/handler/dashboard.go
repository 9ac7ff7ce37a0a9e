package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Dashboard handles GET /v1/dashboard: the headline counters plus the
// ten most recent bookings.
func (h *Handler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.Stats.Stats(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load dashboard stats"})
	}
	recent, err := h.Stats.RecentBookings(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load recent bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"stats":           stats,
		"recent_bookings": recent,
	})
}
