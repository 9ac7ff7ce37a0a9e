package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/query"
	"github.com/eventbooking/admin/internal/repository"
)

// ListBookings handles GET /v1/bookings with an optional status filter.
func (h *Handler) ListBookings(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && status != query.All && !query.OneOf(status, query.BookingStatuses) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown booking status filter"})
	}
	items, err := h.Bookings.List(c.Request().Context(), status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// BookingOptions handles GET /v1/bookings/options.
func (h *Handler) BookingOptions(c echo.Context) error {
	items, err := h.Bookings.Options(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetBooking handles GET /v1/bookings/:id.
func (h *Handler) GetBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load booking"})
	}
	return c.JSON(http.StatusOK, b)
}

// CreateBooking handles POST /v1/bookings.
func (h *Handler) CreateBooking(c echo.Context) error {
	var body struct {
		CustomerID  uint64  `json:"customer_id" validate:"required"`
		EventID     uint64  `json:"event_id" validate:"required"`
		TotalAmount float64 `json:"total_amount" validate:"gte=0"`
		Status      string  `json:"status"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Status == "" {
		body.Status = "Confirmed"
	}
	if !query.OneOf(body.Status, query.BookingStatuses) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown booking status"})
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	id, err := h.Bookings.Create(c.Request().Context(), repository.BookingInput{
		CustomerID:  body.CustomerID,
		EventID:     body.EventID,
		TotalAmount: body.TotalAmount,
		Status:      body.Status,
	})
	if err != nil {
		// 1452: the referenced customer or event does not exist
		if strings.Contains(err.Error(), "1452") {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown customer or event"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create booking"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"booking_id": id})
}

// UpdateBooking handles PUT /v1/bookings/:id. Status and amount travel in
// one UPDATE so a later read never sees a mix of old and new values.
func (h *Handler) UpdateBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Status      string  `json:"status" validate:"required"`
		TotalAmount float64 `json:"total_amount" validate:"gte=0"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if !query.OneOf(body.Status, query.BookingStatuses) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown booking status"})
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	if _, err := h.Bookings.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load booking"})
	}
	if err := h.Bookings.Update(c.Request().Context(), id, body.Status, body.TotalAmount); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update booking"})
	}
	updated, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load booking"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteBooking handles DELETE /v1/bookings/:id.
func (h *Handler) DeleteBooking(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete booking"})
	}
	return c.NoContent(http.StatusNoContent)
}
