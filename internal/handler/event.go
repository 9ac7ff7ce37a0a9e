package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/query"
	"github.com/eventbooking/admin/internal/repository"
)

// eventForm is the request body shared by create and update. Title, type
// and the two timestamps are required; the rest carry the same defaults
// the add-event form prefills.
type eventForm struct {
	Title         string    `json:"title" validate:"required"`
	EventType     string    `json:"event_type" validate:"required"`
	Description   string    `json:"description"`
	Language      string    `json:"language"`
	Status        string    `json:"status"`
	StartDateTime time.Time `json:"start_datetime" validate:"required"`
	EndDateTime   time.Time `json:"end_datetime" validate:"required"`
	Duration      int       `json:"duration" validate:"gte=0"`
	OrganizerID   *uint64   `json:"organizer_id"`
}

// normalize trims, applies form defaults and checks the enumerations.
func (f *eventForm) normalize() error {
	f.Title = strings.TrimSpace(f.Title)
	f.Description = strings.TrimSpace(f.Description)
	if f.Language = strings.TrimSpace(f.Language); f.Language == "" {
		f.Language = "English"
	}
	if f.Status == "" {
		f.Status = "Scheduled"
	}
	if f.Duration == 0 {
		f.Duration = 120
	}
	if f.EventType != "" && !query.OneOf(f.EventType, query.EventTypes) {
		return errors.New("unknown event type")
	}
	if !query.OneOf(f.Status, query.EventStatuses) {
		return errors.New("unknown event status")
	}
	return nil
}

func (f *eventForm) input() repository.EventInput {
	return repository.EventInput{
		OrganizerID:   f.OrganizerID,
		Title:         f.Title,
		Description:   f.Description,
		EventType:     f.EventType,
		Status:        f.Status,
		Language:      f.Language,
		StartDateTime: f.StartDateTime,
		EndDateTime:   f.EndDateTime,
		Duration:      f.Duration,
	}
}

// ListEvents handles GET /v1/events with optional type and status
// filters. Absent or "All" means unfiltered; anything outside the
// enumerations is rejected before a query is built.
func (h *Handler) ListEvents(c echo.Context) error {
	eventType := c.QueryParam("type")
	status := c.QueryParam("status")
	if eventType != "" && eventType != query.All && !query.OneOf(eventType, query.EventTypes) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown event type filter"})
	}
	if status != "" && status != query.All && !query.OneOf(status, query.EventStatuses) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown event status filter"})
	}
	items, err := h.Events.List(c.Request().Context(), eventType, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load events"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// EventOptions handles GET /v1/events/options.
func (h *Handler) EventOptions(c echo.Context) error {
	items, err := h.Events.Options(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load events"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetEvent handles GET /v1/events/:id.
func (h *Handler) GetEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ev, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load event"})
	}
	return c.JSON(http.StatusOK, ev)
}

// CreateEvent handles POST /v1/events.
func (h *Handler) CreateEvent(c echo.Context) error {
	var body eventForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := body.normalize(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	id, err := h.Events.Create(c.Request().Context(), body.input())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create event"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"event_id": id})
}

// UpdateEvent handles PUT /v1/events/:id and rewrites the same field set
// the create form accepts.
func (h *Handler) UpdateEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body eventForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := body.normalize(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if err := c.Validate(&body); err != nil {
		return err
	}
	if _, err := h.Events.GetByID(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load event"})
	}
	if err := h.Events.Update(c.Request().Context(), id, body.input()); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update event"})
	}
	updated, err := h.Events.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load event"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteEvent handles DELETE /v1/events/:id. Related bookings disappear
// through the schema's cascade rules.
func (h *Handler) DeleteEvent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Events.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete event"})
	}
	return c.NoContent(http.StatusNoContent)
}

// ListOrganizers handles GET /v1/organizers, feeding the organizer
// dropdown on the event form.
func (h *Handler) ListOrganizers(c echo.Context) error {
	items, err := h.Organizers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load organizers"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
