// Package handler contains the HTTP handlers for each section of the
// admin console: dashboard, customers, events, bookings and reports.
// Handlers validate input, call the repositories and translate repository
// errors into JSON responses; they never build SQL themselves.
package handler

import (
	"database/sql"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/repository"
)

// Handler bundles the repositories behind the HTTP surface. All of them
// share the single injected database handle.
type Handler struct {
	Customers  *repository.CustomerRepo
	Events     *repository.EventRepo
	Organizers *repository.OrganizerRepo
	Bookings   *repository.BookingRepo
	Reports    *repository.ReportRepo
	Stats      *repository.DashboardRepo
}

// New builds a Handler with every repository bound to db.
func New(db *sql.DB) *Handler {
	return &Handler{
		Customers:  repository.NewCustomerRepo(db),
		Events:     repository.NewEventRepo(db),
		Organizers: repository.NewOrganizerRepo(db),
		Bookings:   repository.NewBookingRepo(db),
		Reports:    repository.NewReportRepo(db),
		Stats:      repository.NewDashboardRepo(db),
	}
}

// Validator adapts go-playground/validator to Echo's Validator interface.
// Validation runs before any database call, so a rejected form causes
// zero writes.
type Validator struct{ validate *validator.Validate }

func NewValidator() *Validator { return &Validator{validate: validator.New()} }

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
