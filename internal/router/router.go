// Package router maps the console's sections onto route groups. The
// section dispatch lives entirely here, separated from the business
// operations so the CRUD logic is testable without the HTTP surface.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/handler"
)

// RegisterRoutes registers every endpoint on the provided Echo instance.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.GET("/dashboard", h.Dashboard)

	c := v1.Group("/customers")
	c.GET("", h.ListCustomers)
	c.GET("/options", h.CustomerOptions)
	c.POST("", h.CreateCustomer)
	c.GET("/:id", h.GetCustomer)
	c.PUT("/:id", h.UpdateCustomer)
	c.DELETE("/:id", h.DeleteCustomer)

	ev := v1.Group("/events")
	ev.GET("", h.ListEvents)
	ev.GET("/options", h.EventOptions)
	ev.POST("", h.CreateEvent)
	ev.GET("/:id", h.GetEvent)
	ev.PUT("/:id", h.UpdateEvent)
	ev.DELETE("/:id", h.DeleteEvent)

	v1.GET("/organizers", h.ListOrganizers)

	b := v1.Group("/bookings")
	b.GET("", h.ListBookings)
	b.GET("/options", h.BookingOptions)
	b.POST("", h.CreateBooking)
	b.GET("/:id", h.GetBooking)
	b.PUT("/:id", h.UpdateBooking)
	b.DELETE("/:id", h.DeleteBooking)

	r := v1.Group("/reports")
	r.GET("/customers", h.CustomerReport)
	r.GET("/customers/export", h.CustomerReportExport)
	r.GET("/events", h.EventReport)
	r.GET("/events/export", h.EventReportExport)
	r.GET("/theaters", h.TheaterReport)
	r.GET("/theaters/export", h.TheaterReportExport)
}
