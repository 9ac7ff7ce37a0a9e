package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventbooking/admin/internal/repository"
)

// customerForm is the request body shared by create and update. First
// name, last name and email are the required fields; phone and loyalty
// points are optional.
type customerForm struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	PhoneNumber   string `json:"phone_number"`
	LoyaltyPoints int    `json:"loyalty_points" validate:"gte=0"`
}

func (f *customerForm) trim() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.Email = strings.TrimSpace(f.Email)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
}

func (f *customerForm) input() repository.CustomerInput {
	return repository.CustomerInput{
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		Phone:         f.PhoneNumber,
		LoyaltyPoints: f.LoyaltyPoints,
	}
}

// ListCustomers handles GET /v1/customers.
func (h *Handler) ListCustomers(c echo.Context) error {
	items, err := h.Customers.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load customers"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items, "total": len(items)})
}

// CustomerOptions handles GET /v1/customers/options and returns the
// selector labels for the update/delete section.
func (h *Handler) CustomerOptions(c echo.Context) error {
	items, err := h.Customers.Options(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load customers"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetCustomer handles GET /v1/customers/:id and returns the current
// values used to prefill the update form.
func (h *Handler) GetCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cust, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load customer"})
	}
	return c.JSON(http.StatusOK, cust)
}

// CreateCustomer handles POST /v1/customers. The person row, the customer
// row and the back-reference are written in one transaction.
func (h *Handler) CreateCustomer(c echo.Context) error {
	var body customerForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.trim()
	if err := c.Validate(&body); err != nil {
		return err
	}
	id, err := h.Customers.Create(c.Request().Context(), body.input())
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create customer"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"customer_id": id})
}

// UpdateCustomer handles PUT /v1/customers/:id.
func (h *Handler) UpdateCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body customerForm
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.trim()
	if err := c.Validate(&body); err != nil {
		return err
	}
	if err := h.Customers.Update(c.Request().Context(), id, body.input()); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update customer"})
		}
	}
	updated, err := h.Customers.GetByID(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load customer"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /v1/customers/:id. The schema's cascade
// rules remove the customer row and its bookings along with the person row.
func (h *Handler) DeleteCustomer(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete customer"})
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
