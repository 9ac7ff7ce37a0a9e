// Package repository defines error values shared by the entity
// repositories. Sentinel errors let handlers map database outcomes onto
// HTTP status codes without inspecting driver error strings.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an operation targets an identifier that no
// longer exists. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint, such as a customer email that is already registered.
// Handlers should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate entry")

// isDuplicate reports whether the driver error is a MySQL 1062 duplicate
// key violation.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
