package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eventbooking/admin/internal/query"
)

// BookingRow is one line of the booking list view, with the customer and
// event names resolved through joins.
type BookingRow struct {
	BookingID       uint64    `json:"booking_id"`
	CustomerName    string    `json:"customer_name"`
	EventName       string    `json:"event_name"`
	BookingDateTime time.Time `json:"booking_datetime"`
	TotalAmount     float64   `json:"total_amount"`
	BookingStatus   string    `json:"booking_status"`
}

// Booking mirrors the BOOKING table and backs the update form.
type Booking struct {
	BookingID       uint64    `json:"booking_id"`
	CustomerID      uint64    `json:"customer_id"`
	EventID         uint64    `json:"event_id"`
	BookingDateTime time.Time `json:"booking_datetime"`
	TotalAmount     float64   `json:"total_amount"`
	BookingStatus   string    `json:"booking_status"`
}

// BookingInput holds the fields of a new booking. The booking timestamp
// is assigned by the database at insert time.
type BookingInput struct {
	CustomerID  uint64
	EventID     uint64
	TotalAmount float64
	Status      string
}

type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// List returns bookings matching the optional status filter, most recent
// booking first.
func (r *BookingRepo) List(ctx context.Context, status string) ([]BookingRow, error) {
	q, args, err := query.Bookings(status)
	if err != nil {
		return nil, err
	}
	return r.scanRows(ctx, q, args...)
}

func (r *BookingRepo) scanRows(ctx context.Context, q string, args ...any) ([]BookingRow, error) {
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookingRow{}
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(&b.BookingID, &b.CustomerName, &b.EventName,
			&b.BookingDateTime, &b.TotalAmount, &b.BookingStatus); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Options returns the selector entries, labeled "ID - Customer - Event".
func (r *BookingRepo) Options(ctx context.Context) ([]Option, error) {
	all, err := r.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]Option, 0, len(all))
	for _, b := range all {
		out = append(out, Option{
			ID:    b.BookingID,
			Label: fmt.Sprintf("%d - %s - %s", b.BookingID, b.CustomerName, b.EventName),
		})
	}
	return out, nil
}

// GetByID fetches one booking.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (Booking, error) {
	var b Booking
	err := r.DB.QueryRowContext(ctx,
		"SELECT BookingID, CustomerID, EventID, BookingDateTime, TotalAmount, BookingStatus FROM BOOKING WHERE BookingID = ?",
		id).Scan(&b.BookingID, &b.CustomerID, &b.EventID, &b.BookingDateTime, &b.TotalAmount, &b.BookingStatus)
	if err == sql.ErrNoRows {
		return Booking{}, ErrNotFound
	}
	if err != nil {
		return Booking{}, err
	}
	return b, nil
}

// Create inserts a booking stamped with the current time and returns its ID.
func (r *BookingRepo) Create(ctx context.Context, in BookingInput) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO BOOKING (CustomerID, EventID, BookingDateTime, TotalAmount, BookingStatus) VALUES (?, ?, NOW(), ?, ?)",
		in.CustomerID, in.EventID, in.TotalAmount, in.Status)
	if err != nil {
		return 0, fmt.Errorf("inserting booking: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update writes the booking status and total amount in a single statement,
// so a later read sees either both old or both new values.
func (r *BookingRepo) Update(ctx context.Context, id uint64, status string, amount float64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE BOOKING SET BookingStatus = ?, TotalAmount = ? WHERE BookingID = ?",
		status, amount, id)
	if err != nil {
		return fmt.Errorf("updating booking: %w", err)
	}
	return nil
}

// Delete removes a booking by primary key.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM BOOKING WHERE BookingID = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
