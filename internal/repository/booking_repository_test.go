package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventbooking/admin/internal/query"
)

func bookingColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"BookingID", "CustomerName", "EventName", "BookingDateTime", "TotalAmount", "BookingStatus",
	})
}

func TestBookingListFilterByStatus(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	when := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	q, _, err := query.Bookings("Confirmed")
	require.NoError(t, err)
	mock.ExpectQuery(q).
		WithArgs("Confirmed").
		WillReturnRows(bookingColumns().
			AddRow(5, "Ada Lovelace", "Dune III", when, 50.0, "Confirmed"))

	rows, err := repo.List(context.Background(), "Confirmed")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ada Lovelace", rows[0].CustomerName)
	assert.Equal(t, 50.0, rows[0].TotalAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Status and amount travel in a single UPDATE, so a concurrent reader can
// never observe one changed without the other.
func TestBookingUpdateSingleStatement(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("UPDATE BOOKING SET BookingStatus = ?, TotalAmount = ? WHERE BookingID = ?").
		WithArgs("Cancelled", 0.0, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), 5, "Cancelled", 0.0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingCreate(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("INSERT INTO BOOKING (CustomerID, EventID, BookingDateTime, TotalAmount, BookingStatus) VALUES (?, ?, NOW(), ?, ?)").
		WithArgs(int64(7), int64(3), 50.0, "Confirmed").
		WillReturnResult(sqlmock.NewResult(21, 1))

	id, err := repo.Create(context.Background(), BookingInput{
		CustomerID: 7, EventID: 3, TotalAmount: 50.0, Status: "Confirmed",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(21), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingDelete(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	mock.ExpectExec("DELETE FROM BOOKING WHERE BookingID = ?").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingOptionsLabels(t *testing.T) {
	db, mock := newMock(t)
	repo := NewBookingRepo(db)

	when := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	q, _, err := query.Bookings("")
	require.NoError(t, err)
	mock.ExpectQuery(q).WillReturnRows(bookingColumns().
		AddRow(5, "Ada Lovelace", "Dune III", when, 50.0, "Confirmed"))

	opts, err := repo.Options(context.Background())
	require.NoError(t, err)
	require.Len(t, opts, 1)
	assert.Equal(t, "5 - Ada Lovelace - Dune III", opts[0].Label)
	assert.NoError(t, mock.ExpectationsWereMet())
}
