package repository

import (
	"context"
	"database/sql"

	"github.com/eventbooking/admin/internal/query"
)

// Stats is the dashboard headline block.
type Stats struct {
	TotalCustomers int64   `json:"total_customers"`
	UpcomingEvents int64   `json:"upcoming_events"`
	ActiveBookings int64   `json:"active_bookings"`
	TotalRevenue   float64 `json:"total_revenue"`
}

type DashboardRepo struct{ DB *sql.DB }

func NewDashboardRepo(db *sql.DB) *DashboardRepo { return &DashboardRepo{DB: db} }

// Stats gathers the four headline counters in one round trip. Revenue
// counts confirmed and completed bookings only.
func (r *DashboardRepo) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := r.DB.QueryRowContext(ctx,
		"SELECT"+
			" (SELECT COUNT(*) FROM CUSTOMER) AS TotalCustomers,"+
			" (SELECT COUNT(*) FROM EVENT WHERE Status = 'Scheduled') AS UpcomingEvents,"+
			" (SELECT COUNT(*) FROM BOOKING WHERE BookingStatus = 'Confirmed') AS ActiveBookings,"+
			" (SELECT COALESCE(SUM(TotalAmount), 0) FROM BOOKING WHERE BookingStatus IN ('Confirmed', 'Completed')) AS TotalRevenue",
	).Scan(&s.TotalCustomers, &s.UpcomingEvents, &s.ActiveBookings, &s.TotalRevenue)
	return s, err
}

// RecentBookings returns the ten most recent bookings for the dashboard.
func (r *DashboardRepo) RecentBookings(ctx context.Context) ([]BookingRow, error) {
	q, args, err := query.Bookings("")
	if err != nil {
		return nil, err
	}
	b := BookingRepo{DB: r.DB}
	return b.scanRows(ctx, q+" LIMIT 10", args...)
}
