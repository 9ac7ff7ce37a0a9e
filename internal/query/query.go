// Package query assembles the SQL issued by the list views. Every
// user-influenced value travels as a bound parameter; the text produced
// here only ever contains column names from a fixed allow-list.
package query

import (
	"fmt"
	"strings"
)

// All is the filter selection meaning "no filter on this column".
const All = "All"

// Filter is one optional equality condition on a list view. A Value of ""
// or All contributes nothing; anything else becomes "col = ?" with the
// value bound.
type Filter struct {
	Column string
	Value  string
}

// Columns that may appear in a generated WHERE clause. Anything else is
// rejected before SQL is built.
var filterColumns = map[string]bool{
	"E.EventType":     true,
	"E.Status":        true,
	"B.BookingStatus": true,
}

// Enumerations backing the filter dropdowns. List handlers reject values
// outside these sets before any query is issued.
var (
	EventTypes      = []string{"Movie", "Sport", "Exhibition"}
	EventStatuses   = []string{"Scheduled", "Ongoing", "Completed", "Cancelled"}
	BookingStatuses = []string{"Confirmed", "Cancelled", "Completed"}
)

// OneOf reports whether v is a member of the given enumeration.
func OneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Where combines the active filters into a conjunctive condition and its
// bound arguments. With no active filters the condition is "1=1" so
// callers can always append it after WHERE.
func Where(filters ...Filter) (string, []any, error) {
	where := []string{}
	args := []any{}
	for _, f := range filters {
		if f.Value == "" || f.Value == All {
			continue
		}
		if !filterColumns[f.Column] {
			return "", nil, fmt.Errorf("unknown filter column %q", f.Column)
		}
		where = append(where, f.Column+" = ?")
		args = append(args, f.Value)
	}
	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}
	return cond, args, nil
}

// Fixed default sort orders, one per list/report view.
const (
	OrderCustomers         = "ORDER BY C.CustomerID"
	OrderEvents            = "ORDER BY E.StartDateTime DESC"
	OrderBookings          = "ORDER BY B.BookingDateTime DESC"
	OrderOrganizers        = "ORDER BY CompanyName"
	OrderCustomerReport    = "ORDER BY TotalSpent DESC"
	OrderEventReport       = "ORDER BY TotalRevenue DESC"
	OrderUtilizationReport = "ORDER BY UtilizationRate DESC"
)

// Base select lists for the three entity list views. USER is a reserved
// word in MySQL and stays backtick-quoted.
const (
	customersBase = "SELECT C.CustomerID, U.FirstName, U.LastName, U.Email, U.PhoneNumber, C.LoyaltyPoints" +
		" FROM CUSTOMER C INNER JOIN `USER` U ON C.UserID = U.UserID"

	eventsBase = "SELECT E.EventID, E.Title, E.EventType, E.Status, E.Language, E.StartDateTime, E.EndDateTime, E.Duration, O.CompanyName AS Organizer" +
		" FROM EVENT E LEFT JOIN ORGANIZER O ON E.OrganizerID = O.OrganizerID"

	bookingsBase = "SELECT B.BookingID, CONCAT(U.FirstName, ' ', U.LastName) AS CustomerName, E.Title AS EventName, B.BookingDateTime, B.TotalAmount, B.BookingStatus" +
		" FROM BOOKING B" +
		" INNER JOIN CUSTOMER C ON B.CustomerID = C.CustomerID" +
		" INNER JOIN `USER` U ON C.UserID = U.UserID" +
		" INNER JOIN EVENT E ON B.EventID = E.EventID"
)

// Customers returns the customer list query. The view has no filters.
func Customers() (string, []any) {
	return customersBase + " " + OrderCustomers, nil
}

// Events returns the event list query with optional type and status
// filters ("" or All means unfiltered).
func Events(eventType, status string) (string, []any, error) {
	cond, args, err := Where(
		Filter{Column: "E.EventType", Value: eventType},
		Filter{Column: "E.Status", Value: status},
	)
	if err != nil {
		return "", nil, err
	}
	return eventsBase + " WHERE " + cond + " " + OrderEvents, args, nil
}

// Bookings returns the booking list query with an optional status filter.
func Bookings(status string) (string, []any, error) {
	cond, args, err := Where(Filter{Column: "B.BookingStatus", Value: status})
	if err != nil {
		return "", nil, err
	}
	return bookingsBase + " WHERE " + cond + " " + OrderBookings, args, nil
}
