package repository

import (
	"context"
	"database/sql"

	"github.com/eventbooking/admin/internal/query"
)

// Table is a generic rendered result set. The report views own their
// column sets, so reports are read column-agnostically: whatever the view
// exposes is rendered and exported in that order. NULLs become empty
// strings.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ReportRepo runs the fixed, parameterless report queries against the
// read-only aggregate views. It never writes.
type ReportRepo struct{ DB *sql.DB }

func NewReportRepo(db *sql.DB) *ReportRepo { return &ReportRepo{DB: db} }

// CustomerSummary reports per-customer booking totals, highest spend first.
func (r *ReportRepo) CustomerSummary(ctx context.Context) (Table, error) {
	return r.queryTable(ctx, "SELECT * FROM vw_CustomerBookingSummary "+query.OrderCustomerReport)
}

// EventPerformance reports per-event revenue, highest revenue first.
func (r *ReportRepo) EventPerformance(ctx context.Context) (Table, error) {
	return r.queryTable(ctx, "SELECT * FROM vw_EventPerformanceDashboard "+query.OrderEventReport)
}

// TheaterUtilization reports screen utilization, highest rate first.
func (r *ReportRepo) TheaterUtilization(ctx context.Context) (Table, error) {
	return r.queryTable(ctx, "SELECT * FROM vw_TheaterScreenUtilization "+query.OrderUtilizationReport)
}

func (r *ReportRepo) queryTable(ctx context.Context, q string) (Table, error) {
	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return Table{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Table{}, err
	}

	t := Table{Columns: cols, Rows: [][]string{}}
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return Table{}, err
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}
