// Package export writes rendered tables as delimited text. The output
// mirrors the rendered table exactly: header row of column names, one
// line per result row, comma-separated, UTF-8, no extra formatting.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/eventbooking/admin/internal/repository"
)

// WriteTable writes t to w as CSV.
func WriteTable(w io.Writer, t repository.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
