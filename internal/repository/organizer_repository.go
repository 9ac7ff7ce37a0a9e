package repository

import (
	"context"
	"database/sql"

	"github.com/eventbooking/admin/internal/query"
)

// Organizer mirrors the ORGANIZER table. Only the fields the event form
// needs for its organizer dropdown are read.
type Organizer struct {
	OrganizerID uint64 `json:"organizer_id"`
	CompanyName string `json:"company_name"`
}

type OrganizerRepo struct{ DB *sql.DB }

func NewOrganizerRepo(db *sql.DB) *OrganizerRepo { return &OrganizerRepo{DB: db} }

// List returns all organizers alphabetically by company name.
func (r *OrganizerRepo) List(ctx context.Context) ([]Organizer, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT OrganizerID, CompanyName FROM ORGANIZER "+query.OrderOrganizers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Organizer{}
	for rows.Next() {
		var o Organizer
		if err := rows.Scan(&o.OrganizerID, &o.CompanyName); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
