package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eventbooking/admin/internal/query"
)

// EventRow is one line of the event list view, with the organizer's
// company name resolved through the LEFT JOIN (nil when unassigned).
type EventRow struct {
	EventID       uint64    `json:"event_id"`
	Title         string    `json:"title"`
	EventType     string    `json:"event_type"`
	Status        string    `json:"status"`
	Language      *string   `json:"language"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	Duration      int       `json:"duration"`
	Organizer     *string   `json:"organizer"`
}

// Event mirrors the EVENT table and backs the update form.
type Event struct {
	EventID       uint64    `json:"event_id"`
	OrganizerID   *uint64   `json:"organizer_id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description"`
	EventType     string    `json:"event_type"`
	Status        string    `json:"status"`
	Language      *string   `json:"language"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
	Duration      int       `json:"duration"`
}

// EventInput holds the writable event fields, shared by Create and Update.
type EventInput struct {
	OrganizerID   *uint64
	Title         string
	Description   string
	EventType     string
	Status        string
	Language      string
	StartDateTime time.Time
	EndDateTime   time.Time
	Duration      int
}

type EventRepo struct{ DB *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// List returns events matching the optional type and status filters,
// most recent start time first.
func (r *EventRepo) List(ctx context.Context, eventType, status string) ([]EventRow, error) {
	q, args, err := query.Events(eventType, status)
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []EventRow{}
	for rows.Next() {
		var e EventRow
		var lang, org sql.NullString
		if err := rows.Scan(&e.EventID, &e.Title, &e.EventType, &e.Status, &lang,
			&e.StartDateTime, &e.EndDateTime, &e.Duration, &org); err != nil {
			return nil, err
		}
		if lang.Valid {
			e.Language = &lang.String
		}
		if org.Valid {
			e.Organizer = &org.String
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Options returns the selector entries, labeled "ID - Title", most recent first.
func (r *EventRepo) Options(ctx context.Context) ([]Option, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT EventID, Title FROM EVENT ORDER BY StartDateTime DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Option{}
	for rows.Next() {
		var id uint64
		var title string
		if err := rows.Scan(&id, &title); err != nil {
			return nil, err
		}
		out = append(out, Option{ID: id, Label: fmt.Sprintf("%d - %s", id, title)})
	}
	return out, rows.Err()
}

// GetByID fetches one event.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (Event, error) {
	var e Event
	var orgID sql.NullInt64
	var desc, lang sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT EventID, OrganizerID, Title, Description, EventType, Status, Language, StartDateTime, EndDateTime, Duration"+
			" FROM EVENT WHERE EventID = ?",
		id).Scan(&e.EventID, &orgID, &e.Title, &desc, &e.EventType, &e.Status, &lang,
		&e.StartDateTime, &e.EndDateTime, &e.Duration)
	if err == sql.ErrNoRows {
		return Event{}, ErrNotFound
	}
	if err != nil {
		return Event{}, err
	}
	if orgID.Valid {
		v := uint64(orgID.Int64)
		e.OrganizerID = &v
	}
	if desc.Valid {
		e.Description = &desc.String
	}
	if lang.Valid {
		e.Language = &lang.String
	}
	return e, nil
}

// Create inserts an event and returns its ID.
func (r *EventRepo) Create(ctx context.Context, in EventInput) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO EVENT (OrganizerID, Title, Description, EventType, Status, Language, StartDateTime, EndDateTime, Duration)"+
			" VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		nullableID(in.OrganizerID), in.Title, nullable(in.Description), in.EventType,
		in.Status, in.Language, in.StartDateTime, in.EndDateTime, in.Duration)
	if err != nil {
		return 0, fmt.Errorf("inserting event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// Update rewrites the editable fields of an event, scoped by primary key.
func (r *EventRepo) Update(ctx context.Context, id uint64, in EventInput) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE EVENT SET OrganizerID = ?, Title = ?, Description = ?, EventType = ?, Status = ?, Language = ?,"+
			" StartDateTime = ?, EndDateTime = ?, Duration = ? WHERE EventID = ?",
		nullableID(in.OrganizerID), in.Title, nullable(in.Description), in.EventType,
		in.Status, in.Language, in.StartDateTime, in.EndDateTime, in.Duration, id)
	if err != nil {
		return fmt.Errorf("updating event: %w", err)
	}
	return nil
}

// Delete removes an event; the schema's cascade rules remove its bookings.
func (r *EventRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM EVENT WHERE EventID = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// nullableID maps a nil pointer to SQL NULL.
func nullableID(id *uint64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*id), Valid: true}
}
