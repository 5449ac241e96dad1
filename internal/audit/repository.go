// Package audit records booking activity in the booking_events table.
//
// The trail is observational only: room occupancy truth lives in memory
// and is never reconstructed from these rows. Losing the table loses
// history, not state.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Booking event actions.
const (
	ActionBook            = "book"
	ActionReset           = "reset"
	ActionRandomOccupancy = "random_occupancy"
)

// Event is a single booking-activity record.
type Event struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Rooms     []int          `json:"rooms,omitempty"`
	GuestID   string         `json:"guest_id,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Filter controls which events List returns.
type Filter struct {
	Action string // optional: filter by action
	Limit  int    // default 50, max 200
	Offset int    // pagination offset
}

// ListResult contains paginated event results.
type ListResult struct {
	Events []Event `json:"events"`
	Total  int     `json:"total"`
	Limit  int     `json:"limit"`
	Offset int     `json:"offset"`
}

// Recorder is the write-side interface the booking service depends on.
type Recorder interface {
	Create(ctx context.Context, event *Event) error
}

// Repository provides full read/write access to booking events.
type Repository interface {
	Recorder
	List(ctx context.Context, filter Filter) (*ListResult, error)
}

// SQLiteRepository stores booking events in SQLite.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new booking-event repository.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts a new event. ID and CreatedAt are generated if empty.
func (r *SQLiteRepository) Create(ctx context.Context, event *Event) error {
	if event.ID == "" {
		event.ID = "evt-" + uuid.NewString()[:8]
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	rooms := "[]"
	if event.Rooms != nil {
		b, err := json.Marshal(event.Rooms)
		if err != nil {
			return fmt.Errorf("marshalling event rooms: %w", err)
		}
		rooms = string(b)
	}

	var detailsJSON any
	if event.Details != nil {
		b, err := json.Marshal(event.Details)
		if err != nil {
			return fmt.Errorf("marshalling event details: %w", err)
		}
		detailsJSON = string(b)
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO booking_events (id, action, rooms, guest_id, details, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.ID, event.Action, rooms,
		nullableString(event.GuestID), detailsJSON,
		event.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking event: %w", err)
	}

	return nil
}

// defaultListLimit and maxListLimit bound event page sizes.
const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// List returns events matching the filter, most recent first.
func (r *SQLiteRepository) List(ctx context.Context, filter Filter) (*ListResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	where := ""
	var args []any
	if filter.Action != "" {
		where = " WHERE action = ?"
		args = append(args, filter.Action)
	}

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM booking_events"+where, args...,
	).Scan(&total); err != nil {
		return nil, fmt.Errorf("counting booking events: %w", err)
	}

	query := `SELECT id, action, rooms, guest_id, details, created_at
		FROM booking_events` + where + `
		ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, append(args, filter.Limit, filter.Offset)...)
	if err != nil {
		return nil, fmt.Errorf("querying booking events: %w", err)
	}
	defer rows.Close()

	events := make([]Event, 0, filter.Limit)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating booking events: %w", err)
	}

	return &ListResult{
		Events: events,
		Total:  total,
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}, nil
}

// scanEvent reads one row into an Event, decoding the JSON columns.
func scanEvent(rows *sql.Rows) (*Event, error) {
	var (
		event     Event
		rooms     string
		guestID   sql.NullString
		details   sql.NullString
		createdAt string
	)
	if err := rows.Scan(&event.ID, &event.Action, &rooms, &guestID, &details, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning booking event: %w", err)
	}

	if err := json.Unmarshal([]byte(rooms), &event.Rooms); err != nil {
		return nil, fmt.Errorf("decoding rooms for event %s: %w", event.ID, err)
	}
	if guestID.Valid {
		event.GuestID = guestID.String
	}
	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &event.Details); err != nil {
			return nil, fmt.Errorf("decoding details for event %s: %w", event.ID, err)
		}
	}
	if ts, err := time.Parse(time.RFC3339, createdAt); err == nil {
		event.CreatedAt = ts
	}

	return &event, nil
}

// nullableString returns nil for empty strings, for nullable TEXT columns.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
