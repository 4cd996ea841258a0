package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/fortuna/wicket/internal/store"
)

// VenueRepository handles the venue dimension
type VenueRepository struct {
	q store.Querier
}

// NewVenueRepository creates a new venue repository
func NewVenueRepository(q store.Querier) *VenueRepository {
	return &VenueRepository{q: q}
}

// GetOrCreate resolves a full venue string to its dimension id, inserting on
// first reference. The venue name is the segment before the first comma; the
// city is the segment after the last comma, absent when there is no comma.
func (r *VenueRepository) GetOrCreate(ctx context.Context, venueText string) (sql.NullInt64, error) {
	venueText = strings.TrimSpace(venueText)
	if venueText == "" {
		return sql.NullInt64{}, nil
	}

	var id int64
	err := r.q.QueryRowContext(ctx,
		`SELECT venue_id FROM dim_venues WHERE full_venue = ?`, venueText,
	).Scan(&id)
	if err == nil {
		return sql.NullInt64{Int64: id, Valid: true}, nil
	}
	if err != sql.ErrNoRows {
		return sql.NullInt64{}, fmt.Errorf("querying venue: %w", err)
	}

	parts := strings.Split(venueText, ",")
	venueName := strings.TrimSpace(parts[0])
	var city sql.NullString
	if len(parts) > 1 {
		city = sql.NullString{String: strings.TrimSpace(parts[len(parts)-1]), Valid: true}
	}

	res, err := r.q.ExecContext(ctx,
		`INSERT INTO dim_venues (venue_name, city, full_venue) VALUES (?, ?, ?)`,
		venueName, city, venueText,
	)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("inserting venue: %w", err)
	}

	id, err = res.LastInsertId()
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("reading venue id: %w", err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

// GetByID finds a venue by ID
func (r *VenueRepository) GetByID(ctx context.Context, venueID int64) (*store.Venue, error) {
	venue := &store.Venue{}
	err := r.q.QueryRowContext(ctx,
		`SELECT venue_id, venue_name, city, full_venue FROM dim_venues WHERE venue_id = ?`, venueID,
	).Scan(&venue.VenueID, &venue.VenueName, &venue.City, &venue.FullVenue)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("venue not found: %d", venueID)
	}
	if err != nil {
		return nil, fmt.Errorf("querying venue: %w", err)
	}

	return venue, nil
}
