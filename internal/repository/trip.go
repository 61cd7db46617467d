// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"

	"codeberg.org/oliverandrich/tripwell/internal/models"
)

// ListTrips returns all trips ordered by departure date.
func (r *Repository) ListTrips(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.SelectContext(ctx, &trips,
		`SELECT * FROM trips ORDER BY departs_on ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// GetTripBySlug retrieves a trip by its URL slug.
func (r *Repository) GetTripBySlug(ctx context.Context, slug string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.GetContext(ctx, &trip, `SELECT * FROM trips WHERE slug = ?`, slug)
	if err != nil {
		return nil, wrapError(err)
	}
	return &trip, nil
}

// CreateTrip inserts a trip. Used by seeding and tests; listing content
// is otherwise managed out of band.
func (r *Repository) CreateTrip(ctx context.Context, trip *models.Trip) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trips (slug, title, destination, price_cents, currency, departs_on, nights)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		trip.Slug, trip.Title, trip.Destination, trip.PriceCents, trip.Currency, trip.DepartsOn.UTC(), trip.Nights)
	if err != nil {
		return err
	}
	trip.ID, err = res.LastInsertId()
	return err
}
