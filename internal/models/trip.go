// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// Trip is a bookable travel package shown on the listing pages.
// Trips are read-only content; bookings themselves are handled by the
// external backend.
type Trip struct { //nolint:govet // fieldalignment: readability over optimization
	ID          int64     `db:"id" json:"-"`
	Slug        string    `db:"slug" json:"slug"`
	Title       string    `db:"title" json:"title"`
	Destination string    `db:"destination" json:"destination"`
	PriceCents  int64     `db:"price_cents" json:"price_cents"`
	Currency    string    `db:"currency" json:"currency"`
	DepartsOn   time.Time `db:"departs_on" json:"departs_on"`
	Nights      int64     `db:"nights" json:"nights"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
