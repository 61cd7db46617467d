// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package handlers contains the HTTP handlers. They bind and validate
// JSON bodies, call into services and map service errors to statuses;
// no business logic lives here.
package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"github.com/labstack/echo/v4"
)

// Handlers contains the content and health handlers.
type Handlers struct {
	repo *repository.Repository
}

// New creates a new Handlers instance.
func New(repo *repository.Repository) *Handlers {
	return &Handlers{repo: repo}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ListTrips returns all bookable trips.
func (h *Handlers) ListTrips(c echo.Context) error {
	trips, err := h.repo.ListTrips(c.Request().Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"trips": trips})
}

// GetTrip returns a single trip by slug.
func (h *Handlers) GetTrip(c echo.Context) error {
	trip, err := h.repo.GetTripBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "trip not found"})
		}
		return internalError(c, err)
	}
	return c.JSON(http.StatusOK, trip)
}
