// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models_test

import (
	"testing"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestRecoveryRequestExpired(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	req := &models.RecoveryRequest{ExpiresAt: now.Add(15 * time.Minute)}

	assert.False(t, req.Expired(now))
	assert.False(t, req.Expired(now.Add(15*time.Minute-time.Second)))
	assert.True(t, req.Expired(now.Add(15*time.Minute)))
	assert.True(t, req.Expired(now.Add(time.Hour)))
}
