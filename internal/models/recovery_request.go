// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// RecoveryRequest is one OTP issuance for a user. Rows are append-only:
// they are never deleted, only marked used or left to expire. The used
// flag moves false -> true exactly once.
type RecoveryRequest struct { //nolint:govet // fieldalignment: readability over optimization
	ID        int64      `db:"id" json:"id"`
	UserID    int64      `db:"user_id" json:"user_id"`
	OTP       string     `db:"otp" json:"-"`
	ExpiresAt time.Time  `db:"expires_at" json:"expires_at"`
	Used      bool       `db:"used" json:"used"`
	UsedAt    *time.Time `db:"used_at" json:"used_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

// Expired reports whether the request is past its expiry at the given time.
func (r *RecoveryRequest) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
