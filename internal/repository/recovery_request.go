// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/models"
)

// CreateRecoveryRequest appends a new OTP issuance to the ledger.
func (r *Repository) CreateRecoveryRequest(ctx context.Context, userID int64, otp string, expiresAt time.Time) (*models.RecoveryRequest, error) {
	req := &models.RecoveryRequest{
		UserID:    userID,
		OTP:       otp,
		ExpiresAt: expiresAt.UTC(),
		CreatedAt: time.Now().UTC(),
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recovery_requests (user_id, otp, expires_at, used, created_at)
		 VALUES (?, ?, ?, 0, ?)`,
		req.UserID, req.OTP, req.ExpiresAt, req.CreatedAt)
	if err != nil {
		return nil, err
	}

	req.ID, err = res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return req, nil
}

// ActiveRecoveryRequest returns the active request for a user: the most
// recently created row that is unused and unexpired at the given time.
// Later issuances supersede earlier ones, so older coexisting codes do
// not match even while they are technically unexpired. Returns
// ErrNotFound when no row qualifies.
func (r *Repository) ActiveRecoveryRequest(ctx context.Context, userID int64, now time.Time) (*models.RecoveryRequest, error) {
	var req models.RecoveryRequest
	err := r.db.GetContext(ctx, &req,
		`SELECT * FROM recovery_requests
		 WHERE user_id = ? AND used = 0 AND expires_at > ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		userID, now.UTC())
	if err != nil {
		return nil, wrapError(err)
	}
	return &req, nil
}

// GetRecoveryRequest retrieves a single ledger row by ID.
func (r *Repository) GetRecoveryRequest(ctx context.Context, id int64) (*models.RecoveryRequest, error) {
	var req models.RecoveryRequest
	err := r.db.GetContext(ctx, &req, `SELECT * FROM recovery_requests WHERE id = ?`, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return &req, nil
}

// CountRecoveryRequests returns the number of ledger rows for a user.
func (r *Repository) CountRecoveryRequests(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM recovery_requests WHERE user_id = ?`, userID)
	return count, err
}

// ConsumeRecoveryRequestAndSetPassword marks a ledger row used and
// writes the user's new password hash in one transaction. The mark is a
// conditional update: it only touches the row if used is still 0, so of
// two racing consumers exactly one sees consumed = true and the loser
// gets consumed = false with the transaction rolled back.
func (r *Repository) ConsumeRecoveryRequestAndSetPassword(ctx context.Context, requestID, userID int64, passwordHash string) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	res, err := tx.ExecContext(ctx,
		`UPDATE recovery_requests SET used = 1, used_at = ? WHERE id = ? AND used = 0`,
		now, requestID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE id = ?`,
		passwordHash, now, userID); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return true, nil
}
