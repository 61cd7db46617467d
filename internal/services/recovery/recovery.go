// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package recovery implements the credential-recovery workflow: issue a
// one-time passcode by email, verify it, and consume it exactly once to
// authorize a password change.
//
// Consumption policy: VerifyOTP is informational and does not mutate the
// ledger. ResetPassword is the single consuming step; it marks the row
// used inside the same transaction that writes the new password hash.
package recovery

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"codeberg.org/oliverandrich/tripwell/internal/services/email"
	"codeberg.org/oliverandrich/tripwell/internal/services/otp"
	"golang.org/x/crypto/bcrypt"
)

const (
	// OTPValidity is how long an issued passcode stays valid.
	OTPValidity = 15 * time.Minute
	// bcryptCost is the cost factor for password hashing.
	bcryptCost = 12
)

var (
	// ErrUserNotFound is returned when no user matches the email.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidOrExpiredCode is returned when the submitted passcode
	// does not match the active request, or the request is used or
	// expired. Callers cannot distinguish the cases.
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	// ErrDeliveryFailed is returned when the recovery mail could not be
	// sent. The ledger row is persisted regardless.
	ErrDeliveryFailed = errors.New("could not deliver recovery email")
)

// Service runs the recovery workflow against the ledger and the mailer.
type Service struct {
	repo   *repository.Repository
	mailer email.Mailer
	now    func() time.Time
}

// NewService creates a new recovery service.
func NewService(repo *repository.Repository, mailer email.Mailer) *Service {
	return NewServiceWithClock(repo, mailer, time.Now)
}

// NewServiceWithClock creates a recovery service with an injected clock.
func NewServiceWithClock(repo *repository.Repository, mailer email.Mailer, now func() time.Time) *Service {
	return &Service{repo: repo, mailer: mailer, now: now}
}

// IssueOTP generates a passcode for the user, appends it to the ledger
// and mails it. On delivery failure the ledger row remains; the code is
// valid until it expires.
func (s *Service) IssueOTP(ctx context.Context, emailAddr string) error {
	user, err := s.repo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	code, err := otp.Generate()
	if err != nil {
		return fmt.Errorf("generating passcode: %w", err)
	}

	req, err := s.repo.CreateRecoveryRequest(ctx, user.ID, code, s.now().Add(OTPValidity))
	if err != nil {
		return fmt.Errorf("creating recovery request: %w", err)
	}

	subject := email.RecoverySubject(ctx)
	body := email.RecoveryBody(ctx, code, int(OTPValidity.Minutes()))
	if err := s.mailer.Send(ctx, user.Email, subject, body); err != nil {
		slog.Error("recovery_mail_failed", "error", err, "user", user.PublicID, "request_id", req.ID)
		return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
	}

	slog.Info("recovery_otp_issued", "user", user.PublicID, "request_id", req.ID)
	return nil
}

// VerifyOTP checks the submitted passcode against the user's active
// request without consuming it. The active request is the most recently
// issued unused, unexpired one; an older coexisting code is rejected.
func (s *Service) VerifyOTP(ctx context.Context, emailAddr, code string) error {
	user, err := s.repo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	req, err := s.repo.ActiveRecoveryRequest(ctx, user.ID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidOrExpiredCode
		}
		return err
	}

	if !codesEqual(req.OTP, code) {
		return ErrInvalidOrExpiredCode
	}
	return nil
}

// ResetPassword re-validates the passcode, then marks the ledger row
// used and writes the new password hash in one transaction. Of two
// racing calls on the same row, the conditional update lets exactly one
// win; the loser fails with ErrInvalidOrExpiredCode.
func (s *Service) ResetPassword(ctx context.Context, emailAddr, code, newPassword string) error {
	user, err := s.repo.GetUserByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	req, err := s.repo.ActiveRecoveryRequest(ctx, user.ID, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidOrExpiredCode
		}
		return err
	}

	if !codesEqual(req.OTP, code) {
		return ErrInvalidOrExpiredCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	consumed, err := s.repo.ConsumeRecoveryRequestAndSetPassword(ctx, req.ID, user.ID, string(hash))
	if err != nil {
		return fmt.Errorf("consuming recovery request: %w", err)
	}
	if !consumed {
		return ErrInvalidOrExpiredCode
	}

	slog.Info("password_reset", "user", user.PublicID, "request_id", req.ID)
	return nil
}

// codesEqual compares passcodes in constant time.
func codesEqual(want, got string) bool {
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}
