// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/services/recovery"
	"github.com/labstack/echo/v4"
)

// RecoveryHandlers contains handlers for the credential-recovery flow.
type RecoveryHandlers struct {
	svc *recovery.Service
}

// NewRecovery creates a new RecoveryHandlers instance.
func NewRecovery(svc *recovery.Service) *RecoveryHandlers {
	return &RecoveryHandlers{svc: svc}
}

// ForgotPasswordRequest is the request body for requesting a reset code.
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ForgotPassword issues a passcode and mails it to the user.
func (h *RecoveryHandlers) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	if err := h.svc.IssueOTP(c.Request().Context(), req.Email); err != nil {
		return recoveryError(c, err)
	}
	return message(c, http.StatusOK, "otp_sent")
}

// VerifyOTPRequest is the request body for checking a reset code.
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// VerifyOTP checks the submitted passcode without consuming it.
func (h *RecoveryHandlers) VerifyOTP(c echo.Context) error {
	var req VerifyOTPRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	if err := h.svc.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return recoveryError(c, err)
	}
	return message(c, http.StatusOK, "otp_valid")
}

// ResetPasswordRequest is the request body for setting a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// ResetPassword consumes the passcode and updates the password.
func (h *RecoveryHandlers) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	if err := h.svc.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return recoveryError(c, err)
	}
	return message(c, http.StatusOK, "password_updated")
}

// recoveryError maps recovery service errors to HTTP responses.
func recoveryError(c echo.Context, err error) error {
	ctx := c.Request().Context()
	switch {
	case errors.Is(err, recovery.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": i18n.T(ctx, "error_user_not_found"),
		})
	case errors.Is(err, recovery.ErrInvalidOrExpiredCode):
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": i18n.T(ctx, "error_invalid_or_expired_code"),
		})
	case errors.Is(err, recovery.ErrDeliveryFailed):
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": i18n.T(ctx, "error_delivery_failed"),
		})
	default:
		return internalError(c, err)
	}
}
