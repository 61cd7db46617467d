// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"net/http"

	"codeberg.org/oliverandrich/tripwell/internal/backend"
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/services/session"
	"github.com/labstack/echo/v4"
)

// AuthHandlers forwards login to the external backend and manages the
// session cookie. Password verification never happens locally.
type AuthHandlers struct {
	backend  *backend.Client
	sessions *session.Manager
}

// NewAuth creates a new AuthHandlers instance.
func NewAuth(client *backend.Client, sessions *session.Manager) *AuthHandlers {
	return &AuthHandlers{backend: client, sessions: sessions}
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login forwards the credentials to the backend and, on success, sets a
// signed session cookie.
func (h *AuthHandlers) Login(c echo.Context) error {
	var req LoginRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	identity, err := h.backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, backend.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": i18n.T(c.Request().Context(), "login_failed"),
			})
		}
		return internalError(c, err)
	}

	cookie, err := h.sessions.Create(identity.UserID, identity.Email)
	if err != nil {
		return internalError(c, err)
	}
	c.SetCookie(cookie)

	return c.JSON(http.StatusOK, identity)
}

// Logout clears the session cookie.
func (h *AuthHandlers) Logout(c echo.Context) error {
	c.SetCookie(h.sessions.Clear())
	return message(c, http.StatusOK, "logged_out")
}
