// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package session issues and validates the signed session cookie set
// after a successful login against the external backend. Session state
// lives entirely in the cookie; the server stores nothing.
package session

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/config"
	"github.com/gorilla/securecookie"
)

// Session is the payload carried in the session cookie.
type Session struct {
	UserID    string    `json:"user_id"` // opaque public id
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Manager creates, validates and clears session cookies.
type Manager struct {
	codec  *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewManager creates a session manager from configuration. HashKey is
// required (64 hex chars); BlockKey is optional and enables encryption.
func NewManager(cfg *config.SessionConfig) (*Manager, error) {
	hashKey, err := hex.DecodeString(cfg.HashKey)
	if err != nil || len(hashKey) != 32 {
		return nil, fmt.Errorf("session hash key must be 32 bytes hex-encoded")
	}

	var blockKey []byte
	if cfg.BlockKey != "" {
		blockKey, err = hex.DecodeString(cfg.BlockKey)
		if err != nil || len(blockKey) != 32 {
			return nil, fmt.Errorf("session block key must be 32 bytes hex-encoded")
		}
	}

	codec := securecookie.New(hashKey, blockKey)
	codec.MaxAge(cfg.MaxAge)
	codec.SetSerializer(securecookie.JSONEncoder{})

	return &Manager{
		codec:  codec,
		name:   cfg.CookieName,
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
	}, nil
}

// Create issues a signed session cookie for the given user.
func (m *Manager) Create(userID, email string) (*http.Cookie, error) {
	sess := &Session{
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}

	encoded, err := m.codec.Encode(m.name, sess)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}

	return &http.Cookie{
		Name:     m.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   m.maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Validate decodes and verifies a session cookie value.
func (m *Manager) Validate(value string) (*Session, error) {
	var sess Session
	if err := m.codec.Decode(m.name, value, &sess); err != nil {
		return nil, fmt.Errorf("decoding session: %w", err)
	}
	return &sess, nil
}

// Clear returns a cookie that expires the session immediately.
func (m *Manager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     m.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// CookieName returns the configured cookie name.
func (m *Manager) CookieName() string {
	return m.name
}
