// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"sync"
	"testing"

	"codeberg.org/oliverandrich/tripwell/internal/database"
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/models"
	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"
)

// PasswordHash is a bcrypt hash of "correct horse battery staple" used
// as a placeholder for test users.
const PasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// NewTestDB creates an in-memory SQLite database for tests.
// Returns both the database connection and the repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	repo := repository.New(db)
	return db, repo
}

// NewTestUser creates a test user in the database.
func NewTestUser(t *testing.T, repo *repository.Repository, email string) *models.User {
	t.Helper()
	ctx := context.Background()
	user, err := repo.CreateUser(ctx, email, PasswordHash)
	require.NoError(t, err)
	return user
}

var i18nOnce sync.Once

// InitI18n loads the translation bundle once for the test binary.
func InitI18n(t *testing.T) {
	t.Helper()
	i18nOnce.Do(func() {
		require.NoError(t, i18n.Init())
	})
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// Mailer is an in-memory Mailer that records sent messages. Setting Err
// makes every Send fail with that error.
type Mailer struct {
	mu   sync.Mutex
	Err  error
	Sent []SentMail
}

// SentMail is one recorded message.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// Send records the message or fails with the configured error.
func (m *Mailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// LastSent returns the most recently recorded message.
func (m *Mailer) LastSent(t *testing.T) SentMail {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	require.NotEmpty(t, m.Sent)
	return m.Sent[len(m.Sent)-1]
}
