// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/middleware"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	require.NoError(t, i18n.Init())

	tests := []struct {
		header   string
		expected string
	}{
		{"de-DE,de;q=0.9,en;q=0.8", "de"},
		{"en-US,en;q=0.9", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Accept-Language", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var locale string
			handler := middleware.Locale()(func(c echo.Context) error {
				locale = i18n.GetLocale(c.Request().Context())
				return nil
			})

			require.NoError(t, handler(c))
			assert.Contains(t, locale, tt.expected)
		})
	}
}
