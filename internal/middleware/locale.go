// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package middleware contains echo middleware shared across routes.
package middleware

import (
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"github.com/labstack/echo/v4"
)

// Locale resolves the request language from the Accept-Language header
// and stores a localizer in the request context.
func Locale() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			tag := i18n.MatchLanguage(req.Header.Get("Accept-Language"))
			c.SetRequest(req.WithContext(i18n.WithLocale(req.Context(), tag)))
			return next(c)
		}
	}
}
