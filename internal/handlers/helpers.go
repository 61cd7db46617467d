// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package handlers

import (
	"log/slog"
	"net/http"

	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindAndValidate binds the JSON body into req and runs the validator.
// On failure it writes a 400 response and returns false.
func bindAndValidate(c echo.Context, req any) bool {
	if err := c.Bind(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{
			"error": i18n.T(c.Request().Context(), "error_validation"),
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		_ = c.JSON(http.StatusBadRequest, map[string]string{
			"error": i18n.T(c.Request().Context(), "error_validation"),
		})
		return false
	}
	return true
}

// message writes a localized success message.
func message(c echo.Context, status int, messageID string) error {
	return c.JSON(status, map[string]string{
		"message": i18n.T(c.Request().Context(), messageID),
	})
}

// internalError logs the error and writes a generic 500 response.
func internalError(c echo.Context, err error) error {
	slog.Error("internal_error", "error", err, "path", c.Request().URL.Path)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": i18n.T(c.Request().Context(), "error_internal"),
	})
}
