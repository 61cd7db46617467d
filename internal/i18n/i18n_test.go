// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package i18n_test

import (
	"context"
	"testing"

	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestT(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)
	msg := i18n.T(ctx, "otp_sent")

	assert.NotEqual(t, "otp_sent", msg)
	assert.Contains(t, msg, "code")
}

func TestT_German(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.German)
	msg := i18n.T(ctx, "otp_sent")

	assert.Contains(t, msg, "Code")
}

func TestT_UnknownMessageID(t *testing.T) {
	require.NoError(t, i18n.Init())

	ctx := i18n.WithLocale(context.Background(), language.English)
	assert.Equal(t, "does_not_exist", i18n.T(ctx, "does_not_exist"))
}

func TestT_DefaultsToEnglish(t *testing.T) {
	require.NoError(t, i18n.Init())

	// No locale in context falls back to English.
	msg := i18n.T(context.Background(), "password_updated")
	assert.Contains(t, msg, "password")
}

func TestGetLocale(t *testing.T) {
	require.NoError(t, i18n.Init())

	assert.Equal(t, "en", i18n.GetLocale(context.Background()))

	ctx := i18n.WithLocale(context.Background(), language.German)
	assert.Equal(t, "de", i18n.GetLocale(ctx))
}

func TestMatchLanguage(t *testing.T) {
	tests := []struct {
		header   string
		expected string
	}{
		{"de-DE,de;q=0.9", "de"},
		{"en-US,en;q=0.9", "en"},
		{"fr-FR", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			base, _ := i18n.MatchLanguage(tt.header).Base()
			assert.Equal(t, tt.expected, base.String())
		})
	}
}
