// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package email_test

import (
	"context"
	"testing"

	"codeberg.org/oliverandrich/tripwell/internal/config"
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"codeberg.org/oliverandrich/tripwell/internal/services/email"
	"codeberg.org/oliverandrich/tripwell/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewService_RequiresHost(t *testing.T) {
	_, err := email.NewService(&config.SMTPConfig{From: "noreply@tripwell.example"})
	assert.Error(t, err)
}

func TestNewService_RequiresFrom(t *testing.T) {
	_, err := email.NewService(&config.SMTPConfig{Host: "mail.tripwell.example"})
	assert.Error(t, err)
}

func TestNewService(t *testing.T) {
	svc, err := email.NewService(&config.SMTPConfig{
		Host: "mail.tripwell.example",
		Port: 587,
		From: "noreply@tripwell.example",
	})
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestRecoveryBody_ContainsCode(t *testing.T) {
	testutil.InitI18n(t)

	body := email.RecoveryBody(context.Background(), "123456", 15)

	assert.Contains(t, body, "123456")
	assert.Contains(t, body, "15")
}

func TestRecoveryMessages_Localized(t *testing.T) {
	testutil.InitI18n(t)

	en := i18n.WithLocale(context.Background(), language.English)
	de := i18n.WithLocale(context.Background(), language.German)

	assert.NotEqual(t, email.RecoverySubject(en), email.RecoverySubject(de))
	assert.Contains(t, email.RecoveryBody(de, "123456", 15), "123456")
}
