// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package email delivers transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"codeberg.org/oliverandrich/tripwell/internal/config"
	"codeberg.org/oliverandrich/tripwell/internal/i18n"
	"github.com/wneessen/go-mail"
)

// Mailer delivers a single message. Implementations report failure to
// the caller and never retry; retrying a recovery mail means requesting
// a fresh code.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Service sends mail via SMTP using go-mail.
type Service struct {
	cfg *config.SMTPConfig
}

// NewService creates a new email service.
func NewService(cfg *config.SMTPConfig) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	return &Service{cfg: cfg}, nil
}

// RecoverySubject returns the localized subject for a recovery mail.
func RecoverySubject(ctx context.Context) string {
	return i18n.T(ctx, "recovery_email_subject")
}

// RecoveryBody returns the localized body for a recovery mail carrying
// the given passcode.
func RecoveryBody(ctx context.Context, code string, validMinutes int) string {
	return i18n.TData(ctx, "recovery_email_body", map[string]any{
		"Code":    code,
		"Minutes": validMinutes,
	})
}

// Send sends an email via SMTP.
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	// Implicit TLS (SSL) for port 465, STARTTLS for others
	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
