// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"fmt"
	"os"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// sources creates a value source chain combining env vars and TOML config
func sources(envKey, tomlKey string, tomlSrc altsrc.Sourcer) cli.ValueSourceChain {
	chain := cli.EnvVars(envKey)
	chain.Chain = append(chain.Chain, toml.TOML(tomlKey, tomlSrc))
	return chain
}

func main() {
	var configFile string

	tomlSrc := altsrc.NewStringPtrSourcer(&configFile)

	cmd := &cli.Command{
		Name:    "tripwell",
		Usage:   "Tripwell travel booking server",
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		Flags: []cli.Flag{
			// Config file
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Value:       "config.toml",
				Usage:       "Path to configuration file",
				Destination: &configFile,
				Sources:     cli.EnvVars("CONFIG"),
			},

			// Server settings
			&cli.StringFlag{
				Name:    "host",
				Value:   "localhost",
				Usage:   "Server host",
				Sources: sources("HOST", "server.host", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "port",
				Value:   8080,
				Usage:   "Server port",
				Sources: sources("PORT", "server.port", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "Base URL for the application",
				Sources: sources("BASE_URL", "server.base_url", tomlSrc),
			},

			// Database
			&cli.StringFlag{
				Name:    "database-dsn",
				Value:   "./data/tripwell.db",
				Usage:   "SQLite database path",
				Sources: sources("DATABASE_DSN", "database.dsn", tomlSrc),
			},

			// SMTP
			&cli.StringFlag{
				Name:    "smtp-host",
				Usage:   "SMTP server host",
				Sources: sources("SMTP_HOST", "smtp.host", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "smtp-port",
				Value:   587,
				Usage:   "SMTP server port",
				Sources: sources("SMTP_PORT", "smtp.port", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "smtp-username",
				Usage:   "SMTP username",
				Sources: sources("SMTP_USERNAME", "smtp.username", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "smtp-password",
				Usage:   "SMTP password",
				Sources: sources("SMTP_PASSWORD", "smtp.password", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "smtp-from",
				Usage:   "From address for outgoing mail",
				Sources: sources("SMTP_FROM", "smtp.from", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "smtp-from-name",
				Value:   "Tripwell",
				Usage:   "Display name for outgoing mail",
				Sources: sources("SMTP_FROM_NAME", "smtp.from_name", tomlSrc),
			},
			&cli.BoolFlag{
				Name:    "smtp-tls",
				Value:   true,
				Usage:   "Require TLS for SMTP",
				Sources: sources("SMTP_TLS", "smtp.tls", tomlSrc),
			},

			// External backend
			&cli.StringFlag{
				Name:    "backend-url",
				Usage:   "Base URL of the identity/booking backend",
				Sources: sources("BACKEND_URL", "backend.url", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "backend-timeout",
				Value:   10,
				Usage:   "Backend request timeout in seconds",
				Sources: sources("BACKEND_TIMEOUT", "backend.timeout", tomlSrc),
			},

			// Session
			&cli.StringFlag{
				Name:    "session-cookie-name",
				Value:   "tripwell_session",
				Usage:   "Session cookie name",
				Sources: sources("SESSION_COOKIE_NAME", "session.cookie_name", tomlSrc),
			},
			&cli.IntFlag{
				Name:    "session-max-age",
				Value:   86400,
				Usage:   "Session max age in seconds",
				Sources: sources("SESSION_MAX_AGE", "session.max_age", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "session-hash-key",
				Usage:   "32-byte hex key for session signing",
				Sources: sources("SESSION_HASH_KEY", "session.hash_key", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "session-block-key",
				Usage:   "32-byte hex key for session encryption (optional)",
				Sources: sources("SESSION_BLOCK_KEY", "session.block_key", tomlSrc),
			},
			&cli.BoolFlag{
				Name:    "session-cookie-secure",
				Usage:   "HTTPS only cookie",
				Sources: sources("SESSION_COOKIE_SECURE", "session.cookie_secure", tomlSrc),
			},

			// Logging
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "Log level: debug, info, warn, error",
				Sources: sources("LOG_LEVEL", "log.level", tomlSrc),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Usage:   "Log format: text, json",
				Sources: sources("LOG_FORMAT", "log.format", tomlSrc),
			},
		},
		Action: runServer,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
