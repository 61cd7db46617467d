// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package backend is a thin client for the external identity and booking
// backend. The primary login exchange happens there; this service only
// forwards credentials and relays the verdict.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"codeberg.org/oliverandrich/tripwell/internal/config"
)

// ErrInvalidCredentials is returned when the backend rejects a login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Identity is the account as reported by the backend after a login.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Client talks to the external backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client from configuration.
func NewClient(cfg *config.BackendConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login forwards credentials to the backend. A 401 or 403 maps to
// ErrInvalidCredentials; any other non-2xx status is an error.
func (c *Client) Login(ctx context.Context, email, password string) (*Identity, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("backend base url is empty")
	}

	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("marshaling login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling backend: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidCredentials
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var identity Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		return nil, fmt.Errorf("decoding backend response: %w", err)
	}
	return &identity, nil
}
