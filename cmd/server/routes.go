// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package main

import (
	"log/slog"

	"codeberg.org/oliverandrich/tripwell/internal/backend"
	"codeberg.org/oliverandrich/tripwell/internal/config"
	"codeberg.org/oliverandrich/tripwell/internal/handlers"
	"codeberg.org/oliverandrich/tripwell/internal/metrics"
	"codeberg.org/oliverandrich/tripwell/internal/middleware"
	"codeberg.org/oliverandrich/tripwell/internal/repository"
	"codeberg.org/oliverandrich/tripwell/internal/services/recovery"
	"codeberg.org/oliverandrich/tripwell/internal/services/session"
	"github.com/labstack/echo/v4"
)

// routerDeps holds dependencies needed to set up routes
type routerDeps struct {
	cfg             *config.Config
	repo            *repository.Repository
	recoveryService *recovery.Service
	sessionManager  *session.Manager
	backendClient   *backend.Client
	logger          *slog.Logger
}

// setupRoutes configures all HTTP routes on the given echo instance
func setupRoutes(e *echo.Echo, deps *routerDeps) {
	// Global middlewares (order matters)
	e.Use(middleware.RequestLogger(deps.logger))
	e.Use(metrics.Middleware())
	e.Use(middleware.Locale())

	h := handlers.New(deps.repo)
	e.GET("/health", h.Health)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// Trip listing - public, read-only content
	api.GET("/trips", h.ListTrips)
	api.GET("/trips/:slug", h.GetTrip)

	// Login is forwarded to the external backend
	authHandler := handlers.NewAuth(deps.backendClient, deps.sessionManager)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	// Credential recovery
	recoveryHandler := handlers.NewRecovery(deps.recoveryService)
	api.POST("/auth/forgot-password", recoveryHandler.ForgotPassword)
	api.POST("/auth/verify-otp", recoveryHandler.VerifyOTP)
	api.POST("/auth/reset-password", recoveryHandler.ResetPassword)
}
