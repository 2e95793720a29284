// Package main initializes and starts the PlotVista API server,
// setting up configuration, logging, the persistence store, services,
// and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"github.com/plotvista/plotvista/internal/ai"
	"github.com/plotvista/plotvista/internal/config"
	"github.com/plotvista/plotvista/internal/db"
	"github.com/plotvista/plotvista/internal/logger"
	"github.com/plotvista/plotvista/internal/server/handler/http"
	"github.com/plotvista/plotvista/internal/service"
	"github.com/plotvista/plotvista/internal/store"
	"github.com/plotvista/plotvista/internal/token"
	"github.com/plotvista/plotvista/internal/views"
	"go.uber.org/zap"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

// repositories is the full persistence surface the services need; both
// store backends satisfy it.
type repositories interface {
	service.PlotRepository
	service.UserRepository
	service.CredentialRepository
	service.ContactRepository
	service.RegistrationRepository
	service.InquiryRepository
}

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	if err := log.Init("Info"); err != nil {
		panic(err)
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	if options.JWTSecret == config.DefaultJWTSecret {
		zapLogger.Warn("using default JWT secret; set JWT_SECRET in production")
	}

	// Select the persistence backend: Postgres when a DSN is
	// configured, the JSON file store otherwise.
	var repos repositories
	if options.DatabaseDSN != "" {
		postgresDB, err := db.InitPostgres(options.DatabaseDSN)
		if err != nil {
			zapLogger.Fatal("cannot init database", zap.Error(err))
		}
		repos = store.NewPostgresStore(postgresDB)
		zapLogger.Info("using postgres store")
	} else {
		fileStore, err := store.NewFileStore(options.DataDir)
		if err != nil {
			zapLogger.Fatal("cannot init file store", zap.Error(err))
		}
		repos = fileStore
		zapLogger.Info("using file store", zap.String("dir", options.DataDir))
	}

	// View-invalidation signaling and session tokens.
	tracker := views.NewTracker(zapLogger)
	tokens := token.New(options.JWTSecret)

	// Initialize business-logic services.
	plotService := service.NewPlotService(repos, tracker, zapLogger)
	userService := service.NewUserService(repos, repos, tracker, zapLogger)
	contactService := service.NewContactService(repos, tracker, zapLogger)
	registrationService := service.NewRegistrationService(repos, tracker, zapLogger)
	inquiryService := service.NewInquiryService(repos, tracker, zapLogger)

	// Seed the Owner account on first run.
	if err := userService.EnsureOwner(context.Background(), options.OwnerEmail, options.OwnerPassword); err != nil {
		zapLogger.Fatal("cannot seed owner account", zap.Error(err))
	}

	// The content-generation service is optional: without an API key
	// every generation endpoint reports unavailable.
	var generator ai.Generator = ai.Disabled{}
	if options.GeminiAPIKey != "" {
		gemini, err := ai.NewGemini(context.Background(), options.GeminiAPIKey)
		if err != nil {
			zapLogger.Warn("content generation disabled", zap.Error(err))
		} else {
			generator = gemini
			zapLogger.Info("content generation enabled")
		}
	}

	// Create HTTP handlers.
	plotHandler := &http.PlotHandler{PlotService: plotService}
	authHandler := &http.AuthHandler{AuthService: userService, Tokens: tokens}
	userHandler := &http.UserHandler{UserService: userService}
	contactHandler := &http.ContactHandler{ContactService: contactService}
	registrationHandler := &http.RegistrationHandler{RegistrationService: registrationService}
	inquiryHandler := &http.InquiryHandler{InquiryService: inquiryService}
	aiHandler := &http.AIHandler{Generator: generator, PlotService: plotService}
	metaHandler := &http.MetaHandler{}
	viewsHandler := &http.ViewsHandler{Tracker: tracker}

	// Build the router with middleware and routes.
	router := http.NewRouter(plotHandler, authHandler, userHandler, contactHandler,
		registrationHandler, inquiryHandler, aiHandler, metaHandler, viewsHandler,
		tokens, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
