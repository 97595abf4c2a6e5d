package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/Shivanand-hulikatti/medcamp/internal/auth"
	"github.com/Shivanand-hulikatti/medcamp/internal/config"
	"github.com/Shivanand-hulikatti/medcamp/internal/handler"
	"github.com/Shivanand-hulikatti/medcamp/internal/payment"
	"github.com/Shivanand-hulikatti/medcamp/internal/service"
)

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

func runServe(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	log := newLogger(cfg.Log)

	// ── 1. Connect to storage ─────────────────────────────────────────────
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer st.close()
	log.Info().Str("driver", cfg.Storage.Driver).Msg("connected to storage")

	// ── 2. Wire up layers ────────────────────────────────────────────────
	gateway := payment.NewClient(
		payment.NewStripeCreator(cfg.Payment.SecretKey, cfg.Payment.Timeout, log),
		cfg.Payment.Currency,
		cfg.Payment.Timeout,
		log,
	)
	h := handler.New(handler.Deps{
		Registrations: service.NewRegistrationService(st.registrations, st.camps, st.payments, log),
		Camps:         service.NewCampService(st.camps, log),
		Users:         service.NewUserService(st.users, log),
		Feedback:      service.NewFeedbackService(st.feedback, log),
		Intents:       gateway,
		Tokens:        auth.NewIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL),
		Log:           log,
	})

	// ── 3. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger(log))     // structured access log
	r.Use(handler.CORS)

	r.Mount("/", h.Routes())

	// ── 4. Start server with graceful shutdown ────────────────────────────
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// Block until SIGINT, SIGTERM or a listener failure.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}
