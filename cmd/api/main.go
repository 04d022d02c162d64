package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/handler"
	"github.com/vaultpass/passgen/internal/i18n"
	"github.com/vaultpass/passgen/internal/middleware"
	"github.com/vaultpass/passgen/internal/repository"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	if cfg.Env == "development" {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dicts, err := i18n.Load()
	if err != nil {
		slog.Error("loading dictionaries", "error", err)
		os.Exit(1)
	}

	gen := crypto.NewGenerator(nil)
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(gen, dicts), dicts)
	localeHandler := handler.NewLocaleHandler(dicts)
	pageHandler := handler.NewPageHandler(gen, dicts)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.LocaleRedirectWithDefault(cfg.DefaultLocale))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Use(middleware.OptionalJWTAuth(cfg.JWTSecret))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	r.Get("/api/v1/locales", localeHandler.HandleList)
	r.Get("/api/v1/dictionaries/{lang}", localeHandler.HandleDictionary)

	// Accounts and saved settings need the database.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err == nil {
		err = repository.Migrate(ctx, db)
	}
	if err != nil {
		slog.Warn("database unavailable, auth and settings routes disabled", "error", err)
	} else {
		defer db.Close()

		settingsRepo := repository.NewSettingsRepository(db)
		authService := service.NewAuthService(repository.NewUserRepository(db), settingsRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)
		settingsHandler := handler.NewSettingsHandler(service.NewSettingsService(settingsRepo))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(ctx, cfg.AuthRateRPS, cfg.AuthRateBurst))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/settings", settingsHandler.HandleGet)
			r.Put("/api/v1/settings", settingsHandler.HandlePut)
			r.Delete("/api/v1/settings", settingsHandler.HandleDelete)
		})
	}

	pageHandler.Mount(r)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "default_locale", cfg.DefaultLocale)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
