package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/L-alam/amongyall-sub001/internal/adapters/handler/http"
	"github.com/L-alam/amongyall-sub001/internal/adapters/oauth/google"
	"github.com/L-alam/amongyall-sub001/internal/adapters/random"
	"github.com/L-alam/amongyall-sub001/internal/adapters/repository/memory"
	"github.com/L-alam/amongyall-sub001/internal/adapters/repository/postgres"
	"github.com/L-alam/amongyall-sub001/internal/config"
	"github.com/L-alam/amongyall-sub001/internal/core/services"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load("server", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging()

	handlers, cleanup, err := wire(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start")
	}
	defer cleanup()

	handler := http.NewHandler(handlers, cfg.JWTSecret, cfg.AllowedOrigins)
	server := &stdhttp.Server{Addr: "0.0.0.0:" + strconv.Itoa(cfg.Port), Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Int("port", cfg.Port).Str("store", cfg.Store).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server exited")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// wire builds the handlers for the configured store. The memory store has no
// users or content, so only the session routes are served.
func wire(cfg config.Config) (http.Handlers, func(), error) {
	zones := random.NewZoneGenerator()

	if cfg.Store == config.StoreMemory {
		store := memory.NewStore()
		sessionSvc := services.NewSessionService(store, store, zones, random.NewPairPicker())
		return http.Handlers{Sessions: http.NewSessionHandler(sessionSvc)}, func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.DB.ConnString())
	if err != nil {
		return http.Handlers{}, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return http.Handlers{}, nil, err
	}

	// Initialize Repositories
	sessionRepo := postgres.NewSessionRepository(db)
	resultRepo := postgres.NewRoundResultRepository(db)
	contentRepo := postgres.NewContentRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	// Initialize Services
	contentSvc := services.NewContentService(contentRepo, contentRepo, contentRepo)
	sessionSvc := services.NewSessionService(sessionRepo, resultRepo, zones, contentSvc)
	authSvc := services.NewAuthService(userRepo, authRepo, google.NewVerifier(), cfg.JWTSecret, cfg.GoogleClientID)
	userSvc := services.NewUserService(userRepo)

	handlers := http.Handlers{
		Sessions: http.NewSessionHandler(sessionSvc),
		Content:  http.NewContentHandler(contentSvc),
		Auth:     http.NewAuthHandler(authSvc, cfg.RedirectURL, cfg.CookieDomain, cfg.CookieSameSite),
		Users:    http.NewUserHandler(userSvc),
	}
	return handlers, func() { db.Close() }, nil
}
