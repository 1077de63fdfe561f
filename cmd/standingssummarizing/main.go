package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/L-alam/amongyall-sub001/internal/adapters/repository/postgres"
	"github.com/L-alam/amongyall-sub001/internal/config"
	"github.com/L-alam/amongyall-sub001/internal/core/services"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load("standingssummarizing", os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	cfg.SetupLogging()

	db, err := sql.Open("postgres", cfg.DB.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to reach database")
	}

	// Initialize Repositories
	sessionRepo := postgres.NewSessionRepository(db)
	resultRepo := postgres.NewRoundResultRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	// Initialize Service
	summaryService := services.NewSummaryService(sessionRepo, resultRepo)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Info().Msg("starting standings summarization job")

	if err := summaryService.SummarizeAllSessions(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to summarize standings")
	}

	removed, err := authRepo.DeleteExpiredRefreshTokens(ctx, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to prune refresh tokens")
	} else {
		log.Info().Int64("removed", removed).Msg("pruned expired refresh tokens")
	}

	log.Info().Msg("standings summarization completed")
}
