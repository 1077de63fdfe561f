package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type summaryService struct {
	sessionRepo ports.SessionRepository
	resultRepo  ports.RoundResultRepository
}

func NewSummaryService(sessionRepo ports.SessionRepository, resultRepo ports.RoundResultRepository) ports.SummaryService {
	return &summaryService{
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
	}
}

func (s *summaryService) SummarizeAllSessions(ctx context.Context) error {
	ids, err := s.sessionRepo.ListIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch all sessions: %w", err)
	}

	var wg sync.WaitGroup
	errChan := make(chan error, len(ids))

	for _, id := range ids {
		wg.Add(1)
		go func(sessionID uuid.UUID) {
			defer wg.Done()
			if err := s.resultRepo.SummarizeSession(ctx, sessionID); err != nil {
				errChan <- fmt.Errorf("failed to summarize session %s: %w", sessionID, err)
			}
		}(id)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return err
		}
	}

	log.Info().Int("sessions", len(ids)).Msg("standings summarized")
	return nil
}
