package ports

import (
	"context"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type RoundResultRepository interface {
	SaveRoundResults(ctx context.Context, sessionID uuid.UUID, roundNumber int, results []domain.RoundResult) error
	DeleteSessionResults(ctx context.Context, sessionID uuid.UUID) error
	SummarizeSession(ctx context.Context, sessionID uuid.UUID) error
	GetStandings(ctx context.Context, sessionID uuid.UUID) ([]domain.Standing, error)
}

type SummaryService interface {
	SummarizeAllSessions(ctx context.Context) error
}
