package ports

import (
	"context"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type SessionRepository interface {
	Save(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalZoneGenerator places the hidden goal zone for a new round.
type GoalZoneGenerator interface {
	Generate(scale domain.Scale) (domain.GoalZone, error)
}

type PairPicker interface {
	RandomPair(ctx context.Context) (domain.Pair, error)
}

type CreateSessionInput struct {
	Players   []string
	ScaleSize int
}

type CastVoteInput struct {
	SessionID uuid.UUID
	Player    string
	Position  int
}

type SessionService interface {
	Create(ctx context.Context, input CreateSessionInput) (*domain.Session, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	CastVote(ctx context.Context, input CastVoteInput) (*domain.Session, error)
	ClearVote(ctx context.Context, id uuid.UUID, player string) (*domain.Session, error)
	Reveal(ctx context.Context, id uuid.UUID) (*domain.Session, []domain.RoundResult, error)
	NextRound(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Restart(ctx context.Context, id uuid.UUID) (*domain.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Standings(ctx context.Context, id uuid.UUID) ([]domain.Standing, error)
}
