package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type sessionService struct {
	sessionRepo ports.SessionRepository
	resultRepo  ports.RoundResultRepository
	zones       ports.GoalZoneGenerator
	pairs       ports.PairPicker
	now         func() time.Time

	mu    sync.Mutex
	locks map[uuid.UUID]*sessionLock
}

// sessionLock is dropped from the map once no request holds or waits on it.
type sessionLock struct {
	sync.Mutex
	refs int
}

func NewSessionService(sessionRepo ports.SessionRepository, resultRepo ports.RoundResultRepository, zones ports.GoalZoneGenerator, pairs ports.PairPicker) ports.SessionService {
	return &sessionService{
		sessionRepo: sessionRepo,
		resultRepo:  resultRepo,
		zones:       zones,
		pairs:       pairs,
		now:         time.Now,
		locks:       make(map[uuid.UUID]*sessionLock),
	}
}

func (s *sessionService) Create(ctx context.Context, input ports.CreateSessionInput) (*domain.Session, error) {
	size := input.ScaleSize
	if size == 0 {
		size = domain.DefaultScaleSize
	}
	scale, err := domain.NewScale(size)
	if err != nil {
		return nil, err
	}

	zone, pair, err := s.roundSetup(ctx, scale)
	if err != nil {
		return nil, err
	}

	session, err := domain.NewSession(uuid.New(), input.Players, scale, zone, pair, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.sessionRepo.GetByID(ctx, id)
}

func (s *sessionService) CastVote(ctx context.Context, input ports.CastVoteInput) (*domain.Session, error) {
	return s.update(ctx, input.SessionID, func(session *domain.Session) error {
		return session.CastVote(input.Player, input.Position, s.now())
	})
}

func (s *sessionService) ClearVote(ctx context.Context, id uuid.UUID, player string) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		return session.ClearVote(player, s.now())
	})
}

func (s *sessionService) Reveal(ctx context.Context, id uuid.UUID) (*domain.Session, []domain.RoundResult, error) {
	var results []domain.RoundResult
	session, err := s.update(ctx, id, func(session *domain.Session) error {
		var err error
		results, err = session.Reveal(s.now())
		return err
	}, func(session *domain.Session) error {
		if err := s.resultRepo.SaveRoundResults(ctx, session.ID, session.Round.Number, results); err != nil {
			return fmt.Errorf("failed to store round results: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return session, domain.Rank(results), nil
}

func (s *sessionService) NextRound(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		if session.Round.State != domain.RoundRevealed {
			return domain.ErrRoundNotRevealed
		}
		zone, pair, err := s.roundSetup(ctx, session.Scale)
		if err != nil {
			return err
		}
		return session.NextRound(zone, pair, s.now())
	})
}

func (s *sessionService) Restart(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	return s.update(ctx, id, func(session *domain.Session) error {
		zone, pair, err := s.roundSetup(ctx, session.Scale)
		if err != nil {
			return err
		}
		return session.Restart(zone, pair, s.now())
	}, func(session *domain.Session) error {
		if err := s.resultRepo.DeleteSessionResults(ctx, session.ID); err != nil {
			return fmt.Errorf("failed to clear round results: %w", err)
		}
		return nil
	})
}

func (s *sessionService) Delete(ctx context.Context, id uuid.UUID) error {
	lock := s.acquire(id)
	defer s.release(id, lock)

	return s.sessionRepo.Delete(ctx, id)
}

func (s *sessionService) Standings(ctx context.Context, id uuid.UUID) ([]domain.Standing, error) {
	if _, err := s.sessionRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.resultRepo.GetStandings(ctx, id)
}

// update loads the session, applies fn and saves it, holding the session's
// lock throughout. Nothing is saved when fn fails. The after hooks touch the
// round results store and run only once the session itself is saved.
func (s *sessionService) update(ctx context.Context, id uuid.UUID, fn func(*domain.Session) error, after ...func(*domain.Session) error) (*domain.Session, error) {
	lock := s.acquire(id)
	defer s.release(id, lock)

	session, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(session); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, err
	}

	for _, hook := range after {
		if err := hook(session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

func (s *sessionService) acquire(id uuid.UUID) *sessionLock {
	s.mu.Lock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sessionLock{}
		s.locks[id] = lock
	}
	lock.refs++
	s.mu.Unlock()

	lock.Lock()
	return lock
}

func (s *sessionService) release(id uuid.UUID, lock *sessionLock) {
	lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	lock.refs--
	if lock.refs == 0 {
		delete(s.locks, id)
	}
}

func (s *sessionService) roundSetup(ctx context.Context, scale domain.Scale) (domain.GoalZone, domain.Pair, error) {
	zone, err := s.zones.Generate(scale)
	if err != nil {
		return domain.GoalZone{}, domain.Pair{}, fmt.Errorf("failed to place goal zone: %w", err)
	}

	pair, err := s.pairs.RandomPair(ctx)
	if err != nil {
		return domain.GoalZone{}, domain.Pair{}, fmt.Errorf("failed to pick pair: %w", err)
	}
	return zone, pair, nil
}
