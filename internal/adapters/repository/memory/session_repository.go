// Package memory keeps sessions and round results in process memory. State is
// lost on restart. Sessions are stored encoded so callers never share a
// pointer with the store.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type resultKey struct {
	sessionID uuid.UUID
	round     int
}

type Store struct {
	mu        sync.RWMutex
	sessions  map[uuid.UUID][]byte
	results   map[resultKey][]domain.RoundResult
	standings map[uuid.UUID][]domain.Standing
}

func NewStore() *Store {
	return &Store{
		sessions:  make(map[uuid.UUID][]byte),
		results:   make(map[resultKey][]domain.RoundResult),
		standings: make(map[uuid.UUID][]domain.Standing),
	}
}

func (m *Store) Save(ctx context.Context, session *domain.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = data
	return nil
}

func (m *Store) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	m.mu.RLock()
	data, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (m *Store) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]uuid.UUID, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}
	return ids, nil
}

func (m *Store) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(m.sessions, id)
	m.deleteResultsLocked(id)
	return nil
}

func (m *Store) SaveRoundResults(ctx context.Context, sessionID uuid.UUID, roundNumber int, results []domain.RoundResult) error {
	stored := make([]domain.RoundResult, len(results))
	copy(stored, results)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[resultKey{sessionID: sessionID, round: roundNumber}] = stored
	return nil
}

func (m *Store) DeleteSessionResults(ctx context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleteResultsLocked(sessionID)
	return nil
}

func (m *Store) SummarizeSession(ctx context.Context, sessionID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.standings[sessionID] = m.standingsLocked(sessionID)
	return nil
}

// GetStandings returns the last summary, or computes one from the stored
// round results when the session was never summarized.
func (m *Store) GetStandings(ctx context.Context, sessionID uuid.UUID) ([]domain.Standing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cached, ok := m.standings[sessionID]
	if !ok {
		return m.standingsLocked(sessionID), nil
	}
	standings := make([]domain.Standing, len(cached))
	copy(standings, cached)
	return standings, nil
}

func (m *Store) standingsLocked(sessionID uuid.UUID) []domain.Standing {
	byPlayer := make(map[string]*domain.Standing)
	for key, results := range m.results {
		if key.sessionID != sessionID {
			continue
		}
		for _, r := range results {
			st, ok := byPlayer[r.Player]
			if !ok {
				st = &domain.Standing{SessionID: sessionID, Player: r.Player}
				byPlayer[r.Player] = st
			}
			st.TotalPoints += int64(r.RoundPoints)
			st.RoundsPlayed++
			if r.RoundPoints == domain.BullseyePoints {
				st.Bullseyes++
			}
		}
	}

	standings := make([]domain.Standing, 0, len(byPlayer))
	for _, st := range byPlayer {
		standings = append(standings, *st)
	}
	sortStandings(standings)
	return standings
}

func (m *Store) deleteResultsLocked(sessionID uuid.UUID) {
	for key := range m.results {
		if key.sessionID == sessionID {
			delete(m.results, key)
		}
	}
	delete(m.standings, sessionID)
}

// sortStandings matches the postgres ordering: points desc, then name.
func sortStandings(standings []domain.Standing) {
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].Player < standings[j].Player
	})
}
