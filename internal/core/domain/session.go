package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session is a sequence of rounds played by a fixed group of players. It owns
// the cumulative totals; rounds only ever see a copy of them.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	Players   []string       `json:"players"`
	Scale     Scale          `json:"scale"`
	Totals    map[string]int `json:"totals"`
	Round     *Round         `json:"round"`
	History   []Round        `json:"history,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func NewSession(id uuid.UUID, players []string, scale Scale, zone GoalZone, pair Pair, now time.Time) (*Session, error) {
	if len(players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	seen := make(map[string]bool, len(players))
	names := make([]string, 0, len(players))
	for _, p := range players {
		name := strings.TrimSpace(p)
		if name == "" || seen[name] {
			return nil, ErrInvalidPlayer
		}
		seen[name] = true
		names = append(names, name)
	}

	round, err := newRound(1, scale, zone, pair, now)
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:        id,
		Players:   names,
		Scale:     scale,
		Totals:    zeroTotals(names),
		Round:     round,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (s *Session) CastVote(player string, position int, now time.Time) error {
	if err := s.Round.castVote(s.Players, player, position, now); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

func (s *Session) ClearVote(player string, now time.Time) error {
	if err := s.Round.clearVote(s.Players, player); err != nil {
		return err
	}
	s.UpdatedAt = now
	return nil
}

// Reveal scores the current round and merges the points into the totals.
func (s *Session) Reveal(now time.Time) ([]RoundResult, error) {
	results, err := s.Round.reveal(s.Players, s.Totals, now)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int, len(results))
	for _, r := range results {
		totals[r.Player] = r.Total
	}
	s.Totals = totals
	s.UpdatedAt = now
	return results, nil
}

// NextRound archives the revealed round and starts a fresh one. Totals carry over.
func (s *Session) NextRound(zone GoalZone, pair Pair, now time.Time) error {
	if s.Round.State != RoundRevealed {
		return ErrRoundNotRevealed
	}

	round, err := newRound(s.Round.Number+1, s.Scale, zone, pair, now)
	if err != nil {
		return err
	}
	s.History = append(s.History, *s.Round)
	s.Round = round
	s.UpdatedAt = now
	return nil
}

// Restart drops history and totals and begins again at round 1. It is allowed
// in any state.
func (s *Session) Restart(zone GoalZone, pair Pair, now time.Time) error {
	round, err := newRound(1, s.Scale, zone, pair, now)
	if err != nil {
		return err
	}
	s.Round = round
	s.History = nil
	s.Totals = zeroTotals(s.Players)
	s.UpdatedAt = now
	return nil
}

// Ranking orders the players by their current totals.
func (s *Session) Ranking() []RoundResult {
	standings := make([]RoundResult, 0, len(s.Players))
	for _, p := range s.Players {
		standings = append(standings, RoundResult{Player: p, Total: s.Totals[p]})
	}
	if s.Round.State == RoundRevealed {
		standings = s.Round.Results
	}
	return Rank(standings)
}

func zeroTotals(players []string) map[string]int {
	totals := make(map[string]int, len(players))
	for _, p := range players {
		totals[p] = 0
	}
	return totals
}
