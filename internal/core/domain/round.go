package domain

import "time"

type RoundState string

const (
	RoundAwaitingVotes RoundState = "awaiting_votes"
	RoundAllVoted      RoundState = "all_voted"
	RoundRevealed      RoundState = "revealed"
)

var roundTransitions = map[RoundState][]RoundState{
	RoundAwaitingVotes: {RoundAllVoted},
	RoundAllVoted:      {RoundAwaitingVotes, RoundRevealed},
	RoundRevealed:      {},
}

// CanTransitionTo reports whether a round in state s may move to target.
func (s RoundState) CanTransitionTo(target RoundState) bool {
	for _, allowed := range roundTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type Vote struct {
	Player   string    `json:"player"`
	Position int       `json:"position"`
	CastAt   time.Time `json:"cast_at"`
}

type Round struct {
	Number     int             `json:"number"`
	Scale      Scale           `json:"scale"`
	Zone       GoalZone        `json:"zone"`
	Pair       Pair            `json:"pair"`
	Votes      map[string]Vote `json:"votes"`
	State      RoundState      `json:"state"`
	Results    []RoundResult   `json:"results,omitempty"`
	StartedAt  time.Time       `json:"started_at"`
	RevealedAt *time.Time      `json:"revealed_at,omitempty"`
}

func newRound(number int, scale Scale, zone GoalZone, pair Pair, now time.Time) (*Round, error) {
	if zone.Start < 0 || !scale.Contains(zone.End) || zone.End-zone.Start+1 != GoalZoneWidth {
		return nil, ErrInvalidGoalZone
	}
	return &Round{
		Number:    number,
		Scale:     scale,
		Zone:      zone,
		Pair:      pair,
		Votes:     make(map[string]Vote),
		State:     RoundAwaitingVotes,
		StartedAt: now,
	}, nil
}

func (r *Round) castVote(players []string, player string, position int, now time.Time) error {
	if r.State == RoundRevealed {
		return ErrRoundRevealed
	}
	if !containsPlayer(players, player) {
		return ErrUnknownPlayer
	}
	if !r.Scale.Contains(position) {
		return ErrPositionOutOfRange
	}

	r.Votes[player] = Vote{Player: player, Position: position, CastAt: now}
	if r.State == RoundAwaitingVotes && r.allVoted(players) {
		r.State = RoundAllVoted
	}
	return nil
}

func (r *Round) clearVote(players []string, player string) error {
	if r.State == RoundRevealed {
		return ErrRoundRevealed
	}
	if !containsPlayer(players, player) {
		return ErrUnknownPlayer
	}
	if _, ok := r.Votes[player]; !ok {
		return ErrNoVote
	}

	delete(r.Votes, player)
	if r.State == RoundAllVoted {
		r.State = RoundAwaitingVotes
	}
	return nil
}

func (r *Round) reveal(players []string, prior map[string]int, now time.Time) ([]RoundResult, error) {
	if r.State == RoundRevealed {
		return nil, ErrRoundRevealed
	}
	if !r.State.CanTransitionTo(RoundRevealed) {
		return nil, ErrVotesPending
	}

	r.Results = ApplyRound(players, r.positions(), r.Zone, prior)
	r.State = RoundRevealed
	r.RevealedAt = &now
	return r.Results, nil
}

func (r *Round) allVoted(players []string) bool {
	for _, p := range players {
		if _, ok := r.Votes[p]; !ok {
			return false
		}
	}
	return true
}

func (r *Round) positions() map[string]int {
	positions := make(map[string]int, len(r.Votes))
	for player, v := range r.Votes {
		positions[player] = v.Position
	}
	return positions
}

// Pending lists the players that still have to vote, in seating order.
func (r *Round) Pending(players []string) []string {
	var pending []string
	for _, p := range players {
		if _, ok := r.Votes[p]; !ok {
			pending = append(pending, p)
		}
	}
	return pending
}

func containsPlayer(players []string, player string) bool {
	for _, p := range players {
		if p == player {
			return true
		}
	}
	return false
}
