package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, players ...string) *Session {
	t.Helper()
	s, err := NewSession(uuid.New(), players, Scale{Size: DefaultScaleSize}, GoalZone{Start: 8, End: 12}, DefaultPair, now)
	require.NoError(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	s := newTestSession(t, " Ana ", "Bo")

	assert.Equal(t, []string{"Ana", "Bo"}, s.Players)
	assert.Equal(t, map[string]int{"Ana": 0, "Bo": 0}, s.Totals)
	assert.Equal(t, 1, s.Round.Number)
	assert.Equal(t, RoundAwaitingVotes, s.Round.State)
}

func TestNewSession_Invalid(t *testing.T) {
	scale := Scale{Size: DefaultScaleSize}
	zone := GoalZone{Start: 8, End: 12}

	_, err := NewSession(uuid.New(), []string{"Ana"}, scale, zone, DefaultPair, now)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)

	_, err = NewSession(uuid.New(), []string{"Ana", "Ana"}, scale, zone, DefaultPair, now)
	assert.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = NewSession(uuid.New(), []string{"Ana", "  "}, scale, zone, DefaultPair, now)
	assert.ErrorIs(t, err, ErrInvalidPlayer)

	_, err = NewSession(uuid.New(), []string{"Ana", "Bo"}, scale, GoalZone{Start: 8, End: 10}, DefaultPair, now)
	assert.ErrorIs(t, err, ErrInvalidGoalZone)
}

func TestRoundState_Transitions(t *testing.T) {
	assert.True(t, RoundAwaitingVotes.CanTransitionTo(RoundAllVoted))
	assert.False(t, RoundAwaitingVotes.CanTransitionTo(RoundRevealed))
	assert.True(t, RoundAllVoted.CanTransitionTo(RoundRevealed))
	assert.True(t, RoundAllVoted.CanTransitionTo(RoundAwaitingVotes))
	assert.False(t, RoundRevealed.CanTransitionTo(RoundAwaitingVotes))
	assert.False(t, RoundRevealed.CanTransitionTo(RoundAllVoted))
}

func TestSession_VotingFlow(t *testing.T) {
	s := newTestSession(t, "Ana", "Bo", "Cy")

	require.NoError(t, s.CastVote("Ana", 10, now))
	assert.Equal(t, []string{"Bo", "Cy"}, s.Round.Pending(s.Players))

	_, err := s.Reveal(now)
	assert.ErrorIs(t, err, ErrVotesPending)

	require.NoError(t, s.CastVote("Bo", 3, now))
	require.NoError(t, s.CastVote("Cy", 12, now))
	assert.Equal(t, RoundAllVoted, s.Round.State)

	// Revote before reveal replaces the earlier pick.
	require.NoError(t, s.CastVote("Bo", 9, now))
	assert.Equal(t, 9, s.Round.Votes["Bo"].Position)

	require.NoError(t, s.ClearVote("Cy", now))
	assert.Equal(t, RoundAwaitingVotes, s.Round.State)
	require.NoError(t, s.CastVote("Cy", 12, now))

	results, err := s.Reveal(now)
	require.NoError(t, err)
	assert.Equal(t, RoundRevealed, s.Round.State)
	require.NotNil(t, s.Round.RevealedAt)
	assert.Equal(t, map[string]int{"Ana": 3, "Bo": 2, "Cy": 1}, s.Totals)
	assert.Len(t, results, 3)

	assert.ErrorIs(t, s.CastVote("Ana", 11, now), ErrRoundRevealed)
	assert.ErrorIs(t, s.ClearVote("Ana", now), ErrRoundRevealed)
	_, err = s.Reveal(now)
	assert.ErrorIs(t, err, ErrRoundRevealed)

	ranking := s.Ranking()
	assert.Equal(t, "Ana", ranking[0].Player)
	assert.Equal(t, "Cy", ranking[2].Player)
}

func TestSession_VoteErrors(t *testing.T) {
	s := newTestSession(t, "Ana", "Bo")

	assert.ErrorIs(t, s.CastVote("Zed", 10, now), ErrUnknownPlayer)
	assert.ErrorIs(t, s.CastVote("Ana", 40, now), ErrPositionOutOfRange)
	assert.ErrorIs(t, s.CastVote("Ana", -1, now), ErrPositionOutOfRange)
	assert.ErrorIs(t, s.ClearVote("Ana", now), ErrNoVote)
	assert.ErrorIs(t, s.ClearVote("Zed", now), ErrUnknownPlayer)
}

func TestSession_NextRoundAndRestart(t *testing.T) {
	s := newTestSession(t, "Ana", "Bo")

	assert.ErrorIs(t, s.NextRound(GoalZone{Start: 0, End: 4}, DefaultPair, now), ErrRoundNotRevealed)

	require.NoError(t, s.CastVote("Ana", 10, now))
	require.NoError(t, s.CastVote("Bo", 11, now))
	_, err := s.Reveal(now)
	require.NoError(t, err)

	next := Pair{Left: "Soft", Right: "Hard"}
	require.NoError(t, s.NextRound(GoalZone{Start: 0, End: 4}, next, now))
	assert.Equal(t, 2, s.Round.Number)
	assert.Equal(t, next, s.Round.Pair)
	assert.Empty(t, s.Round.Votes)
	assert.Len(t, s.History, 1)
	assert.Equal(t, map[string]int{"Ana": 3, "Bo": 2}, s.Totals)

	require.NoError(t, s.CastVote("Ana", 2, now))
	require.NoError(t, s.CastVote("Bo", 4, now))
	_, err = s.Reveal(now)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Ana": 6, "Bo": 3}, s.Totals)

	require.NoError(t, s.Restart(GoalZone{Start: 30, End: 34}, DefaultPair, now))
	assert.Equal(t, 1, s.Round.Number)
	assert.Nil(t, s.History)
	assert.Equal(t, map[string]int{"Ana": 0, "Bo": 0}, s.Totals)
}

func TestOwnedBy(t *testing.T) {
	owner := uuid.New()
	assert.True(t, OwnedBy(&owner, owner))
	assert.False(t, OwnedBy(&owner, uuid.New()))
	assert.False(t, OwnedBy(nil, owner))
}
