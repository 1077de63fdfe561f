package domain

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrNotEnoughPlayers   = errors.New("at least two players are required")
	ErrInvalidPlayer      = errors.New("player names must be unique and not blank")
	ErrUnknownPlayer      = errors.New("player is not part of this session")
	ErrInvalidScale       = errors.New("invalid scale size")
	ErrInvalidGoalZone    = errors.New("goal zone must lie within the scale")
	ErrPositionOutOfRange = errors.New("position is outside the scale")
	ErrVotesPending       = errors.New("not every player has voted")
	ErrRoundRevealed      = errors.New("round has already been revealed")
	ErrRoundNotRevealed   = errors.New("round has not been revealed yet")
	ErrNoVote             = errors.New("player has not voted this round")

	ErrNotFound       = errors.New("record not found")
	ErrAlreadyExists  = errors.New("record already exists")
	ErrInvalidContent = errors.New("invalid content")
	ErrForbidden      = errors.New("not allowed to modify this record")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidDisplayName = errors.New("display name must be 1 to 32 characters")
	ErrInternal           = errors.New("internal server error")
)
