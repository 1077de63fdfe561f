package domain

import "github.com/google/uuid"

// Standing is a player's summarized record for one session.
type Standing struct {
	SessionID    uuid.UUID `json:"session_id"`
	Player       string    `json:"player"`
	TotalPoints  int64     `json:"total_points"`
	Bullseyes    int64     `json:"bullseyes"`
	RoundsPlayed int64     `json:"rounds_played"`
}
