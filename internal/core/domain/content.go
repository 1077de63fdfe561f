package domain

import (
	"time"

	"github.com/google/uuid"
)

// Pair labels the two ends of the scale for a round, e.g. "Cold" and "Hot".
type Pair struct {
	ID        uuid.UUID  `json:"id"`
	Left      string     `json:"left"`
	Right     string     `json:"right"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// DefaultPair is used when no pairs are stored.
var DefaultPair = Pair{Left: "Cold", Right: "Hot"}

type Theme struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Words     []string   `json:"words"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type Question struct {
	ID        uuid.UUID  `json:"id"`
	Text      string     `json:"text"`
	Category  string     `json:"category,omitempty"`
	OwnerID   *uuid.UUID `json:"owner_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// OwnedBy reports whether userID may delete a record with the given owner.
// Built-in records have no owner and cannot be deleted through the API.
func OwnedBy(owner *uuid.UUID, userID uuid.UUID) bool {
	return owner != nil && *owner == userID
}
