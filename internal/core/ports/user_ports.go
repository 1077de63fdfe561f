package ports

import (
	"context"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error
}

// UserService serves the signed-in player's profile. The display name is
// what the client offers as the player's name when it starts a session.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Rename(ctx context.Context, id uuid.UUID, displayName string) (*domain.User, error)
}
