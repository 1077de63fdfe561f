package ports

import (
	"context"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type PairRepository interface {
	SavePair(ctx context.Context, pair *domain.Pair) error
	GetPair(ctx context.Context, id uuid.UUID) (*domain.Pair, error)
	ListPairs(ctx context.Context) ([]*domain.Pair, error)
	RandomPair(ctx context.Context) (*domain.Pair, error)
	DeletePair(ctx context.Context, id uuid.UUID) error
}

type ThemeRepository interface {
	SaveTheme(ctx context.Context, theme *domain.Theme) error
	GetTheme(ctx context.Context, id uuid.UUID) (*domain.Theme, error)
	ListThemes(ctx context.Context) ([]*domain.Theme, error)
	DeleteTheme(ctx context.Context, id uuid.UUID) error
}

type QuestionRepository interface {
	SaveQuestion(ctx context.Context, question *domain.Question) error
	GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListQuestions(ctx context.Context, category string) ([]*domain.Question, error)
	DeleteQuestion(ctx context.Context, id uuid.UUID) error
}

type CreatePairInput struct {
	Left    string
	Right   string
	OwnerID uuid.UUID
}

type CreateThemeInput struct {
	Name    string
	Words   []string
	OwnerID uuid.UUID
}

type CreateQuestionInput struct {
	Text     string
	Category string
	OwnerID  uuid.UUID
}

type ContentService interface {
	CreatePair(ctx context.Context, input CreatePairInput) (*domain.Pair, error)
	GetPair(ctx context.Context, id string) (*domain.Pair, error)
	ListPairs(ctx context.Context) ([]*domain.Pair, error)
	RandomPair(ctx context.Context) (domain.Pair, error)
	DeletePair(ctx context.Context, id string, userID uuid.UUID) error

	CreateTheme(ctx context.Context, input CreateThemeInput) (*domain.Theme, error)
	GetTheme(ctx context.Context, id string) (*domain.Theme, error)
	ListThemes(ctx context.Context) ([]*domain.Theme, error)
	DeleteTheme(ctx context.Context, id string, userID uuid.UUID) error

	CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error)
	ListQuestions(ctx context.Context, category string) ([]*domain.Question, error)
	DeleteQuestion(ctx context.Context, id string, userID uuid.UUID) error
}
