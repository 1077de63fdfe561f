package services

import (
	"context"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// --- GoalZoneGenerator ---

type fixedZones struct {
	starts []int
	calls  int
}

// Generate hands out the configured starts in order, repeating the last one.
func (f *fixedZones) Generate(scale domain.Scale) (domain.GoalZone, error) {
	start := f.starts[len(f.starts)-1]
	if f.calls < len(f.starts) {
		start = f.starts[f.calls]
	}
	f.calls++
	return domain.NewGoalZone(scale, start)
}

// --- PairRepository / ThemeRepository / QuestionRepository ---

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) SavePair(ctx context.Context, pair *domain.Pair) error {
	args := m.Called(ctx, pair)
	return args.Error(0)
}

func (m *MockContentRepository) GetPair(ctx context.Context, id uuid.UUID) (*domain.Pair, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pair), args.Error(1)
}

func (m *MockContentRepository) ListPairs(ctx context.Context) ([]*domain.Pair, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Pair), args.Error(1)
}

func (m *MockContentRepository) RandomPair(ctx context.Context) (*domain.Pair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Pair), args.Error(1)
}

func (m *MockContentRepository) DeletePair(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) SaveTheme(ctx context.Context, theme *domain.Theme) error {
	args := m.Called(ctx, theme)
	return args.Error(0)
}

func (m *MockContentRepository) GetTheme(ctx context.Context, id uuid.UUID) (*domain.Theme, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Theme), args.Error(1)
}

func (m *MockContentRepository) ListThemes(ctx context.Context) ([]*domain.Theme, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*domain.Theme), args.Error(1)
}

func (m *MockContentRepository) DeleteTheme(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContentRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockContentRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockContentRepository) ListQuestions(ctx context.Context, category string) ([]*domain.Question, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]*domain.Question), args.Error(1)
}

func (m *MockContentRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateDisplayName(ctx context.Context, id uuid.UUID, displayName string) error {
	args := m.Called(ctx, id, displayName)
	return args.Error(0)
}

// --- AuthRepository ---

type MockAuthRepository struct {
	mock.Mock
}

func (m *MockAuthRepository) StoreRefreshToken(ctx context.Context, token *domain.RefreshToken) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthRepository) GetRefreshTokenByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RefreshToken), args.Error(1)
}

func (m *MockAuthRepository) RevokeRefreshToken(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- TokenVerifier ---

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(ctx context.Context, token string, clientID string) (*ports.TokenPayload, error) {
	args := m.Called(ctx, token, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.TokenPayload), args.Error(1)
}
