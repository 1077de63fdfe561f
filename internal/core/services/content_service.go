package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/L-alam/amongyall-sub001/internal/core/ports"
	"github.com/google/uuid"
)

type contentService struct {
	pairRepo     ports.PairRepository
	themeRepo    ports.ThemeRepository
	questionRepo ports.QuestionRepository
}

func NewContentService(pairRepo ports.PairRepository, themeRepo ports.ThemeRepository, questionRepo ports.QuestionRepository) ports.ContentService {
	return &contentService{
		pairRepo:     pairRepo,
		themeRepo:    themeRepo,
		questionRepo: questionRepo,
	}
}

func (s *contentService) CreatePair(ctx context.Context, input ports.CreatePairInput) (*domain.Pair, error) {
	left := strings.TrimSpace(input.Left)
	right := strings.TrimSpace(input.Right)
	if left == "" || right == "" {
		return nil, domain.ErrInvalidContent
	}
	if strings.EqualFold(left, right) {
		return nil, domain.ErrInvalidContent
	}

	owner := input.OwnerID
	pair := &domain.Pair{
		ID:        uuid.New(),
		Left:      left,
		Right:     right,
		OwnerID:   &owner,
		CreatedAt: time.Now(),
	}

	if err := s.pairRepo.SavePair(ctx, pair); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *contentService) GetPair(ctx context.Context, id string) (*domain.Pair, error) {
	pairID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.pairRepo.GetPair(ctx, pairID)
}

func (s *contentService) ListPairs(ctx context.Context) ([]*domain.Pair, error) {
	return s.pairRepo.ListPairs(ctx)
}

// RandomPair falls back to the built-in pair when nothing is stored.
func (s *contentService) RandomPair(ctx context.Context) (domain.Pair, error) {
	pair, err := s.pairRepo.RandomPair(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.DefaultPair, nil
	}
	if err != nil {
		return domain.Pair{}, err
	}
	return *pair, nil
}

func (s *contentService) DeletePair(ctx context.Context, id string, userID uuid.UUID) error {
	pair, err := s.GetPair(ctx, id)
	if err != nil {
		return err
	}
	if !domain.OwnedBy(pair.OwnerID, userID) {
		return domain.ErrForbidden
	}
	return s.pairRepo.DeletePair(ctx, pair.ID)
}

func (s *contentService) CreateTheme(ctx context.Context, input ports.CreateThemeInput) (*domain.Theme, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrInvalidContent
	}

	var words []string
	for _, w := range input.Words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		words = append(words, w)
	}
	if len(words) < 2 {
		return nil, domain.ErrInvalidContent
	}

	owner := input.OwnerID
	theme := &domain.Theme{
		ID:        uuid.New(),
		Name:      name,
		Words:     words,
		OwnerID:   &owner,
		CreatedAt: time.Now(),
	}

	if err := s.themeRepo.SaveTheme(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *contentService) GetTheme(ctx context.Context, id string) (*domain.Theme, error) {
	themeID, err := uuid.Parse(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	return s.themeRepo.GetTheme(ctx, themeID)
}

func (s *contentService) ListThemes(ctx context.Context) ([]*domain.Theme, error) {
	return s.themeRepo.ListThemes(ctx)
}

func (s *contentService) DeleteTheme(ctx context.Context, id string, userID uuid.UUID) error {
	theme, err := s.GetTheme(ctx, id)
	if err != nil {
		return err
	}
	if !domain.OwnedBy(theme.OwnerID, userID) {
		return domain.ErrForbidden
	}
	return s.themeRepo.DeleteTheme(ctx, theme.ID)
}

func (s *contentService) CreateQuestion(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domain.ErrInvalidContent
	}

	owner := input.OwnerID
	question := &domain.Question{
		ID:        uuid.New(),
		Text:      text,
		Category:  strings.TrimSpace(input.Category),
		OwnerID:   &owner,
		CreatedAt: time.Now(),
	}

	if err := s.questionRepo.SaveQuestion(ctx, question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *contentService) ListQuestions(ctx context.Context, category string) ([]*domain.Question, error) {
	return s.questionRepo.ListQuestions(ctx, strings.TrimSpace(category))
}

func (s *contentService) DeleteQuestion(ctx context.Context, id string, userID uuid.UUID) error {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrNotFound
	}

	question, err := s.questionRepo.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	if !domain.OwnedBy(question.OwnerID, userID) {
		return domain.ErrForbidden
	}
	return s.questionRepo.DeleteQuestion(ctx, questionID)
}
