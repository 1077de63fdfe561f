package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ContentRepository serves pairs, themes and questions. Rows without an
// owner are built-in content.
type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{
		db: db,
	}
}

func (r *ContentRepository) SavePair(ctx context.Context, pair *domain.Pair) error {
	query := `
		INSERT INTO pairs (id, left_label, right_label, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, pair.ID, pair.Left, pair.Right, pair.OwnerID, pair.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert pair: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetPair(ctx context.Context, id uuid.UUID) (*domain.Pair, error) {
	query := `
		SELECT id, left_label, right_label, owner_id, created_at
		FROM pairs
		WHERE id = $1
	`
	pair, err := scanPair(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pair: %w", err)
	}
	return pair, nil
}

func (r *ContentRepository) ListPairs(ctx context.Context) ([]*domain.Pair, error) {
	query := `
		SELECT id, left_label, right_label, owner_id, created_at
		FROM pairs
		ORDER BY owner_id NULLS FIRST, created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairs: %w", err)
	}
	defer rows.Close()

	pairs := []*domain.Pair{}
	for rows.Next() {
		pair, err := scanPair(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pair: %w", err)
		}
		pairs = append(pairs, pair)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pairs: %w", err)
	}
	return pairs, nil
}

func (r *ContentRepository) RandomPair(ctx context.Context) (*domain.Pair, error) {
	query := `
		SELECT id, left_label, right_label, owner_id, created_at
		FROM pairs
		ORDER BY random()
		LIMIT 1
	`
	pair, err := scanPair(r.db.QueryRowContext(ctx, query))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to pick pair: %w", err)
	}
	return pair, nil
}

func (r *ContentRepository) DeletePair(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "pairs", id)
}

func (r *ContentRepository) SaveTheme(ctx context.Context, theme *domain.Theme) error {
	query := `
		INSERT INTO themes (id, name, words, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, theme.ID, theme.Name, pq.Array(theme.Words), theme.OwnerID, theme.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert theme: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetTheme(ctx context.Context, id uuid.UUID) (*domain.Theme, error) {
	query := `
		SELECT id, name, words, owner_id, created_at
		FROM themes
		WHERE id = $1
	`
	theme, err := scanTheme(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}
	return theme, nil
}

func (r *ContentRepository) ListThemes(ctx context.Context) ([]*domain.Theme, error) {
	query := `
		SELECT id, name, words, owner_id, created_at
		FROM themes
		ORDER BY owner_id NULLS FIRST, name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	defer rows.Close()

	themes := []*domain.Theme{}
	for rows.Next() {
		theme, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan theme: %w", err)
		}
		themes = append(themes, theme)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating themes: %w", err)
	}
	return themes, nil
}

func (r *ContentRepository) DeleteTheme(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "themes", id)
}

func (r *ContentRepository) SaveQuestion(ctx context.Context, question *domain.Question) error {
	query := `
		INSERT INTO questions (id, text, category, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, question.ID, question.Text, question.Category, question.OwnerID, question.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("failed to insert question: %w", err)
	}
	return nil
}

func (r *ContentRepository) GetQuestion(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	query := `
		SELECT id, text, category, owner_id, created_at
		FROM questions
		WHERE id = $1
	`
	question, err := scanQuestion(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get question: %w", err)
	}
	return question, nil
}

// ListQuestions returns every question, or only one category when category is set.
func (r *ContentRepository) ListQuestions(ctx context.Context, category string) ([]*domain.Question, error) {
	query := `
		SELECT id, text, category, owner_id, created_at
		FROM questions
		WHERE $1 = '' OR category = $1
		ORDER BY owner_id NULLS FIRST, created_at
	`
	rows, err := r.db.QueryContext(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	defer rows.Close()

	questions := []*domain.Question{}
	for rows.Next() {
		question, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating questions: %w", err)
	}
	return questions, nil
}

func (r *ContentRepository) DeleteQuestion(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, "questions", id)
}

// table is always one of the constants above, never user input.
func (r *ContentRepository) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM "+table+" WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPair(row rowScanner) (*domain.Pair, error) {
	var pair domain.Pair
	var owner uuid.NullUUID
	if err := row.Scan(&pair.ID, &pair.Left, &pair.Right, &owner, &pair.CreatedAt); err != nil {
		return nil, err
	}
	pair.OwnerID = ownerPtr(owner)
	return &pair, nil
}

func scanTheme(row rowScanner) (*domain.Theme, error) {
	var theme domain.Theme
	var owner uuid.NullUUID
	if err := row.Scan(&theme.ID, &theme.Name, pq.Array(&theme.Words), &owner, &theme.CreatedAt); err != nil {
		return nil, err
	}
	theme.OwnerID = ownerPtr(owner)
	return &theme, nil
}

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var question domain.Question
	var owner uuid.NullUUID
	if err := row.Scan(&question.ID, &question.Text, &question.Category, &owner, &question.CreatedAt); err != nil {
		return nil, err
	}
	question.OwnerID = ownerPtr(owner)
	return &question, nil
}

func ownerPtr(owner uuid.NullUUID) *uuid.UUID {
	if !owner.Valid {
		return nil
	}
	id := owner.UUID
	return &id
}
