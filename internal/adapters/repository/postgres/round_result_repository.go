package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/L-alam/amongyall-sub001/internal/core/domain"
	"github.com/google/uuid"
)

type RoundResultRepository struct {
	db *sql.DB
}

func NewRoundResultRepository(db *sql.DB) *RoundResultRepository {
	return &RoundResultRepository{
		db: db,
	}
}

func (r *RoundResultRepository) SaveRoundResults(ctx context.Context, sessionID uuid.UUID, roundNumber int, results []domain.RoundResult) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO round_results (session_id, round_number, player, position, points, total)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_id, round_number, player) DO UPDATE
		SET position = EXCLUDED.position,
		    points = EXCLUDED.points,
		    total = EXCLUDED.total
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare result statement: %w", err)
	}
	defer stmt.Close()

	for _, res := range results {
		var position sql.NullInt64
		if res.Position != nil {
			position = sql.NullInt64{Int64: int64(*res.Position), Valid: true}
		}
		_, err = stmt.ExecContext(ctx, sessionID, roundNumber, res.Player, position, res.RoundPoints, res.Total)
		if err != nil {
			return fmt.Errorf("failed to insert result for %s: %w", res.Player, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *RoundResultRepository) DeleteSessionResults(ctx context.Context, sessionID uuid.UUID) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM round_results WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete round results: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM session_standings WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete standings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (r *RoundResultRepository) SummarizeSession(ctx context.Context, sessionID uuid.UUID) error {
	query := `
		INSERT INTO session_standings (session_id, player, total_points, bullseyes, rounds_played, last_updated_at)
		SELECT session_id, player, SUM(points), COUNT(*) FILTER (WHERE points = $2), COUNT(*), NOW()
		FROM round_results
		WHERE session_id = $1
		GROUP BY session_id, player
		ON CONFLICT (session_id, player) DO UPDATE
		SET total_points = EXCLUDED.total_points,
		    bullseyes = EXCLUDED.bullseyes,
		    rounds_played = EXCLUDED.rounds_played,
		    last_updated_at = NOW();
	`

	_, err := r.db.ExecContext(ctx, query, sessionID, domain.BullseyePoints)
	if err != nil {
		return fmt.Errorf("failed to summarize session %s: %w", sessionID, err)
	}
	return nil
}

func (r *RoundResultRepository) GetStandings(ctx context.Context, sessionID uuid.UUID) ([]domain.Standing, error) {
	query := `
		SELECT session_id, player, total_points, bullseyes, rounds_played
		FROM session_standings
		WHERE session_id = $1
		ORDER BY total_points DESC, player
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch standings: %w", err)
	}
	defer rows.Close()

	standings := []domain.Standing{}
	for rows.Next() {
		var s domain.Standing
		if err := rows.Scan(&s.SessionID, &s.Player, &s.TotalPoints, &s.Bullseyes, &s.RoundsPlayed); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		standings = append(standings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}
	return standings, nil
}
