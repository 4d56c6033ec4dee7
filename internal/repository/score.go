package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ScoreRepository - durable per-user score totals, kept across rooms.
type ScoreRepository interface {
	AddPoint(ctx context.Context, userID string) error
	GetByUserID(ctx context.Context, userID string) (int, error)
}

type dbScore struct {
	conn *sql.DB
}

func NewScoreRepository(conn *sql.DB) ScoreRepository {
	return &dbScore{
		conn: conn,
	}
}

func (that *dbScore) AddPoint(ctx context.Context, userID string) error {
	query := `INSERT INTO scores (user_id, points) VALUES (?, 1)
		ON CONFLICT(user_id) DO UPDATE SET points = points + 1`

	_, err := that.conn.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("can't save score: %w", err)
	}

	return nil
}

func (that *dbScore) GetByUserID(ctx context.Context, userID string) (int, error) {
	query := `SELECT points FROM scores WHERE user_id = ?`

	var points int

	err := that.conn.QueryRowContext(ctx, query, userID).Scan(&points)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("can't find score: %w", err)
	}

	return points, nil
}
