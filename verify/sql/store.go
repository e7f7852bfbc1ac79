package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the Postgres-backed verification store, for deployments
// that need atomic per-user updates instead of the flat-file
// whole-document rewrite
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Postgres verification store over the given pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		pool: pool,
	}
}

// Init creates the backing table if it is not present
func (s *Store) Init(ctx context.Context) error {
	_, err := s.pool.Exec(
		ctx,
		`CREATE TABLE IF NOT EXISTS verified_users (
			user_id  BIGINT PRIMARY KEY,
			verified BOOLEAN NOT NULL DEFAULT FALSE
		)`,
	)
	if err != nil {
		return fmt.Errorf("unable to initialize verification table: %w", err)
	}

	return nil
}

func (s *Store) IsVerified(ctx context.Context, userID int64) (bool, error) {
	var verified bool

	err := s.pool.QueryRow(
		ctx,
		`SELECT verified FROM verified_users WHERE user_id = $1`,
		userID,
	).Scan(&verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("unable to fetch verification flag: %w", err)
	}

	return verified, nil
}

func (s *Store) SetVerified(ctx context.Context, userID int64, verified bool) error {
	_, err := s.pool.Exec(
		ctx,
		`INSERT INTO verified_users (user_id, verified)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET verified = EXCLUDED.verified`,
		userID,
		verified,
	)
	if err != nil {
		return fmt.Errorf("unable to save verification flag: %w", err)
	}

	return nil
}
