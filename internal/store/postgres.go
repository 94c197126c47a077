package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConfig holds connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// PostgresStore implements Store on a pgx connection pool. Connections are
// acquired from the pool per query and released on every path, so nothing
// is retained across requests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects to PostgreSQL, verifies the connection, and
// ensures the feedbacks table exists.
func NewPostgresStore(ctx context.Context, config PostgresConfig) (*PostgresStore, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host,
		config.Port,
		config.DBName,
	)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}

	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

// ensureSchema creates the feedbacks table if it does not exist. There are
// no further migrations; the schema is a single append-only table.
func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS feedbacks (
			id SERIAL PRIMARY KEY,
			type VARCHAR(20) NOT NULL,
			name VARCHAR(100),
			email VARCHAR(100),
			message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// InsertFeedback persists a submission and returns the id assigned by the
// database.
func (s *PostgresStore) InsertFeedback(ctx context.Context, f NewFeedback) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO feedbacks (type, name, email, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		f.Type, f.Name, f.Email, f.Message,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}

	return id, nil
}

// ListFeedbacks returns all feedback records, newest first.
func (s *PostgresStore) ListFeedbacks(ctx context.Context) ([]Feedback, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, type, name, email, message, created_at
		 FROM feedbacks
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list feedbacks: %w", err)
	}
	defer rows.Close()

	var feedbacks []Feedback
	for rows.Next() {
		var f Feedback
		if err := rows.Scan(&f.ID, &f.Type, &f.Name, &f.Email, &f.Message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		feedbacks = append(feedbacks, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Ping verifies the database is reachable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
