package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on an embedded SQLite database. It is the
// zero-configuration fallback used when no database host is configured.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database file at dbPath and ensures
// the feedbacks table exists.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{
		db:   db,
		path: dbPath,
	}

	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) ensureSchema() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS feedbacks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			type TEXT NOT NULL CHECK(type IN ('positive', 'negative')),
			name TEXT,
			email TEXT,
			message TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// InsertFeedback persists a submission and returns the assigned rowid.
// The timestamp is assigned here rather than by a column default so it
// round-trips as a time.Time through the driver.
func (s *SQLiteStore) InsertFeedback(ctx context.Context, f NewFeedback) (int64, error) {
	result, err := s.db.ExecContext(ctx,
		`INSERT INTO feedbacks (type, name, email, message, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		f.Type, f.Name, f.Email, f.Message, time.Now().UTC(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert feedback id: %w", err)
	}

	return id, nil
}

// ListFeedbacks returns all feedback records, newest first.
func (s *SQLiteStore) ListFeedbacks(ctx context.Context) ([]Feedback, error) {
	rows, err := s.db.QueryContext(ctx,
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
		var name, email, message sql.NullString
		if err := rows.Scan(&f.ID, &f.Type, &name, &email, &message, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		f.Name = nullableString(name)
		f.Email = nullableString(email)
		f.Message = nullableString(message)
		feedbacks = append(feedbacks, f)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return feedbacks, nil
}

// Ping verifies the database file is usable.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
