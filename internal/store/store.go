// Package store provides persistence for feedback records, backed by
// PostgreSQL in deployment and by an embedded SQLite database for local
// development.
package store

import (
	"context"
	"time"
)

// Feedback type values accepted by the store.
const (
	TypePositive = "positive"
	TypeNegative = "negative"
)

// ValidType reports whether t is an accepted feedback type.
func ValidType(t string) bool {
	return t == TypePositive || t == TypeNegative
}

// NewFeedback is a feedback submission before the store has assigned
// identity and timestamp. Optional fields are nil when absent.
type NewFeedback struct {
	Type    string
	Name    *string
	Email   *string
	Message *string
}

// Feedback is a persisted feedback record. ID and CreatedAt are assigned
// by the store at insert time and never change.
type Feedback struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the feedback persistence contract. Feedback records are
// append-only: nothing updates or deletes them.
type Store interface {
	// InsertFeedback persists a submission and returns the assigned id.
	InsertFeedback(ctx context.Context, f NewFeedback) (int64, error)

	// ListFeedbacks returns all records ordered by created_at descending,
	// newest insert first on timestamp ties.
	ListFeedbacks(ctx context.Context) ([]Feedback, error)

	// Ping reports whether the backing database is reachable.
	Ping(ctx context.Context) error

	// Close releases the underlying connections.
	Close() error
}
