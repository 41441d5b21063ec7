// Package store provides persistence for projects, API usage and error logs.
package store

import (
	"context"
	"time"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

// UsageEntry is one append-only record of a generation API attempt.
type UsageEntry struct {
	KeyPrefix    string
	UserID       int64
	Endpoint     string
	StatusCode   int
	ResponseTime float64
	TokensUsed   int
	CreatedAt    time.Time
}

// ErrorEntry is one append-only error-log record.
type ErrorEntry struct {
	UserID    int64
	Kind      string
	Message   string
	CreatedAt time.Time
}

// Repository defines the persistence operations the core depends on. All
// writes are append-only; the core never reads back.
type Repository interface {
	// SaveProject persists a completed generation run.
	SaveProject(ctx context.Context, rec *model.ProjectRecord) error

	// LogUsage records one generation API attempt.
	LogUsage(ctx context.Context, entry *UsageEntry) error

	// LogError records a terminal non-validation failure.
	LogError(ctx context.Context, entry *ErrorEntry) error

	// Ping verifies storage connectivity.
	Ping(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
