package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/sitecraft-ai/sitecraft/internal/model"
)

// SQLiteStore implements Repository using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a new SQLite-backed repository.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	// WAL mode so generation workers and the admin health check do not
	// contend on a single writer.
	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	query := `
	PRAGMA busy_timeout = 5000;
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		user_id INTEGER NOT NULL,
		project_type TEXT NOT NULL,
		description TEXT NOT NULL,
		project_data TEXT NOT NULL,
		status TEXT NOT NULL,
		quality_score INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_projects_user ON projects(user_id);

	CREATE TABLE IF NOT EXISTS api_usage (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		api_key TEXT NOT NULL,
		user_id INTEGER NOT NULL,
		endpoint TEXT NOT NULL,
		status_code INTEGER NOT NULL,
		response_time REAL NOT NULL,
		tokens_used INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS error_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		error_type TEXT NOT NULL,
		error_message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(query); err != nil {
		return err
	}
	return nil
}

// SaveProject persists a completed generation run.
func (s *SQLiteStore) SaveProject(ctx context.Context, rec *model.ProjectRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (id, user_id, project_type, description, project_data, status, quality_score, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.UserID, rec.ProjectType, rec.Description, rec.ArtifactJSON,
		string(rec.Status), rec.QualityScore,
		rec.CreatedAt.UTC().Format(time.RFC3339), rec.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// LogUsage records one generation API attempt.
func (s *SQLiteStore) LogUsage(ctx context.Context, entry *UsageEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO api_usage (api_key, user_id, endpoint, status_code, response_time, tokens_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.KeyPrefix, entry.UserID, entry.Endpoint, entry.StatusCode,
		entry.ResponseTime, entry.TokensUsed, entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert usage entry: %w", err)
	}
	return nil
}

// LogError records a terminal non-validation failure.
func (s *SQLiteStore) LogError(ctx context.Context, entry *ErrorEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO error_logs (user_id, error_type, error_message, created_at)
		 VALUES (?, ?, ?, ?)`,
		entry.UserID, entry.Kind, entry.Message, entry.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert error entry: %w", err)
	}
	return nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ProjectCount returns the number of persisted projects for a user.
// Used by operational tooling and tests; the core itself never reads back.
func (s *SQLiteStore) ProjectCount(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM projects WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

// UsageEntries returns the recorded API attempts for a user, oldest first.
func (s *SQLiteStore) UsageEntries(ctx context.Context, userID int64) ([]UsageEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT api_key, user_id, endpoint, status_code, response_time, tokens_used, created_at
		 FROM api_usage WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []UsageEntry
	for rows.Next() {
		var e UsageEntry
		var created string
		if err := rows.Scan(&e.KeyPrefix, &e.UserID, &e.Endpoint, &e.StatusCode,
			&e.ResponseTime, &e.TokensUsed, &created); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339, created)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
