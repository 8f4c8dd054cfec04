package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/quizbank/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/quizbank/internal/core/domain"
	"github.com/custodia-labs/quizbank/internal/core/ports/driven"
)

// DatabaseFile is the history database file name.
const DatabaseFile = "history.db"

// Store is a SQLite-based storage for run history.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.quizbank/data/history.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".quizbank", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseFile)

	// Open database in WAL mode
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RunStore returns a RunStore interface backed by this store.
func (s *Store) RunStore() driven.RunStore {
	return &runStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Run Store ====================

// runStore implements driven.RunStore.
type runStore struct {
	store *Store
}

var _ driven.RunStore = (*runStore)(nil)

// SaveExtraction records an extraction run.
func (s *runStore) SaveExtraction(ctx context.Context, run domain.ExtractionRun) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO extraction_runs (id, input_path, output_path, encoding, fallback,
			paragraphs, questions, discarded_lines, written, started_at, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.InputPath, run.OutputPath, run.Encoding, run.Fallback,
		run.Paragraphs, run.Questions, run.DiscardedLines, run.Written,
		run.StartedAt.UTC(), run.Duration.Milliseconds())
	if err != nil {
		return fmt.Errorf("inserting extraction run: %w", err)
	}
	return nil
}

// ListExtractions returns the most recent extraction runs, newest first.
func (s *runStore) ListExtractions(ctx context.Context, limit int) ([]domain.ExtractionRun, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, input_path, output_path, encoding, fallback, paragraphs, questions,
			discarded_lines, written, started_at, duration_ms
		FROM extraction_runs
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying extraction runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.ExtractionRun{}
	for rows.Next() {
		var run domain.ExtractionRun
		var durationMS int64
		if err := rows.Scan(&run.ID, &run.InputPath, &run.OutputPath, &run.Encoding, &run.Fallback,
			&run.Paragraphs, &run.Questions, &run.DiscardedLines, &run.Written,
			&run.StartedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning extraction run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SaveValidation records a validation run.
func (s *runStore) SaveValidation(ctx context.Context, run domain.ValidationRun) error {
	if run.ID == "" {
		return domain.ErrInvalidInput
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	hide := run.HideSuggestions
	if hide == nil {
		hide = []string{}
	}
	hideJSON, err := json.Marshal(hide)
	if err != nil {
		return fmt.Errorf("marshalling hide suggestions: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO validation_runs (id, bank_path, total, critical_count, image_warning_count,
			content_warning_count, hide_suggestions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.BankPath, run.Total, run.CriticalCount, run.ImageWarningCount,
		run.ContentWarningCount, string(hideJSON), run.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting validation run: %w", err)
	}
	return nil
}

// ListValidations returns the most recent validation runs, newest first.
func (s *runStore) ListValidations(ctx context.Context, limit int) ([]domain.ValidationRun, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, bank_path, total, critical_count, image_warning_count,
			content_warning_count, hide_suggestions, created_at
		FROM validation_runs
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, sqlLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("querying validation runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.ValidationRun{}
	for rows.Next() {
		var run domain.ValidationRun
		var hideJSON string
		if err := rows.Scan(&run.ID, &run.BankPath, &run.Total, &run.CriticalCount,
			&run.ImageWarningCount, &run.ContentWarningCount, &hideJSON, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning validation run: %w", err)
		}
		if err := json.Unmarshal([]byte(hideJSON), &run.HideSuggestions); err != nil {
			return nil, fmt.Errorf("unmarshaling hide suggestions: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// ==================== Helper Functions ====================

// sqlLimit converts a non-positive limit to SQLite's "no limit".
func sqlLimit(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}
