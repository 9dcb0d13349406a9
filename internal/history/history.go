// Copyright Speech Synthesis Lab, 2026. All rights reserved.

// Package history persists one row per deck build in a SQLite database so
// past runs can be listed. Recording is best-effort for callers: a history
// failure should never fail a build.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/speechlab/slidegen/pkg/types"
)

// Store manages the build history SQLite database.
type Store struct {
	db *sql.DB
}

// Build is one recorded deck build.
type Build struct {
	ID         int64
	StartedAt  time.Time
	TextDir    string
	OutputPath string
	Snippets   []string
	Passes     int
	Succeeded  bool
	Duration   time.Duration
}

// Open opens or creates the history database at cfg.DBPath, creating parent
// directories and the schema as needed.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS builds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		started_at TEXT NOT NULL,
		text_dir TEXT NOT NULL,
		output_path TEXT NOT NULL,
		snippets TEXT NOT NULL,
		passes INTEGER NOT NULL,
		succeeded INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL
	)`)
	return err
}

// Record inserts one build record.
func (s *Store) Record(rec *types.BuildRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO builds (started_at, text_dir, output_path, snippets, passes, succeeded, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.StartedAt.UTC().Format(time.RFC3339),
		rec.TextDir,
		rec.OutputPath,
		strings.Join(rec.Snippets, ","),
		len(rec.Passes),
		rec.Succeeded,
		rec.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording build: %w", err)
	}
	return nil
}

// Recent returns the most recent builds, newest first, up to limit.
func (s *Store) Recent(limit int) ([]Build, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(
		`SELECT id, started_at, text_dir, output_path, snippets, passes, succeeded, duration_ms
		 FROM builds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		var (
			b          Build
			startedAt  string
			snippets   string
			durationMS int64
		)
		if err := rows.Scan(&b.ID, &startedAt, &b.TextDir, &b.OutputPath,
			&snippets, &b.Passes, &b.Succeeded, &durationMS); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			b.StartedAt = t
		}
		if snippets != "" {
			b.Snippets = strings.Split(snippets, ",")
		}
		b.Duration = time.Duration(durationMS) * time.Millisecond
		builds = append(builds, b)
	}
	return builds, rows.Err()
}
