// Package storage keeps the high-score table in a local SQLite file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultLimit = 10

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	score INTEGER NOT NULL,
	seed INTEGER NOT NULL DEFAULT 0,
	played_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_by_score ON runs(score DESC, id ASC);`

// Store is the run history. The game itself never reads it back.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished game.
type Run struct {
	ID       int64
	Score    int
	Seed     int64
	PlayedAt time.Time
}

// Open opens the database at path, creating it and its directory if needed.
func Open(path string) (*Store, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: schema %s: %w", path, err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// resolvePath expands a leading ~ to the home directory.
func resolvePath(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: %w", err)
	}
	return filepath.Join(home, rest), nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore records a finished run and returns its row id.
func (s *Store) SaveScore(score int, seed int64) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (score, seed, played_at) VALUES (?, ?, ?)",
		score, seed, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: save %d: %w", score, err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit runs, best first. Ties keep insertion order.
func (s *Store) TopScores(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.db.Query(
		"SELECT id, score, seed, played_at FROM runs ORDER BY score DESC, id ASC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: top scores: %w", err)
	}
	defer rows.Close()

	runs := make([]Run, 0, limit)
	for rows.Next() {
		var (
			r    Run
			unix int64
		)
		if err := rows.Scan(&r.ID, &r.Score, &r.Seed, &unix); err != nil {
			return nil, fmt.Errorf("storage: top scores: %w", err)
		}
		r.PlayedAt = time.Unix(unix, 0)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// HighScore is the best score so far, 0 when nothing was recorded.
func (s *Store) HighScore() (int, error) {
	var best int
	err := s.db.QueryRow("SELECT COALESCE(MAX(score), 0) FROM runs").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: high score: %w", err)
	}
	return best, nil
}

// ClearScores drops every recorded run.
func (s *Store) ClearScores() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: clear: %w", err)
	}
	return nil
}
