// Package score keeps the tavern scoreboard: every finished voyage in
// a small SQLite database.
package score

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	player      TEXT NOT NULL,
	outcome     TEXT NOT NULL,
	cause       TEXT NOT NULL DEFAULT '',
	score       INTEGER NOT NULL,
	turns       INTEGER NOT NULL,
	pirate_lord TEXT NOT NULL,
	finished_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_score ON runs (score DESC, finished_at);
`

// Run is one finished voyage.
type Run struct {
	ID         int64
	Player     string
	Outcome    string
	Cause      string
	Score      int
	Turns      int
	PirateLord string
	FinishedAt time.Time
}

type Store struct {
	db *sql.DB
}

// Open creates or opens the scoreboard at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create score dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open scoreboard: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init scoreboard: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) RecordRun(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (player, outcome, cause, score, turns, pirate_lord, finished_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Player, run.Outcome, run.Cause, run.Score, run.Turns, run.PirateLord, run.FinishedAt)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// TopRuns returns up to n runs, best score first.
func (s *Store) TopRuns(ctx context.Context, n int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, player, outcome, cause, score, turns, pirate_lord, finished_at
		 FROM runs ORDER BY score DESC, finished_at ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query scoreboard: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Player, &r.Outcome, &r.Cause,
			&r.Score, &r.Turns, &r.PirateLord, &r.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
