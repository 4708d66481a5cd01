package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Result is one finished session.
type Result struct {
	PlayedAt    time.Time
	PlayerScore int
	EnemyScore  int
	Winner      string
	Duration    time.Duration
}

// ResultStore persists finished sessions to SQLite for the local
// leaderboard. Live game state is never persisted.
type ResultStore struct {
	db *sql.DB
}

// OpenResultStore opens (creating if needed) the results database at path.
func OpenResultStore(path string) (*ResultStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open results db: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		played_at DATETIME NOT NULL,
		player_score INTEGER NOT NULL,
		enemy_score INTEGER NOT NULL,
		winner TEXT NOT NULL,
		duration_ms INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create results table: %w", err)
	}

	return &ResultStore{db: db}, nil
}

// Save appends one finished session.
func (s *ResultStore) Save(res Result) error {
	_, err := s.db.Exec(
		`INSERT INTO results (played_at, player_score, enemy_score, winner, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		res.PlayedAt, res.PlayerScore, res.EnemyScore, res.Winner,
		res.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

// Top returns the best sessions by player score, newest first on ties.
func (s *ResultStore) Top(limit int) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT played_at, player_score, enemy_score, winner, duration_ms
		 FROM results ORDER BY player_score DESC, played_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var r Result
		var ms int64
		if err := rows.Scan(&r.PlayedAt, &r.PlayerScore, &r.EnemyScore, &r.Winner, &ms); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the database handle.
func (s *ResultStore) Close() error { return s.db.Close() }
