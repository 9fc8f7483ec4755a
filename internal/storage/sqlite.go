// Package storage keeps the session leaderboard in an in-memory SQLite
// database. It uses the pure-Go modernc.org/sqlite driver, so no CGO is
// needed. Nothing is written to disk; the leaderboard lives as long as the
// process.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// memoryDSN opens a private in-memory database.
const memoryDSN = ":memory:"

// Store manages the leaderboard database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// Open creates an empty in-memory leaderboard.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Each connection to :memory: is a separate database; pin to one.
	db.SetMaxOpenConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			lines INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and discards the leaderboard.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game and returns its ID.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	if e.GameID == "" {
		return 0, errors.New("storage: cannot save score: empty game id")
	}
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, player, score, lines, level) VALUES (?, ?, ?, ?, ?)",
		e.GameID, e.Player, e.Score, e.Lines, e.Level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given game. Equal scores
// keep the order they were recorded in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, lines, level, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Lines, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the highest score for the given game, or 0.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Rank returns the 1-based leaderboard position a score would take.
func (s *Store) Rank(gameID string, score int) (int, error) {
	var better int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM scores WHERE game_id = ? AND score > ?",
		gameID, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	return better + 1, nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalLines int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(SUM(lines), 0), MAX(created_at)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalLines, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and the text form SQLite returns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse("2006-01-02 15:04:05", string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
