// Package storage provides SQLite-based persistence for hunt scores: the
// high-score blob of each game variant and a history of finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/arcade-hunt/internal/hunt"
)

// DefaultPath is where the CLI keeps its database.
const DefaultPath = "~/.arcade/hunt.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one finished game in the score history.
type ScoreEntry struct {
	ID        int64
	SessionID uuid.UUID
	Variant   string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			variant TEXT PRIMARY KEY,
			points INTEGER NOT NULL,
			level INTEGER NOT NULL,
			recorded_at TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished game of a variant.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(sessionID uuid.UUID, variant string, score, level int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (session_id, variant, score, level) VALUES (?, ?, ?, ?)",
		sessionID.String(), variant, score, level,
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

// TopScores retrieves the top N scores of a variant, best first.
func (s *Store) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, variant, score, level, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var sessionID string
		var createdAt any
		if err := rows.Scan(&e.ID, &sessionID, &e.Variant, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if e.SessionID, err = uuid.Parse(sessionID); err != nil {
			return nil, fmt.Errorf("storage: bad session id %q: %w", sessionID, err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the best score in the history of a variant.
// Returns 0 if no scores exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the history and the high score of a variant.
func (s *Store) ClearScores(variant string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE variant = ?", variant); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// LoadHighScore reads the persisted high score of a variant. A variant
// without one yields a zero score.
func (s *Store) LoadHighScore(variant string) (hunt.Score, error) {
	var (
		sc         hunt.Score
		recordedAt string
	)
	err := s.db.QueryRow(
		"SELECT points, level, recorded_at FROM high_scores WHERE variant = ?",
		variant,
	).Scan(&sc.Points, &sc.LevelNumber, &recordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return hunt.Score{}, nil
	}
	if err != nil {
		return hunt.Score{}, fmt.Errorf("storage: cannot load high score: %w", err)
	}

	sc.Date, err = time.Parse(time.RFC3339Nano, recordedAt)
	if err != nil {
		return hunt.Score{}, fmt.Errorf("storage: bad high score date %q: %w", recordedAt, err)
	}
	return sc, nil
}

// SaveHighScore replaces the persisted high score of a variant.
// Dates are stored in UTC.
func (s *Store) SaveHighScore(variant string, sc hunt.Score) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (variant, points, level, recorded_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(variant) DO UPDATE SET
		   points = excluded.points,
		   level = excluded.level,
		   recorded_at = excluded.recorded_at`,
		variant, sc.Points, sc.LevelNumber, sc.Date.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// Blob returns the high-score blob of one variant as a hunt.ScoreStore.
func (s *Store) Blob(variant string) hunt.ScoreStore {
	return variantBlob{store: s, variant: variant}
}

type variantBlob struct {
	store   *Store
	variant string
}

func (b variantBlob) LoadHighScore() (hunt.Score, error) {
	return b.store.LoadHighScore(b.variant)
}

func (b variantBlob) SaveHighScore(sc hunt.Score) error {
	return b.store.SaveHighScore(b.variant, sc)
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for a variant.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE variant = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp converts a DATETIME column, which the driver hands back
// either as time.Time or as text.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
