package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/korjavin/drills/models"
	_ "github.com/mattn/go-sqlite3"
)

// DB handles all database operations
type DB struct {
	conn *sql.DB
}

// New creates a new database connection and initializes tables
func New(dbPath string) (*DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	// Bot sessions write concurrently; sqlite wants a single writer.
	db.SetMaxOpenConns(1)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	if err = createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables creates the necessary tables if they don't exist
func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			game TEXT NOT NULL,
			prompt TEXT NOT NULL,
			correct BOOLEAN NOT NULL,
			timestamp INTEGER NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`CREATE INDEX IF NOT EXISTS attempts_player ON attempts (player, game)`)
	return err
}

// SaveAttempt records one tallied answer. A zero Timestamp is set to now.
func (db *DB) SaveAttempt(a models.Attempt) error {
	if a.Timestamp == 0 {
		a.Timestamp = time.Now().Unix()
	}
	_, err := db.conn.Exec(
		"INSERT INTO attempts (session_id, player, game, prompt, correct, timestamp) VALUES (?, ?, ?, ?, ?, ?)",
		a.Session, a.Player, a.Game, a.Prompt, a.Correct, a.Timestamp,
	)
	return err
}

// Stats retrieves how many answers the player got right and wrong.
// An empty game counts every game.
func (db *DB) Stats(player, game string) (correct int, incorrect int, err error) {
	err = db.conn.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN correct = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN correct = 0 THEN 1 ELSE 0 END), 0)
		 FROM attempts WHERE player = ? AND (? = '' OR game = ?)`,
		player, game, game,
	).Scan(&correct, &incorrect)
	return correct, incorrect, err
}

// SessionStats retrieves the tally of a single session.
func (db *DB) SessionStats(sessionID string) (correct int, incorrect int, err error) {
	err = db.conn.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN correct = 1 THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN correct = 0 THEN 1 ELSE 0 END), 0)
		 FROM attempts WHERE session_id = ?`,
		sessionID,
	).Scan(&correct, &incorrect)
	return correct, incorrect, err
}

// MostMissed gets the prompts the player most frequently answered incorrectly
func (db *DB) MostMissed(player string, limit int) ([]models.MissedPrompt, error) {
	rows, err := db.conn.Query(`
		SELECT game, prompt, COUNT(*) as count
		FROM attempts
		WHERE player = ? AND correct = 0
		GROUP BY game, prompt
		ORDER BY count DESC, MAX(timestamp) DESC
		LIMIT ?
	`, player, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MissedPrompt
	for rows.Next() {
		var m models.MissedPrompt
		if err := rows.Scan(&m.Game, &m.Prompt, &m.Misses); err != nil {
			return nil, err
		}
		result = append(result, m)
	}

	return result, rows.Err()
}

// Games returns the games the player has attempts for, most played first.
func (db *DB) Games(player string) ([]string, error) {
	rows, err := db.conn.Query(`
		SELECT game FROM attempts
		WHERE player = ?
		GROUP BY game
		ORDER BY COUNT(*) DESC, game ASC`,
		player)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []string
	for rows.Next() {
		var game string
		if err := rows.Scan(&game); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
