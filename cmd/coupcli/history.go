package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// matchHistory logs the decisions of a driven game (match id, turn number,
// player, and move; no coin or hand snapshot is stored) for later review. It does not persist the search tree or any game state: §5
// forbids that outright, and nothing here would let a process resume a
// game, only read back what happened in one.
type matchHistory struct {
	db *sql.DB
}

// openMatchHistory opens (creating if needed) a SQLite-backed history
// log at dbPath.
func openMatchHistory(dbPath string) (*matchHistory, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("coupcli: open history db: %w", err)
	}
	if err := createHistoryTables(db); err != nil {
		db.Close()
		return nil, err
	}
	return &matchHistory{db: db}, nil
}

func createHistoryTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			num_players INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("coupcli: create matches table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS decisions (
			match_id TEXT NOT NULL,
			turn INTEGER NOT NULL,
			player INTEGER NOT NULL,
			move TEXT NOT NULL,
			recorded_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("coupcli: create decisions table: %w", err)
	}
	return nil
}

func (h *matchHistory) recordMatchStart(matchID string, numPlayers int, seed int64) error {
	_, err := h.db.Exec(
		`INSERT INTO matches (id, num_players, seed, started_at) VALUES (?, ?, ?, ?)`,
		matchID, numPlayers, seed, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("coupcli: record match start: %w", err)
	}
	return nil
}

func (h *matchHistory) recordDecision(matchID string, turn, player int, move string) error {
	_, err := h.db.Exec(
		`INSERT INTO decisions (match_id, turn, player, move, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		matchID, turn, player, move, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("coupcli: record decision: %w", err)
	}
	return nil
}

func (h *matchHistory) Close() error {
	return h.db.Close()
}
