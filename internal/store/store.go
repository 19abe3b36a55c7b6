// Package store provides SQLite-backed saved-game storage. It persists the
// engine's snapshot boundary and never contains rules logic of its own.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"hexrift/internal/game"
)

// ErrNotFound is returned when a saved game id does not exist.
var ErrNotFound = errors.New("saved game not found")

// SavedGame is one row of the saves table, snapshot decoded.
type SavedGame struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
	Snapshot  game.Snapshot `db:"-"`
}

type savedGameRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
	Snapshot  string    `db:"snapshot"`
}

// Store wraps a SQLite connection for saved games.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saved_games (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		snapshot TEXT NOT NULL
	);
	`
	_, err := s.conn.Exec(schema)
	return err
}

// Save inserts a new saved game and returns its generated id.
func (s *Store) Save(name string, snap game.Snapshot) (string, error) {
	raw, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err = s.conn.Exec(
		`INSERT INTO saved_games (id, name, created_at, updated_at, snapshot) VALUES (?, ?, ?, ?, ?)`,
		id, name, now, now, string(raw),
	)
	if err != nil {
		return "", fmt.Errorf("insert saved game: %w", err)
	}
	slog.Info("game saved", "id", id, "name", name, "cells", len(snap.Cells))
	return id, nil
}

// Update overwrites the snapshot of an existing saved game.
func (s *Store) Update(id string, snap game.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	res, err := s.conn.Exec(
		`UPDATE saved_games SET snapshot = ?, updated_at = ? WHERE id = ?`,
		string(raw), time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("update saved game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Load fetches one saved game by id.
func (s *Store) Load(id string) (SavedGame, error) {
	var row savedGameRow
	err := s.conn.Get(&row, `SELECT id, name, created_at, updated_at, snapshot FROM saved_games WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SavedGame{}, ErrNotFound
	}
	if err != nil {
		return SavedGame{}, fmt.Errorf("load saved game: %w", err)
	}
	return row.decode()
}

// List returns all saved games, newest first.
func (s *Store) List() ([]SavedGame, error) {
	var rows []savedGameRow
	err := s.conn.Select(&rows, `SELECT id, name, created_at, updated_at, snapshot FROM saved_games ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list saved games: %w", err)
	}
	out := make([]SavedGame, 0, len(rows))
	for _, row := range rows {
		sg, err := row.decode()
		if err != nil {
			slog.Warn("skipping corrupt saved game", "id", row.ID, "error", err)
			continue
		}
		out = append(out, sg)
	}
	return out, nil
}

// Delete removes a saved game by id.
func (s *Store) Delete(id string) error {
	res, err := s.conn.Exec(`DELETE FROM saved_games WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete saved game: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r savedGameRow) decode() (SavedGame, error) {
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(r.Snapshot), &snap); err != nil {
		return SavedGame{}, fmt.Errorf("decode snapshot %s: %w", r.ID, err)
	}
	return SavedGame{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		Snapshot:  snap,
	}, nil
}
