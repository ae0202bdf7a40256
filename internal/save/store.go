// Package save persists saved games in a SQLite database.
package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dungeon-kernel/internal/game"

	_ "modernc.org/sqlite"
)

// ErrNoSave is returned by Load when the slot holds no saved game.
var ErrNoSave = errors.New("no saved game")

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	depth      INTEGER NOT NULL,
	snapshot   TEXT NOT NULL,
	updated_at INTEGER NOT NULL
)`

// Store is a SQLite database of saved games, one per slot.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (creating if needed) the save database at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("save path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create save dir: %w", err)
		}
	}

	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// The SSH server saves from many sessions at once; one connection
	// serialises the writers.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Slot returns the save slot called name. The local game uses one slot;
// the SSH server uses one per user.
func (s *Store) Slot(name string) *Slot {
	return &Slot{store: s, name: name}
}

// Slots lists the slots holding a save, most recently written first.
func (s *Store) Slots(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT slot FROM saves ORDER BY updated_at DESC, slot`)
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan save slot: %w", err)
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}
	return out, nil
}

// Slot is one saved-game slot. It implements game.SaveStore.
type Slot struct {
	store *Store
	name  string
}

var _ game.SaveStore = (*Slot)(nil)

// Save replaces the slot's saved game.
func (s *Slot) Save(ctx context.Context, snap game.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	_, err = s.store.sqlDB.ExecContext(ctx, `
		INSERT INTO saves (slot, depth, snapshot, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			depth = excluded.depth,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at`,
		s.name, snap.Map.Depth, string(data), time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", s.name, err)
	}
	return nil
}

// Load returns the slot's saved game, or ErrNoSave.
func (s *Slot) Load(ctx context.Context) (game.Snapshot, error) {
	var raw string
	err := s.store.sqlDB.QueryRowContext(ctx, `SELECT snapshot FROM saves WHERE slot = ?`, s.name).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, ErrNoSave
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("load slot %q: %w", s.name, err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}

// Exists reports whether the slot holds a save. Query errors count as no.
func (s *Slot) Exists(ctx context.Context) bool {
	var n int
	err := s.store.sqlDB.QueryRowContext(ctx, `SELECT COUNT(*) FROM saves WHERE slot = ?`, s.name).Scan(&n)
	return err == nil && n > 0
}

// Delete removes the slot's save. Deleting an empty slot is not an error.
func (s *Slot) Delete(ctx context.Context) error {
	if _, err := s.store.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, s.name); err != nil {
		return fmt.Errorf("delete slot %q: %w", s.name, err)
	}
	return nil
}
