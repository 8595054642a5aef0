// Package persistence provides SQLite-backed save storage and the offline
// earnings catch-up applied on load.
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/whoo-works/internal/game"
)

// Fixed storage keys. The game state and the settings record live in
// separate slots.
const (
	SaveKey     = "whoo_works_save"
	SettingsKey = "whoo_works_settings"
)

var (
	// ErrNoSave means the slot is empty (fresh install).
	ErrNoSave = errors.New("no save present")
	// ErrSchemaMismatch means the save was written by a different schema
	// version. Loads fall back to the initial state rather than guessing a
	// migration.
	ErrSchemaMismatch = errors.New("save schema version mismatch")
)

// DB wraps a SQLite connection holding the save slots.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS save_slots (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// SaveState serializes the full game state into its slot.
func (db *DB) SaveState(st *game.State) error {
	blob, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	return db.put(SaveKey, string(blob))
}

// LoadState reads and validates the saved game state.
func (db *DB) LoadState() (*game.State, error) {
	raw, err := db.get(SaveKey)
	if err != nil {
		return nil, err
	}

	var st game.State
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	if st.SchemaVersion != game.CurrentSchemaVersion {
		return nil, fmt.Errorf("%w: saved %d, current %d",
			ErrSchemaMismatch, st.SchemaVersion, game.CurrentSchemaVersion)
	}
	return &st, nil
}

// SaveSettings serializes the settings record into its own slot.
func (db *DB) SaveSettings(s game.Settings) error {
	blob, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	return db.put(SettingsKey, string(blob))
}

// LoadSettings reads the saved settings record.
func (db *DB) LoadSettings() (game.Settings, error) {
	var s game.Settings
	raw, err := db.get(SettingsKey)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return s, fmt.Errorf("unmarshal settings: %w", err)
	}
	return s, nil
}

func (db *DB) put(key, value string) error {
	_, err := db.conn.Exec(`INSERT INTO save_slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli())
	return err
}

func (db *DB) get(key string) (string, error) {
	var value string
	err := db.conn.Get(&value, `SELECT value FROM save_slots WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNoSave
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// LoadOrInitial returns the saved state with offline earnings applied, or a
// fresh initial state when no usable save exists. Load failures of any kind
// are logged and swallowed — the game always starts.
func LoadOrInitial(db *DB, ro *game.Roster, now time.Time) *game.State {
	if db == nil {
		return game.NewInitialState(ro, now)
	}

	st, err := db.LoadState()
	if err != nil {
		if errors.Is(err, ErrNoSave) {
			slog.Info("no save found, starting fresh")
		} else {
			slog.Warn("save unusable, starting fresh", "error", err)
		}
		return game.NewInitialState(ro, now)
	}

	credited := ApplyOfflineCatchUp(st, now)
	if credited > 0 {
		slog.Info("offline earnings credited", "owl_cash", credited)
	}
	return st
}
