package persistence

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/talgya/whoo-works/internal/entropy"
	"github.com/talgya/whoo-works/internal/game"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testState() *game.State {
	return game.NewInitialState(
		game.NewRoster(entropy.Seeded(1)),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	db := openTestDB(t)

	st := testState()
	st.Player.Currencies.OwlCash = 1234.5
	st.Buildings[0].Rooms[0].Items.Desk = 2
	if err := db.SaveState(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := db.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Player.Currencies.OwlCash != 1234.5 {
		t.Errorf("owl cash %v, expected 1234.5", loaded.Player.Currencies.OwlCash)
	}
	if len(loaded.Buildings) != 5 {
		t.Fatalf("expected 5 buildings, got %d", len(loaded.Buildings))
	}
	room := loaded.Buildings[0].Rooms[0]
	if room.Items.Desk != 2 {
		t.Errorf("desk level %d, expected 2", room.Items.Desk)
	}
	if room.Company == nil || room.Company.Name != st.Buildings[0].Rooms[0].Company.Name {
		t.Errorf("company did not survive the round trip")
	}
	if len(room.Company.Employees) != len(st.Buildings[0].Rooms[0].Company.Employees) {
		t.Errorf("employee roster did not survive the round trip")
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	db := openTestDB(t)

	st := testState()
	if err := db.SaveState(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	st.Player.Level = 9
	if err := db.SaveState(st); err != nil {
		t.Fatalf("second save: %v", err)
	}

	loaded, err := db.LoadState()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Player.Level != 9 {
		t.Errorf("level %d, expected latest save to win", loaded.Player.Level)
	}
}

func TestLoadStateEmptySlot(t *testing.T) {
	db := openTestDB(t)
	if _, err := db.LoadState(); !errors.Is(err, ErrNoSave) {
		t.Errorf("expected ErrNoSave, got %v", err)
	}
}

func TestLoadStateSchemaMismatch(t *testing.T) {
	db := openTestDB(t)

	st := testState()
	st.SchemaVersion = 99
	if err := db.SaveState(st); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := db.LoadState(); !errors.Is(err, ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestLoadOrInitialFallsBack(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ro := game.NewRoster(entropy.Seeded(1))

	// No database at all.
	st := LoadOrInitial(nil, ro, now)
	if st.Player.Currencies.OwlCash != 1000 {
		t.Errorf("expected fresh state without a database")
	}

	// Empty slot.
	db := openTestDB(t)
	st = LoadOrInitial(db, ro, now)
	if st.Player.Currencies.OwlCash != 1000 || st.Player.Level != 1 {
		t.Errorf("expected fresh state from an empty slot")
	}

	// Unreadable schema.
	bad := testState()
	bad.SchemaVersion = 99
	bad.Player.Currencies.OwlCash = 999999
	if err := db.SaveState(bad); err != nil {
		t.Fatalf("save: %v", err)
	}
	st = LoadOrInitial(db, ro, now)
	if st.Player.Currencies.OwlCash != 1000 {
		t.Errorf("schema mismatch should reset to the initial state")
	}
}

func TestLoadOrInitialAppliesOfflineCatchUp(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	st := testState()
	st.Buildings[0].Rooms[0].EPS = 10
	st.Buildings[0].Rooms[1].EPS = 10
	st.LastSaveTime = now.Add(-time.Hour).UnixMilli()
	if err := db.SaveState(st); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := LoadOrInitial(db, game.NewRoster(entropy.Seeded(1)), now)
	// Both occupied rooms cap at 600 (10/s over an hour far exceeds it).
	if got := loaded.Player.Currencies.OwlCash; got != 1000+1200 {
		t.Errorf("owl cash %v, expected 2200 after offline credit", got)
	}
	if loaded.LastSaveTime != now.UnixMilli() {
		t.Errorf("last save time not advanced to load time")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	db := openTestDB(t)

	in := game.Settings{MusicEnabled: true, ReducedMotion: true, UIScale: 1.25}
	if err := db.SaveSettings(in); err != nil {
		t.Fatalf("save settings: %v", err)
	}
	out, err := db.LoadSettings()
	if err != nil {
		t.Fatalf("load settings: %v", err)
	}
	if out != in {
		t.Errorf("settings round trip mismatch: %+v vs %+v", out, in)
	}
}
