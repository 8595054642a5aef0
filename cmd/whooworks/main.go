// Command whooworks runs the Whoo Works idle-economy simulation.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/whoo-works/internal/api"
	"github.com/talgya/whoo-works/internal/config"
	"github.com/talgya/whoo-works/internal/engine"
	"github.com/talgya/whoo-works/internal/entropy"
	"github.com/talgya/whoo-works/internal/game"
	"github.com/talgya/whoo-works/internal/persistence"
	"github.com/talgya/whoo-works/internal/store"
)

func main() {
	configPath := flag.String("config", "whoo.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	var src entropy.Source = entropy.Crypto{}
	if cfg.Seed != 0 {
		src = entropy.Seeded(cfg.Seed)
		slog.Info("deterministic roster generation", "seed", cfg.Seed)
	}

	// ── Database ──────────────────────────────────────────────────────
	// A broken database never stops the game: run in-memory and keep
	// retrying saves on the flush cadence.
	os.MkdirAll(filepath.Dir(cfg.DBPath), 0755)
	db, err := persistence.Open(cfg.DBPath)
	if err != nil {
		slog.Warn("database unavailable, running without persistence", "error", err)
		db = nil
	} else {
		defer db.Close()
	}

	// ── Load state (with offline catch-up) ────────────────────────────
	roster := game.NewRoster(src)
	state := persistence.LoadOrInitial(db, roster, time.Now())
	st := store.New(state, src)

	player := st.Player()
	slog.Info("game ready",
		"level", player.Level,
		"owl_cash", humanize.CommafWithDigits(player.Currencies.OwlCash, 1),
		"diamonds", player.Currencies.Diamonds,
		"started", humanize.Time(time.UnixMilli(state.GameStartTime)),
	)

	// ── Clock wiring ──────────────────────────────────────────────────
	clock := engine.New()
	clock.Interval = cfg.TickInterval.Std()
	clock.FlushEvery = cfg.FlushEvery()
	clock.OnTick = func(dt float64) {
		st.Tick(dt)
	}

	var lastFlushed uint64
	clock.OnFlush = func() {
		if db == nil {
			return
		}
		rev := st.Revision()
		if rev == lastFlushed {
			return
		}
		if err := saveSnapshot(db, st); err != nil {
			slog.Warn("save failed, will retry", "error", err)
			return
		}
		lastFlushed = rev
	}

	// ── Observation API ───────────────────────────────────────────────
	if cfg.APIPort > 0 {
		(&api.Server{Store: st, Port: cfg.APIPort}).Start()
	}

	// ── Run until shutdown signal ─────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock.Run(ctx)

	if db != nil {
		if err := saveSnapshot(db, st); err != nil {
			slog.Error("final save failed", "error", err)
		} else {
			slog.Info("final save complete")
		}
	}
}

// saveSnapshot persists a snapshot with a fresh save timestamp, so the next
// load computes offline earnings from the real gap.
func saveSnapshot(db *persistence.DB, st *store.Store) error {
	snap := st.Snapshot()
	snap.LastSaveTime = time.Now().UnixMilli()
	if err := db.SaveState(snap); err != nil {
		return err
	}
	return db.SaveSettings(snap.Settings)
}
