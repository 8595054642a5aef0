// Package store owns the authoritative in-memory game state. All mutation
// operations and the simulation tick serialize on one mutex; everything
// outside this package sees only deep-copied snapshots.
package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/whoo-works/internal/ambience"
	"github.com/talgya/whoo-works/internal/entropy"
	"github.com/talgya/whoo-works/internal/game"
)

// Typed rejection reasons. Every operation either fully applies or returns
// one of these with the state untouched.
var (
	ErrNotFound          = errors.New("not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrAtCapacity        = errors.New("at capacity")
	ErrLocked            = errors.New("building locked")
	ErrVacant            = errors.New("room has no company")
	ErrHeartsNotReached  = errors.New("hearts threshold not reached")
	ErrAlreadyClaimed    = errors.New("already claimed")
	ErrBadHeartLevel     = errors.New("heart level out of range")
)

// Store is the single-writer game state holder.
type Store struct {
	mu    sync.Mutex
	state *game.State

	roster *game.Roster
	field  *ambience.Field

	tick     uint64
	revision uint64

	now func() time.Time
}

// New wraps a loaded (or freshly initialized) state. The entropy source
// feeds roster generation; the ambience field is seeded from the game's
// start time so a save replays the same cosmetic drift.
func New(st *game.State, src entropy.Source) *Store {
	return &Store{
		state:  st,
		roster: game.NewRoster(src),
		field:  ambience.NewField(st.GameStartTime),
		now:    time.Now,
	}
}

// Revision returns the observable-change counter. It moves only when a tick
// or mutation produced a change worth persisting or rendering.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() *game.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Player returns a copy of the player record.
func (s *Store) Player() game.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Player
}

// CurrentBuilding returns a deep copy of the selected building.
func (s *Store) CurrentBuilding() *game.Building {
	snap := s.Snapshot()
	return snap.Building(snap.CurrentBuildingID)
}

// Room returns a deep copy of one room.
func (s *Store) Room(roomID string) (*game.Room, error) {
	snap := s.Snapshot()
	r, _ := snap.Room(roomID)
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// AssignCompany replaces the room's company (if any) with a fresh contract
// for companyName: tier from the catalog rosters, expectations scaled to
// tier, employees generated up to the building's cap. No currency cost.
func (s *Store) AssignCompany(roomID, companyName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, building := s.state.Room(roomID)
	if room == nil {
		return ErrNotFound
	}

	company := s.roster.NewCompany(companyName, building.EmployeeCap)
	room.Company = company
	s.refresh()
	s.revision++

	slog.Info("company assigned",
		"room", roomID, "company", companyName, "tier", company.Tier.String(),
		"employees", len(company.Employees))
	return nil
}

// UpgradeItem raises one furnishing level by exactly one, charging the cost
// ladder entry for the current level. PictureFrames is diamond-priced;
// everything else costs owl cash.
func (s *Store) UpgradeItem(roomID string, item game.ItemType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, building := s.state.Room(roomID)
	if room == nil {
		return ErrNotFound
	}

	level := room.Items.Level(item)
	if level >= building.ItemCaps.Level(item) {
		return ErrAtCapacity
	}
	ladder := game.ItemUpgradeCosts[item]
	if level >= len(ladder) {
		return ErrAtCapacity
	}
	cost := ladder[level]

	cur := &s.state.Player.Currencies
	if game.PremiumItem(item) {
		if cur.Diamonds < int(cost) {
			return ErrInsufficientFunds
		}
		cur.Diamonds -= int(cost)
	} else {
		if cur.OwlCash < cost {
			return ErrInsufficientFunds
		}
		cur.OwlCash -= cost
	}

	room.Items.SetLevel(item, level+1)
	s.refresh()
	s.revision++

	slog.Info("item upgraded",
		"room", roomID, "item", game.ItemName(item), "level", level+1, "cost", cost)
	return nil
}

// UnlockRoom appends a new vacant room to the building, charging the unlock
// ladder entry for the current room count.
func (s *Store) UnlockRoom(buildingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	building := s.state.Building(buildingID)
	if building == nil {
		return ErrNotFound
	}
	if !building.Unlocked {
		return ErrLocked
	}

	count := len(building.Rooms)
	ladder := game.RoomUnlockCosts[building.ID]
	if count >= len(ladder) {
		return ErrAtCapacity
	}
	cost := ladder[count]

	if s.state.Player.Currencies.OwlCash < cost {
		return ErrInsufficientFunds
	}
	s.state.Player.Currencies.OwlCash -= cost
	building.Rooms = append(building.Rooms, game.NewRoom(building.ID, count))
	s.revision++

	slog.Info("room unlocked", "building", buildingID, "rooms", count+1, "cost", cost)
	return nil
}

// ClaimHearts pays out one heart level of the room's contract. The
// threshold is enforced here, not trusted to the caller, and each level
// pays exactly once. Level 3 completes the contract.
func (s *Store) ClaimHearts(roomID string, heartLevel int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if heartLevel < 1 || heartLevel > 3 {
		return ErrBadHeartLevel
	}
	room, _ := s.state.Room(roomID)
	if room == nil {
		return ErrNotFound
	}
	company := room.Company
	if company == nil {
		return ErrVacant
	}
	if company.CurrentHearts < company.HeartTargets[heartLevel-1] {
		return ErrHeartsNotReached
	}
	if company.Claimed[heartLevel-1] {
		return ErrAlreadyClaimed
	}

	reward := game.RewardForHearts(company.Tier, heartLevel)
	s.state.Player.Currencies.Diamonds += reward.Diamonds
	s.state.Player.Currencies.CelebrityPoints += reward.CelebrityPoints
	levels := s.state.GrantExperience(heartLevel * 10)

	company.Claimed[heartLevel-1] = true
	if heartLevel == 3 {
		company.Completed = true
	}
	s.revision++

	slog.Info("hearts claimed",
		"room", roomID, "company", company.Name, "heart_level", heartLevel,
		"diamonds", reward.Diamonds, "celebrity_points", reward.CelebrityPoints,
		"levels_gained", levels)
	return nil
}

// UnlockCelebrityOwl spends celebrity points to unlock one prestige owl.
func (s *Store) UnlockCelebrityOwl(owlID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owl *game.CelebrityOwl
	for _, o := range s.state.CelebrityOwls {
		if o.ID == owlID {
			owl = o
			break
		}
	}
	if owl == nil {
		return ErrNotFound
	}
	if owl.Unlocked {
		return ErrAlreadyClaimed
	}
	if s.state.Player.Currencies.CelebrityPoints < owl.CPRequired {
		return ErrInsufficientFunds
	}

	s.state.Player.Currencies.CelebrityPoints -= owl.CPRequired
	owl.Unlocked = true
	s.revision++

	slog.Info("celebrity owl unlocked", "owl", owl.Name, "cp_spent", owl.CPRequired)
	return nil
}

// SelectBuilding changes the current building the UI is looking at.
func (s *Store) SelectBuilding(buildingID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	building := s.state.Building(buildingID)
	if building == nil {
		return ErrNotFound
	}
	if !building.Unlocked {
		return ErrLocked
	}
	s.state.CurrentBuildingID = buildingID
	s.revision++
	return nil
}

// UpdateSettings replaces the settings record wholesale.
func (s *Store) UpdateSettings(settings game.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Settings = settings
	s.revision++
}

// refresh recomputes moods, room eps, and the player aggregates without
// advancing time, so the derived invariants hold immediately after a
// mutation instead of waiting for the next tick. Caller holds the lock.
func (s *Store) refresh() {
	s.advance(0)
}
