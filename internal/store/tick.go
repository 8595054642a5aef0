// Tick aggregation: the once-per-interval economy recomputation.
package store

import (
	"math"

	"github.com/talgya/whoo-works/internal/ambience"
	"github.com/talgya/whoo-works/internal/game"
)

// changeEpsilon is the observable-change threshold: per-room eps and heart
// deltas (and the per-tick cash gain) below this don't advance the
// revision counter on their own. Accrual itself is never suppressed.
const changeEpsilon = 0.1

// Tick advances the economy by dt seconds and reports whether the tick
// produced an observable change (revision moved).
//
// Fast path: with no company assigned anywhere the tick touches nothing at
// all — idle saves burn no work.
func (s *Store) Tick(dt float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.HasActiveRooms() {
		return false
	}
	s.tick++

	dirty := s.advance(dt)

	// Cosmetic layer: activity drift and the day flag update every tick
	// but never count as an observable change.
	s.field.Refresh(s.state, s.tick)
	s.state.IsDayTime = ambience.IsDayTime(s.now())

	if dirty {
		s.revision++
	}
	return dirty
}

// advance recomputes moods, earnings, hearts, power, and income, crediting
// dt seconds of cash. dt 0 refreshes derived values without accrual.
// Returns whether anything crossed the change threshold. Caller holds the
// lock.
func (s *Store) advance(dt float64) bool {
	st := s.state
	dirty := false

	var totalIncome float64
	totalPower := 0

	for _, building := range st.Buildings {
		area := game.AreaMultiplier(building.ID)
		for _, room := range building.Rooms {
			if room.Company == nil {
				continue
			}
			company := room.Company

			var raw float64
			for _, emp := range company.Employees {
				mood := game.MoodFor(company.Expectations, room.Items, emp.Role)
				if mood != emp.Mood {
					emp.Mood = mood
					dirty = true
				}
				raw += game.EmployeeEarnings(emp.BaseEPS, mood, area, room.ManagerBonusPct())
			}

			eps := game.Round1(raw)
			hearts := company.CurrentHearts + raw*dt
			if math.Abs(room.EPS-eps) > changeEpsilon ||
				math.Abs(hearts-company.CurrentHearts) > changeEpsilon {
				dirty = true
			}

			// Hearts accumulate at full precision: rounding here could
			// swallow tiny rates forever. EPS is rounded because it is a
			// stored display rate.
			room.EPS = eps
			company.CurrentHearts = hearts

			totalIncome += raw
			totalPower += game.PowerDraw(room)
		}
	}

	cash := totalIncome * dt
	income := game.Round1(totalIncome)

	if math.Abs(st.Player.IncomePerSecond-income) > changeEpsilon {
		dirty = true
	}
	if st.Player.PowerUsed != totalPower {
		dirty = true
	}
	if cash >= changeEpsilon {
		dirty = true
	}

	st.Player.Currencies.OwlCash += cash
	st.Player.IncomePerSecond = income
	st.Player.PowerUsed = totalPower

	return dirty
}
