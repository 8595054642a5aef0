// Package ambience drives the cosmetic layer: the day/night flag and the
// activity tags that make employee owls wander believably. Nothing here
// feeds back into the economy numbers.
package ambience

import (
	"time"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/whoo-works/internal/game"
)

// Day runs 06:00–22:00 local time.
const (
	dayStartHour = 6
	dayEndHour   = 22
)

// IsDayTime reports whether the given wall-clock time falls in the day
// window.
func IsDayTime(now time.Time) bool {
	h := now.Hour()
	return h >= dayStartHour && h < dayEndHour
}

// Field assigns drifting activities from a smooth noise surface, so owls
// change occupation gradually instead of teleporting between tags every
// tick. Seeded per game for stable replays.
type Field struct {
	noise opensimplex.Noise
}

// NewField creates an activity field for the given seed.
func NewField(seed int64) *Field {
	return &Field{noise: opensimplex.NewNormalized(seed)}
}

// Activity buckets over the normalized noise value. Working dominates;
// bathroom breaks are rare.
func (f *Field) Activity(employeeIndex int, tick uint64) game.Activity {
	v := f.noise.Eval2(float64(employeeIndex)*13.7, float64(tick)/90)
	switch {
	case v < 0.55:
		return game.ActivityWorking
	case v < 0.70:
		return game.ActivityWalking
	case v < 0.82:
		return game.ActivityMeeting
	case v < 0.92:
		return game.ActivityBreakroom
	default:
		return game.ActivityBathroom
	}
}

// Refresh updates every employee's activity tag in place for the given
// tick. Index continuity keeps each owl on its own noise row.
func (f *Field) Refresh(st *game.State, tick uint64) {
	idx := 0
	for _, b := range st.Buildings {
		for _, r := range b.Rooms {
			if r.Company == nil {
				continue
			}
			for _, e := range r.Company.Employees {
				e.Activity = f.Activity(idx, tick)
				idx++
			}
		}
	}
}
