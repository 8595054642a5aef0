// Offline catch-up: one-time earnings credit for real time elapsed since
// the last save.
package persistence

import (
	"math"
	"time"

	"github.com/talgya/whoo-works/internal/game"
)

// MaxOfflineSeconds caps how much elapsed real time counts toward offline
// earnings (2 hours).
const MaxOfflineSeconds = 7200

// ApplyOfflineCatchUp credits each occupied room's earnings for the elapsed
// time since LastSaveTime, capped per room at its offline cap and globally
// at MaxOfflineSeconds. The floored total lands in owl cash, per-room
// amounts are recorded for display, and LastSaveTime moves to now so the
// credit can't double-apply. Returns the credited amount.
func ApplyOfflineCatchUp(st *game.State, now time.Time) float64 {
	elapsed := float64(now.UnixMilli()-st.LastSaveTime) / 1000
	if elapsed < 0 {
		// Clock went backwards; credit nothing.
		elapsed = 0
	}
	if elapsed > MaxOfflineSeconds {
		elapsed = MaxOfflineSeconds
	}

	var total float64
	for _, b := range st.Buildings {
		for _, r := range b.Rooms {
			if r.Company == nil {
				continue
			}
			earned := math.Min(r.EPS*elapsed, r.OfflineCap)
			r.OfflineEarnings = earned
			total += earned
		}
	}

	total = math.Floor(total)
	st.Player.Currencies.OwlCash += total
	st.LastSaveTime = now.UnixMilli()
	return total
}
