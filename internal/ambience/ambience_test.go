package ambience

import (
	"testing"
	"time"

	"github.com/talgya/whoo-works/internal/entropy"
	"github.com/talgya/whoo-works/internal/game"
)

func TestIsDayTimeBoundaries(t *testing.T) {
	cases := []struct {
		hour, min int
		want      bool
	}{
		{5, 59, false},
		{6, 0, true},
		{12, 0, true},
		{21, 59, true},
		{22, 0, false},
		{23, 30, false},
		{0, 0, false},
	}
	for _, tc := range cases {
		now := time.Date(2026, 3, 1, tc.hour, tc.min, 0, 0, time.UTC)
		if got := IsDayTime(now); got != tc.want {
			t.Errorf("%02d:%02d: IsDayTime = %v, expected %v", tc.hour, tc.min, got, tc.want)
		}
	}
}

func TestFieldDeterministic(t *testing.T) {
	a := NewField(42)
	b := NewField(42)
	for idx := 0; idx < 8; idx++ {
		for tick := uint64(0); tick < 200; tick += 10 {
			if a.Activity(idx, tick) != b.Activity(idx, tick) {
				t.Fatalf("identically seeded fields diverged at idx=%d tick=%d", idx, tick)
			}
		}
	}
}

func TestFieldActivitiesDrift(t *testing.T) {
	f := NewField(7)

	// Over a long horizon every owl should change occupation at least once;
	// a frozen field would mean the noise row is flat.
	for idx := 0; idx < 4; idx++ {
		first := f.Activity(idx, 0)
		changed := false
		for tick := uint64(1); tick < 2000; tick++ {
			if f.Activity(idx, tick) != first {
				changed = true
				break
			}
		}
		if !changed {
			t.Errorf("owl %d never changed activity over 2000 ticks", idx)
		}
	}
}

func TestRefreshAssignsEveryEmployee(t *testing.T) {
	st := game.NewInitialState(
		game.NewRoster(entropy.Seeded(1)),
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	)
	// Wipe the tags so the assignment is observable.
	for _, b := range st.Buildings {
		for _, r := range b.Rooms {
			if r.Company == nil {
				continue
			}
			for _, e := range r.Company.Employees {
				e.Activity = ""
			}
		}
	}

	NewField(1).Refresh(st, 17)

	valid := map[game.Activity]bool{
		game.ActivityWorking: true, game.ActivityWalking: true,
		game.ActivityMeeting: true, game.ActivityBreakroom: true,
		game.ActivityBathroom: true,
	}
	for _, b := range st.Buildings {
		for _, r := range b.Rooms {
			if r.Company == nil {
				continue
			}
			for _, e := range r.Company.Employees {
				if !valid[e.Activity] {
					t.Errorf("employee %s has invalid activity %q", e.Name, e.Activity)
				}
			}
		}
	}
}
