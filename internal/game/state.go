// Initial state construction and the derived-field rules that keep the
// aggregate consistent.
package game

import (
	"fmt"
	"math"
	"time"
)

// CurrentSchemaVersion tags persisted saves. Loads of any other version
// reset to the initial state rather than guessing a migration.
const CurrentSchemaVersion = 1

// Starting player configuration.
const (
	startingOwlCash          = 1000
	startingDiamonds         = 50
	startingExperienceToNext = 100
)

// seedCompanies occupy the first building's starting rooms so a fresh game
// earns from the first tick.
var seedCompanies = []string{"Gloogle Nest", "Feathrbook"}

// NewInitialState builds the hardcoded fresh-game state: five building
// templates, two starting rooms in b1 with easy seed companies, and the
// starting balances.
func NewInitialState(ro *Roster, now time.Time) *State {
	buildings := make([]*Building, 0, len(BuildingDefs))
	for _, def := range BuildingDefs {
		b := &Building{
			ID:               def.ID,
			Name:             def.Name,
			Level:            def.Level,
			EmployeeCap:      def.EmployeeCap,
			PowerCap:         def.PowerCap,
			ItemCaps:         def.ItemCaps,
			SharedFacilities: def.SharedFacilities,
			Rooms:            make([]*Room, 0, def.StartingRooms),
		}
		for i := 0; i < def.StartingRooms; i++ {
			room := NewRoom(def.ID, i)
			if i < len(seedCompanies) {
				room.Company = ro.NewCompany(seedCompanies[i], def.EmployeeCap)
			}
			b.Rooms = append(b.Rooms, room)
		}
		buildings = append(buildings, b)
	}

	owls := make([]*CelebrityOwl, 0, len(CelebrityOwlDefs))
	for i, def := range CelebrityOwlDefs {
		owls = append(owls, &CelebrityOwl{
			ID:         fmt.Sprintf("celeb_%d", i),
			Name:       def.Name,
			Category:   def.Category,
			Aura:       def.Aura,
			AuraBonus:  def.AuraBonus,
			CPRequired: def.CPRequired,
		})
	}

	st := &State{
		SchemaVersion: CurrentSchemaVersion,
		Player: Player{
			Level:            1,
			ExperienceToNext: startingExperienceToNext,
			Currencies: Currencies{
				OwlCash:  startingOwlCash,
				Diamonds: startingDiamonds,
			},
		},
		Buildings:         buildings,
		CurrentBuildingID: "b1",
		Managers:          []*Manager{},
		CelebrityOwls:     owls,
		LastSaveTime:      now.UnixMilli(),
		GameStartTime:     now.UnixMilli(),
		IsDayTime:         true,
		Settings: Settings{
			MusicEnabled: true,
			SFXEnabled:   true,
			UIScale:      1,
		},
	}
	st.DeriveUnlocks()
	return st
}

// NewRoom creates a room with starting furnishing (desk and computer at 1,
// everything else at 0), vacant.
func NewRoom(buildingID string, index int) *Room {
	return &Room{
		ID:         fmt.Sprintf("%s_room_%d", buildingID, index),
		BuildingID: buildingID,
		Name:       fmt.Sprintf("Office %d", index+1),
		Unlocked:   true,
		Items:      ItemLevels{Desk: 1, Computer: 1},
		OfflineCap: DefaultOfflineCap,
	}
}

// DeriveUnlocks recomputes every field that is a pure function of player
// level: building unlock flags and the player's power capacity (the sum of
// unlocked buildings' power caps). These are never set directly, so they
// cannot desync from the level.
func (s *State) DeriveUnlocks() {
	capacity := 0
	for _, b := range s.Buildings {
		b.Unlocked = s.Player.Level >= b.Level
		if b.Unlocked {
			capacity += b.PowerCap
		}
	}
	s.Player.PowerCapacity = capacity
}

// GrantExperience adds experience and applies any level-ups, growing the
// next-level threshold by half each level. Returns the number of levels
// gained. Derived unlock fields are refreshed when the level moves.
func (s *State) GrantExperience(amount int) int {
	p := &s.Player
	p.Experience += amount

	levels := 0
	for p.Experience >= p.ExperienceToNext {
		p.Experience -= p.ExperienceToNext
		p.Level++
		levels++
		p.ExperienceToNext = int(math.Round(float64(p.ExperienceToNext) * 1.5))
	}
	if levels > 0 {
		s.DeriveUnlocks()
	}
	return levels
}
