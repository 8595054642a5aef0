// Package game provides the idle-economy data model: players, buildings,
// rooms, client companies, and the employee owls that staff them.
package game

// ItemType enumerates the seven furnishing types a room can hold.
type ItemType uint8

const (
	ItemDesk ItemType = iota
	ItemComputer
	ItemPlant
	ItemPictureFrames
	ItemClock
	ItemCabinet
	ItemExtinguisher
)

// AllItems lists every furnishing type in display order.
var AllItems = [...]ItemType{
	ItemDesk, ItemComputer, ItemPlant, ItemPictureFrames,
	ItemClock, ItemCabinet, ItemExtinguisher,
}

// ItemName returns the catalog key for an item type.
func ItemName(t ItemType) string {
	switch t {
	case ItemDesk:
		return "desk"
	case ItemComputer:
		return "computer"
	case ItemPlant:
		return "plant"
	case ItemPictureFrames:
		return "pictureFrames"
	case ItemClock:
		return "clock"
	case ItemCabinet:
		return "cabinet"
	case ItemExtinguisher:
		return "extinguisher"
	}
	return "unknown"
}

// ItemLevels holds one integer level per furnishing type. A closed struct
// rather than a map: every item type always has a level, absent means zero.
type ItemLevels struct {
	Desk          int `json:"desk"`
	Computer      int `json:"computer"`
	Plant         int `json:"plant"`
	PictureFrames int `json:"pictureFrames"`
	Clock         int `json:"clock"`
	Cabinet       int `json:"cabinet"`
	Extinguisher  int `json:"extinguisher"`
}

// Level returns the level for one item type.
func (l ItemLevels) Level(t ItemType) int {
	switch t {
	case ItemDesk:
		return l.Desk
	case ItemComputer:
		return l.Computer
	case ItemPlant:
		return l.Plant
	case ItemPictureFrames:
		return l.PictureFrames
	case ItemClock:
		return l.Clock
	case ItemCabinet:
		return l.Cabinet
	case ItemExtinguisher:
		return l.Extinguisher
	}
	return 0
}

// SetLevel sets the level for one item type.
func (l *ItemLevels) SetLevel(t ItemType, v int) {
	switch t {
	case ItemDesk:
		l.Desk = v
	case ItemComputer:
		l.Computer = v
	case ItemPlant:
		l.Plant = v
	case ItemPictureFrames:
		l.PictureFrames = v
	case ItemClock:
		l.Clock = v
	case ItemCabinet:
		l.Cabinet = v
	case ItemExtinguisher:
		l.Extinguisher = v
	}
}

// Mood is an employee's discrete morale tier, ordered worst to best.
type Mood uint8

const (
	MoodMad Mood = iota
	MoodMeh
	MoodOK
	MoodSmile
	MoodExcited
)

func (m Mood) String() string {
	switch m {
	case MoodMad:
		return "mad"
	case MoodMeh:
		return "meh"
	case MoodOK:
		return "ok"
	case MoodSmile:
		return "smile"
	case MoodExcited:
		return "excited"
	}
	return "unknown"
}

// Role determines which furnishings an employee cares about.
type Role uint8

const (
	RoleDev Role = iota
	RoleDesigner
	RoleAnalyst
	RoleManager
	RoleSales
)

// AllRoles lists every employee role.
var AllRoles = [...]Role{RoleDev, RoleDesigner, RoleAnalyst, RoleManager, RoleSales}

func (r Role) String() string {
	switch r {
	case RoleDev:
		return "dev"
	case RoleDesigner:
		return "designer"
	case RoleAnalyst:
		return "analyst"
	case RoleManager:
		return "manager"
	case RoleSales:
		return "sales"
	}
	return "unknown"
}

// Tier is a company's difficulty class: harder contracts expect better
// furnished rooms but pay a higher base rate.
type Tier uint8

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierMedium:
		return "medium"
	case TierHard:
		return "hard"
	}
	return "unknown"
}

// Activity is an employee's cosmetic current occupation. It never affects
// earnings.
type Activity string

const (
	ActivityWorking   Activity = "working"
	ActivityBathroom  Activity = "bathroom"
	ActivityBreakroom Activity = "breakroom"
	ActivityMeeting   Activity = "meeting"
	ActivityWalking   Activity = "walking"
)

// Position is an employee's cosmetic placement inside the room, in design px.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Employee is one owl staffing a company. BaseEPS is fixed by the company
// tier at hire time; only Mood, Activity, and Position change afterward.
type Employee struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Mood     Mood     `json:"mood"`
	BaseEPS  float64  `json:"base_eps"`
	Position Position `json:"position"`
	Activity Activity `json:"activity"`
}

// Company is a client contract occupying a room. Created whole on
// assignment, destroyed only by replacement.
type Company struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Tier         Tier        `json:"tier"`
	Expectations ItemLevels  `json:"expectations"`
	Employees    []*Employee `json:"employees"`

	// Contract progress: hearts accrue with earnings and never decrease
	// while the company is assigned.
	CurrentHearts float64    `json:"current_hearts"`
	HeartTargets  [3]float64 `json:"heart_targets"`
	Claimed       [3]bool    `json:"claimed"`
	Completed     bool       `json:"completed"`
}

// ManagerKind selects what a manager's bonus applies to.
type ManagerKind string

const (
	ManagerProfit ManagerKind = "profit"
	ManagerXP     ManagerKind = "xp"
)

// Rarity grades managers.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Manager boosts a room's income when assigned.
type Manager struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Kind     ManagerKind `json:"kind"`
	Rarity   Rarity      `json:"rarity"`
	BonusPct float64     `json:"bonus_pct"`
	Assigned bool        `json:"assigned"`
}

// Room is one office inside a building. Company nil means vacant.
type Room struct {
	ID         string     `json:"id"`
	BuildingID string     `json:"building_id"`
	Name       string     `json:"name"`
	Unlocked   bool       `json:"unlocked"`
	Company    *Company   `json:"company,omitempty"`
	Items      ItemLevels `json:"items"`
	Manager    *Manager   `json:"manager,omitempty"`

	EPS             float64 `json:"eps"`
	OfflineEarnings float64 `json:"offline_earnings"`
	OfflineCap      float64 `json:"offline_cap"`
}

// ManagerBonusPct returns the room manager's profit bonus, 0 if none.
func (r *Room) ManagerBonusPct() float64 {
	if r.Manager == nil || r.Manager.Kind != ManagerProfit {
		return 0
	}
	return r.Manager.BonusPct
}

// SharedFacilities counts the building's common rooms.
type SharedFacilities struct {
	Bathroom  int `json:"bathroom"`
	Breakroom int `json:"breakroom"`
	Meeting   int `json:"meeting"`
	Server    int `json:"server"`
}

// Building is one of the five fixed towers. The Unlocked flag is derived
// from the player level and must never be set independently.
type Building struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	Unlocked bool    `json:"unlocked"`
	Rooms    []*Room `json:"rooms"`

	EmployeeCap      int              `json:"employee_cap"`
	PowerCap         int              `json:"power_cap"`
	ItemCaps         ItemLevels       `json:"item_caps"`
	SharedFacilities SharedFacilities `json:"shared_facilities"`
}

// Currencies holds the three player balances. OwlCash accrues fractionally
// from ticks; diamonds and celebrity points only move in whole amounts.
type Currencies struct {
	OwlCash         float64 `json:"owlCash"`
	Diamonds        int     `json:"diamonds"`
	CelebrityPoints int     `json:"celebrityPoints"`
}

// Player is the single human player's aggregate state.
type Player struct {
	Level            int        `json:"level"`
	Experience       int        `json:"experience"`
	ExperienceToNext int        `json:"experience_to_next"`
	Currencies       Currencies `json:"currencies"`
	IncomePerSecond  float64    `json:"income_per_second"`
	PowerUsed        int        `json:"power_used"`
	PowerCapacity    int        `json:"power_capacity"`
}

// OwlCategory classifies celebrity owls.
type OwlCategory string

const (
	OwlFilm    OwlCategory = "film"
	OwlMusic   OwlCategory = "music"
	OwlSports  OwlCategory = "sports"
	OwlTech    OwlCategory = "tech"
	OwlCreator OwlCategory = "creator"
	OwlLegend  OwlCategory = "legend"
)

// AuraType selects what a celebrity owl's aura boosts.
type AuraType string

const (
	AuraProfit  AuraType = "profit"
	AuraMorale  AuraType = "morale"
	AuraOffline AuraType = "offline"
)

// CelebrityOwl is a prestige unlock bought with celebrity points.
type CelebrityOwl struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Category   OwlCategory `json:"category"`
	Aura       AuraType    `json:"aura"`
	AuraBonus  int         `json:"aura_bonus"`
	Unlocked   bool        `json:"unlocked"`
	CPRequired int         `json:"cp_required"`
}

// Settings holds the player-facing toggles persisted alongside the save.
// The engine stores them verbatim; clamping UIScale is the UI's concern.
type Settings struct {
	MusicEnabled  bool    `json:"musicEnabled"`
	SFXEnabled    bool    `json:"sfxEnabled"`
	ReducedMotion bool    `json:"reducedMotion"`
	BatterySaver  bool    `json:"batterySaver"`
	UIScale       float64 `json:"uiScale"`
}

// State is the complete persisted game state.
type State struct {
	SchemaVersion     int             `json:"schema_version"`
	Player            Player          `json:"player"`
	Buildings         []*Building     `json:"buildings"`
	CurrentBuildingID string          `json:"current_building_id"`
	Managers          []*Manager      `json:"managers"`
	CelebrityOwls     []*CelebrityOwl `json:"celebrity_owls"`
	LastSaveTime      int64           `json:"last_save_time"` // epoch ms
	GameStartTime     int64           `json:"game_start_time"`
	IsDayTime         bool            `json:"is_day_time"`
	Settings          Settings        `json:"settings"`
}

// Building returns the building with the given ID, nil if unknown.
func (s *State) Building(id string) *Building {
	for _, b := range s.Buildings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// Room finds a room by ID across all buildings. The second result is the
// owning building.
func (s *State) Room(id string) (*Room, *Building) {
	for _, b := range s.Buildings {
		for _, r := range b.Rooms {
			if r.ID == id {
				return r, b
			}
		}
	}
	return nil, nil
}

// HasActiveRooms reports whether any room anywhere has an assigned company.
func (s *State) HasActiveRooms() bool {
	for _, b := range s.Buildings {
		for _, r := range b.Rooms {
			if r.Company != nil {
				return true
			}
		}
	}
	return false
}

// Clone returns a deep copy of the state. Snapshots handed to readers must
// never alias the store's live aggregates.
func (s *State) Clone() *State {
	out := *s
	out.Buildings = make([]*Building, len(s.Buildings))
	for i, b := range s.Buildings {
		nb := *b
		nb.Rooms = make([]*Room, len(b.Rooms))
		for j, r := range b.Rooms {
			nr := *r
			if r.Company != nil {
				nc := *r.Company
				nc.Employees = make([]*Employee, len(r.Company.Employees))
				for k, e := range r.Company.Employees {
					ne := *e
					nc.Employees[k] = &ne
				}
				nr.Company = &nc
			}
			if r.Manager != nil {
				nm := *r.Manager
				nr.Manager = &nm
			}
			nb.Rooms[j] = &nr
		}
		out.Buildings[i] = &nb
	}
	out.Managers = make([]*Manager, len(s.Managers))
	for i, m := range s.Managers {
		nm := *m
		out.Managers[i] = &nm
	}
	out.CelebrityOwls = make([]*CelebrityOwl, len(s.CelebrityOwls))
	for i, o := range s.CelebrityOwls {
		no := *o
		out.CelebrityOwls[i] = &no
	}
	return &out
}
