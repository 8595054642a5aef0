// Static balance catalogs: building templates, company rosters, cost
// ladders, and reward tables. All tuning numbers live here.
package game

// BaseEPS is the per-employee base earning rate by company tier.
var BaseEPS = map[Tier]float64{
	TierEasy:   4,
	TierMedium: 7,
	TierHard:   12,
}

// areaMultipliers scales income per building: later towers pay more.
var areaMultipliers = map[string]float64{
	"b1": 1.00,
	"b2": 1.15,
	"b3": 1.35,
	"b4": 1.60,
	"b5": 1.90,
}

// AreaMultiplier returns the income multiplier for a building, 1.0 for
// unknown IDs.
func AreaMultiplier(buildingID string) float64 {
	if m, ok := areaMultipliers[buildingID]; ok {
		return m
	}
	return 1.0
}

// HeartTargets are the three ascending contract-progress thresholds shared
// by every company.
var HeartTargets = [3]float64{60, 360, 2880}

// DefaultOfflineCap limits per-room offline earnings (10 minutes at base).
const DefaultOfflineCap = 600

// BuildingDef is a fixed building template.
type BuildingDef struct {
	ID               string
	Name             string
	Level            int // player level required to unlock
	EmployeeCap      int
	PowerCap         int
	ItemCaps         ItemLevels
	SharedFacilities SharedFacilities
	StartingRooms    int
}

// BuildingDefs are the five fixed towers, instantiated once at game start.
var BuildingDefs = []BuildingDef{
	{
		ID: "b1", Name: "Starter Perch Plaza", Level: 1,
		EmployeeCap: 2, PowerCap: 30,
		ItemCaps: ItemLevels{
			Desk: 2, Computer: 2, Plant: 2,
			PictureFrames: 1, Clock: 1, Cabinet: 1, Extinguisher: 1,
		},
		SharedFacilities: SharedFacilities{Bathroom: 1},
		StartingRooms:    2,
	},
	{
		ID: "b2", Name: "Open Nest Annex", Level: 8,
		EmployeeCap: 3, PowerCap: 80,
		ItemCaps: ItemLevels{
			Desk: 3, Computer: 3, Plant: 3,
			PictureFrames: 2, Clock: 2, Cabinet: 2, Extinguisher: 1,
		},
		SharedFacilities: SharedFacilities{Bathroom: 2, Meeting: 1},
	},
	{
		ID: "b3", Name: "Glass Hollow Tower", Level: 18,
		EmployeeCap: 4, PowerCap: 180,
		ItemCaps: ItemLevels{
			Desk: 4, Computer: 4, Plant: 4,
			PictureFrames: 3, Clock: 3, Cabinet: 3, Extinguisher: 2,
		},
		SharedFacilities: SharedFacilities{Bathroom: 3, Breakroom: 1, Meeting: 2, Server: 1},
	},
	{
		ID: "b4", Name: "Skyline Aerie Hub", Level: 30,
		EmployeeCap: 5, PowerCap: 400,
		ItemCaps: ItemLevels{
			Desk: 5, Computer: 5, Plant: 5,
			PictureFrames: 4, Clock: 4, Cabinet: 4, Extinguisher: 3,
		},
		SharedFacilities: SharedFacilities{Bathroom: 4, Breakroom: 2, Meeting: 3, Server: 2},
	},
	{
		ID: "b5", Name: "Cloud Spire HQ", Level: 45,
		EmployeeCap: 6, PowerCap: 800,
		ItemCaps: ItemLevels{
			Desk: 6, Computer: 6, Plant: 6,
			PictureFrames: 5, Clock: 5, Cabinet: 5, Extinguisher: 4,
		},
		SharedFacilities: SharedFacilities{Bathroom: 5, Breakroom: 3, Meeting: 4, Server: 3},
	},
}

// Company rosters by tier. Assignment looks the name up here to determine
// the contract tier.
var (
	CompaniesEasy = []string{
		"Gloogle Nest", "Feathrbook", "HootTube", "AmaNest", "SnapHoot",
		"WingTok", "StreamPrime", "CozyFlix", "Chirpr", "Cloudpuff",
		"HootBucks", "OwlFoods", "NestDash", "Pizz-Owl-Go", "Scrollify",
		"PlayPerch", "ByteNook", "OwlDepot", "PetPerch", "FitFeather",
		"SleepyNest", "RideAlong Owls", "SunnyStay", "PicPlume", "Maplet",
		"SafeNest", "QuickQuill", "OwlAir", "BudgetBeak", "GreenWing Energy",
	}
	CompaniesMedium = []string{
		"Owldobe", "MetaWing Labs", "Hootflix Studios", "Prime Pantry Perch", "Owlbnb",
		"NorthWing", "Silver Sparrow", "Urban Burrow", "AeroFeather", "Owlta",
		"Owlgreens", "FeatherFresh", "TruNest Insurance", "OwlayPal", "BeakBook Capital",
		"WingComm", "NestCloud", "Owlfinity Ward", "Riot Roost", "CozyCart",
		"HyperHollow", "BrightBeak Solar", "SwiftMeals", "Owlhouse Cinema", "PlushPerch",
		"Owl AutoMart", "Feather Freight", "PaperPlane Labs", "QuietQuarry", "BeaconBank",
	}
	CompaniesHard = []string{
		"Owlsla", "Hootermelon", "AerieLink", "TitanWing Motors", "PlumeX",
		"OwlyFans Pro", "NestNet Ultra", "WardenFeather", "Quill & Sachs", "Bronzed Beak",
		"SkyVault", "HootStreet", "Apex Owls", "NightWatch AI", "TalonWorks",
		"Owlsoft Azurea", "Resonest Studios", "PlumeGate", "VantaFeather", "MonoliNest",
		"NeroNest", "ZephyrWing", "FableFeather", "NovaNest", "OmniPerch",
		"GoldLeaf Group", "Quasar Quill", "Orium Owls", "HarborHollow", "Summit & Talon",
	}
)

// TierForCompany resolves a company name to its difficulty tier. Names
// outside every roster fall through to hard, matching the shipped catalogs
// where every non-easy, non-medium name is a hard contract.
func TierForCompany(name string) Tier {
	for _, n := range CompaniesEasy {
		if n == name {
			return TierEasy
		}
	}
	for _, n := range CompaniesMedium {
		if n == name {
			return TierMedium
		}
	}
	return TierHard
}

// ExpectationsForTier returns the furnishing levels a company of the given
// tier expects before its employees are fully satisfied.
func ExpectationsForTier(tier Tier) ItemLevels {
	switch tier {
	case TierEasy:
		return ItemLevels{Desk: 1, Computer: 1}
	case TierMedium:
		return ItemLevels{Desk: 2, Computer: 2, Plant: 1}
	default:
		return ItemLevels{Desk: 3, Computer: 3, Plant: 2, Clock: 1, Cabinet: 1, Extinguisher: 1}
	}
}

// ItemUpgradeCosts ladders cost by current level: upgrading from level N
// costs entry N. PictureFrames is the one diamond-priced item.
var ItemUpgradeCosts = map[ItemType][]float64{
	ItemDesk:          {100, 250, 500, 1000, 2500, 5000},
	ItemComputer:      {150, 350, 750, 1500, 3500, 7500},
	ItemPlant:         {50, 125, 250, 500, 1250, 2500},
	ItemClock:         {200, 500, 1000, 2000, 5000, 10000},
	ItemCabinet:       {175, 425, 850, 1700, 4250, 8500},
	ItemExtinguisher:  {300, 750, 1500, 3000, 7500, 15000},
	ItemPictureFrames: {10, 25, 50, 100, 250, 500},
}

// PremiumItem reports whether the item is priced in diamonds.
func PremiumItem(t ItemType) bool {
	return t == ItemPictureFrames
}

// RoomUnlockCosts ladders room unlock prices by current room count. The
// leading zeros cover rooms that exist from game start.
var RoomUnlockCosts = map[string][]float64{
	"b1": {0, 0, 1000, 2500},
	"b2": {0, 0, 5000, 10000, 15000, 25000},
	"b3": {0, 0, 30000, 45000, 60000, 85000, 120000, 160000},
	"b4": {0, 0, 220000, 300000, 400000, 520000, 680000, 880000, 1100000, 1400000},
	"b5": {0, 0, 1800000, 2400000, 3200000, 4200000, 5600000, 7400000, 9800000, 12800000, 16600000, 21600000},
}

// HeartReward is the payout for claiming one heart level.
type HeartReward struct {
	Diamonds        int
	CelebrityPoints int
}

var heartRewards = map[Tier][3]HeartReward{
	TierEasy:   {{1, 0}, {2, 1}, {3, 2}},
	TierMedium: {{2, 0}, {3, 2}, {5, 3}},
	TierHard:   {{3, 0}, {5, 3}, {8, 5}},
}

// RewardForHearts returns the payout for a tier and heart level in 1..3.
func RewardForHearts(tier Tier, heartLevel int) HeartReward {
	return heartRewards[tier][heartLevel-1]
}

// CelebrityOwlDef is a fixed prestige-unlock template.
type CelebrityOwlDef struct {
	Name       string
	Category   OwlCategory
	Aura       AuraType
	AuraBonus  int
	CPRequired int
}

// CelebrityOwlDefs is the fixed celebrity roster.
var CelebrityOwlDefs = []CelebrityOwlDef{
	{"Hoot Jackman", OwlFilm, AuraProfit, 5, 10},
	{"Meryl Hootreep", OwlFilm, AuraMorale, 6, 15},
	{"Zend-owl-ya", OwlFilm, AuraOffline, 4, 8},
	{"Tay-Hoot Swift", OwlMusic, AuraProfit, 8, 20},
	{"Rih-owl-na", OwlMusic, AuraMorale, 7, 18},
	{"LeHoot James", OwlSports, AuraProfit, 10, 25},
	{"Owlen Musk", OwlTech, AuraOffline, 9, 30},
	{"Mr. Beast-owl", OwlCreator, AuraProfit, 7, 12},
}

// EmployeeNames is the cosmetic name pool for generated rosters.
var EmployeeNames = []string{
	"Hootbert", "Owlivia", "Featherston", "Beaky", "Wingston", "Pluma",
}
