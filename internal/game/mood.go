// Mood model — how well a room's furnishing meets a company's expectations,
// weighted by what each role cares about.
package game

// roleWeight is one furnishing type's importance to a role.
type roleWeight struct {
	item   ItemType
	weight float64
}

// roleWeights maps each role to its fixed furnishing profile. Devs live on
// computers, designers on decor, and so on.
var roleWeights = map[Role][]roleWeight{
	RoleDev:      {{ItemComputer, 3}, {ItemDesk, 2}, {ItemPlant, 1}},
	RoleDesigner: {{ItemPictureFrames, 3}, {ItemPlant, 2}, {ItemDesk, 1}},
	RoleAnalyst:  {{ItemDesk, 3}, {ItemComputer, 2}, {ItemClock, 1}},
	RoleManager:  {{ItemCabinet, 3}, {ItemDesk, 2}, {ItemComputer, 1}},
	RoleSales:    {{ItemPlant, 3}, {ItemDesk, 2}, {ItemPictureFrames, 1}},
}

// Mood tier thresholds on the weighted satisfaction score in [0,1].
const (
	scoreExcited = 0.95
	scoreSmile   = 0.80
	scoreOK      = 0.60
	scoreMeh     = 0.40
)

// MoodFor computes an employee's mood from the company's expected furnishing
// levels versus the room's actual levels, weighted by role. Pure and
// deterministic.
//
// Per weighted item, satisfaction is 1.0 once actual meets expected; an item
// with no expectation is automatically satisfied; otherwise it is the
// fraction actual/expected.
func MoodFor(expectations, actual ItemLevels, role Role) Mood {
	weights, ok := roleWeights[role]
	if !ok {
		weights = roleWeights[RoleDev]
	}

	var satisfaction, totalWeight float64
	for _, rw := range weights {
		expected := expectations.Level(rw.item)
		contribution := 1.0
		if expected > 0 {
			if a := actual.Level(rw.item); a < expected {
				contribution = float64(a) / float64(expected)
			}
		}
		satisfaction += contribution * rw.weight
		totalWeight += rw.weight
	}

	score := satisfaction / totalWeight
	switch {
	case score >= scoreExcited:
		return MoodExcited
	case score >= scoreSmile:
		return MoodSmile
	case score >= scoreOK:
		return MoodOK
	case score >= scoreMeh:
		return MoodMeh
	default:
		return MoodMad
	}
}
