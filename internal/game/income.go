// Income model — earnings-per-second per employee and per room.
package game

import "math"

// moodMultipliers scales base earnings by morale tier.
var moodMultipliers = map[Mood]float64{
	MoodMad:     0.5,
	MoodMeh:     1.0,
	MoodOK:      1.2,
	MoodSmile:   1.4,
	MoodExcited: 1.6,
}

// MoodMultiplier returns the income multiplier for a mood tier.
func MoodMultiplier(m Mood) float64 {
	if mult, ok := moodMultipliers[m]; ok {
		return mult
	}
	return 1.0
}

// EmployeeEarnings computes one employee's earnings-per-second contribution.
// Pure and deterministic; never negative for baseEPS >= 0.
func EmployeeEarnings(baseEPS float64, mood Mood, areaMultiplier, managerBonusPct float64) float64 {
	return baseEPS * MoodMultiplier(mood) * areaMultiplier * (1 + managerBonusPct/100)
}

// RoomEarnings sums a room's employee earnings given the owning building's
// area multiplier, rounded to one decimal for storage stability.
func RoomEarnings(room *Room, areaMultiplier float64) float64 {
	if room.Company == nil {
		return 0
	}
	var eps float64
	for _, e := range room.Company.Employees {
		eps += EmployeeEarnings(e.BaseEPS, e.Mood, areaMultiplier, room.ManagerBonusPct())
	}
	return Round1(eps)
}

// Round1 rounds to one decimal place. Applied wherever a rate is stored so
// long tick histories don't accumulate float drift.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PowerDraw is an occupied room's power consumption: two units per employee
// plus the computer furnishing level. Vacant rooms draw nothing.
func PowerDraw(room *Room) int {
	if room.Company == nil {
		return 0
	}
	return len(room.Company.Employees)*2 + room.Items.Computer
}
