// Company and employee generation, modeled as a spawner with an injected
// randomness source.
package game

import (
	"github.com/google/uuid"

	"github.com/talgya/whoo-works/internal/entropy"
)

// Roster generates companies and their employee owls.
type Roster struct {
	src entropy.Source
}

// NewRoster creates a roster generator drawing from the given source.
func NewRoster(src entropy.Source) *Roster {
	return &Roster{src: src}
}

// NewCompany builds a fresh company for assignment: tier resolved from the
// catalog, tier-scaled expectations, and a generated employee roster sized
// to the building's cap.
func (ro *Roster) NewCompany(name string, employeeCap int) *Company {
	tier := TierForCompany(name)
	return &Company{
		ID:           uuid.NewString(),
		Name:         name,
		Tier:         tier,
		Expectations: ExpectationsForTier(tier),
		Employees:    ro.GenerateEmployees(employeeCap, tier),
		HeartTargets: HeartTargets,
	}
}

// GenerateEmployees creates count owls with random names and roles. Base
// earnings are fixed by the company tier at hire time.
func (ro *Roster) GenerateEmployees(count int, tier Tier) []*Employee {
	employees := make([]*Employee, 0, count)
	for i := 0; i < count; i++ {
		employees = append(employees, &Employee{
			ID:      uuid.NewString(),
			Name:    EmployeeNames[ro.src.Intn(len(EmployeeNames))],
			Role:    AllRoles[ro.src.Intn(len(AllRoles))],
			Mood:    MoodOK,
			BaseEPS: BaseEPS[tier],
			Position: Position{
				X: ro.src.Float() * 200,
				Y: ro.src.Float() * 100,
			},
			Activity: ActivityWorking,
		})
	}
	return employees
}
