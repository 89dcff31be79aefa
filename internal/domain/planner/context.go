package planner

import "github.com/equilibra/v1/internal/domain/food"

// PlanningContext carries the rotation state threaded through a single
// week's generation. It is created at the start of a plan and discarded
// with it: no usage counter survives across plans or users.
type PlanningContext struct {
	weekUses  map[string]int  // meals containing the food this week
	lastDay   map[string]int  // last day index the food was used
	asProtein map[string]bool // foods ever placed through a protein slot
}

// NewPlanningContext returns an empty rotation state.
func NewPlanningContext() *PlanningContext {
	return &PlanningContext{
		weekUses:  make(map[string]int),
		lastDay:   make(map[string]int),
		asProtein: make(map[string]bool),
	}
}

// Usable reports whether the food may still be placed on the given day
// under the rules' rotation cap and reuse windows. The protein flag
// marks a candidate for a protein slot: a food serving as a protein
// source counts as a staple for the whole week, whatever its category,
// so a dairy protein cannot escape the rotation cap.
func (c *PlanningContext) Usable(f food.Food, day int, rules Rules, protein bool) bool {
	staple := IsStaple(f.Category) || protein || c.asProtein[f.Name]

	if staple && c.weekUses[f.Name] >= rules.RotationCap {
		return false
	}

	last, used := c.lastDay[f.Name]
	if !used {
		return true
	}

	window := 0
	switch {
	case staple:
		window = rules.StapleWindow
	case f.Category == food.CategoryVegetable:
		window = rules.VegetableWindow
	}
	if window == 0 {
		// Unwindowed categories (spices, oils, beverages) still never
		// repeat within the same day.
		return day != last
	}
	return day-last >= window
}

// Use records a placement.
func (c *PlanningContext) Use(f food.Food, day int, protein bool) {
	c.weekUses[f.Name]++
	c.lastDay[f.Name] = day
	if protein {
		c.asProtein[f.Name] = true
	}
}

// Uses returns how many meals the food has been placed in so far.
func (c *PlanningContext) Uses(name string) int {
	return c.weekUses[name]
}
