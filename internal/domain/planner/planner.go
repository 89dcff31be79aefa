package planner

import (
	"math"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// planDays is the fixed plan horizon.
const planDays = 7

// Planner builds weekly plans for one framework.
type Planner struct {
	rules Rules
}

// New creates a planner for the given rules.
func New(rules Rules) *Planner {
	return &Planner{rules: rules}
}

// Build assembles a seven-day plan from the tiered catalog. The call
// is pure: identical inputs produce identical plans, and all rotation
// state lives in a context local to this invocation.
//
// Selection always prefers the highest-ranked candidate a slot can
// legally take. A candidate conflicting with an already-placed food is
// skipped for the next-ranked one; an exhausted slot is left short and
// recorded, never failed.
func (p *Planner) Build(prof profile.Profile, tiered scoring.TieredCatalog) WeeklyPlan {
	pool := tiered.PlanningPool()
	ctx := NewPlanningContext()

	plan := WeeklyPlan{
		Framework: p.rules.Framework,
		Days:      make([]DayPlan, 0, planDays),
	}

	dailyCalories := 0
	if p.rules.DailyCalories != nil {
		dailyCalories = p.rules.DailyCalories(prof)
	}

	for day := 1; day <= planDays; day++ {
		dayPlan := DayPlan{Day: day}
		for _, template := range p.rules.Meals {
			meal, shortfalls := p.buildMeal(prof, template, pool, ctx, day, dailyCalories)
			dayPlan.Meals = append(dayPlan.Meals, meal)
			plan.Shortfalls = append(plan.Shortfalls, shortfalls...)
		}
		plan.Days = append(plan.Days, dayPlan)
	}
	return plan
}

func (p *Planner) buildMeal(
	prof profile.Profile,
	template MealTemplate,
	pool []scoring.ScoredFood,
	ctx *PlanningContext,
	day int,
	dailyCalories int,
) (Meal, []Shortfall) {
	meal := Meal{Type: template.Type}
	if template.CalorieShare > 0 && dailyCalories > 0 {
		meal.CalorieTarget = int(math.Round(float64(dailyCalories) * template.CalorieShare))
	}

	var shortfalls []Shortfall
	for _, pick := range template.Picks {
		categories := pick.Categories
		if pick.Protein && p.rules.ProteinCategories != nil {
			categories = p.rules.ProteinCategories(prof)
		}

		count := pick.Count
		if count <= 0 {
			count = 1
		}

		taken := p.fillSlot(&meal, pick, categories, count, pool, ctx, day, template)
		if taken < count {
			meal.UnderFilled = true
			shortfalls = append(shortfalls, Shortfall{
				Day:      day,
				Meal:     template.Type,
				Category: firstCategory(categories),
			})
		}
	}
	return meal, shortfalls
}

// fillSlot walks the ranked pool once per slot and places up to count
// eligible foods. Returns the number placed.
func (p *Planner) fillSlot(
	meal *Meal,
	pick Pick,
	categories []food.Category,
	count int,
	pool []scoring.ScoredFood,
	ctx *PlanningContext,
	day int,
	template MealTemplate,
) int {
	taken := 0
	for _, candidate := range pool {
		if taken >= count {
			break
		}
		if !categoryAllowed(candidate.Food.Category, categories) {
			continue
		}
		if template.Exclude != nil && template.Exclude(candidate.Food) {
			continue
		}
		if !ctx.Usable(candidate.Food, day, p.rules, pick.Protein) {
			continue
		}
		if p.conflicts(candidate.Food, meal.Items) {
			continue
		}

		meal.Items = append(meal.Items, MealItem{
			Food:            candidate.Food,
			Score:           candidate.Score,
			PortionLabel:    pick.PortionLabel,
			PreparationNote: pick.Note,
		})
		ctx.Use(candidate.Food, day, pick.Protein)
		taken++
	}
	return taken
}

// conflicts checks the candidate pairwise against everything already
// placed in the meal.
func (p *Planner) conflicts(candidate food.Food, placed []MealItem) bool {
	for _, item := range placed {
		// Same food twice in one meal is never intended.
		if candidate.Name == item.Food.Name {
			return true
		}
		if p.rules.Incompatible != nil && p.rules.Incompatible(candidate, item.Food) {
			return true
		}
	}
	return false
}

func categoryAllowed(c food.Category, allowed []food.Category) bool {
	for _, a := range allowed {
		if c == a {
			return true
		}
	}
	return false
}

func firstCategory(categories []food.Category) food.Category {
	if len(categories) == 0 {
		return ""
	}
	return categories[0]
}
