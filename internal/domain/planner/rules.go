package planner

import (
	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
)

// Pick is one template slot within a meal: take Count foods from the
// listed categories, in rank order.
type Pick struct {
	Categories   []food.Category
	Count        int
	PortionLabel string
	Note         string

	// Protein marks the slot whose categories come from the rule set's
	// dominant-dependent protein preference instead of Categories.
	Protein bool
}

// MealTemplate describes how one day-part is assembled.
type MealTemplate struct {
	Type  MealType
	Picks []Pick

	// CalorieShare of the daily target allotted to this meal; zero for
	// frameworks that do not budget calories.
	CalorieShare float64

	// Exclude drops a candidate from this meal regardless of rank
	// (heavy/oily foods at breakfast, damp-forming foods at dinner).
	Exclude func(f food.Food) bool
}

// Rules is the planning half of a framework rule set.
type Rules struct {
	Framework profile.Framework
	Meals     []MealTemplate

	// ProteinCategories returns the ordered protein-category preference
	// for the profile's dominant constitution or pattern.
	ProteinCategories func(p profile.Profile) []food.Category

	// Incompatible reports whether two foods may never share a meal.
	Incompatible func(a, b food.Food) bool

	// RotationCap is the maximum number of meals a single grain or
	// protein source may appear in across the week.
	RotationCap int

	// Reuse windows in days: a food used on day d is unavailable again
	// before d+window. Staples cover grain and protein categories.
	StapleWindow    int
	VegetableWindow int

	// DailyCalories returns the day's calorie budget, zero when the
	// framework does not budget calories.
	DailyCalories func(p profile.Profile) int
}

// stapleCategories are the grain/protein categories subject to the
// weekly rotation cap.
var stapleCategories = map[food.Category]bool{
	food.CategoryGrain:  true,
	food.CategoryMeat:   true,
	food.CategoryLegume: true,
	food.CategoryEgg:    true,
}

// IsStaple reports whether the category counts toward the rotation cap.
func IsStaple(c food.Category) bool {
	return stapleCategories[c]
}

// CategoryPairs builds a pairwise incompatibility predicate from
// unordered category pairs.
func CategoryPairs(pairs ...[2]food.Category) func(a, b food.Food) bool {
	return func(a, b food.Food) bool {
		for _, p := range pairs {
			if (a.Category == p[0] && b.Category == p[1]) ||
				(a.Category == p[1] && b.Category == p[0]) {
				return true
			}
		}
		return false
	}
}

// AnyIncompatible combines incompatibility predicates.
func AnyIncompatible(preds ...func(a, b food.Food) bool) func(a, b food.Food) bool {
	return func(a, b food.Food) bool {
		for _, pred := range preds {
			if pred(a, b) {
				return true
			}
		}
		return false
	}
}
