// Package planner assembles seven-day meal plans from a tiered catalog
// under rotation, variety and food-incompatibility constraints.
package planner

import (
	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
)

// MealType identifies a day-part slot.
type MealType string

const (
	MealBreakfast      MealType = "breakfast"
	MealLunch          MealType = "lunch"
	MealDinner         MealType = "dinner"
	MealMorningSnack   MealType = "morning_snack"
	MealAfternoonSnack MealType = "afternoon_snack"
)

// MealItem is one food placed into a meal.
type MealItem struct {
	Food            food.Food
	Score           float64
	PortionLabel    string
	PreparationNote string
}

// Meal is an assembled day-part.
type Meal struct {
	Type          MealType
	Items         []MealItem
	CalorieTarget int // zero when the framework does not budget calories

	// UnderFilled marks a meal that could not fill every template slot
	// because rotation or incompatibility exhausted the candidates.
	UnderFilled bool
}

// DayPlan holds one day's ordered meals.
type DayPlan struct {
	Day   int // 1-7
	Meals []Meal
}

// Shortfall records an unfillable slot so callers can detect degraded
// plans without inspecting every meal.
type Shortfall struct {
	Day      int
	Meal     MealType
	Category food.Category
}

// WeeklyPlan is the seven-day output structure.
type WeeklyPlan struct {
	Framework  profile.Framework
	Days       []DayPlan
	Shortfalls []Shortfall
}

// UnderFilled reports whether any slot fell short.
func (w WeeklyPlan) UnderFilled() bool {
	return len(w.Shortfalls) > 0
}

// MealCount returns how many meals the week contains.
func (w WeeklyPlan) MealCount() int {
	n := 0
	for _, d := range w.Days {
		n += len(d.Meals)
	}
	return n
}

// UsesOf counts how many meals across the week contain the named food.
func (w WeeklyPlan) UsesOf(name string) int {
	n := 0
	for _, d := range w.Days {
		for _, m := range d.Meals {
			for _, item := range m.Items {
				if item.Food.Name == name {
					n++
					break
				}
			}
		}
	}
	return n
}
