// Package reasoning renders the deterministic explanation accompanying
// a weekly plan. Pure template interpolation over the profile and the
// tiered catalog: no randomness, no external calls.
package reasoning

import (
	"fmt"
	"strings"

	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// listLimit truncates the emphasize/avoid food lists.
const listLimit = 10

// Reasoning is the structured explanation for a plan.
type Reasoning struct {
	Summary        string   `json:"summary"`
	CorrectionGoal string   `json:"correction_goal"`
	MealTiming     string   `json:"meal_timing"`
	Principles     []string `json:"principles"`
	Emphasize      []string `json:"emphasize"`
	Avoid          []string `json:"avoid"`

	// Polished carries the optional reworded narrative. Empty until a
	// polisher runs; scores and facts above are never touched by it.
	Polished string `json:"polished,omitempty"`
}

// Render produces the deterministic narrative text.
func (r Reasoning) Render() string {
	var b strings.Builder
	b.WriteString(r.Summary)
	b.WriteString("\n\n")
	b.WriteString(r.CorrectionGoal)
	b.WriteString("\n\n")
	b.WriteString(r.MealTiming)
	b.WriteString("\n\nGuiding principles:\n")
	for _, p := range r.Principles {
		fmt.Fprintf(&b, "- %s\n", p)
	}
	if len(r.Emphasize) > 0 {
		fmt.Fprintf(&b, "\nEmphasize: %s\n", strings.Join(r.Emphasize, ", "))
	}
	if len(r.Avoid) > 0 {
		fmt.Fprintf(&b, "Limit or avoid: %s\n", strings.Join(r.Avoid, ", "))
	}
	return b.String()
}

// Generate builds the explanation for a profile and its tiered catalog.
func Generate(p profile.Profile, tiered scoring.TieredCatalog) Reasoning {
	r := Reasoning{
		Emphasize: foodNames(tiered.HighlyRecommended, listLimit),
		Avoid:     foodNames(tiered.Avoid, listLimit),
	}

	switch prof := p.(type) {
	case profile.AyurvedaProfile:
		r.Summary = fmt.Sprintf("Your dominant dosha is %s at severity %d of 3.", prof.Dominant, prof.Severity)
		r.CorrectionGoal = fmt.Sprintf("The primary goal of this plan is to pacify %s through opposing tastes and qualities.", prof.Dominant)
		r.MealTiming = agniTiming(prof.Agni)
		r.Principles = []string{
			fmt.Sprintf("favor tastes and potencies that reduce %s", prof.Dominant),
			"keep lunch the largest meal of the day",
			"avoid incompatible combinations such as dairy with fruit",
			"rotate grains and proteins so no staple repeats too often",
		}
		if prof.SecondaryElevated() {
			r.Principles = append(r.Principles,
				fmt.Sprintf("give secondary attention to the elevated %s", *prof.Secondary))
		}
	case profile.UnaniProfile:
		r.Summary = fmt.Sprintf("Your dominant humor is %s at severity %d of 3.", prof.Dominant, prof.Severity)
		r.CorrectionGoal = fmt.Sprintf("The plan favors foods of opposing temperament to drain the excess %s.", prof.Dominant)
		r.MealTiming = digestiveTiming(prof.DigestiveStrength)
		r.Principles = []string{
			fmt.Sprintf("choose foods whose temperament opposes %s", prof.Dominant),
			"match food digestibility to your digestive strength",
			"keep dinner light and early",
			"rotate staples across the week for variety",
		}
	case profile.TCMProfile:
		r.Summary = fmt.Sprintf("Your primary pattern is %s at severity %d of 3.", patternLabel(prof.Primary), prof.Severity)
		r.CorrectionGoal = fmt.Sprintf("The plan emphasizes foods that resolve %s while avoiding what feeds it.", patternLabel(prof.Primary))
		r.MealTiming = "Eat warm, cooked meals at regular hours; a substantial lunch and a light dinner follow the natural rhythm of digestion."
		r.Principles = []string{
			fmt.Sprintf("favor foods that address %s", patternLabel(prof.Primary)),
			"balance the thermal nature of foods against your constitution",
			"prefer cooked over raw preparations",
			"keep portions moderate and regular",
		}
		if prof.Secondary != nil {
			r.Principles = append(r.Principles,
				fmt.Sprintf("support the secondary %s pattern where possible", patternLabel(*prof.Secondary)))
		}
	case profile.ClinicalProfile:
		r.Summary = fmt.Sprintf("Your clinical profile lists %d goal(s) and %d active risk factor(s).", len(prof.Goals), len(prof.RiskFlags))
		r.CorrectionGoal = clinicalGoalText(prof)
		r.MealTiming = "Calories are split roughly 20-25% at breakfast, 30-35% at lunch and 20-25% at dinner, with the remainder across two snacks."
		r.Principles = []string{
			"prioritize micronutrient-dense, high-fiber foods",
			"keep glycemic load, sodium and saturated fat within your risk limits",
			"rotate protein and grain sources across the week",
			"take fruit on its own, away from other foods",
		}
		for _, in := range prof.Intolerances {
			r.Principles = append(r.Principles, fmt.Sprintf("exclude %s triggers entirely", in))
		}
	}
	return r
}

func foodNames(scored []scoring.ScoredFood, limit int) []string {
	names := make([]string, 0, limit)
	for _, s := range scored {
		if len(names) >= limit {
			break
		}
		names = append(names, s.Food.Name)
	}
	return names
}

func agniTiming(agni profile.AgniType) string {
	switch agni {
	case profile.AgniSharp:
		return "Your sharp agni digests well: three full meals are appropriate, with lunch at midday when digestion peaks."
	case profile.AgniVariable:
		return "Your variable agni benefits from regular mealtimes and warm, moist food; avoid skipping meals."
	case profile.AgniMild:
		return "Your mild agni prefers modest portions; let lunch carry the day's bulk and keep dinner small."
	default:
		return "Your weak agni needs light, warm, well-spiced meals; eat your main meal at midday and finish dinner early."
	}
}

func digestiveTiming(strength profile.DigestiveStrength) string {
	switch strength {
	case profile.DigestionStrong:
		return "Strong digestion supports three substantial meals; keep regular hours."
	case profile.DigestionModerate:
		return "Moderate digestion favors a substantial lunch and a lighter dinner taken well before sleep."
	case profile.DigestionSlow:
		return "Slow digestion calls for generous gaps between meals and a light evening meal."
	default:
		return "Weak digestion calls for small, frequent, easily digested meals and warm preparations."
	}
}

func patternLabel(p profile.Pattern) string {
	return strings.ReplaceAll(string(p), "_", " ")
}

func clinicalGoalText(prof profile.ClinicalProfile) string {
	if len(prof.Goals) == 0 {
		return "The plan targets overall nutrient quality in the absence of specific goals."
	}
	labels := make([]string, len(prof.Goals))
	for i, g := range prof.Goals {
		labels[i] = strings.ReplaceAll(string(g), "_", " ")
	}
	return fmt.Sprintf("The plan is weighted toward your stated goals: %s.", strings.Join(labels, ", "))
}
