// Package frameworks defines the four framework rule sets that
// parameterize the generic scoring engine and planner. Adding a fifth
// framework means adding a rule table here, not a new pipeline.
package frameworks

import (
	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
	"github.com/equilibra/v1/pkg/errors"
)

// RuleSet bundles everything framework-specific: the scoring component
// list, the tiering policy and the planning rules. It implements
// scoring.RuleSet.
type RuleSet struct {
	framework  profile.Framework
	scoreable  func(f food.Food) error
	components []scoring.Component
	tiering    scoring.TieringPolicy
	plan       planner.Rules
}

// Framework implements scoring.RuleSet.
func (r *RuleSet) Framework() profile.Framework { return r.framework }

// Scoreable implements scoring.RuleSet.
func (r *RuleSet) Scoreable(f food.Food) error { return r.scoreable(f) }

// Components implements scoring.RuleSet.
func (r *RuleSet) Components() []scoring.Component { return r.components }

// Tiering implements scoring.RuleSet.
func (r *RuleSet) Tiering() scoring.TieringPolicy { return r.tiering }

// PlanRules returns the framework's planning rules.
func (r *RuleSet) PlanRules() planner.Rules { return r.plan }

// ForFramework returns the rule set registered for a framework.
func ForFramework(fw profile.Framework) (*RuleSet, error) {
	switch fw {
	case profile.FrameworkAyurveda:
		return Ayurveda(), nil
	case profile.FrameworkUnani:
		return Unani(), nil
	case profile.FrameworkTCM:
		return TCM(), nil
	case profile.FrameworkClinical:
		return Clinical(), nil
	default:
		return nil, errors.NewUnsupportedFrameworkError(string(fw))
	}
}

// All returns every registered rule set.
func All() []*RuleSet {
	return []*RuleSet{Ayurveda(), Unani(), TCM(), Clinical()}
}
