package scoring

import "sort"

// Tier is one of the ordered recommendation bands.
type Tier string

const (
	TierHighlyRecommended Tier = "highly_recommended"
	TierModerate          Tier = "moderate"
	TierAvoid             Tier = "avoid"
)

// TieringMethod selects how tier boundaries are computed.
type TieringMethod string

const (
	TieringPercentile TieringMethod = "percentile"
	TieringAbsolute   TieringMethod = "absolute"
)

// TieringPolicy describes a framework's tier boundaries.
type TieringPolicy struct {
	Method TieringMethod

	// Percentile shares, used when Method is TieringPercentile.
	TopShare      float64
	ModerateShare float64

	// Absolute thresholds, used when Method is TieringAbsolute.
	HighThreshold     float64
	ModerateThreshold float64

	// PlanningCap limits the planning pool to the top N ranked entries.
	// Zero means uncapped.
	PlanningCap int
}

// PercentilePolicy is the 30/40/30 split used by the ayurveda and
// unani frameworks.
func PercentilePolicy(planningCap int) TieringPolicy {
	return TieringPolicy{
		Method:        TieringPercentile,
		TopShare:      0.30,
		ModerateShare: 0.40,
		PlanningCap:   planningCap,
	}
}

// AbsolutePolicy is the >=10 / >=0 / <0 split used by the clinical
// framework.
func AbsolutePolicy() TieringPolicy {
	return TieringPolicy{
		Method:            TieringAbsolute,
		HighThreshold:     10,
		ModerateThreshold: 0,
	}
}

// TieredCatalog is the ordered partition of scored foods. It is
// derived and never persisted; every planning request recomputes it.
type TieredCatalog struct {
	HighlyRecommended []ScoredFood
	Moderate          []ScoredFood
	Avoid             []ScoredFood

	planningCap int
}

// Len returns the total number of tiered foods.
func (t TieredCatalog) Len() int {
	return len(t.HighlyRecommended) + len(t.Moderate) + len(t.Avoid)
}

// Ranked returns all tiers concatenated in rank order.
func (t TieredCatalog) Ranked() []ScoredFood {
	ranked := make([]ScoredFood, 0, t.Len())
	ranked = append(ranked, t.HighlyRecommended...)
	ranked = append(ranked, t.Moderate...)
	ranked = append(ranked, t.Avoid...)
	return ranked
}

// PlanningPool returns the foods the planner may draw from: the
// highly-recommended and moderate tiers, truncated to the planning
// cap when one is set. Avoid-tier foods never enter a plan.
func (t TieredCatalog) PlanningPool() []ScoredFood {
	pool := make([]ScoredFood, 0, len(t.HighlyRecommended)+len(t.Moderate))
	pool = append(pool, t.HighlyRecommended...)
	pool = append(pool, t.Moderate...)
	if t.planningCap > 0 && len(pool) > t.planningCap {
		pool = pool[:t.planningCap]
	}
	return pool
}

// Filter returns a new catalog keeping only foods the predicate
// accepts. Tier membership and order are preserved, so preference
// filters can run between tiering and planning without re-scoring.
func (t TieredCatalog) Filter(keep func(s ScoredFood) bool) TieredCatalog {
	filtered := TieredCatalog{planningCap: t.planningCap}
	for _, s := range t.HighlyRecommended {
		if keep(s) {
			filtered.HighlyRecommended = append(filtered.HighlyRecommended, s)
		}
	}
	for _, s := range t.Moderate {
		if keep(s) {
			filtered.Moderate = append(filtered.Moderate, s)
		}
	}
	for _, s := range t.Avoid {
		if keep(s) {
			filtered.Avoid = append(filtered.Avoid, s)
		}
	}
	return filtered
}

// TierOf returns the tier a food name landed in.
func (t TieredCatalog) TierOf(name string) (Tier, bool) {
	for _, s := range t.HighlyRecommended {
		if s.Food.Name == name {
			return TierHighlyRecommended, true
		}
	}
	for _, s := range t.Moderate {
		if s.Food.Name == name {
			return TierModerate, true
		}
	}
	for _, s := range t.Avoid {
		if s.Food.Name == name {
			return TierAvoid, true
		}
	}
	return "", false
}

// BuildTiers sorts scored foods descending by score (stable: ties keep
// catalog insertion order) and partitions them per the policy. Every
// scored food lands in exactly one tier.
//
// Percentile cuts are computed from the count of successfully scored
// foods, not the full catalog; tiny catalogs therefore produce tiny
// tiers. That matches the assessment rules as written.
func BuildTiers(scored []ScoredFood, policy TieringPolicy) TieredCatalog {
	ranked := make([]ScoredFood, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	tiered := TieredCatalog{planningCap: policy.PlanningCap}

	switch policy.Method {
	case TieringAbsolute:
		for _, s := range ranked {
			switch {
			case s.Score >= policy.HighThreshold:
				tiered.HighlyRecommended = append(tiered.HighlyRecommended, s)
			case s.Score >= policy.ModerateThreshold:
				tiered.Moderate = append(tiered.Moderate, s)
			default:
				tiered.Avoid = append(tiered.Avoid, s)
			}
		}
	default:
		topEnd := int(float64(len(ranked)) * policy.TopShare)
		moderateEnd := topEnd + int(float64(len(ranked))*policy.ModerateShare)
		for i, s := range ranked {
			switch {
			case i < topEnd:
				tiered.HighlyRecommended = append(tiered.HighlyRecommended, s)
			case i < moderateEnd:
				tiered.Moderate = append(tiered.Moderate, s)
			default:
				tiered.Avoid = append(tiered.Avoid, s)
			}
		}
	}
	return tiered
}
