// Package scoring contains the generic food scoring engine. One engine
// serves all four frameworks; the framework-specific behavior arrives
// as a RuleSet of ordered, signed-delta components.
package scoring

import (
	"context"
	"sync"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
)

// Component is one scoring rule. Components already embed their weight
// multiplier; the food's total score is the plain sum of deltas.
type Component struct {
	Name  string
	Score func(p profile.Profile, f food.Food) (delta float64, reasons []string)
}

// RuleSet supplies the framework-specific pieces of the pipeline.
type RuleSet interface {
	Framework() profile.Framework

	// Scoreable returns nil when the food carries a structurally valid
	// attribute block for this framework, or the exclusion reason.
	Scoreable(f food.Food) error

	Components() []Component
	Tiering() TieringPolicy
}

// ScoredFood is the immutable scoring result for one food. A re-score
// produces a new value; breakdowns are never edited in place.
type ScoredFood struct {
	Food      food.Food
	Score     float64
	Breakdown map[string]float64
	Reasons   []string
}

// Exclusion records a food dropped from a framework's scoring.
type Exclusion struct {
	Food   food.Food
	Reason error
}

// Result is the outcome of scoring a whole catalog.
type Result struct {
	Scored     []ScoredFood // catalog insertion order
	Exclusions []Exclusion
}

// Completeness returns the share of the catalog that was scoreable.
func (r Result) Completeness() float64 {
	total := len(r.Scored) + len(r.Exclusions)
	if total == 0 {
		return 0
	}
	return float64(len(r.Scored)) / float64(total)
}

// defaultWorkers bounds the scoring fan-out. Catalogs are hundreds of
// foods; a small fixed pool keeps allocation flat.
const defaultWorkers = 8

// Engine scores foods against a profile using a framework rule set.
type Engine struct {
	rules   RuleSet
	workers int
}

// NewEngine creates an engine for the given rule set.
func NewEngine(rules RuleSet) *Engine {
	return &Engine{rules: rules, workers: defaultWorkers}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() RuleSet {
	return e.rules
}

// Score scores a single food. It returns the exclusion reason instead
// of a ScoredFood when the food lacks a valid attribute block for the
// engine's framework.
func (e *Engine) Score(p profile.Profile, f food.Food) (*ScoredFood, error) {
	if p.Framework() != e.rules.Framework() {
		return nil, ErrFrameworkMismatch
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := e.rules.Scoreable(f); err != nil {
		return nil, err
	}

	components := e.rules.Components()
	scored := &ScoredFood{
		Food:      f,
		Breakdown: make(map[string]float64, len(components)),
	}
	for _, c := range components {
		delta, reasons := c.Score(p, f)
		scored.Score += delta
		scored.Breakdown[c.Name] = delta
		scored.Reasons = append(scored.Reasons, reasons...)
	}
	return scored, nil
}

// ScoreCatalog scores every food in the catalog against the profile.
// Scoring one food never depends on another, so foods are scored on a
// bounded worker pool; output order is the catalog insertion order
// regardless of scheduling.
func (e *Engine) ScoreCatalog(ctx context.Context, p profile.Profile, catalog []food.Food) (Result, error) {
	if p.Framework() != e.rules.Framework() {
		return Result{}, ErrFrameworkMismatch
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	type slot struct {
		scored *ScoredFood
		err    error
	}
	slots := make([]slot, len(catalog))

	workers := e.workers
	if workers > len(catalog) {
		workers = len(catalog)
	}

	var wg sync.WaitGroup
	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				scored, err := e.Score(p, catalog[i])
				slots[i] = slot{scored: scored, err: err}
			}
		}()
	}

	for i := range catalog {
		select {
		case <-ctx.Done():
			close(indexes)
			wg.Wait()
			return Result{}, ctx.Err()
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	var result Result
	for i, s := range slots {
		if s.err != nil {
			result.Exclusions = append(result.Exclusions, Exclusion{Food: catalog[i], Reason: s.err})
			continue
		}
		result.Scored = append(result.Scored, *s.scored)
	}
	return result, nil
}
