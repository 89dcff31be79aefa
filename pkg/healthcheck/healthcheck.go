// Package healthcheck aggregates named dependency probes for the
// readiness endpoint.
package healthcheck

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CheckFunc probes a single dependency.
type CheckFunc func(ctx context.Context) error

// Result is the outcome of one probe.
type Result struct {
	Name     string        `json:"name"`
	Healthy  bool          `json:"healthy"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Checker runs registered probes and reports their combined state.
type Checker struct {
	mu     sync.RWMutex
	checks map[string]CheckFunc
	logger *zap.Logger
}

// NewChecker creates an empty checker.
func NewChecker(logger *zap.Logger) *Checker {
	return &Checker{
		checks: make(map[string]CheckFunc),
		logger: logger.Named("healthcheck"),
	}
}

// Register adds a probe under the given name. Registering the same
// name twice replaces the earlier probe.
func (c *Checker) Register(name string, check CheckFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks[name] = check
}

// Results runs every registered probe and returns the outcomes sorted
// by name.
func (c *Checker) Results(ctx context.Context) []Result {
	c.mu.RLock()
	names := make([]string, 0, len(c.checks))
	for name := range c.checks {
		names = append(names, name)
	}
	c.mu.RUnlock()
	sort.Strings(names)

	results := make([]Result, 0, len(names))
	for _, name := range names {
		c.mu.RLock()
		check := c.checks[name]
		c.mu.RUnlock()

		start := time.Now()
		err := check(ctx)
		result := Result{
			Name:     name,
			Healthy:  err == nil,
			Duration: time.Since(start),
		}
		if err != nil {
			result.Error = err.Error()
			c.logger.Warn("Dependency check failed",
				zap.String("check", name),
				zap.Error(err))
		}
		results = append(results, result)
	}
	return results
}

// Check runs every probe and returns an error naming the failed ones.
func (c *Checker) Check(ctx context.Context) error {
	var failed []string
	for _, result := range c.Results(ctx) {
		if !result.Healthy {
			failed = append(failed, result.Name)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("unhealthy dependencies: %s", strings.Join(failed, ", "))
	}
	return nil
}
