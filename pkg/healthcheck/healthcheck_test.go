package healthcheck

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckerAllHealthy(t *testing.T) {
	checker := NewChecker(zap.NewNop())
	checker.Register("database", func(ctx context.Context) error { return nil })
	checker.Register("cache", func(ctx context.Context) error { return nil })

	require.NoError(t, checker.Check(context.Background()))

	results := checker.Results(context.Background())
	require.Len(t, results, 2)
	assert.Equal(t, "cache", results[0].Name)
	assert.Equal(t, "database", results[1].Name)
	for _, r := range results {
		assert.True(t, r.Healthy)
		assert.Empty(t, r.Error)
	}
}

func TestCheckerReportsFailures(t *testing.T) {
	checker := NewChecker(zap.NewNop())
	checker.Register("database", func(ctx context.Context) error { return nil })
	checker.Register("ollama", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	err := checker.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ollama")
	assert.NotContains(t, err.Error(), "database")
}

func TestCheckerRegisterReplaces(t *testing.T) {
	checker := NewChecker(zap.NewNop())
	checker.Register("database", func(ctx context.Context) error {
		return errors.New("down")
	})
	checker.Register("database", func(ctx context.Context) error { return nil })

	assert.NoError(t, checker.Check(context.Background()))
}

func TestCheckerEmpty(t *testing.T) {
	checker := NewChecker(zap.NewNop())
	assert.NoError(t, checker.Check(context.Background()))
	assert.Empty(t, checker.Results(context.Background()))
}
