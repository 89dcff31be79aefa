// Package nutrition provides the application layer for the
// multi-framework recommendation and meal-planning use cases.
package nutrition

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equilibra/v1/internal/domain/frameworks"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/reasoning"
	"github.com/equilibra/v1/internal/domain/recommendation"
	"github.com/equilibra/v1/internal/domain/scoring"
	"github.com/equilibra/v1/internal/ports/inbound"
	"github.com/equilibra/v1/internal/ports/outbound"
	"github.com/equilibra/v1/pkg/errors"
)

// planCacheTTL bounds how long a cached plan response lives. Plans are
// deterministic, so the TTL only limits staleness against catalog
// reloads.
const planCacheTTL = time.Hour

// NutritionService implements the nutrition use cases.
type NutritionService struct {
	foodRepo     outbound.FoodRepository
	overrideRepo outbound.OverrideRepository
	cache        outbound.CacheRepository
	polisher     outbound.TextPolisher
	metrics      outbound.EngineMetrics
	logger       *zap.Logger
}

// NewNutritionService creates a new nutrition service. Cache, polisher
// and metrics may be nil; the service degrades gracefully without them.
func NewNutritionService(
	foodRepo outbound.FoodRepository,
	overrideRepo outbound.OverrideRepository,
	cache outbound.CacheRepository,
	polisher outbound.TextPolisher,
	metrics outbound.EngineMetrics,
	logger *zap.Logger,
) inbound.NutritionService {
	return &NutritionService{
		foodRepo:     foodRepo,
		overrideRepo: overrideRepo,
		cache:        cache,
		polisher:     polisher,
		metrics:      metrics,
		logger:       logger.Named("nutrition-service"),
	}
}

// Recommend scores and tiers the whole catalog for the profile.
func (s *NutritionService) Recommend(ctx context.Context, query inbound.RecommendationQuery) (*inbound.RecommendationResult, error) {
	ruleSet, result, tiered, err := s.scoreAndTier(ctx, query)
	if err != nil {
		return nil, err
	}

	recs := make([]recommendation.Recommendation, 0, tiered.Len())
	appendTier := func(scored []scoring.ScoredFood, tier scoring.Tier) {
		for _, sf := range scored {
			rec := recommendation.FromScored(sf, tier)
			if query.Preferences.MinScore != nil && rec.Score < *query.Preferences.MinScore {
				continue
			}
			recs = append(recs, rec)
		}
	}
	appendTier(tiered.HighlyRecommended, scoring.TierHighlyRecommended)
	appendTier(tiered.Moderate, scoring.TierModerate)
	appendTier(tiered.Avoid, scoring.TierAvoid)

	if limit := query.Preferences.Limit; limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}

	s.logger.Info("Recommendations produced",
		zap.String("framework", string(ruleSet.Framework())),
		zap.Int("recommended", len(recs)),
		zap.Int("excluded", len(result.Exclusions)),
	)

	return &inbound.RecommendationResult{
		Framework:       ruleSet.Framework(),
		Recommendations: recs,
		Completeness:    result.Completeness(),
		ExcludedFoods:   len(result.Exclusions),
	}, nil
}

// BuildWeeklyPlan assembles a seven-day plan plus reasoning.
func (s *NutritionService) BuildWeeklyPlan(ctx context.Context, query inbound.RecommendationQuery) (*inbound.PlanResult, error) {
	cacheKey := s.planCacheKey(query)
	if cached := s.getCachedPlan(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	ruleSet, result, tiered, err := s.scoreAndTier(ctx, query)
	if err != nil {
		return nil, err
	}

	weekly := planner.New(ruleSet.PlanRules()).Build(query.Profile, tiered)
	if weekly.UnderFilled() {
		s.logger.Warn("Plan generated with unfilled slots",
			zap.String("framework", string(ruleSet.Framework())),
			zap.Int("shortfalls", len(weekly.Shortfalls)),
		)
	}
	if s.metrics != nil {
		s.metrics.ObserveShortfalls(string(ruleSet.Framework()), len(weekly.Shortfalls))
	}

	explanation := reasoning.Generate(query.Profile, tiered)
	explanation.Polished = s.polish(ctx, explanation.Render())

	planResult := &inbound.PlanResult{
		Framework:    ruleSet.Framework(),
		Plan:         weekly,
		Reasoning:    explanation,
		Completeness: result.Completeness(),
	}
	s.cachePlan(ctx, cacheKey, planResult)
	return planResult, nil
}

// CreateOverride records a practitioner score override.
func (s *NutritionService) CreateOverride(ctx context.Context, cmd inbound.CreateOverrideCommand) (*recommendation.Override, error) {
	override, err := recommendation.NewOverride(cmd.UserID, cmd.ItemID, cmd.PractitionerID, cmd.Action, cmd.Reason, cmd.NewScore)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.overrideRepo.Create(ctx, override); err != nil {
		return nil, errors.NewDatabaseError("create override", err)
	}

	s.logger.Info("Override recorded",
		zap.String("override_id", override.ID.String()),
		zap.String("user_id", override.UserID.String()),
		zap.String("item_id", override.ItemID.String()),
		zap.String("action", string(override.Action)),
	)
	return override, nil
}

// GetOverride fetches an override, or nil when none exists.
func (s *NutritionService) GetOverride(ctx context.Context, userID, itemID uuid.UUID) (*recommendation.Override, error) {
	override, err := s.overrideRepo.FindByUserAndItem(ctx, userID, itemID)
	if err != nil {
		return nil, errors.NewDatabaseError("find override", err)
	}
	return override, nil
}

// ApplyOverride applies a stored override to a recommendation.
func (s *NutritionService) ApplyOverride(ctx context.Context, rec recommendation.Recommendation, userID uuid.UUID) (recommendation.Recommendation, error) {
	override, err := s.overrideRepo.FindByUserAndItem(ctx, userID, rec.FoodID)
	if err != nil {
		return rec, errors.NewDatabaseError("find override", err)
	}
	if override == nil {
		return rec, errors.NewOverrideNotFoundError(userID.String(), rec.FoodID.String())
	}
	return recommendation.ApplyOverride(rec, *override), nil
}

// scoreAndTier runs the shared head of both pipelines: resolve the
// rule set, load the catalog, score, tier, then apply the preference
// filters. Filters run on the tiered catalog, before planning.
func (s *NutritionService) scoreAndTier(ctx context.Context, query inbound.RecommendationQuery) (*frameworks.RuleSet, scoring.Result, scoring.TieredCatalog, error) {
	if query.Profile == nil {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, errors.NewValidationError("profile is required")
	}

	ruleSet, err := frameworks.ForFramework(query.Profile.Framework())
	if err != nil {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, err
	}
	if err := query.Profile.Validate(); err != nil {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, errors.NewProfileInvalidError(string(ruleSet.Framework()), err)
	}

	catalog, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, errors.NewDatabaseError("load food catalog", err)
	}

	result, err := scoring.NewEngine(ruleSet).ScoreCatalog(ctx, query.Profile, catalog)
	if err != nil {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, errors.Wrap(err, "score catalog")
	}

	for _, excluded := range result.Exclusions {
		s.logger.Debug("Food excluded from framework scoring",
			zap.String("framework", string(ruleSet.Framework())),
			zap.String("food", excluded.Food.Name),
			zap.Error(excluded.Reason),
		)
	}
	if s.metrics != nil {
		s.metrics.ObserveScoring(string(ruleSet.Framework()), len(result.Scored), len(result.Exclusions))
	}
	if len(result.Scored) == 0 {
		return nil, scoring.Result{}, scoring.TieredCatalog{}, errors.NewEmptyCatalogError(string(ruleSet.Framework()))
	}

	tiered := scoring.BuildTiers(result.Scored, ruleSet.Tiering())
	tiered = tiered.Filter(preferenceFilter(query.Preferences))
	return ruleSet, result, tiered, nil
}

// preferenceFilter builds the keep-predicate for the caller's filters.
func preferenceFilter(prefs inbound.Preferences) func(s scoring.ScoredFood) bool {
	excludedNames := make(map[string]bool, len(prefs.ExcludeIngredients))
	for _, name := range prefs.ExcludeIngredients {
		excludedNames[name] = true
	}
	excludedAllergens := make(map[string]bool, len(prefs.ExcludeAllergens))
	for _, tag := range prefs.ExcludeAllergens {
		excludedAllergens[tag] = true
	}

	return func(s scoring.ScoredFood) bool {
		if excludedNames[s.Food.Name] {
			return false
		}
		if prefs.VegetarianOnly && !s.Food.IsVegetarian() {
			return false
		}
		if prefs.Category != "" && s.Food.Category != prefs.Category {
			return false
		}
		for _, tag := range s.Food.Tags {
			if excludedAllergens[tag] {
				return false
			}
		}
		return true
	}
}

// polish runs the optional rewording step. Fails open: any error or
// missing polisher yields the deterministic text untouched.
func (s *NutritionService) polish(ctx context.Context, text string) string {
	if s.polisher == nil {
		return ""
	}
	polished, err := s.polisher.Polish(ctx, text)
	if err != nil {
		s.logger.Warn("Reasoning polish failed, using template text", zap.Error(err))
		return ""
	}
	return polished
}

// planCacheKey hashes the full request so identical requests share a
// cache entry. Determinism of the pipeline makes this safe.
func (s *NutritionService) planCacheKey(query inbound.RecommendationQuery) string {
	payload, err := json.Marshal(struct {
		Framework   profile.Framework   `json:"framework"`
		Profile     profile.Profile     `json:"profile"`
		Preferences inbound.Preferences `json:"preferences"`
	}{query.Profile.Framework(), query.Profile, query.Preferences})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("plan:%s:%s", query.Profile.Framework(), hex.EncodeToString(sum[:16]))
}

func (s *NutritionService) getCachedPlan(ctx context.Context, key string) *inbound.PlanResult {
	if s.cache == nil || key == "" {
		return nil
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil || len(raw) == 0 {
		return nil
	}
	var cached inbound.PlanResult
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil
	}
	return &cached
}

func (s *NutritionService) cachePlan(ctx context.Context, key string, result *inbound.PlanResult) {
	if s.cache == nil || key == "" {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, planCacheTTL); err != nil {
		s.logger.Debug("Plan cache write failed", zap.Error(err))
	}
}
