// Package handlers provides the REST API handlers for the engine.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equilibra/v1/internal/domain/recommendation"
	"github.com/equilibra/v1/internal/infrastructure/http/middleware"
	"github.com/equilibra/v1/internal/ports/inbound"
	"github.com/equilibra/v1/pkg/errors"
)

// APIHandlers provides REST API endpoints for the engine services
type APIHandlers struct {
	nutritionService inbound.NutritionService
	catalogService   inbound.CatalogService
	validate         *validator.Validate
	logger           *zap.Logger
}

// NewAPIHandlers creates new API handlers
func NewAPIHandlers(
	nutritionService inbound.NutritionService,
	catalogService inbound.CatalogService,
	logger *zap.Logger,
) *APIHandlers {
	return &APIHandlers{
		nutritionService: nutritionService,
		catalogService:   catalogService,
		validate:         validator.New(),
		logger:           logger.Named("api-handlers"),
	}
}

// Recommend handles POST /api/v1/recommendations
func (h *APIHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	query, ok := h.decodeRecommendationRequest(w, r)
	if !ok {
		return
	}

	result, err := h.nutritionService.Recommend(r.Context(), query)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// BuildPlan handles POST /api/v1/plans
func (h *APIHandlers) BuildPlan(w http.ResponseWriter, r *http.Request) {
	query, ok := h.decodeRecommendationRequest(w, r)
	if !ok {
		return
	}

	result, err := h.nutritionService.BuildWeeklyPlan(r.Context(), query)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}

// ListFoods handles GET /api/v1/foods
func (h *APIHandlers) ListFoods(w http.ResponseWriter, r *http.Request) {
	foods, err := h.catalogService.ListFoods(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"foods": foods,
		"count": len(foods),
	})
}

// GetFood handles GET /api/v1/foods/{id}
func (h *APIHandlers) GetFood(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, errors.NewValidationError("invalid food id"))
		return
	}

	f, err := h.catalogService.GetFood(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, f)
}

// CreateOverride handles POST /api/v1/overrides
func (h *APIHandlers) CreateOverride(w http.ResponseWriter, r *http.Request) {
	var req CreateOverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, errors.NewValidationError("invalid JSON body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, errors.NewValidationError(err.Error()))
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	itemID, _ := uuid.Parse(req.ItemID)

	override, err := h.nutritionService.CreateOverride(r.Context(), inbound.CreateOverrideCommand{
		UserID:         userID,
		ItemID:         itemID,
		PractitionerID: practitionerID(r),
		Action:         recommendation.OverrideAction(req.Action),
		Reason:         req.Reason,
		NewScore:       req.NewScore,
	})
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, override)
}

// GetOverride handles GET /api/v1/overrides/{userID}/{itemID}
func (h *APIHandlers) GetOverride(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.respondError(w, errors.NewValidationError("invalid user id"))
		return
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemID"))
	if err != nil {
		h.respondError(w, errors.NewValidationError("invalid item id"))
		return
	}

	override, err := h.nutritionService.GetOverride(r.Context(), userID, itemID)
	if err != nil {
		h.respondError(w, err)
		return
	}
	if override == nil {
		h.respondError(w, errors.NewOverrideNotFoundError(userID.String(), itemID.String()))
		return
	}
	h.respondJSON(w, http.StatusOK, override)
}

// HealthCheck handles GET /health
func (h *APIHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *APIHandlers) decodeRecommendationRequest(w http.ResponseWriter, r *http.Request) (inbound.RecommendationQuery, bool) {
	var req RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, errors.NewValidationError("invalid JSON body"))
		return inbound.RecommendationQuery{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		h.respondError(w, errors.NewValidationError(err.Error()))
		return inbound.RecommendationQuery{}, false
	}

	prof, err := req.Profile.ToDomain()
	if err != nil {
		h.respondError(w, errors.NewValidationError(err.Error()))
		return inbound.RecommendationQuery{}, false
	}

	return inbound.RecommendationQuery{
		Profile:     prof,
		Preferences: req.Preferences.ToPreferences(),
	}, true
}

func (h *APIHandlers) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (h *APIHandlers) respondError(w http.ResponseWriter, err error) {
	appErr := errors.Wrap(err, "request failed")
	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		h.logger.Error("Request failed", zap.Error(err))
	}
	h.respondJSON(w, status, errors.ToErrorResponse(appErr, ""))
}

// practitionerID resolves the acting practitioner from the request
// identity, falling back to the X-Practitioner-ID header when the
// server runs without auth.
func practitionerID(r *http.Request) uuid.UUID {
	if id := middleware.UserIDFromContext(r.Context()); id != uuid.Nil {
		return id
	}
	id, err := uuid.Parse(r.Header.Get("X-Practitioner-ID"))
	if err != nil {
		return uuid.Nil
	}
	return id
}
