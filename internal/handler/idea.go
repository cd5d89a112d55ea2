package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

// IdeaHandler handles HTTP requests for business idea operations.
type IdeaHandler struct {
	svc    *service.IdeaService
	logger *slog.Logger
}

// NewIdeaHandler creates a new IdeaHandler.
func NewIdeaHandler(svc *service.IdeaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/business-ideas.
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	ideas, err := h.svc.ListIdeas(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToIdeaListResponse(ideas))
}

// Create handles POST /api/business-ideas.
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	idea, err := h.svc.CreateIdea(r.Context(), userID, service.CreateIdeaInput{
		Title:         req.Title,
		Description:   req.Description,
		Industry:      req.Industry,
		Location:      req.Location,
		InvestmentMin: req.InvestmentMin,
		InvestmentMax: req.InvestmentMax,

		SkillsRequired:      req.SkillsRequired,
		TargetMarket:        req.TargetMarket,
		PotentialChallenges: req.PotentialChallenges,
		SuccessFactors:      req.SuccessFactors,
		MarketTrends:        req.MarketTrends,
		SuccessRateEstimate: req.SuccessRateEstimate,
		EstimatedROI:        req.EstimatedROI,
		EconomicData:        req.EconomicData,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("idea_created", "idea_id", idea.ID, "user_id", userID)

	writeJSON(w, http.StatusCreated, dto.ToIdeaResponse(idea))
}

// Delete handles DELETE /api/business-ideas/{id}.
func (h *IdeaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Idea ID is required")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	if err := h.svc.DeleteIdea(r.Context(), id, userID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("idea_deleted", "idea_id", id, "user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps idea service errors to HTTP responses.
func (h *IdeaHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrIdeaNotFound):
		writeError(w, http.StatusNotFound, "IDEA_NOT_FOUND", "Business idea not found")
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrDescriptionRequired),
		errors.Is(err, service.ErrIndustryRequired),
		errors.Is(err, service.ErrLocationRequired),
		errors.Is(err, service.ErrInvalidInvestment):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
