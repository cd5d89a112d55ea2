package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/finance"
	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

// ProjectionHandler handles HTTP requests for financial projections.
type ProjectionHandler struct {
	svc    *service.ProjectionService
	logger *slog.Logger
}

// NewProjectionHandler creates a new ProjectionHandler.
func NewProjectionHandler(svc *service.ProjectionService, logger *slog.Logger) *ProjectionHandler {
	return &ProjectionHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/financial-projections.
func (h *ProjectionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	projections, err := h.svc.ListProjections(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectionListResponse(projections))
}

// Create handles POST /api/financial-projections.
func (h *ProjectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if req.IdeaID == "" {
		writeError(w, http.StatusBadRequest, "MISSING_IDEA_ID", "idea_id is required")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	projection, err := h.svc.CreateProjection(r.Context(), userID, service.CreateProjectionInput{
		IdeaID:           req.IdeaID,
		StartupCosts:     req.StartupCosts,
		MonthlyExpenses:  req.MonthlyExpenses,
		ProjectedRevenue: req.ProjectedRevenue,
		BreakEvenMonths:  req.BreakEvenMonths,
		WorkingCapital:   req.WorkingCapital,
		GrowthRate:       req.GrowthRate,
		FixedCostPct:     req.FixedCostPct,
		VariableCostPct:  req.VariableCostPct,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("projection_created",
		"projection_id", projection.ID,
		"idea_id", projection.IdeaID,
		"user_id", userID,
	)

	writeJSON(w, http.StatusCreated, dto.ToProjectionResponse(projection))
}

// Get handles GET /api/financial-projections/{id}.
func (h *ProjectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Projection ID is required")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	projection, err := h.svc.GetProjection(r.Context(), id, userID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProjectionResponse(projection))
}

// Delete handles DELETE /api/financial-projections/{id}.
func (h *ProjectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "MISSING_ID", "Projection ID is required")
		return
	}

	userID := auth.UserIDFromContext(r.Context())

	if err := h.svc.DeleteProjection(r.Context(), id, userID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("projection_deleted", "projection_id", id, "user_id", userID)

	w.WriteHeader(http.StatusNoContent)
}

// handleServiceError maps projection service errors to HTTP responses.
func (h *ProjectionHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrProjectionNotFound):
		writeError(w, http.StatusNotFound, "PROJECTION_NOT_FOUND", "Financial projection not found")
	case errors.Is(err, service.ErrIdeaNotFound):
		writeError(w, http.StatusNotFound, "IDEA_NOT_FOUND", "Business idea not found")
	case errors.Is(err, finance.ErrStartupCosts),
		errors.Is(err, finance.ErrMonthlyExpenses),
		errors.Is(err, finance.ErrProjectedRevenue),
		errors.Is(err, finance.ErrBreakEvenMonths),
		errors.Is(err, finance.ErrExpensesExceedRevenue),
		errors.Is(err, finance.ErrInvalidCostSplit):
		writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
