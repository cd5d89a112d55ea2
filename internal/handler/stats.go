package handler

import (
	"log/slog"
	"net/http"

	"github.com/bizmatchke/bizmatchke/internal/auth"
	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/service"
)

// StatsHandler handles HTTP requests for dashboard statistics.
type StatsHandler struct {
	svc    *service.StatsService
	logger *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(svc *service.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{
		svc:    svc,
		logger: logger,
	}
}

// Get handles GET /api/stats.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	stats, err := h.svc.GetStats(r.Context(), userID)
	if err != nil {
		h.logger.Error("internal_error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToStatsResponse(stats))
}
