package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/ideagen"
)

// GenerateHandler handles HTTP requests for idea generation.
type GenerateHandler struct {
	gen    *ideagen.Generator
	logger *slog.Logger
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(gen *ideagen.Generator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		gen:    gen,
		logger: logger,
	}
}

// Generate handles POST /api/generate-ideas. Upstream failures degrade to
// the fallback set inside the generator, so this endpoint always answers
// 200 with exactly three ideas for a well-formed request.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateIdeasRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	ideas := h.gen.Generate(r.Context(), ideagen.Request{
		Skills:    req.Skills,
		Interests: req.Interests,
		Budget:    req.Budget,
		Location:  req.Location,
	})

	writeJSON(w, http.StatusOK, dto.GenerateIdeasResponse{Ideas: ideas})
}
