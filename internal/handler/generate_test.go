package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/handler/dto"
	"github.com/bizmatchke/bizmatchke/internal/ideagen"
)

// failingTextGenerator simulates a dead model provider.
type failingTextGenerator struct{}

func (failingTextGenerator) GenerateText(ctx context.Context, prompt string, temperature float32) (string, error) {
	return "", errors.New("upstream unavailable")
}

func newTestGenerateHandler(gen ideagen.TextGenerator) *GenerateHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGenerateHandler(ideagen.NewGenerator(gen, logger, nil, time.Second), logger)
}

// A failing upstream must never surface as a 5xx; the client always gets
// three usable ideas.
func TestGenerateHandler_UpstreamFailureStillReturnsIdeas(t *testing.T) {
	h := newTestGenerateHandler(failingTextGenerator{})

	body := `{"skills":["Carpentry"],"interests":["Furniture"],"budget":"10000-50000","location":"Nakuru"}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-ideas", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response dto.GenerateIdeasResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(response.Ideas) != ideagen.IdeaCount {
		t.Fatalf("expected %d ideas, got %d", ideagen.IdeaCount, len(response.Ideas))
	}
	for i, idea := range response.Ideas {
		if idea.Title == "" || idea.Description == "" {
			t.Errorf("idea %d is incomplete: %+v", i, idea)
		}
	}
}

func TestGenerateHandler_NoUpstreamConfigured(t *testing.T) {
	h := newTestGenerateHandler(nil)

	body := `{"skills":[],"interests":[],"budget":"","location":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-ideas", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var response dto.GenerateIdeasResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Ideas) != ideagen.IdeaCount {
		t.Fatalf("expected %d ideas, got %d", ideagen.IdeaCount, len(response.Ideas))
	}
}

func TestGenerateHandler_InvalidJSON(t *testing.T) {
	h := newTestGenerateHandler(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-ideas", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	h.Generate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}
