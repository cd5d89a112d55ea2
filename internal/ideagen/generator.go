package ideagen

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/bizmatchke/bizmatchke/internal/metrics"
)

// Temperature is randomized per call to vary output across repeated calls
// with identical inputs. This is intentional, not a bug.
const (
	temperatureBase   = 0.5
	temperatureSpread = 0.3

	defaultTimeout = 30 * time.Second
)

// Generator produces business-idea recommendations.
type Generator struct {
	gen     TextGenerator
	logger  *slog.Logger
	metrics metrics.Recorder
	timeout time.Duration

	// temperature is swappable for deterministic tests.
	temperature func() float32
}

// NewGenerator creates a Generator. gen may be nil when no API key is
// configured; every request is then served from fallback templates.
func NewGenerator(gen TextGenerator, logger *slog.Logger, recorder metrics.Recorder, timeout time.Duration) *Generator {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{
		gen:     gen,
		logger:  logger,
		metrics: recorder,
		timeout: timeout,
		temperature: func() float32 {
			return temperatureBase + rand.Float32()*temperatureSpread
		},
	}
}

// Generate returns exactly IdeaCount schema-valid ideas. It never returns
// an error: upstream failures, timeouts, unparsable output, and schema
// rejections all degrade to the deterministic fallback set. The caller's
// context still cancels the upstream call when the client disconnects.
func (g *Generator) Generate(ctx context.Context, req Request) []GeneratedIdea {
	if g.gen == nil {
		g.logger.Warn("idea generation upstream not configured, serving fallback")
		g.metrics.IncIdeasGeneratedFromFallback()
		return fallbackIdeas(req)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.gen.GenerateText(ctx, buildPrompt(req), g.temperature())
	if err != nil {
		g.logger.Warn("idea generation upstream call failed, serving fallback",
			slog.String("error", err.Error()),
		)
		g.metrics.IncIdeasGeneratedFromFallback()
		return fallbackIdeas(req)
	}

	ideas, err := parseIdeas(raw)
	if err != nil {
		g.logger.Warn("idea generation response unparsable, serving fallback",
			slog.Int("response_len", len(raw)),
		)
		g.metrics.IncIdeasGeneratedFromFallback()
		return fallbackIdeas(req)
	}

	valid := filterValid(ideas)
	if discarded := len(ideas) - len(valid); discarded > 0 {
		g.logger.Warn("discarded schema-invalid generated ideas",
			slog.Int("discarded", discarded),
			slog.Int("valid", len(valid)),
		)
	}

	if len(valid) == 0 {
		g.metrics.IncIdeasGeneratedFromFallback()
		return fallbackIdeas(req)
	}

	if len(valid) > IdeaCount {
		valid = valid[:IdeaCount]
	}

	// Top up from templates when the model returned fewer than required.
	if len(valid) < IdeaCount {
		g.logger.Warn("topping up generated ideas from fallback templates",
			slog.Int("from_model", len(valid)),
		)
		g.metrics.IncIdeasGeneratedFromFallback()
		for _, idea := range fallbackIdeas(req) {
			if len(valid) == IdeaCount {
				break
			}
			valid = append(valid, idea)
		}
	}

	g.metrics.IncIdeasGeneratedFromModel()
	return valid
}
