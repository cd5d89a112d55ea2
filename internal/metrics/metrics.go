// Package metrics provides lightweight hooks for instrumentation.
package metrics

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Auth metrics
	IncUserRegistered()
	IncUserLoggedIn()
	IncAuthFailure()

	// CRUD metrics
	IncIdeaCreated()
	IncIdeaDeleted()
	IncProjectionCreated()
	IncProjectionDeleted()

	// Idea-generation metrics. Fallback counts matter: the generator never
	// surfaces upstream failures, so this counter is how operators detect a
	// failing model provider.
	IncIdeasGeneratedFromModel()
	IncIdeasGeneratedFromFallback()

	// Rate limiting
	IncRateLimited()
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
