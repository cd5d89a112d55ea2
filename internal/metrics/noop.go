package metrics

// NoopRecorder discards all metric events.
type NoopRecorder struct{}

// NewNoop returns a Recorder that does nothing.
func NewNoop() *NoopRecorder {
	return &NoopRecorder{}
}

func (NoopRecorder) IncUserRegistered()             {}
func (NoopRecorder) IncUserLoggedIn()               {}
func (NoopRecorder) IncAuthFailure()                {}
func (NoopRecorder) IncIdeaCreated()                {}
func (NoopRecorder) IncIdeaDeleted()                {}
func (NoopRecorder) IncProjectionCreated()          {}
func (NoopRecorder) IncProjectionDeleted()          {}
func (NoopRecorder) IncIdeasGeneratedFromModel()    {}
func (NoopRecorder) IncIdeasGeneratedFromFallback() {}
func (NoopRecorder) IncRateLimited()                {}
