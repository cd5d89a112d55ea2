package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersRegistered             uint64
	UsersLoggedIn               uint64
	AuthFailures                uint64
	IdeasCreated                uint64
	IdeasDeleted                uint64
	ProjectionsCreated          uint64
	ProjectionsDeleted          uint64
	IdeasGeneratedFromModel     uint64
	IdeasGeneratedFromFallback  uint64
	RateLimited                 uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	usersRegistered            uint64
	usersLoggedIn              uint64
	authFailures               uint64
	ideasCreated               uint64
	ideasDeleted               uint64
	projectionsCreated         uint64
	projectionsDeleted         uint64
	ideasGeneratedFromModel    uint64
	ideasGeneratedFromFallback uint64
	rateLimited                uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersRegistered:            atomic.LoadUint64(&m.usersRegistered),
		UsersLoggedIn:              atomic.LoadUint64(&m.usersLoggedIn),
		AuthFailures:               atomic.LoadUint64(&m.authFailures),
		IdeasCreated:               atomic.LoadUint64(&m.ideasCreated),
		IdeasDeleted:               atomic.LoadUint64(&m.ideasDeleted),
		ProjectionsCreated:         atomic.LoadUint64(&m.projectionsCreated),
		ProjectionsDeleted:         atomic.LoadUint64(&m.projectionsDeleted),
		IdeasGeneratedFromModel:    atomic.LoadUint64(&m.ideasGeneratedFromModel),
		IdeasGeneratedFromFallback: atomic.LoadUint64(&m.ideasGeneratedFromFallback),
		RateLimited:                atomic.LoadUint64(&m.rateLimited),
	}
}

func (m *InMemoryRecorder) IncUserRegistered()    { atomic.AddUint64(&m.usersRegistered, 1) }
func (m *InMemoryRecorder) IncUserLoggedIn()      { atomic.AddUint64(&m.usersLoggedIn, 1) }
func (m *InMemoryRecorder) IncAuthFailure()       { atomic.AddUint64(&m.authFailures, 1) }
func (m *InMemoryRecorder) IncIdeaCreated()       { atomic.AddUint64(&m.ideasCreated, 1) }
func (m *InMemoryRecorder) IncIdeaDeleted()       { atomic.AddUint64(&m.ideasDeleted, 1) }
func (m *InMemoryRecorder) IncProjectionCreated() { atomic.AddUint64(&m.projectionsCreated, 1) }
func (m *InMemoryRecorder) IncProjectionDeleted() { atomic.AddUint64(&m.projectionsDeleted, 1) }

func (m *InMemoryRecorder) IncIdeasGeneratedFromModel() {
	atomic.AddUint64(&m.ideasGeneratedFromModel, 1)
}

func (m *InMemoryRecorder) IncIdeasGeneratedFromFallback() {
	atomic.AddUint64(&m.ideasGeneratedFromFallback, 1)
}

func (m *InMemoryRecorder) IncRateLimited() { atomic.AddUint64(&m.rateLimited, 1) }
