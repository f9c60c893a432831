// Package clock provides a shared, low-overhead time source for TTL expiry
// checks.
//
// A pool evaluates expiry on every checkout and checkin. Querying the
// operating system clock on each of those is measurably more expensive than
// a single atomic read, so the Service caches the current time in
// milliseconds and refreshes it from a background ticker. Callers that need
// exact readings can opt into precise mode at construction, trading the
// cheap read for a source query per call.
package clock

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// State describes the background ticker's lifecycle.
type State int

const (
	// StateStopped means the ticker goroutine has never been started.
	StateStopped State = iota
	// StateRunning means the ticker is refreshing the cached time.
	StateRunning
	// StatePaused means Stop was called; the ticker parks until resumed.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateStopped:
		return "stopped"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Service supplies "current time" readings. Create one with New and share
// the handle with everything that checks TTLs; tests should create their own
// isolated instance rather than reaching for a global.
//
// The cached value is single-writer, multi-reader: only the ticker (or an
// explicit Tick) stores it, and Millis loads it without any lock.
type Service struct {
	precise    bool
	resolution time.Duration
	source     Source
	logger     *slog.Logger

	cached atomic.Int64 // milliseconds since the Unix epoch
	ticks  atomic.Uint64

	mu     sync.Mutex // guards state transitions, never the read path
	state  State
	paused atomic.Bool   // read by the ticker loop
	resume chan struct{} // signals the parked ticker
}

// New creates a Service from opts. The zero Options value gives approximate
// mode, millisecond resolution and the system time source. The service does
// not tick until Start or Tick is called; in approximate mode readings are
// zero until then.
func New(opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		precise:    opts.Precise,
		resolution: opts.Resolution,
		source:     opts.Source,
		logger:     opts.Logger,
		resume:     make(chan struct{}, 1),
	}
}

// Millis returns the current time in milliseconds since the Unix epoch.
//
// In precise mode every call queries the time source. In approximate mode
// this is a single atomic load of the value written by the last tick, stale
// by at most one resolution interval while the ticker is running. It never
// fails.
func (s *Service) Millis() int64 {
	if s.precise {
		return s.source.Now().UnixMilli()
	}
	return s.cached.Load()
}

// Now returns Millis as a time.Time, at millisecond granularity.
func (s *Service) Now() time.Time {
	return time.UnixMilli(s.Millis())
}

// Tick refreshes the cached value from the time source and returns the new
// value. The ticker calls this on every interval; tests call it to force an
// immediate refresh.
func (s *Service) Tick() int64 {
	now := s.source.Now().UnixMilli()
	s.cached.Store(now)
	s.ticks.Add(1)
	return now
}

// Advance increments the cached value by exactly one millisecond, ignoring
// real elapsed time, and returns the new value. Repeated calls yield a
// strictly increasing sequence, which makes time-dependent logic
// deterministic under test.
//
// Contract: the ticker must not be running, and only one goroutine may call
// Advance at a time. Advance racing a tick produces meaningless values.
func (s *Service) Advance() int64 {
	return s.cached.Add(1)
}

// Start begins (or resumes) automatic ticking. It performs one synchronous
// Tick before returning, so the caller observes a fresh value immediately.
// Starting an already running service has no effect beyond that tick.
func (s *Service) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Tick()
	switch s.state {
	case StateStopped:
		s.paused.Store(false)
		s.state = StateRunning
		go s.run()
		s.logger.Debug("clock ticker started",
			slog.Duration("resolution", s.resolution),
			slog.Bool("precise", s.precise))
	case StatePaused:
		s.paused.Store(false)
		s.state = StateRunning
		select {
		case s.resume <- struct{}{}:
		default:
		}
		s.logger.Debug("clock ticker resumed")
	case StateRunning:
		// Already ticking.
	}
}

// Stop pauses automatic ticking. It only sets a flag the ticker observes on
// its next pass and returns immediately, so one more tick may land after
// Stop returns. Start resumes. Stopping a service that is not running has
// no effect.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRunning {
		return
	}
	s.paused.Store(true)
	s.state = StatePaused
	s.logger.Debug("clock ticker pausing")
}

// State reports the ticker's lifecycle state.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Ticks reports how many refreshes have been applied since construction.
func (s *Service) Ticks() uint64 {
	return s.ticks.Load()
}

// run is the ticker loop. It never returns: once created the goroutine
// lives for the process lifetime, parking on the resume channel while
// paused. There is no error path here; a time source is assumed to always
// produce a value.
func (s *Service) run() {
	for {
		if s.paused.Load() {
			// A stale resume token from a rapid Stop/Start/Stop is
			// consumed here and the flag re-checked, so a parked
			// ticker can never run while paused.
			<-s.resume
			continue
		}
		s.Tick()
		time.Sleep(s.resolution)
	}
}
