package clock

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
)

// Source supplies the real time a Service caches. Implementations must be
// safe for concurrent use: the ticker and precise-mode readers may call Now
// from different goroutines.
type Source interface {
	Now() time.Time
}

// systemSource reads the operating system clock.
type systemSource struct{}

func (systemSource) Now() time.Time { return time.Now() }

// SystemSource returns the default Source, backed by time.Now.
func SystemSource() Source { return systemSource{} }

const (
	ntpBackoffInitial = 5 * time.Second
	ntpBackoffMax     = 5 * time.Minute

	// DefaultNTPSyncInterval is how often an NTPSource re-measures its
	// offset when none is configured explicitly.
	DefaultNTPSyncInterval = 5 * time.Minute
)

// queryFunc matches ntp.Query. Injectable for tests.
type queryFunc func(server string) (*ntp.Response, error)

// NTPSource is a Source that corrects the system clock by an offset measured
// against an NTP server. The offset is re-measured at most once per sync
// interval, piggybacked on Now calls; a failed measurement backs off
// exponentially and keeps serving the last known offset (zero before the
// first success).
//
// Now takes a short lock, so an NTPSource suits the ticker-driven
// approximate mode better than the precise-mode hot path.
type NTPSource struct {
	server       string
	syncInterval time.Duration
	query        queryFunc

	mu          sync.Mutex
	offset      time.Duration
	lastSync    time.Time
	lastAttempt time.Time
	lastErr     error
	backoff     time.Duration
}

// NewNTPSource creates an NTPSource for the given server, for example
// "pool.ntp.org". A syncInterval of zero or less means
// DefaultNTPSyncInterval. The first Now call performs the initial
// measurement.
func NewNTPSource(server string, syncInterval time.Duration) *NTPSource {
	if syncInterval <= 0 {
		syncInterval = DefaultNTPSyncInterval
	}
	return &NTPSource{
		server:       server,
		syncInterval: syncInterval,
		query:        ntp.Query,
	}
}

// Now returns the offset-corrected current time.
func (s *NTPSource) Now() time.Time {
	s.mu.Lock()
	s.maybeSyncLocked()
	offset := s.offset
	s.mu.Unlock()
	return time.Now().Add(offset)
}

// Health reports the current offset, the time of the last successful
// measurement (zero if none yet) and the error from the last attempt, if it
// failed.
func (s *NTPSource) Health() (offset time.Duration, lastSync time.Time, lastErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offset, s.lastSync, s.lastErr
}

func (s *NTPSource) maybeSyncLocked() {
	effective := s.syncInterval
	if s.backoff > 0 {
		if s.backoff > ntpBackoffMax {
			s.backoff = ntpBackoffMax
		}
		effective = s.backoff
	}
	if !s.lastAttempt.IsZero() && time.Since(s.lastAttempt) < effective {
		return
	}
	s.lastAttempt = time.Now()

	resp, err := s.query(s.server)
	if err != nil {
		s.lastErr = err
		if s.backoff == 0 {
			s.backoff = ntpBackoffInitial
		} else {
			s.backoff *= 2
		}
		return
	}
	s.offset = resp.ClockOffset
	s.lastSync = time.Now()
	s.lastErr = nil
	s.backoff = 0
}
