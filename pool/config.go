// Package pool holds the validated configuration contract a resource pool
// reads at construction time: capacity, element TTL and the allocation
// strategy.
package pool

import (
	"fmt"
	"sync"
	"time"
)

// Policy controls whether setters enforce their input constraints.
type Policy int

const (
	// PolicyStrict rejects out-of-range inputs with ErrInvalidArgument.
	PolicyStrict Policy = iota
	// PolicyRelaxed accepts any input silently. Intended for internal and
	// test wiring only: a relaxed config can hold values a pool cannot
	// operate with, such as a zero size.
	PolicyRelaxed
)

// String returns a human-readable policy name.
func (p Policy) String() string {
	switch p {
	case PolicyStrict:
		return "strict"
	case PolicyRelaxed:
		return "relaxed"
	default:
		return "unknown"
	}
}

// Defaults for a fresh Config.
const (
	DefaultSize    = 10
	DefaultTTL     = 10
	DefaultTTLUnit = time.Minute
)

// Config holds pool construction parameters. The element type T is fixed at
// construction; the allocator must produce elements of that type.
//
// A Config is safe for concurrent use: every accessor and mutator takes the
// instance lock. Callers must not assume lock-free behavior.
type Config[T any] struct {
	mu        sync.Mutex
	size      int
	ttl       int64
	ttlUnit   time.Duration
	allocator Allocator[T]
	policy    Policy
}

// New returns a Config with the defaults: size 10, TTL 10 minutes, no
// allocator, strict validation.
func New[T any]() *Config[T] {
	return NewWithPolicy[T](PolicyStrict)
}

// NewWithPolicy returns a Config with the defaults under the given
// validation policy.
func NewWithPolicy[T any](p Policy) *Config[T] {
	return &Config[T]{
		size:    DefaultSize,
		ttl:     DefaultTTL,
		ttlUnit: DefaultTTLUnit,
		policy:  p,
	}
}

// SetSize sets the pool capacity. Under PolicyStrict size must be at least
// 1; on violation the previous value is kept and ErrInvalidArgument
// returned.
func (c *Config[T]) SetSize(size int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.policy == PolicyStrict && size < 1 {
		return fmt.Errorf("%w: size must be at least 1 but was %d", ErrInvalidArgument, size)
	}
	c.size = size
	return nil
}

// Size returns the last accepted capacity.
func (c *Config[T]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// SetTTL stores the element time-to-live as a value and unit pair, for
// example (30, time.Second). The value is stored verbatim with no bounds
// check in either mode; under PolicyStrict the unit must be positive.
func (c *Config[T]) SetTTL(value int64, unit time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.policy == PolicyStrict && unit <= 0 {
		return fmt.Errorf("%w: ttl unit must be positive but was %v", ErrInvalidArgument, unit)
	}
	c.ttl = value
	c.ttlUnit = unit
	return nil
}

// TTL returns the time-to-live value.
func (c *Config[T]) TTL() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttl
}

// TTLUnit returns the time-to-live unit.
func (c *Config[T]) TTLUnit() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ttlUnit
}

// TTLDuration returns value times unit, the duration a pool compares
// element ages against.
func (c *Config[T]) TTLDuration() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return time.Duration(c.ttl) * c.ttlUnit
}

// SetAllocator replaces the allocation strategy. It cannot fail and returns
// the config for chaining.
func (c *Config[T]) SetAllocator(a Allocator[T]) *Config[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.allocator = a
	return c
}

// Allocator returns the configured allocation strategy, or nil.
func (c *Config[T]) Allocator() Allocator[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.allocator
}

// Relax switches this instance to PolicyRelaxed and returns it. See
// PolicyRelaxed for the caveats.
func (c *Config[T]) Relax() *Config[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.policy = PolicyRelaxed
	return c
}

// Validation reports the instance's current policy.
func (c *Config[T]) Validation() Policy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.policy
}

// CopyInto copies size, TTL value and unit, allocator and validation policy
// onto dst as one step under this instance's lock. Afterwards dst is an
// independent clone: mutating either config does not affect the other.
//
// The copy goes through dst's own setters, so a strict dst still
// re-validates. A relaxed source carries its policy over first, which lets
// out-of-range values survive the copy. Copying a config into itself is a
// no-op.
func (c *Config[T]) CopyInto(dst *Config[T]) error {
	if dst == nil {
		return fmt.Errorf("%w: destination config is nil", ErrInvalidArgument)
	}
	if dst == c {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.policy == PolicyRelaxed {
		dst.Relax()
	}
	dst.SetAllocator(c.allocator)
	if err := dst.SetSize(c.size); err != nil {
		return err
	}
	return dst.SetTTL(c.ttl, c.ttlUnit)
}
