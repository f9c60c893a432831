// Package poolcore provides the two primitives a resource-pooling system
// builds on: a shared low-overhead clock service for TTL expiry checks and
// a validated, clonable pool configuration holder.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────┐
//	│  pool (external)   checkout/checkin, expiry, lifecycle  │
//	├────────────────────────────┬────────────────────────────┤
//	│  pool/   Config, Allocator │  clock/   Service, Source  │
//	└────────────────────────────┴────────────────────────────┘
//
// The clock/ package caches "current time" in milliseconds behind a single
// atomic read and refreshes it from a background ticker, so a pool can
// check TTLs on every operation without paying an OS clock query each time.
// Precise mode, fixed at construction, trades that back for exact readings.
//
// The pool/ package holds the construction parameters a pool reads once:
// capacity, TTL value and unit, and the allocation strategy, with strict
// validation by default and a deliberate relaxed escape hatch for tests.
//
// # Quick Start
//
//	svc := clock.New(clock.OptionsFromEnv())
//	svc.Start()
//
//	cfg := pool.New[*Conn]()
//	if err := cfg.SetSize(25); err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.SetTTL(30, time.Second); err != nil {
//	    log.Fatal(err)
//	}
//	cfg.SetAllocator(connAllocator{})
//
//	// Hand svc and cfg to the pool; it polls svc.Millis() on each
//	// checkout and checkin to evaluate expiry.
package poolcore
