package pool

import "context"

// Allocator creates and destroys pooled elements. The pool consumes it; this
// package only carries the reference from configuration to pool
// construction.
type Allocator[T any] interface {
	// Allocate produces a fresh element for the pool to hand out.
	Allocate(ctx context.Context) (T, error)

	// Deallocate releases an element that expired or was evicted.
	Deallocate(ctx context.Context, elem T) error
}
