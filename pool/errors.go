package pool

import "errors"

// ErrInvalidArgument is returned by strict-policy setters when an input
// violates its constraint. The config keeps its previous value.
var ErrInvalidArgument = errors.New("pool: invalid argument")
