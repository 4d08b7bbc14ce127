package rop

import "time"

type ValueProvider[V any] interface {
	// Value returns the successful value
	Value() V
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that carry either a value or an error payload
type WithError[V, E any] interface {
	ValueProvider[V]
	// Err returns the error payload if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var _ WithError[int, error] = Result[int, error]{}
