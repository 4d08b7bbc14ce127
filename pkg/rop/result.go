package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind tags the variant of a Result. The zero Kind is not a legal tag.
type Kind uint8

const (
	kindUnset Kind = iota
	KindSuccess
	KindFailure
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Result is either a Success carrying a value of type V or a Failure carrying
// an error of type E. A Result is never mutated after construction.
type Result[V, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	kind      Kind
	value     V
	err       E
}

func Success[V, E any](value V) Result[V, E] {
	return Result[V, E]{
		kind:      KindSuccess,
		value:     value,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[V, E any](err E) Result[V, E] {
	return Result[V, E]{
		kind:      KindFailure,
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom re-types a Failure for a new value type. The outcome keeps its id,
// creation time and error.
func FailFrom[In, Out, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		kind:      from.kind,
		err:       from.err,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom re-types a Success for a new error type. The outcome keeps its
// id, creation time and value.
func SuccessFrom[V, In, Out any](from Result[V, In]) Result[V, Out] {
	return Result[V, Out]{
		kind:      from.kind,
		value:     from.value,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[V, E]) Kind() Kind {
	return r.kind
}

func (r Result[V, E]) IsSuccess() bool {
	return r.kind == KindSuccess
}

func (r Result[V, E]) IsFailure() bool {
	return r.kind == KindFailure
}

// Value returns the success value, or the zero V for a Failure.
func (r Result[V, E]) Value() V {
	return r.value
}

// Err returns the failure payload, or the zero E for a Success.
func (r Result[V, E]) Err() E {
	return r.err
}

// Get returns both payloads and whether r is a Success.
func (r Result[V, E]) Get() (V, E, bool) {
	return r.value, r.err, r.kind == KindSuccess
}

func (r Result[V, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[V, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[V, E]) String() string {
	switch r.kind {
	case KindSuccess:
		return fmt.Sprintf("success(%v)", r.value)
	case KindFailure:
		return fmt.Sprintf("failure(%v)", r.err)
	default:
		return r.kind.String()
	}
}

// MustKind panics with an UnsupportedKindError unless r was built by one of
// the constructors.
func MustKind[V, E any](r Result[V, E]) Kind {
	switch r.kind {
	case KindSuccess, KindFailure:
		return r.kind
	default:
		panic(&UnsupportedKindError{Kind: r.kind})
	}
}
