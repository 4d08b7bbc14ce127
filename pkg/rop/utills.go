package rop

import (
	"context"
	"errors"

	"github.com/samber/lo"
)

// IsNil reports whether i is nil or a nil pointer, map, slice, channel, func
// or interface.
func IsNil(i interface{}) bool {
	return lo.IsNil(i)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
