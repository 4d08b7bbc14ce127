// Package solo contains single-value, synchronous operators over
// rop.Result[V, E]. These functions are the building blocks for error-aware
// pipelines without channels or promises, and never suspend.
//
// Highlights:
// - Succeed/Fail: construct a Result
// - FailIf/FailIfEmpty/FailIfNull: fail when a condition holds for the input
// - Map/MapFailure: transform one channel, pass the other through
// - Chain/Catch: continue with a Result-returning function on one channel
// - Fold: reduce to a concrete value via success and failure handlers
// - Invert: turn many Results into a Result of many values, first failure wins
// - TryCatch/Try: turn returned errors and panics into failures
// - Tee/TeeFailure: side-effect helpers
//
// Every operator panics with *rop.UnsupportedKindError when handed a Result
// that was not built by a constructor.
package solo
