// Package mass lifts the solo operators into single-value channel stages
// that honour context cancellation, and folds a channel of Results into a
// channel of final values. The lite package builds curried stages on top of
// it.
package mass
