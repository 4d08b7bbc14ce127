// Package lite provides curried stage constructors that lift the solo
// operators over channels, and helpers to run them with a fixed number of
// lines (workers). It is designed for simple fan-out/fan-in flows.
//
// Common usage:
// - Run/Turnout: execute a stage over an input channel with N lines
// - Validate/Map/MapFailure/Chain/Catch/Tee/Try: build stages
// - Fold: map each Result to a final value
//
// Worker count, logging and rate limiting are read from the context, see
// package core.
package lite
