// Package rop defines Result[V, E], a value that is either a Success holding
// a V or a Failure holding an E, together with the errors raised when a
// Result is misused.
//
// Operators over Result live in sub-packages:
// - solo: synchronous operators
// - async: the same operators over promises (package promise)
// - chain: a fluent wrapper around solo
// - lite, mass, core: channel pipelines with worker pools
// - bridge: conversion to (T, error) tuples and samber/mo types
package rop
