// Package chain provides a fluent wrapper around rop.Result[V, E]
// for building synchronous Railway-Oriented chains using solo primitives.
//
// Key operations:
// - Start/FromValue/FromError: begin a chain from a Result, a value or an error
// - Then: continue with a function returning Result[N, E]
// - ThenTry: call a function (N, error) and convert the error to a failure
// - Map/MapFailure: transform one channel of the chain
// - Catch: recover from a failure with a function returning a Result
// - Ensure/OnFailure: run side effects without changing the result
// - Finally: collapse the chain into a final value via handlers
//
// Steps that change a type parameter are package functions, since Go methods
// cannot introduce type parameters; the rest are methods.
package chain
