// Package async mirrors package solo over promises. Operators take a
// promised Result, run on their own goroutine and return a new promise; they
// suspend only while awaiting the input or the promise returned by a
// callback.
//
// A rejected input or callback promise rejects the output promise with the
// same error. A Result that was not built by a constructor rejects the output
// with *rop.UnsupportedKindError instead of becoming a Failure.
//
// Operators never cancel the callbacks they start; ctx only bounds how long
// they await.
package async
