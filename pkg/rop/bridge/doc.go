// Package bridge converts Results to and from the shapes other Go code
// already speaks: (value, error) pairs, the samber/mo monads and any type
// implementing rop.WithError.
package bridge
