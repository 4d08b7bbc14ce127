// Package core contains pipeline plumbing utilities: channel helpers, options
// carried by the context (workers, logging, rate limiting) and the locomotive
// that drives stages. It does not define business logic; it provides the
// scaffolding for packages lite and mass to run pipelines of rop.Result
// values with controlled concurrency.
package core
