// Package promise provides a Promise, a write-once asynchronous value built
// on the futures of github.com/abevier/tsk. Unlike a channel, a Promise can
// be awaited by many consumers, which all see the same outcome. It is the
// suspension point of the async Result operators.
package promise
