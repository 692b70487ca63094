// Package async provides generic helpers for running computations
// concurrently and collecting their results deterministically.
//
// Async starts the supplied function in its own goroutine and returns a
// *Future for its eventual result; Await blocks until completion. WaitAll
// gathers several futures into a result slice ordered by argument position,
// which is what lets callers run independent work in parallel without
// letting completion order leak into their output.
package async
