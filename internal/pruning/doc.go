// Package pruning keeps one conversation inside a fixed token budget.
//
// Invariant:
//   - the system message at index 0 of the history survives every
//     rewrite; pruning only ever touches the middle of the log.
//
// Flow per turn:
//
//	append(user) -> estimate -> (fits: done)
//	             -> summarize middle -> rewrite -> estimate
//	             -> shrink tail and retry, bounded
//	             -> clamp summary body (lossy last resort)
package pruning
