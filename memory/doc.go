// Package memory holds the in-memory conversation log.
//
// Model:
//   - A History is seeded with one system message and grows by
//     appending user and assistant turns.
//   - The system message is pinned at index 0 and survives every
//     mutation, including pruning rewrites and Reset.
//   - Nothing is persisted; a History lives and dies with the process.
package memory
