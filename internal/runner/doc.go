// Package runner coordinates one conversation turn: boundary
// validation, budget-fitting via pruning, the completion call, and
// the commit or rollback of the history.
//
// Invariant:
//   - the history only ever grows by a committed (user, assistant)
//     pair per successful turn; a failed turn leaves it untouched.
//
// Flow:
//
//	prompt -> prepare (prune if over budget) -> complete -> commit
package runner
