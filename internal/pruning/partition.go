package pruning

import "convo/memory"

// partition splits a full history sequence into the pinned system
// message, the prunable middle, and the preserved tail of at most k
// most recent messages.
// Invariants:
// - msgs[0] is the system message and is never part of middle or tail.
// - k is clamped to [1, len(msgs)-1] so the newest message (the
//   tentative user turn) always survives in the tail.
// - middle and tail are subslices of msgs; callers must not mutate.
func partition(msgs []memory.Message, k int) (sys memory.Message, middle, tail []memory.Message) {
	sys = msgs[0]
	rest := msgs[1:]
	if k < 1 {
		k = 1
	}
	if k > len(rest) {
		k = len(rest)
	}
	cut := len(rest) - k
	return sys, rest[:cut], rest[cut:]
}
