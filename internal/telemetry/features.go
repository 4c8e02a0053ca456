package telemetry

import (
	"context"

	"convo/internal/metrics"
)

// EmitPromptFeatures records local text features of a user prompt so
// heuristic token estimates can be checked against real usage later.
func EmitPromptFeatures(ctx context.Context, prompt string) {
	if !ObserveEnabled() {
		return
	}
	turnID, _ := TurnIDFromContext(ctx)
	f := metrics.CountFeatures(prompt)
	Emit("prompt_features", map[string]any{
		"turn_id": turnID,
		"prompt": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
