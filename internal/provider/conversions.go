package provider

import (
	"github.com/openai/openai-go/v3"

	"convo/memory"
)

// toOpenAIMessages converts conversation messages to the SDK's
// request union type.
func toOpenAIMessages(msgs []memory.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, len(msgs))
	for i, msg := range msgs {
		switch msg.Role {
		case memory.RoleSystem:
			result[i] = openai.SystemMessage(msg.Content)
		case memory.RoleAssistant:
			result[i] = openai.AssistantMessage(msg.Content)
		default:
			result[i] = openai.UserMessage(msg.Content)
		}
	}
	return result
}
