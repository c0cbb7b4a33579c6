package router

import (
	"github.com/routellm/chatwire/chunk"
	"github.com/routellm/chatwire/stream"
)

/*
	CHAT COMPLETIONS API - REQUEST TYPES

	Request-side wire types for the routing API's /chat/completions endpoint.
	The shapes mirror the response types in the chunk package: the same
	thought_signature and extra_content fields exist here because a signature
	resolved from a response must be sent back in exactly these positions on
	the next turn.
*/

// ChatRequest represents the /chat/completions request body.
type ChatRequest struct {
	Model    string    `json:"model"`
	Models   []string  `json:"models,omitempty"` // Fallback models, tried in order by the router
	Messages []Message `json:"messages"`

	Tools      []Tool `json:"tools,omitempty"`
	ToolChoice any    `json:"tool_choice,omitempty"` // "auto", "none", "required", or object

	Temperature *float64 `json:"temperature,omitempty"`
	TopP        *float64 `json:"top_p,omitempty"`
	MaxTokens   *int     `json:"max_tokens,omitempty"`

	Reasoning *ReasoningConfig `json:"reasoning,omitempty"`

	Stream        *bool          `json:"stream,omitempty"`
	StreamOptions *StreamOptions `json:"stream_options,omitempty"`
}

// ReasoningConfig asks the router to enable extended reasoning on models that
// support it. Effort values are provider-defined ("low", "medium", "high").
type ReasoningConfig struct {
	Effort    string `json:"effort,omitempty"`
	MaxTokens int    `json:"max_tokens,omitempty"`
	Enabled   *bool  `json:"enabled,omitempty"`
}

// StreamOptions configures streaming behavior in the request.
type StreamOptions struct {
	IncludeUsage bool `json:"include_usage"`
}

// Message is one conversation turn on the request side.
//
// For assistant turns that replay a previous streamed response, ToolCalls,
// ReasoningDetails and ThoughtSignature must carry the values decoded from
// that response unmodified; use [AssistantMessage] to build such a turn.
type Message struct {
	Role    string `json:"role"` // system, user, assistant, tool
	Content string `json:"content,omitempty"`
	Name    string `json:"name,omitempty"`

	ToolCallID string     `json:"tool_call_id,omitempty"` // For role=tool, links back to the call being answered
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // For role=assistant requesting tools

	Reasoning        string                  `json:"reasoning,omitempty"`
	ReasoningDetails []chunk.ReasoningDetail `json:"reasoning_details,omitempty"`
	ThoughtSignature string                  `json:"thought_signature,omitempty"`
}

// ToolCall is a request-side tool call on a replayed assistant message.
type ToolCall struct {
	ID           string              `json:"id,omitempty"`
	Type         string              `json:"type,omitempty"` // "function"
	Function     Function            `json:"function"`
	ExtraContent *chunk.ExtraContent `json:"extra_content,omitempty"`
}

// Function is the request-side name/arguments pair. ThoughtSignature exists
// here because some providers read the echoed signature from the function
// object rather than from extra_content.
type Function struct {
	Name             string `json:"name,omitempty"`
	Arguments        string `json:"arguments,omitempty"`
	ThoughtSignature string `json:"thought_signature,omitempty"`
}

// Tool declares a callable function in the request.
type Tool struct {
	Type     string   `json:"type"` // "function"
	Function ToolSpec `json:"function"`
}

// ToolSpec describes one function the model may call. Parameters is a JSON
// Schema object; any serializable value is accepted.
type ToolSpec struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Parameters  any    `json:"parameters,omitempty"`
}

// AssistantMessage converts an accumulated streamed response into the
// assistant request turn that replays it. Every resolved thought signature is
// attached in the positions the routing API reads it from: per tool call in
// both extra_content.google and the function object, and at message level for
// signatures that arrived on the delta itself. Reasoning details are carried
// over verbatim so encrypted reasoning blobs survive the round trip.
func AssistantMessage(accumulated *stream.Message) Message {
	message := Message{
		Role:             "assistant",
		Content:          accumulated.Content,
		Reasoning:        accumulated.Reasoning,
		ReasoningDetails: accumulated.ReasoningDetails,
		ThoughtSignature: accumulated.ThoughtSignature,
	}

	for _, call := range accumulated.ToolCalls {
		replayed := ToolCall{
			ID:   call.ID,
			Type: call.Type,
			Function: Function{
				Name:             call.Name,
				Arguments:        call.Arguments,
				ThoughtSignature: call.ThoughtSignature,
			},
		}
		if call.ThoughtSignature != "" {
			replayed.ExtraContent = &chunk.ExtraContent{
				Google: &chunk.GoogleExtraContent{ThoughtSignature: call.ThoughtSignature},
			}
		}
		message.ToolCalls = append(message.ToolCalls, replayed)
	}

	return message
}

// ToolResultMessage builds the tool turn that answers a previous tool call.
func ToolResultMessage(toolCallID, toolName, result string) Message {
	return Message{
		Role:       "tool",
		ToolCallID: toolCallID,
		Name:       toolName,
		Content:    result,
	}
}
