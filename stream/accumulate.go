package stream

import (
	"strings"

	"github.com/routellm/chatwire/chunk"
)

// Message is the fully accumulated result of one streamed completion.
// ThoughtSignature carries the first signature resolved at delta level;
// per-tool-call signatures live on the individual ToolCalls. Both must be
// echoed back verbatim on the next request of the conversation to preserve
// reasoning continuity.
type Message struct {
	Model            string
	Provider         string
	Role             string
	Content          string
	Reasoning        string
	ReasoningDetails []chunk.ReasoningDetail
	ToolCalls        []ToolCall
	ThoughtSignature string
	FinishReason     string
	Usage            *chunk.Usage
}

// ToolCall is a fully merged tool call with its resolved thought signature.
type ToolCall struct {
	ID               string
	Type             string
	Name             string
	Arguments        string
	ThoughtSignature string
}

// Accumulator merges streamed chunks into a Message. It applies the
// first-write-wins rule for identity fields (role, model, provider, ids,
// names, signatures) and concatenates incremental ones (content, reasoning,
// tool-call arguments). Zero value is not usable; construct with
// [NewAccumulator].
type Accumulator struct {
	message   Message
	content   strings.Builder
	reasoning strings.Builder
	toolCalls []*toolCallBuilder
}

// toolCallBuilder accumulates fragments for one tool call, keyed by the wire
// index the router assigns.
type toolCallBuilder struct {
	id        string
	callType  string
	name      string
	arguments strings.Builder
	signature string
}

// NewAccumulator creates an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add folds one decoded chunk into the accumulated state. Chunks must be
// added in arrival order; the router guarantees fragment ordering per stream
// and this package relies on it rather than re-sorting.
func (accumulator *Accumulator) Add(streamed chunk.Chunk) {
	if accumulator.message.Model == "" {
		accumulator.message.Model = streamed.Model
	}
	if accumulator.message.Provider == "" {
		accumulator.message.Provider = streamed.Provider
	}
	if streamed.Usage != nil {
		accumulator.message.Usage = streamed.Usage
	}

	for _, choice := range streamed.Choices {
		if choice.FinishReason != nil && *choice.FinishReason != "" {
			accumulator.message.FinishReason = *choice.FinishReason
		}
		if choice.Delta == nil {
			continue
		}
		accumulator.addDelta(choice.Delta)
	}
}

func (accumulator *Accumulator) addDelta(delta *chunk.Delta) {
	if accumulator.message.Role == "" {
		accumulator.message.Role = delta.Role
	}
	if delta.Content != nil {
		accumulator.content.WriteString(*delta.Content)
	}
	if delta.Reasoning != nil {
		accumulator.reasoning.WriteString(*delta.Reasoning)
	}
	if len(delta.ReasoningDetails) > 0 {
		accumulator.message.ReasoningDetails = append(accumulator.message.ReasoningDetails, delta.ReasoningDetails...)
	}

	// First resolved delta-level signature wins: providers send it once and
	// later deltas must not overwrite it with nothing.
	if accumulator.message.ThoughtSignature == "" {
		accumulator.message.ThoughtSignature = chunk.ResolveSignature(delta)
	}

	for callIndex := range delta.ToolCalls {
		accumulator.addToolCall(&delta.ToolCalls[callIndex], callIndex)
	}
}

// maxToolCallIndex bounds the wire indices the accumulator will honor. The
// index is provider-controlled; without a cap a hostile or buggy upstream
// could send a negative index (out-of-range panic) or a huge one (unbounded
// builder allocation) inside an otherwise well-formed chunk.
const maxToolCallIndex = 127

// addToolCall merges one tool-call fragment. The wire index identifies which
// call the fragment belongs to; fragments without an index — or with one
// outside [0, maxToolCallIndex] — are matched by their position within the
// delta, which is what providers that omit the index actually mean.
func (accumulator *Accumulator) addToolCall(call *chunk.ToolCall, positionInDelta int) {
	index := positionInDelta
	if call.Index != nil && *call.Index >= 0 && *call.Index <= maxToolCallIndex {
		index = *call.Index
	}
	for len(accumulator.toolCalls) <= index {
		accumulator.toolCalls = append(accumulator.toolCalls, &toolCallBuilder{})
	}

	builder := accumulator.toolCalls[index]
	if builder.id == "" {
		builder.id = call.ID
	}
	if builder.callType == "" {
		builder.callType = call.Type
	}
	if call.Function != nil {
		if builder.name == "" {
			builder.name = call.Function.Name
		}
		builder.arguments.WriteString(call.Function.Arguments)
	}
	if builder.signature == "" {
		builder.signature = chunk.ResolveSignature(call)
	}
}

// Message returns the accumulated message so far. It may be called multiple
// times; each call snapshots the current state.
func (accumulator *Accumulator) Message() *Message {
	message := accumulator.message
	message.Content = accumulator.content.String()
	message.Reasoning = accumulator.reasoning.String()

	message.ToolCalls = nil
	for builderIndex := range accumulator.toolCalls {
		builder := accumulator.toolCalls[builderIndex]
		callType := builder.callType
		if callType == "" {
			callType = "function"
		}
		message.ToolCalls = append(message.ToolCalls, ToolCall{
			ID:               builder.id,
			Type:             callType,
			Name:             builder.name,
			Arguments:        builder.arguments.String(),
			ThoughtSignature: builder.signature,
		})
	}

	return &message
}
