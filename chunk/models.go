package chunk

/*
	STREAMING CHUNK WIRE TYPES

	These types model one SSE chunk from an OpenRouter-style
	/v1/chat/completions endpoint with stream=true. The routing API has added
	fields at several nesting levels over time (thought_signature,
	extra_content, reasoning_details); every addition is optional, so old-shape
	and new-shape payloads decode into the same record with the newer fields
	simply unset. No version tag exists on the wire.
*/

// Chunk is one streaming event of a chat completion response.
//
// A chunk with an empty Choices slice is valid: the final event of a stream
// typically carries only Usage. ThoughtSignature at this level is decoded
// as-is and does not participate in [ResolveSignature]; read it directly if
// a provider ever populates it.
type Chunk struct {
	ID                string   `json:"id,omitempty"`
	Object            string   `json:"object,omitempty"` // "chat.completion.chunk"
	Created           int64    `json:"created,omitempty"`
	Model             string   `json:"model,omitempty"`
	Provider          string   `json:"provider,omitempty"` // Upstream provider the router selected
	SystemFingerprint string   `json:"system_fingerprint,omitempty"`
	Choices           []Choice `json:"choices,omitempty"`
	Usage             *Usage   `json:"usage,omitempty"` // Present only in the final chunk when stream_options.include_usage is true
	ThoughtSignature  string   `json:"thought_signature,omitempty"`
}

// Choice is one candidate completion within a chunk.
//
// FinishReason values ("stop", "length", "tool_calls", ...) are
// provider-defined strings, not a closed enum; treat them as opaque.
// ThoughtSignature here is exposed but, like the chunk-level field, is not
// part of the resolution precedence.
type Choice struct {
	Index            int     `json:"index,omitempty"`
	Delta            *Delta  `json:"delta,omitempty"`         // Required on the wire; enforced by Decode
	FinishReason     *string `json:"finish_reason,omitempty"` // Nullable; nil until the final chunk for this choice
	ThoughtSignature string  `json:"thought_signature,omitempty"`
}

// Delta carries the incremental content for one choice. All fields except
// Role are optional; Role itself decodes to "" on the many delta events that
// omit it. Reasoning text, when present, precedes output content in the
// overall stream — a sequencing fact consumers rely on but this package does
// not enforce.
type Delta struct {
	Role             string            `json:"role,omitempty"`
	Content          *string           `json:"content,omitempty"`   // Nullable to distinguish empty string from absent
	Reasoning        *string           `json:"reasoning,omitempty"` // Reasoning/thinking delta
	ToolCalls        []ToolCall        `json:"tool_calls,omitempty"`
	ThoughtSignature string            `json:"thought_signature,omitempty"`
	ExtraContent     *ExtraContent     `json:"extra_content,omitempty"`
	ReasoningDetails []ReasoningDetail `json:"reasoning_details,omitempty"`
}

// ToolCall is a partial or complete function-call fragment. The first chunk
// for a tool call carries the ID and function name; later chunks carry
// argument fragments keyed by Index. Index is what the accumulator uses to
// merge fragments across chunks; this package treats it as opaque.
type ToolCall struct {
	Index            *int          `json:"index,omitempty"`
	ID               string        `json:"id,omitempty"` // Present only in the first fragment for this tool call
	Type             string        `json:"type,omitempty"`
	Function         *Function     `json:"function,omitempty"`
	ThoughtSignature string        `json:"thought_signature,omitempty"`
	ExtraContent     *ExtraContent `json:"extra_content,omitempty"`
}

// Function is the name/arguments pair of a tool call. Arguments stream
// incrementally as fragments of JSON text, so a single fragment is usually
// not parseable on its own.
type Function struct {
	Name      string `json:"name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
}

// ExtraContent is the provider-namespaced side-channel the router attaches
// to deltas and tool calls. The shape is identical in both positions.
type ExtraContent struct {
	Google *GoogleExtraContent `json:"google,omitempty"`
}

// GoogleExtraContent carries Google-specific payload, currently only the
// thought signature Gemini models require echoed back on the next turn.
type GoogleExtraContent struct {
	ThoughtSignature string `json:"thought_signature,omitempty"`
}

// ReasoningDetailTypeEncrypted marks a reasoning detail whose payload is
// opaque ciphertext rather than plaintext thinking text. For details of this
// type the Data field doubles as the signature carrier.
const ReasoningDetailTypeEncrypted = "reasoning.encrypted"

// ReasoningDetail is a structured reasoning-trace fragment. Signature is the
// legacy carrier; newer payloads use Type == [ReasoningDetailTypeEncrypted]
// with the signature in Data instead.
type ReasoningDetail struct {
	Type      string `json:"type,omitempty"`
	Text      string `json:"text,omitempty"`
	Signature string `json:"signature,omitempty"`
	Data      string `json:"data,omitempty"`
	ID        string `json:"id,omitempty"`
	Format    string `json:"format,omitempty"`
	Index     *int   `json:"index,omitempty"`
}

// Usage reports token counts for the whole stream. The router sends it on
// the final chunk, usually with an empty Choices slice.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`

	PromptTokensDetails     *PromptTokensDetails     `json:"prompt_tokens_details,omitempty"`
	CompletionTokensDetails *CompletionTokensDetails `json:"completion_tokens_details,omitempty"`
}

// PromptTokensDetails breaks down prompt token usage.
type PromptTokensDetails struct {
	CachedTokens int `json:"cached_tokens,omitempty"`
}

// CompletionTokensDetails breaks down completion token usage.
type CompletionTokensDetails struct {
	ReasoningTokens int `json:"reasoning_tokens,omitempty"`
}
