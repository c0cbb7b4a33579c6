package chunk

// SignatureCarrier is a decoded node that may carry a thought signature.
// [*Delta] and [*ToolCall] are the two implementations; the interface is
// sealed because the candidate locations are fixed by the wire schema, not
// extensible by callers.
type SignatureCarrier interface {
	directSignature() string
	extraContent() *ExtraContent
	reasoningDetails() []ReasoningDetail
}

func (delta *Delta) directSignature() string             { return delta.ThoughtSignature }
func (delta *Delta) extraContent() *ExtraContent         { return delta.ExtraContent }
func (delta *Delta) reasoningDetails() []ReasoningDetail { return delta.ReasoningDetails }

func (call *ToolCall) directSignature() string     { return call.ThoughtSignature }
func (call *ToolCall) extraContent() *ExtraContent { return call.ExtraContent }

// Tool calls never carry reasoning details on the wire.
func (call *ToolCall) reasoningDetails() []ReasoningDetail { return nil }

// ResolveSignature returns the single effective thought signature for a delta
// or tool-call node, or "" when no candidate location is populated.
//
// The signature may appear in up to three structurally different places on
// one node. Precedence is fixed, first match wins, most specific and most
// recently introduced location first:
//
//  1. the node's own thought_signature field
//  2. extra_content.google.thought_signature
//  3. (deltas only) the first reasoning detail that yields a signature:
//     its legacy signature field if set, else its data field when the
//     detail's type is "reasoning.encrypted"
//
// Applications persist the returned value and echo it back verbatim on the
// next request of the conversation; missing a populated location here is what
// breaks multi-turn tool calling with reasoning models, so the order above
// must not be reshuffled.
func ResolveSignature(node SignatureCarrier) string {
	if signature := node.directSignature(); signature != "" {
		return signature
	}

	if extra := node.extraContent(); extra != nil && extra.Google != nil && extra.Google.ThoughtSignature != "" {
		return extra.Google.ThoughtSignature
	}

	for _, detail := range node.reasoningDetails() {
		if signature := detail.signature(); signature != "" {
			return signature
		}
	}

	return ""
}

// signature returns the signature a single reasoning detail carries, or "".
// The legacy signature field wins over the encrypted data blob.
func (detail ReasoningDetail) signature() string {
	if detail.Signature != "" {
		return detail.Signature
	}
	if detail.Type == ReasoningDetailTypeEncrypted {
		return detail.Data
	}
	return ""
}
