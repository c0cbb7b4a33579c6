package stream

import (
	"testing"

	"github.com/routellm/chatwire/chunk"
)

// decodeAll is a test helper that decodes raw payloads in order and feeds
// them through an accumulator.
func decodeAll(t *testing.T, payloads ...string) *Message {
	t.Helper()

	accumulator := NewAccumulator()
	for _, payload := range payloads {
		decoded, err := chunk.Decode([]byte(payload))
		if err != nil {
			t.Fatalf("Decode failed for %s: %v", payload, err)
		}
		accumulator.Add(*decoded)
	}
	return accumulator.Message()
}

// TestAccumulator_ContentAndReasoning verifies ordered concatenation of text
// deltas and capture of the stream-level metadata.
func TestAccumulator_ContentAndReasoning(t *testing.T) {
	message := decodeAll(t,
		`{"model":"google/gemini-2.5-pro","provider":"google-vertex","choices":[{"delta":{"role":"assistant","reasoning":"Let me "}}]}`,
		`{"choices":[{"delta":{"reasoning":"think."}}]}`,
		`{"choices":[{"delta":{"content":"The answer"}}]}`,
		`{"choices":[{"delta":{"content":" is 4."},"finish_reason":"stop"}]}`,
		`{"choices":[],"usage":{"prompt_tokens":5,"completion_tokens":7,"total_tokens":12}}`,
	)

	if message.Content != "The answer is 4." {
		t.Errorf("content = %q", message.Content)
	}
	if message.Reasoning != "Let me think." {
		t.Errorf("reasoning = %q", message.Reasoning)
	}
	if message.Role != "assistant" || message.Model != "google/gemini-2.5-pro" || message.Provider != "google-vertex" {
		t.Errorf("metadata not captured: %+v", message)
	}
	if message.FinishReason != "stop" {
		t.Errorf("finish reason = %q", message.FinishReason)
	}
	if message.Usage == nil || message.Usage.TotalTokens != 12 {
		t.Errorf("usage = %+v", message.Usage)
	}
}

// TestAccumulator_ToolCallMerge verifies fragment merging by wire index and
// signature pinning from extra_content.
func TestAccumulator_ToolCallMerge(t *testing.T) {
	message := decodeAll(t,
		`{"choices":[{"delta":{"role":"assistant","tool_calls":[{"index":0,"id":"call_a","type":"function","function":{"name":"get_weather","arguments":""},"extra_content":{"google":{"thought_signature":"sig-a"}}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"{\"city\":"}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":1,"id":"call_b","function":{"name":"get_time","arguments":"{}"}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":0,"function":{"arguments":"\"Oslo\"}"}}]},"finish_reason":"tool_calls"}]}`,
	)

	if len(message.ToolCalls) != 2 {
		t.Fatalf("expected 2 tool calls, got %d", len(message.ToolCalls))
	}

	first := message.ToolCalls[0]
	if first.ID != "call_a" || first.Name != "get_weather" {
		t.Errorf("first call identity wrong: %+v", first)
	}
	if first.Arguments != `{"city":"Oslo"}` {
		t.Errorf("first call arguments = %q", first.Arguments)
	}
	if first.ThoughtSignature != "sig-a" {
		t.Errorf("first call signature = %q", first.ThoughtSignature)
	}

	second := message.ToolCalls[1]
	if second.ID != "call_b" || second.Name != "get_time" || second.ThoughtSignature != "" {
		t.Errorf("second call wrong: %+v", second)
	}
	if second.Type != "function" {
		t.Errorf("second call type should default to function, got %q", second.Type)
	}
}

// TestAccumulator_DeltaSignatureFirstWins verifies that the first resolved
// delta-level signature is kept even when later deltas carry none, and that
// reasoning details accumulate across chunks.
func TestAccumulator_DeltaSignatureFirstWins(t *testing.T) {
	message := decodeAll(t,
		`{"choices":[{"delta":{"role":"assistant","reasoning_details":[{"type":"reasoning.encrypted","data":"cipher-1","index":0}]}}]}`,
		`{"choices":[{"delta":{"content":"hi"}}]}`,
		`{"choices":[{"delta":{"thought_signature":"late-direct"}}]}`,
	)

	if message.ThoughtSignature != "cipher-1" {
		t.Errorf("signature = %q, want cipher-1 (first resolved wins)", message.ThoughtSignature)
	}
	if len(message.ReasoningDetails) != 1 {
		t.Errorf("expected 1 reasoning detail, got %d", len(message.ReasoningDetails))
	}
}

// TestAccumulator_IndexlessFragments verifies positional matching for
// providers that omit the tool-call index.
func TestAccumulator_IndexlessFragments(t *testing.T) {
	message := decodeAll(t,
		`{"choices":[{"delta":{"role":"assistant","tool_calls":[{"id":"call_x","function":{"name":"f","arguments":"{\"a\""}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"function":{"arguments":":1}"}}]}}]}`,
	)

	if len(message.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(message.ToolCalls))
	}
	if message.ToolCalls[0].Arguments != `{"a":1}` {
		t.Errorf("arguments = %q", message.ToolCalls[0].Arguments)
	}
}

// TestAccumulator_OutOfRangeIndexFallsBackToPosition verifies that negative
// or absurdly large wire indices in decodable chunks are treated as indexless
// rather than panicking the collector or ballooning the builder list.
func TestAccumulator_OutOfRangeIndexFallsBackToPosition(t *testing.T) {
	message := decodeAll(t,
		`{"choices":[{"delta":{"role":"assistant","tool_calls":[{"index":-1,"id":"call_neg","function":{"name":"f","arguments":"{\"a\""}},{"index":2000000000,"id":"call_big","function":{"name":"g","arguments":"{}"}}]}}]}`,
		`{"choices":[{"delta":{"tool_calls":[{"index":-1,"function":{"arguments":":1}"}}]}}]}`,
	)

	if len(message.ToolCalls) != 2 {
		t.Fatalf("expected 2 tool calls, got %d", len(message.ToolCalls))
	}

	negative := message.ToolCalls[0]
	if negative.ID != "call_neg" || negative.Arguments != `{"a":1}` {
		t.Errorf("negative-index call not merged positionally: %+v", negative)
	}

	huge := message.ToolCalls[1]
	if huge.ID != "call_big" || huge.Arguments != "{}" {
		t.Errorf("huge-index call not merged positionally: %+v", huge)
	}
}

// TestAccumulator_SnapshotSemantics verifies that Message can be read
// mid-stream without disturbing further accumulation.
func TestAccumulator_SnapshotSemantics(t *testing.T) {
	accumulator := NewAccumulator()

	decoded, err := chunk.Decode([]byte(`{"choices":[{"delta":{"role":"assistant","content":"par"}}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	accumulator.Add(*decoded)

	snapshot := accumulator.Message()
	if snapshot.Content != "par" {
		t.Errorf("snapshot content = %q", snapshot.Content)
	}

	decoded, err = chunk.Decode([]byte(`{"choices":[{"delta":{"content":"tial"}}]}`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	accumulator.Add(*decoded)

	if final := accumulator.Message(); final.Content != "partial" {
		t.Errorf("final content = %q", final.Content)
	}
	if snapshot.Content != "par" {
		t.Errorf("snapshot mutated to %q", snapshot.Content)
	}
}
