package stream

import (
	"errors"
	"testing"

	"github.com/routellm/chatwire/chunk"
	"github.com/routellm/chatwire/internal/utils"
)

// chunksFrom builds a ChatStream that yields the given chunks then stops.
func chunksFrom(chunks ...chunk.Chunk) *ChatStream {
	return New(func(yield func(chunk.Chunk, error) bool) {
		for _, streamed := range chunks {
			if !yield(streamed, nil) {
				return
			}
		}
	})
}

// TestChatStream_Iter verifies range-based consumption and early break.
func TestChatStream_Iter(t *testing.T) {
	stream := chunksFrom(
		chunk.Chunk{Model: "m", Choices: []chunk.Choice{{Delta: &chunk.Delta{Content: utils.Ptr("a")}}}},
		chunk.Chunk{Choices: []chunk.Choice{{Delta: &chunk.Delta{Content: utils.Ptr("b")}}}},
		chunk.Chunk{Choices: []chunk.Choice{{Delta: &chunk.Delta{Content: utils.Ptr("c")}}}},
	)

	var seen []string
	for streamed, err := range stream.Iter() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		seen = append(seen, *streamed.Choices[0].Delta.Content)
		if len(seen) == 2 {
			break
		}
	}

	if len(seen) != 2 || seen[0] != "a" || seen[1] != "b" {
		t.Errorf("seen = %v", seen)
	}
}

// TestChatStream_Collect verifies full accumulation through the stream.
func TestChatStream_Collect(t *testing.T) {
	finish := "stop"
	stream := chunksFrom(
		chunk.Chunk{Model: "m", Choices: []chunk.Choice{{Delta: &chunk.Delta{Role: "assistant", Content: utils.Ptr("Hello")}}}},
		chunk.Chunk{Choices: []chunk.Choice{{Delta: &chunk.Delta{Content: utils.Ptr(" world")}, FinishReason: &finish}}},
		chunk.Chunk{Usage: &chunk.Usage{TotalTokens: 9}},
	)

	message, err := stream.Collect()
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if message.Content != "Hello world" || message.FinishReason != "stop" {
		t.Errorf("message = %+v", message)
	}
	if message.Usage == nil || message.Usage.TotalTokens != 9 {
		t.Errorf("usage = %+v", message.Usage)
	}
}

// TestChatStream_CollectMidStreamError verifies that partial accumulation is
// returned alongside the error.
func TestChatStream_CollectMidStreamError(t *testing.T) {
	streamErr := errors.New("connection reset")
	stream := New(func(yield func(chunk.Chunk, error) bool) {
		if !yield(chunk.Chunk{Choices: []chunk.Choice{{Delta: &chunk.Delta{Content: utils.Ptr("part")}}}}, nil) {
			return
		}
		yield(chunk.Chunk{}, streamErr)
	})

	message, err := stream.Collect()
	if !errors.Is(err, streamErr) {
		t.Fatalf("expected stream error, got %v", err)
	}
	if message.Content != "part" {
		t.Errorf("partial content = %q", message.Content)
	}
}
