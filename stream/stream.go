// Package stream turns a sequence of decoded chat-completion chunks into
// something a caller can consume: either chunk-by-chunk through [ChatStream.Iter]
// for real-time rendering, or fully accumulated into one [Message] through
// [ChatStream.Collect]. Accumulation is where tool-call fragments are merged
// and resolved thought signatures are pinned so they can be echoed back on
// the next turn.
package stream

import (
	"iter"

	"github.com/routellm/chatwire/chunk"
)

// ChatStream wraps a streaming iterator of decoded chunks.
//
// Callers must consume the stream, either by ranging over Iter() (breaking
// early is fine) or by calling Collect(). The producing transport may hold
// open resources (such as an HTTP response body) that are only released when
// the iterator completes or is abandoned via a loop break; constructing a
// ChatStream and never iterating it leaks those resources.
type ChatStream struct {
	iterator iter.Seq2[chunk.Chunk, error]
}

// New creates a ChatStream from a raw chunk iterator. The iterator yields
// decoded chunks with a nil error, and may yield a non-nil error to signal a
// mid-stream failure; iteration stops after the first error.
func New(iterator iter.Seq2[chunk.Chunk, error]) *ChatStream {
	return &ChatStream{iterator: iterator}
}

// Iter returns the underlying iterator for range-based consumption.
func (stream *ChatStream) Iter() iter.Seq2[chunk.Chunk, error] {
	return stream.iterator
}

// Collect drains the stream and accumulates every chunk into a single
// Message. On a mid-stream error it returns the message accumulated so far
// together with the error, so partial content is not lost.
func (stream *ChatStream) Collect() (*Message, error) {
	accumulator := NewAccumulator()

	for streamed, err := range stream.iterator {
		if err != nil {
			return accumulator.Message(), err
		}
		accumulator.Add(streamed)
	}

	return accumulator.Message(), nil
}
