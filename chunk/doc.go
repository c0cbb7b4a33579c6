// Package chunk decodes the streaming chat-completion chunks emitted by an
// OpenRouter-style multi-provider routing API and resolves the "thought
// signature" each node carries. A thought signature is an opaque,
// provider-issued token tied to a model's internal reasoning state; when tool
// calling is combined with extended reasoning, the signature must be echoed
// back verbatim on the next request or the provider loses reasoning
// continuity across the tool-call round trip.
//
// The wire schema has grown over time: the signature may live directly on a
// delta or tool call, inside the extra_content provider side-channel, or
// inside a reasoning detail (legacy signature field or encrypted data blob).
// [Decode] accepts every generation of the schema interchangeably, and
// [ResolveSignature] picks the single authoritative value by a fixed
// precedence so callers never have to know which location a given provider
// populated.
//
// Decoding and resolution are pure functions over one chunk at a time.
// Accumulating chunks into a complete message is the stream package's job.
package chunk
