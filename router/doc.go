// Package router is the HTTP client for the chat-completion routing API.
// It sends streaming requests to the /chat/completions endpoint, decodes each
// SSE event through the chunk package, and hands callers a stream.ChatStream
// of typed chunks.
//
// The package also owns the request-side wire types, including the replay
// path for thought signatures: [AssistantMessage] converts an accumulated
// stream.Message back into a request [Message] with every resolved signature
// attached where the routing API expects it, so multi-turn tool calling with
// reasoning models keeps working.
package router
