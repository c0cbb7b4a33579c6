// Package utils provides the shared low-level helpers used throughout the
// chatwire internals: a streaming HTTP POST helper, a Server-Sent Events
// scanner, and small generic conveniences.
//
// Key entry points: [DoPostStream] together with [SSEScanner] for SSE
// streaming against the routing API, [CloseWithLog] for deferred body
// cleanup, and [Ptr] for converting values to pointers.
package utils
