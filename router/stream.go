package router

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/routellm/chatwire/chunk"
	"github.com/routellm/chatwire/internal/utils"
	"github.com/routellm/chatwire/stream"
)

// StreamChatCompletion sends a streaming chat request and returns a
// ChatStream that yields one decoded chunk per SSE event as it arrives.
//
// The request is forced to stream=true with usage reporting enabled.
// Pre-stream errors (auth, bad request, network) are returned directly;
// mid-stream errors — including malformed chunk payloads — are yielded
// through the iterator. The caller must consume the returned stream so the
// underlying response body gets closed.
func (client *Client) StreamChatCompletion(ctx context.Context, request ChatRequest) (*stream.ChatStream, error) {
	if client.apiKey == "" {
		return nil, errors.New("API key is not set")
	}

	streamEnabled := true
	request.Stream = &streamEnabled
	request.StreamOptions = &StreamOptions{IncludeUsage: true}

	client.logger.Debug("sending streaming chat request",
		"model", request.Model,
		"messages", len(request.Messages),
		"tools", len(request.Tools),
	)

	streamURL := client.baseURL + chatCompletionsEndpoint
	httpResponse, err := utils.DoPostStream(ctx, client.client, streamURL, client.apiKey, request)
	if err != nil {
		client.logger.Debug("streaming request failed", "error", err)
		return nil, err
	}

	sseScanner := utils.NewSSEScanner(httpResponse.Body)

	iteratorFunc := func(yield func(chunk.Chunk, error) bool) {
		// Ensure the response body is closed when the iterator is done
		defer utils.CloseWithLog(httpResponse.Body)

		for {
			if ctx.Err() != nil {
				yield(chunk.Chunk{}, ctx.Err())
				return
			}

			payload, sseErr := sseScanner.Next()
			if sseErr == io.EOF {
				// Stream finished normally
				return
			}
			if sseErr != nil {
				yield(chunk.Chunk{}, fmt.Errorf("SSE read error: %w", sseErr))
				return
			}

			decoded, decodeErr := chunk.Decode([]byte(payload))
			if decodeErr != nil {
				yield(chunk.Chunk{}, fmt.Errorf("failed to decode streaming chunk: %w", decodeErr))
				return
			}

			if !yield(*decoded, nil) {
				return // Caller stopped iterating
			}
		}
	}

	return stream.New(iteratorFunc), nil
}
