package router

import (
	"log/slog"
	"net/http"
	"os"
)

const (
	defaultBaseURL          = "https://openrouter.ai/api/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Client talks to an OpenRouter-compatible routing API.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// New creates a client with default values. The API key is read from the
// OPENROUTER_API_KEY environment variable and the base URL from
// OPENROUTER_BASE_URL when set; both can be overridden with the With*
// setters.
func New() *Client {
	baseURL := os.Getenv("OPENROUTER_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		apiKey:  os.Getenv("OPENROUTER_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
		logger:  slog.Default(),
	}
}

// WithAPIKey sets the API key used for authenticating requests.
func (client *Client) WithAPIKey(apiKey string) *Client {
	client.apiKey = apiKey
	return client
}

// WithBaseURL overrides the default base URL for API requests.
func (client *Client) WithBaseURL(baseURL string) *Client {
	client.baseURL = baseURL
	return client
}

// WithHTTPClient sets a custom HTTP client.
func (client *Client) WithHTTPClient(httpClient *http.Client) *Client {
	client.client = httpClient
	return client
}

// WithLogger sets the structured logger used for request lifecycle events.
func (client *Client) WithLogger(logger *slog.Logger) *Client {
	client.logger = logger
	return client
}
