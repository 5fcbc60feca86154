// Package linear is the Linear GraphQL API client: transport, issue
// operations and the resolver.Directory the identifier resolver fetches
// candidates from.
package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linear-cli/linear/internal/debug"
)

const (
	// DefaultAPIEndpoint is the Linear GraphQL API endpoint.
	DefaultAPIEndpoint = "https://api.linear.app/graphql"

	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// maxResponseSize caps how much of a response body is read.
	maxResponseSize = 10 << 20
)

// ErrNoData is returned when a response carries neither errors nor data.
var ErrNoData = errors.New("no data in response")

// Client provides methods to interact with the Linear GraphQL API.
type Client struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

// NewClient creates a new Linear client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:   apiKey,
		Endpoint: DefaultAPIEndpoint,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// WithEndpoint returns a copy of the client that talks to endpoint.
func (c *Client) WithEndpoint(endpoint string) *Client {
	cp := *c
	cp.Endpoint = endpoint
	return &cp
}

// WithHTTPClient returns a copy of the client using hc for requests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	cp := *c
	cp.HTTPClient = hc
	return &cp
}

// GraphQLRequest represents a GraphQL request payload.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLResponse represents a generic GraphQL response.
type GraphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []GraphQLError  `json:"errors,omitempty"`
}

// GraphQLError represents a GraphQL error.
type GraphQLError struct {
	Message    string        `json:"message"`
	Path       []interface{} `json:"path,omitempty"`
	Extensions struct {
		Code string `json:"code,omitempty"`
	} `json:"extensions,omitempty"`
}

// APIError is returned for non-2xx HTTP responses.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error: %s (status %d)", e.Body, e.StatusCode)
}

// GraphQLErrors is returned when the response carries a non-empty errors array.
type GraphQLErrors []GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ge := range e {
		msgs[i] = ge.Message
	}
	return "GraphQL errors: " + strings.Join(msgs, "; ")
}

// Execute sends req and decodes the response's data object into out.
// A nil out discards the data. Requests are never retried.
func (c *Client) Execute(ctx context.Context, req *GraphQLRequest, out interface{}) error {
	resp, err := c.execute(ctx, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to parse response data: %w", err)
	}
	return nil
}

func (c *Client) execute(ctx context.Context, req *GraphQLRequest) (*GraphQLResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", c.APIKey)

	op := operationName(req.Query)
	start := time.Now()
	debug.Logf("linear: POST %s op=%s key=%s\n", c.Endpoint, op, debug.Redact(c.APIKey))

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	debug.Logf("linear: op=%s status=%d bytes=%d in %s\n", op, resp.StatusCode, len(respBody), time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var gqlResp GraphQLResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w (body: %s)", err, string(respBody))
	}

	if len(gqlResp.Errors) > 0 {
		return nil, GraphQLErrors(gqlResp.Errors)
	}

	if len(gqlResp.Data) == 0 || bytes.Equal(gqlResp.Data, []byte("null")) {
		return nil, ErrNoData
	}

	return &gqlResp, nil
}

// operationName returns the name of the first operation in a query
// document, or "anonymous".
func operationName(query string) string {
	fields := strings.Fields(query)
	for i, f := range fields {
		if (f == "query" || f == "mutation") && i+1 < len(fields) {
			name := fields[i+1]
			if j := strings.IndexAny(name, "({"); j >= 0 {
				name = name[:j]
			}
			if name != "" {
				return name
			}
			break
		}
	}
	return "anonymous"
}
