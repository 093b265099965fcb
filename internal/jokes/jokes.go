// Package jokes fetches a display joke from an external HTTP endpoint.
// The client is the single seam through which the dependency's latency and
// failure mode enter the system: one attempt, bounded by a timeout, no retry.
package jokes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultURL is the endpoint queried when the config does not name one.
const DefaultURL = "https://official-joke-api.appspot.com/random_joke"

// DefaultTimeout bounds a single fetch so a slow dependency cannot stall
// whole-collection reads.
const DefaultTimeout = 5 * time.Second

// ErrUnavailable indicates the joke service could not produce a joke:
// network failure, non-success status, or a malformed body.
var ErrUnavailable = errors.New("joke service unavailable")

// Service produces one joke per call. Resolvers depend on this interface so
// tests can substitute a stub.
type Service interface {
	Random(ctx context.Context) (string, error)
}

// Client is the HTTP implementation of Service.
type Client struct {
	url  string
	http *http.Client
}

// NewClient creates a Client for the given endpoint. Zero values fall back to
// DefaultURL and DefaultTimeout.
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Random performs one request and returns the joke's setup and punchline
// joined by " - ".
func (c *Client) Random(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var body struct {
		Setup     string `json:"setup"`
		Punchline string `json:"punchline"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("%w: decoding body: %v", ErrUnavailable, err)
	}
	if body.Setup == "" || body.Punchline == "" {
		return "", fmt.Errorf("%w: body missing setup or punchline", ErrUnavailable)
	}

	return body.Setup + " - " + body.Punchline, nil
}
