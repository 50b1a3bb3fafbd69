// Package api is the HTTP transport for the remote code-breaking service.
// It maps each endpoint to a typed call and every failure to a typed
// *Error, so callers never inspect raw statuses or bodies themselves.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// Client talks to the code-breaking service. It is stateless per call and
// holds only the base URL and a reusable HTTP connection pool; construct
// one per process and inject it where needed.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for transport diagnostics.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// NewClient creates a Client for the given base URL. Timeouts are left to
// the HTTP client's defaults unless one is supplied via WithHTTPClient.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Feedback is the server's scoring of one guess: Black digits are correct
// in value and position, White digits correct in value only. The server
// owns this computation; the client only renders it.
type Feedback struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Pegs renders feedback in peg notation: one "B" per black peg followed
// by one "W" per white peg, e.g. {1,2} -> "BWW".
func (f Feedback) Pegs() string {
	return strings.Repeat("B", f.Black) + strings.Repeat("W", f.White)
}

type createGameResponse struct {
	GameID string `json:"game_id"`
}

type submitGuessRequest struct {
	GameID string `json:"game_id"`
	Guess  string `json:"guess"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// CreateGame starts a new game on the server and returns its identifier.
func (c *Client) CreateGame(ctx context.Context) (string, error) {
	resp, err := call[createGameResponse](ctx, c, http.MethodPost, "/game", nil, http.StatusOK)
	if err != nil {
		return "", err
	}
	return resp.GameID, nil
}

// SubmitGuess submits one guess against an existing game and returns the
// server's feedback.
func (c *Client) SubmitGuess(ctx context.Context, gameID, guess string) (Feedback, error) {
	body := submitGuessRequest{GameID: gameID, Guess: guess}
	return call[Feedback](ctx, c, http.MethodPost, "/guess", body, http.StatusOK)
}

// DeleteGame removes a game from the server. The server responds with
// 204 and no body.
func (c *Client) DeleteGame(ctx context.Context, gameID string) error {
	return c.callStatus(ctx, http.MethodDelete, "/game/"+gameID, http.StatusNoContent)
}

// call executes a JSON request and decodes the response body into T.
// A status mismatch or decode failure yields a typed *Error.
func call[T any](ctx context.Context, c *Client, method, path string, body any, want int) (T, error) {
	var zero T

	status, raw, err := c.roundTrip(ctx, method, path, body, want)
	if err != nil {
		return zero, err
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Str("body", string(raw)).
			Msg("undecodable response body")
		return zero, &Error{Kind: KindDecode, Status: status, Body: raw, err: err}
	}

	return out, nil
}

// callStatus executes a request where only the status code matters.
func (c *Client) callStatus(ctx context.Context, method, path string, want int) error {
	_, _, err := c.roundTrip(ctx, method, path, nil, want)
	return err
}

// roundTrip builds and executes one request, returning the raw body on a
// status match. On mismatch it tries to surface the server's structured
// error payload before falling back to the bare status.
func (c *Client) roundTrip(ctx context.Context, method, path string, body any, want int) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &Error{Kind: KindTransport, err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, &Error{Kind: KindTransport, err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &Error{Kind: KindTransport, err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &Error{Kind: KindTransport, err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != want {
		var remote errorResponse
		if err := json.Unmarshal(raw, &remote); err == nil && remote.Error != "" {
			return resp.StatusCode, nil, &Error{
				Kind:    KindRemote,
				Status:  resp.StatusCode,
				Message: remote.Error,
			}
		}
		return resp.StatusCode, nil, &Error{
			Kind:   KindUnexpectedStatus,
			Status: resp.StatusCode,
			Body:   raw,
		}
	}

	return resp.StatusCode, raw, nil
}
