// Package client is the typed HTTP repository the presentation layer talks
// to. It mirrors the server's route table one method per operation, carries
// the shared model types across the wire, and classifies every failure into
// the apperr taxonomy.
//
// Mutating creates are never retried; list, update and delete calls retry
// transient transport failures with exponential backoff. When a link-state
// source is wired in, operations fail fast with a link-down error instead
// of touching the network while the backend is known to be unreachable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"year-planner/apperr"
)

// LinkStater reports whether the backend link is currently usable. The
// connection monitor satisfies it.
type LinkStater interface {
	Connected() bool
}

// Config carries the explicit settings for one client instance. Zero fields
// fall back to defaults.
type Config struct {
	BaseURL string
	Token   string

	// Timeout bounds each attempt, not the whole retried call.
	Timeout time.Duration
	// RetryMax is the number of extra attempts for idempotent operations.
	RetryMax int
	// RetryBaseDelay is the delay before the first retry.
	RetryBaseDelay time.Duration
	// RetryFactor multiplies the delay per attempt.
	RetryFactor float64
	// RetryJitter is the max random skew as a fraction of the delay.
	RetryJitter float64

	// Links, when set, makes every operation fail fast while disconnected.
	Links  LinkStater
	Logger *zerolog.Logger
}

func (cfg *Config) setDefaults() {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.RetryMax <= 0 {
		cfg.RetryMax = 3
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	if cfg.RetryFactor <= 0 {
		cfg.RetryFactor = 2.0
	}
	if cfg.RetryJitter <= 0 {
		cfg.RetryJitter = 0.2
	}
}

// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	retryMax   int
	baseDelay  time.Duration
	factor     float64
	jitter     float64
	links      LinkStater
	log        zerolog.Logger
}

func New(cfg Config) *Client {
	cfg.setDefaults()
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryMax:   cfg.RetryMax,
		baseDelay:  cfg.RetryBaseDelay,
		factor:     cfg.RetryFactor,
		jitter:     cfg.RetryJitter,
		links:      cfg.Links,
		log:        log,
	}
}

// Health probes the backend. It bypasses the link-state gate on purpose:
// the connection monitor uses it to find out whether the link is back.
func (c *Client) Health(ctx context.Context) error {
	return c.attempt(ctx, http.MethodGet, "/health", nil, nil)
}

// do runs one operation, retrying transport failures when idempotent.
func (c *Client) do(ctx context.Context, method, path string, body, out any, idempotent bool) error {
	if c.links != nil && !c.links.Connected() {
		return apperr.LinkDown()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return apperr.Internal(fmt.Errorf("marshal request: %w", err))
		}
	}

	attempts := 1
	if idempotent {
		attempts += c.retryMax
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			delay := c.nextDelay(attempt - 1)
			c.log.Debug().Str("method", method).Str("path", path).
				Dur("delay", delay).Int("attempt", attempt).Msg("retrying")
			select {
			case <-ctx.Done():
				return classifyTransport(ctx.Err())
			case <-time.After(delay):
			}
		}
		lastErr = c.attempt(ctx, method, path, payload, out)
		if lastErr == nil {
			return nil
		}
		if !apperr.IsTransport(lastErr) {
			break
		}
	}
	return lastErr
}

// attempt performs a single round trip.
func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, out any) error {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return apperr.Internal(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return classifyTransport(err)
	}
	return decodeResponse(resp, out)
}

// nextDelay is exponential backoff with symmetric jitter: attempt 0 waits
// around the base delay, each further attempt doubles it (by default).
func (c *Client) nextDelay(attempt int) time.Duration {
	delay := float64(c.baseDelay) * math.Pow(c.factor, float64(attempt))
	delay += delay * c.jitter * (2*rand.Float64() - 1)
	if delay < 0 {
		delay = float64(c.baseDelay)
	}
	return time.Duration(delay)
}

// classifyTransport splits request errors into the two transport kinds:
// deadline-style failures and everything that means "could not reach the
// backend" (refused, DNS, broken TLS handshakes alike).
func classifyTransport(err error) error {
	var nerr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return apperr.Timeout(err)
	case errors.As(err, &nerr) && nerr.Timeout():
		return apperr.Timeout(err)
	default:
		return apperr.ConnectionRefused(err)
	}
}

// decodeResponse maps error statuses back onto the taxonomy using the
// machine-readable kind in the body, and decodes success payloads.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var wire struct {
			Kind  apperr.Kind `json:"kind"`
			Error string      `json:"error"`
		}
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if err := json.Unmarshal(data, &wire); err != nil || wire.Kind == "" {
			// Not one of ours (proxy page, panic). Fall back to the status.
			wire.Kind = kindFromStatus(resp.StatusCode)
			wire.Error = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return apperr.FromWire(wire.Kind, wire.Error)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperr.Internal(fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}

func kindFromStatus(status int) apperr.Kind {
	switch status {
	case http.StatusBadRequest:
		return apperr.KindValidation
	case http.StatusUnauthorized:
		return apperr.KindUnauthorized
	case http.StatusNotFound:
		return apperr.KindNotFound
	case http.StatusConflict:
		return apperr.KindConflict
	default:
		return apperr.KindInternal
	}
}

// Generic per-shape helpers the typed methods delegate to. Lists and
// mutations of existing rows are idempotent; creates are not.

func doList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return out, nil
}

func doCreate[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodPost, path, body, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

func doUpdate[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T
	if err := c.do(ctx, http.MethodPatch, path, body, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

func doDelete(ctx context.Context, c *Client, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, true)
}
