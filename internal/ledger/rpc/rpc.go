// Package rpc implements the JSON-RPC 2.0 HTTP transport shared by the
// ledger clients, with rate limiting, metrics, and bounded retries.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"go.uber.org/ratelimit"

	"github.com/ikatensei/relayer-backend/internal/retry"
)

type (
	// Metrics records outcome and duration per RPC operation.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Error is a JSON-RPC error object returned by a ledger node. Clients map
// well-known codes onto the relay error taxonomy.
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Caller issues JSON-RPC calls against one ledger endpoint.
type Caller struct {
	httpClient *http.Client
	endpoint   string
	limiter    ratelimit.Limiter
	metrics    Metrics
	retryCfg   retry.Config
	nextID     atomic.Uint64
}

// Config for one ledger endpoint.
type Config struct {
	// Endpoint is the HTTP URL of the ledger's RPC node.
	Endpoint string
	// Timeout bounds a single HTTP round-trip.
	Timeout time.Duration
	// RPS caps outbound calls per second; zero leaves the caller
	// unthrottled.
	RPS int
	// MaxAttempts is the retry ceiling per logical call.
	MaxAttempts uint64
}

// NewCaller validates cfg and constructs a Caller.
func NewCaller(cfg Config, metrics Metrics) (*Caller, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse rpc endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("rpc endpoint scheme %q not supported", parsed.Scheme)
	}
	if parsed.Host == "" {
		return nil, errors.New("rpc endpoint missing host")
	}
	if metrics == nil {
		return nil, errors.New("rpc metrics is required")
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limiter = ratelimit.New(cfg.RPS)
	}

	return &Caller{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		limiter:    limiter,
		metrics:    metrics,
		retryCfg:   retry.Config{MaxAttempts: cfg.MaxAttempts},
	}, nil
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *Error          `json:"error,omitempty"`
}

// Call invokes method and decodes the result into out (which may be nil).
// Transport failures are retried with exponential backoff up to the
// configured ceiling; JSON-RPC errors from the node are permanent and
// surfaced as *Error.
func (c *Caller) Call(ctx context.Context, method string, params, out any) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe(method, err, started)
	}()

	err = retry.Do(ctx, c.retryCfg, func() error {
		c.limiter.Take()
		if callErr := c.callOnce(ctx, method, params, out); callErr != nil {
			var rpcErr *Error
			if errors.As(callErr, &rpcErr) {
				return retry.Permanent(callErr)
			}
			return callErr
		}
		return nil
	})
	return err
}

func (c *Caller) callOnce(ctx context.Context, method string, params, out any) error {
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("call %s: unexpected http status %d", method, resp.StatusCode)
	}

	var decoded response
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // 64-bit nonces must not pass through float64
	if err := dec.Decode(&decoded); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if decoded.Error != nil {
		return fmt.Errorf("call %s: %w", method, decoded.Error)
	}
	if out != nil {
		resultDec := json.NewDecoder(bytes.NewReader(decoded.Result))
		resultDec.UseNumber()
		if err := resultDec.Decode(out); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}
	return nil
}
