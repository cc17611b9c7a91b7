// Package guardian fetches signed attestation envelopes from the guardian
// network's public API. An envelope appears some time after the source event
// it attests, so a miss is polled rather than failed.
package guardian

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
	"github.com/ikatensei/relayer-backend/internal/protocol"
	"github.com/ikatensei/relayer-backend/internal/retry"
)

// Metrics records outcome and duration per fetch.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Config for the guardian API client.
type Config struct {
	// Endpoint is the base URL of the guardian API.
	Endpoint string
	// Timeout bounds a single HTTP round-trip.
	Timeout time.Duration
	// MaxAttempts bounds the not-yet-published polling per fetch.
	MaxAttempts uint64
	// PollInterval is the initial wait between attempts.
	PollInterval time.Duration
}

// Client fetches envelopes over HTTP.
type Client struct {
	httpClient *http.Client
	endpoint   string
	metrics    Metrics
	retryCfg   retry.Config
}

// NewClient validates cfg and constructs a Client.
func NewClient(cfg Config, metrics Metrics) (*Client, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse guardian endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("guardian endpoint scheme %q not supported", parsed.Scheme)
	}
	if metrics == nil {
		return nil, fmt.Errorf("guardian metrics is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxAttempts == 0 {
		cfg.MaxAttempts = 10
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = 2 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		metrics:    metrics,
		retryCfg: retry.Config{
			MaxAttempts:     cfg.MaxAttempts,
			InitialInterval: cfg.PollInterval,
		},
	}, nil
}

type envelopeResponse struct {
	Envelope string `json:"envelope"`
}

// FetchEnvelope retrieves and decodes the signed envelope for one emitted
// message, polling while the guardian network has not published it yet.
func (c *Client) FetchEnvelope(ctx context.Context, emitterChain model.ChainID, emitterAddress [32]byte, sequence uint64) (envelope *protocol.Envelope, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("fetch_envelope", err, started)
	}()

	target := fmt.Sprintf("%s/v1/signed_envelope/%d/%s/%d",
		c.endpoint, emitterChain, hex.EncodeToString(emitterAddress[:]), sequence)

	var raw []byte
	err = retry.Do(ctx, c.retryCfg, func() error {
		fetched, fetchErr := c.fetchOnce(ctx, target)
		if fetchErr != nil {
			return fetchErr
		}
		raw = fetched
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("fetch envelope for sequence %d: %w", sequence, err)
	}

	envelope, err = protocol.DecodeEnvelope(raw)
	if err != nil {
		// A malformed envelope from the guardian API will not improve with
		// retries; the caller fails the work item.
		return nil, fmt.Errorf("decode envelope for sequence %d: %w", sequence, err)
	}
	return envelope, nil
}

func (c *Client) fetchOnce(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("build request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call guardian api: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("envelope not yet published")
	default:
		return nil, fmt.Errorf("unexpected http status %d", resp.StatusCode)
	}

	var decoded envelopeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, retry.Permanent(fmt.Errorf("decode response: %w", err))
	}
	raw, err := base64.StdEncoding.DecodeString(decoded.Envelope)
	if err != nil {
		return nil, retry.Permanent(fmt.Errorf("decode envelope bytes: %w", err))
	}
	return raw, nil
}
