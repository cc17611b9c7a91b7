// Package metadata resolves display metadata for a sealed token from the
// metadata service. Resolution is best effort: the rebirth proceeds with
// fallback metadata when the service is down or knows nothing about the
// token.
package metadata

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// Metrics records outcome and duration per lookup.
type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// Config for the metadata service client.
type Config struct {
	// Endpoint is the base URL of the metadata service.
	Endpoint string
	// Timeout bounds a single lookup.
	Timeout time.Duration
}

// Resolver looks up token metadata over HTTP.
type Resolver struct {
	httpClient *http.Client
	endpoint   string
	metrics    Metrics
}

// NewResolver validates cfg and constructs a Resolver.
func NewResolver(cfg Config, metrics Metrics) (*Resolver, error) {
	parsed, err := url.Parse(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse metadata endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("metadata endpoint scheme %q not supported", parsed.Scheme)
	}
	if metrics == nil {
		return nil, fmt.Errorf("metadata metrics is required")
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Resolver{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		metrics:    metrics,
	}, nil
}

type metadataResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URI         string `json:"uri"`
	Collection  string `json:"collection"`
}

// Resolve fetches metadata for one token. A service miss returns Fallback
// metadata and no error; only transport and decoding problems surface, and
// the caller may still proceed with Fallback.
func (r *Resolver) Resolve(ctx context.Context, chain model.ChainID, contract, tokenID []byte) (meta model.Metadata, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("resolve", err, started)
	}()

	target := fmt.Sprintf("%s/v1/tokens/%d/%s/%s",
		r.endpoint, chain, hex.EncodeToString(contract), hex.EncodeToString(tokenID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return Fallback(contract, tokenID), fmt.Errorf("build metadata request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return Fallback(contract, tokenID), fmt.Errorf("call metadata service: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Fallback(contract, tokenID), nil
	default:
		return Fallback(contract, tokenID), fmt.Errorf("metadata service returned http status %d", resp.StatusCode)
	}

	var decoded metadataResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Fallback(contract, tokenID), fmt.Errorf("decode metadata response: %w", err)
	}
	if decoded.Name == "" {
		return Fallback(contract, tokenID), nil
	}

	return model.Metadata{
		Name:        decoded.Name,
		Description: decoded.Description,
		URI:         decoded.URI,
		Collection:  decoded.Collection,
	}, nil
}

// Fallback is the metadata used when no richer source is available. It keeps
// the original token identifiable from the minted asset alone.
func Fallback(contract, tokenID []byte) model.Metadata {
	return model.Metadata{
		Name: fmt.Sprintf("Reborn %.8s #%.8s",
			hex.EncodeToString(contract), hex.EncodeToString(tokenID)),
	}
}
