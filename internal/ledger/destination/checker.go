package destination

import (
	"context"

	"github.com/ikatensei/relayer-backend/internal/coordinator"
	"github.com/ikatensei/relayer-backend/internal/model"
)

// Checker adapts Client to the coordinator's narrow record-existence view.
type Checker struct {
	client *Client
}

// NewChecker wraps client for use as the coordinator's ground-truth probe.
func NewChecker(client *Client) *Checker {
	return &Checker{client: client}
}

// RecordExists implements coordinator.RecordChecker.
func (c *Checker) RecordExists(ctx context.Context, hash model.SealHash) (*coordinator.DestinationRecord, error) {
	record, err := c.client.RecordExists(ctx, hash)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return &coordinator.DestinationRecord{
		Minted:  record.Minted,
		MintRef: record.MintRef,
	}, nil
}
