package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// AppendStatus appends one row to the status journal.
func (r *Repository) AppendStatus(ctx context.Context, hash model.SealHash, status model.Status, reason string, at time.Time) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("append_status", err, start)
	}()

	const query = `
INSERT INTO work_item_status (
	seal_hash,
	status,
	reason,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare status batch: %w", err)
	}
	if err = batch.Append(hash.String(), string(status), reason, at); err != nil {
		return fmt.Errorf("append status row: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert status row: %w", err)
	}
	return nil
}
