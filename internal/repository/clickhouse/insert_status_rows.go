package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// InsertStatusRows bulk-appends journal rows. It backs the buffered journal
// writer, so callers must only feed it rows that tolerate delayed
// durability.
func (r *Repository) InsertStatusRows(ctx context.Context, rows []model.StatusRow) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_status_rows", err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO work_item_status (
	seal_hash,
	status,
	reason,
	recorded_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare status rows batch: %w", err)
	}
	for _, row := range rows {
		if err = batch.Append(row.SealHash.String(), string(row.Status), row.Reason, row.RecordedAt); err != nil {
			return fmt.Errorf("append status row: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert status rows: %w", err)
	}
	return nil
}
