package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// InsertCursor appends a new cursor position. The cursor table is
// append-only; LatestCursor resolves the current position with max().
func (r *Repository) InsertCursor(ctx context.Context, cursor uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_cursor", err, start)
	}()

	const query = `
INSERT INTO ingest_cursor (cursor, recorded_at) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare cursor batch: %w", err)
	}
	if err = batch.Append(cursor, time.Now().UTC()); err != nil {
		return fmt.Errorf("append cursor row: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert cursor: %w", err)
	}
	return nil
}
