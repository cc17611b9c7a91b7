package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// LatestCursor returns the highest durable ingest cursor position. found is
// false when no cursor has ever been written.
func (r *Repository) LatestCursor(ctx context.Context) (uint64, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_cursor", err, start)
	}()

	const query = `
SELECT toUInt64(max(cursor)) AS cursor, count() AS cnt
FROM ingest_cursor`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return 0, false, fmt.Errorf("query latest cursor: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, nil
	}
	var cursor, cnt uint64
	if err = rows.Scan(&cursor, &cnt); err != nil {
		return 0, false, fmt.Errorf("scan latest cursor: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate latest cursor: %w", err)
	}
	if cnt == 0 {
		return 0, false, nil
	}
	return cursor, true, nil
}
