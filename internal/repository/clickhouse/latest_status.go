package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ikatensei/relayer-backend/internal/model"
)

// LatestStatus returns the newest journal row for hash. An empty status
// means the hash has never been journaled.
func (r *Repository) LatestStatus(ctx context.Context, hash model.SealHash) (model.Status, string, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("latest_status", err, start)
	}()

	const query = `
SELECT
	argMax(status, recorded_at) AS status,
	argMax(reason, recorded_at) AS reason,
	count() AS cnt
FROM work_item_status
WHERE seal_hash = ?`

	rows, err := r.conn.Query(ctx, query, hash.String())
	if err != nil {
		return "", "", fmt.Errorf("query latest status: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return "", "", nil
	}
	var status, reason string
	var cnt uint64
	if err = rows.Scan(&status, &reason, &cnt); err != nil {
		return "", "", fmt.Errorf("scan latest status: %w", err)
	}
	if err = rows.Err(); err != nil {
		return "", "", fmt.Errorf("iterate latest status: %w", err)
	}
	if cnt == 0 {
		return "", "", nil
	}
	return model.Status(status), reason, nil
}
