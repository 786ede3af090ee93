package db

import (
	"context"
	"fmt"

	"github.com/jonathan/jobmarket/internal/types"
)

// UpsertTrend stores one aggregate metric row. The conflict target is the
// full (date, metric_name, metric_value, sector, country) tuple; only the
// count changes on re-aggregation.
func (db *DB) UpsertTrend(ctx context.Context, t types.Trend) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO trends (date, metric_name, metric_value, count, sector, country)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (date, metric_name, metric_value, sector, country)
		 DO UPDATE SET count = $4`,
		t.Date, t.MetricName, t.MetricValue, t.Count, t.Sector, t.Country,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert trend %s/%s: %w", t.MetricName, t.MetricValue, err)
	}
	return nil
}

// UpsertTrends stores a batch of trend rows, stopping at the first failure.
func (db *DB) UpsertTrends(ctx context.Context, trends []types.Trend) error {
	for _, t := range trends {
		if err := db.UpsertTrend(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

// CountTrends reports how many trend rows exist for a metric.
func (db *DB) CountTrends(ctx context.Context, metricName string) (int, error) {
	var n int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM trends WHERE metric_name = $1`, metricName,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count trends: %w", err)
	}
	return n, nil
}
