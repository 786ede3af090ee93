//go:build integration

package db

import (
	"context"
	"testing"
	"time"

	"github.com/jonathan/jobmarket/internal/types"
)

func TestIntegration_UpsertTrend(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	trend := types.Trend{
		Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MetricName:  "top_skill",
		MetricValue: "test-python",
		Count:       7,
		Country:     "Peru",
	}

	if err := db.UpsertTrend(ctx, trend); err != nil {
		t.Fatalf("UpsertTrend failed: %v", err)
	}

	// Same tuple again only changes the count
	trend.Count = 9
	if err := db.UpsertTrend(ctx, trend); err != nil {
		t.Fatalf("UpsertTrend (second call) failed: %v", err)
	}

	count := 0
	err := db.pool.QueryRow(ctx,
		`SELECT count FROM trends WHERE metric_name = $1 AND metric_value = $2 AND country = $3`,
		"top_skill", "test-python", "Peru",
	).Scan(&count)
	if err != nil {
		t.Fatalf("Failed to read trend back: %v", err)
	}
	if count != 9 {
		t.Errorf("Expected count 9 after re-aggregation, got %d", count)
	}

	rows := 0
	err = db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM trends WHERE metric_value = 'test-python'`,
	).Scan(&rows)
	if err != nil {
		t.Fatalf("Failed to count trend rows: %v", err)
	}
	if rows != 1 {
		t.Errorf("Expected one row per tuple, got %d", rows)
	}
}

func TestIntegration_UpsertTrendsBatch(t *testing.T) {
	db := getTestDB(t)
	defer db.Close()
	ctx := context.Background()

	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	batch := []types.Trend{
		{Date: day, MetricName: "test-sector_jobs", MetricValue: "test-fintech", Count: 3},
		{Date: day, MetricName: "test-sector_jobs", MetricValue: "test-edtech", Count: 1},
	}

	if err := db.UpsertTrends(ctx, batch); err != nil {
		t.Fatalf("UpsertTrends failed: %v", err)
	}

	n, err := db.CountTrends(ctx, "test-sector_jobs")
	if err != nil {
		t.Fatalf("CountTrends failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 trend rows, got %d", n)
	}
}
