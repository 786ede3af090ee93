package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmarket/internal/db"
	"github.com/jonathan/jobmarket/internal/trends"
)

var updateTrendsCmd = &cobra.Command{
	Use:   "update-trends",
	Short: "Recompute aggregate market trends from stored jobs",
	RunE:  runUpdateTrends,
}

var (
	trendsDatabaseURL string
	trendsDate        string
)

func init() {
	updateTrendsCmd.Flags().StringVarP(&trendsDatabaseURL, "database-url", "d", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	updateTrendsCmd.Flags().StringVar(&trendsDate, "date", "", "Aggregation date as YYYY-MM-DD (defaults to today)")

	rootCmd.AddCommand(updateTrendsCmd)
}

func runUpdateTrends(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	date := time.Now().UTC()
	if trendsDate != "" {
		parsed, err := time.Parse("2006-01-02", trendsDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: %w", trendsDate, err)
		}
		date = parsed
	}

	url, err := databaseURL(trendsDatabaseURL)
	if err != nil {
		return err
	}
	store, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	written, err := trends.NewUpdater(store).Run(ctx, date)
	if err != nil {
		return err
	}

	fmt.Printf("Updated %d trend rows for %s\n", written, date.Format("2006-01-02"))
	return nil
}
