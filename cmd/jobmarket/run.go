package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/jobmarket/internal/collector"
	"github.com/jonathan/jobmarket/internal/db"
	"github.com/jonathan/jobmarket/internal/observability"
	"github.com/jonathan/jobmarket/internal/pipeline"
	"github.com/jonathan/jobmarket/internal/vocab"
)

var runCmd = &cobra.Command{
	Use:   "run [sources...]",
	Short: "Run the ETL pipeline over JSONL record sources",
	Long:  "Run the ETL pipeline over one or more JSONL sources of raw scraped records (local files or HTTP endpoints) and upsert the results into PostgreSQL. Each source is processed by its own pipeline instance.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPipeline,
}

var (
	runVocabPath   string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	runCmd.Flags().StringVarP(&runVocabPath, "vocab", "v", "", "Path to vocabulary YAML (built-in defaults when omitted)")
	runCmd.Flags().StringVarP(&runDatabaseURL, "database-url", "d", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Print per-source batch summaries")

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	vocabularies, err := vocab.LoadOrDefaults(runVocabPath)
	if err != nil {
		log.Printf("vocabulary config unavailable, using defaults: %v", err)
	}

	printer := observability.NewPrinter(os.Stdout)
	if runVerbose {
		printer.PrintVocabularyStats(vocabularies)
	}

	url, err := databaseURL(runDatabaseURL)
	if err != nil {
		return err
	}
	store, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	// One pipeline instance per source: the dedup seen-set and enricher
	// cache must not be shared across concurrent batches.
	var mu sync.Mutex
	total := pipeline.BatchSummary{}

	g, gctx := errgroup.WithContext(ctx)
	for _, source := range args {
		source := source
		g.Go(func() error {
			records, err := collector.ReadSource(gctx, source)
			if err != nil {
				return err
			}

			summary, err := pipeline.New(vocabularies).Run(gctx, records, store)
			if err != nil {
				return fmt.Errorf("batch %s: %w", source, err)
			}

			log.Printf("%s: %s", source, summary)
			mu.Lock()
			total.Add(*summary)
			if runVerbose {
				printer.PrintBatchSummary(source, summary)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Batch complete: %s\n", total.String())
	return nil
}
