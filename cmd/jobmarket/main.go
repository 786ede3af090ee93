// Package main provides the entry point for the job market intelligence ETL.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobmarket",
	Short: "Job market intelligence ETL",
	Long:  "jobmarket cleans, deduplicates and enriches scraped job postings, persists them to PostgreSQL, and aggregates market trends.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// databaseURL resolves the connection string from the flag or environment.
func databaseURL(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv("DATABASE_URL"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("no database URL: set --database-url or DATABASE_URL")
}
