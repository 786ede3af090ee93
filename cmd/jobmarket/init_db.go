package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/jobmarket/internal/db"
)

var initDBCmd = &cobra.Command{
	Use:   "init-db",
	Short: "Create the database schema",
	RunE:  runInitDB,
}

var initDatabaseURL string

func init() {
	initDBCmd.Flags().StringVarP(&initDatabaseURL, "database-url", "d", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")

	rootCmd.AddCommand(initDBCmd)
}

func runInitDB(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	url, err := databaseURL(initDatabaseURL)
	if err != nil {
		return err
	}
	store, err := db.Connect(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return err
	}

	fmt.Println("Schema initialized")
	return nil
}
