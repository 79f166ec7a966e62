package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Long: `Apply any pending schema migrations to the expense database.

Opening the database through any command migrates it automatically;
this command exists to migrate explicitly and to inspect the schema
version with --status.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show the schema version without migrating")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Shared() migrates on open, so reaching this point means the
	// database is current. The flag just reports where we landed.
	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	version, err := store.SchemaVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if status, _ := cmd.Flags().GetBool("status"); status {
		cmd.Printf("Schema version: %d (expected %d)\n", version, storage.ExpectedSchemaVersion)
		return nil
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Database is at schema version %d.", version)))
	return nil
}
