package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
)

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long: `Delete an expense by id.

Deletion is idempotent: deleting an id that does not exist succeeds.`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	if err := store.DeleteExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted expense #%d", id)))
	return nil
}
