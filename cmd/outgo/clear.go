package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
)

func clearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Erase all expense data",
		Long: `Erase every recorded expense.

This is a destructive operation and cannot be undone. Ids of erased
expenses are never reused.`,
		RunE: runClear,
	}

	cmd.Flags().BoolP("force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runClear(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	count, err := store.CountExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to count expenses: %w", err)
	}

	if count == 0 {
		cmd.Println("No expenses found. Nothing to clear.")
		return nil
	}

	// Confirm with user unless --force is used
	if force, _ := cmd.Flags().GetBool("force"); !force {
		cmd.Printf("This will permanently delete %d expense(s).\n", count)
		cmd.Print("Are you sure you want to continue? [y/N]: ")

		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil {
			response = ""
		}
		if response != "y" && response != "Y" {
			cmd.Println("Clear canceled.")
			return nil
		}
	}

	if err := store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Deleted %d expense(s).", count)))
	return nil
}
