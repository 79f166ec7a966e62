package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/common"
	"outgo/internal/model"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing expense",
		Long: `Edit an expense by id. Only the flags you set are changed;
everything else keeps its current value.

Note that the read and the write are two separate operations against the
store, so a concurrent edit of the same expense is last-write-wins.`,
		Args: cobra.ExactArgs(1),
		RunE: runEdit,
	}

	cmd.Flags().StringP("name", "n", "", "expense name")
	cmd.Flags().StringP("amount", "a", "", "amount, e.g. 12.50")
	cmd.Flags().StringP("category", "c", "", "category (see 'outgo categories')")
	cmd.Flags().StringP("date", "d", "", "date")
	cmd.Flags().String("notes", "", "notes")

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	expense, err := store.GetExpenseByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("no expense with id %d", id), err)
	}
	if err != nil {
		return fmt.Errorf("failed to get expense: %w", err)
	}

	if err := applyEditFlags(cmd, expense); err != nil {
		return err
	}

	if err := store.UpdateExpense(ctx, expense); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Updated expense #%d", id)))
	return nil
}

// applyEditFlags overwrites expense fields for each flag the user set.
func applyEditFlags(cmd *cobra.Command, expense *model.Expense) error {
	if cmd.Flags().Changed("name") {
		expense.Name, _ = cmd.Flags().GetString("name")
	}
	if cmd.Flags().Changed("amount") {
		amountStr, _ := cmd.Flags().GetString("amount")
		amount, err := model.ParseAmount(amountStr)
		if err != nil {
			return err
		}
		expense.AmountCents = amount
	}
	if cmd.Flags().Changed("category") {
		categoryStr, _ := cmd.Flags().GetString("category")
		category, err := model.ParseCategory(categoryStr)
		if err != nil {
			return err
		}
		expense.Category = category
	}
	if cmd.Flags().Changed("date") {
		dateStr, _ := cmd.Flags().GetString("date")
		date, err := parseDate(dateStr)
		if err != nil {
			return err
		}
		expense.Date = date
	}
	if cmd.Flags().Changed("notes") {
		expense.Notes, _ = cmd.Flags().GetString("notes")
	}
	return nil
}
