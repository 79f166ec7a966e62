package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		Long: `Record a new expense in the local database.

Example:
  outgo add --name "Groceries" --amount 42.50 --category food
  outgo add -n "Bus ticket" -a 2.75 -c transportation -d 2024-01-05`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("name", "n", "", "expense name (required)")
	cmd.Flags().StringP("amount", "a", "", "amount, e.g. 12.50 (required)")
	cmd.Flags().StringP("category", "c", "", "category (required; see 'outgo categories')")
	cmd.Flags().StringP("date", "d", "", "date (default: today)")
	cmd.Flags().String("notes", "", "optional notes")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	expense, err := expenseFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	id, err := store.InsertExpense(ctx, expense)
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Added expense #%d: %s %s%s (%s)",
		id, expense.Name, currencySymbol(), model.FormatCents(expense.AmountCents), expense.Category)))
	return nil
}

// expenseFromFlags builds an expense from the add/edit flag set.
func expenseFromFlags(cmd *cobra.Command) (*model.Expense, error) {
	name, _ := cmd.Flags().GetString("name")
	amountStr, _ := cmd.Flags().GetString("amount")
	categoryStr, _ := cmd.Flags().GetString("category")
	dateStr, _ := cmd.Flags().GetString("date")
	notes, _ := cmd.Flags().GetString("notes")

	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		return nil, err
	}

	category, err := model.ParseCategory(categoryStr)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if dateStr != "" {
		if date, err = parseDate(dateStr); err != nil {
			return nil, err
		}
	}

	return &model.Expense{
		Name:        name,
		AmountCents: amount,
		Category:    category,
		Date:        date,
		Notes:       notes,
	}, nil
}
