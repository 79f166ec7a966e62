package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/common"
	"outgo/internal/model"
)

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single expense",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
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
		cmd.Println(cli.WarningStyle.Render(fmt.Sprintf("No expense with id %d.", id)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get expense: %w", err)
	}

	currency := currencySymbol()
	cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("Expense #%d", expense.ID)))
	cmd.Printf("Name:     %s\n", expense.Name)
	cmd.Printf("Amount:   %s%s\n", currency, model.FormatCents(expense.AmountCents))
	cmd.Printf("Category: %s\n", expense.Category)
	cmd.Printf("Date:     %s\n", expense.Date.Format(dateLayout))
	if expense.Notes != "" {
		cmd.Printf("Notes:    %s\n", expense.Notes)
	}
	cmd.Println(cli.SubtleStyle.Render("Recorded " + expense.CreatedAt.Format("2006-01-02 15:04:05 MST")))
	return nil
}
