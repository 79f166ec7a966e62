package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"outgo/internal/model"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file.csv]",
		Short: "Export all expenses as CSV",
		Long: `Export every expense as CSV in the layout 'outgo import' reads.
With no file argument the CSV is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExportCSV,
	}
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	expenses, err := store.GetAllExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if len(args) == 1 {
		file, createErr := os.Create(args[0])
		if createErr != nil {
			return fmt.Errorf("failed to create %s: %w", args[0], createErr)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	if err := writeExpensesCSV(out, expenses); err != nil {
		return err
	}

	if len(args) == 1 {
		cmd.Printf("Exported %d expense(s) to %s\n", len(expenses), args[0])
	}
	return nil
}

func writeExpensesCSV(w io.Writer, expenses []model.Expense) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range expenses {
		record := []string{
			e.Name,
			model.FormatCents(e.AmountCents),
			e.Category.String(),
			e.Date.Format(dateLayout),
			e.Notes,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
