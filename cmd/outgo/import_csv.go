package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/model"
)

// csvHeader is the column layout shared by import and export.
var csvHeader = []string{"name", "amount", "category", "date", "notes"}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import expenses from a CSV file",
		Long: `Import expenses from a CSV file with the columns
name,amount,category,date,notes (the same layout 'outgo export' writes).

Every row becomes a new expense with a fresh id; this is the migration
path for moving data between databases.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportCSV,
	}

	cmd.Flags().Bool("dry-run", false, "Parse and validate without saving")

	return cmd
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer func() { _ = file.Close() }()

	expenses, err := readExpensesCSV(file)
	if err != nil {
		return err
	}

	if len(expenses) == 0 {
		cmd.Println("No expenses found in file.")
		return nil
	}

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		cmd.Printf("Would import %d expense(s).\n", len(expenses))
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	bar := progressbar.NewOptions(len(expenses),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Importing expenses..."),
	)

	for i := range expenses {
		if _, err := store.InsertExpense(ctx, &expenses[i]); err != nil {
			return fmt.Errorf("failed to import row %d: %w", i+1, err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	cmd.Println()

	cmd.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d expense(s).", len(expenses))))
	return nil
}

// readExpensesCSV parses the import layout. The header row is required so
// a file exported from another tool fails loudly instead of importing junk.
func readExpensesCSV(r io.Reader) ([]model.Expense, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	for i, column := range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(header[i]), column) {
			return nil, fmt.Errorf("unexpected CSV header: want %s", strings.Join(csvHeader, ","))
		}
	}

	var expenses []model.Expense
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line++

		amount, err := model.ParseAmount(record[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		category, err := model.ParseCategory(record[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		date, err := parseDate(strings.TrimSpace(record[3]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		expenses = append(expenses, model.Expense{
			Name:        strings.TrimSpace(record[0]),
			AmountCents: amount,
			Category:    category,
			Date:        date,
			Notes:       record[4],
		})
	}

	return expenses, nil
}
