package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses for a time window",
		Long: `List expenses, filtered by time window and category.

Example:
  outgo list --period month
  outgo list --from 2024-01-01 --to 2024-01-31 --category food --sort amount-desc`,
		RunE: runList,
	}

	cmd.Flags().String("from", "", "range start date")
	cmd.Flags().String("to", "", "range end date (inclusive, whole day)")
	cmd.Flags().StringP("period", "p", "month", "shortcut range: day, week, or month")
	cmd.Flags().StringP("category", "c", "", "only show this category")
	cmd.Flags().String("sort", "date-desc", "sort order: date-asc, date-desc, amount-asc, amount-desc")
	cmd.Flags().Bool("all", false, "ignore the time window and list everything")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	var expenses []model.Expense
	if all, _ := cmd.Flags().GetBool("all"); all {
		expenses, err = store.GetAllExpenses(ctx)
	} else {
		from, _ := cmd.Flags().GetString("from")
		to, _ := cmd.Flags().GetString("to")
		period, _ := cmd.Flags().GetString("period")

		start, end, rangeErr := resolveRange(from, to, period)
		if rangeErr != nil {
			return rangeErr
		}
		expenses, err = store.GetExpensesByDateRange(ctx, start, end)
	}
	if err != nil {
		return fmt.Errorf("failed to list expenses: %w", err)
	}

	// Category filtering and sorting happen presentation-side, just like
	// the store's other consumers do.
	if categoryStr, _ := cmd.Flags().GetString("category"); categoryStr != "" {
		category, parseErr := model.ParseCategory(categoryStr)
		if parseErr != nil {
			return parseErr
		}
		expenses = filterByCategory(expenses, category)
	}

	sortOption, _ := cmd.Flags().GetString("sort")
	if err := sortExpenses(expenses, sortOption); err != nil {
		return err
	}

	cmd.Println(renderExpenseTable(expenses, currencySymbol()))
	return nil
}

func filterByCategory(expenses []model.Expense, category model.Category) []model.Expense {
	filtered := expenses[:0]
	for _, e := range expenses {
		if e.Category == category {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func sortExpenses(expenses []model.Expense, option string) error {
	switch option {
	case "date-asc":
		sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].Date.Before(expenses[j].Date) })
	case "date-desc":
		sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].Date.After(expenses[j].Date) })
	case "amount-asc":
		sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].AmountCents < expenses[j].AmountCents })
	case "amount-desc":
		sort.SliceStable(expenses, func(i, j int) bool { return expenses[i].AmountCents > expenses[j].AmountCents })
	default:
		return fmt.Errorf("unknown sort option %q", option)
	}
	return nil
}

func renderExpenseTable(expenses []model.Expense, currency string) string {
	if len(expenses) == 0 {
		return cli.SubtleStyle.Render("No expenses found.")
	}

	var b strings.Builder
	b.WriteString(cli.BoldStyle.Render(fmt.Sprintf("%-5s %-12s %-15s %12s  %s", "ID", "DATE", "CATEGORY", "AMOUNT", "NAME")))

	var total int64
	for _, e := range expenses {
		b.WriteByte('\n')
		line := fmt.Sprintf("%-5d %-12s %-15s %12s  %s",
			e.ID,
			e.Date.Format(dateLayout),
			e.Category,
			currency+model.FormatCents(e.AmountCents),
			e.Name,
		)
		if e.Notes != "" {
			line += cli.SubtleStyle.Render(" (" + e.Notes + ")")
		}
		b.WriteString(line)
		total += e.AmountCents
	}

	b.WriteByte('\n')
	b.WriteString(cli.BoldStyle.Render(fmt.Sprintf("%d expense(s), total %s%s",
		len(expenses), currency, model.FormatCents(total))))

	return b.String()
}
