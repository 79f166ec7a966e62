package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"outgo/internal/cli"
	"outgo/internal/model"
)

func summaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show spending totals for a time window",
		Long: `Show aggregate statistics for a time window: overall total,
a per-category breakdown, and a per-day rollup.

Example:
  outgo summary --period week
  outgo summary --from 2024-01-01 --to 2024-01-31`,
		RunE: runSummary,
	}

	cmd.Flags().String("from", "", "range start date")
	cmd.Flags().String("to", "", "range end date (inclusive, whole day)")
	cmd.Flags().StringP("period", "p", "month", "shortcut range: day, week, or month")
	cmd.Flags().Bool("daily", false, "include the per-day rollup chart")

	return cmd
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	period, _ := cmd.Flags().GetString("period")

	start, end, err := resolveRange(from, to, period)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}

	summary, err := store.GetSummary(ctx, start, end)
	if err != nil {
		return fmt.Errorf("failed to compute summary: %w", err)
	}

	currency := currencySymbol()
	cmd.Println(cli.TitleStyle.Render(fmt.Sprintf("Spending %s to %s",
		start.Format(dateLayout), end.Format(dateLayout))))
	cmd.Printf("Total:    %s%s\n", currency, model.FormatCents(summary.TotalCents))
	cmd.Printf("Expenses: %d\n", summary.Count)

	if summary.Count == 0 {
		return nil
	}

	cmd.Println()
	cmd.Println(cli.BoldStyle.Render("By category"))
	cmd.Println(cli.RenderBarChart(cli.CategoryRows(summary.Categories), currency))

	if daily, _ := cmd.Flags().GetBool("daily"); daily {
		cmd.Println()
		cmd.Println(cli.BoldStyle.Render("By day"))
		cmd.Println(cli.RenderBarChart(cli.DailyRows(summary.Daily), currency))
	}

	return nil
}
