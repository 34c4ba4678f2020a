package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/homexpense/homexpense/internal/analysis"
	"github.com/homexpense/homexpense/internal/cli"
	"github.com/homexpense/homexpense/internal/model"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage per-category budget caps",
	}

	cmd.AddCommand(setBudgetCmd())
	cmd.AddCommand(listBudgetsCmd())
	cmd.AddCommand(deleteBudgetCmd())

	return cmd
}

func setBudgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <amount>",
		Short: "Declare or replace the budget for a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			category := args[0]

			if _, ok := model.LookupCategory(category); !ok {
				return fmt.Errorf("unknown category %q (see 'homexpense categories')", category)
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[1], err)
			}
			if amount < 0 {
				return fmt.Errorf("amount cannot be negative")
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			a.budgets.Set(ctx, category, amount)
			if err := a.budgets.Flush(ctx); err != nil {
				return fmt.Errorf("budget set in memory but not persisted: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Budget for %s set to %s", category, money(a.currency(), amount))))
			return nil
		},
	}
}

func listBudgetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List budgets with their utilization",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			budgets := a.budgets.List()
			if len(budgets) == 0 {
				fmt.Println(cli.InfoStyle.Render("No budgets set. Use 'homexpense budget set' to create one."))
				return nil
			}

			currency := a.currency()
			expenses := a.expenses.List()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Budget"),
				cli.HeaderStyle.Render("Spent"),
				cli.HeaderStyle.Render("Used"),
				cli.HeaderStyle.Render("Status"))

			for _, b := range budgets {
				u := analysis.BudgetUtilization(b.Category, expenses, budgets)
				band := analysis.Band(u.Percent)
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					b.Category,
					money(currency, b.Amount),
					money(currency, u.Spent),
					formatPercent(u.Percent),
					cli.BandStyle(band).Render(band))
			}

			return nil
		},
	}
}

func deleteBudgetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <category>",
		Short: "Remove the budget for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			category := args[0]

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, ok := a.budgets.ByCategory(category); !ok {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No budget for %s", category)))
				return nil
			}

			if !force {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, fmt.Sprintf("Delete the budget for %s?", category))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Cancelled"))
					return nil
				}
			}

			a.budgets.Delete(ctx, category)
			if err := a.budgets.Flush(ctx); err != nil {
				return fmt.Errorf("budget removed in memory but not persisted: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Budget for %s deleted", category)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

// formatPercent renders a utilization percentage; an infinite value
// (zero-amount budget with spend) prints as over.
func formatPercent(percent float64) string {
	if math.IsInf(percent, 1) {
		return "over"
	}
	return fmt.Sprintf("%.1f%%", percent)
}
