package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/homexpense/homexpense/internal/analysis"
	"github.com/homexpense/homexpense/internal/cli"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show spending at a glance",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			currency := a.currency()
			expenses := a.expenses.List()
			budgets := a.budgets.List()

			totalBudget := analysis.TotalBudget(budgets)
			totalExpenses := analysis.TotalExpenses(expenses)
			remaining := analysis.RemainingBudget(expenses, budgets)

			fmt.Println(cli.TitleStyle.Render("Overview"))
			fmt.Printf("Total budget:    %s\n", money(currency, totalBudget))
			fmt.Printf("Total expenses:  %s\n", money(currency, totalExpenses))
			remainingStr := money(currency, remaining)
			if remaining < 0 {
				remainingStr = cli.ErrorStyle.Render(remainingStr + " (over budget)")
			} else {
				remainingStr = cli.SuccessStyle.Render(remainingStr)
			}
			fmt.Printf("Remaining:       %s\n\n", remainingStr)

			now := time.Now()
			thisMonth := analysis.MonthTotal(expenses, now.Year(), now.Month())
			prevYear, prevMonth := analysis.PreviousMonth(now.Year(), now.Month())
			lastMonth := analysis.MonthTotal(expenses, prevYear, prevMonth)
			trend := analysis.TrendPercent(thisMonth, lastMonth)

			fmt.Println(cli.TitleStyle.Render("This month"))
			fmt.Printf("Spent:           %s\n", money(currency, thisMonth))
			fmt.Printf("Last month:      %s\n", money(currency, lastMonth))
			trendStr := fmt.Sprintf("%+.1f%%", trend)
			if trend > 0 {
				trendStr = cli.WarningStyle.Render(trendStr)
			} else {
				trendStr = cli.SuccessStyle.Render(trendStr)
			}
			fmt.Printf("Trend:           %s\n\n", trendStr)

			spend := analysis.SpendByCategory(expenses)
			if len(spend) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses recorded yet."))
				return nil
			}

			fmt.Println(cli.TitleStyle.Render("By category"))
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			// Walk the registry so output order is stable, then anything
			// spent against categories outside it.
			seen := make(map[string]bool)
			for _, c := range append(knownCategoryNames(), unknownCategories(spend)...) {
				if seen[c] || spend[c] == 0 {
					continue
				}
				seen[c] = true

				u := analysis.BudgetUtilization(c, expenses, budgets)
				status := ""
				if u.HasLimit {
					band := analysis.Band(u.Percent)
					status = cli.BandStyle(band).Render(fmt.Sprintf("%s of %s (%s)",
						formatPercent(u.Percent), money(currency, u.Limit), band))
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c, money(currency, spend[c]), status)
			}

			return nil
		},
	}
}
