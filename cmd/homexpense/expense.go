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
	"github.com/homexpense/homexpense/internal/model"
)

func expenseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expense",
		Short: "Record and manage expenses",
	}

	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func addExpenseCmd() *cobra.Command {
	var (
		amount      float64
		category    string
		description string
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a new expense",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			// The store accepts anything; input checks are this layer's job.
			if amount < 0 {
				return fmt.Errorf("amount cannot be negative")
			}
			if _, ok := model.LookupCategory(category); !ok {
				return fmt.Errorf("unknown category %q (see 'homexpense categories')", category)
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expense := a.expenses.Add(ctx, amount, category, description, date)
			if err := a.expenses.Flush(ctx); err != nil {
				return fmt.Errorf("expense recorded in memory but not persisted: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(
				fmt.Sprintf("Recorded %s for %s (id %s)", money(a.currency(), expense.Amount), expense.Category, expense.ID)))
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&description, "description", "", "what the money went to")
	cmd.Flags().StringVar(&date, "date", "", "expense date, YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func listExpensesCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expenses, newest first",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			expenses := a.expenses.List()
			if category != "" {
				expenses = a.expenses.ByCategory(category)
			}
			if len(expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found. Use 'homexpense expense add' to record one."))
				return nil
			}

			currency := a.currency()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Date"),
				cli.HeaderStyle.Render("Category"),
				cli.HeaderStyle.Render("Description"),
				cli.HeaderStyle.Render("Amount"),
				cli.HeaderStyle.Render("ID"))

			for _, e := range analysis.SortByDateDesc(expenses) {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Date, e.Category, e.Description, money(currency, e.Amount), cli.SubtleStyle.Render(e.ID))
			}
			fmt.Fprintf(w, "\t\t%s\t%s\t\n", "Total", money(currency, analysis.TotalExpenses(expenses)))

			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "only show this category")

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before := len(a.expenses.List())
			a.expenses.Delete(ctx, args[0])
			if err := a.expenses.Flush(ctx); err != nil {
				return fmt.Errorf("deletion applied in memory but not persisted: %w", err)
			}

			if len(a.expenses.List()) == before {
				fmt.Println(cli.WarningStyle.Render(fmt.Sprintf("No expense with id %s", args[0])))
				return nil
			}
			fmt.Println(cli.SuccessStyle.Render("Expense deleted"))
			return nil
		},
	}
}
