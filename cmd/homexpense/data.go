package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/homexpense/homexpense/internal/cli"
	"github.com/homexpense/homexpense/internal/common"
	"github.com/homexpense/homexpense/internal/report"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all data as JSON",
		Long: `Write every expense and budget to a JSON file that 'homexpense import'
can read back on any machine.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			path := fmt.Sprintf("homexpense_export_%s.json", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				path = args[0]
			}

			data, err := report.Export(a.expenses.List(), a.budgets.List(), time.Now())
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Exported %d expenses and %d budgets to %s",
				len(a.expenses.List()), len(a.budgets.List()), path)))
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import data from a JSON export",
		Long: `Replace all stored expenses and budgets with the contents of a JSON
export. This is destructive: current data is overwritten, either both
collections or neither.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return common.NewUserError("Failed to read import file", err)
			}

			snap, err := report.ParseImport(data)
			if err != nil {
				return common.NewUserError("Invalid data format", err)
			}

			if !force {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, "This will replace all your current data. Are you sure?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Cancelled"))
					return nil
				}
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := report.Apply(ctx, a.kv, snap); err != nil {
				return common.NewUserError("Failed to import data", err)
			}

			// Stores only read their keys on load; reload so this
			// process sees the imported data immediately.
			a.expenses.Load(ctx)
			a.budgets.Load(ctx)

			fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Imported %d expenses and %d budgets",
				len(a.expenses.List()), len(a.budgets.List()))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [file]",
		Short: "Generate an HTML spending report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			path := fmt.Sprintf("homexpense_report_%s.html", time.Now().Format("2006-01-02"))
			if len(args) == 1 {
				path = args[0]
			}

			html, err := report.BuildHTML(a.expenses.List(), a.budgets.List(), a.currency(), time.Now())
			if err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(html), 0600); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}

			fmt.Println(cli.SuccessStyle.Render("Report written to " + path))
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all stored data",
		Long: `Remove every expense, budget, and the user profile from the local
database. This cannot be undone.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			if !force {
				confirmer := cli.NewConfirmer(os.Stdin, os.Stdout)
				ok, err := confirmer.Confirm(ctx, "Delete ALL expenses, budgets, and profile data?")
				if err != nil {
					return err
				}
				if !ok {
					fmt.Println(cli.InfoStyle.Render("Cancelled"))
					return nil
				}
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := a.kv.Clear(ctx); err != nil {
				return common.NewUserError("Failed to reset data", err)
			}
			a.expenses.Reset()
			a.budgets.Reset()
			a.profile.Reset()

			fmt.Println(cli.SuccessStyle.Render("All data deleted"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
