package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/homexpense/homexpense/internal/cli"
	"github.com/homexpense/homexpense/internal/model"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the spending categories",
		Long:  `Display the fixed category registry. Categories cannot be added or removed.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\n",
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Icon"),
				cli.HeaderStyle.Render("Color"))

			for _, c := range model.Categories() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Icon, c.Color)
			}

			return nil
		},
	}
}
