package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/homexpense/homexpense/internal/cli"
	"github.com/homexpense/homexpense/internal/model"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View or update the user profile",
	}

	cmd.AddCommand(showProfileCmd())
	cmd.AddCommand(setProfileCmd())

	return cmd
}

func showProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := a.profile.Profile()
			if p == (model.Profile{}) {
				fmt.Println(cli.InfoStyle.Render("No profile set. Use 'homexpense profile set' to create one."))
				return nil
			}

			fmt.Printf("Name:     %s\n", p.Name)
			fmt.Printf("Email:    %s\n", p.Email)
			fmt.Printf("Currency: %s\n", p.DisplayCurrency())
			return nil
		},
	}
}

func setProfileCmd() *cobra.Command {
	var (
		name     string
		email    string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long:  `Update one or more profile fields. Fields not given keep their value.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			if name == "" && email == "" && currency == "" {
				return fmt.Errorf("nothing to update: pass --name, --email, or --currency")
			}

			a, cleanup, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			patch := model.Profile{Name: name, Email: email, Currency: currency}
			if err := a.profile.Update(ctx, patch); err != nil {
				return err
			}

			fmt.Println(cli.SuccessStyle.Render("Profile updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&currency, "currency", "", "currency prefix for amounts")

	return cmd
}
