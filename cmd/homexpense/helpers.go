package main

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/homexpense/homexpense/internal/config"
	"github.com/homexpense/homexpense/internal/ledger"
	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

// app bundles the opened stores every command works against.
type app struct {
	kv       *storage.SQLiteKV
	expenses *ledger.ExpenseStore
	budgets  *ledger.BudgetStore
	profile  *ledger.ProfileStore
}

// openApp opens the database and loads all three stores. The returned
// cleanup flushes pending writes (logging any persistence failure) and
// closes everything.
func openApp(ctx context.Context) (*app, func(), error) {
	dbPath := viper.GetString("data.db")
	if dbPath == "" {
		dbPath = config.DefaultDataPath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	kv, err := storage.NewSQLiteKV(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	a := &app{
		kv:       kv,
		expenses: ledger.NewExpenseStore(kv),
		budgets:  ledger.NewBudgetStore(kv),
		profile:  ledger.NewProfileStore(kv),
	}
	a.expenses.Load(ctx)
	a.budgets.Load(ctx)
	a.profile.Load(ctx)

	cleanup := func() {
		flushCtx := context.Background()
		if err := a.expenses.Flush(flushCtx); err != nil {
			slog.Warn("some expense writes did not persist", "error", err)
		}
		if err := a.budgets.Flush(flushCtx); err != nil {
			slog.Warn("some budget writes did not persist", "error", err)
		}
		a.expenses.Close()
		a.budgets.Close()
		if err := kv.Close(); err != nil {
			slog.Warn("failed to close database", "error", err)
		}
	}
	return a, cleanup, nil
}

// currency returns the display currency: the currency config key wins,
// then the stored profile, then the built-in default.
func (a *app) currency() string {
	if c := viper.GetString("currency"); c != "" {
		return c
	}
	return a.profile.Profile().DisplayCurrency()
}

// knownCategoryNames lists the registry's category names in display order.
func knownCategoryNames() []string {
	cats := model.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = c.Name
	}
	return names
}

// unknownCategories lists spend keys that are not in the registry, so
// imported data with stray category names still shows up.
func unknownCategories(spend map[string]float64) []string {
	var names []string
	for name := range spend {
		if _, ok := model.LookupCategory(name); !ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// formatAmount renders a monetary amount with two decimals, trimming
// them for whole values.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.TrimSuffix(s, ".00")
}

// money renders an amount with its currency prefix.
func money(currency string, v float64) string {
	return currency + formatAmount(v)
}
