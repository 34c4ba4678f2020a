// Package analysis computes derived aggregates over expense and budget
// snapshots. Every function is pure: inputs are taken as plain slices and
// no state is held.
package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/homexpense/homexpense/internal/model"
)

// ZeroBaselineTrend is the month-over-month trend reported when the
// previous month had no spend. The source screens disagreed (one used
// 100%); 0% is the pinned policy.
const ZeroBaselineTrend = 0.0

// Severity bands over a utilization percentage.
const (
	BandNormal     = "normal"
	BandNearLimit  = "near limit"
	BandOverBudget = "over budget"
)

// TotalBudget sums all budget amounts.
func TotalBudget(budgets []model.Budget) float64 {
	var total float64
	for _, b := range budgets {
		total += b.Amount
	}
	return total
}

// TotalExpenses sums all expense amounts.
func TotalExpenses(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// RemainingBudget is total budget minus total expenses; negative means
// overspent.
func RemainingBudget(expenses []model.Expense, budgets []model.Budget) float64 {
	return TotalBudget(budgets) - TotalExpenses(expenses)
}

// MonthTotal sums the expenses whose date falls in the given calendar
// year and month. This is the expense's own calendar month, not a rolling
// window. Expenses with unparseable dates are skipped.
func MonthTotal(expenses []model.Expense, year int, month time.Month) float64 {
	var total float64
	for _, e := range expenses {
		t, ok := e.Time()
		if !ok {
			continue
		}
		if t.Year() == year && t.Month() == month {
			total += e.Amount
		}
	}
	return total
}

// PreviousMonth returns the calendar month before the given one.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// TrendPercent is the month-over-month change of curr relative to prev,
// in percent. A zero baseline yields ZeroBaselineTrend rather than an
// infinity.
func TrendPercent(curr, prev float64) float64 {
	if prev == 0 {
		return ZeroBaselineTrend
	}
	return (curr - prev) / prev * 100
}

// Utilization describes spend against the budget of one category.
type Utilization struct {
	Spent    float64
	Limit    float64
	Percent  float64
	HasLimit bool
}

// BudgetUtilization reports how much of a category's budget is consumed.
// Without a budget for the category, Percent is 0 and HasLimit is false.
// A zero-amount budget with any spend reports +Inf percent, which the
// severity bands read as over budget.
func BudgetUtilization(category string, expenses []model.Expense, budgets []model.Budget) Utilization {
	u := Utilization{}
	for _, e := range expenses {
		if e.Category == category {
			u.Spent += e.Amount
		}
	}

	for _, b := range budgets {
		if b.Category == category {
			u.HasLimit = true
			u.Limit = b.Amount
			break
		}
	}
	if !u.HasLimit {
		return u
	}

	switch {
	case u.Limit != 0:
		u.Percent = u.Spent / u.Limit * 100
	case u.Spent > 0:
		u.Percent = math.Inf(1)
	}
	return u
}

// Band classifies a utilization percentage.
func Band(percent float64) string {
	switch {
	case percent > 100:
		return BandOverBudget
	case percent > 80:
		return BandNearLimit
	default:
		return BandNormal
	}
}

// SpendByCategory sums expense amounts per category name.
func SpendByCategory(expenses []model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range expenses {
		totals[e.Category] += e.Amount
	}
	return totals
}

// SortByDateDesc returns the expenses ordered newest first. Expenses with
// unparseable dates sort last; the sort is stable so ties keep insertion
// order.
func SortByDateDesc(expenses []model.Expense) []model.Expense {
	out := make([]model.Expense, len(expenses))
	copy(out, expenses)

	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := out[i].Time()
		tj, jok := out[j].Time()
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
	return out
}
