package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homexpense/homexpense/internal/model"
)

func TestBuildHTML(t *testing.T) {
	expenses := []model.Expense{
		{ID: "1", Amount: 50, Category: "Groceries", Description: "milk", Date: "2024-03-05"},
		{ID: "2", Amount: 1200, Category: "Rent", Description: "march rent", Date: "2024-03-01"},
		{ID: "3", Amount: 20, Category: "Entertainment", Description: "cinema", Date: "2024-03-09"},
	}
	budgets := []model.Budget{
		{Category: "Groceries", Amount: 200},
		{Category: "Rent", Amount: 1500},
	}
	generated := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	html, err := BuildHTML(expenses, budgets, "Rs", generated)
	require.NoError(t, err)

	assert.Contains(t, html, "homeXpense Report")
	assert.Contains(t, html, "Generated on March 10, 2024")

	// Summary totals.
	assert.Contains(t, html, "Total Budget: Rs1700")
	assert.Contains(t, html, "Total Expenses: Rs1270")
	assert.Contains(t, html, "Remaining: Rs430")

	// Budget rows in insertion order.
	assert.Contains(t, html, "<td>Groceries</td>")
	assert.Contains(t, html, "<td>Rs1500</td>")

	// Expenses sorted newest first.
	cinema := strings.Index(html, "cinema")
	milk := strings.Index(html, "milk")
	rent := strings.Index(html, "march rent")
	require.True(t, cinema >= 0 && milk >= 0 && rent >= 0)
	assert.Less(t, cinema, milk)
	assert.Less(t, milk, rent)

	// Dates are rendered in the report format.
	assert.Contains(t, html, "Mar 5, 2024")
}

func TestBuildHTML_EscapesContent(t *testing.T) {
	expenses := []model.Expense{
		{ID: "1", Amount: 5, Category: "Other", Description: `<script>alert("x")</script>`, Date: "2024-03-05"},
	}

	html, err := BuildHTML(expenses, nil, "$", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestBuildHTML_EmptyData(t *testing.T) {
	html, err := BuildHTML(nil, nil, "Rs", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Contains(t, html, "Total Budget: Rs0")
	assert.Contains(t, html, "Total Expenses: Rs0")
	assert.Contains(t, html, "Remaining: Rs0")
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{200, "200"},
		{9.99, "9.99"},
		{1270.5, "1270.50"},
		{-430, "-430"},
	}
	for _, tt := range tests {
		if got := formatAmount(tt.in); got != tt.want {
			t.Errorf("formatAmount(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
