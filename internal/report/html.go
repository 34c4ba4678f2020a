package report

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/homexpense/homexpense/internal/analysis"
	"github.com/homexpense/homexpense/internal/model"
)

// reportTemplate mirrors the structure of the original report document:
// a summary block, budgets by category, then expenses newest first.
const reportTemplate = `<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; color: #333; }
      .header { text-align: center; color: #3b82f6; margin-bottom: 30px; }
      .section { margin-bottom: 30px; }
      .section-title { color: #3b82f6; border-bottom: 2px solid #3b82f6; padding-bottom: 5px; }
      table { width: 100%; border-collapse: collapse; margin-top: 10px; }
      th, td { padding: 10px; text-align: left; border-bottom: 1px solid #ddd; }
      .summary { background: #f8fafc; padding: 15px; border-radius: 5px; margin-top: 20px; }
    </style>
  </head>
  <body>
    <div class="header">
      <h1>homeXpense Report</h1>
      <p>Generated on {{.GeneratedOn}}</p>
    </div>

    <div class="section">
      <h2 class="section-title">Summary</h2>
      <div class="summary">
        <p>Total Budget: {{.Currency}}{{.TotalBudget}}</p>
        <p>Total Expenses: {{.Currency}}{{.TotalExpenses}}</p>
        <p>Remaining: {{.Currency}}{{.Remaining}}</p>
      </div>
    </div>

    <div class="section">
      <h2 class="section-title">Budgets by Category</h2>
      <table>
        <tr>
          <th>Category</th>
          <th>Budget Amount</th>
        </tr>
        {{- range .Budgets}}
        <tr>
          <td>{{.Category}}</td>
          <td>{{$.Currency}}{{.Amount}}</td>
        </tr>
        {{- end}}
      </table>
    </div>

    <div class="section">
      <h2 class="section-title">Recent Expenses</h2>
      <table>
        <tr>
          <th>Date</th>
          <th>Category</th>
          <th>Description</th>
          <th>Amount</th>
        </tr>
        {{- range .Expenses}}
        <tr>
          <td>{{.Date}}</td>
          <td>{{.Category}}</td>
          <td>{{.Description}}</td>
          <td>{{$.Currency}}{{.Amount}}</td>
        </tr>
        {{- end}}
      </table>
    </div>
  </body>
</html>
`

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

type reportRow struct {
	Date        string
	Category    string
	Description string
	Amount      string
}

type budgetRow struct {
	Category string
	Amount   string
}

type reportData struct {
	GeneratedOn   string
	Currency      string
	TotalBudget   string
	TotalExpenses string
	Remaining     string
	Budgets       []budgetRow
	Expenses      []reportRow
}

// BuildHTML renders the report document for the given snapshot. Budgets
// keep insertion order; expenses are listed newest first.
func BuildHTML(expenses []model.Expense, budgets []model.Budget, currency string, generatedAt time.Time) (string, error) {
	data := reportData{
		GeneratedOn:   generatedAt.Format("January 2, 2006"),
		Currency:      currency,
		TotalBudget:   formatAmount(analysis.TotalBudget(budgets)),
		TotalExpenses: formatAmount(analysis.TotalExpenses(expenses)),
		Remaining:     formatAmount(analysis.RemainingBudget(expenses, budgets)),
	}

	for _, b := range budgets {
		data.Budgets = append(data.Budgets, budgetRow{
			Category: b.Category,
			Amount:   formatAmount(b.Amount),
		})
	}

	for _, e := range analysis.SortByDateDesc(expenses) {
		row := reportRow{
			Date:        e.Date,
			Category:    e.Category,
			Description: e.Description,
			Amount:      formatAmount(e.Amount),
		}
		if t, ok := e.Time(); ok {
			row.Date = t.Format("Jan 2, 2006")
		}
		data.Expenses = append(data.Expenses, row)
	}

	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return sb.String(), nil
}

// formatAmount renders an amount the way the app displays money: two
// decimals, trailing zeros trimmed for whole values.
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimSuffix(s, ".00")
	return s
}
