// Package report produces and consumes the data interchange formats: the
// JSON export/import blob and the HTML report document.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/homexpense/homexpense/internal/common"
	"github.com/homexpense/homexpense/internal/ledger"
	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

// exportTimeLayout matches the millisecond UTC shape the export format
// has always used for exportDate.
const exportTimeLayout = "2006-01-02T15:04:05.000Z"

// export is the wire shape of an export blob.
type export struct {
	Expenses   []model.Expense `json:"expenses"`
	Budgets    []model.Budget  `json:"budgets"`
	ExportDate string          `json:"exportDate"`
}

// Export serializes both collections plus a generation timestamp into the
// interchange JSON blob.
func Export(expenses []model.Expense, budgets []model.Budget, now time.Time) ([]byte, error) {
	if expenses == nil {
		expenses = []model.Expense{}
	}
	if budgets == nil {
		budgets = []model.Budget{}
	}

	blob := export{
		Expenses:   expenses,
		Budgets:    budgets,
		ExportDate: now.UTC().Format(exportTimeLayout),
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode export: %w", err)
	}
	return data, nil
}

// Snapshot is a parsed import payload. The two collections are kept as
// the raw JSON they arrived with: import deliberately does not
// deep-validate contents, it only requires that both keys are present.
type Snapshot struct {
	Expenses   json.RawMessage
	Budgets    json.RawMessage
	ExportDate string
}

// ParseImport validates an import payload. It fails with
// common.ErrInvalidImport unless the payload is a JSON object carrying
// both an "expenses" and a "budgets" key.
func ParseImport(data []byte) (Snapshot, error) {
	var payload struct {
		Expenses   *json.RawMessage `json:"expenses"`
		Budgets    *json.RawMessage `json:"budgets"`
		ExportDate string           `json:"exportDate"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", common.ErrInvalidImport, err)
	}
	if payload.Expenses == nil {
		return Snapshot{}, fmt.Errorf("%w: missing expenses", common.ErrInvalidImport)
	}
	if payload.Budgets == nil {
		return Snapshot{}, fmt.Errorf("%w: missing budgets", common.ErrInvalidImport)
	}

	return Snapshot{
		Expenses:   *payload.Expenses,
		Budgets:    *payload.Budgets,
		ExportDate: payload.ExportDate,
	}, nil
}

// Apply destructively replaces both persisted collections with the
// snapshot's, either both or neither. In-memory stores reflect the
// imported data only after their next Load.
func Apply(ctx context.Context, kv storage.KV, snap Snapshot) error {
	err := kv.SetAll(ctx, map[string]string{
		ledger.ExpensesKey: string(snap.Expenses),
		ledger.BudgetsKey:  string(snap.Budgets),
	})
	if err != nil {
		return fmt.Errorf("failed to apply import: %w", err)
	}
	return nil
}
