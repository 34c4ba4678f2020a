package report

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homexpense/homexpense/internal/common"
	"github.com/homexpense/homexpense/internal/ledger"
	"github.com/homexpense/homexpense/internal/model"
	"github.com/homexpense/homexpense/internal/storage"
)

func TestExport(t *testing.T) {
	expenses := []model.Expense{
		{ID: "1709251200001", Amount: 50, Category: "Groceries", Description: "milk", Date: "2024-03-05"},
	}
	budgets := []model.Budget{
		{Category: "Groceries", Amount: 200},
	}
	now := time.Date(2024, 3, 10, 8, 30, 0, 0, time.UTC)

	data, err := Export(expenses, budgets, now)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "expenses")
	assert.Contains(t, decoded, "budgets")

	var exportDate string
	require.NoError(t, json.Unmarshal(decoded["exportDate"], &exportDate))
	assert.Equal(t, "2024-03-10T08:30:00.000Z", exportDate)
}

func TestExport_EmptyCollectionsAreArrays(t *testing.T) {
	data, err := Export(nil, nil, time.Now())
	require.NoError(t, err)

	var decoded struct {
		Expenses []model.Expense `json:"expenses"`
		Budgets  []model.Budget  `json:"budgets"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotNil(t, decoded.Expenses)
	assert.NotNil(t, decoded.Budgets)

	// The raw document must carry [] rather than null.
	assert.Contains(t, string(data), `"expenses": []`)
	assert.Contains(t, string(data), `"budgets": []`)
}

func TestExportImportRoundTrip(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()

	src := ledger.NewExpenseStore(kv)
	src.Load(ctx)
	defer src.Close()
	srcBudgets := ledger.NewBudgetStore(kv)
	srcBudgets.Load(ctx)
	defer srcBudgets.Close()

	src.Add(ctx, 50, "Groceries", "milk", "2024-03-05")
	srcBudgets.Set(ctx, "Groceries", 200)
	require.NoError(t, src.Flush(ctx))
	require.NoError(t, srcBudgets.Flush(ctx))

	data, err := Export(src.List(), srcBudgets.List(), time.Now())
	require.NoError(t, err)

	// Import into a fresh backing store on the other side.
	dest := storage.NewMemoryKV()
	snap, err := ParseImport(data)
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, dest, snap))

	expenses := ledger.NewExpenseStore(dest)
	expenses.Load(ctx)
	defer expenses.Close()
	budgets := ledger.NewBudgetStore(dest)
	budgets.Load(ctx)
	defer budgets.Close()

	require.Len(t, expenses.List(), 1)
	assert.Equal(t, "milk", expenses.List()[0].Description)
	b, ok := budgets.ByCategory("Groceries")
	require.True(t, ok)
	assert.InDelta(t, 200, b.Amount, 1e-9)
}

func TestParseImport_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing budgets", `{"expenses": []}`},
		{"missing expenses", `{"budgets": []}`},
		{"missing both", `{"exportDate": "2024-01-01T00:00:00.000Z"}`},
		{"not json", `hello`},
		{"json array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseImport([]byte(tt.payload))
			assert.ErrorIs(t, err, common.ErrInvalidImport)
		})
	}
}

func TestParseImport_ContentsNotDeepValidated(t *testing.T) {
	// Both keys present is all that is required; contents pass through
	// untouched.
	snap, err := ParseImport([]byte(`{"expenses": "surprising", "budgets": 42}`))
	require.NoError(t, err)
	assert.Equal(t, `"surprising"`, string(snap.Expenses))
	assert.Equal(t, `42`, string(snap.Budgets))
}

func TestImportRejectionLeavesStateUntouched(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, ledger.ExpensesKey, `[{"id":"1"}]`))
	require.NoError(t, kv.Set(ctx, ledger.BudgetsKey, `[]`))

	_, err := ParseImport([]byte(`{"expenses": []}`))
	require.Error(t, err)

	// Nothing was applied.
	value, ok, err := kv.Get(ctx, ledger.ExpensesKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, value)
}

func TestApplyReplacesBothKeys(t *testing.T) {
	kv := storage.NewMemoryKV()
	ctx := context.Background()
	require.NoError(t, kv.Set(ctx, ledger.ExpensesKey, `[{"id":"old"}]`))
	require.NoError(t, kv.Set(ctx, ledger.BudgetsKey, `[{"category":"Rent","amount":1}]`))

	snap, err := ParseImport([]byte(`{"expenses": [], "budgets": []}`))
	require.NoError(t, err)
	require.NoError(t, Apply(ctx, kv, snap))

	for _, key := range []string{ledger.ExpensesKey, ledger.BudgetsKey} {
		value, ok, getErr := kv.Get(ctx, key)
		require.NoError(t, getErr)
		require.True(t, ok)
		assert.JSONEq(t, `[]`, value, "key %q", key)
	}
}
