package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outgo/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestSortExpenses(t *testing.T) {
	base := []model.Expense{
		{ID: 1, Date: day(2), AmountCents: 300},
		{ID: 2, Date: day(1), AmountCents: 100},
		{ID: 3, Date: day(3), AmountCents: 200},
	}

	tests := []struct {
		name    string
		option  string
		wantIDs []int64
	}{
		{name: "date ascending", option: "date-asc", wantIDs: []int64{2, 1, 3}},
		{name: "date descending", option: "date-desc", wantIDs: []int64{3, 1, 2}},
		{name: "amount ascending", option: "amount-asc", wantIDs: []int64{2, 3, 1}},
		{name: "amount descending", option: "amount-desc", wantIDs: []int64{1, 3, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expenses := make([]model.Expense, len(base))
			copy(expenses, base)

			require.NoError(t, sortExpenses(expenses, tt.option))

			gotIDs := make([]int64, len(expenses))
			for i, e := range expenses {
				gotIDs[i] = e.ID
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}

	assert.Error(t, sortExpenses(nil, "price-desc"))
}

func TestFilterByCategory(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Category: model.CategoryFood},
		{ID: 2, Category: model.CategoryHousing},
		{ID: 3, Category: model.CategoryFood},
	}

	filtered := filterByCategory(expenses, model.CategoryFood)
	require.Len(t, filtered, 2)
	assert.Equal(t, int64(1), filtered[0].ID)
	assert.Equal(t, int64(3), filtered[1].ID)

	assert.Empty(t, filterByCategory([]model.Expense{{Category: model.CategoryFood}}, model.CategoryHealth))
}

func TestResolveRange_Explicit(t *testing.T) {
	start, end, err := resolveRange("2024-01-01", "2024-01-31", "month")
	require.NoError(t, err)
	assert.Equal(t, day(1), start)
	assert.Equal(t, day(31), end)
}

func TestResolveRange_FromWithoutTo(t *testing.T) {
	_, _, err := resolveRange("2024-01-01", "", "month")
	assert.Error(t, err)
}

func TestResolveRange_BadDate(t *testing.T) {
	_, _, err := resolveRange("January 1st", "2024-01-31", "month")
	assert.Error(t, err)
}

func TestResolveRange_Periods(t *testing.T) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	start, end, err := resolveRange("", "", "day")
	require.NoError(t, err)
	assert.Equal(t, today, start)
	assert.Equal(t, today, end)

	start, end, err = resolveRange("", "", "week")
	require.NoError(t, err)
	assert.Equal(t, today, end)
	assert.Equal(t, time.Weekday(0), start.Weekday())
	assert.False(t, start.After(end))

	start, end, err = resolveRange("", "", "month")
	require.NoError(t, err)
	assert.Equal(t, today, end)
	assert.Equal(t, 1, start.Day())

	_, _, err = resolveRange("", "", "quarter")
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("0")
	assert.Error(t, err)
	_, err = parseID("-3")
	assert.Error(t, err)
	_, err = parseID("abc")
	assert.Error(t, err)
}

func TestRenderExpenseTable_Empty(t *testing.T) {
	out := renderExpenseTable(nil, "$")
	assert.Contains(t, out, "No expenses found")
}

func TestRenderExpenseTable(t *testing.T) {
	expenses := []model.Expense{
		{ID: 1, Name: "Groceries", Category: model.CategoryFood, AmountCents: 4250, Date: day(5)},
		{ID: 2, Name: "Bus", Category: model.CategoryTransportation, AmountCents: 275, Date: day(6), Notes: "monthly pass"},
	}

	out := renderExpenseTable(expenses, "$")
	assert.Contains(t, out, "Groceries")
	assert.Contains(t, out, "$42.50")
	assert.Contains(t, out, "monthly pass")
	assert.Contains(t, out, "2 expense(s), total $45.25")
}
