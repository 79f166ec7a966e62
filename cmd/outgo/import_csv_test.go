package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outgo/internal/model"
)

func TestReadExpensesCSV(t *testing.T) {
	input := `name,amount,category,date,notes
Groceries,42.50,food,2024-01-05,weekly shop
Bus ticket,2.75,transportation,2024-01-06,
`

	expenses, err := readExpensesCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	assert.Equal(t, "Groceries", expenses[0].Name)
	assert.Equal(t, int64(4250), expenses[0].AmountCents)
	assert.Equal(t, model.CategoryFood, expenses[0].Category)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), expenses[0].Date)
	assert.Equal(t, "weekly shop", expenses[0].Notes)

	assert.Equal(t, int64(275), expenses[1].AmountCents)
	assert.Empty(t, expenses[1].Notes)
}

func TestReadExpensesCSV_EmptyFile(t *testing.T) {
	expenses, err := readExpensesCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestReadExpensesCSV_WrongHeader(t *testing.T) {
	input := "id,description,total,kind,when\n"
	_, err := readExpensesCSV(strings.NewReader(input))
	assert.ErrorContains(t, err, "unexpected CSV header")
}

func TestReadExpensesCSV_BadRows(t *testing.T) {
	tests := []struct {
		name string
		row  string
	}{
		{name: "bad amount", row: "Lunch,lots,food,2024-01-05,"},
		{name: "unknown category", row: "Lunch,10.00,snacks,2024-01-05,"},
		{name: "bad date", row: "Lunch,10.00,food,Jan 5th,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "name,amount,category,date,notes\n" + tt.row + "\n"
			_, err := readExpensesCSV(strings.NewReader(input))
			assert.ErrorContains(t, err, "line 2")
		})
	}
}

func TestExpensesCSVRoundTrip(t *testing.T) {
	original := []model.Expense{
		{
			Name:        "Groceries, organic",
			AmountCents: 4250,
			Category:    model.CategoryFood,
			Date:        time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
			Notes:       `includes "fancy" cheese`,
		},
		{
			Name:        "Rent",
			AmountCents: 120000,
			Category:    model.CategoryHousing,
			Date:        time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeExpensesCSV(&buf, original))

	got, err := readExpensesCSV(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	for i := range original {
		assert.Equal(t, original[i].Name, got[i].Name)
		assert.Equal(t, original[i].AmountCents, got[i].AmountCents)
		assert.Equal(t, original[i].Category, got[i].Category)
		assert.True(t, original[i].Date.Equal(got[i].Date))
		assert.Equal(t, original[i].Notes, got[i].Notes)
	}
}
