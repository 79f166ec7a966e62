// Package model defines the core domain types for outgo.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Category classifies an expense's purpose. The set is closed.
type Category string

// Valid expense categories.
const (
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryUtilities      Category = "utilities"
	CategoryEntertainment  Category = "entertainment"
	CategoryShopping       Category = "shopping"
	CategoryHealth         Category = "health"
	CategoryHousing        Category = "housing"
	CategoryOther          Category = "other"
)

// Categories returns every valid category in display order.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealth,
		CategoryHousing,
		CategoryOther,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryUtilities,
		CategoryEntertainment, CategoryShopping, CategoryHealth,
		CategoryHousing, CategoryOther:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ErrUnknownCategory indicates a category outside the closed set.
var ErrUnknownCategory = errors.New("unknown category")

// ParseCategory converts user input to a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// Expense represents a single recorded spending event.
type Expense struct {
	Date        time.Time
	CreatedAt   time.Time
	Name        string
	Notes       string
	Category    Category
	ID          int64
	AmountCents int64
}

// Amount returns the expense amount in whole currency units.
func (e *Expense) Amount() float64 {
	return float64(e.AmountCents) / 100
}

// FormatCents renders an integer-cents amount as a decimal string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// ErrInvalidAmount indicates an amount string that is not a finite
// non-negative decimal with at most cent precision.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount converts a decimal amount string (e.g. "12.50") to integer
// cents. Amounts are rounded to the nearest cent and must be non-negative.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return int64(math.Round(f * 100)), nil
}

// Summary holds aggregate statistics for a date range. Maps contain only
// categories and days that actually had expenses.
type Summary struct {
	Categories map[Category]int64
	Daily      map[string]int64
	TotalCents int64
	Count      int
}

// DateKey formats a date the way Summary.Daily keys it.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
