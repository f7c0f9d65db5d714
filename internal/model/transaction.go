// Package model defines the domain types for the poupix ledger.
package model

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Category indicates whether a transaction is money owed or money saved for.
type Category string

const (
	// CategoryDebt represents an outstanding payment.
	CategoryDebt Category = "Debt"
	// CategoryGoal represents a savings target.
	CategoryGoal Category = "Goal"
)

// Installment indicates how often a transaction recurs.
type Installment string

const (
	// InstallmentMonthly recurs every month.
	InstallmentMonthly Installment = "Monthly"
	// InstallmentOneTime happens once.
	InstallmentOneTime Installment = "OneTime"
)

// Transaction represents a single ledger entry.
//
// ID is assigned at creation and never reused. Icon and Category are fixed
// at creation time; renaming a transaction does not re-derive its icon.
type Transaction struct {
	ID          string
	Name        string
	Date        string // dd/mm/yyyy, digit grouping only, not a validated calendar date
	Icon        string
	Amount      float64
	Category    Category
	Installment Installment
}

// NewID returns a fresh unique transaction id.
func NewID() string {
	return uuid.NewString()
}

// ParseAmount converts free-text amount input into a ledger amount.
// Malformed, non-finite, or negative input coerces to 0; the add and
// edit flows have no error path.
func ParseAmount(input string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// DeriveIcon returns the glyph shown in the transaction's icon circle:
// the first character of the name, uppercased.
func DeriveIcon(name string) string {
	for _, r := range name {
		return string(unicode.ToUpper(r))
	}
	return ""
}
