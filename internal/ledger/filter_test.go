package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joselucas77/poupix/internal/model"
)

func TestFilterSetToggle(t *testing.T) {
	tests := []struct {
		name       string
		taps       []Option
		wantActive []Option
		wantAll    bool
	}{
		{
			name:    "fresh set is all",
			taps:    nil,
			wantAll: true,
		},
		{
			name:       "select debts",
			taps:       []Option{OptionDebts},
			wantActive: []Option{OptionDebts},
		},
		{
			name:       "goals while debts selected is a no-op",
			taps:       []Option{OptionDebts, OptionGoals},
			wantActive: []Option{OptionDebts},
		},
		{
			name:       "monthly while one-time selected is a no-op",
			taps:       []Option{OptionOneTime, OptionMonthly},
			wantActive: []Option{OptionOneTime},
		},
		{
			name:       "pairs are independent dimensions",
			taps:       []Option{OptionGoals, OptionMonthly},
			wantActive: []Option{OptionGoals, OptionMonthly},
		},
		{
			name:    "deselecting the last member reinstates all",
			taps:    []Option{OptionDebts, OptionDebts},
			wantAll: true,
		},
		{
			name:       "deselecting one of two keeps the other",
			taps:       []Option{OptionDebts, OptionOneTime, OptionDebts},
			wantActive: []Option{OptionOneTime},
		},
		{
			name:    "all clears everything",
			taps:    []Option{OptionGoals, OptionMonthly, OptionAll},
			wantAll: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fs FilterSet
			for _, o := range tt.taps {
				fs.Toggle(o)
			}

			assert.Equal(t, tt.wantAll, fs.IsAll())
			assert.Equal(t, tt.wantActive, fs.Active())

			// The exclusive pairs can never be selected together.
			assert.False(t, fs.Has(OptionDebts) && fs.Has(OptionGoals))
			assert.False(t, fs.Has(OptionOneTime) && fs.Has(OptionMonthly))
		})
	}
}

func TestFilterSetToggleReportsChanges(t *testing.T) {
	var fs FilterSet

	assert.False(t, fs.Toggle(OptionAll), "all on a fresh set changes nothing")
	assert.True(t, fs.Toggle(OptionDebts))
	assert.False(t, fs.Toggle(OptionGoals), "disabled entry changes nothing")
	assert.True(t, fs.Toggle(OptionAll))
}

func TestFilterSetDisabled(t *testing.T) {
	var fs FilterSet
	fs.Toggle(OptionDebts)
	fs.Toggle(OptionMonthly)

	assert.True(t, fs.Disabled(OptionGoals))
	assert.True(t, fs.Disabled(OptionOneTime))
	assert.False(t, fs.Disabled(OptionDebts))
	assert.False(t, fs.Disabled(OptionMonthly))
	assert.False(t, fs.Disabled(OptionAll))
}

func TestFilterSetMatches(t *testing.T) {
	debtMonthly := model.Transaction{Category: model.CategoryDebt, Installment: model.InstallmentMonthly}
	goalOneTime := model.Transaction{Category: model.CategoryGoal, Installment: model.InstallmentOneTime}

	var all FilterSet
	assert.True(t, all.Matches(debtMonthly))
	assert.True(t, all.Matches(goalOneTime))

	var debts FilterSet
	debts.Toggle(OptionDebts)
	assert.True(t, debts.Matches(debtMonthly))
	assert.False(t, debts.Matches(goalOneTime))

	var goalMonthly FilterSet
	goalMonthly.Toggle(OptionGoals)
	goalMonthly.Toggle(OptionMonthly)
	assert.False(t, goalMonthly.Matches(debtMonthly), "wrong category")
	assert.False(t, goalMonthly.Matches(goalOneTime), "wrong installment")
}
