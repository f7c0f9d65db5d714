package ledger

import "github.com/joselucas77/poupix/internal/model"

// Option identifies one entry in the filter modal.
type Option int

const (
	// OptionAll clears every restriction.
	OptionAll Option = iota
	// OptionDebts restricts to debt transactions.
	OptionDebts
	// OptionGoals restricts to goal transactions.
	OptionGoals
	// OptionOneTime restricts to one-time installments.
	OptionOneTime
	// OptionMonthly restricts to monthly installments.
	OptionMonthly
)

// String returns the label shown for the option.
func (o Option) String() string {
	switch o {
	case OptionAll:
		return "All"
	case OptionDebts:
		return "Debts"
	case OptionGoals:
		return "Goals"
	case OptionOneTime:
		return "OneTime"
	case OptionMonthly:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// FilterSet holds the active transaction filters as two independent
// optional slots, one per dimension. An empty slot imposes no restriction
// on its dimension, so "All" is simply both slots empty. The slot
// representation makes the mutual-exclusion invariants (never Debts and
// Goals together, never OneTime and Monthly together, never an empty set)
// structural rather than checked.
type FilterSet struct {
	category    *model.Category
	installment *model.Installment
}

// option-to-slot tables.
var optionCategories = map[Option]model.Category{
	OptionDebts: model.CategoryDebt,
	OptionGoals: model.CategoryGoal,
}

var optionInstallments = map[Option]model.Installment{
	OptionOneTime: model.InstallmentOneTime,
	OptionMonthly: model.InstallmentMonthly,
}

// Toggle applies one tap on a filter modal entry. Selecting a value fills
// its slot, selecting it again empties the slot, and All empties both.
// Tapping the opposing member of an occupied pair is a no-op, matching the
// disabled buttons in the modal. It reports whether the set changed.
func (f *FilterSet) Toggle(o Option) bool {
	if o == OptionAll {
		if f.IsAll() {
			return false
		}
		f.category = nil
		f.installment = nil
		return true
	}

	if c, ok := optionCategories[o]; ok {
		switch {
		case f.category == nil:
			f.category = &c
		case *f.category == c:
			f.category = nil
		default:
			return false
		}
		return true
	}

	if i, ok := optionInstallments[o]; ok {
		switch {
		case f.installment == nil:
			f.installment = &i
		case *f.installment == i:
			f.installment = nil
		default:
			return false
		}
		return true
	}

	return false
}

// Clear resets the set back to All.
func (f *FilterSet) Clear() {
	f.category = nil
	f.installment = nil
}

// IsAll reports whether no restriction is active.
func (f *FilterSet) IsAll() bool {
	return f.category == nil && f.installment == nil
}

// Has reports whether an option is currently selected. OptionAll is
// selected exactly when both slots are empty.
func (f *FilterSet) Has(o Option) bool {
	if o == OptionAll {
		return f.IsAll()
	}
	if c, ok := optionCategories[o]; ok {
		return f.category != nil && *f.category == c
	}
	if i, ok := optionInstallments[o]; ok {
		return f.installment != nil && *f.installment == i
	}
	return false
}

// Disabled reports whether the modal entry for an option should be
// inert because the opposing member of its pair is selected.
func (f *FilterSet) Disabled(o Option) bool {
	if c, ok := optionCategories[o]; ok {
		return f.category != nil && *f.category != c
	}
	if i, ok := optionInstallments[o]; ok {
		return f.installment != nil && *f.installment != i
	}
	return false
}

// Active returns the selected non-All options in modal order.
// An unrestricted set returns nil.
func (f *FilterSet) Active() []Option {
	var active []Option
	for _, o := range []Option{OptionDebts, OptionGoals, OptionOneTime, OptionMonthly} {
		if f.Has(o) {
			active = append(active, o)
		}
	}
	return active
}

// Matches reports whether a transaction passes every occupied slot.
func (f *FilterSet) Matches(t model.Transaction) bool {
	if f.category != nil && t.Category != *f.category {
		return false
	}
	if f.installment != nil && t.Installment != *f.installment {
		return false
	}
	return true
}
