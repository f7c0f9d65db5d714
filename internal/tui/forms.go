package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joselucas77/poupix/internal/ledger"
	"github.com/joselucas77/poupix/internal/model"
	"github.com/joselucas77/poupix/internal/tui/viewmodel"
)

// formField indexes the focusable parts of a transaction form.
type formField int

const (
	fieldName formField = iota
	fieldAmount
	fieldDate
	fieldCategory
	fieldInstallment
)

// transactionForm is the scratch state behind the add and edit modals.
// The edit variant hides the category toggle: category is fixed once a
// transaction exists.
type transactionForm struct {
	name         textinput.Model
	amount       textinput.Model
	date         textinput.Model
	category     model.Category
	installment  model.Installment
	focus        formField
	withCategory bool
}

func newTransactionForm(withCategory bool) transactionForm {
	name := textinput.New()
	name.Placeholder = "Ex: Netflix, Carro, etc."
	name.CharLimit = 50

	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 20

	date := textinput.New()
	date.Placeholder = "dd/mm/yyyy"
	date.CharLimit = 10

	f := transactionForm{
		name:         name,
		amount:       amount,
		date:         date,
		category:     model.CategoryDebt,
		installment:  model.InstallmentOneTime,
		withCategory: withCategory,
	}
	f.setFocus(fieldName)
	return f
}

// prefill loads a transaction's editable fields into the form.
func (f *transactionForm) prefill(t model.Transaction) {
	f.name.SetValue(t.Name)
	f.amount.SetValue(strconv.FormatFloat(t.Amount, 'f', -1, 64))
	f.date.SetValue(t.Date)
	f.installment = t.Installment
	f.setFocus(fieldName)
}

func (f *transactionForm) lastField() formField {
	return fieldInstallment
}

func (f *transactionForm) nextField() {
	next := f.focus + 1
	if !f.withCategory && next == fieldCategory {
		next++
	}
	if next > f.lastField() {
		next = fieldName
	}
	f.setFocus(next)
}

func (f *transactionForm) prevField() {
	prev := f.focus - 1
	if !f.withCategory && prev == fieldCategory {
		prev--
	}
	if prev < fieldName {
		prev = f.lastField()
	}
	f.setFocus(prev)
}

func (f *transactionForm) setFocus(field formField) {
	f.focus = field
	f.name.Blur()
	f.amount.Blur()
	f.date.Blur()

	switch field {
	case fieldName:
		f.name.Focus()
	case fieldAmount:
		f.amount.Focus()
	case fieldDate:
		f.date.Focus()
	}
}

// Update routes a key press into the form. Toggle fields respond to
// left/right/space; text fields forward to their input, with the date
// field re-masked after every edit.
func (f *transactionForm) Update(msg tea.KeyMsg) tea.Cmd {
	switch f.focus {
	case fieldCategory:
		switch msg.String() {
		case "left", "right", " ":
			if f.category == model.CategoryDebt {
				f.category = model.CategoryGoal
			} else {
				f.category = model.CategoryDebt
			}
		}
		return nil

	case fieldInstallment:
		switch msg.String() {
		case "left", "right", " ":
			if f.installment == model.InstallmentOneTime {
				f.installment = model.InstallmentMonthly
			} else {
				f.installment = model.InstallmentOneTime
			}
		}
		return nil

	case fieldName:
		var cmd tea.Cmd
		f.name, cmd = f.name.Update(msg)
		return cmd

	case fieldAmount:
		var cmd tea.Cmd
		f.amount, cmd = f.amount.Update(msg)
		return cmd

	case fieldDate:
		var cmd tea.Cmd
		f.date, cmd = f.date.Update(msg)
		f.date.SetValue(viewmodel.FormatDateInput(f.date.Value()))
		f.date.CursorEnd()
		return cmd
	}
	return nil
}

// canSubmit reports whether the form can be committed: name and amount
// must be non-empty strings. Amount validity is not checked here; commit
// coerces.
func (f *transactionForm) canSubmit() bool {
	return f.name.Value() != "" && f.amount.Value() != ""
}

func (f *transactionForm) draft() ledger.Draft {
	return ledger.Draft{
		Name:        f.name.Value(),
		Amount:      f.amount.Value(),
		Date:        f.date.Value(),
		Category:    f.category,
		Installment: f.installment,
	}
}

func (f *transactionForm) patch() ledger.Patch {
	return ledger.Patch{
		Name:        f.name.Value(),
		Amount:      f.amount.Value(),
		Date:        f.date.Value(),
		Installment: f.installment,
	}
}
