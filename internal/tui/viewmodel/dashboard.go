// Package viewmodel holds the display-ready data the TUI renders from,
// derived from ledger state with no hidden inputs.
package viewmodel

import (
	"fmt"

	"github.com/joselucas77/poupix/internal/ledger"
	"github.com/joselucas77/poupix/internal/model"
)

// SummaryView is the three-cell summary card.
type SummaryView struct {
	Debts     string
	Goals     string
	Remaining string
	Overspent bool
}

// NewSummary formats the aggregate totals for the card.
func NewSummary(t ledger.Totals) SummaryView {
	return SummaryView{
		Debts:     FormatAmount(t.Debts),
		Goals:     FormatAmount(t.Goals),
		Remaining: FormatAmount(t.Remaining),
		Overspent: t.IsOverspent(),
	}
}

// TransactionItemView is one row of the transaction list.
type TransactionItemView struct {
	ID          string
	Icon        string
	Name        string
	Date        string
	Amount      string
	Category    string
	Installment string
	IsGoal      bool
	IsMonthly   bool
	IsSelected  bool
}

// NewTransactionItem formats one transaction for its list row.
func NewTransactionItem(t model.Transaction, selected bool) TransactionItemView {
	return TransactionItemView{
		ID:          t.ID,
		Icon:        t.Icon,
		Name:        t.Name,
		Date:        t.Date,
		Amount:      FormatAmount(t.Amount),
		Category:    string(t.Category),
		Installment: string(t.Installment),
		IsGoal:      t.Category == model.CategoryGoal,
		IsMonthly:   t.Installment == model.InstallmentMonthly,
		IsSelected:  selected,
	}
}

// PagerView is the "page / total" indicator next to the list heading.
type PagerView struct {
	Label   string
	CanPrev bool
	CanNext bool
}

// NewPager formats the pager from a snapshot.
func NewPager(s ledger.Snapshot) PagerView {
	return PagerView{
		Label:   fmt.Sprintf("%d / %d", s.Page+1, s.TotalPages),
		CanPrev: s.CanPrevPage(),
		CanNext: s.CanNextPage(),
	}
}

// FilterBadges returns the labels of the active filters, empty when the
// set is All (no badges are shown then).
func FilterBadges(s ledger.Snapshot) []string {
	badges := make([]string, 0, len(s.ActiveFilters))
	for _, o := range s.ActiveFilters {
		badges = append(badges, o.String())
	}
	return badges
}
