package ledger

import (
	"strings"

	"github.com/joselucas77/poupix/internal/model"
)

// PageSize is the number of transactions per page of the filtered list.
const PageSize = 3

// Totals holds the aggregate figures shown in the summary card.
// Remaining may be negative; the sign only drives styling.
type Totals struct {
	Debts     float64
	Goals     float64
	Remaining float64
}

// IsOverspent reports whether the remaining balance is negative.
func (t Totals) IsOverspent() bool {
	return t.Remaining < 0
}

// ComputeTotals sums debts and goals over the full list and derives the
// remaining balance from the salary.
func ComputeTotals(transactions []model.Transaction, salary float64) Totals {
	var totals Totals
	for _, t := range transactions {
		switch t.Category {
		case model.CategoryDebt:
			totals.Debts += t.Amount
		case model.CategoryGoal:
			totals.Goals += t.Amount
		}
	}
	totals.Remaining = salary - (totals.Debts + totals.Goals)
	return totals
}

// FilterTransactions applies the search term and filter set to the full
// list. Search is a case-insensitive substring match against the name;
// an empty term matches everything. Order is preserved.
func FilterTransactions(transactions []model.Transaction, search string, filters FilterSet) []model.Transaction {
	needle := strings.ToLower(search)

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if needle != "" && !strings.Contains(strings.ToLower(t.Name), needle) {
			continue
		}
		if !filters.Matches(t) {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// Paginate slices one page out of the filtered list. The requested page
// is clamped, not wrapped, into [0, totalPages-1]; totalPages is at least
// 1 even for an empty list, so the empty state still reads "1 / 1".
func Paginate(filtered []model.Transaction, page int) (items []model.Transaction, clampedPage, totalPages int) {
	totalPages = (len(filtered) + PageSize - 1) / PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	clampedPage = page
	if clampedPage > totalPages-1 {
		clampedPage = totalPages - 1
	}
	if clampedPage < 0 {
		clampedPage = 0
	}

	start := clampedPage * PageSize
	end := start + PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], clampedPage, totalPages
}

// Snapshot is the read-only view the presentation shell renders from.
type Snapshot struct {
	Search        string
	Transactions  []model.Transaction // the current page of the filtered list
	ActiveFilters []Option            // nil when the set is All
	Totals        Totals
	Salary        float64
	FilteredCount int
	Page          int
	TotalPages    int
}

// CanPrevPage reports whether a previous page exists.
func (v Snapshot) CanPrevPage() bool {
	return v.Page > 0
}

// CanNextPage reports whether a further page exists.
func (v Snapshot) CanNextPage() bool {
	return v.Page < v.TotalPages-1
}

// Snapshot recomputes the derived view from current state. The page
// cursor clamps lazily here, so a shrink of the filtered list (deletion,
// narrowed search) can never surface an out-of-range page.
func (s *Store) Snapshot() Snapshot {
	filtered := s.filtered()
	items, page, totalPages := Paginate(filtered, s.page)
	s.page = page

	return Snapshot{
		Totals:        ComputeTotals(s.transactions, s.salary),
		Salary:        s.salary,
		Search:        s.search,
		ActiveFilters: s.filters.Active(),
		Transactions:  items,
		FilteredCount: len(filtered),
		Page:          page,
		TotalPages:    totalPages,
	}
}
