// Package ledger holds the in-memory transaction ledger and the derived
// view computed from it: totals, the filtered subset, and the current page.
// All state lives for the duration of the session only.
package ledger

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/joselucas77/poupix/internal/model"
)

// DateLayout is the display and input layout for transaction dates.
const DateLayout = "02/01/2006"

// Draft carries the raw add-form input for a new transaction. Amount is
// kept as the typed string so coercion rules apply at commit time.
type Draft struct {
	Name        string
	Amount      string
	Date        string
	Category    model.Category
	Installment model.Installment
}

// Patch carries the raw edit-form input for an existing transaction.
// Category and icon are not patchable; they are fixed at creation.
type Patch struct {
	Name        string
	Amount      string
	Date        string
	Installment model.Installment
}

// Store owns the transaction list, the salary, and the view inputs
// (search term, filter set, page cursor). It is not safe for concurrent
// use; every mutation happens on the single event-handling goroutine.
type Store struct {
	now          func() time.Time
	newID        func() string
	search       string
	transactions []model.Transaction
	filters      FilterSet
	salary       float64
	page         int
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock overrides the clock used to default transaction dates.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithIDFunc overrides id assignment for new transactions.
func WithIDFunc(newID func() string) StoreOption {
	return func(s *Store) { s.newID = newID }
}

// NewStore creates a store with an initial salary and seed transactions.
func NewStore(salary float64, seed []model.Transaction, opts ...StoreOption) *Store {
	s := &Store{
		now:          time.Now,
		newID:        model.NewID,
		salary:       salary,
		transactions: append([]model.Transaction(nil), seed...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddTransaction commits an add-form draft. It requires a non-empty name
// and a non-empty amount string; otherwise nothing happens and ok is
// false. The amount coerces to 0 when malformed, the date defaults to
// today when omitted, and the icon derives from the name's first
// character. The new transaction is appended, preserving insertion order.
func (s *Store) AddTransaction(d Draft) (model.Transaction, bool) {
	if d.Name == "" || d.Amount == "" {
		return model.Transaction{}, false
	}

	date := d.Date
	if date == "" {
		date = s.now().Format(DateLayout)
	}

	t := model.Transaction{
		ID:          s.newID(),
		Name:        d.Name,
		Date:        date,
		Amount:      model.ParseAmount(d.Amount),
		Icon:        model.DeriveIcon(d.Name),
		Category:    d.Category,
		Installment: d.Installment,
	}
	s.transactions = append(s.transactions, t)
	return t, true
}

// UpdateTransaction patches name, amount, date, and installment of the
// transaction with the given id. Unknown ids are a silent no-op.
func (s *Store) UpdateTransaction(id string, p Patch) bool {
	for i := range s.transactions {
		if s.transactions[i].ID != id {
			continue
		}
		s.transactions[i].Name = p.Name
		s.transactions[i].Amount = model.ParseAmount(p.Amount)
		s.transactions[i].Date = p.Date
		s.transactions[i].Installment = p.Installment
		return true
	}
	return false
}

// RemoveTransaction deletes the transaction with the given id.
// Unknown ids are a silent no-op.
func (s *Store) RemoveTransaction(id string) bool {
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Transaction returns the transaction with the given id, if present.
func (s *Store) Transaction(id string) (model.Transaction, bool) {
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Transactions returns a copy of the full list in insertion order.
func (s *Store) Transactions() []model.Transaction {
	return append([]model.Transaction(nil), s.transactions...)
}

// Salary returns the last committed salary.
func (s *Store) Salary() float64 {
	return s.salary
}

// SetSalary commits raw salary-editor input. Only input that parses to a
// finite number greater than zero is accepted; anything else is discarded
// and the prior salary retained.
func (s *Store) SetSalary(input string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return false
	}
	s.salary = v
	return true
}

// SetSearch replaces the search term and resets the page cursor.
func (s *Store) SetSearch(term string) {
	if term == s.search {
		return
	}
	s.search = term
	s.page = 0
}

// Search returns the active search term.
func (s *Store) Search() string {
	return s.search
}

// ToggleFilter applies one tap on a filter entry. Any change to the
// filter set resets the page cursor.
func (s *Store) ToggleFilter(o Option) {
	if s.filters.Toggle(o) {
		s.page = 0
	}
}

// ClearFilters resets the filter set to All and the page cursor to 0.
func (s *Store) ClearFilters() {
	if s.filters.IsAll() {
		return
	}
	s.filters.Clear()
	s.page = 0
}

// Filters returns the active filter set.
func (s *Store) Filters() FilterSet {
	return s.filters
}

// NextPage advances one page, clamped at the last page.
func (s *Store) NextPage() {
	_, _, total := Paginate(s.filtered(), s.page)
	if s.page < total-1 {
		s.page++
	}
}

// PrevPage retreats one page, clamped at the first page.
func (s *Store) PrevPage() {
	if s.page > 0 {
		s.page--
	}
}

// SetPage jumps to a page index, clamped into range.
func (s *Store) SetPage(page int) {
	_, clamped, _ := Paginate(s.filtered(), page)
	s.page = clamped
}

func (s *Store) filtered() []model.Transaction {
	return FilterTransactions(s.transactions, s.search, s.filters)
}
