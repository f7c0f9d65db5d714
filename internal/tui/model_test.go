package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joselucas77/poupix/internal/gesture"
	"github.com/joselucas77/poupix/internal/ledger"
	"github.com/joselucas77/poupix/internal/tui/themes"
)

// fakeClock drives the long-press recognizers without sleeping.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)}
	store := ledger.NewStore(ledger.DefaultSalary, ledger.SeedTransactions())
	m := New(Config{Store: store, Theme: themes.Default, Now: clock.Now})
	return &m, clock
}

func send(m *Model, msg tea.Msg) {
	updated, _ := m.Update(msg)
	*m = updated.(Model)
}

func sendKey(m *Model, k string) {
	switch k {
	case "enter":
		send(m, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		send(m, tea.KeyMsg{Type: tea.KeyEsc})
	case "tab":
		send(m, tea.KeyMsg{Type: tea.KeyTab})
	default:
		send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	}
}

func TestEnterOpensDetail(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "enter")

	assert.Equal(t, StateDetail, m.state)
	assert.Equal(t, m.snap.Transactions[0].ID, m.selectedID)
}

func TestRowLongPressOpensDetail(t *testing.T) {
	m, clock := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 10, Y: z.listTop})
	require.Equal(t, StateDashboard, m.state)

	clock.Advance(gesture.RowHoldDuration)
	send(m, longPressTickMsg{target: targetRow, seq: 1})

	assert.Equal(t, StateDetail, m.state)
	assert.Equal(t, m.snap.Transactions[0].ID, m.selectedID)
}

func TestRowPressReleasedEarlyDoesNotOpen(t *testing.T) {
	m, clock := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 10, Y: z.listTop})
	clock.Advance(800 * time.Millisecond)
	send(m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 10, Y: z.listTop})

	// The timer still lands after the threshold, but the press is gone.
	clock.Advance(200 * time.Millisecond)
	send(m, longPressTickMsg{target: targetRow, seq: 1})

	assert.Equal(t, StateDashboard, m.state)
}

func TestStaleTickFromSupersededPressIgnored(t *testing.T) {
	m, clock := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 10, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 10, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 10, Y: z.listTop})

	// Tick from the first press: threshold has elapsed relative to the
	// first press but its sequence number is stale.
	clock.Advance(gesture.RowHoldDuration)
	send(m, longPressTickMsg{target: targetRow, seq: 1})
	assert.Equal(t, StateDashboard, m.state)

	// The second press's own tick fires.
	send(m, longPressTickMsg{target: targetRow, seq: 2})
	assert.Equal(t, StateDetail, m.state)
}

func TestPressLeavingRowDisarms(t *testing.T) {
	m, clock := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 10, Y: z.listTop})
	// Drag down onto the next row.
	send(m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 10, Y: z.listTop + z.rowHeight})

	clock.Advance(gesture.RowHoldDuration)
	send(m, longPressTickMsg{target: targetRow, seq: 1})

	assert.Equal(t, StateDashboard, m.state)
}

func TestSalaryLongPressOpensEditor(t *testing.T) {
	m, clock := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 5, Y: z.salaryTop})

	// The row threshold is not enough for the salary surface.
	clock.Advance(1000 * time.Millisecond)
	send(m, longPressTickMsg{target: targetSalary, seq: 1})
	require.Equal(t, StateDashboard, m.state)

	clock.Advance(1000 * time.Millisecond)
	send(m, longPressTickMsg{target: targetSalary, seq: 1})

	assert.Equal(t, StateSalaryEdit, m.state)
	assert.Equal(t, "1518.98", m.salaryInput.Value())
}

func TestSwipeLeftAdvancesPage(t *testing.T) {
	m, _ := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 100, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 40, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 40, Y: z.listTop})

	assert.Equal(t, 1, m.snap.Page)
	assert.Equal(t, "Parcela Notebook", m.snap.Transactions[0].Name)
}

func TestSwipeUnderThresholdKeepsPage(t *testing.T) {
	m, _ := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 100, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 60, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 60, Y: z.listTop})

	assert.Equal(t, 0, m.snap.Page)
}

func TestSwipeRightOnFirstPageIsNoOp(t *testing.T) {
	m, _ := newTestModel(t)
	z := m.zones()

	send(m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 40, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionMotion, X: 100, Y: z.listTop})
	send(m, tea.MouseMsg{Action: tea.MouseActionRelease, X: 100, Y: z.listTop})

	assert.Equal(t, 0, m.snap.Page)
}

func TestKeyboardPaging(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "l")
	assert.Equal(t, 1, m.snap.Page)

	sendKey(m, "h")
	assert.Equal(t, 0, m.snap.Page)

	// Already on the first page.
	sendKey(m, "h")
	assert.Equal(t, 0, m.snap.Page)
}

func TestAddRequiresNameAndAmount(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "a")
	require.Equal(t, StateAdd, m.state)

	// Confirm with an empty form is ignored.
	sendKey(m, "enter")
	assert.Equal(t, StateAdd, m.state)
	assert.Equal(t, 6, m.snap.FilteredCount)

	m.form.name.SetValue("Academia")
	m.form.amount.SetValue("99.90")
	sendKey(m, "enter")

	assert.Equal(t, StateDashboard, m.state)
	assert.Equal(t, 7, m.snap.FilteredCount)
}

func TestEditSavesChanges(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "enter")
	sendKey(m, "e")
	require.Equal(t, StateEdit, m.state)
	require.Equal(t, "Casamento", m.form.name.Value())

	m.form.name.SetValue("Casamento 2027")
	sendKey(m, "enter")

	assert.Equal(t, StateDashboard, m.state)
	assert.Equal(t, "Casamento 2027", m.snap.Transactions[0].Name)
}

func TestEditCancelKeepsOriginal(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "enter")
	sendKey(m, "e")
	m.form.name.SetValue("changed")
	sendKey(m, "esc")

	assert.Equal(t, StateDashboard, m.state)
	assert.Equal(t, "Casamento", m.snap.Transactions[0].Name)
}

func TestDeleteFromDetail(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "enter")
	sendKey(m, "d")

	assert.Equal(t, StateDashboard, m.state)
	assert.Equal(t, 5, m.snap.FilteredCount)
	assert.Equal(t, "Faculdade", m.snap.Transactions[0].Name)
}

func TestFilterModalTogglesLive(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "f")
	require.Equal(t, StateFilter, m.state)

	// Move to Debts and toggle it; the list narrows immediately.
	sendKey(m, "j")
	sendKey(m, "enter")
	assert.Equal(t, 4, m.snap.FilteredCount)

	sendKey(m, "esc")
	assert.Equal(t, StateDashboard, m.state)
	assert.Equal(t, 4, m.snap.FilteredCount)
	require.Len(t, m.snap.ActiveFilters, 1)
	assert.Equal(t, ledger.OptionDebts, m.snap.ActiveFilters[0])
}

func TestSearchFiltersLive(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "/")
	require.True(t, m.searchFocused)

	sendKey(m, "spot")
	require.Equal(t, 1, m.snap.FilteredCount)
	assert.Equal(t, "Spotify", m.snap.Transactions[0].Name)

	// Leaving search keeps the term applied.
	sendKey(m, "esc")
	assert.False(t, m.searchFocused)
	assert.Equal(t, 1, m.snap.FilteredCount)
}

func TestSalaryEditCommit(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "s")
	require.Equal(t, StateSalaryEdit, m.state)

	m.salaryInput.SetValue("2500")
	sendKey(m, "enter")

	assert.Equal(t, StateDashboard, m.state)
	assert.InDelta(t, 2500.0, m.snap.Salary, 1e-9)
}

func TestSalaryEditCancelKeepsValue(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "s")
	m.salaryInput.SetValue("9")
	sendKey(m, "esc")

	assert.Equal(t, StateDashboard, m.state)
	assert.InDelta(t, ledger.DefaultSalary, m.snap.Salary, 1e-9)
}

func TestCursorClampsWhenListShrinks(t *testing.T) {
	m, _ := newTestModel(t)

	sendKey(m, "j")
	sendKey(m, "j")
	require.Equal(t, 2, m.cursor)

	sendKey(m, "/")
	sendKey(m, "spot")

	assert.Equal(t, 0, m.cursor)
}

func TestDashboardViewRenders(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	assert.Contains(t, view, "José Lucas")
	assert.Contains(t, view, "$1518.98")
	assert.Contains(t, view, "Casamento")
	assert.Contains(t, view, "1 / 2")
}

func TestEmptyListView(t *testing.T) {
	store := ledger.NewStore(ledger.DefaultSalary, nil)
	m := New(Config{Store: store, Theme: themes.Default})

	assert.Contains(t, m.View(), "No transactions found")
}
