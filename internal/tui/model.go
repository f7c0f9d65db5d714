// Package tui implements the terminal dashboard: a thin renderer over
// the ledger store plus the gesture and form state driving it.
package tui

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joselucas77/poupix/internal/common"
	"github.com/joselucas77/poupix/internal/gesture"
	"github.com/joselucas77/poupix/internal/ledger"
	"github.com/joselucas77/poupix/internal/tui/themes"
)

// State is the active UI surface. Exactly one is active at a time.
type State int

const (
	// StateDashboard is the main list view.
	StateDashboard State = iota
	// StateDetail shows the options modal for a selected transaction.
	StateDetail
	// StateEdit edits the selected transaction's fields.
	StateEdit
	// StateSalaryEdit edits the salary inline.
	StateSalaryEdit
	// StateAdd shows the new-transaction form.
	StateAdd
	// StateFilter shows the filter modal.
	StateFilter
	// StateHelp shows the help overlay.
	StateHelp
)

// Config holds the dependencies for the dashboard model.
type Config struct {
	Store *ledger.Store
	Theme themes.Theme
	// Now overrides the clock used by the gesture recognizers; tests
	// inject a fake, production uses time.Now.
	Now func() time.Time
}

// Model holds the dashboard TUI state.
type Model struct {
	store *ledger.Store
	now   func() time.Time

	theme  themes.Theme
	keymap KeyMap

	snap       ledger.Snapshot
	state      State
	cursor     int // row index within the current page
	selectedID string

	searchInput   textinput.Model
	searchFocused bool

	form        transactionForm
	salaryInput textinput.Model

	rowPress     *gesture.LongPress
	salaryPress  *gesture.LongPress
	pressedRowID string
	swipe        gesture.Swipe

	filterCursor int

	width    int
	height   int
	quitting bool
}

// New creates the dashboard model over a ledger store.
func New(cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "Search transactions..."
	search.Prompt = "/ "
	search.CharLimit = 50

	salary := textinput.New()
	salary.CharLimit = 20
	salary.Prompt = "$ "

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	m := Model{
		store:       cfg.Store,
		now:         now,
		theme:       cfg.Theme,
		keymap:      DefaultKeyMap(),
		state:       StateDashboard,
		searchInput: search,
		salaryInput: salary,
		rowPress:    rowHold(),
		salaryPress: salaryHold(),
		width:       80,
		height:      24,
	}
	m.snap = cfg.Store.Snapshot()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchInput.Width = min(40, max(20, m.width-30))

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case longPressTickMsg:
		cmds = append(cmds, m.handleLongPressTick(msg))
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// refresh recomputes the derived view and keeps the row cursor in range.
func (m *Model) refresh() {
	m.snap = m.store.Snapshot()
	if m.cursor > len(m.snap.Transactions)-1 {
		m.cursor = max(0, len(m.snap.Transactions)-1)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch m.state {
	case StateDashboard:
		return m.updateDashboard(msg)
	case StateDetail:
		return m.updateDetail(msg)
	case StateEdit:
		return m.updateEdit(msg)
	case StateSalaryEdit:
		return m.updateSalaryEdit(msg)
	case StateAdd:
		return m.updateAdd(msg)
	case StateFilter:
		return m.updateFilter(msg)
	case StateHelp:
		return m.updateHelp(msg)
	}
	return nil
}

func (m *Model) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	if m.searchFocused {
		switch {
		case key.Matches(msg, m.keymap.Cancel), key.Matches(msg, m.keymap.Confirm):
			m.searchFocused = false
			m.searchInput.Blur()
		default:
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.store.SetSearch(m.searchInput.Value())
			return cmd
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp

	case key.Matches(msg, m.keymap.Search):
		m.searchFocused = true
		m.searchInput.Focus()
		return textinput.Blink

	case key.Matches(msg, m.keymap.Filter):
		m.filterCursor = 0
		m.state = StateFilter

	case key.Matches(msg, m.keymap.ClearFilters):
		m.store.ClearFilters()

	case key.Matches(msg, m.keymap.Add):
		m.form = newTransactionForm(true)
		m.state = StateAdd
		return textinput.Blink

	case key.Matches(msg, m.keymap.Salary):
		m.openSalaryEditor()
		return textinput.Blink

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.snap.Transactions)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.PrevPage):
		m.store.PrevPage()

	case key.Matches(msg, m.keymap.NextPage):
		m.store.NextPage()

	case key.Matches(msg, m.keymap.Select):
		if m.cursor < len(m.snap.Transactions) {
			m.openDetail(m.snap.Transactions[m.cursor].ID)
		}
	}
	return nil
}

func (m *Model) updateDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closeModal()

	case key.Matches(msg, m.keymap.Delete):
		id := m.selectedID
		m.closeModal()
		if m.store.RemoveTransaction(id) {
			common.LogDebug("transaction deleted", common.Fields{"id": id})
		}

	case key.Matches(msg, m.keymap.Edit), key.Matches(msg, m.keymap.Select):
		t, ok := m.store.Transaction(m.selectedID)
		if !ok {
			m.closeModal()
			return nil
		}
		m.form = newTransactionForm(false)
		m.form.prefill(t)
		m.state = StateEdit
		return textinput.Blink
	}
	return nil
}

func (m *Model) updateEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closeModal()

	case key.Matches(msg, m.keymap.Confirm):
		id := m.selectedID
		patch := m.form.patch()
		m.closeModal()
		m.store.UpdateTransaction(id, patch)

	case key.Matches(msg, m.keymap.NextField):
		m.form.nextField()
	case key.Matches(msg, m.keymap.PrevField):
		m.form.prevField()

	default:
		return m.form.Update(msg)
	}
	return nil
}

func (m *Model) updateSalaryEdit(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		// Discard the scratch input; the committed salary still shows.
		m.state = StateDashboard

	case key.Matches(msg, m.keymap.Confirm):
		m.store.SetSalary(m.salaryInput.Value())
		m.state = StateDashboard

	default:
		var cmd tea.Cmd
		m.salaryInput, cmd = m.salaryInput.Update(msg)
		return cmd
	}
	return nil
}

func (m *Model) updateAdd(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.closeModal()

	case key.Matches(msg, m.keymap.Confirm):
		// Ignored until both name and amount have input.
		if !m.form.canSubmit() {
			return nil
		}
		if t, ok := m.store.AddTransaction(m.form.draft()); ok {
			common.LogDebug("transaction added", common.Fields{"id": t.ID, "name": t.Name})
		}
		m.closeModal()

	case key.Matches(msg, m.keymap.NextField):
		m.form.nextField()
	case key.Matches(msg, m.keymap.PrevField):
		m.form.prevField()

	default:
		return m.form.Update(msg)
	}
	return nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) tea.Cmd {
	options := filterOptions()

	switch {
	case key.Matches(msg, m.keymap.Cancel), key.Matches(msg, m.keymap.Filter), key.Matches(msg, m.keymap.Add):
		// "Apply" just dismisses; toggles already took effect live.
		m.state = StateDashboard

	case key.Matches(msg, m.keymap.Up):
		if m.filterCursor > 0 {
			m.filterCursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.filterCursor < len(options)-1 {
			m.filterCursor++
		}

	case key.Matches(msg, m.keymap.ClearFilters):
		m.store.ClearFilters()

	case key.Matches(msg, m.keymap.Select):
		m.store.ToggleFilter(options[m.filterCursor])
	}
	return nil
}

func (m *Model) updateHelp(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Cancel),
		key.Matches(msg, m.keymap.Help),
		key.Matches(msg, m.keymap.Quit):
		m.state = StateDashboard
	}
	return nil
}

// filterOptions returns the modal entries in display order.
func filterOptions() []ledger.Option {
	return []ledger.Option{
		ledger.OptionAll,
		ledger.OptionDebts,
		ledger.OptionGoals,
		ledger.OptionOneTime,
		ledger.OptionMonthly,
	}
}

func (m *Model) openDetail(id string) {
	if _, ok := m.store.Transaction(id); !ok {
		return
	}
	m.selectedID = id
	m.state = StateDetail
}

func (m *Model) openSalaryEditor() {
	m.salaryInput.SetValue(strconv.FormatFloat(m.store.Salary(), 'f', -1, 64))
	m.salaryInput.Focus()
	m.salaryInput.CursorEnd()
	m.state = StateSalaryEdit
}

func (m *Model) closeModal() {
	m.state = StateDashboard
	m.selectedID = ""
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.state != StateDashboard {
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		z := m.zones()
		if z.inSalary(msg.Y) {
			seq := m.salaryPress.Press(m.now())
			return armLongPress(targetSalary, seq, m.salaryPress.Threshold())
		}
		if row, ok := z.rowAt(msg.Y, len(m.snap.Transactions)); ok {
			m.cursor = row
			m.pressedRowID = m.snap.Transactions[row].ID
			m.swipe.Start(msg.X)
			seq := m.rowPress.Press(m.now())
			return armLongPress(targetRow, seq, m.rowPress.Threshold())
		}

	case tea.MouseActionMotion:
		m.swipe.Move(msg.X)
		z := m.zones()
		if m.rowPress.State() == gesture.PressArmed {
			row, ok := z.rowAt(msg.Y, len(m.snap.Transactions))
			if !ok || m.snap.Transactions[row].ID != m.pressedRowID {
				m.rowPress.Release()
			}
		}
		if m.salaryPress.State() == gesture.PressArmed && !z.inSalary(msg.Y) {
			m.salaryPress.Release()
		}

	case tea.MouseActionRelease:
		m.rowPress.Release()
		m.salaryPress.Release()
		switch m.swipe.End() {
		case gesture.SwipeLeft:
			m.store.NextPage()
		case gesture.SwipeRight:
			m.store.PrevPage()
		}
	}
	return nil
}

func (m *Model) handleLongPressTick(msg longPressTickMsg) tea.Cmd {
	if m.state != StateDashboard {
		return nil
	}

	switch msg.target {
	case targetRow:
		if m.rowPress.Fire(msg.seq, m.now()) {
			m.rowPress.Reset()
			m.swipe.Cancel()
			m.openDetail(m.pressedRowID)
		}
	case targetSalary:
		if m.salaryPress.Fire(msg.seq, m.now()) {
			m.salaryPress.Reset()
			m.openSalaryEditor()
			return textinput.Blink
		}
	}
	return nil
}
