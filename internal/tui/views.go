package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joselucas77/poupix/internal/gesture"
	"github.com/joselucas77/poupix/internal/tui/viewmodel"
)

const contentWidth = 60

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateDetail:
		return m.renderDetail()
	case StateEdit:
		return m.renderTransactionForm("Edit transaction")
	case StateAdd:
		return m.renderTransactionForm("New transaction")
	case StateFilter:
		return m.renderFilterModal()
	case StateHelp:
		return m.renderHelp()
	default:
		return m.renderDashboard()
	}
}

func (m Model) renderDashboard() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderSalary(),
		m.renderSummary(),
		m.renderSearchRow(),
		m.renderListHeading(),
		m.renderList(),
		"",
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Faint.Render("Welcome back"),
		m.theme.Title.Render("José Lucas"),
		"",
	)
}

func (m Model) renderSalary() string {
	label := m.theme.Faint.Render("Monthly salary")

	if m.state == StateSalaryEdit {
		hint := m.theme.Faint.Render("Enter to save, Esc to cancel")
		return lipgloss.JoinVertical(lipgloss.Left, label, m.salaryInput.View(), hint, "")
	}

	value := m.theme.Salary.Render(viewmodel.FormatAmount(m.snap.Salary))
	hold := m.theme.Faint.Render("(hold to edit, or press s)")
	return lipgloss.JoinVertical(lipgloss.Left, label, value+" "+hold, "")
}

func (m Model) renderSummary() string {
	summary := viewmodel.NewSummary(m.snap.Totals)

	remainingStyle := m.theme.Positive
	if summary.Overspent {
		remainingStyle = m.theme.Negative
	}

	cell := func(value, label string, style lipgloss.Style) string {
		return lipgloss.JoinVertical(
			lipgloss.Center,
			style.Render(value),
			m.theme.Faint.Render(label),
		)
	}

	divider := m.theme.Faint.Render(" │ ")
	card := m.theme.RoundedBox.Render(lipgloss.JoinHorizontal(
		lipgloss.Center,
		cell(summary.Debts, "Debts", m.theme.Bold),
		divider,
		cell(summary.Goals, "Goals", m.theme.Bold),
		divider,
		cell(summary.Remaining, "Remaining", remainingStyle),
	))

	return lipgloss.JoinVertical(lipgloss.Left, card, "")
}

func (m Model) renderSearchRow() string {
	row := m.searchInput.View() + "  " + m.theme.Faint.Render("[f] filter")

	badges := viewmodel.FilterBadges(m.snap)
	if len(badges) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, row, "")
	}

	rendered := make([]string, 0, len(badges)+1)
	for _, b := range badges {
		rendered = append(rendered, m.theme.BadgeFilter.Render(b))
	}
	rendered = append(rendered, m.theme.Faint.Render("[c] clear filters"))
	return lipgloss.JoinVertical(lipgloss.Left, row, strings.Join(rendered, " "), "")
}

func (m Model) renderListHeading() string {
	pager := viewmodel.NewPager(m.snap)

	prev := "‹"
	if !pager.CanPrev {
		prev = m.theme.Disabled.Render("‹")
	}
	next := "›"
	if !pager.CanNext {
		next = m.theme.Disabled.Render("›")
	}

	title := m.theme.Title.Render("Summary")
	indicator := fmt.Sprintf("%s %s %s", prev, m.theme.Subtitle.Render(pager.Label), next)
	gap := contentWidth - lipgloss.Width(title) - lipgloss.Width(indicator)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + indicator
}

func (m Model) renderList() string {
	if len(m.snap.Transactions) == 0 {
		return m.theme.Box.Render(m.theme.Faint.Render("No transactions found"))
	}

	rows := make([]string, 0, len(m.snap.Transactions))
	for i, t := range m.snap.Transactions {
		rows = append(rows, m.renderRow(viewmodel.NewTransactionItem(t, i == m.cursor)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderRow(item viewmodel.TransactionItemView) string {
	icon := m.theme.IconCircle.Render("(" + item.Icon + ")")
	name := m.theme.Bold.Render(viewmodel.TruncateString(item.Name, 28))

	installment := m.theme.BadgeOneTime
	installmentLabel := "one-time"
	if item.IsMonthly {
		installment = m.theme.BadgeMonthly
		installmentLabel = "monthly"
	}

	category := m.theme.BadgeDebt
	if item.IsGoal {
		category = m.theme.BadgeGoal
	}

	left := icon + " " + name
	line1 := left + lipgloss.PlaceHorizontal(
		max(1, contentWidth-4-lipgloss.Width(left)),
		lipgloss.Right,
		m.theme.Bold.Render(item.Amount),
	)
	line2 := "     " + m.theme.Faint.Render(item.Date) +
		installment.Render(installmentLabel) +
		category.Render(item.Category)

	box := m.theme.RoundedBox.Width(contentWidth - 2)
	if item.IsSelected {
		box = box.BorderForeground(m.theme.Primary)
	}
	return box.Render(line1 + "\n" + line2)
}

func (m Model) renderFooter() string {
	var hints []string
	for _, b := range m.keymap.ShortHelp() {
		hints = append(hints, fmt.Sprintf("[%s] %s", b.Help().Key, b.Help().Desc))
	}
	return m.theme.Faint.Render(strings.Join(hints, "  "))
}

func (m Model) renderDetail() string {
	t, ok := m.store.Transaction(m.selectedID)
	if !ok {
		return m.renderDashboard()
	}
	item := viewmodel.NewTransactionItem(t, false)

	installmentLabel := "one-time"
	if item.IsMonthly {
		installmentLabel = "monthly"
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Options"),
		"",
		m.theme.IconCircle.Render("("+item.Icon+")")+" "+m.theme.Bold.Render(item.Name),
		m.theme.Faint.Render(item.Date)+"  "+item.Amount+"  "+installmentLabel,
		"",
		"[e] edit    [d] delete    [esc] close",
	)

	return m.centered(m.theme.BorderedBox.Render(content))
}

func (m Model) renderTransactionForm(title string) string {
	fieldLabel := func(field formField, label string) string {
		if m.form.focus == field {
			return m.theme.Selected.Render(" " + label + " ")
		}
		return m.theme.Faint.Render(" " + label + " ")
	}

	toggle := func(active bool, label string) string {
		if active {
			return m.theme.Selected.Render(" " + label + " ")
		}
		return m.theme.Faint.Render(" " + label + " ")
	}

	lines := []string{
		m.theme.Title.Render(title),
		"",
		fieldLabel(fieldName, "Name"),
		m.form.name.View(),
		fieldLabel(fieldAmount, "Amount"),
		m.form.amount.View(),
		fieldLabel(fieldDate, "Date"),
		m.form.date.View(),
	}

	if m.form.withCategory {
		lines = append(lines,
			fieldLabel(fieldCategory, "Category"),
			toggle(m.form.category == "Debt", "Debt")+" "+toggle(m.form.category == "Goal", "Goal"),
		)
	}

	lines = append(lines,
		fieldLabel(fieldInstallment, "Installment"),
		toggle(m.form.installment == "OneTime", "One-time")+" "+toggle(m.form.installment == "Monthly", "Monthly"),
		"",
	)

	confirm := "[enter] save    [esc] cancel"
	if m.state == StateAdd {
		confirm = "[enter] add    [esc] cancel"
		if !m.form.canSubmit() {
			confirm = m.theme.Disabled.Render("[enter] add") + "    [esc] cancel"
		}
	}
	lines = append(lines, confirm)

	return m.centered(m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Model) renderFilterModal() string {
	filters := m.store.Filters()

	lines := []string{
		m.theme.Title.Render("Filter transactions"),
		"",
	}

	for i, o := range filterOptions() {
		label := o.String()
		var entry string
		switch {
		case filters.Disabled(o):
			entry = m.theme.Disabled.Render("  " + label)
		case filters.Has(o):
			entry = m.theme.Selected.Render(" ● " + label + " ")
		default:
			entry = m.theme.Normal.Render("  " + label)
		}
		if i == m.filterCursor {
			entry = "> " + entry
		} else {
			entry = "  " + entry
		}
		lines = append(lines, entry)
	}

	lines = append(lines, "", "[enter] toggle    [c] clear    [a/esc] apply")

	return m.centered(m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Model) renderHelp() string {
	lines := []string{
		m.theme.Title.Render("Help"),
		"",
	}

	for _, group := range m.keymap.FullHelp() {
		for _, b := range group {
			lines = append(lines, fmt.Sprintf("%-14s %s", b.Help().Key, m.theme.Faint.Render(b.Help().Desc)))
		}
		lines = append(lines, "")
	}

	lines = append(lines,
		m.theme.Subtitle.Render("Mouse"),
		m.theme.Faint.Render(fmt.Sprintf("hold a row %v to open it", gesture.RowHoldDuration)),
		m.theme.Faint.Render(fmt.Sprintf("hold the salary %v to edit it", gesture.SalaryHoldDuration)),
		m.theme.Faint.Render(fmt.Sprintf("drag the list more than %d cells to change page", gesture.SwipeThreshold)),
	)

	return m.centered(m.theme.BorderedBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// hitZones maps terminal coordinates back to the dashboard surfaces the
// pointer gestures act on. It is derived from the same section renderers
// the dashboard view uses, so the two cannot drift apart.
type hitZones struct {
	salaryTop    int
	salaryBottom int
	listTop      int
	rowHeight    int
}

func (m *Model) zones() hitZones {
	headerH := lipgloss.Height(m.renderHeader())
	salaryH := lipgloss.Height(m.renderSalary())
	preList := headerH + salaryH +
		lipgloss.Height(m.renderSummary()) +
		lipgloss.Height(m.renderSearchRow()) +
		lipgloss.Height(m.renderListHeading())

	rowHeight := 4
	if len(m.snap.Transactions) > 0 {
		rowHeight = lipgloss.Height(m.renderRow(viewmodel.NewTransactionItem(m.snap.Transactions[0], false)))
	}

	return hitZones{
		salaryTop:    headerH,
		salaryBottom: headerH + salaryH - 2, // exclude the section's trailing blank line
		listTop:      preList,
		rowHeight:    rowHeight,
	}
}

func (z hitZones) inSalary(y int) bool {
	return y >= z.salaryTop && y <= z.salaryBottom
}

func (z hitZones) rowAt(y, rows int) (int, bool) {
	if rows == 0 || y < z.listTop {
		return 0, false
	}
	idx := (y - z.listTop) / z.rowHeight
	if idx >= rows {
		return 0, false
	}
	return idx, true
}
