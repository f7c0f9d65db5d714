package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joselucas77/poupix/internal/gesture"
)

// pressTarget identifies which surface a long-press timer belongs to.
type pressTarget int

const (
	targetRow pressTarget = iota
	targetSalary
)

// longPressTickMsg is the deferred timer tick for an armed long-press.
// seq ties the tick to the press that scheduled it; a tick from a press
// that was released or superseded is discarded.
type longPressTickMsg struct {
	target pressTarget
	seq    int
}

// armLongPress schedules the tick that completes a hold on the given
// surface.
func armLongPress(target pressTarget, seq int, threshold time.Duration) tea.Cmd {
	return tea.Tick(threshold, func(time.Time) tea.Msg {
		return longPressTickMsg{target: target, seq: seq}
	})
}

// rowHold and salaryHold build the recognizers with their spec'd
// thresholds.
func rowHold() *gesture.LongPress {
	return gesture.NewLongPress(gesture.RowHoldDuration)
}

func salaryHold() *gesture.LongPress {
	return gesture.NewLongPress(gesture.SalaryHoldDuration)
}
