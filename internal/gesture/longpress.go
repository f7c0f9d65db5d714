// Package gesture implements the press-and-hold and swipe recognizers
// behind the dashboard's pointer interactions. The recognizers are pure
// state machines driven by timestamps, so the shell owns the actual
// timers and tests never have to sleep.
package gesture

import "time"

// Thresholds for the two long-press surfaces.
const (
	// RowHoldDuration opens the transaction detail modal.
	RowHoldDuration = 1000 * time.Millisecond
	// SalaryHoldDuration opens the inline salary editor.
	SalaryHoldDuration = 2000 * time.Millisecond
)

// PressState is the phase of a long-press recognizer.
type PressState int

const (
	// PressIdle means no press is in progress.
	PressIdle PressState = iota
	// PressArmed means the surface is held and the timer is running.
	PressArmed
	// PressFired means the hold crossed the threshold.
	PressFired
)

// String returns a readable form of the state.
func (s PressState) String() string {
	switch s {
	case PressIdle:
		return "Idle"
	case PressArmed:
		return "Armed"
	case PressFired:
		return "Fired"
	default:
		return "Unknown"
	}
}

// LongPress recognizes a press held beyond a fixed threshold. Arming
// returns a sequence number; the shell schedules a deferred tick carrying
// it and calls Fire when the tick lands. Releasing or leaving the surface
// before the threshold disarms the press, and the stale tick is rejected
// by its sequence number, so no partial transition ever happens.
type LongPress struct {
	threshold time.Duration
	pressedAt time.Time
	state     PressState
	seq       int
}

// NewLongPress creates a recognizer with the given hold threshold.
func NewLongPress(threshold time.Duration) *LongPress {
	return &LongPress{threshold: threshold}
}

// Threshold returns the hold duration required to fire.
func (p *LongPress) Threshold() time.Duration {
	return p.threshold
}

// State returns the current phase.
func (p *LongPress) State() PressState {
	return p.state
}

// Press arms the recognizer at the given instant and returns the sequence
// number identifying this press. A press while already armed re-arms,
// invalidating the previous timer.
func (p *LongPress) Press(now time.Time) int {
	p.seq++
	p.state = PressArmed
	p.pressedAt = now
	return p.seq
}

// Release disarms an armed press; called on press-end and press-leave.
// Once fired, release is a no-op because the action already happened.
func (p *LongPress) Release() {
	if p.state == PressArmed {
		p.state = PressIdle
	}
}

// Fire delivers a timer tick for the press identified by seq. It reports
// whether the hold completes: the tick must belong to the current press,
// the press must still be armed, and the threshold must have elapsed.
func (p *LongPress) Fire(seq int, now time.Time) bool {
	if seq != p.seq || p.state != PressArmed {
		return false
	}
	if now.Sub(p.pressedAt) < p.threshold {
		return false
	}
	p.state = PressFired
	return true
}

// Reset returns the recognizer to idle, invalidating any pending tick.
func (p *LongPress) Reset() {
	p.seq++
	p.state = PressIdle
}
