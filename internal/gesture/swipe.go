package gesture

// SwipeThreshold is the net horizontal displacement, in cells, a drag
// must cross to count as a page swipe.
const SwipeThreshold = 50

// SwipeDirection is the outcome of a completed horizontal drag.
type SwipeDirection int

const (
	// SwipeNone means the drag stayed under the threshold.
	SwipeNone SwipeDirection = iota
	// SwipeLeft advances to the next page.
	SwipeLeft
	// SwipeRight retreats to the previous page.
	SwipeRight
)

// Swipe tracks one horizontal drag across the transaction list surface.
// Only press-start and the latest position matter; the direction is
// decided once, on release.
type Swipe struct {
	startX int
	lastX  int
	active bool
}

// Start begins tracking at the press x-coordinate.
func (s *Swipe) Start(x int) {
	s.active = true
	s.startX = x
	s.lastX = x
}

// Move records the current drag position. Ignored when no drag is active.
func (s *Swipe) Move(x int) {
	if s.active {
		s.lastX = x
	}
}

// Active reports whether a drag is in progress.
func (s *Swipe) Active() bool {
	return s.active
}

// End finishes the drag and returns its direction. A displacement of more
// than SwipeThreshold leftward is SwipeLeft, rightward is SwipeRight, and
// anything smaller is SwipeNone.
func (s *Swipe) End() SwipeDirection {
	if !s.active {
		return SwipeNone
	}
	distance := s.startX - s.lastX
	s.active = false

	switch {
	case distance > SwipeThreshold:
		return SwipeLeft
	case distance < -SwipeThreshold:
		return SwipeRight
	default:
		return SwipeNone
	}
}

// Cancel abandons the drag without producing a direction.
func (s *Swipe) Cancel() {
	s.active = false
}
