package testing

import (
	"fmt"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

// DragBy simulates a finger drag across the scroll view by delta, split
// into steps moves. A negative delta drags content left, toward later
// pages. The scroll view snaps to the nearest page on release; pump
// frames to run the snap.
func (t *ControlTester) DragBy(delta float64, steps int) {
	t.settler.Stop()
	steps = max(steps, 1)
	for range steps {
		t.Scroller.ScrollBy(-delta / float64(steps))
	}
	t.settler.SettleToNearest(t.clock.Now())
}

// Swipe drags by whole pages. Positive pages move forward.
func (t *ControlTester) Swipe(pages float64) {
	t.DragBy(-pages*t.Scroller.Metrics().PageWidth(), 8)
}

// HoldAt scrolls to a fractional page position without snapping, as if
// the finger stayed down.
func (t *ControlTester) HoldAt(position float64) {
	t.settler.Stop()
	t.Scroller.JumpTo(position * t.Scroller.Metrics().PageWidth())
}

// Tap simulates a tap at the center of the first indicator matched by
// finder.
func (t *ControlTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no indicators: %s", finder.Description())
	}
	t.TapAt(result.First().Frame.Center())
	return nil
}

// TapAt simulates a tap at pos. When the control changes page, the scroll
// view follows by settling onto it.
func (t *ControlTester) TapAt(pos graphics.Offset) bool {
	if !t.Control.TapAt(pos) {
		return false
	}
	t.settler.SettleToPage(t.Control.CurrentPage(), t.clock.Now())
	return true
}
