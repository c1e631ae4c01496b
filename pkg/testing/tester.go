package testing

import (
	"errors"
	"time"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

const (
	// DefaultTestWidth is the default width of the control's bounds.
	DefaultTestWidth = 200
	// DefaultTestHeight is the default height of the control's bounds.
	DefaultTestHeight = 40
	// DefaultPageWidth is the default width of one page in the simulated
	// scroll view.
	DefaultPageWidth = 320
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: scroll did not settle")

// Cleaner is the subset of *testing.T used to register cleanup.
type Cleaner interface {
	Cleanup(func())
}

// ControlTester hosts a PageControl in a simulated paging scroll view.
// It owns the pipeline the control schedules with, the scroll controller
// the control is attached to, and a fake clock for settle animations.
type ControlTester struct {
	Control  *pagecontrol.PageControl
	Owner    *layout.PipelineOwner
	Scroller *scroll.Controller

	clock    *FakeClock
	settler  *scroll.Settler
	detach   func()
	requests int
}

// NewControlTester creates a tester with pages pages, default bounds and
// the first flush already pumped. Call Cleanup when done, or use
// NewControlTesterWithT instead.
func NewControlTester(pages int, opts ...pagecontrol.Option) *ControlTester {
	t := &ControlTester{
		Owner:    &layout.PipelineOwner{},
		Scroller: scroll.NewController(DefaultPageWidth, 0, DefaultPageWidth),
		clock:    NewFakeClock(),
	}
	t.Owner.OnNeedsFlush = func() { t.requests++ }
	t.Control = pagecontrol.New(append([]pagecontrol.Option{pagecontrol.WithOwner(t.Owner)}, opts...)...)
	t.Control.SetBounds(graphics.RectFromLTWH(0, 0, DefaultTestWidth, DefaultTestHeight))
	t.settler = scroll.NewSettler(t.Scroller, scroll.DefaultSettleDuration)
	t.SetPageCount(pages)
	t.Pump()
	t.detach = t.Control.Attach(t.Scroller)
	return t
}

// NewControlTesterWithT creates a tester that detaches itself when the
// test finishes.
func NewControlTesterWithT(tb Cleaner, pages int, opts ...pagecontrol.Option) *ControlTester {
	t := NewControlTester(pages, opts...)
	tb.Cleanup(t.Cleanup)
	return t
}

// Cleanup detaches the control from the scroll controller.
func (t *ControlTester) Cleanup() {
	if t.detach != nil {
		t.detach()
		t.detach = nil
	}
	t.settler.Stop()
}

// Clock returns the fake clock driving settle animations.
func (t *ControlTester) Clock() *FakeClock {
	return t.clock
}

// SetPageCount changes the number of pages in both the control and the
// scroll view.
func (t *ControlTester) SetPageCount(pages int) {
	t.Control.SetNumberOfPages(pages)
	t.Scroller.SetPageCount(pages)
}

// SetSize resizes the control's bounds.
func (t *ControlTester) SetSize(size graphics.Size) {
	t.Control.SetBounds(graphics.RectFromOriginSize(graphics.Offset{}, size))
}

// FrameRequests returns how many times the pipeline asked for a frame.
func (t *ControlTester) FrameRequests() int {
	return t.requests
}

// Pump flushes pending control updates and returns how many objects were
// processed.
func (t *ControlTester) Pump() int {
	return t.Owner.Flush()
}

// PumpFrame advances the clock by one frame, steps any settle animation
// and flushes. It reports whether the settle animation is still running.
func (t *ControlTester) PumpFrame() bool {
	now := t.clock.Advance(FrameInterval)
	running := t.settler.Tick(now)
	t.Pump()
	return running
}

// PumpAndSettle pumps frames until no settle animation is running and
// nothing is pending, or until timeout of fake time has passed.
func (t *ControlTester) PumpAndSettle(timeout time.Duration) error {
	deadline := t.clock.Now().Add(timeout)
	for {
		running := t.PumpFrame()
		if !running && !t.Owner.NeedsFlush() {
			return nil
		}
		if !t.clock.Now().Before(deadline) {
			return ErrSettleTimeout
		}
	}
}
