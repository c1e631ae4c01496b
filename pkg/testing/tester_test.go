package testing

import (
	"testing"
	"time"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
)

func TestControlTester_DragSettlesOnNearestPage(t *testing.T) {
	tester := NewControlTesterWithT(t, 5)
	tester.Control.SetPath(graphics.NewRRectPath(15, 7, 3.5), pagecontrol.StateSelected)
	tester.Pump()

	tester.DragBy(-200, 4)
	if got := tester.Control.CurrentPage(); got != 0 {
		t.Errorf("page committed mid-drag: %d", got)
	}
	grown := tester.Find(ByIndex(1)).First().Frame.Width()
	if grown <= 7 {
		t.Errorf("next indicator width = %v, want it growing past 7", grown)
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := tester.Control.CurrentPage(); got != 1 {
		t.Errorf("CurrentPage() = %d, want 1", got)
	}
	if got := tester.Scroller.Offset(); got != DefaultPageWidth {
		t.Errorf("Offset() = %v, want %v", got, DefaultPageWidth)
	}
}

func TestControlTester_SwipeBackAtStartIsClamped(t *testing.T) {
	tester := NewControlTesterWithT(t, 3)
	tester.Swipe(-1)
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if tester.Control.CurrentPage() != 0 || tester.Scroller.Offset() != 0 {
		t.Errorf("page=%d offset=%v, want 0/0", tester.Control.CurrentPage(), tester.Scroller.Offset())
	}
}

func TestControlTester_HoldAtHalfway(t *testing.T) {
	tester := NewControlTesterWithT(t, 4)
	tester.Control.SetPath(graphics.NewRRectPath(15, 7, 3.5), pagecontrol.StateSelected)
	tester.Pump()

	tester.HoldAt(1.5)
	for _, i := range []int{1, 2} {
		w := tester.Find(ByIndex(i)).First().Frame.Width()
		if w <= 7 || w >= 15 {
			t.Errorf("indicator %d width = %v, want between 7 and 15", i, w)
		}
	}
	if got := tester.Find(BySize(graphics.Size{Width: 7, Height: 7})).Count(); got != 2 {
		t.Errorf("resting indicators = %d, want 2", got)
	}
}

func TestControlTester_TapMovesOnePage(t *testing.T) {
	tester := NewControlTesterWithT(t, 5)

	if err := tester.Tap(ByIndex(3)); err != nil {
		t.Fatal(err)
	}
	if got := tester.Control.CurrentPage(); got != 1 {
		t.Errorf("CurrentPage() = %d, want 1", got)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if got := tester.Scroller.Offset(); got != DefaultPageWidth {
		t.Errorf("scroll view did not follow the tap: offset %v", got)
	}
	if got := tester.Control.CurrentPage(); got != 1 {
		t.Errorf("CurrentPage() after settle = %d, want 1", got)
	}

	if err := tester.Tap(ByIndex(9)); err == nil {
		t.Error("expected error tapping a missing indicator")
	}
}

func TestControlTester_Finders(t *testing.T) {
	tester := NewControlTesterWithT(t, 4)
	tester.Control.SetCurrentPage(2)
	tester.Pump()

	selected := tester.Find(ByFill(pagecontrol.DefaultSelectedFill))
	if selected.Count() != 1 || selected.First().Index != 2 {
		t.Errorf("selected = %+v", selected.All())
	}
	center := tester.Find(ByIndex(2)).First().Frame.Center()
	if got := tester.Find(ByContainingPoint(center)); !got.Exists() || got.At(0).Index != 2 {
		t.Errorf("point finder = %+v", got.All())
	}
	if tester.Find(ByIndex(7)).Exists() {
		t.Error("expected no match for index 7")
	}
}

func TestControlTester_PumpCoalescesFrames(t *testing.T) {
	tester := NewControlTesterWithT(t, 3)
	before := tester.FrameRequests()

	tester.Control.SetItemSpacing(12)
	tester.Control.SetInteritemSpacing(4)
	tester.Control.SetCurrentPage(1)

	if got := tester.FrameRequests() - before; got != 1 {
		t.Errorf("frame requests = %d, want 1", got)
	}
	if n := tester.Pump(); n != 1 {
		t.Errorf("Pump processed %d, want 1", n)
	}
	if n := tester.Pump(); n != 0 {
		t.Errorf("second Pump processed %d, want 0", n)
	}
}

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()
	if got := clk.Advance(FrameInterval); got.Sub(start) != FrameInterval {
		t.Errorf("Advance returned %v after %v", got, start)
	}
}
