// Package testing drives a page control the way a host app would, without
// a real scroll view or screen.
//
// # Quick Start
//
// Create a tester, scroll, and assert on the indicators:
//
//	func TestSwipe(t *testing.T) {
//	    tester := pctest.NewControlTesterWithT(t, 5)
//
//	    tester.DragBy(-200, 8)
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//
//	    if tester.Control.CurrentPage() != 1 {
//	        t.Errorf("page = %d", tester.Control.CurrentPage())
//	    }
//	    dot := tester.Find(pctest.ByIndex(1)).First()
//	    ...
//	}
//
// # Snapshot Testing
//
// Capture and compare committed surface frames:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/five_pages.snapshot.json")
//
// Update snapshots with:
//
//	PAGECONTROL_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Settling after a drag runs on a fake clock, one frame per PumpFrame:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.PumpFrame()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import pctest "github.com/go-drift/pagecontrol/pkg/testing"
package testing
