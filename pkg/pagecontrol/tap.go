package pagecontrol

import "github.com/go-drift/pagecontrol/pkg/graphics"

// IndicatorAt returns the index of the indicator whose frame contains p,
// or -1. A control configured hidden reports -1 even before the next flush.
func (pc *PageControl) IndicatorAt(p graphics.Offset) int {
	if pc.IsHidden() {
		return -1
	}
	for _, st := range pc.set.states() {
		f := st.Frame
		if p.X >= f.Left && p.X < f.Right && p.Y >= f.Top && p.Y < f.Bottom {
			return st.Index
		}
	}
	return -1
}

// TapAt handles a tap at p in the control's coordinate space. A tap left of
// the selected indicator's center moves back one page and a tap right of it
// moves forward one, as long as p lies within the bounds. It reports
// whether the current page changed.
func (pc *PageControl) TapAt(p graphics.Offset) bool {
	b := pc.bounds
	if pc.IsHidden() || p.X < b.Left || p.X >= b.Right || p.Y < b.Top || p.Y >= b.Bottom {
		return false
	}
	states := pc.set.states()
	if pc.currentPage >= len(states) {
		return false
	}
	before := pc.currentPage
	if p.X < states[pc.currentPage].Frame.Center().X {
		pc.SetCurrentPage(before - 1)
	} else {
		pc.SetCurrentPage(before + 1)
	}
	return pc.currentPage != before
}
