package testing

import (
	"fmt"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
)

// Finder selects indicators.
type Finder interface {
	// Evaluate returns the matching indicators in index order.
	Evaluate(indicators []pagecontrol.IndicatorState) []pagecontrol.IndicatorState
	// Description returns a human-readable description for error messages.
	Description() string
}

// FinderResult wraps finder results with convenient accessors.
type FinderResult struct {
	matches []pagecontrol.IndicatorState
	finder  Finder
}

func (r FinderResult) describe() string {
	if r.finder == nil {
		return "unknown"
	}
	return r.finder.Description()
}

// First returns the first match. Panics if no matches.
func (r FinderResult) First() pagecontrol.IndicatorState {
	if len(r.matches) == 0 {
		panic(fmt.Sprintf("Finder found no indicators: %s", r.describe()))
	}
	return r.matches[0]
}

// At returns the match at index. Panics if out of range.
func (r FinderResult) At(index int) pagecontrol.IndicatorState {
	if index < 0 || index >= len(r.matches) {
		panic(fmt.Sprintf("Finder index %d out of range (found %d): %s", index, len(r.matches), r.describe()))
	}
	return r.matches[index]
}

// All returns all matches in index order.
func (r FinderResult) All() []pagecontrol.IndicatorState {
	return r.matches
}

// Count returns the number of matches.
func (r FinderResult) Count() int {
	return len(r.matches)
}

// Exists reports whether anything matched.
func (r FinderResult) Exists() bool {
	return len(r.matches) > 0
}

// Find evaluates finder against the control's current indicators.
func (t *ControlTester) Find(finder Finder) FinderResult {
	return FinderResult{matches: finder.Evaluate(t.Control.Indicators()), finder: finder}
}

type predicateFinder struct {
	desc string
	fn   func(pagecontrol.IndicatorState) bool
}

func (f predicateFinder) Evaluate(indicators []pagecontrol.IndicatorState) []pagecontrol.IndicatorState {
	var out []pagecontrol.IndicatorState
	for _, ind := range indicators {
		if f.fn(ind) {
			out = append(out, ind)
		}
	}
	return out
}

func (f predicateFinder) Description() string {
	return f.desc
}

// ByPredicate matches indicators for which fn returns true.
func ByPredicate(description string, fn func(pagecontrol.IndicatorState) bool) Finder {
	return predicateFinder{desc: description, fn: fn}
}

// ByIndex matches the indicator for page index.
func ByIndex(index int) Finder {
	return ByPredicate(fmt.Sprintf("index %d", index), func(s pagecontrol.IndicatorState) bool {
		return s.Index == index
	})
}

// ByFill matches indicators whose fill equals c.
func ByFill(c graphics.ColorF) Finder {
	return ByPredicate(fmt.Sprintf("fill %v", c), func(s pagecontrol.IndicatorState) bool {
		return s.Fill.Equal(c)
	})
}

// BySize matches indicators whose frame has exactly size.
func BySize(size graphics.Size) Finder {
	return ByPredicate(fmt.Sprintf("size %vx%v", size.Width, size.Height), func(s pagecontrol.IndicatorState) bool {
		return s.Frame.Size() == size
	})
}

// ByContainingPoint matches indicators whose frame contains p.
func ByContainingPoint(p graphics.Offset) Finder {
	return ByPredicate(fmt.Sprintf("containing (%v, %v)", p.X, p.Y), func(s pagecontrol.IndicatorState) bool {
		f := s.Frame
		return p.X >= f.Left && p.X < f.Right && p.Y >= f.Top && p.Y < f.Bottom
	})
}
