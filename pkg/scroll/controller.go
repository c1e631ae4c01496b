// Package scroll models the host paging container that drives a page
// indicator: a horizontal offset plus the item geometry needed to turn
// that offset into pages.
package scroll

import (
	"math"
	"slices"
)

// Metrics is one scroll report from the paging container.
type Metrics struct {
	// Offset is the horizontal content offset.
	Offset float64
	// ItemWidth is the width of one page item; zero or negative falls back
	// to ContainerWidth.
	ItemWidth float64
	// InteritemSpacing is the gap between page items.
	InteritemSpacing float64
	// ContainerWidth is the visible width of the container.
	ContainerWidth float64
}

// PageWidth returns the distance between the starts of adjacent pages.
func (m Metrics) PageWidth() float64 {
	w := m.ItemWidth
	if w <= 0 {
		w = m.ContainerWidth
	}
	return w + m.InteritemSpacing
}

// Position splits the offset into a whole page index and the fraction of
// the way to the next page. Rate is in [0, 1). A non-positive page width
// reports ok=false.
func (m Metrics) Position() (index int, rate float64, ok bool) {
	pw := m.PageWidth()
	if pw <= 0 || math.IsNaN(m.Offset) || math.IsInf(m.Offset, 0) {
		return 0, 0, false
	}
	f := math.Floor(m.Offset / pw)
	rate = (m.Offset - pw*f) / pw
	if rate < 0 || rate >= 1 {
		// Guard against floating-point drift at exact multiples.
		rate = 0
		f = math.Round(m.Offset / pw)
	}
	return int(f), rate, true
}

// Controller is the paging container's scroll state. Listeners run
// synchronously on every offset or metrics change.
type Controller struct {
	metrics        Metrics
	pageCount      int
	listeners      map[int]func(Metrics)
	nextListenerID int
}

// NewController returns a controller with the given item geometry.
func NewController(itemWidth, interitemSpacing, containerWidth float64) *Controller {
	return &Controller{metrics: Metrics{
		ItemWidth:        itemWidth,
		InteritemSpacing: interitemSpacing,
		ContainerWidth:   containerWidth,
	}}
}

// Metrics returns the current scroll report.
func (c *Controller) Metrics() Metrics {
	return c.metrics
}

// Offset returns the current scroll offset.
func (c *Controller) Offset() float64 {
	return c.metrics.Offset
}

// SetPageCount bounds JumpTo to the scrollable range of count pages.
// Zero leaves the offset unbounded.
func (c *Controller) SetPageCount(count int) {
	c.pageCount = max(count, 0)
}

// MaxOffset returns the offset of the last page, or +Inf when unbounded.
func (c *Controller) MaxOffset() float64 {
	if c.pageCount == 0 {
		return math.Inf(1)
	}
	return c.PageOffset(c.pageCount - 1)
}

// SetMetrics replaces the item geometry, keeping the offset.
func (c *Controller) SetMetrics(itemWidth, interitemSpacing, containerWidth float64) {
	m := c.metrics
	m.ItemWidth = itemWidth
	m.InteritemSpacing = interitemSpacing
	m.ContainerWidth = containerWidth
	if m == c.metrics {
		return
	}
	c.metrics = m
	c.notifyListeners()
}

// JumpTo moves to offset, clamped to [0, MaxOffset].
func (c *Controller) JumpTo(offset float64) {
	offset = math.Min(math.Max(offset, 0), c.MaxOffset())
	if offset == c.metrics.Offset {
		return
	}
	c.metrics.Offset = offset
	c.notifyListeners()
}

// ScrollBy moves the offset by delta.
func (c *Controller) ScrollBy(delta float64) {
	c.JumpTo(c.metrics.Offset + delta)
}

// PageOffset returns the offset at which page starts.
func (c *Controller) PageOffset(page int) float64 {
	return float64(max(page, 0)) * c.metrics.PageWidth()
}

// NearestPage returns the page whose start is closest to the current offset.
func (c *Controller) NearestPage() int {
	pw := c.metrics.PageWidth()
	if pw <= 0 {
		return 0
	}
	page := int(math.Round(c.metrics.Offset / pw))
	if c.pageCount > 0 {
		page = min(page, c.pageCount-1)
	}
	return max(page, 0)
}

// AddListener registers fn for scroll changes and returns a function that
// removes it.
func (c *Controller) AddListener(fn func(Metrics)) func() {
	if fn == nil {
		return func() {}
	}
	if c.listeners == nil {
		c.listeners = make(map[int]func(Metrics))
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *Controller) notifyListeners() {
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := c.listeners[id]; ok {
			fn(c.metrics)
		}
	}
}
