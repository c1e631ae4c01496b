package pagecontrol

import (
	"image"
	"math"
	"slices"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
	"github.com/go-drift/pagecontrol/pkg/rendering"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

// Defaults for a new PageControl.
const (
	DefaultItemSpacing      = 7.0
	DefaultInteritemSpacing = 9.0
	DefaultLineWidth        = 1.0
)

// PageControl is a row of page indicators.
//
// Configuration setters never recompute anything: they record what is
// stale and schedule the control with its [layout.PipelineOwner]. The
// rebuild happens in ProcessPendingUpdates, normally called by the owner's
// Flush from the host's frame callback. Hosts without an owner call
// ProcessPendingUpdates themselves.
//
// DidScroll is the exception: it is called for every scroll offset change
// and writes the two indicators around the offset immediately, as one
// surface batch.
//
// A PageControl is not safe for concurrent use; drive it from one goroutine.
type PageControl struct {
	owner   *layout.PipelineOwner
	surface *rendering.Surface
	store   stateStore
	set     indicatorSet

	numberOfPages      int
	currentPage        int
	itemSpacing        float64
	interitemSpacing   float64
	lineWidth          float64
	contentInsets      layout.EdgeInsets
	alignment          HorizontalAlignment
	hidesForSinglePage bool
	bounds             graphics.Rect

	needsCreate bool
	needsUpdate bool

	pageObservers  map[int]func(int)
	nextObserverID int
}

// Option configures a PageControl at construction.
type Option func(*PageControl)

// WithOwner schedules pending updates with owner.
func WithOwner(owner *layout.PipelineOwner) Option {
	return func(pc *PageControl) { pc.owner = owner }
}

// WithSurface renders into an existing surface instead of a new one.
func WithSurface(surface *rendering.Surface) Option {
	return func(pc *PageControl) {
		if surface != nil {
			pc.surface = surface
		}
	}
}

// New returns a PageControl with no pages. The first create pass is
// already pending.
func New(opts ...Option) *PageControl {
	pc := &PageControl{
		surface:          rendering.NewSurface(),
		itemSpacing:      DefaultItemSpacing,
		interitemSpacing: DefaultInteritemSpacing,
		lineWidth:        DefaultLineWidth,
		alignment:        AlignCenter,
	}
	for _, opt := range opts {
		opt(pc)
	}
	pc.set.surface = pc.surface
	pc.store.onChange = pc.markNeedsUpdate
	pc.markNeedsCreate()
	return pc
}

// Surface returns the surface indicators are drawn on.
func (pc *PageControl) Surface() *rendering.Surface {
	return pc.surface
}

// NumberOfPages returns the page count.
func (pc *PageControl) NumberOfPages() int {
	return pc.numberOfPages
}

// SetNumberOfPages sets the page count. Negative counts become zero and the
// current page is clamped into the new range. Indicators are recreated on
// the next flush.
func (pc *PageControl) SetNumberOfPages(n int) {
	n = max(n, 0)
	if n == pc.numberOfPages {
		return
	}
	pc.numberOfPages = n
	pc.setPage(pc.currentPage)
	pc.markNeedsCreate()
}

// CurrentPage returns the selected page.
func (pc *PageControl) CurrentPage() int {
	return pc.currentPage
}

// SetCurrentPage selects a page, clamped into [0, NumberOfPages-1], and
// schedules an update.
func (pc *PageControl) SetCurrentPage(page int) {
	if pc.setPage(page) {
		pc.markNeedsUpdate()
	}
}

// commitScrolledPage records the page a scroll settled on. The indicators
// already show it, so nothing is scheduled.
func (pc *PageControl) commitScrolledPage(page int) {
	pc.setPage(page)
}

func (pc *PageControl) setPage(page int) bool {
	page = min(page, pc.numberOfPages-1)
	page = max(page, 0)
	if page == pc.currentPage {
		return false
	}
	pc.currentPage = page
	pc.notifyPageObservers()
	return true
}

// AddPageObserver registers fn to be called with the new page whenever the
// current page changes, whether set directly or committed by scrolling.
// It returns a function that removes the observer.
func (pc *PageControl) AddPageObserver(fn func(page int)) func() {
	if fn == nil {
		return func() {}
	}
	if pc.pageObservers == nil {
		pc.pageObservers = make(map[int]func(int))
	}
	id := pc.nextObserverID
	pc.nextObserverID++
	pc.pageObservers[id] = fn
	return func() {
		delete(pc.pageObservers, id)
	}
}

func (pc *PageControl) notifyPageObservers() {
	ids := make([]int, 0, len(pc.pageObservers))
	for id := range pc.pageObservers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := pc.pageObservers[id]; ok {
			fn(pc.currentPage)
		}
	}
}

// ItemSpacing returns the indicator diameter.
func (pc *PageControl) ItemSpacing() float64 {
	return pc.itemSpacing
}

// SetItemSpacing sets the indicator diameter. Non-positive values are ignored.
func (pc *PageControl) SetItemSpacing(v float64) {
	if v <= 0 || math.IsNaN(v) || v == pc.itemSpacing {
		return
	}
	pc.itemSpacing = v
	pc.markNeedsUpdate()
}

// LineWidth returns the stroke width of every indicator.
func (pc *PageControl) LineWidth() float64 {
	return pc.lineWidth
}

// SetLineWidth sets the stroke width shared by both states. Negative values
// become zero, which disables strokes.
func (pc *PageControl) SetLineWidth(w float64) {
	w = math.Max(w, 0)
	if math.IsNaN(w) || w == pc.lineWidth {
		return
	}
	pc.lineWidth = w
	pc.markNeedsUpdate()
}

// InteritemSpacing returns the gap between indicators.
func (pc *PageControl) InteritemSpacing() float64 {
	return pc.interitemSpacing
}

// SetInteritemSpacing sets the gap between indicators. Negative values
// become zero.
func (pc *PageControl) SetInteritemSpacing(v float64) {
	v = math.Max(v, 0)
	if math.IsNaN(v) || v == pc.interitemSpacing {
		return
	}
	pc.interitemSpacing = v
	pc.markNeedsUpdate()
}

// ContentInsets returns the margins around the indicator row.
func (pc *PageControl) ContentInsets() layout.EdgeInsets {
	return pc.contentInsets
}

// SetContentInsets sets the margins around the indicator row. Negative
// sides become zero.
func (pc *PageControl) SetContentInsets(insets layout.EdgeInsets) {
	insets = insets.Clamped()
	if insets == pc.contentInsets {
		return
	}
	pc.contentInsets = insets
	pc.markNeedsUpdate()
}

// HorizontalAlignment returns the row alignment.
func (pc *PageControl) HorizontalAlignment() HorizontalAlignment {
	return pc.alignment
}

// SetHorizontalAlignment sets the row alignment.
func (pc *PageControl) SetHorizontalAlignment(a HorizontalAlignment) {
	if a == pc.alignment {
		return
	}
	pc.alignment = a
	pc.markNeedsUpdate()
}

// HidesForSinglePage reports whether a control with one page or none hides.
func (pc *PageControl) HidesForSinglePage() bool {
	return pc.hidesForSinglePage
}

// SetHidesForSinglePage sets whether a control with one page or none hides.
func (pc *PageControl) SetHidesForSinglePage(v bool) {
	if v == pc.hidesForSinglePage {
		return
	}
	pc.hidesForSinglePage = v
	pc.markNeedsUpdate()
}

// Bounds returns the control's rectangle.
func (pc *PageControl) Bounds() graphics.Rect {
	return pc.bounds
}

// SetBounds sets the control's rectangle, normally from the host's layout.
func (pc *PageControl) SetBounds(r graphics.Rect) {
	if r == pc.bounds {
		return
	}
	pc.bounds = r
	pc.markNeedsUpdate()
}

// IsHidden reports whether the indicator row is hidden.
func (pc *PageControl) IsHidden() bool {
	return pc.hidesForSinglePage && pc.numberOfPages <= 1
}

// SetStrokeColor sets the outline color for state.
func (pc *PageControl) SetStrokeColor(c graphics.ColorF, state VisualState) {
	pc.store.setStrokeColor(c, state)
}

// StrokeColor returns the outline color for state, unset if none.
func (pc *PageControl) StrokeColor(state VisualState) graphics.ColorF {
	return pc.store.get(state).StrokeColor
}

// SetFillColor sets the fill color for state.
func (pc *PageControl) SetFillColor(c graphics.ColorF, state VisualState) {
	pc.store.setFillColor(c, state)
}

// FillColor returns the fill color for state, unset if none.
func (pc *PageControl) FillColor(state VisualState) graphics.ColorF {
	return pc.store.get(state).FillColor
}

// SetImage sets a bitmap drawn instead of the shape for state. Nil clears it.
func (pc *PageControl) SetImage(img image.Image, state VisualState) {
	pc.store.setImage(img, state)
}

// Image returns the bitmap for state, or nil.
func (pc *PageControl) Image(state VisualState) image.Image {
	return pc.store.get(state).Image
}

// SetAlpha sets the opacity for state.
func (pc *PageControl) SetAlpha(alpha float64, state VisualState) {
	pc.store.setAlpha(&alpha, state)
}

// Alpha returns the opacity for state, 1 if unset.
func (pc *PageControl) Alpha(state VisualState) float64 {
	if a := pc.store.get(state).Alpha; a != nil {
		return *a
	}
	return 1
}

// SetPath sets a custom outline for state. Its bounds give the indicator's
// natural size. Nil restores the default circle.
func (pc *PageControl) SetPath(p *graphics.Path, state VisualState) {
	pc.store.setPath(p, state)
}

// Path returns the custom outline for state, or nil.
func (pc *PageControl) Path(state VisualState) *graphics.Path {
	return pc.store.get(state).Path.Clone()
}

// SetTransform sets the transform applied around each indicator's center.
func (pc *PageControl) SetTransform(t graphics.Transform, state VisualState) {
	pc.store.setTransform(&t, state)
}

// ClearTransform removes the transform for state.
func (pc *PageControl) ClearTransform(state VisualState) {
	pc.store.setTransform(nil, state)
}

// Transform returns the transform for state, identity if unset.
func (pc *PageControl) Transform(state VisualState) graphics.Transform {
	if t := pc.store.get(state).Transform; t != nil {
		return *t
	}
	return graphics.IdentityTransform()
}

// SizeForNumberOfPages returns the smallest size that fits n indicators,
// one of them selected, plus the content insets.
func (pc *PageControl) SizeForNumberOfPages(n int) graphics.Size {
	insets := pc.contentInsets
	if n <= 0 {
		return graphics.Size{Width: insets.Horizontal(), Height: insets.Vertical()}
	}
	normal := pc.resolve(StateNormal).size
	selected := pc.resolve(StateSelected).size
	rest := float64(n - 1)
	return graphics.Size{
		Width:  selected.Width + rest*normal.Width + rest*pc.interitemSpacing + insets.Horizontal(),
		Height: math.Max(normal.Height, selected.Height) + insets.Vertical(),
	}
}

// Indicators returns the current state of every indicator.
func (pc *PageControl) Indicators() []IndicatorState {
	return pc.set.states()
}

// Paint draws the last committed frame onto canvas.
func (pc *PageControl) Paint(canvas graphics.Canvas) {
	rendering.PaintFrame(canvas, pc.surface.Snapshot())
}

// Attach subscribes the control to a scroll controller, applies its current
// position, and returns a function that detaches it.
func (pc *PageControl) Attach(c *scroll.Controller) func() {
	remove := c.AddListener(pc.DidScroll)
	pc.DidScroll(c.Metrics())
	return remove
}

// HasPendingUpdates reports whether a create or update pass is waiting.
func (pc *PageControl) HasPendingUpdates() bool {
	return pc.needsCreate || pc.needsUpdate
}

func (pc *PageControl) markNeedsCreate() {
	pc.needsCreate = true
	pc.schedule()
}

func (pc *PageControl) markNeedsUpdate() {
	pc.needsUpdate = true
	pc.schedule()
}

func (pc *PageControl) schedule() {
	if pc.owner != nil {
		pc.owner.Schedule(pc)
	}
}

// ProcessPendingUpdates runs the pending create and update passes as one
// surface batch. It does nothing when nothing is pending.
func (pc *PageControl) ProcessPendingUpdates() {
	if !pc.HasPendingUpdates() {
		return
	}
	create := pc.needsCreate
	pc.needsCreate = false
	pc.needsUpdate = false
	pc.surface.Batch(func() {
		if create {
			pc.set.create(pc.numberOfPages)
			pc.setPage(pc.currentPage)
		}
		pc.updateIndicators()
	})
}

func (pc *PageControl) resolve(state VisualState) resolvedStyle {
	r := pc.store.resolve(state, pc.itemSpacing)
	r.lineWidth = pc.lineWidth
	return r
}

func (pc *PageControl) contentRect() graphics.Rect {
	return pc.contentInsets.Deflate(pc.bounds)
}

func (pc *PageControl) row(normal, selected resolvedStyle) rowLayout {
	return rowLayout{
		count:     pc.set.len(),
		diameter:  pc.itemSpacing,
		spacing:   pc.interitemSpacing,
		content:   pc.contentRect(),
		alignment: pc.alignment,
		current:   pc.currentPage,
		normal:    normal.size,
		selected:  selected.size,
	}
}

// updateIndicators applies visibility, attributes and resting layout.
func (pc *PageControl) updateIndicators() {
	pc.surface.SetBounds(pc.bounds)
	hidden := pc.IsHidden()
	pc.surface.SetHidden(hidden)
	if hidden || pc.set.len() == 0 {
		return
	}
	normal := pc.resolve(StateNormal)
	selected := pc.resolve(StateSelected)
	for i, frame := range pc.row(normal, selected).frames() {
		style := normal
		if i == pc.currentPage {
			style = selected
		}
		pc.set.apply(i, style)
		pc.set.layer(i).SetFrame(frame)
	}
}

// DidScroll follows the host container's scroll position: the indicator
// under the offset and its right neighbour are resized and recolored in
// proportion to the offset, every other indicator is reset to its resting
// normal look, and the current page is committed without scheduling a
// rebuild when the offset lands exactly on a page.
func (pc *PageControl) DidScroll(m scroll.Metrics) {
	step, ok := stepFor(m, pc.set.len())
	if !ok {
		return
	}
	if pc.set.len() > 0 && !pc.surface.Hidden() {
		normal := pc.resolve(StateNormal)
		selected := pc.resolve(StateSelected)
		placed := interpolate(pc.row(normal, selected), step, normal, selected)
		pc.surface.Batch(func() {
			for i, geo := range placed {
				style := normal
				if geo.state == StateSelected {
					style = selected
				}
				pc.set.place(i, geo, style)
			}
		})
	}
	if step.rate == 0 {
		pc.commitScrolledPage(step.index)
	}
}
