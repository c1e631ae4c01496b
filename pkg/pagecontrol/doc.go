// Package pagecontrol implements a page indicator: a horizontal row of
// small shapes, one per page, with the current page drawn in a selected
// style.
//
// Each indicator's look is configured per [VisualState]. Changes are
// coalesced and applied in [PageControl.ProcessPendingUpdates], driven by a
// [layout.PipelineOwner] once per frame. While the host's paged container
// scrolls, [PageControl.DidScroll] morphs the two indicators around the
// scroll position between their normal and selected looks.
//
// Indicators are layers on a [rendering.Surface]; paint them with
// [PageControl.Paint] or observe the surface's committed frames directly.
//
//	pc := pagecontrol.New(pagecontrol.WithOwner(owner))
//	pc.SetNumberOfPages(5)
//	pc.SetFillColor(graphics.RGBF(0, 0.5, 1, 1), pagecontrol.StateSelected)
//	detach := pc.Attach(scroller)
//	defer detach()
package pagecontrol
