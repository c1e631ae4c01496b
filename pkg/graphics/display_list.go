package graphics

import "image"

// DisplayList is a recorded, immutable sequence of canvas calls. Replaying
// it onto a canvas issues the same calls in the same order.
type DisplayList struct {
	ops  []func(Canvas)
	size Size
}

// Paint replays the list onto canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op(canvas)
	}
}

// Size returns the canvas size the list was recorded at.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded calls.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// PictureRecorder captures canvas calls for later replay. Calls made on
// the canvas after EndRecording are dropped.
type PictureRecorder struct {
	ops       []func(Canvas)
	size      Size
	recording bool
}

// BeginRecording discards anything recorded so far and returns a canvas
// whose calls are captured.
func (r *PictureRecorder) BeginRecording(size Size) Canvas {
	r.ops = nil
	r.size = size
	r.recording = true
	return &recordingCanvas{r}
}

// EndRecording stops capturing and returns what was recorded.
func (r *PictureRecorder) EndRecording() *DisplayList {
	list := &DisplayList{size: r.size}
	if r.recording {
		list.ops = r.ops
	}
	r.ops = nil
	r.recording = false
	return list
}

func (r *PictureRecorder) record(op func(Canvas)) {
	if r.recording {
		r.ops = append(r.ops, op)
	}
}

type recordingCanvas struct {
	r *PictureRecorder
}

func (c *recordingCanvas) Save()    { c.r.record(Canvas.Save) }
func (c *recordingCanvas) Restore() { c.r.record(Canvas.Restore) }

func (c *recordingCanvas) SaveLayerAlpha(bounds Rect, alpha float64) {
	c.r.record(func(dst Canvas) { dst.SaveLayerAlpha(bounds, alpha) })
}

func (c *recordingCanvas) Concat(t Transform) {
	c.r.record(func(dst Canvas) { dst.Concat(t) })
}

func (c *recordingCanvas) Clear(color Color) {
	c.r.record(func(dst Canvas) { dst.Clear(color) })
}

func (c *recordingCanvas) DrawRRect(rrect RRect, paint Paint) {
	c.r.record(func(dst Canvas) { dst.DrawRRect(rrect, paint) })
}

// DrawPath records a copy of path; later edits to the caller's path do
// not leak into the list.
func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	p := path.Clone()
	c.r.record(func(dst Canvas) { dst.DrawPath(p, paint) })
}

func (c *recordingCanvas) DrawImageRect(img image.Image, dst Rect, quality FilterQuality) {
	c.r.record(func(to Canvas) { to.DrawImageRect(img, dst, quality) })
}

func (c *recordingCanvas) Size() Size {
	return c.r.size
}
