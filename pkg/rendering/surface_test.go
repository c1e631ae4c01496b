package rendering

import (
	"testing"

	"github.com/go-drift/pagecontrol/pkg/graphics"
)

func TestSurface_BatchCommitsOnce(t *testing.T) {
	s := NewSurface()
	var frames []Frame
	s.AddObserver(func(f Frame) { frames = append(frames, f) })

	s.Batch(func() {
		for range 3 {
			l := s.AddLayer()
			l.SetFrame(graphics.RectFromLTWH(0, 0, 7, 7))
			l.SetFill(graphics.GrayF(0.5, 1))
		}
		if len(frames) != 0 {
			t.Fatal("observer notified inside batch")
		}
	})

	if len(frames) != 1 {
		t.Fatalf("observer notified %d times, want 1", len(frames))
	}
	if got := len(frames[0].Layers); got != 3 {
		t.Errorf("committed %d layers, want 3", got)
	}
}

func TestSurface_NestedBatch(t *testing.T) {
	s := NewSurface()
	s.Batch(func() {
		s.AddLayer()
		s.Batch(func() { s.AddLayer() })
		if s.Commits() != 0 {
			t.Fatal("inner batch committed early")
		}
	})
	if s.Commits() != 1 {
		t.Errorf("Commits = %d, want 1", s.Commits())
	}
}

func TestSurface_UnbatchedWritesCommitImmediately(t *testing.T) {
	s := NewSurface()
	l := s.AddLayer()
	l.SetOpacity(2)
	if s.Commits() != 2 {
		t.Errorf("Commits = %d, want 2", s.Commits())
	}
	if got := s.Snapshot().Layers[0].Opacity; got != 1 {
		t.Errorf("opacity = %v, want clamped to 1", got)
	}
}

func TestSurface_RemovedLayerIgnoresWrites(t *testing.T) {
	s := NewSurface()
	l := s.AddLayer()
	s.RemoveAllLayers()
	before := s.Commits()

	l.SetFrame(graphics.RectFromLTWH(1, 1, 1, 1))

	if l.Attached() {
		t.Error("layer should be detached")
	}
	if s.Commits() != before {
		t.Error("detached layer write should not commit")
	}
}

func TestSurface_SetHiddenIsIdempotent(t *testing.T) {
	s := NewSurface()
	s.SetHidden(true)
	s.SetHidden(true)
	if s.Commits() != 1 {
		t.Errorf("Commits = %d, want 1", s.Commits())
	}
	if !s.Snapshot().Hidden {
		t.Error("snapshot should be hidden")
	}
}

func TestSurface_ObserverRemoval(t *testing.T) {
	s := NewSurface()
	calls := 0
	remove := s.AddObserver(func(Frame) { calls++ })
	s.AddLayer()
	remove()
	s.AddLayer()
	if calls != 1 {
		t.Errorf("observer called %d times, want 1", calls)
	}
}

func TestPaintFrame_RecordsShapesInOrder(t *testing.T) {
	frame := Frame{Layers: []LayerState{
		{
			Frame: graphics.RectFromLTWH(0, 0, 10, 10), Shape: graphics.OvalShape(),
			Fill: graphics.GrayF(0.5, 1), Opacity: 1, Transform: graphics.IdentityTransform(),
		},
		{
			Frame: graphics.RectFromLTWH(20, 0, 10, 10), Shape: graphics.OvalShape(),
			Fill: graphics.GrayF(1, 1), Stroke: graphics.GrayF(0, 1), LineWidth: 1,
			Opacity: 0.5, Transform: graphics.ScaleTransform(2, 2),
		},
	}}

	rec := &graphics.PictureRecorder{}
	PaintFrame(rec.BeginRecording(graphics.Size{Width: 40, Height: 10}), frame)
	list := rec.EndRecording()

	// save, rrect, restore | save, layer, concat, fill, stroke, restore, restore
	if got := list.Len(); got != 10 {
		t.Errorf("recorded %d ops, want 10", got)
	}
}

func TestPaintFrame_HiddenDrawsNothing(t *testing.T) {
	rec := &graphics.PictureRecorder{}
	PaintFrame(rec.BeginRecording(graphics.Size{Width: 10, Height: 10}), Frame{
		Hidden: true,
		Layers: []LayerState{DefaultLayerState()},
	})
	if got := rec.EndRecording().Len(); got != 0 {
		t.Errorf("recorded %d ops, want 0", got)
	}
}

func TestPaintFrame_RastersImageLayer(t *testing.T) {
	raster := graphics.NewRasterCanvas(graphics.Size{Width: 10, Height: 10})
	PaintFrame(raster, Frame{Layers: []LayerState{{
		Frame:     graphics.RectFromLTWH(0, 0, 10, 10),
		Shape:     graphics.OvalShape(),
		Fill:      graphics.RGBF(1, 0, 0, 1),
		Opacity:   1,
		Transform: graphics.IdentityTransform(),
	}}})
	if got := raster.Image().RGBAAt(5, 5); got.R != 255 || got.A != 255 {
		t.Errorf("center pixel = %+v, want opaque red", got)
	}
}
