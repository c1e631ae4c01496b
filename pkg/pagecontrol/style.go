package pagecontrol

import (
	"image"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
)

// StateStyle is the set of overrides for one visual state. Zero fields are
// left unset.
type StateStyle struct {
	Fill      graphics.ColorF
	Stroke    graphics.ColorF
	Alpha     *float64
	Path      *graphics.Path
	Image     image.Image
	Transform *graphics.Transform
}

// Style is a complete control configuration, typically decoded from a
// style file.
type Style struct {
	NumberOfPages      int
	CurrentPage        int
	ItemSpacing        float64
	InteritemSpacing   float64
	LineWidth          float64
	ContentInsets      layout.EdgeInsets
	Alignment          HorizontalAlignment
	HidesForSinglePage bool
	Normal             StateStyle
	Selected           StateStyle
}

// DefaultStyle returns the configuration of a new PageControl.
func DefaultStyle() Style {
	return Style{
		ItemSpacing:      DefaultItemSpacing,
		InteritemSpacing: DefaultInteritemSpacing,
		LineWidth:        DefaultLineWidth,
		Alignment:        AlignCenter,
	}
}

// ApplyStyle writes every field of style through the regular setters, so
// unchanged values schedule nothing. A zero ItemSpacing or LineWidth keeps
// the current value.
func (pc *PageControl) ApplyStyle(style Style) {
	pc.SetNumberOfPages(style.NumberOfPages)
	pc.SetCurrentPage(style.CurrentPage)
	pc.SetItemSpacing(style.ItemSpacing)
	pc.SetInteritemSpacing(style.InteritemSpacing)
	if style.LineWidth != 0 {
		pc.SetLineWidth(style.LineWidth)
	}
	pc.SetContentInsets(style.ContentInsets)
	pc.SetHorizontalAlignment(style.Alignment)
	pc.SetHidesForSinglePage(style.HidesForSinglePage)
	pc.applyStateStyle(style.Normal, StateNormal)
	pc.applyStateStyle(style.Selected, StateSelected)
}

func (pc *PageControl) applyStateStyle(s StateStyle, state VisualState) {
	pc.store.setFillColor(s.Fill, state)
	pc.store.setStrokeColor(s.Stroke, state)
	pc.store.setAlpha(s.Alpha, state)
	pc.store.setPath(s.Path, state)
	pc.store.setImage(s.Image, state)
	pc.store.setTransform(s.Transform, state)
}
