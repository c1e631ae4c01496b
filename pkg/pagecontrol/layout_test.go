package pagecontrol

import (
	"math"
	"testing"

	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

func threeDotRow(a HorizontalAlignment) rowLayout {
	dot := graphics.Size{Width: 10, Height: 10}
	return rowLayout{
		count:     3,
		diameter:  10,
		spacing:   6,
		content:   graphics.RectFromLTWH(0, 0, 100, 20),
		alignment: a,
		normal:    dot,
		selected:  dot,
	}
}

func TestRowLayout_StartX(t *testing.T) {
	tests := []struct {
		alignment HorizontalAlignment
		want      float64
	}{
		{AlignLeading, 0},
		{AlignCenter, 29},
		{AlignTrailing, 53},
	}
	for _, tt := range tests {
		t.Run(tt.alignment.String(), func(t *testing.T) {
			if got := threeDotRow(tt.alignment).startX(); got != tt.want {
				t.Errorf("startX() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRowLayout_StartXOffsetByInsets(t *testing.T) {
	row := threeDotRow(AlignLeading)
	row.content = graphics.RectFromLTWH(12, 4, 100, 20)
	if got := row.startX(); got != 12 {
		t.Errorf("leading startX() = %v, want 12", got)
	}
	row.alignment = AlignTrailing
	if got := row.startX(); got != 65 {
		t.Errorf("trailing startX() = %v, want 65", got)
	}
}

func TestRowLayout_FramesAreSequentialAndCentered(t *testing.T) {
	row := threeDotRow(AlignLeading)
	row.current = 1
	row.selected = graphics.Size{Width: 20, Height: 14}

	frames := row.frames()
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	want := []graphics.Rect{
		graphics.RectFromLTWH(0, 5, 10, 10),
		graphics.RectFromLTWH(16, 3, 20, 14),
		graphics.RectFromLTWH(42, 5, 10, 10),
	}
	for i := range want {
		if frames[i] != want[i] {
			t.Errorf("frame[%d] = %+v, want %+v", i, frames[i], want[i])
		}
	}
}

func TestRowLayout_Empty(t *testing.T) {
	row := threeDotRow(AlignCenter)
	row.count = 0
	if frames := row.frames(); frames != nil {
		t.Errorf("frames() = %v, want nil", frames)
	}
}

func TestParseAlignment(t *testing.T) {
	for in, want := range map[string]HorizontalAlignment{
		"leading":   AlignLeading,
		"Center":    AlignCenter,
		"":          AlignCenter,
		" trailing": AlignTrailing,
		"right":     AlignTrailing,
	} {
		got, err := ParseAlignment(in)
		if err != nil {
			t.Fatalf("ParseAlignment(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAlignment("diagonal"); err == nil {
		t.Error("expected error for unknown alignment")
	}
}

func TestStepFor(t *testing.T) {
	m := scroll.Metrics{ItemWidth: 100, InteritemSpacing: 0, ContainerWidth: 100}

	tests := []struct {
		name   string
		offset float64
		want   scrollStep
	}{
		{"origin", 0, scrollStep{0, 0}},
		{"half way", 150, scrollStep{1, 0.5}},
		{"exact page", 200, scrollStep{2, 0}},
		{"overscroll start", -40, scrollStep{0, 0}},
		{"overscroll end", 950, scrollStep{4, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m.Offset = tt.offset
			got, ok := stepFor(m, 5)
			if !ok {
				t.Fatal("stepFor reported no position")
			}
			if got.index != tt.want.index || math.Abs(got.rate-tt.want.rate) > 1e-9 {
				t.Errorf("stepFor(%v) = %+v, want %+v", tt.offset, got, tt.want)
			}
		})
	}

	if _, ok := stepFor(scroll.Metrics{}, 5); ok {
		t.Error("zero page width should report no position")
	}
}

func TestInterpolate_MorphsAdjacentPair(t *testing.T) {
	normal := resolvedStyle{size: graphics.Size{Width: 10, Height: 10}, fill: graphics.GrayF(0.5, 1)}
	selected := resolvedStyle{size: graphics.Size{Width: 30, Height: 10}, fill: graphics.GrayF(1, 1)}
	row := threeDotRow(AlignLeading)
	row.count = 4
	row.normal = normal.size
	row.selected = selected.size

	got := interpolate(row, scrollStep{index: 1, rate: 0.5}, normal, selected)
	if len(got) != 4 {
		t.Fatalf("got %d indicators, want 4", len(got))
	}

	for _, i := range []int{1, 2} {
		if w := got[i].frame.Width(); w != 20 {
			t.Errorf("indicator %d width = %v, want 20", i, w)
		}
		if !got[i].fill.Equal(graphics.RGBF(0.75, 0.75, 0.75, 1)) {
			t.Errorf("indicator %d fill = %v, want 0.75 gray", i, got[i].fill)
		}
	}
	for _, i := range []int{0, 3} {
		if got[i].frame.Size() != normal.size {
			t.Errorf("indicator %d size = %+v, want normal", i, got[i].frame.Size())
		}
		if got[i].state != StateNormal {
			t.Errorf("indicator %d state = %v, want normal", i, got[i].state)
		}
	}
	if got[1].state != StateNormal || got[2].state != StateSelected {
		t.Errorf("states = %v/%v, want normal/selected at rate 0.5", got[1].state, got[2].state)
	}
	for i := 1; i < len(got); i++ {
		if gap := got[i].frame.Left - got[i-1].frame.Right; gap != row.spacing {
			t.Errorf("gap before indicator %d = %v, want %v", i, gap, row.spacing)
		}
	}
}

func TestInterpolate_AtRestSelectsIndex(t *testing.T) {
	normal := resolvedStyle{size: graphics.Size{Width: 10, Height: 10}, fill: DefaultNormalFill}
	selected := resolvedStyle{size: graphics.Size{Width: 16, Height: 16}, fill: DefaultSelectedFill}
	row := threeDotRow(AlignCenter)
	row.normal = normal.size
	row.selected = selected.size

	got := interpolate(row, scrollStep{index: 2}, normal, selected)
	if got[2].frame.Size() != selected.size || got[2].state != StateSelected {
		t.Errorf("indicator 2 = %+v, want selected", got[2])
	}
	if !got[2].fill.Equal(DefaultSelectedFill) {
		t.Errorf("indicator 2 fill = %v", got[2].fill)
	}
	if got[0].frame.Size() != normal.size {
		t.Errorf("indicator 0 size = %+v, want normal", got[0].frame.Size())
	}
}
