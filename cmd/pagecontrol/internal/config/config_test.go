package config

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	pcerrors "github.com/go-drift/pagecontrol/pkg/errors"
	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
)

func colorDiff(want, got graphics.ColorF) string {
	components := func(c graphics.ColorF) [4]float64 {
		r, g, b, a := c.RGBA()
		return [4]float64{r, g, b, a}
	}
	return cmp.Diff(components(want), components(got), cmpopts.EquateApprox(0, 1e-9))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestResolve_FullStyle(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "style.yaml", `
version: v1.2.0
pages: 4
current: 1
itemSpacing: 8
interitemSpacing: 0
lineWidth: 2.5
alignment: trailing
hidesForSinglePage: true
insets: {top: 4, left: 8, bottom: 4, right: 8}
size: {width: 300, height: 50}
normal:
  fill: "#808080"
  alpha: 0.5
selected:
  fill: "#fff"
  stroke: "#00000080"
  width: 12
  height: 8
  radius: 4
  scale: 2
`)

	r, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	s := r.Style
	if s.NumberOfPages != 4 || s.CurrentPage != 1 || s.ItemSpacing != 8 || s.InteritemSpacing != 0 {
		t.Errorf("style = %+v", s)
	}
	if s.LineWidth != 2.5 {
		t.Errorf("LineWidth = %v, want 2.5", s.LineWidth)
	}
	if s.Alignment != pagecontrol.AlignTrailing || !s.HidesForSinglePage {
		t.Errorf("alignment=%v hides=%v", s.Alignment, s.HidesForSinglePage)
	}
	if diff := cmp.Diff(layout.EdgeInsets{Top: 4, Left: 8, Bottom: 4, Right: 8}, s.ContentInsets); diff != "" {
		t.Errorf("insets mismatch (-want +got):\n%s", diff)
	}
	if r.Size != (graphics.Size{Width: 300, Height: 50}) || r.Path != path {
		t.Errorf("size=%+v path=%s", r.Size, r.Path)
	}
	if s.Normal.Alpha == nil || *s.Normal.Alpha != 0.5 {
		t.Errorf("normal alpha = %v", s.Normal.Alpha)
	}
	if diff := colorDiff(graphics.RGBF(1, 1, 1, 1), s.Selected.Fill); diff != "" {
		t.Errorf("selected fill mismatch (-want +got):\n%s", diff)
	}
	if _, _, _, a := s.Selected.Stroke.RGBA(); a != 128.0/255 {
		t.Errorf("selected stroke alpha = %v", a)
	}
	if b := s.Selected.Path.Bounds(); b.Width() != 12 || b.Height() != 8 {
		t.Errorf("selected path bounds = %+v", b)
	}
	if s.Selected.Transform == nil || *s.Selected.Transform != graphics.ScaleTransform(2, 2) {
		t.Errorf("selected transform = %v", s.Selected.Transform)
	}
}

func TestResolve_DefaultsAndEnv(t *testing.T) {
	t.Setenv(StyleEnv, "")
	r, err := Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Style.NumberOfPages != 5 || r.Path != "" || r.Size.Width != DefaultWidth {
		t.Errorf("default = %+v", r)
	}

	path := writeFile(t, t.TempDir(), "env.yaml", "pages: 2\n")
	t.Setenv(StyleEnv, path)
	r, err = Resolve("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Style.NumberOfPages != 2 || r.Path != path {
		t.Errorf("env style = %+v", r)
	}
	if r.Style.ItemSpacing != pagecontrol.DefaultItemSpacing || r.Style.InteritemSpacing != pagecontrol.DefaultInteritemSpacing {
		t.Errorf("spacing defaults lost: %+v", r.Style)
	}
}

func TestResolve_LoadsImageRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(filepath.Join(dir, "dot.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	path := writeFile(t, dir, "style.yaml", "pages: 3\nselected: {image: dot.png}\n")
	r, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if !graphics.ImagesEqual(r.Style.Selected.Image, img) {
		t.Error("loaded image differs from the written one")
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		field string
	}{
		{"major version", "version: v2.0.0\npages: 1\n", "version"},
		{"bad version", "version: banana\npages: 1\n", "version"},
		{"negative pages", "pages: -1\n", "pages"},
		{"alignment", "pages: 1\nalignment: diagonal\n", "alignment"},
		{"line width", "pages: 1\nlineWidth: 0\n", "lineWidth"},
		{"fill", "pages: 1\nnormal: {fill: \"#zzzzzz\"}\n", "normal.fill"},
		{"alpha", "pages: 1\nselected: {alpha: 3}\n", "selected.alpha"},
		{"half shape", "pages: 1\nselected: {width: 4}\n", "selected.width/height"},
		{"missing image", "pages: 1\nnormal: {image: nope.png}\n", "normal.image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "style.yaml", tt.yaml)
			_, err := Resolve(path)
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr *pcerrors.Error
			if !errors.As(err, &cfgErr) || cfgErr.Kind != pcerrors.KindConfig || cfgErr.Path != path {
				t.Errorf("error = %#v, want config error for %s", err, path)
			}
			var valErr *pcerrors.ValueError
			if !errors.As(err, &valErr) || valErr.Field != tt.field {
				t.Errorf("error = %v, want value error on %s", err, tt.field)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v", err)
	}
	path := writeFile(t, dir, "broken.yaml", "pages: [1, 2\n")
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse style file") {
		t.Errorf("broken file error = %v", err)
	}
}

func TestParseAndFormatColor(t *testing.T) {
	tests := []struct {
		in   string
		want graphics.ColorF
	}{
		{"", graphics.ColorF{}},
		{"#ff0000", graphics.RGBF(1, 0, 0, 1)},
		{"00ff00", graphics.RGBF(0, 1, 0, 1)},
		{"#00f", graphics.RGBF(0, 0, 1, 1)},
		{"#ffffff00", graphics.RGBF(1, 1, 1, 0)},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got.IsSet() != tt.want.IsSet() {
			t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if diff := colorDiff(tt.want, got); diff != "" {
			t.Errorf("ParseColor(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("expected error for a five digit color")
	}

	if got := FormatColor(graphics.RGBF(1, 0, 0, 1)); got != "#ff0000" {
		t.Errorf("FormatColor(red) = %s", got)
	}
	if got := FormatColor(graphics.GrayF(1, 0.5)); got != "#ffffff80" {
		t.Errorf("FormatColor(translucent white) = %s", got)
	}
	if got := FormatColor(graphics.ColorF{}); got != "-" {
		t.Errorf("FormatColor(unset) = %s", got)
	}
}
