package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/pagecontrol/cmd/pagecontrol/internal/config"
)

func TestParseSceneArgs(t *testing.T) {
	opts, rest, err := parseSceneArgs([]string{"--style=s.yaml", "--offset", "160", "--scale", "2", "--page-width=100"})
	if err != nil {
		t.Fatalf("parseSceneArgs: %v", err)
	}
	if opts.stylePath != "s.yaml" {
		t.Errorf("stylePath = %q, want s.yaml", opts.stylePath)
	}
	if !opts.hasOffset || opts.offset != 160 {
		t.Errorf("offset = %v (set %v), want 160", opts.offset, opts.hasOffset)
	}
	if opts.pageWidth != 100 {
		t.Errorf("pageWidth = %v, want 100", opts.pageWidth)
	}
	if strings.Join(rest, " ") != "--scale 2" {
		t.Errorf("rest = %q, want [--scale 2]", rest)
	}

	for _, args := range [][]string{
		{"--style"},
		{"--offset", "abc"},
		{"--page-width", "0"},
		{"--page-width=-5"},
	} {
		if _, _, err := parseSceneArgs(args); err == nil {
			t.Errorf("parseSceneArgs(%q) succeeded, want error", args)
		}
	}
}

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs(nil)
	if err != nil {
		t.Fatalf("parseRenderArgs: %v", err)
	}
	if opts.scale != 1 || opts.out != "pagecontrol.png" || opts.background.IsSet() {
		t.Errorf("defaults = %+v", opts)
	}

	opts, err = parseRenderArgs([]string{"--scale=2", "-o", "x.png", "--background", "#000"})
	if err != nil {
		t.Fatalf("parseRenderArgs: %v", err)
	}
	if opts.scale != 2 || opts.out != "x.png" || !opts.background.IsSet() {
		t.Errorf("parsed = %+v", opts)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"zero scale", []string{"--scale", "0"}},
		{"bad scale", []string{"--scale", "big"}},
		{"bad background", []string{"--background", "#12"}},
		{"missing value", []string{"--out"}},
		{"unknown", []string{"--nope", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseRenderArgs(tt.args); err == nil {
				t.Errorf("parseRenderArgs(%q) succeeded, want error", tt.args)
			}
		})
	}
}

func newTestScene(t *testing.T, opts sceneOptions) *scene {
	t.Helper()
	t.Setenv(config.StyleEnv, "")
	if opts.pageWidth == 0 {
		opts.pageWidth = DefaultPageWidth
	}
	s, err := newScene(opts)
	if err != nil {
		t.Fatalf("newScene: %v", err)
	}
	t.Cleanup(s.close)
	return s
}

func TestInspectBuiltInStyle(t *testing.T) {
	s := newTestScene(t, sceneOptions{})

	var buf bytes.Buffer
	printScene(&buf, s)
	out := buf.String()

	for _, want := range []string{
		"Style:    built-in",
		"Bounds:   200x40  alignment=center",
		"Pages:    5  current=0  hidden=false",
		"rate=0.000",
		// 5*7 + 4*9 = 71 wide, centered in 200.
		"64.50",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 11 {
		t.Errorf("output has %d lines, want 11:\n%s", got, out)
	}
}

func TestInspectMidScroll(t *testing.T) {
	s := newTestScene(t, sceneOptions{offset: 160, hasOffset: true})

	var buf bytes.Buffer
	printScene(&buf, s)
	if !strings.Contains(buf.String(), "page=0  rate=0.500") {
		t.Errorf("output missing mid-scroll position:\n%s", buf.String())
	}
	if got := s.control.CurrentPage(); got != 0 {
		t.Errorf("CurrentPage() = %d, want 0 mid-scroll", got)
	}
}

func TestSceneStartsOnCurrentPage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	if err := os.WriteFile(path, []byte("version: v1\npages: 4\ncurrent: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := newTestScene(t, sceneOptions{stylePath: path})

	if got, want := s.scroller.Offset(), 2.0*DefaultPageWidth; got != want {
		t.Errorf("scroll offset = %v, want %v", got, want)
	}
	if got := s.control.CurrentPage(); got != 2 {
		t.Errorf("CurrentPage() = %d, want 2", got)
	}
}

func TestRenderWritesPNG(t *testing.T) {
	s := newTestScene(t, sceneOptions{})
	bg, err := config.ParseColor("#000000")
	if err != nil {
		t.Fatal(err)
	}
	canvas := renderScene(s, renderOptions{scale: 2, background: bg})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := writePNG(path, canvas); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 80 {
		t.Fatalf("image size = %dx%d, want 400x80", b.Dx(), b.Dy())
	}

	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("background alpha = %#x, want opaque", a)
	}
	// Center of the selected indicator: (64.5+3.5, 20) scaled by 2.
	r, _, _, _ := img.At(136, 40).RGBA()
	if r < 0xc000 {
		t.Errorf("selected indicator red = %#x, want near white", r)
	}
}

func TestWritePNGError(t *testing.T) {
	s := newTestScene(t, sceneOptions{})
	canvas := renderScene(s, renderOptions{scale: 1})
	err := writePNG(filepath.Join(t.TempDir(), "missing", "out.png"), canvas)
	if err == nil {
		t.Fatal("writePNG into a missing directory succeeded")
	}
	if !strings.Contains(err.Error(), "out.png") {
		t.Errorf("error %q does not name the path", err)
	}
}
