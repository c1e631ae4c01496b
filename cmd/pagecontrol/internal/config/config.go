// Package config loads page control style files.
package config

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	pcerrors "github.com/go-drift/pagecontrol/pkg/errors"
	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
)

// StyleEnv names the environment variable holding the default style file.
const StyleEnv = "PAGECONTROL_STYLE"

// SupportedMajor is the style file format major version this build reads.
const SupportedMajor = "v1"

// Default canvas size when a style file gives none.
const (
	DefaultWidth  = 200
	DefaultHeight = 40
)

// File is the on-disk style file.
type File struct {
	Version            string       `yaml:"version,omitempty"`
	Pages              int          `yaml:"pages"`
	Current            int          `yaml:"current,omitempty"`
	ItemSpacing        float64      `yaml:"itemSpacing,omitempty"`
	InteritemSpacing   *float64     `yaml:"interitemSpacing,omitempty"`
	LineWidth          *float64     `yaml:"lineWidth,omitempty"`
	Alignment          string       `yaml:"alignment,omitempty"`
	HidesForSinglePage bool         `yaml:"hidesForSinglePage,omitempty"`
	Insets             InsetsConfig `yaml:"insets,omitempty"`
	Size               SizeConfig   `yaml:"size,omitempty"`
	Normal             StateConfig  `yaml:"normal,omitempty"`
	Selected           StateConfig  `yaml:"selected,omitempty"`
}

// InsetsConfig holds content insets.
type InsetsConfig struct {
	Top    float64 `yaml:"top,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
}

// SizeConfig holds the control's size.
type SizeConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// StateConfig holds the overrides for one visual state.
type StateConfig struct {
	Fill   string   `yaml:"fill,omitempty"`
	Stroke string   `yaml:"stroke,omitempty"`
	Alpha  *float64 `yaml:"alpha,omitempty"`
	// Width, Height and Radius describe a rounded-rect outline.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	// Image is a PNG path relative to the style file.
	Image string `yaml:"image,omitempty"`
	// Scale and Rotate (degrees) build the state's transform.
	Scale  float64 `yaml:"scale,omitempty"`
	Rotate float64 `yaml:"rotate,omitempty"`
}

// Resolved is a style file turned into control configuration.
type Resolved struct {
	// Path is the style file, empty for built-in defaults.
	Path  string
	Style pagecontrol.Style
	Size  graphics.Size
}

// Default returns the built-in style: five pages with default colors.
func Default() *Resolved {
	style := pagecontrol.DefaultStyle()
	style.NumberOfPages = 5
	return &Resolved{
		Style: style,
		Size:  graphics.Size{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// Load reads and decodes a style file without resolving it.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("config.Load", path, err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, configError("config.Load", path, fmt.Errorf("failed to parse style file: %w", err))
	}
	return &f, nil
}

// Resolve loads path and resolves it. An empty path falls back to the
// PAGECONTROL_STYLE environment variable, then to Default.
func Resolve(path string) (*Resolved, error) {
	if path == "" {
		path = strings.TrimSpace(os.Getenv(StyleEnv))
	}
	if path == "" {
		return Default(), nil
	}
	f, err := Load(path)
	if err != nil {
		return nil, err
	}
	r, err := f.Resolve(filepath.Dir(path))
	if err != nil {
		return nil, configError("config.Resolve", path, err)
	}
	r.Path = path
	return r, nil
}

// Resolve validates the file and converts it. Relative image paths are
// looked up in dir.
func (f *File) Resolve(dir string) (*Resolved, error) {
	if err := checkVersion(f.Version); err != nil {
		return nil, err
	}
	if f.Pages < 0 {
		return nil, &pcerrors.ValueError{Field: "pages", Value: f.Pages, Reason: "must not be negative"}
	}
	align, err := pagecontrol.ParseAlignment(f.Alignment)
	if err != nil {
		return nil, &pcerrors.ValueError{Field: "alignment", Value: f.Alignment, Reason: "want leading, center or trailing"}
	}

	style := pagecontrol.DefaultStyle()
	style.NumberOfPages = f.Pages
	style.CurrentPage = f.Current
	style.Alignment = align
	style.HidesForSinglePage = f.HidesForSinglePage
	if f.ItemSpacing != 0 {
		if f.ItemSpacing < 0 {
			return nil, &pcerrors.ValueError{Field: "itemSpacing", Value: f.ItemSpacing, Reason: "must be positive"}
		}
		style.ItemSpacing = f.ItemSpacing
	}
	if f.InteritemSpacing != nil {
		style.InteritemSpacing = *f.InteritemSpacing
	}
	if f.LineWidth != nil {
		if *f.LineWidth <= 0 {
			return nil, &pcerrors.ValueError{Field: "lineWidth", Value: *f.LineWidth, Reason: "must be positive"}
		}
		style.LineWidth = *f.LineWidth
	}
	style.ContentInsets = layout.EdgeInsets{
		Top:    f.Insets.Top,
		Left:   f.Insets.Left,
		Bottom: f.Insets.Bottom,
		Right:  f.Insets.Right,
	}
	if style.Normal, err = f.Normal.resolve("normal", dir); err != nil {
		return nil, err
	}
	if style.Selected, err = f.Selected.resolve("selected", dir); err != nil {
		return nil, err
	}

	size := graphics.Size{Width: f.Size.Width, Height: f.Size.Height}
	if size.Width <= 0 {
		size.Width = DefaultWidth
	}
	if size.Height <= 0 {
		size.Height = DefaultHeight
	}
	return &Resolved{Style: style, Size: size}, nil
}

func (s StateConfig) resolve(state, dir string) (pagecontrol.StateStyle, error) {
	var out pagecontrol.StateStyle
	var err error
	if out.Fill, err = ParseColor(s.Fill); err != nil {
		return out, &pcerrors.ValueError{Field: state + ".fill", Value: s.Fill, Reason: err.Error()}
	}
	if out.Stroke, err = ParseColor(s.Stroke); err != nil {
		return out, &pcerrors.ValueError{Field: state + ".stroke", Value: s.Stroke, Reason: err.Error()}
	}
	if s.Alpha != nil {
		if *s.Alpha < 0 || *s.Alpha > 1 {
			return out, &pcerrors.ValueError{Field: state + ".alpha", Value: *s.Alpha, Reason: "must be within [0, 1]"}
		}
		a := *s.Alpha
		out.Alpha = &a
	}
	if s.Width > 0 || s.Height > 0 {
		if s.Width <= 0 || s.Height <= 0 {
			return out, &pcerrors.ValueError{Field: state + ".width/height", Value: [2]float64{s.Width, s.Height}, Reason: "both must be positive"}
		}
		out.Path = graphics.NewRRectPath(s.Width, s.Height, s.Radius)
	}
	if s.Image != "" {
		img, err := loadPNG(resolvePath(dir, s.Image))
		if err != nil {
			return out, &pcerrors.ValueError{Field: state + ".image", Value: s.Image, Reason: err.Error()}
		}
		out.Image = img
	}
	if s.Scale != 0 || s.Rotate != 0 {
		t := graphics.IdentityTransform()
		if s.Scale != 0 {
			t = t.Concat(graphics.ScaleTransform(s.Scale, s.Scale))
		}
		if s.Rotate != 0 {
			t = t.Concat(graphics.RotateTransform(s.Rotate * math.Pi / 180))
		}
		out.Transform = &t
	}
	return out, nil
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa". Empty means unset.
func ParseColor(s string) (graphics.ColorF, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return graphics.ColorF{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return graphics.ColorF{}, fmt.Errorf("bad alpha in %q", s)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	if len(s) != 4 && len(s) != 7 {
		return graphics.ColorF{}, fmt.Errorf("want #rgb, #rrggbb or #rrggbbaa, got %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return graphics.ColorF{}, err
	}
	return graphics.RGBF(c.R, c.G, c.B, alpha), nil
}

// FormatColor returns c as "#rrggbb", or "#rrggbbaa" when translucent.
func FormatColor(c graphics.ColorF) string {
	if !c.IsSet() {
		return "-"
	}
	r, g, b, a := c.RGBA()
	hex := colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
	if a < 1 {
		hex += fmt.Sprintf("%02x", int(math.Round(math.Max(a, 0)*255)))
	}
	return hex
}

func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return &pcerrors.ValueError{Field: "version", Value: v, Reason: "not a semantic version"}
	}
	if semver.Major(v) != SupportedMajor {
		return &pcerrors.ValueError{Field: "version", Value: v, Reason: "unsupported major version, want " + SupportedMajor}
	}
	return nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

func configError(op, path string, err error) *pcerrors.Error {
	var existing *pcerrors.Error
	if errors.As(err, &existing) {
		return existing
	}
	return &pcerrors.Error{Op: op, Kind: pcerrors.KindConfig, Err: err, Path: path}
}
