package cmd

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/go-drift/pagecontrol/cmd/pagecontrol/internal/config"
	pcerrors "github.com/go-drift/pagecontrol/pkg/errors"
	"github.com/go-drift/pagecontrol/pkg/graphics"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a style to PNG",
		Long: `Render the page control described by a style file to a PNG image.

The control is laid out, scrolled to --offset (default: the style's current
page) and painted with a software rasterizer.

Flags:
  --style FILE        Style file (default: $PAGECONTROL_STYLE or built-in)
  --offset X          Scroll offset of the paged view
  --page-width W      Width of one page in the paged view (default: 320)
  --scale S           Output scale factor (default: 1)
  --background HEX    Background color (default: transparent)
  --out FILE          Output file (default: pagecontrol.png)`,
		Usage: "pagecontrol render [--style FILE] [--offset X] [--out FILE]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scale      float64
	background graphics.ColorF
	out        string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{scale: 1, out: "pagecontrol.png"}
	for i := 0; i < len(args); i++ {
		name, value, inline := strings.Cut(args[i], "=")
		if !inline {
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		switch name {
		case "--scale":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v <= 0 || math.IsInf(v, 0) {
				return opts, fmt.Errorf("invalid --scale %q: must be a positive number", value)
			}
			opts.scale = v
		case "--background":
			c, err := config.ParseColor(value)
			if err != nil {
				return opts, fmt.Errorf("invalid --background %q: %w", value, err)
			}
			opts.background = c
		case "--out", "-o":
			opts.out = value
		default:
			return opts, fmt.Errorf("unknown flag %q", name)
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	sceneOpts, rest, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	opts, err := parseRenderArgs(rest)
	if err != nil {
		return err
	}
	s, err := newScene(sceneOpts)
	if err != nil {
		return err
	}
	defer s.close()

	canvas := renderScene(s, opts)
	if err := writePNG(opts.out, canvas); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%dx%d, page %d of %d)\n",
		opts.out, canvas.Image().Bounds().Dx(), canvas.Image().Bounds().Dy(),
		s.control.CurrentPage()+1, s.control.NumberOfPages())
	return nil
}

// renderScene paints the scene's committed frame into a new raster canvas.
func renderScene(s *scene, opts renderOptions) *graphics.RasterCanvas {
	size := graphics.Size{
		Width:  math.Ceil(s.cfg.Size.Width * opts.scale),
		Height: math.Ceil(s.cfg.Size.Height * opts.scale),
	}
	canvas := graphics.NewRasterCanvas(size)
	if opts.background.IsSet() {
		canvas.Clear(opts.background.ToColor())
	}
	canvas.Save()
	canvas.Concat(graphics.ScaleTransform(opts.scale, opts.scale))
	s.control.Paint(canvas)
	canvas.Restore()
	return canvas
}

func writePNG(path string, canvas *graphics.RasterCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return &pcerrors.Error{Op: "render.WritePNG", Kind: pcerrors.KindRender, Err: err, Path: path}
	}
	if err := png.Encode(f, canvas.Image()); err != nil {
		f.Close()
		return &pcerrors.Error{Op: "render.WritePNG", Kind: pcerrors.KindRender, Err: err, Path: path}
	}
	if err := f.Close(); err != nil {
		return &pcerrors.Error{Op: "render.WritePNG", Kind: pcerrors.KindRender, Err: err, Path: path}
	}
	return nil
}
