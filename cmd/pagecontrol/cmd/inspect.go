package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/go-drift/pagecontrol/cmd/pagecontrol/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print indicator frames and colors",
		Long: `Print the page control's indicators as a table.

Useful for checking layout numbers and mid-scroll interpolation without
looking at pixels.

Flags:
  --style FILE        Style file (default: $PAGECONTROL_STYLE or built-in)
  --offset X          Scroll offset of the paged view
  --page-width W      Width of one page in the paged view (default: 320)`,
		Usage: "pagecontrol inspect [--style FILE] [--offset X]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	opts, rest, err := parseSceneArgs(args)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("unknown flag %q", rest[0])
	}
	s, err := newScene(opts)
	if err != nil {
		return err
	}
	defer s.close()

	printScene(os.Stdout, s)
	return nil
}

func printScene(w io.Writer, s *scene) {
	source := s.cfg.Path
	if source == "" {
		source = "built-in"
	}
	pc := s.control
	m := s.scroller.Metrics()
	index, rate, _ := m.Position()

	fmt.Fprintf(w, "Style:    %s\n", source)
	fmt.Fprintf(w, "Bounds:   %gx%g  alignment=%s\n", pc.Bounds().Width(), pc.Bounds().Height(), pc.HorizontalAlignment())
	fmt.Fprintf(w, "Pages:    %d  current=%d  hidden=%v\n", pc.NumberOfPages(), pc.CurrentPage(), pc.IsHidden())
	fmt.Fprintf(w, "Scroll:   offset=%g  page=%d  rate=%.3f\n", m.Offset, index, rate)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s %-8s %-8s %-8s %-8s %-6s %-10s %-10s %s\n",
		"#", "x", "y", "width", "height", "shape", "fill", "stroke", "opacity")
	for _, ind := range pc.Indicators() {
		shape := ind.Shape.Kind.String()
		if ind.Image != nil {
			shape = "image"
		}
		f := ind.Frame
		fmt.Fprintf(w, "  %-4d %-8.2f %-8.2f %-8.2f %-8.2f %-6s %-10s %-10s %.2f\n",
			ind.Index, f.Left, f.Top, f.Width(), f.Height(), shape,
			config.FormatColor(ind.Fill), config.FormatColor(ind.Stroke), ind.Opacity)
	}
}
