package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-drift/pagecontrol/cmd/pagecontrol/internal/config"
	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/layout"
	"github.com/go-drift/pagecontrol/pkg/pagecontrol"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

// DefaultPageWidth is the simulated width of one page in the paged view.
const DefaultPageWidth = 320

// sceneOptions are the flags shared by every command.
type sceneOptions struct {
	stylePath string
	pageWidth float64
	offset    float64
	hasOffset bool
}

// parseSceneArgs consumes the shared flags and returns the rest.
func parseSceneArgs(args []string) (sceneOptions, []string, error) {
	opts := sceneOptions{pageWidth: DefaultPageWidth}
	var rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, inline := strings.Cut(arg, "=")
		switch name {
		case "--style", "--offset", "--page-width":
		default:
			rest = append(rest, arg)
			continue
		}
		if !inline {
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("%s requires a value", name)
			}
			value = args[i+1]
			i++
		}
		switch name {
		case "--style":
			opts.stylePath = value
		case "--offset":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil {
				return opts, nil, fmt.Errorf("invalid --offset %q: %w", value, err)
			}
			opts.offset, opts.hasOffset = v, true
		case "--page-width":
			v, err := strconv.ParseFloat(value, 64)
			if err != nil || v <= 0 {
				return opts, nil, fmt.Errorf("invalid --page-width %q: must be a positive number", value)
			}
			opts.pageWidth = v
		}
	}
	return opts, rest, nil
}

// scene is a page control hosted in a simulated paged view.
type scene struct {
	cfg      *config.Resolved
	owner    *layout.PipelineOwner
	control  *pagecontrol.PageControl
	scroller *scroll.Controller
	detach   func()
}

func newScene(opts sceneOptions) (*scene, error) {
	cfg, err := config.Resolve(opts.stylePath)
	if err != nil {
		return nil, err
	}
	s := &scene{
		cfg:      cfg,
		owner:    &layout.PipelineOwner{},
		scroller: scroll.NewController(opts.pageWidth, 0, opts.pageWidth),
	}
	s.control = pagecontrol.New(pagecontrol.WithOwner(s.owner))
	s.control.ApplyStyle(cfg.Style)
	s.control.SetBounds(graphics.RectFromOriginSize(graphics.Offset{}, cfg.Size))
	s.owner.Flush()

	s.scroller.SetPageCount(s.control.NumberOfPages())
	if opts.hasOffset {
		s.scroller.JumpTo(opts.offset)
	} else {
		s.scroller.JumpTo(s.scroller.PageOffset(s.control.CurrentPage()))
	}
	s.detach = s.control.Attach(s.scroller)
	return s, nil
}

func (s *scene) close() {
	if s.detach != nil {
		s.detach()
	}
}
