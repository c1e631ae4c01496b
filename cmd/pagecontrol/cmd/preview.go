package cmd

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	pcerrors "github.com/go-drift/pagecontrol/pkg/errors"
	"github.com/go-drift/pagecontrol/pkg/graphics"
	"github.com/go-drift/pagecontrol/pkg/scroll"
)

func init() {
	RegisterCommand(&Command{
		Name:  "preview",
		Short: "Interactive terminal preview",
		Long: `Preview a style in the terminal and scroll through its pages.

Keys:
  left/right    Drag the paged view by an eighth of a page
  h/l           Settle on the previous/next page
  space         Release the drag and settle on the nearest page
  q, esc        Quit

Clicking left or right of the selected indicator moves one page, like a
tap on the control. A drag settles by itself after a short pause.

Flags:
  --style FILE        Style file (default: $PAGECONTROL_STYLE or built-in)
  --page-width W      Width of one page in the paged view (default: 320)`,
		Usage: "pagecontrol preview [--style FILE]",
		Run:   runPreview,
	})
}

const (
	previewFrame   = 16 * time.Millisecond
	dragIdleSettle = 350 * time.Millisecond
	dragSteps      = 8
)

type preview struct {
	screen  tcell.Screen
	scene   *scene
	settler *scroll.Settler

	lastDrag   time.Time
	dragging   bool
	mouseDown  bool
	originX    int
	originY    int
	cellScale  float64
	background tcell.Color
}

func runPreview(args []string) error {
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

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	defer pcerrors.RecoverWithCallback("preview.Run", func(any) { screen.Fini() })
	screen.EnableMouse()

	p := &preview{
		screen:     screen,
		scene:      s,
		settler:    scroll.NewSettler(s.scroller, scroll.DefaultSettleDuration),
		background: tcell.ColorBlack,
	}
	p.run()
	return nil
}

func (p *preview) run() {
	ticker := time.NewTicker(previewFrame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	p.draw()
	for {
		select {
		case ev := <-events:
			if !p.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			p.step(now)
			p.draw()
		}
	}
}

// step advances the settle animation and flushes the control.
func (p *preview) step(now time.Time) {
	if p.dragging && now.Sub(p.lastDrag) >= dragIdleSettle {
		p.release(now)
	}
	p.settler.Tick(now)
	p.scene.owner.Flush()
}

func (p *preview) drag(delta float64, now time.Time) {
	p.settler.Stop()
	p.dragging = true
	p.lastDrag = now
	p.scene.scroller.ScrollBy(delta)
}

func (p *preview) release(now time.Time) {
	p.dragging = false
	p.settler.SettleToNearest(now)
}

func (p *preview) settleBy(pages int, now time.Time) {
	p.dragging = false
	target := p.scene.scroller.NearestPage() + pages
	target = max(0, min(target, p.scene.control.NumberOfPages()-1))
	p.settler.SettleToPage(target, now)
}

func (p *preview) handleEvent(ev tcell.Event, now time.Time) bool {
	pageWidth := p.scene.scroller.Metrics().PageWidth()
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			p.drag(-pageWidth/dragSteps, now)
		case tcell.KeyRight:
			p.drag(pageWidth/dragSteps, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'h':
				p.settleBy(-1, now)
			case 'l':
				p.settleBy(1, now)
			case ' ':
				p.release(now)
			}
		}
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !p.mouseDown {
			x, y := ev.Position()
			if p.scene.control.TapAt(p.toControl(x, y)) {
				p.dragging = false
				p.settler.SettleToPage(p.scene.control.CurrentPage(), now)
			}
		}
		p.mouseDown = pressed
	case *tcell.EventResize:
		p.screen.Sync()
	}
	return true
}

// toControl maps a terminal cell to control coordinates. Each cell shows
// two vertically stacked pixels.
func (p *preview) toControl(x, y int) graphics.Offset {
	return graphics.Offset{
		X: (float64(x-p.originX) + 0.5) / p.cellScale,
		Y: (float64(y-p.originY)*2 + 1) / p.cellScale,
	}
}

func (p *preview) draw() {
	p.screen.Clear()
	width, height := p.screen.Size()
	size := p.scene.cfg.Size

	// Fit the control into the terminal, two pixels per cell vertically.
	p.cellScale = math.Min(1, math.Min(float64(width-2)/size.Width, float64(2*(height-3))/size.Height))
	p.cellScale = math.Max(p.cellScale, 0.05)
	canvas := renderScene(p.scene, renderOptions{scale: p.cellScale})
	img := canvas.Image()
	b := img.Bounds()
	cols, rows := b.Dx(), (b.Dy()+1)/2
	p.originX = max((width-cols)/2, 0)
	p.originY = max((height-2-rows)/2, 0)

	for row := range rows {
		for col := range cols {
			top := p.cellColor(img.RGBAAt(b.Min.X+col, b.Min.Y+2*row))
			bottom := p.cellColor(img.RGBAAt(b.Min.X+col, b.Min.Y+2*row+1))
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(p.originX+col, p.originY+row, '▀', nil, style)
		}
	}
	p.drawStatus(width, height)
	p.screen.Show()
}

// cellColor composites a premultiplied pixel over the background.
func (p *preview) cellColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return p.background
	}
	br, bg, bb := p.background.RGB()
	inv := 255 - int32(c.A)
	return tcell.NewRGBColor(
		int32(c.R)+br*inv/255,
		int32(c.G)+bg*inv/255,
		int32(c.B)+bb*inv/255,
	)
}

func (p *preview) drawStatus(width, height int) {
	m := p.scene.scroller.Metrics()
	index, rate, _ := m.Position()
	pc := p.scene.control
	status := fmt.Sprintf(" page %d/%d  offset %.0f  index %d  rate %.2f ",
		pc.CurrentPage()+1, pc.NumberOfPages(), m.Offset, index, rate)
	if p.settler.IsSettling() {
		status += " settling"
	}
	help := " <-/-> drag  h/l page  space settle  q quit "
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkSlateGray)
	p.drawText(0, height-2, width, status, style)
	p.drawText(0, height-1, width, help, tcell.StyleDefault.Foreground(tcell.ColorGray))
}

func (p *preview) drawText(x, y, width int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		if col >= width {
			return
		}
		p.screen.SetContent(col, y, r, nil, style)
		col++
	}
	for ; col < width; col++ {
		p.screen.SetContent(col, y, ' ', nil, style)
	}
}
