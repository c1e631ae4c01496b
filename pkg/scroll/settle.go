package scroll

import (
	"time"

	"github.com/go-drift/pagecontrol/pkg/animation"
)

// DefaultSettleDuration is how long a snap to the nearest page takes.
const DefaultSettleDuration = 250 * time.Millisecond

// Settler animates a Controller onto a page boundary, the way a paging
// container snaps after the user lets go.
type Settler struct {
	controller *Controller
	anim       *animation.AnimationController
	tween      *animation.Tween[float64]
}

// NewSettler returns a settler for c using an ease-out curve.
func NewSettler(c *Controller, duration time.Duration) *Settler {
	anim := animation.NewAnimationController(duration)
	anim.Curve = animation.EaseOut
	s := &Settler{controller: c, anim: anim}
	anim.AddListener(func() {
		if s.tween != nil {
			c.JumpTo(s.tween.Transform(anim))
		}
	})
	return s
}

// SettleToPage starts animating from the current offset to page.
func (s *Settler) SettleToPage(page int, now time.Time) {
	s.tween = animation.TweenFloat64(s.controller.Offset(), s.controller.PageOffset(page))
	s.anim.Forward(now)
}

// SettleToNearest starts animating to the page nearest the current offset.
func (s *Settler) SettleToNearest(now time.Time) {
	s.SettleToPage(s.controller.NearestPage(), now)
}

// Tick advances the animation and reports whether it is still running.
func (s *Settler) Tick(now time.Time) bool {
	return s.anim.Tick(now)
}

// Stop abandons the animation at the current offset, as when the user
// grabs the container mid-settle.
func (s *Settler) Stop() {
	s.anim.Stop()
}

// IsSettling reports whether an animation is running.
func (s *Settler) IsSettling() bool {
	return s.anim.IsAnimating()
}
