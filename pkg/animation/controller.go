package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at 0.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward 1.
	AnimationForward
	// AnimationCompleted means the animation is stopped at 1.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController produces a Value from 0 to 1 over Duration.
//
// It has no ticker of its own: the host calls Tick with the current frame
// time, which keeps it on the host's single update loop and makes it
// deterministic under test. Pair it with a [Tween] to animate real values.
type AnimationController struct {
	// Value is the current animation value, ranging from 0.0 to 1.0.
	Value float64

	// Duration is the length of the animation.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	status         AnimationStatus
	start          time.Time
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration: duration,
		Curve:    LinearCurve,
	}
}

// Forward restarts the animation from 0 at time now.
func (c *AnimationController) Forward(now time.Time) {
	c.start = now
	c.Value = 0
	c.status = AnimationForward
	c.notifyListeners()
}

// Tick advances the animation to time now and reports whether it is
// still running.
func (c *AnimationController) Tick(now time.Time) bool {
	if c.status != AnimationForward {
		return false
	}
	progress := 1.0
	if c.Duration > 0 {
		progress = min(float64(now.Sub(c.start))/float64(c.Duration), 1)
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = eased
	if progress >= 1 {
		c.Value = 1
		c.status = AnimationCompleted
	}
	c.notifyListeners()
	return c.status == AnimationForward
}

// Stop halts the animation at its current value.
func (c *AnimationController) Stop() {
	if c.status == AnimationForward {
		c.status = AnimationDismissed
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.status == AnimationForward
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	if c.listeners == nil {
		c.listeners = make(map[int]func())
	}
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}
