package playback

import (
	"errors"
	"fmt"
)

// DefaultInterval is the time between automatic advances.
const DefaultInterval = 0.25

// advanceTolerance absorbs rounding when frame times sum to the interval.
const advanceTolerance = 1e-9

var ErrOutOfRange = errors.New("playback: timestep out of range")

// Timeline is the data being scrubbed. Seek is called on every change.
type Timeline interface {
	Len() int
	Seek(t int)
}

// Animator runs once per frame regardless of play state.
type Animator interface {
	Animate(dt float64)
}

// Label displays the current timestep.
type Label interface {
	SetText(text string)
}

// LabelFunc adapts a function to Label.
type LabelFunc func(text string)

func (f LabelFunc) SetText(text string) { f(text) }

type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "PLAYING"
	}
	return "PAUSED"
}

type Option func(*Controller)

func WithLabel(l Label) Option { return func(c *Controller) { c.label = l } }

func WithAnimator(a Animator) Option { return func(c *Controller) { c.animator = a } }

// WithInterval sets the advance interval. Non-positive values are ignored.
func WithInterval(seconds float64) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.interval = seconds
		}
	}
}

// Controller is not safe for concurrent use; drive it from the render loop.
type Controller struct {
	timeline Timeline
	animator Animator
	label    Label
	interval float64

	state   State
	t       int
	elapsed float64
	changes int
}

func New(tl Timeline, opts ...Option) *Controller {
	c := &Controller{
		timeline: tl,
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.animator == nil {
		if a, ok := tl.(Animator); ok {
			c.animator = a
		}
	}
	return c
}

// Start applies timestep 0. Call it once before the first frame.
func (c *Controller) Start() {
	if c.timeline.Len() == 0 {
		return
	}
	c.change(0)
}

func (c *Controller) Play() {
	c.state = Playing
	c.elapsed = 0
}

func (c *Controller) Pause() {
	c.state = Paused
}

func (c *Controller) Toggle() {
	if c.state == Playing {
		c.Pause()
	} else {
		c.Play()
	}
}

// Tick advances the frame by dt seconds.
func (c *Controller) Tick(dt float64) {
	if c.animator != nil {
		c.animator.Animate(dt)
	}
	if c.state != Playing {
		return
	}
	c.elapsed += dt
	if c.elapsed+advanceTolerance >= c.interval {
		c.StepForward()
		c.elapsed = 0
	}
}

// StepForward moves to the next timestep, wrapping to 0 after the last.
func (c *Controller) StepForward() {
	n := c.timeline.Len()
	if n == 0 {
		return
	}
	if c.t < n-1 {
		c.change(c.t + 1)
	} else {
		c.change(0)
	}
}

// StepBackward moves to the previous timestep, wrapping to the last from 0.
func (c *Controller) StepBackward() {
	n := c.timeline.Len()
	if n == 0 {
		return
	}
	if c.t > 0 {
		c.change(c.t - 1)
	} else {
		c.change(n - 1)
	}
}

// Jump seeks directly to t.
func (c *Controller) Jump(t int) error {
	if t < 0 || t >= c.timeline.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, t, c.timeline.Len())
	}
	c.change(t)
	return nil
}

func (c *Controller) change(t int) {
	c.t = t
	c.changes++
	c.timeline.Seek(t)
	if c.label != nil {
		c.label.SetText(LabelText(t))
	}
}

// LabelText formats the timestep display.
func LabelText(t int) string {
	return fmt.Sprintf("Current Time: %d", t)
}

func (c *Controller) Timestep() int     { return c.t }
func (c *Controller) Len() int          { return c.timeline.Len() }
func (c *Controller) State() State      { return c.state }
func (c *Controller) Playing() bool     { return c.state == Playing }
func (c *Controller) Elapsed() float64  { return c.elapsed }
func (c *Controller) Interval() float64 { return c.interval }

// Changes counts timestep changes since creation, including Start.
func (c *Controller) Changes() int { return c.changes }
