package playback

import (
	"testing"

	. "github.com/onsi/gomega"
)

type fakeTimeline struct {
	n      int
	seeks  []int
	frames int
}

func (f *fakeTimeline) Len() int           { return f.n }
func (f *fakeTimeline) Seek(t int)         { f.seeks = append(f.seeks, t) }
func (f *fakeTimeline) Animate(dt float64) { f.frames++ }

func newController(n int, opts ...Option) (*Controller, *fakeTimeline, *string) {
	tl := &fakeTimeline{n: n}
	text := new(string)
	opts = append(opts, WithLabel(LabelFunc(func(s string) { *text = s })))
	c := New(tl, opts...)
	c.Start()
	return c, tl, text
}

func TestStartsPausedAtZero(t *testing.T) {
	g := NewWithT(t)
	c, tl, text := newController(3)

	g.Expect(c.State()).To(Equal(Paused))
	g.Expect(c.Timestep()).To(Equal(0))
	g.Expect(tl.seeks).To(Equal([]int{0}))
	g.Expect(*text).To(Equal("Current Time: 0"))
}

func TestStepWraparound(t *testing.T) {
	g := NewWithT(t)
	c, tl, text := newController(3)

	c.StepForward()
	c.StepForward()
	g.Expect(c.Timestep()).To(Equal(2))
	c.StepForward()
	g.Expect(c.Timestep()).To(Equal(0))

	c.StepBackward()
	g.Expect(c.Timestep()).To(Equal(2))
	g.Expect(*text).To(Equal("Current Time: 2"))
	g.Expect(tl.seeks).To(Equal([]int{0, 1, 2, 0, 2}))
}

func TestSingleStepTimeline(t *testing.T) {
	g := NewWithT(t)
	c, _, _ := newController(1)

	c.StepForward()
	g.Expect(c.Timestep()).To(Equal(0))
	c.StepBackward()
	g.Expect(c.Timestep()).To(Equal(0))
}

func TestPlayPause(t *testing.T) {
	g := NewWithT(t)
	c, _, _ := newController(4)

	c.Pause()
	g.Expect(c.State()).To(Equal(Paused))

	c.Play()
	g.Expect(c.Playing()).To(BeTrue())
	c.Tick(0.1)
	g.Expect(c.Elapsed()).To(BeNumerically("~", 0.1, 1e-12))

	c.Play()
	g.Expect(c.Elapsed()).To(BeZero(), "play resets the accumulator")

	c.Pause()
	c.Pause()
	g.Expect(c.State()).To(Equal(Paused))

	c.Toggle()
	g.Expect(c.State()).To(Equal(Playing))
	c.Toggle()
	g.Expect(c.State()).To(Equal(Paused))
}

func TestAutoPlayAdvancesFourTimesPerSecond(t *testing.T) {
	g := NewWithT(t)
	c, tl, _ := newController(3)
	c.Play()

	for i := 0; i < 8; i++ {
		c.Tick(0.125)
	}

	g.Expect(tl.seeks).To(Equal([]int{0, 1, 2, 0, 1}))
	g.Expect(c.Timestep()).To(Equal(1))
	g.Expect(c.Changes()).To(Equal(5))
}

func TestAutoPlayWholeIntervalFrames(t *testing.T) {
	g := NewWithT(t)
	c, _, _ := newController(10)
	c.Play()

	for i := 0; i < 4; i++ {
		c.Tick(0.25)
	}
	g.Expect(c.Timestep()).To(Equal(4))
}

func TestAutoPlayAtSixtyFPS(t *testing.T) {
	g := NewWithT(t)
	c, _, _ := newController(10)
	c.Play()

	for i := 0; i < 60; i++ {
		c.Tick(1.0 / 60)
	}
	g.Expect(c.Timestep()).To(Equal(4))
}

func TestPausedTickDoesNotAdvance(t *testing.T) {
	g := NewWithT(t)
	c, tl, _ := newController(3)

	for i := 0; i < 10; i++ {
		c.Tick(0.5)
	}
	g.Expect(c.Timestep()).To(Equal(0))
	g.Expect(tl.frames).To(Equal(10), "idle animation runs while paused")
}

func TestCustomInterval(t *testing.T) {
	g := NewWithT(t)
	c, _, _ := newController(5, WithInterval(1), WithInterval(-3))
	g.Expect(c.Interval()).To(Equal(1.0))

	c.Play()
	c.Tick(0.5)
	g.Expect(c.Timestep()).To(Equal(0))
	c.Tick(0.5)
	g.Expect(c.Timestep()).To(Equal(1))
}

func TestJump(t *testing.T) {
	g := NewWithT(t)
	c, _, text := newController(5)

	g.Expect(c.Jump(4)).To(Succeed())
	g.Expect(*text).To(Equal("Current Time: 4"))

	g.Expect(c.Jump(5)).To(MatchError(ErrOutOfRange))
	g.Expect(c.Jump(-1)).To(MatchError(ErrOutOfRange))
	g.Expect(c.Timestep()).To(Equal(4))
}

func TestEmptyTimeline(t *testing.T) {
	g := NewWithT(t)
	c, tl, _ := newController(0)

	c.StepForward()
	c.StepBackward()
	c.Play()
	c.Tick(1)
	g.Expect(tl.seeks).To(BeEmpty())
}
