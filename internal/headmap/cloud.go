package headmap

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/headmap/internal/scene"
)

// Cloud owns the root transform and every point placed under it.
type Cloud struct {
	Root   *scene.Node
	Points []*Point
	Range  ValueRange

	spin     scene.Vec3
	timestep int
	steps    int
}

// Build places one sphere per vertex under a new root in sc and computes
// the value range. verts and series must have the same length.
func Build(sc Scene, verts []Vertex, series []Series, opts Options) (*Cloud, error) {
	if len(verts) != len(series) {
		return nil, fmt.Errorf("%w: %d vertices, %d series", ErrLineCountMismatch, len(verts), len(series))
	}
	steps := 0
	for i, s := range series {
		if i == 0 {
			steps = len(s)
		} else if len(s) != steps {
			return nil, fmt.Errorf("%w: row %d has %d, expected %d", ErrSeriesLength, i+1, len(s), steps)
		}
	}
	r, err := ComputeRange(series)
	if err != nil {
		return nil, err
	}

	name := opts.RootName
	if name == "" {
		name = DefaultRootName
	}
	root := sc.NewRoot(name)
	points := make([]*Point, len(verts))
	for i, v := range verts {
		points[i] = &Point{
			Vertex: v,
			Series: series[i],
			Sphere: sc.CreateSphere(root, v.Vec().Scale(opts.PositionScale)),
		}
	}
	root.SetEuler(opts.RootRotation.X, opts.RootRotation.Y, opts.RootRotation.Z)

	log.WithFields(log.Fields{
		"points": len(points),
		"steps":  steps,
		"min":    r.Min,
		"max":    r.Max,
	}).Info("point cloud ready")

	return &Cloud{
		Root:   root,
		Points: points,
		Range:  r,
		spin:   opts.Spin,
		steps:  steps,
	}, nil
}

// Len returns the number of timesteps in every series.
func (c *Cloud) Len() int { return c.steps }

// Timestep returns the timestep applied by the last Seek.
func (c *Cloud) Timestep() int { return c.timestep }

// Seek applies the visuals for timestep t to every point.
// t must be in [0, Len()).
func (c *Cloud) Seek(t int) {
	c.timestep = t
	for _, p := range c.Points {
		MapValue(p.Series[t], c.Range).Apply(p.Sphere)
	}
}

// Animate turns the root by the configured spin. It runs once per frame and
// ignores dt.
func (c *Cloud) Animate(dt float64) {
	if c.spin == (scene.Vec3{}) {
		return
	}
	c.Root.Rotate(c.spin.X, c.spin.Y, c.spin.Z)
}

// Values returns every point's value at timestep t.
func (c *Cloud) Values(t int) []float64 {
	out := make([]float64, len(c.Points))
	for i, p := range c.Points {
		out[i] = p.Series[t]
	}
	return out
}

// MeanSeries returns the mean value across points for each timestep.
func (c *Cloud) MeanSeries() []float64 {
	out := make([]float64, c.steps)
	if len(c.Points) == 0 {
		return out
	}
	for _, p := range c.Points {
		for t, v := range p.Series {
			out[t] += v
		}
	}
	for t := range out {
		out[t] /= float64(len(c.Points))
	}
	return out
}
