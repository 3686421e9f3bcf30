package headmap

import (
	"image/color"

	"github.com/san-kum/headmap/internal/scene"
)

// Vertex is a point on the head surface as read from the shape file.
type Vertex struct {
	X, Y, Z float64
}

func (v Vertex) Vec() scene.Vec3 { return scene.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

// Series holds one scalar value per timestep.
type Series []float64

// Point pairs a vertex and its series with the sphere that renders it.
type Point struct {
	Vertex Vertex
	Series Series
	Sphere *scene.Node
}

// Visual is the appearance a value maps to.
type Visual struct {
	Color color.RGBA
	Scale float64
}

// Renderable is the material and size handle of one drawn point.
type Renderable interface {
	SetColor(c color.RGBA)
	SetScale(s float64)
}

var _ Renderable = (*scene.Node)(nil)

// Apply sets the color and uniform scale of r.
func (v Visual) Apply(r Renderable) {
	r.SetColor(v.Color)
	r.SetScale(v.Scale)
}

// Scene creates the primitives a cloud renders with.
type Scene interface {
	NewRoot(name string) *scene.Node
	CreateSphere(parent *scene.Node, pos scene.Vec3) *scene.Node
}

// Options control how a cloud is placed in its scene.
type Options struct {
	RootName      string
	PositionScale float64
	// RootRotation is the initial root orientation as Euler degrees.
	RootRotation scene.Vec3
	// Spin is applied to the root, in Euler degrees, once per frame.
	Spin scene.Vec3
}

const (
	DefaultRootName      = "Head"
	DefaultPositionScale = 5.0
)

func DefaultOptions() Options {
	return Options{
		RootName:      DefaultRootName,
		PositionScale: DefaultPositionScale,
		RootRotation:  scene.Vec3{X: -90, Y: 90, Z: 0},
		Spin:          scene.Vec3{X: 0, Y: 0, Z: 0.5},
	}
}
