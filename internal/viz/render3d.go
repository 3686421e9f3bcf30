package viz

import (
	"math"
	"sort"

	"github.com/charmbracelet/harmonica"

	"github.com/san-kum/headmap/internal/scene"
)

// Camera manages 3D projection to a 2D plane. Zoom eases toward the level
// set by ZoomIn and ZoomOut each time Step is called.
type Camera struct {
	Position         scene.Vec3
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64

	target float64
	vel    float64
	spring harmonica.Spring
}

func NewCamera() *Camera {
	c := &Camera{Position: scene.Vec3{Z: 50}, Near: 0.1, Zoom: 1.0, target: 1.0}
	c.SetFPS(60)
	return c
}

// SetFPS sets the rate Step is expected to be called at.
func (c *Camera) SetFPS(fps int) {
	c.spring = harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)
}

// Step moves Zoom one frame toward the target zoom.
func (c *Camera) Step() {
	c.Zoom, c.vel = c.spring.Update(c.Zoom, c.vel, c.target)
}

// TargetZoom returns the zoom level Step is easing toward.
func (c *Camera) TargetZoom() float64 { return c.target }

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.target = math.Min(10, c.target*1.2) }
func (c *Camera) ZoomOut()          { c.target = math.Max(0.01, c.target/1.2) }

// Fit sets the zoom so a sphere of the given radius around the origin
// fills most of the view.
func (c *Camera) Fit(radius float64) {
	c.Zoom = 1
	if radius > 0 {
		c.Zoom = 1.35 / radius
	}
	c.target, c.vel = c.Zoom, 0
}

// Reset clears the view rotation, keeping the zoom.
func (c *Camera) Reset() { c.RotX, c.RotY, c.RotZ = 0, 0, 0 }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p scene.Vec3) scene.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p scene.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	sx := int(rot.X*scale*pixelScale(sw, sh)) + sw/2
	sy := int(-rot.Y*scale*pixelScale(sw, sh)) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

func pixelScale(sw, sh int) float64 {
	return math.Min(float64(sw), float64(sh)) / 3.0
}

type projectedSphere struct {
	x, y, r int
	depth   float64
	node    *scene.Node
}

// RenderSpheres draws every sphere node of g, far to near, so the nearest
// sphere decides each cell color.
func RenderSpheres(c *Canvas, g *scene.Graph, cam *Camera) int {
	if c == nil || g == nil || cam == nil {
		return 0
	}
	cw, ch := c.Width*2, c.Height*4
	spheres := g.Spheres()
	proj := make([]projectedSphere, 0, len(spheres))
	for _, n := range spheres {
		x, y, d, ok := cam.Project(n.WorldPosition(), cw, ch)
		if !ok {
			continue
		}
		diameter := n.WorldScale().X * cam.Zoom * pixelScale(cw, ch)
		proj = append(proj, projectedSphere{x, y, roundInt(diameter / 2), d, n})
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, p := range proj {
		c.Disc(p.x, p.y, p.r, p.node.Color)
	}
	return len(proj)
}

// BoundingRadius returns the largest distance of any sphere from the origin.
func BoundingRadius(g *scene.Graph) float64 {
	r := 0.0
	for _, n := range g.Spheres() {
		r = math.Max(r, n.WorldPosition().Length())
	}
	return r
}
