package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind distinguishes transform-only nodes from drawable primitives.
type Kind int

const (
	KindGroup Kind = iota
	KindSphere
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	default:
		return "group"
	}
}

// Node is a transform in the graph. Position, Rotation and Scale are local
// to the parent.
type Node struct {
	Name     string
	Kind     Kind
	Parent   *Node
	Children []*Node
	Position Vec3
	Rotation mgl64.Quat
	Scale    Vec3
	Color    color.RGBA
}

func newNode(name string, kind Kind, pos Vec3) *Node {
	return &Node{
		Name:     name,
		Kind:     kind,
		Position: pos,
		Rotation: mgl64.QuatIdent(),
		Scale:    Vec3{1, 1, 1},
		Color:    color.RGBA{255, 255, 255, 255},
	}
}

// Add reparents child under n, keeping its local transform.
func (n *Node) Add(child *Node) {
	if child.Parent != nil {
		child.Parent.remove(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			return
		}
	}
}

// SetColor sets the material color.
func (n *Node) SetColor(c color.RGBA) { n.Color = c }

// SetScale sets a uniform local scale.
func (n *Node) SetScale(s float64) { n.Scale = Vec3{s, s, s} }

// SetEuler replaces the local rotation with Euler angles in degrees.
func (n *Node) SetEuler(x, y, z float64) { n.Rotation = Euler(x, y, z) }

// Rotate applies Euler angles in degrees relative to the node's own axes.
func (n *Node) Rotate(x, y, z float64) {
	n.Rotation = n.Rotation.Mul(Euler(x, y, z)).Normalize()
}

// WorldRotation composes the rotations from the root down to n.
func (n *Node) WorldRotation() mgl64.Quat {
	if n.Parent == nil {
		return n.Rotation
	}
	return n.Parent.WorldRotation().Mul(n.Rotation)
}

// WorldScale composes the scales from the root down to n.
func (n *Node) WorldScale() Vec3 {
	if n.Parent == nil {
		return n.Scale
	}
	return n.Parent.WorldScale().Mul(n.Scale)
}

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() Vec3 {
	if n.Parent == nil {
		return n.Position
	}
	p := n.Parent
	local := n.Position.Mul(p.WorldScale())
	return p.WorldPosition().Add(Rotate(p.WorldRotation(), local))
}
