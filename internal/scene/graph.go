package scene

import "fmt"

// Graph owns every node created through it.
type Graph struct {
	roots   []*Node
	spheres int
}

func New() *Graph {
	return &Graph{roots: make([]*Node, 0, 1)}
}

// NewRoot creates an empty group node at the origin.
func (g *Graph) NewRoot(name string) *Node {
	n := newNode(name, KindGroup, Vec3{})
	g.roots = append(g.roots, n)
	return n
}

// CreateSphere creates a unit sphere at local position pos under parent.
// A nil parent makes the sphere a root.
func (g *Graph) CreateSphere(parent *Node, pos Vec3) *Node {
	n := newNode(fmt.Sprintf("Sphere%d", g.spheres), KindSphere, pos)
	g.spheres++
	if parent == nil {
		g.roots = append(g.roots, n)
		return n
	}
	parent.Add(n)
	return n
}

func (g *Graph) Roots() []*Node { return g.roots }

// Walk visits every node depth first, parents before children.
func (g *Graph) Walk(fn func(*Node)) {
	var visit func(*Node)
	visit = func(n *Node) {
		fn(n)
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range g.roots {
		visit(r)
	}
}

// Spheres returns every sphere node in walk order.
func (g *Graph) Spheres() []*Node {
	out := make([]*Node, 0, g.spheres)
	g.Walk(func(n *Node) {
		if n.Kind == KindSphere {
			out = append(out, n)
		}
	})
	return out
}
