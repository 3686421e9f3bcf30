// Package scene provides a small retained scene graph for point-cloud rendering.
//
// A [Graph] owns a forest of [Node] values. Group nodes carry a transform
// only; sphere nodes additionally carry a material color and a uniform
// scale that front ends read when drawing:
//
//	g := scene.New()
//	head := g.NewRoot("Head")
//	ball := g.CreateSphere(head, scene.Vec3{X: 1})
//	ball.SetColor(color.RGBA{R: 255, A: 255})
//
// Rotations are stored as quaternions. Euler angles are in degrees and are
// applied Z first, then X, then Y.
package scene
