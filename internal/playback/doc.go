// Package playback scrubs a shared timestep through a [Timeline].
//
// The [Controller] is a two-state machine, Paused (initial) and Playing.
// Tick is called once per rendered frame with the frame duration; while
// playing, the timestep advances whenever the accumulated time reaches the
// advance interval. Manual steps wrap at both ends.
//
// Tick is deterministic and has no clock of its own, so tests drive it
// directly:
//
//	ctrl := playback.New(cloud, playback.WithLabel(label))
//	ctrl.Start()
//	ctrl.Play()
//	for i := 0; i < 8; i++ {
//		ctrl.Tick(0.125)
//	}
package playback
