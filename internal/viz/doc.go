// Package viz provides the terminal viewer for a head point cloud.
//
// The viewer is a Bubble Tea program:
//
//   - [Model]: drives a [playback.Controller] from frame ticks and key presses
//   - [Canvas]: braille canvas with per-cell color
//   - [Camera]: orbit camera used to project sphere nodes onto the canvas
//
// # Key Bindings
//
//	P      - Play
//	S      - Pause
//	Space  - Toggle play/pause
//	[ ]    - Step backward/forward
//	T      - Cycle color themes
//	?      - Show help overlay
package viz
