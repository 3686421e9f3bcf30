package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/headmap/internal/headmap"
	"github.com/san-kum/headmap/internal/scene"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	g := scene.New()
	cloud, err := headmap.Build(g,
		[]headmap.Vertex{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 1}},
		[]headmap.Series{{1, 3, 2}, {2, 4, 1}},
		headmap.DefaultOptions())
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	return NewModel(cloud, g, Options{FPS: 60})
}

func key(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelStartsAtZero(t *testing.T) {
	m := newTestModel(t)
	if m.Label() != "Current Time: 0" {
		t.Errorf("expected initial label, got %q", m.Label())
	}
	if m.Controller().Playing() {
		t.Error("viewer should start paused")
	}
}

func TestModelStepKeys(t *testing.T) {
	m := newTestModel(t)

	m = send(m, key("]"), key("right"))
	if got := m.Controller().Timestep(); got != 2 {
		t.Errorf("expected timestep 2, got %d", got)
	}
	m = send(m, key("]"))
	if got := m.Controller().Timestep(); got != 0 {
		t.Errorf("expected wrap to 0, got %d", got)
	}
	m = send(m, key("["))
	if got := m.Label(); got != "Current Time: 2" {
		t.Errorf("expected label for timestep 2, got %q", got)
	}
	m = send(m, key("g"))
	if got := m.Controller().Timestep(); got != 0 {
		t.Errorf("expected jump to 0, got %d", got)
	}
}

func TestModelPlayback(t *testing.T) {
	m := newTestModel(t)
	m = send(m, key("p"))
	if !m.Controller().Playing() {
		t.Fatal("expected playing after p")
	}

	start := time.Unix(1000, 0)
	for i := 0; i <= 4; i++ {
		m = send(m, TickMsg(start.Add(time.Duration(i)*125*time.Millisecond)))
	}
	if got := m.Controller().Timestep(); got != 2 {
		t.Errorf("expected two advances in 0.5s, got timestep %d", got)
	}

	m = send(m, key("s"))
	m = send(m, TickMsg(start.Add(2*time.Second)))
	if got := m.Controller().Timestep(); got != 2 {
		t.Errorf("paused viewer advanced to %d", got)
	}

	m = send(m, key(" "))
	if !m.Controller().Playing() {
		t.Error("space should resume playback")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"HEADMAP", "PAUSED", "Current Time: 0", "mean value"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(m, key("?"))
	help := m.View()
	if !strings.Contains(help, "KEYBOARD SHORTCUTS") {
		t.Error("help overlay not shown")
	}
	for _, name := range ThemeNames() {
		if !strings.Contains(help, name) {
			t.Errorf("help missing theme %q", name)
		}
	}
}

func TestRenderSpheres(t *testing.T) {
	g := scene.New()
	root := g.NewRoot("root")
	g.CreateSphere(root, scene.Vec3{})
	g.CreateSphere(root, scene.Vec3{X: 1})
	g.CreateSphere(root, scene.Vec3{Z: 1000})

	cam := NewCamera()
	cam.Fit(BoundingRadius(g) / 1000)
	c := NewCanvas(20, 10)

	if n := RenderSpheres(c, g, cam); n != 2 {
		t.Errorf("expected 2 visible spheres, got %d", n)
	}
	if RenderSpheres(nil, g, cam) != 0 {
		t.Error("nil canvas should draw nothing")
	}
}

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera()
	x, y, _, ok := cam.Project(scene.Vec3{}, 40, 20)
	if !ok || x != 20 || y != 10 {
		t.Errorf("origin should project to center, got (%d,%d) visible=%v", x, y, ok)
	}

	cam.RotateZ(0.3)
	cam.Reset()
	if cam.RotZ != 0 {
		t.Error("reset did not clear rotation")
	}
}

func TestCameraZoomEases(t *testing.T) {
	cam := NewCamera()
	cam.ZoomIn()
	if cam.Zoom != 1.0 {
		t.Errorf("zoom should not jump, got %v", cam.Zoom)
	}
	if cam.TargetZoom() != 1.2 {
		t.Errorf("expected target 1.2, got %v", cam.TargetZoom())
	}
	cam.Step()
	if cam.Zoom <= 1.0 || cam.Zoom >= 1.2 {
		t.Errorf("expected zoom between 1 and 1.2 after one step, got %v", cam.Zoom)
	}
	for i := 0; i < 300; i++ {
		cam.Step()
	}
	if d := cam.Zoom - 1.2; d > 1e-3 || d < -1e-3 {
		t.Errorf("zoom did not settle, got %v", cam.Zoom)
	}
}
