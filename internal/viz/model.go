package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/headmap/internal/headmap"
	"github.com/san-kum/headmap/internal/playback"
	"github.com/san-kum/headmap/internal/scene"
)

const (
	width  = 60
	height = 22
)

type TickMsg time.Time

// textLabel holds the controller's timestep display.
type textLabel struct{ text string }

func (l *textLabel) SetText(s string) { l.text = s }

type Options struct {
	FPS      int
	Interval float64
	Theme    string
}

// Model is the bubbletea model for the point-cloud viewer.
type Model struct {
	cloud    *headmap.Cloud
	graph    *scene.Graph
	ctrl     *playback.Controller
	label    *textLabel
	canvas   *Canvas
	camera   *Camera
	theme    Theme
	mean     []float64
	fps      int
	last     time.Time
	drawn    int
	showHelp bool
}

// NewModel wires a controller to cloud and applies timestep 0.
func NewModel(cloud *headmap.Cloud, graph *scene.Graph, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	label := &textLabel{}
	ctrl := playback.New(cloud,
		playback.WithLabel(label),
		playback.WithInterval(opts.Interval),
	)
	ctrl.Start()

	cam := NewCamera()
	cam.SetFPS(opts.FPS)
	cam.Fit(BoundingRadius(graph))

	return Model{
		cloud:  cloud,
		graph:  graph,
		ctrl:   ctrl,
		label:  label,
		canvas: NewCanvas(width, height),
		camera: cam,
		theme:  GetTheme(opts.Theme),
		mean:   cloud.MeanSeries(),
		fps:    opts.FPS,
	}
}

func (m Model) Controller() *playback.Controller { return m.ctrl }

func (m Model) Label() string { return m.label.text }

func (m Model) frameInterval() time.Duration {
	return time.Second / time.Duration(m.fps)
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "p":
			m.ctrl.Play()
		case "s":
			m.ctrl.Pause()
		case " ":
			m.ctrl.Toggle()
		case "]", "right", "l":
			m.ctrl.StepForward()
		case "[", "left", "h":
			m.ctrl.StepBackward()
		case "home", "g":
			_ = m.ctrl.Jump(0)
		case "end", "G":
			_ = m.ctrl.Jump(m.ctrl.Len() - 1)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		case "r":
			m.camera.Reset()
		case "t":
			m.theme = NextTheme(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		dt := m.frameInterval().Seconds()
		if !m.last.IsZero() {
			dt = now.Sub(m.last).Seconds()
		}
		m.last = now
		m.ctrl.Tick(dt)
		m.camera.Step()
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.drawn = RenderSpheres(m.canvas, m.graph, m.camera)
}

// View renders the canvas and the stats panel side by side.
func (m Model) View() string {
	m.draw()

	header := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).MarginBottom(1)
	panel := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(m.theme.Border).
		Padding(1, 2).
		Width(44)

	var s strings.Builder
	s.WriteString(header.Render("HEADMAP") + "\n")
	if m.ctrl.Playing() {
		s.WriteString(StatusPlaying.Render(m.ctrl.State().String()))
	} else {
		s.WriteString(StatusPaused.Render(m.ctrl.State().String()))
	}
	s.WriteString("\n\n")
	s.WriteString(lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(m.label.text) + "\n")
	s.WriteString(ProgressBar(m.ctrl.Timestep(), m.ctrl.Len(), 30) + "\n\n")

	r := m.cloud.Range
	s.WriteString(labelStyle.Render("Points") + valueStyle.Render(fmt.Sprintf("%d (%d drawn)", len(m.cloud.Points), m.drawn)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.ctrl.Len())) + "\n")
	s.WriteString(labelStyle.Render("Range") + valueStyle.Render(fmt.Sprintf("%.4g … %.4g", r.Min, r.Max)) + "\n")
	if t := m.ctrl.Timestep(); t < len(m.mean) {
		s.WriteString(labelStyle.Render("Mean") + valueStyle.Render(fmt.Sprintf("%.4g", m.mean[t])) + "\n")
	}
	s.WriteString(labelStyle.Render("Scale") + GradientText("min ━━━━━━━━ max", "#ff0000", "#00ff00") + "\n")

	if len(m.mean) > 1 {
		chart := asciigraph.Plot(m.mean, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("mean value"))
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(m.theme.Accent).Render(chart) + "\n")
	}

	s.WriteString("\n" + Separator(30) + "\n")
	s.WriteString(KeyHint.Render("P:Play S:Pause SP:Toggle\n[ ]:Step T:Theme ?:Help Q:Quit"))

	canvasView := lipgloss.NewStyle().Padding(1, 2).Render(m.canvas.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, panel.Render(s.String()))
	if m.showHelp {
		themes := KeyHint.Render("Themes: " + strings.Join(ThemeNames(), ", "))
		return helpText + "\n" + themes + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  P        - Play                     ║
║  S        - Pause                    ║
║  Space    - Toggle play/pause        ║
║  ] / →    - Step forward             ║
║  [ / ←    - Step backward            ║
║  Home/End - First/last timestep      ║
║  x y z    - Rotate view (shift: -)   ║
║  + / -    - Zoom                     ║
║  R        - Reset view               ║
║  T        - Cycle themes             ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the viewer and blocks until the user quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
