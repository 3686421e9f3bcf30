package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/headmap/internal/headmap"
	"github.com/san-kum/headmap/internal/playback"
	"github.com/san-kum/headmap/internal/scene"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColButton  = rl.NewColor(30, 30, 30, 255)
)

const (
	screenW = 1280
	screenH = 720
)

// Text is the on-screen timestep label.
type Text struct{ Value string }

func (t *Text) SetText(s string) { t.Value = s }

type button struct {
	label  string
	rect   rl.Rectangle
	action func()
}

type App struct {
	Cloud   *headmap.Cloud
	Graph   *scene.Graph
	Ctrl    *playback.Controller
	Label   *Text
	Camera  rl.Camera3D
	Buttons []button
}

func initWindow(fps int) {
	rl.InitWindow(screenW, screenH, "headmap")
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// NewApp wires a controller to cloud and applies timestep 0.
func NewApp(cloud *headmap.Cloud, graph *scene.Graph, interval float64) *App {
	label := &Text{}
	ctrl := playback.New(cloud, playback.WithLabel(label), playback.WithInterval(interval))
	ctrl.Start()

	a := &App{
		Cloud: cloud,
		Graph: graph,
		Ctrl:  ctrl,
		Label: label,
		Camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 20),
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 1, 0),
			45.0,
			rl.CameraPerspective,
		),
	}
	a.Buttons = []button{
		{"PLAY", rl.NewRectangle(30, 80, 100, 36), ctrl.Play},
		{"PAUSE", rl.NewRectangle(140, 80, 100, 36), ctrl.Pause},
		{"<", rl.NewRectangle(250, 80, 40, 36), ctrl.StepBackward},
		{">", rl.NewRectangle(300, 80, 40, 36), ctrl.StepForward},
	}
	return a
}

// Run opens the window and blocks until it is closed.
func Run(cloud *headmap.Cloud, graph *scene.Graph, interval float64, fps int) {
	initWindow(fps)
	defer rl.CloseWindow()
	app := NewApp(cloud, graph, interval)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Update handles input and advances one frame. It returns false on quit.
func (a *App) Update() bool {
	if rl.IsKeyPressed(rl.KeyQ) {
		return false
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		for _, b := range a.Buttons {
			if rl.CheckCollisionPointRec(mouse, b.rect) {
				b.action()
			}
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyP):
		a.Ctrl.Play()
	case rl.IsKeyPressed(rl.KeyS):
		a.Ctrl.Pause()
	case rl.IsKeyPressed(rl.KeySpace):
		a.Ctrl.Toggle()
	case rl.IsKeyPressed(rl.KeyRight), rl.IsKeyPressed(rl.KeyRightBracket):
		a.Ctrl.StepForward()
	case rl.IsKeyPressed(rl.KeyLeft), rl.IsKeyPressed(rl.KeyLeftBracket):
		a.Ctrl.StepBackward()
	}
	a.Ctrl.Tick(float64(rl.GetFrameTime()))
	return true
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	rl.BeginMode3D(a.Camera)
	a.RenderCloud()
	rl.EndMode3D()

	a.DrawHUD()
	rl.EndDrawing()
}

// RenderCloud draws each sphere node at its world transform.
func (a *App) RenderCloud() {
	for _, n := range a.Graph.Spheres() {
		p := n.WorldPosition()
		radius := float32(n.WorldScale().X / 2)
		rl.DrawSphere(rl.NewVector3(float32(p.X), float32(p.Y), float32(p.Z)), radius, toColor(n.Color))
	}
}

func (a *App) DrawHUD() {
	rl.DrawText("headmap", 30, 30, 24, ColSelect)
	rl.DrawText(a.Label.Value, 400, 88, 20, ColAccent)

	status, col := "PAUSED", ColTextDim
	if a.Ctrl.Playing() {
		status, col = "PLAYING", ColSelect
	}
	rl.DrawText(status, 1150, 30, 16, col)

	for _, b := range a.Buttons {
		rl.DrawRectangleRec(b.rect, ColButton)
		rl.DrawRectangleLinesEx(b.rect, 1, ColAccent)
		tw := rl.MeasureText(b.label, 16)
		rl.DrawText(b.label, int32(b.rect.X+b.rect.Width/2)-tw/2, int32(b.rect.Y+10), 16, ColSelect)
	}

	r := a.Cloud.Range
	rl.DrawText(fmt.Sprintf("%d points  %d steps  range %.4g .. %.4g", len(a.Cloud.Points), a.Ctrl.Len(), r.Min, r.Max), 30, 650, 14, ColText)
	rl.DrawText("[P] PLAY  [S] PAUSE  [SPACE] TOGGLE  [<-/->] STEP  [Q] QUIT", 700, 680, 14, ColTextDim)
	rl.DrawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, 680, 14, ColTextDim)
}

func toColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
