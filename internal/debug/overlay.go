// Package debug draws the on-screen diagnostics panel of the window host.
package debug

import (
	"fmt"
	"runtime"
	"time"

	"linux-confetti/internal/wallpaper"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ToggleKey shows and hides the overlay.
const ToggleKey = rl.KeyF8

type DebugOverlay struct {
	Visible           bool
	ShowBoundingBoxes bool

	scene *wallpaper.Scene

	fontHeight int
	lineHeight int

	mouseX, mouseY int
	clicked        bool

	lastMemUpdate time.Time
	memStats      runtime.MemStats
}

func NewDebugOverlay(scene *wallpaper.Scene) *DebugOverlay {
	return &DebugOverlay{
		scene:      scene,
		fontHeight: 16,
		lineHeight: 20,
	}
}

// Update handles input. Call it once per rendered frame.
func (d *DebugOverlay) Update() {
	if rl.IsKeyPressed(ToggleKey) {
		d.Visible = !d.Visible
	}
	if !d.Visible {
		return
	}

	d.mouseX, d.mouseY = int(rl.GetMouseX()), int(rl.GetMouseY())
	d.clicked = rl.IsMouseButtonPressed(rl.MouseButtonLeft)

	if time.Since(d.lastMemUpdate) > time.Second {
		runtime.ReadMemStats(&d.memStats)
		d.lastMemUpdate = time.Now()
	}
}

// Draw paints the panel onto the current render target.
func (d *DebugOverlay) Draw() {
	if !d.Visible {
		return
	}
	if d.ShowBoundingBoxes {
		d.drawBoundingBoxes()
	}

	rl.DrawRectangle(0, 0, 280, int32(rl.GetScreenHeight()), rl.NewColor(0, 0, 0, 170))
	ui := NewUIContext(10, 10, d.lineHeight, d.fontHeight, d.mouseX, d.mouseY, d.clicked)

	ui.Header("Timing:")
	ui.IndentLabel(fmt.Sprintf("FPS: %d", rl.GetFPS()), 10)
	ui.IndentLabel(fmt.Sprintf("Frame Time: %.2f ms", rl.GetFrameTime()*1000), 10)
	ui.Separator()

	ui.Header("Scene:")
	ui.IndentLabel(fmt.Sprintf("Hue: %.2f", d.scene.Shared.StartingHue), 10)
	for _, l := range d.scene.Layers() {
		state := "running"
		if l.Canvas.Halted() {
			state = "halted"
		}
		ui.IndentLabel(fmt.Sprintf("%s: %d particles, %s", l.Name, len(l.Particles), state), 10)
		ui.IndentLabel(fmt.Sprintf("frames %d, exiting %d", l.Canvas.Frames(), l.Exiting()), 20)
	}
	ui.Separator()

	ui.Header("Memory:")
	ui.IndentLabel(fmt.Sprintf("Heap Alloc: %.2f MB", float64(d.memStats.HeapAlloc)/1024/1024), 10)
	ui.IndentLabel(fmt.Sprintf("Goroutines: %d", runtime.NumGoroutine()), 10)
	ui.Separator()

	if ui.Checkbox("Show Bounding Boxes", d.ShowBoundingBoxes) {
		d.ShowBoundingBoxes = !d.ShowBoundingBoxes
	}
	if ui.Checkbox("Paused", !d.scene.Running()) {
		if d.scene.Running() {
			d.scene.Stop()
		} else {
			d.scene.Start()
		}
	}
}
