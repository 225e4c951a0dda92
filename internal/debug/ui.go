package debug

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIContext lays out overlay rows top to bottom.
type UIContext struct {
	X, Y         int
	LineHeight   int
	FontHeight   int
	MouseX       int
	MouseY       int
	MouseClicked bool
}

func NewUIContext(x, y, lineHeight, fontHeight int, mx, my int, clicked bool) *UIContext {
	return &UIContext{
		X:            x,
		Y:            y,
		LineHeight:   lineHeight,
		FontHeight:   fontHeight,
		MouseX:       mx,
		MouseY:       my,
		MouseClicked: clicked,
	}
}

func (ui *UIContext) Label(text string) {
	rl.DrawText(text, int32(ui.X), int32(ui.Y), int32(ui.FontHeight), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) IndentLabel(text string, indent int) {
	rl.DrawText(text, int32(ui.X+indent), int32(ui.Y), int32(ui.FontHeight), rl.White)
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Header(text string) {
	rl.DrawText(text, int32(ui.X), int32(ui.Y), int32(ui.FontHeight), rl.NewColor(255, 220, 120, 255))
	ui.Y += ui.LineHeight
}

func (ui *UIContext) Separator() {
	ui.Y += ui.LineHeight / 2
}

// Checkbox draws a toggle and reports whether it was clicked this frame.
func (ui *UIContext) Checkbox(label string, checked bool) bool {
	boxSize := int(float64(ui.FontHeight) * 0.8)
	boxX := ui.X + 5
	boxY := ui.Y + 2

	changed := ui.MouseClicked &&
		ui.MouseX >= boxX && ui.MouseX <= boxX+boxSize+100 &&
		ui.MouseY >= boxY && ui.MouseY <= boxY+boxSize

	rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxSize), int32(boxSize), rl.NewColor(150, 150, 150, 255))
	if checked {
		rl.DrawRectangle(int32(boxX+2), int32(boxY+2), int32(boxSize-4), int32(boxSize-4), rl.NewColor(100, 255, 100, 255))
	}
	rl.DrawText(label, int32(ui.X+5+boxSize+5), int32(ui.Y), int32(ui.FontHeight), rl.White)
	ui.Y += ui.LineHeight

	return changed
}
