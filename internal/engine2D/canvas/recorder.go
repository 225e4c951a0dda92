package canvas

import (
	"fmt"
	"image/color"
)

// Op names recorded by Recorder.
const (
	OpSetTransform = "setTransform"
	OpRotate       = "rotate"
	OpSetFill      = "fillStyle"
	OpFillRect     = "fillRect"
	OpClear        = "clear"
	OpBeginPath    = "beginPath"
	OpRect         = "rect"
	OpFill         = "fill"
	OpStroke       = "stroke"
)

// Command is one recorded surface call.
type Command struct {
	Op        string
	Transform Matrix      // transform in effect after the call
	Color     color.Color // fill color in effect after the call
	Rect      [4]float64  // x, y, w, h for fillRect and rect
	Angle     float64     // rotate
}

// Recorder is a Surface that paints nothing and keeps a log of calls. It backs
// the dry-run host and stands in for real surfaces in tests.
type Recorder struct {
	width, height int
	transform     Matrix
	fill          color.Color
	path          Path
	Commands      []Command

	// Keep bounds memory on long dry runs; zero keeps everything.
	MaxCommands int

	Filled  int // rectangles painted by FillRect or Fill
	Clears  int
	Strokes int
}

var _ Surface = (*Recorder)(nil)

func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		transform: Identity(),
		fill:      color.Black,
	}
}

func (r *Recorder) Width() int  { return r.width }
func (r *Recorder) Height() int { return r.height }

func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d, height=%d", width, height)
	}
	r.width, r.height = width, height
	return nil
}

// Transform returns the current transform.
func (r *Recorder) Transform() Matrix { return r.transform }

// Reset drops recorded commands and counters.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
	r.Filled, r.Clears, r.Strokes = 0, 0, 0
}

func (r *Recorder) record(cmd Command) {
	if r.MaxCommands > 0 && len(r.Commands) >= r.MaxCommands {
		return
	}
	cmd.Transform = r.transform
	cmd.Color = r.fill
	r.Commands = append(r.Commands, cmd)
}

func (r *Recorder) SetTransform(m Matrix) {
	r.transform = m
	r.record(Command{Op: OpSetTransform})
}

func (r *Recorder) Rotate(angle float64) {
	r.transform = r.transform.Rotate(angle)
	r.record(Command{Op: OpRotate, Angle: angle})
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.fill = c
	r.record(Command{Op: OpSetFill})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.Filled++
	r.record(Command{Op: OpFillRect, Rect: [4]float64{x, y, w, h}})
}

func (r *Recorder) Clear() {
	r.Clears++
	r.record(Command{Op: OpClear})
}

func (r *Recorder) BeginPath() {
	r.path.Reset()
	r.record(Command{Op: OpBeginPath})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.path.Add(RectQuad(r.transform, x, y, w, h))
	r.record(Command{Op: OpRect, Rect: [4]float64{x, y, w, h}})
}

func (r *Recorder) Fill() error {
	r.Filled += r.path.Len()
	r.record(Command{Op: OpFill})
	return nil
}

func (r *Recorder) Stroke() error {
	r.Strokes += r.path.Len()
	r.record(Command{Op: OpStroke})
	return nil
}

// Count returns how many recorded commands have the given op.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Commands {
		if c.Op == op {
			n++
		}
	}
	return n
}
