package canvas

// Point is a device-space coordinate.
type Point struct {
	X, Y float64
}

// Quad is a transformed rectangle: four device-space corners in the order
// top-left, top-right, bottom-right, bottom-left of the source rectangle.
type Quad [4]Point

// RectQuad transforms the user-space rectangle (x, y, w, h) by m.
func RectQuad(m Matrix, x, y, w, h float64) Quad {
	var q Quad
	q[0].X, q[0].Y = m.Apply(x, y)
	q[1].X, q[1].Y = m.Apply(x+w, y)
	q[2].X, q[2].Y = m.Apply(x+w, y+h)
	q[3].X, q[3].Y = m.Apply(x, y+h)
	return q
}

// SignedArea is positive when the corners run clockwise on a y-down screen.
func (q Quad) SignedArea() float64 {
	var sum float64
	for i := range q {
		j := (i + 1) % len(q)
		sum += q[i].X*q[j].Y - q[j].X*q[i].Y
	}
	return sum / 2
}

// Path collects quads in device space between BeginPath and Fill/Stroke.
type Path struct {
	quads []Quad
}

func (p *Path) Reset()        { p.quads = p.quads[:0] }
func (p *Path) Add(q Quad)    { p.quads = append(p.quads, q) }
func (p *Path) Len() int      { return len(p.quads) }
func (p *Path) Quads() []Quad { return p.quads }
func (p *Path) IsEmpty() bool { return len(p.quads) == 0 }
