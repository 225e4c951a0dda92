package canvas

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestIdentityApply(t *testing.T) {
	x, y := Identity().Apply(3, -4)
	if x != 3 || y != -4 {
		t.Errorf("Identity().Apply(3, -4) = (%v, %v), want (3, -4)", x, y)
	}
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
}

func TestMatrixCanvasArgumentOrder(t *testing.T) {
	// setTransform(a, b, c, d, e, f): x' = a*x + c*y + e, y' = b*x + d*y + f
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	x, y := m.Apply(1, 1)
	if x != 1+3+5 || y != 2+4+6 {
		t.Errorf("Apply(1, 1) = (%v, %v), want (9, 12)", x, y)
	}
}

func TestRotationQuarterTurn(t *testing.T) {
	// On a y-down screen, +90 degrees maps +x to +y.
	x, y := Rotation(math.Pi/2).Apply(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Errorf("Rotation(pi/2).Apply(1, 0) = (%v, %v), want (0, 1)", x, y)
	}
}

func TestRotateAppliesInUserSpace(t *testing.T) {
	// translate then rotate: the rotation happens around the translated origin.
	m := Matrix{A: 1, D: 1, E: 10, F: 20}.Rotate(math.Pi / 2)
	x, y := m.Apply(1, 0)
	if !near(x, 10) || !near(y, 21) {
		t.Errorf("Apply(1, 0) = (%v, %v), want (10, 21)", x, y)
	}
}

func TestMultiplyOrder(t *testing.T) {
	scale := Matrix{A: 2, D: 2}
	move := Matrix{A: 1, D: 1, E: 5}

	// move first, then scale
	x, _ := scale.Multiply(move).Apply(1, 0)
	if x != 12 {
		t.Errorf("scale x move applied to 1 = %v, want 12", x)
	}
	// scale first, then move
	x, _ = move.Multiply(scale).Apply(1, 0)
	if x != 7 {
		t.Errorf("move x scale applied to 1 = %v, want 7", x)
	}
}

func TestRectQuadWinding(t *testing.T) {
	q := RectQuad(Identity(), 0, 0, 2, 1)
	if q[2] != (Point{2, 1}) {
		t.Errorf("bottom-right corner = %v, want {2 1}", q[2])
	}
	if a := q.SignedArea(); a != 2 {
		t.Errorf("SignedArea() = %v, want 2", a)
	}

	mirrored := RectQuad(Matrix{A: -1, D: 1}, 0, 0, 2, 1)
	if a := mirrored.SignedArea(); a != -2 {
		t.Errorf("mirrored SignedArea() = %v, want -2", a)
	}
}
