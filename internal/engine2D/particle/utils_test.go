package particle

import (
	"math"
	"testing"
)

func TestRandomBetweenBounds(t *testing.T) {
	tests := []struct{ low, high float64 }{
		{0, 1},
		{-5, 5},
		{15, 25},
		{0.01, 0.075},
	}
	for _, tt := range tests {
		for range 1000 {
			v := RandomBetween(tt.low, tt.high)
			if v < tt.low || v >= tt.high {
				t.Fatalf("RandomBetween(%v, %v) = %v, outside [low, high)", tt.low, tt.high, v)
			}
		}
	}
}

func TestRandomRoundedTwoDecimals(t *testing.T) {
	for range 1000 {
		v := RandomRounded(0, 1, 2)
		if v < 0 || v > 1 {
			t.Fatalf("RandomRounded(0, 1, 2) = %v, outside [0, 1]", v)
		}
		if math.Round(v*100)/100 != v {
			t.Fatalf("RandomRounded(0, 1, 2) = %v, not at 2-decimal precision", v)
		}
	}
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		in       float64
		decimals int
		want     float64
	}{
		{0.123456, 2, 0.12},
		{0.125, 0, 0},
		{0.995, 1, 1},
		{2.5, 0, 3},
		{1.23456, -1, 1},
	}
	for _, tt := range tests {
		if got := roundTo(tt.in, tt.decimals); got != tt.want {
			t.Errorf("roundTo(%v, %d) = %v, want %v", tt.in, tt.decimals, got, tt.want)
		}
	}
}

func TestSetSeedReproducible(t *testing.T) {
	SetSeed(42)
	a := []float64{RandomBetween(0, 1), RandomBetween(0, 1), RandomBetween(0, 1)}
	SetSeed(42)
	b := []float64{RandomBetween(0, 1), RandomBetween(0, 1), RandomBetween(0, 1)}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs after reseeding: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestRandomSignBothWays(t *testing.T) {
	var pos, neg int
	for range 1000 {
		switch randomSign() {
		case 1:
			pos++
		case -1:
			neg++
		default:
			t.Fatal("randomSign() returned something other than +-1")
		}
	}
	if pos == 0 || neg == 0 {
		t.Errorf("randomSign() never varied: %d positive, %d negative", pos, neg)
	}
}
