package u16math

import (
	"math"
	"testing"
)

func TestSatAdd(t *testing.T) {
	tests := []struct {
		a, b, want uint16
	}{
		{0, 0, 0},
		{1, 2, 3},
		{65535, 0, 65535},
		{65535, 1, 65535},
		{40000, 40000, 65535},
		{65534, 1, 65535},
	}

	for _, tt := range tests {
		if got := SatAdd(tt.a, tt.b); got != tt.want {
			t.Fatalf("SatAdd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSatSub(t *testing.T) {
	tests := []struct {
		a, b, want uint16
	}{
		{0, 0, 0},
		{3, 1, 2},
		{1, 3, 0},
		{0, 65535, 0},
		{65535, 65535, 0},
	}

	for _, tt := range tests {
		if got := SatSub(tt.a, tt.b); got != tt.want {
			t.Fatalf("SatSub(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want uint16
	}{
		{5, 0, 10, 5},
		{0, 2, 10, 2},
		{11, 2, 10, 10},
		{5, 10, 0, 5}, // inverted bounds are swapped
		{1, 10, 0, 1},
		{7, 7, 7, 7},
	}

	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		a, b, want uint16
	}{
		{0, 0, 0},
		{10, 3, 7},
		{3, 10, 7},
		{0, 65535, 65535},
		{65535, 0, 65535},
	}

	for _, tt := range tests {
		if got := AbsDiff(tt.a, tt.b); got != tt.want {
			t.Fatalf("AbsDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloorClamp(t *testing.T) {
	tests := []struct {
		x    float64
		want uint16
	}{
		{0, 0},
		{0.9, 0},
		{93.75, 93},
		{65535, 65535},
		{65535.9, 65535},
		{70000, 65535},
		{-5, 0},
		{math.NaN(), 0},
		{math.Inf(1), 65535},
		{math.Inf(-1), 0},
	}

	for _, tt := range tests {
		if got := FloorClamp(tt.x); got != tt.want {
			t.Fatalf("FloorClamp(%f) = %d, want %d", tt.x, got, tt.want)
		}
	}
}
