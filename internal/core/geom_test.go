package core

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "edge touching horizontal (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "edge touching vertical (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 10, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "fractional overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9.99, 9.99, 10, 10),
			expected: true,
		},
		{
			name:     "bird against top pipe",
			a:        NewRect(50, 0, 34, 24),
			b:        NewRect(50, 0, 64, 512),
			expected: true,
		},
		{
			name:     "pipe above the field",
			a:        NewRect(45, 320, 34, 24),
			b:        NewRect(40, -300, 64, 512),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Overlaps(tc.b)
			if result != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Overlaps(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %v, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, expected 60", r.Bottom())
	}
}

func TestFieldReady(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		ready bool
	}{
		{"sized", Field{Width: 360, Height: 640}, true},
		{"zero value", Field{}, false},
		{"zero width", Field{Width: 0, Height: 640}, false},
		{"negative height", Field{Width: 360, Height: -1}, false},
		{"nan", Field{Width: math.NaN(), Height: 640}, false},
		{"inf", Field{Width: 360, Height: math.Inf(1)}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.field.Ready(); got != tc.ready {
				t.Errorf("Ready() = %v, expected %v", got, tc.ready)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Clamp returned unexpected values")
	}
	if ClampF(5.5, 0, 3) != 3 || ClampF(-0.5, 0, 3) != 0 || ClampF(1.5, 0, 3) != 1.5 {
		t.Error("ClampF returned unexpected values")
	}
}
