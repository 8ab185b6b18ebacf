package core

import "testing"

func TestRectIntersects(t *testing.T) {
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
			name:     "adjacent (no overlap)",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := tc.a.Intersects(tc.b); result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			if result := tc.b.Intersects(tc.a); result != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", result, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if result := r.Contains(tc.x, tc.y); result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}
	for _, tc := range tests {
		if result := Clamp(tc.val, tc.lo, tc.hi); result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, result, tc.expected)
		}
	}
	if ClampF(95, 0, 85) != 85 || ClampF(-1, 0, 85) != 0 || ClampF(35, 0, 85) != 35 {
		t.Error("ClampF() did not clamp to [0, 85]")
	}
}

func TestViewportToScreen(t *testing.T) {
	v := Viewport{
		Area: NewRect(0, 0, 100, 20),
		MinX: 0, MaxX: 100,
		MinY: 0, MaxY: 20,
	}

	tests := []struct {
		name   string
		x, y   float64
		sx, sy int
		ok     bool
	}{
		{name: "origin is bottom-left", x: 0, y: 0, sx: 0, sy: 19, ok: true},
		{name: "top-right corner", x: 100, y: 20, sx: 99, sy: 0, ok: true},
		{name: "middle", x: 50.5, y: 10.5, sx: 50, sy: 9, ok: true},
		{name: "left of view", x: -1, y: 5, ok: false},
		{name: "above view", x: 10, y: 21, ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sx, sy, ok := v.ToScreen(tc.x, tc.y)
			if ok != tc.ok {
				t.Fatalf("ToScreen() ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (sx != tc.sx || sy != tc.sy) {
				t.Errorf("ToScreen() = (%d, %d), expected (%d, %d)", sx, sy, tc.sx, tc.sy)
			}
		})
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{
		Area: NewRect(2, 1, 60, 18),
		MinX: -10, MaxX: 110,
		MinY: -2, MaxY: 43,
	}
	for _, cell := range [][2]int{{2, 1}, {30, 10}, {61, 18}} {
		x, y := v.ToWorld(cell[0], cell[1])
		sx, sy, ok := v.ToScreen(x, y)
		if !ok || sx != cell[0] || sy != cell[1] {
			t.Errorf("cell %v -> (%v, %v) -> (%d, %d, %v)", cell, x, y, sx, sy, ok)
		}
	}
}

func TestViewportDegenerate(t *testing.T) {
	v := Viewport{Area: NewRect(0, 0, 0, 10), MaxX: 1, MaxY: 1}
	if _, _, ok := v.ToScreen(0.5, 0.5); ok {
		t.Error("ToScreen() on an empty area reported a cell")
	}
}
