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
			name:     "non-overlapping vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "corner touch",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(2, 2, 5, 5) // inclusive corners (2,2)-(6,6)
	c := r.Center()
	if c.X != 4 || c.Y != 4 {
		t.Errorf("Center() = (%d, %d), expected (4, 4)", c.X, c.Y)
	}
}

func TestRectExpandClampsToGrid(t *testing.T) {
	r := NewRect(0, 0, 5, 5)
	e := r.Expand(2, 40, 30)

	if e.X1 != 0 || e.Y1 != 0 {
		t.Errorf("Expand clamped corner = (%d, %d), expected (0, 0)", e.X1, e.Y1)
	}
	if e.X2 != 6 || e.Y2 != 6 {
		t.Errorf("Expand far corner = (%d, %d), expected (6, 6)", e.X2, e.Y2)
	}

	edge := NewRect(36, 26, 4, 4).Expand(2, 40, 30)
	if edge.X2 != 39 || edge.Y2 != 29 {
		t.Errorf("Expand past the grid = (%d, %d), expected (39, 29)", edge.X2, edge.Y2)
	}
}

func TestPointAdjacent(t *testing.T) {
	p := Point{X: 5, Y: 5}

	tests := []struct {
		name     string
		q        Point
		expected bool
	}{
		{"same tile", Point{5, 5}, false},
		{"orthogonal", Point{6, 5}, true},
		{"diagonal", Point{4, 4}, true},
		{"two away", Point{7, 5}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Adjacent(tc.q); got != tc.expected {
				t.Errorf("Adjacent(%v) = %v, expected %v", tc.q, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Errorf("Clamp(42, 0, 10) = %d", got)
	}
}
