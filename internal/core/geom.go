// Package core provides fundamental types shared by the simulation and the
// platform shell. It contains no external dependencies (especially no Bubble
// Tea) to keep the world logic pure and testable.
package core

// Point is a 2D grid coordinate.
type Point struct {
	X, Y int
}

// Adjacent returns true if p and q are within one tile of each other in
// both axes (diagonals count), excluding the case p == q.
func (p Point) Adjacent(q Point) bool {
	return p != q && Abs(p.X-q.X) <= 1 && Abs(p.Y-q.Y) <= 1
}

// Rect is an axis-aligned rectangle with inclusive corners, used for room
// placement during generation.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle from a top-left corner and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w - 1, Y2: y + h - 1}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects returns true if this rectangle overlaps another (inclusive
// edges: touching rectangles intersect, which is what room clearance wants).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Expand grows the rectangle by n tiles on every side, clamped to
// [0, w-1] x [0, h-1].
func (r Rect) Expand(n, w, h int) Rect {
	return Rect{
		X1: Max(0, r.X1-n),
		Y1: Max(0, r.Y1-n),
		X2: Min(w-1, r.X2+n),
		Y2: Min(h-1, r.Y2+n),
	}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
