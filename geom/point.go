// Package geom provides integer points, axis directions, and strided
// N-dimensional grids for puzzle solutions.
package geom

import (
	"fmt"
	"strings"
)

// A Point is an N-component vector of signed integers. The component
// count is fixed when the point is created; combining points of
// different dimensionality panics.
type Point []int

// Pt creates a point from its components.
func Pt(comps ...int) Point {
	return Point(comps)
}

// Pt2 creates a 2D point.
func Pt2(x, y int) Point {
	return Point{x, y}
}

// Pt3 creates a 3D point.
func Pt3(x, y, z int) Point {
	return Point{x, y, z}
}

// Zero creates the origin of an n-dimensional space.
func Zero(n int) Point {
	return make(Point, n)
}

func (p Point) Dims() int {
	return len(p)
}

func (p Point) X() int {
	return p[0]
}

func (p Point) Y() int {
	return p[1]
}

func (p Point) Z() int {
	return p[2]
}

func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)
	return out
}

func assertSameDims(a, b Point) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("geom: dimension mismatch: %d != %d", len(a), len(b)))
	}
}

func (p Point) combine(o Point, f func(a, b int) int) Point {
	assertSameDims(p, o)
	out := make(Point, len(p))
	for i, c := range p {
		out[i] = f(c, o[i])
	}
	return out
}

func (p Point) mapComps(f func(c int) int) Point {
	out := make(Point, len(p))
	for i, c := range p {
		out[i] = f(c)
	}
	return out
}

func (p Point) Add(o Point) Point {
	return p.combine(o, func(a, b int) int { return a + b })
}

func (p Point) Sub(o Point) Point {
	return p.combine(o, func(a, b int) int { return a - b })
}

func (p Point) Neg() Point {
	return p.mapComps(func(c int) int { return -c })
}

// Scale multiplies every component by k.
func (p Point) Scale(k int) Point {
	return p.mapComps(func(c int) int { return c * k })
}

func (p Point) Abs() Point {
	return p.mapComps(abs)
}

func (p Point) Signum() Point {
	return p.mapComps(func(c int) int {
		switch {
		case c > 0:
			return 1
		case c < 0:
			return -1
		}
		return 0
	})
}

func abs(c int) int {
	if c < 0 {
		return -c
	}
	return c
}

// ManhattanDist returns the sum of per-component absolute differences.
func (p Point) ManhattanDist(o Point) int {
	assertSameDims(p, o)
	total := 0
	for i, c := range p {
		total += abs(c - o[i])
	}
	return total
}

func (p Point) Eq(o Point) bool {
	if len(p) != len(o) {
		return false
	}
	for i, c := range p {
		if c != o[i] {
			return false
		}
	}
	return true
}

func (p Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// OrientationDelta returns a unit vector along one of the 2*dims axis
// directions: component o%dims, positive for o < dims, negative
// otherwise. Panics if o is not in [0, 2*dims).
func OrientationDelta(dims, o int) Point {
	if o < 0 || o >= 2*dims {
		panic(fmt.Sprintf("geom: orientation %d out of range for %d dimensions", o, dims))
	}
	out := make(Point, dims)
	if o < dims {
		out[o] = 1
	} else {
		out[o-dims] = -1
	}
	return out
}

// Neighbors8 iterates over the eight orthogonal and diagonal neighbors
// of a 2D point, left-to-right, top-to-bottom, skipping the point
// itself.
type Neighbors8 struct {
	p Point
	i int
}

func (p Point) Neighbors8() *Neighbors8 {
	if len(p) != 2 {
		panic("geom: Neighbors8 requires a 2D point")
	}
	return &Neighbors8{p: p}
}

func (n *Neighbors8) Next() (Point, bool) {
	if n.i == 4 {
		n.i++
	}
	if n.i >= 9 {
		return nil, false
	}
	i := n.i
	n.i++
	return Pt2(n.p.X()+i%3-1, n.p.Y()+i/3-1), true
}
