package geom

// A Direction identifies one of the 2N axis directions of an
// N-dimensional space. Directions 0..N-1 point along the positive
// axes, N..2N-1 along the negative axes. Adding to a direction cycles
// through the 2N values.
type Direction struct {
	dims uint8
	val  uint8
}

// NewDirection creates a direction in a dims-dimensional space,
// reducing val modulo 2*dims.
func NewDirection(dims, val int) Direction {
	n := 2 * dims
	return Direction{
		dims: uint8(dims),
		val:  uint8(((val % n) + n) % n),
	}
}

// The four 2D directions, in clockwise rotation order.
var (
	East  = NewDirection(2, 0)
	South = NewDirection(2, 1)
	West  = NewDirection(2, 2)
	North = NewDirection(2, 3)
)

func (d Direction) Dims() int {
	return int(d.dims)
}

// Delta returns the unit vector for this direction.
func (d Direction) Delta() Point {
	out := make(Point, d.dims)
	i := int(d.val) % int(d.dims)
	if int(d.val) < int(d.dims) {
		out[i] = 1
	} else {
		out[i] = -1
	}
	return out
}

// Edge returns the origin of the edge a walk in this direction starts
// from: the zero point for positive directions, or the far corner
// along the direction's axis for negative ones.
func (d Direction) Edge(size Point) Point {
	out := make(Point, d.dims)
	if int(d.val) >= int(d.dims) {
		i := int(d.val) % int(d.dims)
		out[i] = size[i] - 1
	}
	return out
}

// Add rotates the direction k steps through the 2N-value cycle.
// In 2D, Add(1) is a clockwise quarter turn.
func (d Direction) Add(k int) Direction {
	return NewDirection(int(d.dims), int(d.val)+k)
}

// Neg returns the opposite direction.
func (d Direction) Neg() Direction {
	return NewDirection(int(d.dims), int(d.val)+int(d.dims))
}

func (d Direction) Eq(o Direction) bool {
	return d.dims == o.dims && d.val == o.val
}
