package geom

import (
	"bytes"
	"strings"
)

// An Orientation rotates the coordinate space of a 2D view. It has no
// effect on views of other dimensionality.
type Orientation uint8

const (
	Identity Orientation = iota
	Rot90
	Rot180
	Rot270
)

// A View is a rectangular window over a strided backing buffer. It
// carries one stride per dimension (stride[0] = 1, row-major), the
// window's origin in storage space, and its extent per dimension.
//
// A view either owns its storage or borrows it from the grid it was
// sliced from. Writing through a borrowing view clones the whole
// backing buffer once, then mutates the clone, so the original grid
// never observes the write.
type View[T any] struct {
	data   []T
	owned  bool
	stride []int
	offset Point
	size   Point
	orient Orientation
}

// A Grid is a dense N-dimensional array that exclusively owns its
// backing storage.
type Grid[T any] struct {
	View[T]
}

// FromData wraps data as a 2D grid of the given row length. A trailing
// partial row is dropped from the computed height.
func FromData[T any](data []T, rowLen int) *Grid[T] {
	return FromStrides(data, []int{1, rowLen})
}

// FromStrides wraps data as an N-dimensional grid described by one
// stride per dimension, ascending (strides[0] must be 1). Sizes are
// derived from the buffer length, highest dimension first; a trailing
// remainder is dropped from the outermost dimension.
func FromStrides[T any](data []T, strides []int) *Grid[T] {
	n := len(strides)
	size := make(Point, n)
	rem := len(data)
	for i := n - 1; i >= 1; i-- {
		size[i] = rem / strides[i]
		rem = strides[i]
	}
	size[0] = rem / strides[0]
	return &Grid[T]{View[T]{
		data:   data,
		owned:  true,
		stride: append([]int(nil), strides...),
		offset: Zero(n),
		size:   size,
	}}
}

// FromSize allocates a zero-filled grid with the given extents and
// row-major strides.
func FromSize[T any](size Point) *Grid[T] {
	strides := make([]int, len(size))
	total := 1
	for i, c := range size {
		strides[i] = total
		total *= c
	}
	return &Grid[T]{View[T]{
		data:   make([]T, total),
		owned:  true,
		stride: strides,
		offset: Zero(len(size)),
		size:   size.Clone(),
	}}
}

// FromLines builds a 2D grid from text lines, mapping each byte
// through f. Short lines are padded on the right with the zero value
// up to the longest line's length.
func FromLines[T any](lines []string, f func(byte) T) *Grid[T] {
	w := 0
	for _, ln := range lines {
		if len(ln) > w {
			w = len(ln)
		}
	}
	var zero T
	data := make([]T, 0, w*len(lines))
	for _, ln := range lines {
		for i := 0; i < len(ln); i++ {
			data = append(data, f(ln[i]))
		}
		for i := len(ln); i < w; i++ {
			data = append(data, zero)
		}
	}
	return FromData(data, w)
}

// FromBytes wraps a buffer of newline-delimited rows of equal length
// as a byte grid, without copying: the row stride skips the delimiter
// byte. A missing trailing newline is accepted.
func FromBytes(buf []byte) *Grid[byte] {
	w := bytes.IndexByte(buf, '\n')
	if w < 0 {
		w = len(buf)
	}
	h := (len(buf) + 1) / (w + 1)
	return &Grid[byte]{View[byte]{
		data:   buf,
		owned:  true,
		stride: []int{1, w + 1},
		offset: Zero(2),
		size:   Pt2(w, h),
	}}
}

// Size returns the view's extent per dimension.
func (v *View[T]) Size() Point {
	return v.size.Clone()
}

func (v *View[T]) Dims() int {
	return len(v.size)
}

// InBounds reports whether every component of p is within the view's
// logical window.
func (v *View[T]) InBounds(p Point) bool {
	assertSameDims(p, v.size)
	for i, c := range p {
		if c < 0 || c >= v.size[i] {
			return false
		}
	}
	return true
}

func (v *View[T]) applyOrient(p Point) Point {
	lastx, lasty := v.size.X()-1, v.size.Y()-1
	x, y := p.X(), p.Y()
	switch v.orient {
	case Rot90:
		return Pt2(lasty-y, x)
	case Rot180:
		return Pt2(lastx-x, lasty-y)
	case Rot270:
		return Pt2(y, lastx-x)
	}
	return p
}

// ToGlobal maps a view-local coordinate into the coordinate space of
// the backing storage.
func (v *View[T]) ToGlobal(p Point) Point {
	if v.orient != Identity && len(v.size) == 2 {
		p = v.applyOrient(p)
	}
	return p.Add(v.offset)
}

// ToLocal is the inverse of ToGlobal.
func (v *View[T]) ToLocal(p Point) Point {
	p = p.Sub(v.offset)
	if v.orient == Identity || len(v.size) != 2 {
		return p
	}
	lastx, lasty := v.size.X()-1, v.size.Y()-1
	x, y := p.X(), p.Y()
	switch v.orient {
	case Rot90:
		return Pt2(y, lasty-x)
	case Rot180:
		return Pt2(lastx-x, lasty-y)
	default:
		return Pt2(lastx-y, x)
	}
}

// DataOffset computes the linear storage index for p:
//
//	sum_i ToGlobal(p)[i] * stride[i]
//
// Every read and write goes through this; it must be exact.
func (v *View[T]) DataOffset(p Point) int {
	g := v.ToGlobal(p)
	idx := 0
	for i, c := range g {
		idx += c * v.stride[i]
	}
	return idx
}

// OffsetToPoint decomposes a linear storage index into a coordinate by
// repeated division against the strides, most significant dimension
// first. It inverts DataOffset for views with a zero offset and
// identity orientation.
func (v *View[T]) OffsetToPoint(idx int) Point {
	out := make(Point, len(v.stride))
	for i := len(v.stride) - 1; i >= 0; i-- {
		out[i] = idx / v.stride[i]
		idx %= v.stride[i]
	}
	return out
}

// Get returns the element at p, or reports false if p is outside the
// view's window. Probing past the edges is a normal outcome, not an
// error.
func (v *View[T]) Get(p Point) (T, bool) {
	var zero T
	if !v.InBounds(p) {
		return zero, false
	}
	i := v.DataOffset(p)
	if i < 0 || i >= len(v.data) {
		return zero, false
	}
	return v.data[i], true
}

// At returns the element at p without checking p against the view's
// window. The caller must already know p is in bounds; violating that
// panics or reads outside the logical window.
func (v *View[T]) At(p Point) T {
	return v.data[v.DataOffset(p)]
}

// Set writes val at p, reporting false if p is outside the view's
// window. A borrowing view clones its backing storage before the
// first write.
func (v *View[T]) Set(p Point, val T) bool {
	if !v.InBounds(p) {
		return false
	}
	i := v.DataOffset(p)
	if i < 0 || i >= len(v.data) {
		return false
	}
	v.ensureOwned()
	v.data[i] = val
	return true
}

func (v *View[T]) ensureOwned() {
	if v.owned {
		return
	}
	v.data = append([]T(nil), v.data...)
	v.owned = true
}

// SubView returns a borrowing window over the same backing storage and
// strides. The offset is expressed in storage space. Construction is
// unchecked: a window extending past the owner's extent passes its own
// bounds checks yet reaches outside the intended region (still within
// the shared buffer). Callers are responsible for slicing within
// bounds.
func (v *View[T]) SubView(offset, size Point) *View[T] {
	assertSameDims(offset, v.size)
	assertSameDims(size, v.size)
	return &View[T]{
		data:   v.data,
		stride: v.stride,
		offset: offset.Clone(),
		size:   size.Clone(),
	}
}

// OrientedView is SubView with a rotation applied to the 2D coordinate
// space of the window.
func (v *View[T]) OrientedView(offset, size Point, orient Orientation) *View[T] {
	sub := v.SubView(offset, size)
	sub.orient = orient
	return sub
}

// Borrow returns a view of the whole grid that copies the backing
// storage before its first write, leaving the grid untouched.
func (g *Grid[T]) Borrow() *View[T] {
	v := g.View
	v.owned = false
	return &v
}

// A PointIter enumerates every coordinate of a view's window in
// row-major order, last dimension varying fastest. It terminates after
// exactly product(size) points; call Points again for a fresh pass.
type PointIter struct {
	size     Point
	i, total int
}

func (v *View[T]) Points() *PointIter {
	total := 1
	for _, c := range v.size {
		total *= c
	}
	return &PointIter{size: v.size.Clone(), total: total}
}

func (it *PointIter) Next() (Point, bool) {
	if it.i >= it.total {
		return nil, false
	}
	i := it.i
	it.i++
	out := make(Point, len(it.size))
	for d := len(it.size) - 1; d >= 0; d-- {
		out[d] = i % it.size[d]
		i /= it.size[d]
	}
	return out, true
}

// Dump renders a 2D view as text, one glyph per element, blank for
// out-of-range probes.
func (v *View[T]) Dump(f func(T) string) string {
	var sb strings.Builder
	for y := 0; y < v.size.Y(); y++ {
		for x := 0; x < v.size.X(); x++ {
			if val, ok := v.Get(Pt2(x, y)); ok {
				sb.WriteString(f(val))
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
