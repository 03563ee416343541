// Package stackvec implements a vector with a fixed capacity chosen at
// creation time. The backing array is allocated once and never grows.
package stackvec

// A Vec holds up to Cap() elements in a single allocation.
type Vec[T any] struct {
	data []T
}

// New creates an empty vector with the given capacity.
func New[T any](capacity int) *Vec[T] {
	return &Vec[T]{data: make([]T, 0, capacity)}
}

func (v *Vec[T]) Len() int {
	return len(v.data)
}

func (v *Vec[T]) Cap() int {
	return cap(v.data)
}

func (v *Vec[T]) Empty() bool {
	return len(v.data) == 0
}

// Push appends val. It panics if the vector is full.
func (v *Vec[T]) Push(val T) {
	if len(v.data) == cap(v.data) {
		panic("stackvec: push to full vector")
	}
	v.data = append(v.data, val)
}

// TryPush appends val, reporting false if the vector is full.
func (v *Vec[T]) TryPush(val T) bool {
	if len(v.data) == cap(v.data) {
		return false
	}
	v.data = append(v.data, val)
	return true
}

// Pop removes and returns the last element.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if len(v.data) == 0 {
		return zero, false
	}
	last := len(v.data) - 1
	out := v.data[last]
	v.data[last] = zero
	v.data = v.data[:last]
	return out, true
}

// RemoveAt removes and returns the element at index i, shifting later
// elements down to preserve order.
func (v *Vec[T]) RemoveAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(v.data) {
		return zero, false
	}
	out := v.data[i]
	copy(v.data[i:], v.data[i+1:])
	last := len(v.data) - 1
	v.data[last] = zero
	v.data = v.data[:last]
	return out, true
}

// At returns the element at index i. Out-of-range indices panic.
func (v *Vec[T]) At(i int) T {
	return v.data[i]
}

// SetAt replaces the element at index i. Out-of-range indices panic.
func (v *Vec[T]) SetAt(i int, val T) {
	v.data[i] = val
}

// Slice exposes the occupied portion of the backing array. The slice
// aliases the vector's storage and is invalidated by Push and Pop.
func (v *Vec[T]) Slice() []T {
	return v.data
}

func (v *Vec[T]) Clone() *Vec[T] {
	out := New[T](cap(v.data))
	out.data = out.data[:len(v.data)]
	copy(out.data, v.data)
	return out
}
