// Package parse holds small helpers for tearing apart puzzle input.
// Malformed input is a programmer error, so the must-style helpers
// panic instead of returning errors.
package parse

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Int parses a decimal integer into any integer type, panicking on
// malformed input.
func Int[T constraints.Integer](s string) T {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("parse: %v", err))
	}
	return T(v)
}

// Uint is Int for values that do not fit in an int64.
func Uint[T constraints.Unsigned](s string) T {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		panic(fmt.Sprintf("parse: %v", err))
	}
	return T(v)
}

// Pair splits s on the first occurrence of sep, panicking if sep is
// absent.
func Pair(s string, sep byte) (string, string) {
	i := strings.IndexByte(s, sep)
	if i < 0 {
		panic(fmt.Sprintf("parse: no %q in %q", sep, s))
	}
	return s[:i], s[i+1:]
}

// IntPair splits s on sep and parses both halves.
func IntPair[T constraints.Integer](s string, sep byte) (T, T) {
	l, r := Pair(s, sep)
	return Int[T](l), Int[T](r)
}

// A Splitter iterates over sep-delimited fields of a byte slice
// without allocating. Empty fields are yielded.
type Splitter struct {
	rest []byte
	sep  byte
	done bool
}

// Split creates a Splitter over data.
func Split(data []byte, sep byte) *Splitter {
	return &Splitter{rest: data, sep: sep}
}

// Next returns the next field and whether one was available. The
// returned slice aliases the input.
func (s *Splitter) Next() ([]byte, bool) {
	if s.done {
		return nil, false
	}
	i := bytes.IndexByte(s.rest, s.sep)
	if i < 0 {
		s.done = true
		return s.rest, true
	}
	out := s.rest[:i]
	s.rest = s.rest[i+1:]
	return out, true
}
