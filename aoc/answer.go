// Package aoc is a harness for solving and grading daily programming
// puzzles: it fetches puzzle input from the remote service, runs a
// solver, grades the result against known or previously submitted
// answers, and reports timing.
package aoc

import (
	"strconv"
	"strings"
)

// An Answer is the result of a puzzle part: either a number or a
// string (some puzzles spell their answer out in ASCII art).
type Answer struct {
	str   string
	num   uint64
	isNum bool
}

// Num creates a numeric answer.
func Num(n uint64) Answer {
	return Answer{num: n, isNum: true}
}

// Str creates a string answer.
func Str(s string) Answer {
	return Answer{str: s}
}

// Expect is a convenience for Part literals.
func Expect(a Answer) *Answer {
	return &a
}

func (a Answer) String() string {
	if a.isNum {
		return strconv.FormatUint(a.num, 10)
	}
	return a.str
}

// Equal compares answers. String answers ignore surrounding
// whitespace; numbers and strings never compare equal.
func (a Answer) Equal(o Answer) bool {
	if a.isNum != o.isNum {
		return false
	}
	if a.isNum {
		return a.num == o.num
	}
	return strings.TrimSpace(a.str) == strings.TrimSpace(o.str)
}

// IsZero reports whether the answer is the zero number or the empty
// string, neither of which is ever a valid submission.
func (a Answer) IsZero() bool {
	if a.isNum {
		return a.num == 0
	}
	return a.str == ""
}

// A Verdict classifies a computed answer.
type Verdict int

const (
	// Unknown means the answer could not be graded (no session token,
	// or the user declined to submit).
	Unknown Verdict = iota
	Correct
	TooLow
	TooHigh
	// Incorrect means the correct answer is already known and this
	// isn't it.
	Incorrect
	// Invalid means the answer was rejected with no extra information.
	Invalid
)

// marker returns the answer-log marker for verdicts worth recording.
func (v Verdict) marker() (byte, bool) {
	switch v {
	case Correct:
		return '=', true
	case TooLow:
		return '<', true
	case TooHigh:
		return '>', true
	case Invalid:
		return '!', true
	}
	return 0, false
}

func verdictForMarker(b byte) (Verdict, bool) {
	switch b {
	case '=':
		return Correct, true
	case '<':
		return TooLow, true
	case '>':
		return TooHigh, true
	case '!':
		return Invalid, true
	}
	return Unknown, false
}
