// Package bcd implements an unsigned integer stored as packed
// binary-coded-decimal nibbles, which makes digit-level operations
// (shifts, repetition, per-digit arithmetic) cheap.
package bcd

import (
	"fmt"
	"math/bits"
	"strconv"
)

// An Int holds up to 16 decimal digits, one per nibble, least
// significant digit in the lowest nibble.
type Int uint64

// FromUint64 converts a binary integer to BCD.
func FromUint64(v uint64) Int {
	var out uint64
	shift := 0
	for v > 0 {
		out |= (v % 10) << shift
		v /= 10
		shift += 4
	}
	return Int(out)
}

// Parse converts a string of decimal digits to BCD.
func Parse(s string) (Int, error) {
	var out uint64
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < '0' || b > '9' {
			return 0, fmt.Errorf("bcd: invalid digit %q in %q", b, s)
		}
		out = out<<4 | uint64(b-'0')
	}
	return Int(out), nil
}

// Uint64 converts back to a binary integer.
func (b Int) Uint64() uint64 {
	var out uint64
	for i := b.Len() - 1; i >= 0; i-- {
		out = out*10 + uint64(b.Shr(i))&0xf
	}
	return out
}

// Len returns the number of digits; zero has length 0.
func (b Int) Len() int {
	return 16 - bits.LeadingZeros64(uint64(b))/4
}

// Shl shifts left by n digits.
func (b Int) Shl(n int) Int {
	return b << (4 * n)
}

// Shr shifts right by n digits.
func (b Int) Shr(n int) Int {
	return b >> (4 * n)
}

// Repeat concatenates n copies of the number's digits.
func (b Int) Repeat(n int) Int {
	return b.RepeatLen(b.Len(), n)
}

// RepeatLen concatenates n copies, treating the number as length
// digits wide (preserving leading zeros).
func (b Int) RepeatLen(length, n int) Int {
	var out Int
	for i := 0; i < n; i++ {
		out = out.Shl(length) | b
	}
	return out
}

// Add adds a small binary integer digit by digit, propagating carries.
func (b Int) Add(rhs uint64) Int {
	out := uint64(b)
	var carry uint64
	shift := 0
	for rhs > 0 || carry > 0 {
		res := (out>>shift)&0xf + rhs%10 + carry
		carry = res / 10
		out = out&^(0xf<<shift) | (res%10)<<shift
		rhs /= 10
		shift += 4
	}
	return Int(out)
}

// Sub subtracts a small binary integer digit by digit, propagating
// borrows. The result is undefined if rhs exceeds the value.
func (b Int) Sub(rhs uint64) Int {
	out := uint64(b)
	var borrow int64
	shift := 0
	for rhs > 0 || borrow > 0 {
		res := int64((out>>shift)&0xf) - int64(rhs%10) - borrow
		if res < 0 {
			res += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out = out&^(0xf<<shift) | uint64(res)<<shift
		rhs /= 10
		shift += 4
	}
	return Int(out)
}

func (b Int) String() string {
	return strconv.FormatUint(b.Uint64(), 10)
}
