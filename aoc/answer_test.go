package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerEqual(t *testing.T) {
	assert.True(t, Num(7).Equal(Num(7)))
	assert.False(t, Num(7).Equal(Num(8)))
	assert.True(t, Str("abc").Equal(Str("abc\n")))
	assert.True(t, Str("  abc ").Equal(Str("abc")))
	assert.False(t, Str("abc").Equal(Str("abd")))
	assert.False(t, Num(7).Equal(Str("7")))
}

func TestAnswerString(t *testing.T) {
	assert.Equal(t, "42", Num(42).String())
	assert.Equal(t, "xyz", Str("xyz").String())
}

func TestAnswerIsZero(t *testing.T) {
	assert.True(t, Num(0).IsZero())
	assert.True(t, Str("").IsZero())
	assert.False(t, Num(1).IsZero())
	assert.False(t, Str("0").IsZero())
}

func TestVerdictMarkers(t *testing.T) {
	for _, v := range []Verdict{Correct, TooLow, TooHigh, Invalid} {
		m, ok := v.marker()
		assert.True(t, ok)
		back, ok := verdictForMarker(m)
		assert.True(t, ok)
		assert.Equal(t, v, back)
	}
	_, ok := Unknown.marker()
	assert.False(t, ok)
	_, ok = Incorrect.marker()
	assert.False(t, ok)
}
