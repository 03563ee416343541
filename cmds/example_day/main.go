// Command example_day shows how a year's binary is put together: it
// registers 2021 day 1 (sonar sweep) and hands off to aoc.Main.
package main

import (
	"bufio"
	"io"

	"github.com/etwyniel/aoc-framework/aoc"
	"github.com/etwyniel/aoc-framework/parse"
)

const day1Example = `
199
200
208
210
200
207
240
269
260
263
`

func readDepths(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		out = append(out, parse.Int[int](sc.Text()))
	}
	return out, sc.Err()
}

// countIncreases counts indices whose depth exceeds the depth one
// window earlier. Comparing window sums reduces to comparing the
// elements entering and leaving the window.
func countIncreases(depths []int, window int) uint64 {
	var n uint64
	for i := window; i < len(depths); i++ {
		if depths[i] > depths[i-window] {
			n++
		}
	}
	return n
}

func main() {
	aoc.Register(&aoc.Day{
		Year:    2021,
		Num:     1,
		Example: day1Example,
		Part1: &aoc.Part{
			Num:           1,
			ExampleResult: aoc.Expect(aoc.Num(7)),
			Run: func(r io.Reader) (aoc.Answer, error) {
				depths, err := readDepths(r)
				if err != nil {
					return aoc.Answer{}, err
				}
				return aoc.Num(countIncreases(depths, 1)), nil
			},
		},
		Part2: &aoc.Part{
			Num:           2,
			ExampleResult: aoc.Expect(aoc.Num(5)),
			Run: func(r io.Reader) (aoc.Answer, error) {
				depths, err := readDepths(r)
				if err != nil {
					return aoc.Answer{}, err
				}
				return aoc.Num(countIncreases(depths, 3)), nil
			},
		},
	})
	aoc.Main()
}
