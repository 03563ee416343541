package aoc

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/unixpickle/essentials"
)

// A Part is one half of a day's puzzle.
type Part struct {
	Num int

	// ExampleResult, when set, is checked against the day's example
	// input before the real input runs.
	ExampleResult *Answer

	Run func(r io.Reader) (Answer, error)

	// Bench optionally replaces the default timing loop.
	Bench func(r io.Reader) (time.Duration, bool)
}

// checkExample runs the part on example input and verifies the result.
func (p *Part) checkExample(example string) error {
	if p.ExampleResult == nil {
		return nil
	}
	res, err := p.Run(strings.NewReader(strings.Trim(example, "\n")))
	if err != nil {
		return fmt.Errorf("failed to run on example: %w", err)
	}
	if !res.Equal(*p.ExampleResult) {
		return fmt.Errorf("incorrect example result:\n\tGot     \t%s\n\tExpected\t%s",
			res, *p.ExampleResult)
	}
	return nil
}

// A Day bundles a puzzle's two parts with its example inputs.
type Day struct {
	Year int
	Num  int

	Example string
	// Part2Example overrides Example for part 2.
	Part2Example string

	// Either part may be nil; the runner prints a warning for it.
	Part1 *Part
	Part2 *Part
}

func (d *Day) example(part int) string {
	if part == 2 && d.Part2Example != "" {
		return d.Part2Example
	}
	return d.Example
}

var registry []*Day

// Register adds days to the set Main runs.
func Register(days ...*Day) {
	registry = append(registry, days...)
}

// Days returns the registered days in registration order.
func Days() []*Day {
	return registry
}

// Main runs every registered day: the entry point of a year's binary.
// The session token comes from AOC_TOKEN; -filter selects days or
// parts ("3", "3.1,5.2").
func Main() {
	filter := flag.String("filter", "", `days/parts to run, e.g. "3" or "3.1,5.2" (default all)`)
	flag.Parse()

	c, err := NewChecker(os.Getenv("AOC_TOKEN"), *filter)
	if err != nil {
		essentials.Die(err)
	}
	for _, d := range Days() {
		c.RunDay(d)
	}
}
