package aoc

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// An attempt is one graded submission recorded in the answer log.
type attempt struct {
	verdict Verdict
	answer  string
}

// readAnswerLog parses a day's flat text answer log. Each line is
// "<part><marker><answer>", e.g. "1=12345" for a correct answer or
// "2>99" for an attempt that was too high. Lines for other parts and
// lines that don't parse are ignored.
func readAnswerLog(path string, part int) (correct string, haveCorrect bool, attempts []attempt, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", false, nil, err
	}
	defer f.Close()

	prefix := strconv.Itoa(part)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		ln, ok := strings.CutPrefix(sc.Text(), prefix)
		if !ok {
			continue
		}
		ln = strings.TrimLeft(ln, " \t")
		if ln == "" {
			continue
		}
		answer := strings.TrimSpace(ln[1:])
		v, ok := verdictForMarker(ln[0])
		if !ok {
			continue
		}
		if v == Correct {
			correct = answer
			haveCorrect = true
		} else {
			attempts = append(attempts, attempt{verdict: v, answer: answer})
		}
	}
	return correct, haveCorrect, attempts, sc.Err()
}

// appendAnswerLog records a graded answer. Verdicts with no marker
// (Unknown, Incorrect) are not recorded.
func appendAnswerLog(path string, part int, v Verdict, answer string) error {
	m, ok := v.marker()
	if !ok {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%d%c%s\n", part, m, answer)
	return err
}
