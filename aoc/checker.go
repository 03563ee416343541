package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBaseURL = "https://adventofcode.com"
	userAgent      = "github.com/etwyniel/aoc-framework"
)

var (
	styleOK  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	styleErr = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	styleWrn = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// A Checker grades puzzle parts: it caches inputs on disk, fetches
// missing ones from the remote service, and resolves each computed
// answer against the answer log, the puzzle page, or a live
// submission.
type Checker struct {
	// InputsDir holds cached inputs (YYYY-12-D.in) and answer logs
	// (YYYY-12-D.out).
	InputsDir string

	// BaseURL of the puzzle service. Tests point this at a local
	// server.
	BaseURL string

	// In and Err are the prompt input and status output streams,
	// defaulting to stdin and stderr.
	In  io.Reader
	Err io.Writer

	session string
	client  *http.Client
	filters [25]int
}

// NewChecker creates a checker using the given session token (empty
// for offline runs) and day/part filter. Inputs live in
// AOC_INPUTS_DIR, or in an inputs directory next to the binary.
func NewChecker(session, filter string) (*Checker, error) {
	dir := os.Getenv("AOC_INPUTS_DIR")
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locating inputs directory: %w", err)
		}
		dir = filepath.Join(filepath.Dir(exe), "inputs")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	c := &Checker{
		InputsDir: dir,
		BaseURL:   defaultBaseURL,
		In:        os.Stdin,
		Err:       os.Stderr,
		session:   session,
		client:    &http.Client{Timeout: 30 * time.Second},
	}
	if session == "" {
		fmt.Fprintln(c.Err, "Could not find AOC_TOKEN in env")
	}
	var err error
	c.filters, err = parseFilters(filter)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// parseFilters parses a comma-separated day/part selection: "3" runs
// both parts of day 3, "3.1" only part 1. An empty filter selects
// everything.
func parseFilters(filter string) ([25]int, error) {
	var out [25]int
	if strings.TrimSpace(filter) != "" {
		for i := range out {
			out[i] = -1
		}
	}
	for _, f := range strings.Split(filter, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		dayStr, partStr, hasPart := strings.Cut(f, ".")
		day, err := strconv.Atoi(dayStr)
		if err != nil {
			return out, fmt.Errorf("bad filter %q: %w", f, err)
		}
		if day < 1 || day > len(out) {
			return out, fmt.Errorf("bad filter %q: day out of range", f)
		}
		part := 0
		if hasPart {
			part, err = strconv.Atoi(partStr)
			if err != nil {
				return out, fmt.Errorf("bad filter %q: %w", f, err)
			}
		}
		out[day-1] = part
	}
	return out, nil
}

// RunDay grades both parts of a day, warning about missing ones.
func (c *Checker) RunDay(d *Day) {
	for _, p := range []*Part{d.Part1, d.Part2} {
		if p == nil {
			continue
		}
		pc := &partChecker{c: c, day: d, part: p}
		pc.runAndDisplay()
	}
	for i, p := range []*Part{d.Part1, d.Part2} {
		if p == nil {
			fmt.Fprintf(c.Err, "%s Day %d part %d not implemented\n",
				styleWrn.Render("WRN"), d.Num, i+1)
		}
	}
}

func (c *Checker) get(rawURL string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	c.decorate(req)
	return c.client.Do(req)
}

func (c *Checker) postForm(rawURL string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.decorate(req)
	return c.client.Do(req)
}

func (c *Checker) decorate(req *http.Request) {
	req.Header.Set("User-Agent", userAgent)
	if c.session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	}
}

func alwaysCheck() bool {
	v := os.Getenv("AOC_ALWAYS_CHECK")
	return v != "" && v != "0" && v != "false"
}

// partChecker grades a single part of a single day.
type partChecker struct {
	c    *Checker
	day  *Day
	part *Part
}

func (pc *partChecker) id() string {
	return fmt.Sprintf("%d-12-%02d.%d", pc.day.Year, pc.day.Num, pc.part.Num)
}

func (pc *partChecker) inputPath() string {
	return filepath.Join(pc.c.InputsDir, fmt.Sprintf("%d-12-%d.in", pc.day.Year, pc.day.Num))
}

func (pc *partChecker) logPath() string {
	return filepath.Join(pc.c.InputsDir, fmt.Sprintf("%d-12-%d.out", pc.day.Year, pc.day.Num))
}

// fetchInput downloads the day's input into the cache.
func (pc *partChecker) fetchInput() error {
	if pc.c.session == "" {
		return errors.New("missing AOC_TOKEN environment variable, cannot fetch input")
	}
	resp, err := pc.c.get(fmt.Sprintf("%s/%d/day/%d/input", pc.c.BaseURL, pc.day.Year, pc.day.Num))
	if err != nil {
		return fmt.Errorf("fetching input: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetching input: status %s", resp.Status)
	}
	f, err := os.Create(pc.inputPath())
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(f, resp.Body)
	return err
}

// fetchSubmittedAnswers scrapes the puzzle page for answers submitted
// in a previous session and records them in the answer log. If none
// are found, an empty log is created so the page isn't fetched again.
func (pc *partChecker) fetchSubmittedAnswers() ([]string, error) {
	if pc.c.session == "" {
		return nil, nil
	}
	resp, err := pc.c.get(fmt.Sprintf("%s/%d/day/%d", pc.c.BaseURL, pc.day.Year, pc.day.Num))
	if err != nil {
		return nil, fmt.Errorf("fetching puzzle page: %w", err)
	}
	defer resp.Body.Close()
	answers, err := extractAnswers(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing puzzle page: %w", err)
	}
	for i, answer := range answers {
		part := i + 1
		if part > 2 {
			part = 2
		}
		if err := appendAnswerLog(pc.logPath(), part, Correct, answer); err != nil {
			return nil, err
		}
	}
	if len(answers) == 0 {
		f, err := os.Create(pc.logPath())
		if err != nil {
			return nil, err
		}
		f.Close()
	}
	return answers, nil
}

// submit posts the answer to the remote service after prompting, and
// classifies the response.
func (pc *partChecker) submit(res string) (Verdict, error) {
	if pc.c.session == "" {
		return Unknown, nil
	}
	if !alwaysCheck() {
		fmt.Fprintf(pc.c.Err, "%s => %s\nCheck answer? (yes/no): ", pc.id(), res)
		line, err := bufio.NewReader(pc.c.In).ReadString('\n')
		if err != nil && err != io.EOF {
			return Unknown, err
		}
		if strings.ToLower(strings.TrimSpace(line)) != "yes" {
			return Unknown, nil
		}
	}
	form := url.Values{
		"level":  {strconv.Itoa(pc.part.Num)},
		"answer": {res},
	}
	resp, err := pc.c.postForm(
		fmt.Sprintf("%s/%d/day/%d/answer", pc.c.BaseURL, pc.day.Year, pc.day.Num), form)
	if err != nil {
		return Unknown, fmt.Errorf("failed to submit answer: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unknown, err
	}
	if resp.StatusCode != http.StatusOK {
		return Unknown, fmt.Errorf("request failed with status %s: %s", resp.Status, body)
	}
	switch {
	case !bytes.Contains(body, []byte("not the right answer")):
		return Correct, nil
	case bytes.Contains(body, []byte("too high")):
		return TooHigh, nil
	case bytes.Contains(body, []byte("too low")):
		return TooLow, nil
	}
	return Invalid, nil
}

// checkAnswer resolves a computed answer to a verdict: first against
// the answer log, then the scraped puzzle page, and only then by
// submitting. The expected answer is returned alongside Incorrect.
func (pc *partChecker) checkAnswer(res Answer) (Verdict, string, error) {
	correct, haveCorrect, attempts, err := readAnswerLog(pc.logPath(), pc.part.Num)
	if errors.Is(err, fs.ErrNotExist) {
		answers, ferr := pc.fetchSubmittedAnswers()
		if ferr != nil {
			return Unknown, "", ferr
		}
		attempts = nil
		correct, haveCorrect = "", false
		if len(answers) >= pc.part.Num {
			correct, haveCorrect = answers[pc.part.Num-1], true
		}
	} else if err != nil {
		return Unknown, "", err
	}

	if res.IsZero() {
		return Invalid, "", nil
	}
	s := res.String()
	if haveCorrect && s == correct {
		return Correct, "", nil
	}
	for _, a := range attempts {
		if a.answer == s {
			return a.verdict, "", nil
		}
	}
	if haveCorrect {
		return Incorrect, correct, nil
	}

	v, err := pc.submit(s)
	if err != nil {
		return Unknown, "", err
	}
	if err := appendAnswerLog(pc.logPath(), pc.part.Num, v, s); err != nil {
		fmt.Fprintf(pc.c.Err, "failed to save answer %s: %v\n", s, err)
	}
	return v, "", nil
}

// bench re-runs the part for a stable timing, honoring a part's own
// Bench override.
func (pc *partChecker) bench(input []byte) time.Duration {
	if pc.part.Bench != nil {
		if d, ok := pc.part.Bench(bytes.NewReader(input)); ok {
			return d
		}
	}
	const count = 100
	start := time.Now()
	for i := 0; i < count; i++ {
		pc.part.Run(bytes.NewReader(input))
	}
	return time.Since(start) / count
}

// run checks the example, ensures the input is cached, runs the part,
// and grades the result.
func (pc *partChecker) run() (Answer, Verdict, string, time.Duration, error) {
	if example := pc.day.example(pc.part.Num); example != "" {
		if err := pc.part.checkExample(example); err != nil {
			return Answer{}, Unknown, "", 0, err
		}
	}
	if _, err := os.Stat(pc.inputPath()); err != nil {
		if err := pc.fetchInput(); err != nil {
			return Answer{}, Unknown, "", 0, err
		}
	}
	input, err := os.ReadFile(pc.inputPath())
	if err != nil {
		return Answer{}, Unknown, "", 0, err
	}

	start := time.Now()
	res, err := pc.part.Run(bytes.NewReader(input))
	delta := time.Since(start)
	if err != nil {
		return Answer{}, Unknown, "", 0, err
	}

	verdict, expected, err := pc.checkAnswer(res)
	if err != nil {
		return Answer{}, Unknown, "", 0, err
	}
	if verdict == Correct && delta < time.Millisecond {
		delta = pc.bench(input)
	}
	return res, verdict, expected, delta, nil
}

func (pc *partChecker) runAndDisplay() {
	flt := pc.c.filters[pc.day.Num-1]
	if flt != 0 && flt != pc.part.Num {
		return
	}
	id := pc.id()
	res, verdict, expected, delta, err := pc.run()
	if err != nil {
		fmt.Fprintf(pc.c.Err, "%s %s => %v\n", styleErr.Render("ERR"), id, err)
		return
	}
	status, style := "OK ", styleOK
	msg := fmt.Sprintf("%-15s", res)
	switch verdict {
	case Correct:
	case Incorrect:
		status, style = "ERR", styleErr
		msg = fmt.Sprintf("invalid result:\n\tGot:      %s\n\tExpected: %s", res, expected)
	case TooHigh, TooLow, Invalid:
		status, style = "ERR", styleErr
		extra := ""
		if verdict == TooHigh {
			extra = " (too high)"
		} else if verdict == TooLow {
			extra = " (too low)"
		}
		msg = fmt.Sprintf("%-15s\n\tinvalid result%s", res, extra)
	case Unknown:
		status, style = "UNK", styleWrn
	}
	fmt.Fprintf(pc.c.Err, "%s %s =( %s )=> %s\n",
		style.Render(status), id, delta.Round(time.Microsecond), msg)
}
