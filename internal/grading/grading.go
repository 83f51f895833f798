// Package grading turns test-runner output into a graded report for a
// single submission.
package grading

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Grader runs a submission against an item's tests and produces a
// graded report. Execution happens in an external sandbox harness;
// implementations feed its per-test output through FromResults. The
// CLI consumes harness reports from files instead (Load).
type Grader interface {
	Grade(ctx context.Context, itemID, code string) (*Report, error)
}

// TestResult is the outcome of one test case. Unordered results compare
// output lines as a set, matching the item's test case definition.
type TestResult struct {
	Input     string `json:"input"`
	Expected  string `json:"expected"`
	Actual    string `json:"actual"`
	Hidden    bool   `json:"hidden,omitempty"`
	Unordered bool   `json:"is_unordered,omitempty"`
	Passed    bool   `json:"passed"`
}

// Report is the graded result of a submission. Passed means every
// hidden test passed; PassRate is the fraction of hidden tests passed.
type Report struct {
	Results  []TestResult `json:"results"`
	PassRate float64      `json:"pass_rate"`
	Passed   bool         `json:"passed"`
}

// FromResults builds a Report, computing PassRate and Passed over the
// hidden tests. Visible tests are feedback for the learner and do not
// gate correctness. A report with no hidden tests grades over all tests.
func FromResults(results []TestResult) *Report {
	r := &Report{Results: results}

	var graded, passed int
	for _, t := range results {
		if !t.Hidden {
			continue
		}
		graded++
		if t.Passed {
			passed++
		}
	}
	if graded == 0 {
		for _, t := range results {
			graded++
			if t.Passed {
				passed++
			}
		}
	}
	if graded > 0 {
		r.PassRate = float64(passed) / float64(graded)
	}
	r.Passed = graded > 0 && passed == graded
	return r
}

// Decode reads a test-runner report: a JSON object with a "results"
// array. Results carrying an expected output are re-verified with
// OutputMatches; the runner's pass flag is trusted only when no
// expected output is present. PassRate and Passed are recomputed
// rather than trusted.
func Decode(reader io.Reader) (*Report, error) {
	var raw struct {
		Results []TestResult `json:"results"`
	}
	if err := json.NewDecoder(reader).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}
	if len(raw.Results) == 0 {
		return nil, fmt.Errorf("report has no test results")
	}
	for i, t := range raw.Results {
		if t.Expected != "" {
			raw.Results[i].Passed = OutputMatches(t.Expected, t.Actual, t.Unordered)
		}
	}
	return FromResults(raw.Results), nil
}

// Load reads a report from a file.
func Load(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open report: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// OutputMatches compares a test's expected and actual output.
// Whitespace is trimmed line by line; unordered comparison treats the
// output as a set of lines.
func OutputMatches(expected, actual string, unordered bool) bool {
	el := normalizeLines(expected)
	al := normalizeLines(actual)
	if len(el) != len(al) {
		return false
	}
	if unordered {
		sort.Strings(el)
		sort.Strings(al)
	}
	for i := range el {
		if el[i] != al[i] {
			return false
		}
	}
	return true
}

func normalizeLines(s string) []string {
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		out = append(out, strings.TrimSpace(line))
	}
	return out
}
