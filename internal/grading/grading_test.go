package grading

import (
	"strings"
	"testing"
)

func TestFromResults_GradesOverHiddenTests(t *testing.T) {
	r := FromResults([]TestResult{
		{Input: "1", Passed: false},              // visible, ignored
		{Input: "5", Hidden: true, Passed: true},
		{Input: "10", Hidden: true, Passed: true},
		{Input: "20", Hidden: true, Passed: false},
	})
	if r.Passed {
		t.Error("Passed = true with a failing hidden test")
	}
	if want := 2.0 / 3.0; r.PassRate < want-1e-9 || r.PassRate > want+1e-9 {
		t.Errorf("PassRate = %v, want %v", r.PassRate, want)
	}
}

func TestFromResults_AllHiddenPass(t *testing.T) {
	r := FromResults([]TestResult{
		{Input: "1", Passed: false}, // visible failure does not gate
		{Input: "5", Hidden: true, Passed: true},
	})
	if !r.Passed {
		t.Error("Passed = false, want true when all hidden tests pass")
	}
	if r.PassRate != 1.0 {
		t.Errorf("PassRate = %v, want 1.0", r.PassRate)
	}
}

func TestFromResults_NoHiddenFallsBackToAll(t *testing.T) {
	r := FromResults([]TestResult{
		{Input: "1", Passed: true},
		{Input: "2", Passed: false},
	})
	if r.PassRate != 0.5 {
		t.Errorf("PassRate = %v, want 0.5", r.PassRate)
	}
	if r.Passed {
		t.Error("Passed = true with a failing test")
	}
}

func TestDecode(t *testing.T) {
	in := `{
		"results": [
			{"input": "5", "expected": "5", "actual": "5", "hidden": true, "passed": true},
			{"input": "10", "expected": "55", "actual": "54", "hidden": true, "passed": false}
		],
		"pass_rate": 0.99,
		"passed": true
	}`
	r, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	// Self-reported summary fields are recomputed.
	if r.Passed {
		t.Error("Passed = true, want recomputed false")
	}
	if r.PassRate != 0.5 {
		t.Errorf("PassRate = %v, want recomputed 0.5", r.PassRate)
	}
}

func TestDecode_ReverifiesOutputs(t *testing.T) {
	// The runner's per-test pass flags are wrong in both directions;
	// expected-vs-actual comparison wins.
	in := `{
		"results": [
			{"input": "10", "expected": "55", "actual": "54", "hidden": true, "passed": true},
			{"input": "3", "expected": "a\nb\nc", "actual": "c\na\nb", "is_unordered": true,
			 "hidden": true, "passed": false},
			{"input": "crash", "hidden": true, "passed": true}
		]
	}`
	r, err := Decode(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if r.Results[0].Passed {
		t.Error("mismatched output kept the runner's passed = true")
	}
	if !r.Results[1].Passed {
		t.Error("unordered set match not recognized")
	}
	// No expected output to compare: the runner's flag stands.
	if !r.Results[2].Passed {
		t.Error("result without expected output lost the runner's passed flag")
	}
	if want := 2.0 / 3.0; r.PassRate < want-1e-9 || r.PassRate > want+1e-9 {
		t.Errorf("PassRate = %v, want %v", r.PassRate, want)
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := Decode(strings.NewReader(`{"results": []}`)); err == nil {
		t.Error("expected error for empty results")
	}
	if _, err := Decode(strings.NewReader(`not json`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestOutputMatches(t *testing.T) {
	tests := []struct {
		name      string
		expected  string
		actual    string
		unordered bool
		want      bool
	}{
		{"exact", "55", "55", false, true},
		{"trailing whitespace", "55\n", " 55 ", false, true},
		{"mismatch", "55", "54", false, false},
		{"ordered lines differ", "a\nb", "b\na", false, false},
		{"unordered lines match", "a\nb", "b\na", true, true},
		{"unordered length differs", "a\nb", "a", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputMatches(tt.expected, tt.actual, tt.unordered); got != tt.want {
				t.Errorf("OutputMatches(%q, %q, %v) = %v, want %v",
					tt.expected, tt.actual, tt.unordered, got, tt.want)
			}
		})
	}
}
