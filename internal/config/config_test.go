package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adapticode/adapticode/internal/conceptgraph"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Ability.QuadraturePoints != 41 {
		t.Errorf("quadrature_points = %d, want default 41", cfg.Ability.QuadraturePoints)
	}
	if cfg.Mastery.Threshold != 1.2 {
		t.Errorf("mastery threshold = %v, want default 1.2", cfg.Mastery.Threshold)
	}
	if cfg.Selection.ShortlistSize != 10 {
		t.Errorf("shortlist_size = %d, want default 10", cfg.Selection.ShortlistSize)
	}
}

func TestLoad_FileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
mastery:
  threshold: 1.5
selection:
  final_candidates: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mastery.Threshold != 1.5 {
		t.Errorf("threshold = %v, want 1.5", cfg.Mastery.Threshold)
	}
	if cfg.Selection.FinalCandidates != 2 {
		t.Errorf("final_candidates = %d, want 2", cfg.Selection.FinalCandidates)
	}
	// Untouched values keep their defaults.
	if cfg.Selection.ShortlistSize != 10 {
		t.Errorf("shortlist_size = %d, want default 10", cfg.Selection.ShortlistSize)
	}
}

func TestLoad_EnvOverridesBankDir(t *testing.T) {
	t.Setenv("ADAPTICODE_BANK_DIR", "/tmp/banks")
	path := writeConfig(t, `bank_dir: /etc/banks`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BankDir != "/tmp/banks" {
		t.Errorf("bank_dir = %q, want env override", cfg.BankDir)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"theta range inverted", "ability:\n  theta_min: 4\n  theta_max: -4\n"},
		{"quadrature too small", "ability:\n  quadrature_points: 1\n"},
		{"candidates exceed shortlist", "selection:\n  shortlist_size: 2\n  final_candidates: 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestGraph_DefaultCurriculum(t *testing.T) {
	g, err := Default().Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if !g.Contains(conceptgraph.ConceptRecursionBasics) {
		t.Error("default graph missing built-in concept")
	}
}

func TestGraph_CustomCurriculum(t *testing.T) {
	path := writeConfig(t, `
curriculum:
  - name: Arrays
  - name: Sorting
    prerequisites: [Arrays]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	g, err := cfg.Graph()
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	if !g.Contains("Sorting") || len(g.Prerequisites("Sorting")) != 1 {
		t.Error("custom curriculum not applied")
	}
}

func TestGraph_RejectsCyclicCurriculum(t *testing.T) {
	cfg := Default()
	cfg.Curriculum = []ConceptSpec{
		{Name: "A", Prerequisites: []string{"B"}},
		{Name: "B", Prerequisites: []string{"A"}},
	}
	if _, err := cfg.Graph(); err == nil {
		t.Error("expected error for cyclic curriculum")
	}
}

func TestSectionConversions(t *testing.T) {
	cfg := Default()

	ab := cfg.AbilityConfig()
	if ab.ThetaMin != -4 || ab.ThetaMax != 4 {
		t.Errorf("ability range = [%v, %v], want [-4, 4]", ab.ThetaMin, ab.ThetaMax)
	}
	sel := cfg.SelectionConfig()
	if sel.RankTimeout.Seconds() != 30 {
		t.Errorf("rank timeout = %v, want 30s", sel.RankTimeout)
	}
	fb := cfg.FeedbackConfig()
	if fb.ObjectiveWeight != 0.7 || fb.SubjectiveWeight != 0.3 {
		t.Errorf("feedback weights = %v/%v, want 0.7/0.3", fb.ObjectiveWeight, fb.SubjectiveWeight)
	}
}
