// Package config loads the engine configuration: a YAML file layered
// over built-in defaults, with a couple of environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adapticode/adapticode/internal/conceptgraph"
	"github.com/adapticode/adapticode/internal/feedback"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/learner"
	"github.com/adapticode/adapticode/internal/selection"
)

// Config is the full engine configuration.
type Config struct {
	// BankDir is the directory of question bank JSON files. Empty means
	// the built-in bank shipped with the binary.
	BankDir string `yaml:"bank_dir"`

	Ability   AbilitySection   `yaml:"ability"`
	Mastery   MasterySection   `yaml:"mastery"`
	Selection SelectionSection `yaml:"selection"`
	Feedback  FeedbackSection  `yaml:"feedback"`

	// Curriculum overrides the built-in concept graph when non-empty.
	Curriculum []ConceptSpec `yaml:"curriculum"`
}

// AbilitySection configures theta estimation.
type AbilitySection struct {
	InitialTheta     float64 `yaml:"initial_theta"`
	ThetaMin         float64 `yaml:"theta_min"`
	ThetaMax         float64 `yaml:"theta_max"`
	PriorMean        float64 `yaml:"prior_mean"`
	PriorStd         float64 `yaml:"prior_std"`
	QuadraturePoints int     `yaml:"quadrature_points"`
	HistoryWindow    int     `yaml:"history_window"`
	MinAnswers       int     `yaml:"min_answers"`
}

// MasterySection configures the mastery state machine.
type MasterySection struct {
	Threshold float64 `yaml:"threshold"`
}

// SelectionSection configures question selection.
type SelectionSection struct {
	ShortlistSize           int     `yaml:"shortlist_size"`
	FinalCandidates         int     `yaml:"final_candidates"`
	WrongRecencyMultiplier  float64 `yaml:"wrong_recency_multiplier"`
	WrongCountWeight        float64 `yaml:"wrong_count_weight"`
	RecentPerformanceWindow int     `yaml:"recent_performance_window"`
	RankTimeoutSecs         int     `yaml:"rank_timeout_secs"`
}

// FeedbackSection configures attempt scoring.
type FeedbackSection struct {
	ObjectiveWeight  float64 `yaml:"objective_weight"`
	SubjectiveWeight float64 `yaml:"subjective_weight"`
	PassRateWeight   float64 `yaml:"pass_rate_weight"`
	TimeWeight       float64 `yaml:"time_weight"`
	TargetTimeSecs   float64 `yaml:"target_time_secs"`
}

// ConceptSpec is one curriculum concept in the config file.
type ConceptSpec struct {
	Name          string   `yaml:"name"`
	Prerequisites []string `yaml:"prerequisites"`
}

// Default returns the built-in configuration.
func Default() Config {
	ab := irt.DefaultConfig()
	sel := selection.DefaultConfig()
	fb := feedback.DefaultConfig()
	return Config{
		Ability: AbilitySection{
			InitialTheta:     ab.InitialTheta,
			ThetaMin:         ab.ThetaMin,
			ThetaMax:         ab.ThetaMax,
			PriorMean:        ab.PriorMean,
			PriorStd:         ab.PriorStd,
			QuadraturePoints: ab.QuadraturePoints,
			HistoryWindow:    ab.HistoryWindow,
			MinAnswers:       ab.MinAnswers,
		},
		Mastery: MasterySection{
			Threshold: learner.DefaultConfig().MasteryThreshold,
		},
		Selection: SelectionSection{
			ShortlistSize:           sel.ShortlistSize,
			FinalCandidates:         sel.FinalCandidates,
			WrongRecencyMultiplier:  sel.WrongRecencyMultiplier,
			WrongCountWeight:        sel.WrongCountWeight,
			RecentPerformanceWindow: sel.RecentPerformanceWindow,
			RankTimeoutSecs:         int(sel.RankTimeout / time.Second),
		},
		Feedback: FeedbackSection{
			ObjectiveWeight:  fb.ObjectiveWeight,
			SubjectiveWeight: fb.SubjectiveWeight,
			PassRateWeight:   fb.PassRateWeight,
			TimeWeight:       fb.TimeWeight,
			TargetTimeSecs:   fb.TargetTimeSecs,
		},
	}
}

// Load reads the configuration from path, layered over defaults. An
// empty path falls back to ADAPTICODE_CONFIG, then the XDG config
// location; a missing file yields the defaults. ADAPTICODE_BANK_DIR
// overrides bank_dir last.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("ADAPTICODE_CONFIG")
	}
	if path == "" {
		path = xdgConfigPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults.
	default:
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if d := os.Getenv("ADAPTICODE_BANK_DIR"); d != "" {
		cfg.BankDir = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Ability.ThetaMin >= c.Ability.ThetaMax {
		return fmt.Errorf("ability: theta_min must be below theta_max")
	}
	if c.Ability.QuadraturePoints < 2 {
		return fmt.Errorf("ability: quadrature_points must be at least 2")
	}
	if c.Ability.PriorStd <= 0 {
		return fmt.Errorf("ability: prior_std must be positive")
	}
	if c.Selection.ShortlistSize < 1 || c.Selection.FinalCandidates < 1 {
		return fmt.Errorf("selection: shortlist_size and final_candidates must be positive")
	}
	if c.Selection.FinalCandidates > c.Selection.ShortlistSize {
		return fmt.Errorf("selection: final_candidates cannot exceed shortlist_size")
	}
	return nil
}

// AbilityConfig converts the ability section for the estimator.
func (c Config) AbilityConfig() irt.Config {
	return irt.Config{
		InitialTheta:     c.Ability.InitialTheta,
		ThetaMin:         c.Ability.ThetaMin,
		ThetaMax:         c.Ability.ThetaMax,
		PriorMean:        c.Ability.PriorMean,
		PriorStd:         c.Ability.PriorStd,
		QuadraturePoints: c.Ability.QuadraturePoints,
		HistoryWindow:    c.Ability.HistoryWindow,
		MinAnswers:       c.Ability.MinAnswers,
	}
}

// MasteryConfig converts the mastery section for the learner state.
func (c Config) MasteryConfig() learner.Config {
	return learner.Config{MasteryThreshold: c.Mastery.Threshold}
}

// SelectionConfig converts the selection section for the policy.
func (c Config) SelectionConfig() selection.Config {
	return selection.Config{
		ShortlistSize:           c.Selection.ShortlistSize,
		FinalCandidates:         c.Selection.FinalCandidates,
		WrongRecencyMultiplier:  c.Selection.WrongRecencyMultiplier,
		WrongCountWeight:        c.Selection.WrongCountWeight,
		RecentPerformanceWindow: c.Selection.RecentPerformanceWindow,
		RankTimeout:             time.Duration(c.Selection.RankTimeoutSecs) * time.Second,
	}
}

// FeedbackConfig converts the feedback section for the evaluator.
func (c Config) FeedbackConfig() feedback.Config {
	return feedback.Config{
		ObjectiveWeight:  c.Feedback.ObjectiveWeight,
		SubjectiveWeight: c.Feedback.SubjectiveWeight,
		PassRateWeight:   c.Feedback.PassRateWeight,
		TimeWeight:       c.Feedback.TimeWeight,
		TargetTimeSecs:   c.Feedback.TargetTimeSecs,
	}
}

// Graph builds the concept graph: the configured curriculum when
// present, otherwise the built-in one.
func (c Config) Graph() (*conceptgraph.Graph, error) {
	if len(c.Curriculum) == 0 {
		return conceptgraph.DefaultCurriculum(), nil
	}
	concepts := make([]string, 0, len(c.Curriculum))
	prereqs := make(map[string][]string, len(c.Curriculum))
	for _, spec := range c.Curriculum {
		concepts = append(concepts, spec.Name)
		prereqs[spec.Name] = spec.Prerequisites
	}
	g, err := conceptgraph.New(concepts, prereqs)
	if err != nil {
		return nil, fmt.Errorf("curriculum: %w", err)
	}
	return g, nil
}

func xdgConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "adapticode", "config.yaml")
}
