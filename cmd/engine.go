package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/adapticode/adapticode/internal/catalog"
	"github.com/adapticode/adapticode/internal/config"
	"github.com/adapticode/adapticode/internal/feedback"
	"github.com/adapticode/adapticode/internal/hints"
	"github.com/adapticode/adapticode/internal/irt"
	"github.com/adapticode/adapticode/internal/learner"
	"github.com/adapticode/adapticode/internal/llm"
	"github.com/adapticode/adapticode/internal/ranking"
	"github.com/adapticode/adapticode/internal/selection"
	"github.com/adapticode/adapticode/internal/store"
)

// snapshotsKept bounds how many profile snapshots are retained.
const snapshotsKept = 20

// engine wires the store, learner state, and services behind each
// command. Commands build one, use it, and close it.
type engine struct {
	cfg    config.Config
	store  *store.Store
	events store.EventRepo
	snaps  store.SnapshotRepo
	bank   catalog.Provider
	state  *learner.State
	policy *selection.Policy
	hints  *hints.Service
	scorer *feedback.Evaluator
	log    *zap.Logger
}

// newEngine opens the store and assembles the services. Without a
// configured LLM provider the engine still works: ranking and hints
// degrade to their deterministic fallbacks.
func newEngine(cmd *cobra.Command) (*engine, error) {
	ctx := cmd.Context()

	logger, err := newLogger(cmd)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	graph, err := cfg.Graph()
	if err != nil {
		return nil, err
	}

	bank, err := loadBank(cfg)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	events := st.EventRepo()
	snaps := st.SnapshotRepo()

	initialTheta := cfg.Ability.InitialTheta
	snap, err := snaps.Latest(ctx)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	var profile *learner.Profile
	if snap != nil {
		profile = learner.ProfileFromSnapshot(snap.Data, graph, initialTheta)
		logger.Debug("profile restored",
			zap.Time("snapshot_time", snap.Timestamp),
			zap.Int("attempts", len(profile.History)))
	} else {
		profile = learner.NewProfile(uuid.New().String(), graph, initialTheta)
		logger.Debug("fresh profile created", zap.String("learner_id", profile.LearnerID))
	}

	est := irt.NewEstimator(cfg.AbilityConfig())
	state := learner.NewState(graph, est, cfg.MasteryConfig(), profile)

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question ranking and hints will use built-in fallbacks.")
		provider = llm.NewMockProvider()
	}

	ranker := ranking.NewLLMRanker(provider, ranking.DefaultRankerConfig())

	return &engine{
		cfg:    cfg,
		store:  st,
		events: events,
		snaps:  snaps,
		bank:   bank,
		state:  state,
		policy: selection.New(bank, ranker, cfg.SelectionConfig()),
		hints:  hints.NewService(provider, hints.DefaultConfig()),
		scorer: feedback.New(cfg.FeedbackConfig()),
		log:    logger,
	}, nil
}

func (e *engine) Close() error {
	_ = e.log.Sync()
	return e.store.Close()
}

// saveProfile snapshots the learner state and prunes old snapshots.
func (e *engine) saveProfile(ctx context.Context) error {
	snap := &store.Snapshot{
		Timestamp: time.Now(),
		Data:      e.state.Profile().ToSnapshot(),
	}
	if err := e.snaps.Save(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := e.snaps.Prune(ctx, snapshotsKept); err != nil {
		e.log.Warn("prune snapshots", zap.Error(err))
	}
	return nil
}

// loadBank loads the configured question bank directory, or the
// built-in bank when none is configured.
func loadBank(cfg config.Config) (catalog.Provider, error) {
	if cfg.BankDir == "" {
		return catalog.Builtin(), nil
	}
	bank, err := catalog.LoadDir(cfg.BankDir)
	if err != nil {
		return nil, fmt.Errorf("load question banks: %w", err)
	}
	return bank, nil
}

// newLogger builds the command logger: debug-level development output
// with --verbose, warnings and errors only otherwise.
func newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		return zap.NewDevelopment()
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
