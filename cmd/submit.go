package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adapticode/adapticode/internal/grading"
	"github.com/adapticode/adapticode/internal/learner"
	"github.com/adapticode/adapticode/internal/store"
)

var submitCmd = &cobra.Command{
	Use:   "submit <question-id>",
	Short: "Record a graded attempt and update your ability estimate",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSubmit(cmd, args[0])
	},
}

func init() {
	submitCmd.Flags().String("report", "", "Path to graded test results JSON")
	submitCmd.Flags().Float64("pass-rate", -1, "Fraction of hidden tests passed (alternative to --report)")
	submitCmd.Flags().Float64("time", 0, "Time taken in seconds")
	submitCmd.Flags().Int("rating", 0, "How hard it felt, 1 (trivial) to 5 (impossible)")
	submitCmd.Flags().String("notes", "", "Free-form notes on the attempt")
}

func runSubmit(cmd *cobra.Command, questionID string) error {
	ctx := cmd.Context()
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	item, ok := e.bank.Item(questionID)
	if !ok {
		return fmt.Errorf("unknown question %q", questionID)
	}

	passRate, passed, err := gradedResult(cmd)
	if err != nil {
		return err
	}
	timeSecs, _ := cmd.Flags().GetFloat64("time")
	rating, _ := cmd.Flags().GetInt("rating")
	notes, _ := cmd.Flags().GetString("notes")

	outcome, transition := e.state.RecordAnswer(learner.Answer{
		ItemID:        item.ID,
		Topic:         item.Topic,
		Params:        item.Params(),
		Correct:       passed,
		TimeTakenSecs: timeSecs,
		PassRate:      passRate,
	})
	if notes != "" {
		if err := e.state.AttachFeedback(item.ID, notes); err != nil {
			return err
		}
	}

	e.log.Debug("answer recorded",
		zap.String("question", item.ID),
		zap.Bool("correct", passed),
		zap.Float64("theta_after", outcome.ThetaAfter))

	if err := e.events.AppendAnswer(ctx, store.AnswerEventData{
		QuestionID:  item.ID,
		Topic:       item.Topic,
		Correct:     passed,
		PassRate:    passRate,
		TimeSecs:    timeSecs,
		ThetaBefore: outcome.ThetaBefore,
		ThetaAfter:  outcome.ThetaAfter,
	}); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	if transition != nil {
		if err := e.events.AppendMastery(ctx, store.MasteryEventData{
			Concept:    transition.Concept,
			FromStatus: string(transition.From),
			ToStatus:   string(transition.To),
			Theta:      outcome.ThetaAfter,
			Unlocked:   transition.Unlocked,
		}); err != nil {
			return fmt.Errorf("record mastery: %w", err)
		}
	}

	if err := e.saveProfile(ctx); err != nil {
		return err
	}

	if passed {
		fmt.Printf("Correct. All hidden tests passed.\n")
	} else {
		fmt.Printf("Not yet. %.0f%% of hidden tests passed.\n", passRate*100)
	}
	fmt.Printf("Ability in %s: %.2f -> %.2f\n", item.Topic, outcome.ThetaBefore, outcome.ThetaAfter)

	assessment := e.scorer.Assess(passRate, timeSecs, rating)
	fmt.Println(assessment.Recommendation)

	if transition != nil {
		fmt.Printf("\nConcept mastered: %s\n", transition.Concept)
		for _, unlocked := range transition.Unlocked {
			fmt.Printf("Unlocked: %s\n", unlocked)
		}
	}
	return nil
}

// gradedResult extracts the attempt outcome from --report or --pass-rate.
func gradedResult(cmd *cobra.Command) (passRate float64, passed bool, err error) {
	reportPath, _ := cmd.Flags().GetString("report")
	if reportPath != "" {
		report, err := grading.Load(reportPath)
		if err != nil {
			return 0, false, err
		}
		return report.PassRate, report.Passed, nil
	}

	rate, _ := cmd.Flags().GetFloat64("pass-rate")
	if rate < 0 || rate > 1 {
		return 0, false, fmt.Errorf("provide --report or --pass-rate between 0 and 1")
	}
	return rate, rate == 1, nil
}
