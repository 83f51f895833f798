package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adapticode/adapticode/internal/hints"
	"github.com/adapticode/adapticode/internal/store"
)

var hintCmd = &cobra.Command{
	Use:   "hint <question-id>",
	Short: "Get a hint for a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runHint(cmd, args[0])
	},
}

func init() {
	hintCmd.Flags().IntP("level", "l", 1, fmt.Sprintf("Hint level, 1 (gentle) to %d (most revealing)", hints.MaxLevel))
}

func runHint(cmd *cobra.Command, questionID string) error {
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
	level, _ := cmd.Flags().GetInt("level")

	hint, err := e.hints.Hint(ctx, hints.Request{
		QuestionID:  item.ID,
		Topic:       item.Topic,
		Description: item.Description,
		Level:       level,
	})
	if err != nil {
		return fmt.Errorf("generate hint: %w", err)
	}

	if err := e.events.AppendHint(ctx, store.HintEventData{
		QuestionID: item.ID,
		Topic:      item.Topic,
		Level:      hint.Level,
		HintText:   hint.Text,
		Source:     hint.Source,
	}); err != nil {
		return fmt.Errorf("record hint: %w", err)
	}

	fmt.Printf("Hint %d of %d for %s:\n\n", hint.Level, hints.MaxLevel, item.ID)
	fmt.Println(hint.Text)
	return nil
}
