package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/adapticode/adapticode/internal/store"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Serve the next question matched to your ability",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNext(cmd)
	},
}

func runNext(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	pick, err := e.policy.NextQuestion(ctx, e.state)
	if err != nil {
		return fmt.Errorf("select question: %w", err)
	}
	if pick == nil {
		fmt.Println("No questions available for your current concepts.")
		return nil
	}

	e.log.Debug("question selected",
		zap.String("question", pick.Item.ID),
		zap.String("strategy", pick.Strategy))

	if err := e.events.AppendSelection(ctx, store.SelectionEventData{
		QuestionID:  pick.Item.ID,
		Topic:       pick.Item.Topic,
		Strategy:    pick.Strategy,
		Explanation: pick.Explanation,
	}); err != nil {
		return fmt.Errorf("record selection: %w", err)
	}

	sep := strings.Repeat("─", 72)
	item := pick.Item

	fmt.Printf("Topic:    %s\n", item.Topic)
	fmt.Printf("Question: %s\n", item.ID)
	fmt.Println(sep)
	fmt.Println(item.Description)
	fmt.Println(sep)
	fmt.Printf("Starting point: %s\n", item.InitCode)

	if len(item.Tests) > 0 {
		fmt.Println("\nExamples:")
		for _, tc := range item.Tests {
			fmt.Printf("  %s -> %s\n", tc.Input, tc.Output)
		}
	}

	fmt.Printf("\n%s\n", pick.Explanation)
	fmt.Printf("\nWhen done: adapticode submit %s --report <graded-results.json> --time <seconds>\n", item.ID)
	return nil
}
