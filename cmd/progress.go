package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show per-concept mastery and ability",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProgress(cmd)
	},
}

func runProgress(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	rows := e.state.Progress()

	fmt.Printf("%-44s  %-5s  %-8s  %7s  %8s  %8s  %8s\n",
		"Concept", "Level", "Status", "Theta", "Attempts", "Recent", "AllTime")
	fmt.Println(strings.Repeat("─", 100))

	for _, row := range rows {
		recent := "-"
		if row.Attempts > 0 {
			recent = fmt.Sprintf("%.0f%%", float64(row.Correct)/float64(row.Attempts)*100)
		}

		// Profile history drops on reset; the event log does not.
		allTime := "-"
		if acc, err := e.events.TopicAccuracy(ctx, row.Concept); err == nil && (acc > 0 || row.Attempts > 0) {
			allTime = fmt.Sprintf("%.0f%%", acc*100)
		}

		fmt.Printf("%-44s  %-5d  %-8s  %7.2f  %8d  %8s  %8s\n",
			row.Concept, row.Level, row.Status, row.Theta, row.Attempts, recent, allTime)
	}

	if next, ok := e.state.NextConcept(); ok {
		fmt.Printf("\nNext up: %s\n", next)
	} else {
		fmt.Println("\nEvery concept is mastered. New questions review what you know.")
	}
	return nil
}
