package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [concept]",
	Short: "Reset learner progress, entirely or for one concept",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := ""
		if len(args) == 1 {
			topic = args[0]
		}
		return runReset(cmd, topic)
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}

func runReset(cmd *cobra.Command, topic string) error {
	ctx := cmd.Context()
	e, err := newEngine(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if topic != "" && !e.state.Graph().Contains(topic) {
		return fmt.Errorf("unknown concept %q", topic)
	}

	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		what := "ALL learner progress"
		if topic != "" {
			what = fmt.Sprintf("ability and history for %q", topic)
		}
		fmt.Printf("This will reset %s. Continue? [y/N] ", what)
		var answer string
		fmt.Fscanln(cmd.InOrStdin(), &answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if topic == "" {
		e.state.Reset()
		fmt.Println("Learner progress reset.")
	} else {
		e.state.ResetTopic(topic)
		fmt.Printf("Reset %q. Mastery status is kept; ability starts over.\n", topic)
	}
	return e.saveProfile(ctx)
}
