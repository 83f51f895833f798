package cmd

import (
	"github.com/adapticode/adapticode/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "adapticode",
	Short: "Adaptive coding tutor",
	Long:  "Adapticode — an adaptive assessment engine that serves recursion exercises matched to your ability and tracks concept mastery.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNext(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ADAPTICODE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides ADAPTICODE_CONFIG env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ADAPTICODE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
