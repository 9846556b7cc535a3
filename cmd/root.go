package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ahleksu/gail-prac-app/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gail-prac",
	Short: "Practice quizzes for the Generative AI Leader exam",
	Long:  "GAIL Prac — terminal practice app for the Google Cloud Generative AI Leader certification: quizzes by topic, scoring, and mistake review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite results database (overrides GAIL_PRAC_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides GAIL_PRAC_CONFIG env var)")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a question catalog JSON file (default: embedded catalog)")
	rootCmd.PersistentFlags().Bool("no-shuffle", false, "Present questions in catalog order")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GAIL_PRAC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
