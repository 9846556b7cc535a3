package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ahleksu/gail-prac-app/internal/app"
	"github.com/ahleksu/gail-prac-app/internal/catalog"
	"github.com/ahleksu/gail-prac-app/internal/config"
	"github.com/ahleksu/gail-prac-app/internal/store"
)

// runApp builds dependencies from flags and config and launches the TUI.
// startTopic is empty for the home screen, or a topic key to start a quiz
// immediately.
func runApp(cmd *cobra.Command, startTopic string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	repo := buildRepository(cmd, cfg)

	opts := app.Options{
		Repo:       repo,
		Shuffle:    shuffleEnabled(cmd, cfg),
		StartTopic: startTopic,
	}

	// Result persistence is best effort: a broken store means no saved
	// results, not a broken quiz.
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "results database unavailable:", err)
		fmt.Fprintln(os.Stderr, "results will not be saved.")
	} else {
		defer st.Close()
		opts.ResultRepo = st.ResultRepo()
	}

	return app.Run(opts)
}

// loadConfig reads the optional YAML config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// buildRepository wires the catalog repository from flag and config
// settings. Flag beats config; empty means the embedded catalog.
func buildRepository(cmd *cobra.Command, cfg config.Config) *catalog.Repository {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		path = cfg.Catalog
	}
	return catalog.NewRepository(path, catalog.NewTopics(cfg.Topics))
}

// shuffleEnabled resolves the presentation order: --no-shuffle beats the
// config default, which beats "shuffled".
func shuffleEnabled(cmd *cobra.Command, cfg config.Config) bool {
	if noShuffle, _ := cmd.Flags().GetBool("no-shuffle"); noShuffle {
		return false
	}
	return cfg.ShuffleEnabled()
}

// openStore opens the results database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	return store.Open(dbPath)
}
