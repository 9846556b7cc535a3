package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ahleksu/gail-prac-app/internal/catalog"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz straight away",
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		if topic == "" {
			topic = catalog.TopicAll
		}
		return runApp(cmd, topic)
	},
}

func init() {
	playCmd.Flags().String("topic", "", fmt.Sprintf("Topic key to practice (default %q)", catalog.TopicAll))
}
