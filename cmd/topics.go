package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topic keys and the domains they cover",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		repo := buildRepository(cmd, cfg)

		for _, key := range repo.Topics().Keys() {
			domains := repo.Topics().Domains(key)
			if len(domains) == 0 {
				fmt.Printf("%-14s every domain\n", key)
				continue
			}
			fmt.Printf("%-14s %s\n", key, strings.Join(domains, "; "))
		}
		return nil
	},
}
