package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Print the most recent saved result",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		res, err := st.ResultRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load latest result: %w", err)
		}
		if res == nil {
			fmt.Println("No saved results yet.")
			return nil
		}

		fmt.Printf("Taken:   %s\n", res.TakenAt.Format("2006-01-02 15:04"))
		fmt.Printf("Topic:   %s\n", res.TopicKey)
		fmt.Printf("Score:   %d/%d\n\n", res.Correct, res.Total)

		domains := make([]string, 0, len(res.Domains))
		for d := range res.Domains {
			domains = append(domains, d)
		}
		sort.Strings(domains)
		for _, domain := range domains {
			d := res.Domains[domain]
			fmt.Printf("%-55s %d/%d correct, %d skipped\n", domain, d.Correct, d.Total, d.Skipped)
		}
		return nil
	},
}
