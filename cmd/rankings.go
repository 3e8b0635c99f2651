package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/universalhex/traitquiz/internal/ranking"
	"github.com/universalhex/traitquiz/internal/session"
)

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Show the ranking ladder and the scores that reach each tier",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		rounds := session.Config{Rounds: cfg.Rounds}.Clamped().Rounds
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-9s  %-10s  %s\n", "Accuracy", "Min score", "Ranking")
		fmt.Fprintln(out, strings.Repeat("─", 40))

		for _, t := range ranking.Tiers() {
			fmt.Fprintf(out, "%8.0f%%  %10s  %s\n",
				t.Threshold*100,
				fmt.Sprintf("%d/%d", minScore(t.Threshold, rounds), rounds),
				t.Label)
		}
		return nil
	},
}

// minScore is the lowest score out of rounds whose ratio reaches threshold.
func minScore(threshold float64, rounds int) int {
	for s := 0; s <= rounds; s++ {
		if float64(s)/float64(rounds) >= threshold {
			return s
		}
	}
	return rounds
}
