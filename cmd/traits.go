package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/universalhex/traitquiz/internal/traits"
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "List the trait catalog with icon locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "%-5s  %-5s  %-32s  %s\n", "Index", "Icon", "Trait", "Asset")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for i, label := range traits.All() {
			id := traits.IconID(i)
			fmt.Fprintf(out, "%5d  %5d  %-32s  %s\n", i, id, label, traits.IconPath(cfg.AssetBase, id))
		}

		fmt.Fprintf(out, "\n%d traits\n", traits.Count)
		return nil
	},
}
