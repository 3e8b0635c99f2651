package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/universalhex/traitquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "traitquiz",
	Short: "Guess the trait behind each icon",
	Long:  "traitquiz: a ten-round terminal quiz matching icons to the traits they stand for.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addConfigFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(traitsCmd)
	rootCmd.AddCommand(rankingsCmd)
	rootCmd.AddCommand(versionCmd)
}

// addConfigFlags registers the flags resolveConfig reads.
func addConfigFlags(pf *pflag.FlagSet) {
	pf.String("asset-base", "", "URL or directory icons are resolved against (overrides TRAITQUIZ_ASSET_BASE)")
	pf.Int64("seed", 0, "Random seed for reproducible sessions (overrides TRAITQUIZ_SEED)")
	pf.Int("rounds", 0, "Questions per session (overrides TRAITQUIZ_ROUNDS)")
	pf.String("log-file", "", "Write JSON logs to this file (overrides TRAITQUIZ_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides TRAITQUIZ_LOG_LEVEL)")
}

// resolveConfig loads the environment and then applies any flags the user
// set explicitly, so flags take priority.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("asset-base") {
		cfg.AssetBase, _ = flags.GetString("asset-base")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("rounds") {
		cfg.Rounds, _ = flags.GetInt("rounds")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}
