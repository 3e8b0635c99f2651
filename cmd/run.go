package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/universalhex/traitquiz/internal/app"
	"github.com/universalhex/traitquiz/internal/config"
	"github.com/universalhex/traitquiz/internal/logger"
	"github.com/universalhex/traitquiz/internal/session"
)

// buildEngine resolves configuration and creates the logger and quiz engine.
// The caller must Sync the returned logger.
func buildEngine(cmd *cobra.Command) (*config.Config, *zap.Logger, *session.Engine, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	engine := session.NewEngine(session.Config{
		Rounds:        cfg.Rounds,
		FeedbackDelay: cfg.FeedbackDelay,
		Seed:          cfg.Seed,
	}, log)
	return cfg, log, engine, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, log, engine, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	return app.Run(app.Options{
		Engine:    engine,
		AssetBase: cfg.AssetBase,
		Logger:    log,
	})
}
