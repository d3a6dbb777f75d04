package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		datasetCfg config.Dataset
		sentryCfg  config.Sentry
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), datasetCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "dsfetch",
		Usage:   "Download the project dataset into <project_root>/data/dataset1",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With(slog.String("run_id", uuid.NewString()))

			if err := sentryCfg.Configure(); err != nil {
				return nil, err
			}
			if sentryCfg.Enabled() {
				logger.Debug("Sentry failure reporting enabled", slog.String("env", sentryCfg.Environment))
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return runFetch(ctx, c, &datasetCfg)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		if sentryCfg.Enabled() {
			if sentryCfg.Report(err) {
				logger.Info("Failure reported to Sentry")
			} else {
				logger.Warn("Failed to deliver failure report to Sentry")
			}
		}
		return err
	}

	return nil
}
