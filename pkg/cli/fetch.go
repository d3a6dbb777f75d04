package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/dsfetch/pkg/infra/fetch"
	"github.com/m-mizutani/dsfetch/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func runFetch(ctx context.Context, c *cli.Command, datasetCfg *config.Dataset) error {
	if c.Args().Present() {
		return goerr.New("dsfetch takes no positional arguments",
			goerr.V("args", c.Args().Slice()),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	cfg, err := datasetCfg.Build()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return goerr.Wrap(err, "failed to get working directory", goerr.T(types.ErrTagConfiguration))
	}

	client := fetch.New(fetch.WithInsecureSkipVerify(cfg.InsecureSkipVerify))
	datasetUC := usecase.NewDataset(cfg, usecase.NewDownload(client))

	if _, err := datasetUC.Prepare(ctx, cwd); err != nil {
		return err
	}

	return nil
}
