package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/dsfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/dsfetch/pkg/domain/model"
)

type datasetUseCase struct {
	cfg        model.Config
	downloader interfaces.DownloadUseCase
}

// NewDataset creates a new instance of DatasetUseCase
func NewDataset(cfg model.Config, downloader interfaces.DownloadUseCase) interfaces.DatasetUseCase {
	return &datasetUseCase{
		cfg:        cfg,
		downloader: downloader,
	}
}

// Prepare resolves the project root from cwd and downloads the dataset to
// <root>/data/dataset1/consumer_complaints_with_narrative.csv
func (uc *datasetUseCase) Prepare(ctx context.Context, cwd string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)

	logger.Info("Started download", "project_name", uc.cfg.ProjectName)

	if err := uc.cfg.Validate(); err != nil {
		return nil, err
	}

	root, err := ResolveRoot(cwd, uc.cfg.ProjectName)
	if err != nil {
		return nil, err
	}

	dest := model.DestinationPath(root)
	logger.Debug("Resolved dataset destination", "root", root, "path", dest)

	result, err := uc.downloader.Download(ctx, dest, uc.cfg.DatasetURL)
	if err != nil {
		return nil, err
	}

	logger.Info("Finished download", "path", result.Path)

	return result, nil
}
