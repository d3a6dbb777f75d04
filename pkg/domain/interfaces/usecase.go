package interfaces

import (
	"context"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
)

// DownloadUseCase streams a remote resource into a local file
type DownloadUseCase interface {
	// Download copies the resource at url into dest, truncating dest first
	Download(ctx context.Context, dest, url string) (*model.DownloadResult, error)
}

// DatasetUseCase makes sure the dataset exists inside the project tree
type DatasetUseCase interface {
	// Prepare resolves the project root from cwd and downloads the dataset
	Prepare(ctx context.Context, cwd string) (*model.DownloadResult, error)
}
