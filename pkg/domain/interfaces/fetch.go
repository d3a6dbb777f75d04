package interfaces

import (
	"context"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
)

// Fetcher opens remote resources for streaming
type Fetcher interface {
	// Open issues a GET request and returns the response body. The caller
	// must close the body.
	Open(ctx context.Context, url string) (*model.Stream, error)
}
