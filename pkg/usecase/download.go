package usecase

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/dsfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type downloadUseCase struct {
	fetcher interfaces.Fetcher
}

// NewDownload creates a new instance of DownloadUseCase
func NewDownload(fetcher interfaces.Fetcher) interfaces.DownloadUseCase {
	return &downloadUseCase{
		fetcher: fetcher,
	}
}

// Download streams the resource at url into dest. dest is truncated before
// writing and its parent directory must already exist. A failed download may
// leave a partial file behind.
func (uc *downloadUseCase) Download(ctx context.Context, dest, url string) (*model.DownloadResult, error) {
	logger := ctxlog.From(ctx)
	start := time.Now()

	stream, err := uc.fetcher.Open(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := stream.Body.Close(); err != nil {
			logger.Debug("Failed to close response body", "error", err)
		}
	}()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open destination file",
			goerr.V("path", dest),
			goerr.T(types.ErrTagIO),
		)
	}
	defer func() {
		if err := out.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			logger.Error("Failed to close destination file", "error", err, "path", dest)
		}
	}()

	w := &fileWriter{w: out}
	n, err := io.Copy(w, stream.Body)
	if err != nil {
		if w.err != nil {
			return nil, goerr.Wrap(w.err, "failed to write destination file",
				goerr.V("path", dest),
				goerr.V("written", n),
				goerr.T(types.ErrTagIO),
			)
		}
		return nil, goerr.Wrap(err, "dataset stream interrupted",
			goerr.V("path", dest),
			goerr.V("received", n),
			goerr.T(types.ErrTagNetwork),
		)
	}

	if stream.ContentLength >= 0 && n != stream.ContentLength {
		return nil, goerr.New("dataset stream ended before declared content length",
			goerr.V("expected", stream.ContentLength),
			goerr.V("received", n),
			goerr.T(types.ErrTagNetwork),
		)
	}

	if err := out.Close(); err != nil {
		return nil, goerr.Wrap(err, "failed to close destination file",
			goerr.V("path", dest),
			goerr.T(types.ErrTagIO),
		)
	}

	result := &model.DownloadResult{
		Path:     dest,
		Size:     n,
		Duration: time.Since(start),
	}

	logger.Info("Download completed",
		"path", result.Path,
		"size_bytes", result.Size,
		"duration_ms", result.Duration.Milliseconds(),
	)

	return result, nil
}

// fileWriter remembers the first write error so that io.Copy failures can be
// attributed to the destination rather than the stream.
type fileWriter struct {
	w   io.Writer
	err error
}

func (x *fileWriter) Write(p []byte) (int, error) {
	n, err := x.w.Write(p)
	if err != nil && x.err == nil {
		x.err = err
	}
	return n, err
}
