package model

import (
	"io"
	"path/filepath"
	"time"
)

// DatasetFileName is the fixed file name the dataset is stored under
const DatasetFileName = "consumer_complaints_with_narrative.csv"

// DatasetDir returns the dataset directory relative to the project root
func DatasetDir() string {
	return filepath.Join("data", "dataset1")
}

// DestinationPath returns the dataset file location under the project root
func DestinationPath(root string) string {
	return filepath.Join(root, DatasetDir(), DatasetFileName)
}

// Stream is an open response body of a remote resource
type Stream struct {
	Body          io.ReadCloser
	ContentLength int64 // -1 if unknown
}

// DownloadResult represents the result of a dataset download
type DownloadResult struct {
	Path     string        // Destination file path
	Size     int64         // Bytes written
	Duration time.Duration // Time spent streaming
}
