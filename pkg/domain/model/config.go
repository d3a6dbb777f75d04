package model

import (
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Config is the configuration of a single dataset fetch run
type Config struct {
	ProjectName        string // Name of the project root directory
	DatasetURL         string // HTTP(S) source of the dataset
	InsecureSkipVerify bool   // Disable TLS certificate verification
}

// Validate checks that all required values are present
func (c *Config) Validate() error {
	if c.ProjectName == "" {
		return goerr.New("project name is not set", goerr.T(types.ErrTagConfiguration))
	}
	if c.DatasetURL == "" {
		return goerr.New("dataset URL is not set", goerr.T(types.ErrTagConfiguration))
	}
	return nil
}
