package config

import (
	"os"

	"github.com/m-mizutani/dsfetch/pkg/domain/model"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Dataset holds dataset source configuration
type Dataset struct {
	ConfigFile         string
	ProjectName        string
	DatasetURL         string
	InsecureSkipVerify bool
}

// datasetFile is the layout of the optional TOML configuration file
type datasetFile struct {
	ProjectName        string `toml:"project_name"`
	DatasetURL         string `toml:"dataset_url"`
	InsecureSkipVerify bool   `toml:"insecure_skip_verify"`
}

// Flags returns CLI flags for dataset configuration
func (c *Dataset) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to TOML configuration file",
			Destination: &c.ConfigFile,
			Sources:     cli.EnvVars("DSFETCH_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "project-name",
			Usage:       "Name of the project root directory",
			Destination: &c.ProjectName,
			Sources:     cli.EnvVars("DSFETCH_PROJECT_NAME"),
		},
		&cli.StringFlag{
			Name:        "dataset-url",
			Usage:       "HTTP(S) URL of the dataset",
			Destination: &c.DatasetURL,
			Sources:     cli.EnvVars("DSFETCH_DATASET_URL"),
		},
		&cli.BoolFlag{
			Name:        "insecure-skip-verify",
			Usage:       "Disable TLS certificate verification (not recommended)",
			Value:       false,
			Destination: &c.InsecureSkipVerify,
			Sources:     cli.EnvVars("DSFETCH_INSECURE_SKIP_VERIFY"),
		},
	}
}

// Build merges the configuration file, if any, with flag and environment
// values and returns the validated configuration. Non-empty flag values win
// over the file. TLS verification is skipped if either source enables it.
func (c *Dataset) Build() (model.Config, error) {
	var cfg model.Config

	if c.ConfigFile != "" {
		file, err := loadDatasetFile(c.ConfigFile)
		if err != nil {
			return model.Config{}, err
		}
		cfg = model.Config{
			ProjectName:        file.ProjectName,
			DatasetURL:         file.DatasetURL,
			InsecureSkipVerify: file.InsecureSkipVerify,
		}
	}

	if c.ProjectName != "" {
		cfg.ProjectName = c.ProjectName
	}
	if c.DatasetURL != "" {
		cfg.DatasetURL = c.DatasetURL
	}
	cfg.InsecureSkipVerify = cfg.InsecureSkipVerify || c.InsecureSkipVerify

	if err := cfg.Validate(); err != nil {
		return model.Config{}, err
	}

	return cfg, nil
}

func loadDatasetFile(path string) (*datasetFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file",
			goerr.V("path", path),
			goerr.T(types.ErrTagConfiguration),
		)
	}
	defer f.Close()

	var file datasetFile
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&file); err != nil {
		return nil, goerr.Wrap(err, "failed to decode config file",
			goerr.V("path", path),
			goerr.T(types.ErrTagConfiguration),
		)
	}

	return &file, nil
}
