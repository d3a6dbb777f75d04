package config

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/dsfetch/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Sentry holds error reporting configuration
type Sentry struct {
	DSN         string
	Environment string

	enabled bool
}

// Flags returns CLI flags for Sentry configuration
func (c *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN for failure reporting (disabled if empty)",
			Destination: &c.DSN,
			Sources:     cli.EnvVars("DSFETCH_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Value:       "default",
			Destination: &c.Environment,
			Sources:     cli.EnvVars("DSFETCH_SENTRY_ENV"),
		},
	}
}

// Configure initializes the Sentry client. It does nothing if DSN is empty.
func (c *Sentry) Configure() error {
	if c.DSN == "" {
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         c.DSN,
		Environment: c.Environment,
		Release:     types.Version,
	}); err != nil {
		return goerr.Wrap(err, "failed to initialize sentry",
			goerr.T(types.ErrTagConfiguration),
		)
	}

	c.enabled = true
	return nil
}

// Enabled reports whether Configure set up a Sentry client
func (c *Sentry) Enabled() bool {
	return c.enabled
}

// Report sends err to Sentry and waits for delivery. It returns false if
// reporting is disabled or delivery did not finish in time.
func (c *Sentry) Report(err error) bool {
	if !c.enabled || err == nil {
		return false
	}

	sentry.CaptureException(err)
	return sentry.Flush(2 * time.Second)
}
