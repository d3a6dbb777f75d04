package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classifying why a run failed
var (
	// ErrTagConfiguration marks missing or invalid configuration, including a
	// project root that cannot be resolved from the working directory.
	ErrTagConfiguration = goerr.NewTag("configuration")

	// ErrTagNetwork marks failures fetching the remote resource: unreachable
	// host, non-success status or an interrupted stream.
	ErrTagNetwork = goerr.NewTag("network")

	// ErrTagIO marks failures opening or writing the local destination.
	ErrTagIO = goerr.NewTag("io")
)
