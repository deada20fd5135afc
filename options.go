// Package assetsync provides functional options for configuring client behavior.
// These options follow the functional options pattern for clean, composable configuration.
package assetsync

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/text/language"

	"github.com/releasekit/assetsync/synctypes"
)

// WithFilesystem sets a custom filesystem implementation for glob expansion
// and content reads. This allows using in-memory filesystems for testing.
// If not specified, defaults to the OS filesystem rooted at the working
// directory.
func WithFilesystem(filesystem billy.Filesystem) synctypes.Option {
	return func(c *synctypes.ClientConfig) {
		c.Filesystem = filesystem
	}
}

// WithLogger configures the client with a custom logger.
// If not specified, logging is disabled.
func WithLogger(logger *slog.Logger) synctypes.Option {
	return func(c *synctypes.ClientConfig) {
		c.Logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent operations per sync
// pass. Default is 5 concurrent operations.
func WithConcurrency(concurrency int) synctypes.Option {
	return func(c *synctypes.ClientConfig) {
		if concurrency > 0 {
			c.Concurrency = concurrency
		}
	}
}

// WithCollation sets the locale used to order the final asset list.
// Default is the undetermined locale, which still yields a stable,
// deterministic ordering.
func WithCollation(tag language.Tag) synctypes.Option {
	return func(c *synctypes.ClientConfig) {
		c.Collation = tag
	}
}
