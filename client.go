// Package assetsync provides client initialization and configuration.
package assetsync

import (
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"golang.org/x/text/language"

	syncerrors "github.com/releasekit/assetsync/errors"
	"github.com/releasekit/assetsync/synctypes"
)

// Client runs sync passes against a release host. A Client is safe for
// concurrent use; each Sync call builds its own pipeline.
type Client struct {
	// host is the remote release capability operations run against
	host synctypes.ReleaseHost

	// fs is the filesystem abstraction for glob expansion and content reads
	fs billy.Filesystem

	// logger receives structured progress output
	logger *slog.Logger

	// concurrency caps in-flight operations per sync pass
	concurrency int

	// collation is the locale used for the deterministic name sort
	collation language.Tag
}

// New creates a new sync client for the given release host.
//
// Example:
//
//	client, err := assetsync.New(host,
//	    assetsync.WithConcurrency(8),
//	    assetsync.WithLogger(slog.Default()),
//	)
func New(host synctypes.ReleaseHost, opts ...synctypes.Option) (*Client, error) {
	if host == nil {
		return nil, syncerrors.NewError("new", syncerrors.ErrInvalidInput)
	}

	cfg := &synctypes.ClientConfig{
		Concurrency: 5, // Default concurrency
		Collation:   language.Und,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	filesystem := cfg.Filesystem
	if filesystem == nil {
		// Default to the OS filesystem rooted at the working directory, so
		// relative glob patterns resolve the way callers expect.
		filesystem = osfs.New(".")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 5
	}

	return &Client{
		host:        host,
		fs:          filesystem,
		logger:      logger,
		concurrency: concurrency,
		collation:   cfg.Collation,
	}, nil
}
