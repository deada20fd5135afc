// Package executor runs the planned upload and replace operations against
// the remote release host. Operations run concurrently under a semaphore cap
// and every operation settles on its own: a failure is recorded in that
// operation's outcome slot and never cancels or aborts a sibling.
package executor

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	syncerrors "github.com/releasekit/assetsync/errors"
	"github.com/releasekit/assetsync/internal/planner"
	"github.com/releasekit/assetsync/synctypes"
)

// DefaultContentType is used when content type detection fails.
const DefaultContentType = "application/octet-stream"

// sniffLen is the number of leading bytes used for content type detection.
const sniffLen = 512

// Outcome records how a single operation settled. Exactly one of Asset and
// Err is set.
type Outcome struct {
	// Name is the asset name the operation was for
	Name string

	// Asset is the remote host's view of the asset, set on success
	Asset *synctypes.ReleaseAsset

	// Err is the operation failure, set when the operation did not complete
	Err error
}

// Succeeded reports whether the operation completed.
func (o Outcome) Succeeded() bool {
	return o.Err == nil
}

// Executor runs sync operations against a release host.
type Executor struct {
	host   synctypes.ReleaseHost
	fs     billy.Filesystem
	logger *slog.Logger

	maxConcurrency int
	semaphore      chan struct{}
}

// New creates a new executor with the specified concurrency limit.
func New(host synctypes.ReleaseHost, fsys billy.Filesystem, logger *slog.Logger, maxConcurrency int) *Executor {
	if maxConcurrency <= 0 {
		maxConcurrency = 5 // Default concurrency
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Executor{
		host:           host,
		fs:             fsys,
		logger:         logger,
		maxConcurrency: maxConcurrency,
		semaphore:      make(chan struct{}, maxConcurrency),
	}
}

// Execute runs the plan's upload and replace batches. Both batches run
// concurrently with each other and every operation inside a batch runs
// concurrently under the executor's semaphore. Execute always waits for
// every operation to settle before returning.
//
// Each goroutine writes only its own positionally-indexed outcome slot, so
// the returned slices are index-correlated with plan.Uploads and
// plan.Updates and no locking is needed on the way in.
func (e *Executor) Execute(ctx context.Context, target string, plan *planner.Plan) (uploads, updates []Outcome) {
	uploads = make([]Outcome, len(plan.Uploads))
	updates = make([]Outcome, len(plan.Updates))

	var wg sync.WaitGroup

	for i, asset := range plan.Uploads {
		wg.Add(1)
		go func(i int, asset synctypes.LocalAsset) {
			defer wg.Done()
			e.semaphore <- struct{}{}
			defer func() { <-e.semaphore }()

			uploads[i] = e.upload(ctx, target, asset)
		}(i, asset)
	}

	for i, update := range plan.Updates {
		wg.Add(1)
		go func(i int, update planner.Update) {
			defer wg.Done()
			e.semaphore <- struct{}{}
			defer func() { <-e.semaphore }()

			updates[i] = e.update(ctx, target, update)
		}(i, update)
	}

	wg.Wait()
	return uploads, updates
}

// upload reads the asset's content and submits it to the host. Read and
// remote failures both settle as failure outcomes.
func (e *Executor) upload(ctx context.Context, target string, asset synctypes.LocalAsset) Outcome {
	data, err := util.ReadFile(e.fs, asset.Path)
	if err != nil {
		e.logger.Error("failed to read asset", "name", asset.Name, "path", asset.Path, "error", err)
		return Outcome{
			Name: asset.Name,
			Err:  syncerrors.NewAssetError("upload", asset.Name, fmt.Errorf("%w: %w", syncerrors.ErrAssetUnreadable, err)),
		}
	}

	req := synctypes.UploadRequest{
		Name:        asset.Name,
		Label:       asset.Label,
		ContentType: detectContentType(asset.Path, data),
		Body:        data,
	}

	remote, err := e.host.UploadAsset(ctx, target, req)
	if err != nil {
		e.logger.Error("failed to upload asset", "name", asset.Name, "error", err)
		return Outcome{
			Name: asset.Name,
			Err:  syncerrors.NewAssetError("upload", asset.Name, fmt.Errorf("%w: %w", syncerrors.ErrRemoteRejected, err)),
		}
	}

	e.logger.Info("uploaded asset", "name", remote.Name, "size", remote.Size, "contentType", remote.ContentType)
	return Outcome{
		Name:  asset.Name,
		Asset: remote,
	}
}

// update replaces an existing remote asset: delete first, then upload the
// desired asset. A delete failure settles the whole operation without
// attempting the upload.
func (e *Executor) update(ctx context.Context, target string, update planner.Update) Outcome {
	if err := e.host.DeleteAsset(ctx, target, update.Existing.ID); err != nil {
		e.logger.Error("failed to delete asset before replace",
			"name", update.Existing.Name, "id", update.Existing.ID, "error", err)
		return Outcome{
			Name: update.Desired.Name,
			Err:  syncerrors.NewAssetError("delete", update.Existing.Name, fmt.Errorf("%w: %w", syncerrors.ErrRemoteRejected, err)),
		}
	}

	return e.upload(ctx, target, update.Desired)
}

// detectContentType determines the content type by sniffing the asset's
// leading bytes, falling back to extension-based lookup when sniffing is
// inconclusive.
func detectContentType(path string, data []byte) string {
	head := data
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if len(head) > 0 {
		if mt := mimetype.Detect(head); mt.String() != DefaultContentType {
			return mt.String()
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" {
		if byExt := mime.TypeByExtension(ext); byExt != "" {
			return byExt
		}
	}

	return DefaultContentType
}
