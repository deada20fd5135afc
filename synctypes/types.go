// Package synctypes defines the shared types used by the assetsync module.
// It contains the asset data model, the report returned by a sync pass, the
// capability interface a remote release host must implement, and the
// configuration structs populated by functional options.
package synctypes

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-git/go-billy/v5"
	"golang.org/x/text/language"
)

// AssetSpec declares intent to attach one or more assets to a release.
// Pattern is a glob evaluated against the local filesystem. Name and Label
// override the discovered file's display metadata, but only when the pattern
// resolves to exactly one file. Optional patterns may match zero files
// without failing the run.
type AssetSpec struct {
	// Pattern is the glob pattern selecting local files (required)
	Pattern string

	// Name overrides the uploaded asset name (single-match patterns only)
	Name string

	// Label overrides the uploaded asset label (single-match patterns only)
	Label string

	// Optional marks the pattern as allowed to match nothing
	Optional bool
}

// LocalAsset is a concrete local file produced by expanding an AssetSpec.
type LocalAsset struct {
	// Path is the local filesystem path of the file
	Path string

	// Name is the name the asset will carry on the release
	Name string

	// Label is the display label, empty when none was declared
	Label string
}

// ReleaseAsset describes an asset attached to a remote release. It is owned
// by the remote host; the ID is assigned by the host and unknown until an
// upload succeeds.
type ReleaseAsset struct {
	// ID is the host-assigned identifier (opaque string)
	ID string

	// Name is the asset's name on the release
	Name string

	// Label is the asset's display label
	Label string

	// State reports the host-side state of the asset (e.g. "uploaded")
	State string

	// ContentType is the MIME type the asset was uploaded with
	ContentType string

	// Size is the asset size in bytes
	Size int64

	// DownloadCount is the number of times the asset was downloaded
	DownloadCount int64

	// CreatedAt is when the asset was first attached
	CreatedAt time.Time

	// UpdatedAt is when the asset was last modified
	UpdatedAt time.Time

	// URL is the host API URL for the asset
	URL string

	// DownloadURL is the public download URL for the asset
	DownloadURL string
}

// UploadRequest carries everything a host needs to attach one asset.
type UploadRequest struct {
	// Name is the asset name on the release
	Name string

	// Label is the display label, may be empty
	Label string

	// ContentType is the MIME type of the body
	ContentType string

	// Body is the full asset content
	Body []byte
}

// ReleaseHost is the remote capability a sync pass runs against. The engine
// never retries host calls; each call resolves exactly once per attempt.
// Implementations must be safe for concurrent use, uploads and deletes run
// in parallel.
type ReleaseHost interface {
	// UploadAsset attaches an asset to the release identified by target and
	// returns the host's view of the created asset.
	UploadAsset(ctx context.Context, target string, req UploadRequest) (*ReleaseAsset, error)

	// DeleteAsset removes the asset with the given host-assigned ID from the
	// release identified by target.
	DeleteAsset(ctx context.Context, target string, id string) error
}

// Failure attributes an operation error to the asset it concerned.
type Failure struct {
	// Name is the asset name the operation was for
	Name string

	// Err is the underlying error
	Err error
}

// BatchStats summarizes one batch (uploads or updates) of a sync pass.
type BatchStats struct {
	// Attempted is the number of operations in the batch
	Attempted int

	// Succeeded is the number of operations that completed
	Succeeded int

	// Failed is the number of operations that failed
	Failed int

	// Failures lists the failed operations with their reasons
	Failures []Failure
}

// SyncReport is the result of a full sync pass. Assets contains only the
// assets whose operation succeeded, sorted deterministically by name.
// Untouched pre-existing remote assets are not reported.
type SyncReport struct {
	// Succeeded is true only if every operation in both batches succeeded
	Succeeded bool

	// Assets are the successfully uploaded or replaced assets, sorted by name
	Assets []ReleaseAsset

	// Uploads summarizes the upload batch
	Uploads BatchStats

	// Updates summarizes the replace batch
	Updates BatchStats
}

// ClientConfig holds configuration for the sync client.
// It is populated by functional options.
type ClientConfig struct {
	// Filesystem used for glob expansion and content reads
	Filesystem billy.Filesystem

	// Logger receives structured progress and warning output
	Logger *slog.Logger

	// Concurrency caps in-flight operations per batch
	Concurrency int

	// Collation selects the locale used for the deterministic name sort
	Collation language.Tag
}

// Option configures the sync client.
type Option func(*ClientConfig)
