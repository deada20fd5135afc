// Package assetsync provides the public sync entry point.
package assetsync

import (
	"context"

	syncerrors "github.com/releasekit/assetsync/errors"
	"github.com/releasekit/assetsync/internal/aggregator"
	"github.com/releasekit/assetsync/internal/executor"
	"github.com/releasekit/assetsync/internal/planner"
	"github.com/releasekit/assetsync/internal/scanner"
	"github.com/releasekit/assetsync/synctypes"
)

// Sync reconciles the declared asset specs against the release identified by
// target, given a snapshot of the assets currently attached to it.
//
// The pass follows a four-phase approach:
//  1. Discovery: expand every spec's glob pattern and deduplicate the result
//  2. Planning: partition desired assets into uploads and replacements
//  3. Execution: run both batches concurrently with per-operation isolation
//  4. Aggregation: merge outcomes into a deterministically ordered report
//
// Discovery failures are fatal and return before any remote operation is
// attempted: a mandatory pattern matching nothing fails the whole pass with
// ErrMandatoryAssetNotFound. Execution failures are not fatal; they settle
// into the report, which then carries Succeeded == false alongside the assets
// that did make it up and the per-asset failure reasons.
//
// Pre-existing remote assets whose names match no desired asset are left
// untouched and do not appear in the report.
//
// Errors:
//   - ErrInvalidInput: if target is empty
//   - ErrMandatoryAssetNotFound: if a non-optional pattern matched no files
func (c *Client) Sync(
	ctx context.Context,
	target string,
	specs []synctypes.AssetSpec,
	existing []synctypes.ReleaseAsset,
) (*synctypes.SyncReport, error) {
	if target == "" {
		return nil, syncerrors.NewError("sync", syncerrors.ErrInvalidInput)
	}

	// Phase 1: Discovery
	sc := scanner.New(c.fs, c.logger.WithGroup("scan"))
	desired, err := sc.ExpandAll(specs)
	if err != nil {
		return nil, err
	}
	desired = sc.Dedupe(desired)

	// Phase 2: Planning
	plan := planner.Diff(existing, desired)
	c.logger.Info("planned sync",
		"target", target,
		"desired", len(desired),
		"uploads", len(plan.Uploads),
		"updates", len(plan.Updates))

	// Phase 3: Execution
	ex := executor.New(c.host, c.fs, c.logger.WithGroup("sync"), c.concurrency)
	uploads, updates := ex.Execute(ctx, target, plan)

	// Phase 4: Aggregation
	report := aggregator.New(c.collation).Aggregate(uploads, updates)

	if report.Succeeded {
		c.logger.Info("sync complete",
			"target", target,
			"uploaded", report.Uploads.Succeeded,
			"replaced", report.Updates.Succeeded)
	} else {
		for _, failure := range report.Uploads.Failures {
			c.logger.Error("upload failed", "name", failure.Name, "error", failure.Err)
		}
		for _, failure := range report.Updates.Failures {
			c.logger.Error("replace failed", "name", failure.Name, "error", failure.Err)
		}
		c.logger.Error("sync finished with failures",
			"target", target,
			"uploaded", report.Uploads.Succeeded,
			"replaced", report.Updates.Succeeded,
			"failed", report.Uploads.Failed+report.Updates.Failed)
	}

	return report, nil
}
