// Package aggregator merges the settled operation outcomes of a sync pass
// into a single report with a deterministic asset ordering.
package aggregator

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/releasekit/assetsync/internal/executor"
	"github.com/releasekit/assetsync/synctypes"
)

// Aggregator builds sync reports. The collator pins the name ordering to a
// locale so the final asset list is identical across runs regardless of the
// order in which concurrent operations completed.
type Aggregator struct {
	collator *collate.Collator
}

// New creates an aggregator sorting asset names under the given locale.
func New(tag language.Tag) *Aggregator {
	return &Aggregator{
		collator: collate.New(tag),
	}
}

// Aggregate merges the upload and update batches into a report. The report
// succeeds only if every outcome in both batches succeeded; the successful
// assets from both batches are merged and sorted by name. Failures are kept
// on the per-batch stats for the caller to log.
func (a *Aggregator) Aggregate(uploads, updates []executor.Outcome) *synctypes.SyncReport {
	report := &synctypes.SyncReport{
		Uploads: batchStats(uploads),
		Updates: batchStats(updates),
	}
	report.Succeeded = report.Uploads.Failed == 0 && report.Updates.Failed == 0

	assets := make([]synctypes.ReleaseAsset, 0, len(uploads)+len(updates))
	for _, outcome := range uploads {
		if outcome.Succeeded() {
			assets = append(assets, *outcome.Asset)
		}
	}
	for _, outcome := range updates {
		if outcome.Succeeded() {
			assets = append(assets, *outcome.Asset)
		}
	}

	sort.SliceStable(assets, func(i, j int) bool {
		return a.collator.CompareString(assets[i].Name, assets[j].Name) < 0
	})
	report.Assets = assets

	return report
}

// batchStats summarizes one batch of outcomes.
func batchStats(outcomes []executor.Outcome) synctypes.BatchStats {
	stats := synctypes.BatchStats{
		Attempted: len(outcomes),
	}
	for _, outcome := range outcomes {
		if outcome.Succeeded() {
			stats.Succeeded++
			continue
		}
		stats.Failed++
		stats.Failures = append(stats.Failures, synctypes.Failure{
			Name: outcome.Name,
			Err:  outcome.Err,
		})
	}
	return stats
}
