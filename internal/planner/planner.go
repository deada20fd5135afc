// Package planner partitions desired local assets against the assets already
// attached to a release. It decides which assets need a fresh upload and
// which need to replace an existing attachment.
package planner

import (
	"github.com/releasekit/assetsync/synctypes"
)

// Update pairs an existing remote asset with the local asset that replaces it.
type Update struct {
	// Existing is the remote asset to delete before re-uploading
	Existing synctypes.ReleaseAsset

	// Desired is the local asset to upload in its place
	Desired synctypes.LocalAsset
}

// Plan is the disjoint partition of the desired asset list. Every desired
// asset appears in exactly one of Uploads or Updates. Remote assets with no
// corresponding desired asset are left untouched and are not referenced.
type Plan struct {
	// Uploads are desired assets with no matching remote attachment
	Uploads []synctypes.LocalAsset

	// Updates are desired assets that replace a matching remote attachment
	Updates []Update
}

// Diff partitions desired assets against the existing remote attachments.
// Matching is by exact name; remote names are assumed unique. Diff is a pure
// function with no failure modes.
//
// Dedup of local candidates is case-insensitive, but the remote match here is
// deliberately case-sensitive: the hosting system's case semantics are not
// known to this layer, so only exact matches are treated as replacements.
func Diff(existing []synctypes.ReleaseAsset, desired []synctypes.LocalAsset) *Plan {
	byName := make(map[string]synctypes.ReleaseAsset, len(existing))
	for _, remote := range existing {
		if _, ok := byName[remote.Name]; !ok {
			byName[remote.Name] = remote
		}
	}

	plan := &Plan{}
	for _, asset := range desired {
		if remote, ok := byName[asset.Name]; ok {
			plan.Updates = append(plan.Updates, Update{
				Existing: remote,
				Desired:  asset,
			})
			continue
		}
		plan.Uploads = append(plan.Uploads, asset)
	}

	return plan
}

// Operations returns the total number of planned operations.
func (p *Plan) Operations() int {
	return len(p.Uploads) + len(p.Updates)
}
