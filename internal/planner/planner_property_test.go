package planner

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/releasekit/assetsync/synctypes"
)

func TestProperty_PartitionTotality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("every desired asset lands in exactly one of uploads/updates", prop.ForAll(
		func(existingNames, desiredNames []string) bool {
			existing := make([]synctypes.ReleaseAsset, len(existingNames))
			for i, name := range existingNames {
				existing[i] = synctypes.ReleaseAsset{ID: name, Name: name}
			}

			// Desired names are unique after dedup; drop duplicates the way
			// the scanner would before planning.
			seen := make(map[string]bool, len(desiredNames))
			var desired []synctypes.LocalAsset
			for _, name := range desiredNames {
				if seen[name] {
					continue
				}
				seen[name] = true
				desired = append(desired, synctypes.LocalAsset{Path: name, Name: name})
			}

			plan := Diff(existing, desired)

			if len(plan.Uploads)+len(plan.Updates) != len(desired) {
				return false
			}

			inUploads := make(map[string]bool, len(plan.Uploads))
			for _, asset := range plan.Uploads {
				inUploads[asset.Name] = true
			}
			for _, update := range plan.Updates {
				if inUploads[update.Desired.Name] {
					return false // partition must be disjoint
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
