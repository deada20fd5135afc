package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/releasekit/assetsync/synctypes"
)

func TestDiff(t *testing.T) {
	t.Run("unmatched desired assets become uploads", func(t *testing.T) {
		plan := Diff(nil, []synctypes.LocalAsset{
			{Path: "a.txt", Name: "a.txt"},
			{Path: "b.zip", Name: "b.zip"},
		})
		assert.Len(t, plan.Uploads, 2)
		assert.Empty(t, plan.Updates)
		assert.Equal(t, 2, plan.Operations())
	})

	t.Run("name matches become updates paired with the remote asset", func(t *testing.T) {
		existing := []synctypes.ReleaseAsset{
			{ID: "41", Name: "a.txt"},
		}
		plan := Diff(existing, []synctypes.LocalAsset{
			{Path: "out/a.txt", Name: "a.txt"},
		})
		assert.Empty(t, plan.Uploads)
		require.Len(t, plan.Updates, 1)
		assert.Equal(t, "41", plan.Updates[0].Existing.ID)
		assert.Equal(t, "out/a.txt", plan.Updates[0].Desired.Path)
	})

	t.Run("remote match is case-sensitive", func(t *testing.T) {
		existing := []synctypes.ReleaseAsset{
			{ID: "7", Name: "README.md"},
		}
		plan := Diff(existing, []synctypes.LocalAsset{
			{Path: "readme.md", Name: "readme.md"},
		})
		assert.Len(t, plan.Uploads, 1)
		assert.Empty(t, plan.Updates)
	})

	t.Run("untouched remote assets are not referenced", func(t *testing.T) {
		existing := []synctypes.ReleaseAsset{
			{ID: "1", Name: "keep-me.txt"},
			{ID: "2", Name: "a.txt"},
		}
		plan := Diff(existing, []synctypes.LocalAsset{
			{Path: "a.txt", Name: "a.txt"},
		})
		require.Len(t, plan.Updates, 1)
		assert.Equal(t, "2", plan.Updates[0].Existing.ID)
		assert.Empty(t, plan.Uploads)
	})

	t.Run("mixed scenario partitions as expected", func(t *testing.T) {
		// The canonical case: a.txt already attached, b.*.json expansion new.
		existing := []synctypes.ReleaseAsset{
			{ID: "100", Name: "a.txt"},
		}
		plan := Diff(existing, []synctypes.LocalAsset{
			{Path: "a.txt", Name: "a.txt"},
			{Path: "b.1.json", Name: "b.1.json"},
			{Path: "b.2.json", Name: "b.2.json"},
		})
		require.Len(t, plan.Updates, 1)
		assert.Equal(t, "a.txt", plan.Updates[0].Desired.Name)
		require.Len(t, plan.Uploads, 2)
		assert.Equal(t, "b.1.json", plan.Uploads[0].Name)
		assert.Equal(t, "b.2.json", plan.Uploads[1].Name)
	})

	t.Run("empty desired set plans nothing", func(t *testing.T) {
		plan := Diff([]synctypes.ReleaseAsset{{ID: "1", Name: "a"}}, nil)
		assert.Zero(t, plan.Operations())
	})
}
