package aggregator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/releasekit/assetsync/internal/executor"
	"github.com/releasekit/assetsync/synctypes"
)

func success(name string) executor.Outcome {
	return executor.Outcome{
		Name:  name,
		Asset: &synctypes.ReleaseAsset{ID: "id-" + name, Name: name},
	}
}

func failure(name string, err error) executor.Outcome {
	return executor.Outcome{Name: name, Err: err}
}

func names(assets []synctypes.ReleaseAsset) []string {
	out := make([]string, len(assets))
	for i, asset := range assets {
		out[i] = asset.Name
	}
	return out
}

func TestAggregate(t *testing.T) {
	agg := New(language.Und)

	t.Run("merges both batches sorted by name", func(t *testing.T) {
		report := agg.Aggregate(
			[]executor.Outcome{success("b.2.json"), success("b.1.json")},
			[]executor.Outcome{success("a.txt")},
		)
		assert.True(t, report.Succeeded)
		assert.Equal(t, []string{"a.txt", "b.1.json", "b.2.json"}, names(report.Assets))
	})

	t.Run("ordering is independent of completion order", func(t *testing.T) {
		first := agg.Aggregate(
			[]executor.Outcome{success("zeta"), success("alpha"), success("mid")},
			nil,
		)
		second := agg.Aggregate(
			[]executor.Outcome{success("mid"), success("zeta"), success("alpha")},
			nil,
		)
		assert.Equal(t, names(first.Assets), names(second.Assets))
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, names(first.Assets))
	})

	t.Run("any failure clears the success flag", func(t *testing.T) {
		boom := errors.New("boom")
		report := agg.Aggregate(
			[]executor.Outcome{success("one"), failure("two", boom), success("three")},
			nil,
		)
		assert.False(t, report.Succeeded)
		assert.Equal(t, []string{"one", "three"}, names(report.Assets))

		assert.Equal(t, 3, report.Uploads.Attempted)
		assert.Equal(t, 2, report.Uploads.Succeeded)
		assert.Equal(t, 1, report.Uploads.Failed)
		require.Len(t, report.Uploads.Failures, 1)
		assert.Equal(t, "two", report.Uploads.Failures[0].Name)
		assert.ErrorIs(t, report.Uploads.Failures[0].Err, boom)
	})

	t.Run("update batch failures count too", func(t *testing.T) {
		report := agg.Aggregate(
			[]executor.Outcome{success("new.zip")},
			[]executor.Outcome{failure("old.zip", errors.New("delete rejected"))},
		)
		assert.False(t, report.Succeeded)
		assert.Equal(t, []string{"new.zip"}, names(report.Assets))
		assert.Equal(t, 1, report.Updates.Failed)
	})

	t.Run("empty batches report success with no assets", func(t *testing.T) {
		report := agg.Aggregate(nil, nil)
		assert.True(t, report.Succeeded)
		assert.Empty(t, report.Assets)
		assert.Zero(t, report.Uploads.Attempted)
		assert.Zero(t, report.Updates.Attempted)
	})
}
