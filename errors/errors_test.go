package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	underlying := stderrors.New("no such file")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "with pattern",
			err:      NewPatternError("expand", "*.zip", underlying),
			expected: `assetsync.expand pattern "*.zip": no such file`,
		},
		{
			name:     "with asset name",
			err:      NewAssetError("upload", "app.zip", underlying),
			expected: "assetsync.upload asset app.zip: no such file",
		},
		{
			name:     "operation only",
			err:      NewError("sync", underlying),
			expected: "assetsync.sync: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := stderrors.New("boom")
	err := NewError("upload", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Equal(t, underlying, err.Unwrap())
}

func TestErrorContext(t *testing.T) {
	err := NewError("expand", ErrMandatoryAssetNotFound).WithPattern("dist/*.tar.gz")
	assert.Equal(t, "dist/*.tar.gz", err.Pattern)

	err = NewError("delete", ErrRemoteRejected).WithName("app.zip")
	assert.Equal(t, "app.zip", err.Name)
}

func TestSentinelChecks(t *testing.T) {
	wrapped := NewPatternError("expand", "*.zip",
		fmt.Errorf("context: %w", ErrMandatoryAssetNotFound))

	assert.True(t, IsMandatoryAssetNotFound(wrapped))
	assert.False(t, IsRemoteRejected(wrapped))
	assert.False(t, IsAssetUnreadable(wrapped))
	assert.False(t, IsInvalidInput(wrapped))

	var opErr *Error
	require.ErrorAs(t, error(wrapped), &opErr)
	assert.Equal(t, "expand", opErr.Op)
}
