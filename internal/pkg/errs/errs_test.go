//go:build unit

package errs_test

import (
	stderrors "errors"
	"testing"

	"hostelops/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAndIs(t *testing.T) {
	t.Run("marked error matches the sentinel through Is", func(t *testing.T) {
		sentinel := errs.New("room not found")
		cause := errs.New("no rows in result set")

		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause), "the cause stays reachable")
	})

	t.Run("mark of nil collapses to the sentinel itself", func(t *testing.T) {
		sentinel := errs.New("invalid input")
		require.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("marks are invisible to the standard library matcher", func(t *testing.T) {
		// cockroachdb marks ride on the message, not the Unwrap chain.
		// Any sentinel check on a marked error has to go through errs.Is.
		sentinel := errs.New("capacity exceeded")
		marked := errs.Mark(errs.New("occupants 5 over capacity 4"), sentinel)

		assert.False(t, stderrors.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, sentinel))
	})

	t.Run("bare sentinels still match by identity", func(t *testing.T) {
		sentinel := errs.New("booking not found")
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("wrap keeps the sentinel match", func(t *testing.T) {
		sentinel := errs.New("order service failed")
		wrapped := errs.Wrap(errs.Mark(errs.New("502 from upstream"), sentinel), "extend stay")
		assert.True(t, errs.Is(wrapped, sentinel))
	})
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, errs.Wrap(nil, "no-op"))
}

func TestExtractStackLines(t *testing.T) {
	t.Run("truncates to maxLines", func(t *testing.T) {
		lines := errs.ExtractStackLines(errs.New("boom"), 3)
		require.NotEmpty(t, lines)
		assert.LessOrEqual(t, len(lines), 3)
		assert.Contains(t, lines[0], "boom")
	})

	t.Run("nil error yields nothing", func(t *testing.T) {
		assert.Nil(t, errs.ExtractStackLines(nil, 10))
	})
}
