package clipboard_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("passes text to writer", func(t *testing.T) {
		t.Parallel()

		var got string
		c := clipboard.NewClipboard(clipboard.WithWriter(func(text string) error {
			got = text
			return nil
		}))

		err := c.WriteText(context.Background(), "*.foo.com\n*.bar.org")

		require.NoError(t, err)
		assert.True(t, c.Available())
		assert.Equal(t, "*.foo.com\n*.bar.org", got)
	})

	t.Run("maps writer failure to unavailable", func(t *testing.T) {
		t.Parallel()

		c := clipboard.NewClipboard(clipboard.WithWriter(func(string) error {
			return errors.New("exec: \"xclip\": executable file not found")
		}))

		err := c.WriteText(context.Background(), "x")

		require.Error(t, err)
		assert.Equal(t, subextract.EUNAVAILABLE, subextract.ErrorCode(err))
		assert.Contains(t, subextract.ErrorMessage(err), "xclip")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		called := false
		c := clipboard.NewClipboard(clipboard.WithWriter(func(string) error {
			called = true
			return nil
		}))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := c.WriteText(ctx, "x")

		require.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})
}
