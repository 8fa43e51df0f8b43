package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteTextFn", func(t *testing.T) {
		t.Parallel()

		var calledWith string
		c := &mock.Clipboard{
			WriteTextFn: func(_ context.Context, text string) error {
				calledWith = text
				return nil
			},
		}

		err := c.WriteText(context.Background(), "*.foo.com")

		require.NoError(t, err)
		assert.Equal(t, "*.foo.com", calledWith)
	})
}

func TestDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("delegates to DownloadFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *subextract.Export
		d := &mock.Downloader{
			DownloadFn: func(_ context.Context, export *subextract.Export) error {
				calledWith = export
				return nil
			},
		}

		export := subextract.NewExport([]string{"*.foo.com"}, subextract.FormatTXT)
		err := d.Download(context.Background(), export)

		require.NoError(t, err)
		assert.Same(t, export, calledWith)
	})
}
