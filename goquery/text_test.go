package goquery_test

import (
	"testing"

	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("keeps text in document order", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<p>*.a.com <b>*.b.com</b> *.c.com</p><p>*.d.com</p>`)

		require.NoError(t, err)
		assert.Equal(t, "*.a.com *.b.com *.c.com\n*.d.com", text)
	})

	t.Run("joins inline markup within a block", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<p>*.foo.<b>com</b></p><ul><li>*.<i>bar</i>.org</li><li>*.baz.net</li></ul>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"*.foo.com", "*.bar.org", "*.baz.net"}, subextract.Extract(text, subextract.Options{}))
	})

	t.Run("breaks at line breaks", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<p>*.one.com<br>tail</p>`)

		require.NoError(t, err)
		assert.Equal(t, "*.one.com\ntail", text)
	})

	t.Run("keeps attributes off the text line", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<p>*.in.<a href="/x">line</a></p>`)

		require.NoError(t, err)
		assert.Equal(t, "*.in.line\n/x", text)
	})

	t.Run("separates adjacent cells", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<table><tr><td>*.scope.com</td><td>wildcard</td></tr></table>`)

		require.NoError(t, err)
		assert.Equal(t, []string{"*.scope.com"}, subextract.Extract(text, subextract.Options{}))
	})

	t.Run("includes attribute values", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText(`<a href="https://x.test/?q=*.hidden.org" title="scope">link</a>`)

		require.NoError(t, err)
		assert.Contains(t, text, "https://x.test/?q=*.hidden.org")
		assert.Contains(t, text, "link")
		assert.Equal(t, []string{"*.hidden.org"}, subextract.Extract(text, subextract.Options{}))
	})

	t.Run("skips comments and whitespace", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText("<div>\n  <!-- *.secret.com -->\n  <span> </span>\n</div>")

		require.NoError(t, err)
		assert.Empty(t, text)
	})

	t.Run("treats plain text as a text node", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewTextExtractor()

		text, err := e.ExtractText("*.plain.text")

		require.NoError(t, err)
		assert.Equal(t, "*.plain.text", text)
	})
}
