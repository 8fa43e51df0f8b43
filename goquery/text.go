// Package goquery converts pasted HTML into plain text for extraction.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/subextract"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure TextExtractor implements subextract.TextExtractor at compile time.
var _ subextract.TextExtractor = (*TextExtractor)(nil)

// TextExtractor flattens an HTML document to text in document order.
// Text inside one block (a paragraph, list item or table cell) is joined
// into a single line with whitespace collapsed, so inline markup such as
// <p>*.foo.<b>com</b></p> reads as *.foo.com. Block boundaries break the
// line, which keeps neighbouring cells like <td>*.a.com</td><td>x</td>
// from fusing into one longer match. Attribute values follow the line
// their element's text ends up on, one value per line.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText parses html and returns its text content and attribute values.
func (e *TextExtractor) ExtractText(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", subextract.Errorf(subextract.EINVALID, "failed to parse HTML: %v", err)
	}

	var f flattener
	for _, n := range doc.Nodes {
		f.walk(n)
	}
	f.flush()
	return strings.Join(f.lines, "\n"), nil
}

// blockElements break the current line before and after their content.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true,
	atom.Blockquote: true, atom.Body: true, atom.Br: true,
	atom.Caption: true, atom.Dd: true, atom.Details: true,
	atom.Div: true, atom.Dl: true, atom.Dt: true,
	atom.Fieldset: true, atom.Figcaption: true, atom.Figure: true,
	atom.Footer: true, atom.Form: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true,
	atom.H5: true, atom.H6: true, atom.Head: true,
	atom.Header: true, atom.Hr: true, atom.Html: true,
	atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.Option: true, atom.P: true,
	atom.Pre: true, atom.Script: true, atom.Section: true,
	atom.Select: true, atom.Style: true, atom.Summary: true,
	atom.Table: true, atom.Tbody: true, atom.Td: true,
	atom.Textarea: true, atom.Tfoot: true, atom.Th: true,
	atom.Thead: true, atom.Title: true, atom.Tr: true,
	atom.Ul: true,
}

type flattener struct {
	lines []string
	text  strings.Builder
	attrs []string
}

func (f *flattener) walk(n *html.Node) {
	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		f.flush()
	}

	switch n.Type {
	case html.TextNode:
		f.text.WriteString(n.Data)
	case html.ElementNode:
		for _, attr := range n.Attr {
			if v := strings.TrimSpace(attr.Val); v != "" {
				f.attrs = append(f.attrs, v)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		f.walk(c)
	}

	if block {
		f.flush()
	}
}

// flush ends the current line and emits any pending attribute values.
func (f *flattener) flush() {
	if line := strings.Join(strings.Fields(f.text.String()), " "); line != "" {
		f.lines = append(f.lines, line)
	}
	f.text.Reset()
	f.lines = append(f.lines, f.attrs...)
	f.attrs = f.attrs[:0]
}
