package mock

import "github.com/fwojciec/subextract"

var _ subextract.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of subextract.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(src string) (string, error)
}

func (e *TextExtractor) ExtractText(src string) (string, error) {
	return e.ExtractTextFn(src)
}
