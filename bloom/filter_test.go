package bloom_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/subextract"
	"github.com/fwojciec/subextract/bloom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter_Add(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	// First sighting is new
	assert.True(t, f.Add("*.foo.com"))

	// Second sighting is a duplicate
	assert.False(t, f.Add("*.foo.com"))

	// Different entry is still new
	assert.True(t, f.Add("*.bar.org"))
	assert.False(t, f.Add("*.bar.org"))
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.Equal(t, uint(0), f.EstimatedCount())

	f.Add("*.one.com")
	f.Add("*.two.com")
	f.Add("*.three.com")

	count := f.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems  = 10000
		fpRate    = 0.01
		numChecks = 1000
	)

	// Sized for the checks too, since Add records every entry it sees.
	f := bloom.NewFilter(numItems+numChecks, fpRate)

	for i := range numItems {
		f.Add(fmt.Sprintf("*.added%d.example", i))
	}

	// A distinct entry reported as seen is a false positive.
	falsePositives := 0
	for i := range numChecks {
		if !f.Add(fmt.Sprintf("*.fresh%d.example", i)) {
			falsePositives++
		}
	}

	// Allow up to 3% to account for statistical variance
	actualRate := float64(falsePositives) / float64(numChecks)
	assert.Less(t, actualRate, 0.03, "false positive rate %f exceeds 3%%", actualRate)
}

func TestFilter_WithExtractReader(t *testing.T) {
	t.Parallel()

	input := "*.foo.com *.bar.org\n*.foo.com\n*.baz.net *.bar.org"

	var got []string
	err := subextract.ExtractReader(strings.NewReader(input), subextract.Options{UniqueOnly: true}, bloom.NewFilter(100, 0.001), func(s string) error {
		got = append(got, s)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"*.foo.com", "*.bar.org", "*.baz.net"}, got)
}
