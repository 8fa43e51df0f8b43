package subextract

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineSize is the longest input line ExtractReader accepts.
const MaxLineSize = 16 * 1024 * 1024

// ExtractReader streams wildcard subdomains from r, calling emit for each
// entry that survives deduplication and keyword filtering. Matches never
// span a newline, so scanning line by line gives the same sequence as
// Extract over the whole input when seen is exact.
//
// seen is consulted only when opts.UniqueOnly is set. A nil seen uses an
// exact Set. Errors from r or emit are returned unchanged.
func ExtractReader(r io.Reader, opts Options, seen Deduper, emit func(string) error) error {
	if opts.UniqueOnly && seen == nil {
		seen = NewSet()
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	for scanner.Scan() {
		for _, m := range Pattern.FindAllString(scanner.Text(), -1) {
			if opts.UniqueOnly && !seen.Add(m) {
				continue
			}
			if !opts.Keep(m) {
				continue
			}
			if err := emit(m); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Errorf(EINVALID, "input line exceeds %d bytes", MaxLineSize)
		}
		return err
	}
	return nil
}
