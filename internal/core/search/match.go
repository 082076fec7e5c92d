package search

import (
	"strings"
	"unicode/utf8"

	"minigrep/internal/model"
)

type Span = model.Span

// FindMatches returns every non-overlapping occurrence of query in line, left
// to right, in byte coordinates of line. An empty query matches nothing.
func FindMatches(query string, line string, caseSensitive bool) ([]Span, error) {
	m, err := newMatcher(query, caseSensitive)
	if err != nil {
		return nil, err
	}
	return m.find(line)
}

// matcher holds a query prepared for one comparison mode so that a scan over
// many lines folds the query only once.
type matcher struct {
	needle        string
	caseSensitive bool
	asciiNeedle   bool
}

func newMatcher(query string, caseSensitive bool) (*matcher, error) {
	m := &matcher{needle: query, caseSensitive: caseSensitive}
	if query == "" || caseSensitive {
		return m, nil
	}

	needle, err := foldQuery(query)
	if err != nil {
		return nil, &FoldError{Err: err}
	}
	m.needle = needle
	m.asciiNeedle = isASCII(needle)
	return m, nil
}

func (m *matcher) find(line string) ([]Span, error) {
	if m.needle == "" || len(line) == 0 {
		return nil, nil
	}
	if m.caseSensitive {
		return indexAll(line, m.needle), nil
	}
	if m.asciiNeedle && isASCII(line) {
		return indexAll(lowerASCII(line), m.needle), nil
	}

	folded, err := foldLine(line)
	if err != nil {
		return nil, &FoldError{Err: err}
	}
	return indexAllFolded(folded, m.needle), nil
}

func indexAll(hay string, needle string) []Span {
	var out []Span
	from := 0
	for from <= len(hay)-len(needle) {
		idx := strings.Index(hay[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		out = append(out, Span{Offset: start, Length: len(needle)})
		from = start + len(needle)
	}
	return out
}

// indexAllFolded searches the folded text and maps every hit back to the
// original line. Hits that begin or end inside the expansion of a single
// original rune (e.g. one "s" of a folded "ß") are skipped.
func indexAllFolded(f foldedLine, needle string) []Span {
	var out []Span
	from := 0
	for from <= len(f.text)-len(needle) {
		idx := strings.Index(f.text[from:], needle)
		if idx < 0 {
			break
		}
		start := from + idx
		end := start + len(needle)
		if !f.boundary(start) || !f.boundary(end) {
			_, size := utf8.DecodeRuneInString(f.text[start:])
			from = start + max(size, 1)
			continue
		}

		origStart := f.orig[start]
		out = append(out, Span{Offset: origStart, Length: f.orig[end] - origStart})
		from = end
	}
	return out
}
