package search

import (
	"errors"
	"strings"

	"minigrep/internal/core/explain"
	"minigrep/internal/model"
)

type LineResult = model.LineResult

// Search scans document line by line and returns the lines containing query,
// in document order. Results alias document; nothing is copied.
func Search(query string, document string, caseSensitive bool) (model.Outcome, error) {
	return SearchWithExplain(query, document, caseSensitive, nil)
}

func SearchWithExplain(query string, document string, caseSensitive bool, ex explain.Explain) (model.Outcome, error) {
	if ex != nil {
		defer ex.Timer("search")()
	}

	m, err := newMatcher(query, caseSensitive)
	if err != nil {
		return nil, err
	}

	var out model.Outcome
	lines := 0
	err = eachLine(document, func(n int, line string) error {
		lines = n
		spans, err := m.find(line)
		if err != nil {
			var fe *FoldError
			if errors.As(err, &fe) {
				fe.Line = n
			}
			return err
		}
		if len(spans) == 0 {
			return nil
		}
		out = append(out, LineResult{Number: n, Text: line, Spans: spans})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if ex != nil {
		ex.KV("case_sensitive", caseSensitive)
		ex.KV("lines", lines)
		ex.KV("matched_lines", len(out))
		ex.KV("matches", out.MatchCount())
	}
	return out, nil
}

// eachLine calls fn for every line of text with its 1-based number. Lines end
// at "\n" and a "\r" right before it is dropped; a final unterminated line
// keeps its "\r". A final terminator does not start an empty trailing line.
func eachLine(text string, fn func(n int, line string) error) error {
	n := 0
	for len(text) > 0 {
		n++
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line = strings.TrimSuffix(text[:i], "\r")
			text = text[i+1:]
		} else {
			text = ""
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	return nil
}

// CountLines returns how many lines Search would visit in text.
func CountLines(text string) int {
	n := 0
	_ = eachLine(text, func(int, string) error {
		n++
		return nil
	})
	return n
}
