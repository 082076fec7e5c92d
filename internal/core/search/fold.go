package search

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
)

// foldedLine is a case folded copy of a line plus, for every folded byte, the
// offset of the original rune that produced it. orig has one extra trailing
// entry holding len(original) so folded end offsets map too.
type foldedLine struct {
	text string
	orig []int
}

// boundary reports whether folded offset i starts the output of an original
// rune (or is the end of the text).
func (f foldedLine) boundary(i int) bool {
	if i <= 0 || i >= len(f.text) {
		return true
	}
	return f.orig[i] != f.orig[i-1]
}

func foldQuery(q string) (string, error) {
	if isASCII(q) {
		return lowerASCII(q), nil
	}
	out, _, err := transform.String(cases.Fold(), q)
	if err != nil {
		return "", err
	}
	return out, nil
}

// foldLine folds s rune by rune with full Unicode case folding. Invalid UTF-8
// bytes are copied unchanged.
func foldLine(s string) (foldedLine, error) {
	caser := cases.Fold()

	var b strings.Builder
	b.Grow(len(s))
	orig := make([]int, 0, len(s)+1)

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r < utf8.RuneSelf {
			b.WriteByte(lowerByte(s[i]))
			orig = append(orig, i)
			i++
			continue
		}
		if r == utf8.RuneError && size <= 1 {
			b.WriteByte(s[i])
			orig = append(orig, i)
			i++
			continue
		}

		out, _, err := transform.String(caser, s[i:i+size])
		if err != nil {
			return foldedLine{}, err
		}
		b.WriteString(out)
		for j := 0; j < len(out); j++ {
			orig = append(orig, i)
		}
		i += size
	}
	orig = append(orig, len(s))

	return foldedLine{text: b.String(), orig: orig}, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				b[j] = lowerByte(b[j])
			}
			return string(b)
		}
	}
	return s
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
