package model

// Span is a byte range inside one line's original text.
type Span struct {
	Offset int `json:"offset"`
	Length int `json:"length"`
}

func (s Span) End() int {
	return s.Offset + s.Length
}

// LineResult is a matching line and its spans. Text aliases the searched
// document; spans are ascending and never overlap.
type LineResult struct {
	Number int    `json:"line"`
	Text   string `json:"text"`
	Spans  []Span `json:"matches"`
}

// Slice returns the original bytes covered by s.
func (r LineResult) Slice(s Span) string {
	return r.Text[s.Offset:s.End()]
}

type Outcome []LineResult

func (o Outcome) MatchCount() int {
	n := 0
	for _, r := range o {
		n += len(r.Spans)
	}
	return n
}
