package grepcli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"minigrep/internal/model"
)

// Theme holds the styles used for emphasis. A theme with colors disabled
// renders text unchanged.
type Theme struct {
	Match *color.Color
	Query *color.Color
	File  *color.Color
}

func NewTheme(name string, enabled bool) Theme {
	var th Theme
	switch name {
	case "colorblind":
		th = Theme{
			Match: color.New(color.FgHiBlue, color.Bold, color.Underline),
			Query: color.New(color.FgHiBlue, color.Bold),
			File:  color.New(color.FgYellow),
		}
	case "high-contrast":
		th = Theme{
			Match: color.New(color.FgBlack, color.BgHiYellow, color.Bold),
			Query: color.New(color.FgBlack, color.BgHiYellow, color.Bold),
			File:  color.New(color.FgHiWhite, color.Bold),
		}
	default:
		th = Theme{
			Match: color.New(color.FgRed, color.Bold),
			Query: color.New(color.FgRed, color.Bold),
			File:  color.New(color.FgBlue),
		}
	}

	if name == "none" {
		enabled = false
	}
	for _, c := range []*color.Color{th.Match, th.Query, th.File} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return th
}

// colorEnabled decides the --color mode for w. In auto mode only terminals
// get colors, and NO_COLOR turns them off.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func RenderBanner(query string, path string, th Theme) string {
	return fmt.Sprintf("Searching for %s\nIn file %s\n\n", th.Query.Sprint(query), th.File.Sprint(path))
}

// RenderDefault writes every matching line with its spans emphasized. Bytes
// outside the spans are copied unchanged.
func RenderDefault(out model.Outcome, th Theme) string {
	var b strings.Builder
	for _, r := range out {
		cur := 0
		for _, s := range r.Spans {
			b.WriteString(r.Text[cur:s.Offset])
			b.WriteString(th.Match.Sprint(r.Slice(s)))
			cur = s.End()
		}
		b.WriteString(r.Text[cur:])
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderVim prints one row per span; col is the 1-based byte column.
func RenderVim(path string, out model.Outcome) string {
	var b strings.Builder
	for _, r := range out {
		for _, s := range r.Spans {
			_, _ = fmt.Fprintf(&b, "%s:%d:%d: %s\n", path, r.Number, s.Offset+1, r.Text)
		}
	}
	return b.String()
}

type jsonlMatch struct {
	Offset int    `json:"offset"`
	Length int    `json:"length"`
	Text   string `json:"text"`
}

type jsonlLine struct {
	Line    int          `json:"line"`
	Text    string       `json:"text"`
	Matches []jsonlMatch `json:"matches"`
}

func RenderJSONL(out model.Outcome) string {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	for _, r := range out {
		rec := jsonlLine{Line: r.Number, Text: r.Text, Matches: make([]jsonlMatch, 0, len(r.Spans))}
		for _, s := range r.Spans {
			rec.Matches = append(rec.Matches, jsonlMatch{Offset: s.Offset, Length: s.Length, Text: r.Slice(s)})
		}
		_ = enc.Encode(rec)
	}
	return b.String()
}

func RenderCount(out model.Outcome) string {
	return strconv.Itoa(len(out)) + "\n"
}
