package grepcli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"
)

// ExplainCollector gathers key/values and phase timings for one search run
// and prints them to stderr in text or JSON form.
type ExplainCollector struct {
	mu      sync.Mutex
	format  string
	kv      map[string]any
	timings map[string]time.Duration
}

func NewExplainCollector(format string) *ExplainCollector {
	format = strings.TrimSpace(format)
	if format == "" {
		format = "text"
	}
	return &ExplainCollector{
		format:  format,
		kv:      map[string]any{},
		timings: map[string]time.Duration{},
	}
}

func (e *ExplainCollector) KV(key string, value any) {
	if e == nil {
		return
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return
	}
	e.mu.Lock()
	e.kv[key] = value
	e.mu.Unlock()
}

func (e *ExplainCollector) Timer(name string) func() {
	if e == nil || strings.TrimSpace(name) == "" {
		return func() {}
	}
	name = strings.TrimSpace(name)
	start := time.Now()
	return func() {
		d := time.Since(start)
		e.mu.Lock()
		e.timings[name] += d
		e.mu.Unlock()
	}
}

// Snapshot returns the collected values, with timings in microseconds under
// "timings_us".
func (e *ExplainCollector) Snapshot() map[string]any {
	if e == nil {
		return map[string]any{}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]any, len(e.kv)+1)
	for k, v := range e.kv {
		out[k] = v
	}
	if len(e.timings) > 0 {
		tm := make(map[string]int64, len(e.timings))
		for k, d := range e.timings {
			tm[k] = d.Microseconds()
		}
		out["timings_us"] = tm
	}
	return out
}

func (e *ExplainCollector) Emit(w io.Writer) error {
	if e == nil || w == nil {
		return nil
	}
	snap := e.Snapshot()

	if e.format == "json" {
		b, err := json.Marshal(snap)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	var b strings.Builder
	b.WriteString("explain:\n")
	for _, k := range sortedKeys(snap) {
		if k == "timings_us" {
			continue
		}
		_, _ = fmt.Fprintf(&b, "  %s: %v\n", k, snap[k])
	}
	if tm, ok := snap["timings_us"].(map[string]int64); ok {
		for _, name := range sortedKeys(tm) {
			_, _ = fmt.Fprintf(&b, "  elapsed_us_%s: %d\n", name, tm[name])
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
