package grepcli

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestExplainCollector_Text(t *testing.T) {
	ex := NewExplainCollector("")
	ex.KV("query", "duct")
	ex.KV(" ", "ignored")
	ex.Timer("search")()

	var b strings.Builder
	if err := ex.Emit(&b); err != nil {
		t.Fatalf("emit: %v", err)
	}
	s := b.String()
	for _, want := range []string{"explain:", "query: duct", "elapsed_us_search:"} {
		if !strings.Contains(s, want) {
			t.Fatalf("missing %q in %s", want, s)
		}
	}
	if strings.Contains(s, "ignored") {
		t.Fatalf("blank key kept: %s", s)
	}
}

func TestExplainCollector_JSON(t *testing.T) {
	ex := NewExplainCollector("json")
	ex.KV("matches", 3)

	var b strings.Builder
	if err := ex.Emit(&b); err != nil {
		t.Fatalf("emit: %v", err)
	}
	var v map[string]any
	if err := json.Unmarshal([]byte(b.String()), &v); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, b.String())
	}
	if v["matches"] != float64(3) {
		t.Fatalf("v=%v", v)
	}
}

func TestExplainCollector_Nil(t *testing.T) {
	var ex *ExplainCollector
	ex.KV("a", 1)
	ex.Timer("x")()
	if len(ex.Snapshot()) != 0 {
		t.Fatal("nil snapshot should be empty")
	}
	if err := ex.Emit(&strings.Builder{}); err != nil {
		t.Fatalf("emit: %v", err)
	}
}
