package grepcli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points the default config lookup at an empty directory and clears
// the case toggle so the host environment does not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv(EnvCaseInsensitive, "")
	_ = os.Unsetenv(EnvCaseInsensitive)
	return dir
}

func writeDoc(t *testing.T, text string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "poem.txt")
	if err := os.WriteFile(p, []byte(text), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return p
}

func TestParseDefaults(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "hello\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"hello", p})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.CaseInsensitive {
		t.Fatal("CaseInsensitive should default to false")
	}
	if opts.Theme != "default" || opts.Color != "auto" {
		t.Fatalf("Theme=%q Color=%q", opts.Theme, opts.Color)
	}
	if opts.Debounce != 200*time.Millisecond {
		t.Fatalf("Debounce=%v", opts.Debounce)
	}
}

func TestEnvTogglesCaseInsensitive(t *testing.T) {
	isolate(t)
	t.Setenv(EnvCaseInsensitive, "")
	p := writeDoc(t, "hello\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"-B", "HELLO", p})
	out, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !opts.CaseInsensitive {
		t.Fatal("expected CaseInsensitive from env")
	}
	if out != "hello\n" {
		t.Fatalf("out=%q", out)
	}
}

func TestFlagBeatsEnv(t *testing.T) {
	isolate(t)
	t.Setenv(EnvCaseInsensitive, "1")
	p := writeDoc(t, "hello\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"-B", "--ignore-case=false", "HELLO", p})
	out, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.CaseInsensitive || out != "" {
		t.Fatalf("opts=%+v out=%q", opts, out)
	}
}

func TestThemePrecedence_NoColorWins(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "k\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", p, "-b", "-Z", "-z"})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Theme != "none" {
		t.Fatalf("Theme=%q", opts.Theme)
	}
}

func TestInvalidColorIsError(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "k\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", p, "--color", "sometimes"})
	if _, _, err := ExecuteForTest(cmd); err == nil {
		t.Fatal("expected error")
	}
}

func TestOutputModesAreExclusive(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "k\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", p, "--jsonl", "--count"})
	if _, _, err := ExecuteForTest(cmd); err == nil {
		t.Fatal("expected error")
	}
}

func TestExplainNoValueDefaultsToText(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "k\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", p, "--explain"})
	_, opts, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if opts.Explain != "text" {
		t.Fatalf("Explain=%q", opts.Explain)
	}
}

func TestExplainInvalidFormat(t *testing.T) {
	isolate(t)
	p := writeDoc(t, "k\n")

	cmd := NewRootCommand()
	cmd.SetArgs([]string{"k", p, "--explain=yaml"})
	if _, _, err := ExecuteForTest(cmd); err == nil {
		t.Fatal("expected error")
	}
}
