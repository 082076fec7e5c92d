package grepcli

import (
	"bytes"
	"strings"
	"testing"
)

func TestHelpMentionsUsage(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--help"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, "minigrep") || !strings.Contains(s, "<query> <filename>") || !strings.Contains(s, EnvCaseInsensitive) {
		t.Fatalf("help missing expected text: %s", s)
	}
}

func TestVersionFlag(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"-v"})
	out, _, err := ExecuteForTest(cmd)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if strings.TrimSpace(out) != "dev" {
		t.Fatalf("out=%q", out)
	}
}

func TestArity(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{}, "query string"},
		{[]string{"q"}, "filename"},
		{[]string{"q", "a.txt", "extra"}, "got 3 arguments"},
	}
	for _, tc := range cases {
		cmd := NewRootCommand()
		cmd.SetArgs(tc.args)
		_, _, err := ExecuteForTest(cmd)
		if err == nil {
			t.Fatalf("args=%v: expected error", tc.args)
		}
		if !strings.Contains(err.Error(), "problem parsing arguments") || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("args=%v err=%v", tc.args, err)
		}
	}
}
