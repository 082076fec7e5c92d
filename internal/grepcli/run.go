package grepcli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"minigrep/internal/core/explain"
	"minigrep/internal/core/search"
	"minigrep/internal/core/source"
	"minigrep/internal/core/watch"
)

// runOnce loads the file, searches it and prints the outcome in the
// selected output mode.
func runOnce(cmd *cobra.Command, opts *Options, query string, path string) error {
	out := cmd.OutOrStdout()

	var ex *ExplainCollector
	if opts.Explain != "" {
		ex = NewExplainCollector(opts.Explain)
		ex.KV("query", query)
		ex.KV("path", path)
		ex.KV("case_insensitive", opts.CaseInsensitive)
		ex.KV("output", outputMode(opts))
		ex.KV("theme", opts.Theme)
		if opts.configUsed != "" {
			ex.KV("config", opts.configUsed)
		}
	}

	stopLoad := ex.Timer("load")
	doc, err := source.Load(path)
	stopLoad()
	if err != nil {
		return err
	}
	if ex != nil {
		ex.KV("bytes", len(doc.Text))
		ex.KV("encoding", doc.Encoding)
		ex.KV("binary", doc.Binary)
	}

	var explainer explain.Explain
	if ex != nil {
		explainer = ex
	}
	outcome, err := search.SearchWithExplain(query, doc.Text, !opts.CaseInsensitive, explainer)
	if err != nil {
		return err
	}

	stopRender := ex.Timer("render")
	var text string
	switch {
	case opts.Jsonl:
		text = RenderJSONL(outcome)
	case opts.VimLines:
		text = RenderVim(path, outcome)
	case opts.Count:
		text = RenderCount(outcome)
	default:
		if doc.Binary {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s looks like a binary file\n", path)
		}
		th := NewTheme(opts.Theme, colorEnabled(opts.Color, out))
		if !opts.NoBanner {
			text = RenderBanner(query, path, th)
		}
		text += RenderDefault(outcome, th)
	}
	_, err = io.WriteString(out, text)
	stopRender()
	if err != nil {
		return err
	}

	if ex != nil {
		return ex.Emit(cmd.ErrOrStderr())
	}
	return nil
}

// runWatch prints the first result and then searches again after every
// debounced change until interrupted. Errors on reruns (say, the file was
// deleted) are reported and watching continues.
func runWatch(cmd *cobra.Command, opts *Options, query string, path string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runOnce(cmd, opts, query, path); err != nil {
		return err
	}

	var mu sync.Mutex
	w, err := watch.NewWatcher(path, watch.Options{
		Debounce: opts.Debounce,
		OnChange: func() {
			mu.Lock()
			defer mu.Unlock()
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "-- %s changed\n", path)
			if err := runOnce(cmd, opts, query, path); err != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		},
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	return w.Run(ctx)
}

func outputMode(opts *Options) string {
	switch {
	case opts.Jsonl:
		return "jsonl"
	case opts.VimLines:
		return "vim"
	case opts.Count:
		return "count"
	default:
		return "default"
	}
}
