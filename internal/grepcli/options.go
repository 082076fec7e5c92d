package grepcli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// EnvCaseInsensitive switches matching to case-insensitive when present,
// whatever its value.
const EnvCaseInsensitive = "CASE_INSENSITIVE"

type Options struct {
	ConfigPath      string
	CaseInsensitive bool
	NoBanner        bool
	VimLines        bool
	Jsonl           bool
	Count           bool
	Theme           string
	Color           string
	Explain         string
	Watch           bool
	Debounce        time.Duration

	colorblind   bool
	noColor      bool
	highContrast bool
	configUsed   string
}

func (o *Options) Prepare() error {
	o.normalize()

	switch o.Theme {
	case "default", "colorblind", "high-contrast", "none":
	default:
		return fmt.Errorf("invalid theme %q (expected: default|colorblind|high-contrast|none)", o.Theme)
	}

	switch o.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid --color %q (expected: auto|always|never)", o.Color)
	}

	switch o.Explain {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid --explain %q (expected: text|json)", o.Explain)
	}

	modes := 0
	for _, on := range []bool{o.VimLines, o.Jsonl, o.Count} {
		if on {
			modes++
		}
	}
	if modes > 1 {
		return fmt.Errorf("--vim-lines, --jsonl and --count are mutually exclusive")
	}

	if o.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0")
	}
	return nil
}

func (o *Options) normalize() {
	o.Theme = strings.TrimSpace(o.Theme)
	if o.Theme == "" {
		o.Theme = "default"
	}
	if o.colorblind {
		o.Theme = "colorblind"
	}
	if o.highContrast {
		o.Theme = "high-contrast"
	}
	if o.noColor {
		o.Theme = "none"
	}

	o.Color = strings.ToLower(strings.TrimSpace(o.Color))
	if o.Color == "" {
		o.Color = "auto"
	}
	o.Explain = strings.TrimSpace(o.Explain)
}

// resolve layers the config file and the environment under the flags the
// user actually passed.
func (o *Options) resolve(flags *pflag.FlagSet) error {
	cfg, path, err := loadConfig(o.ConfigPath)
	if err != nil {
		return err
	}
	o.configUsed = path
	if cfg != nil {
		if err := cfg.applyTo(o, flags); err != nil {
			return err
		}
	}

	if !flags.Changed("ignore-case") {
		if _, ok := os.LookupEnv(EnvCaseInsensitive); ok {
			o.CaseInsensitive = true
		}
	}
	return nil
}

type optionsKey struct{}

func optionsFrom(cmd *cobra.Command) *Options {
	if cmd == nil {
		return nil
	}
	root := cmd.Root()
	if root == nil {
		root = cmd
	}
	v := root.Context().Value(optionsKey{})
	opts, _ := v.(*Options)
	return opts
}

func bindFlags(cmd *cobra.Command, opts *Options) {
	f := cmd.Flags()
	f.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "config file (default: <user config dir>/minigrep/config.toml)")
	f.BoolVarP(&opts.CaseInsensitive, "ignore-case", "i", opts.CaseInsensitive, "case in-sensitive search (also: "+EnvCaseInsensitive+" env)")

	f.BoolVarP(&opts.NoBanner, "no-banner", "B", opts.NoBanner, "suppress banner")
	f.BoolVarP(&opts.VimLines, "vim-lines", "L", opts.VimLines, "vim friendly lines (file:line:col: text)")
	f.BoolVar(&opts.Jsonl, "jsonl", opts.Jsonl, "output as JSONL")
	f.BoolVarP(&opts.Count, "count", "c", opts.Count, "print only the number of matching lines")

	f.BoolVarP(&opts.colorblind, "colorblind", "b", false, "colour blind friendly template")
	f.BoolVarP(&opts.noColor, "no-color", "z", false, "suppress colors")
	f.BoolVarP(&opts.highContrast, "high-contrast", "Z", false, "high contrast colors")
	f.StringVar(&opts.Color, "color", opts.Color, "when to use colors: auto|always|never")

	f.StringVar(&opts.Explain, "explain", opts.Explain, "print explain info to stderr (text|json)")
	f.Lookup("explain").NoOptDefVal = "text"

	f.BoolVarP(&opts.Watch, "watch", "w", opts.Watch, "search again whenever the file changes")
	f.DurationVar(&opts.Debounce, "debounce", opts.Debounce, "delay before searching again in --watch mode")
}

func ExecuteForTest(cmd *cobra.Command) (string, Options, error) {
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()

	opts := optionsFrom(cmd)
	if opts == nil {
		return out.String(), Options{}, err
	}
	opts.normalize()

	return out.String(), *opts, err
}

func newDefaultOptions() *Options {
	return &Options{
		Theme:    "default",
		Color:    "auto",
		Debounce: 200 * time.Millisecond,
	}
}

func withOptionsContext(cmd *cobra.Command, opts *Options) {
	cmd.SetContext(context.WithValue(context.Background(), optionsKey{}, opts))
}
