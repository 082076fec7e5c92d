package grepcli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"
)

// FileConfig is the optional TOML config file. Unset keys leave the
// built-in defaults alone.
type FileConfig struct {
	IgnoreCase *bool   `toml:"ignore_case"`
	Banner     *bool   `toml:"banner"`
	Theme      *string `toml:"theme"`
	Color      *string `toml:"color"`
	Debounce   *string `toml:"debounce"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(dir) == "" {
		return ""
	}
	return filepath.Join(dir, "minigrep", "config.toml")
}

// loadConfig reads the explicit path, or the default location when explicit
// is empty. A missing default file is not an error.
func loadConfig(explicit string) (*FileConfig, string, error) {
	path := strings.TrimSpace(explicit)
	if path == "" {
		path = defaultConfigPath()
		if path == "" {
			return nil, "", nil
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, "", nil
		}
	}

	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, "", fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, "", fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return &cfg, path, nil
}

func (c *FileConfig) applyTo(o *Options, flags *pflag.FlagSet) error {
	if c.IgnoreCase != nil && !flags.Changed("ignore-case") {
		o.CaseInsensitive = *c.IgnoreCase
	}
	if c.Banner != nil && !flags.Changed("no-banner") {
		o.NoBanner = !*c.Banner
	}
	if c.Theme != nil {
		o.Theme = *c.Theme
	}
	if c.Color != nil && !flags.Changed("color") {
		o.Color = *c.Color
	}
	if c.Debounce != nil && !flags.Changed("debounce") {
		d, err := time.ParseDuration(strings.TrimSpace(*c.Debounce))
		if err != nil {
			return fmt.Errorf("config debounce: %w", err)
		}
		o.Debounce = d
	}
	return nil
}
