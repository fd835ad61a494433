// Package config provides batch configuration loading and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/teo/biosi-i18n/internal/constants"
)

// ErrNoRoot is returned when no Biosi root directory is configured.
var ErrNoRoot = errors.New("no root directory configured")

// Config names the batch of screen files to patch.
type Config struct {
	// Root is the Biosi checkout the file paths are relative to.
	Root string `toml:"root"`

	// Files is the ordered batch of screen sources.
	Files []string `toml:"files"`

	// Locales are BCP 47 tags with key files under src/locales.
	Locales []string `toml:"locales"`
}

// Default returns the built-in Biosi batch.
func Default() *Config {
	return &Config{
		Root:    constants.DefaultRoot,
		Files:   append([]string(nil), constants.DefaultScreenFiles...),
		Locales: append([]string(nil), constants.DefaultLocales...),
	}
}

// Load reads a TOML config file. Keys absent from the file keep their
// default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overrides Root from BIOSI_ROOT when it is set.
func (c *Config) ApplyEnv() {
	if root := os.Getenv(constants.EnvRoot); root != "" {
		c.Root = root
	}
}

// Validate checks that the batch is well formed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return ErrNoRoot
	}

	seen := make(map[string]bool, len(c.Files))
	for _, f := range c.Files {
		if f == "" {
			return fmt.Errorf("empty file path in batch")
		}
		if !filepath.IsLocal(filepath.FromSlash(f)) {
			return fmt.Errorf("file path %q must be relative to the root", f)
		}
		if seen[f] {
			return fmt.Errorf("file path %q listed twice", f)
		}
		seen[f] = true
	}

	for _, tag := range c.Locales {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("invalid locale %q: %w", tag, err)
		}
	}
	return nil
}

// LocaleFiles returns the translation key files, relative to Root.
func (c *Config) LocaleFiles() []string {
	files := make([]string, 0, len(c.Locales))
	for _, tag := range c.Locales {
		files = append(files, constants.LocalesDir+"/"+tag+".json")
	}
	return files
}
