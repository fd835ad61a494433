package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teo/biosi-i18n/internal/constants"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "i18nhook.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Root != "/home/teo/workspace/Biosi" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if len(cfg.Files) != 12 {
		t.Fatalf("len(Files) = %d, want 12", len(cfg.Files))
	}
	if cfg.Files[0] != "src/screens/onboarding/ProfileSetupScreen.tsx" {
		t.Errorf("Files[0] = %q", cfg.Files[0])
	}
	if cfg.Files[11] != "src/screens/settings/CurrencySettingsScreen.tsx" {
		t.Errorf("Files[11] = %q", cfg.Files[11])
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	// Mutating a default must not leak into the next one.
	cfg.Files[0] = "changed"
	if Default().Files[0] == "changed" {
		t.Error("Default() shares its file slice")
	}
}

func TestLoadOverridesAndKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `root = "/srv/biosi"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Root != "/srv/biosi" {
		t.Errorf("Root = %q", cfg.Root)
	}
	if len(cfg.Files) != len(constants.DefaultScreenFiles) {
		t.Errorf("Files not defaulted: %v", cfg.Files)
	}
}

func TestLoadFiles(t *testing.T) {
	path := writeConfig(t, `root = "/srv/biosi"
files = ["src/screens/b.tsx", "src/screens/a.tsx"]
locales = ["en", "fr", "de"]
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if strings.Join(cfg.Files, ",") != "src/screens/b.tsx,src/screens/a.tsx" {
		t.Errorf("Files = %v", cfg.Files)
	}
	if got := strings.Join(cfg.LocaleFiles(), ","); got != "src/locales/en.json,src/locales/fr.json,src/locales/de.json" {
		t.Errorf("LocaleFiles() = %s", got)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `root = "/srv/biosi"
fles = ["a.tsx"]
`)
	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "unknown keys: fles") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(constants.EnvRoot, "/tmp/biosi")
	cfg := Default()
	cfg.ApplyEnv()
	if cfg.Root != "/tmp/biosi" {
		t.Errorf("Root = %q, want env override", cfg.Root)
	}

	t.Setenv(constants.EnvRoot, "")
	cfg = Default()
	cfg.ApplyEnv()
	if cfg.Root != constants.DefaultRoot {
		t.Errorf("Root = %q, want default", cfg.Root)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "empty root",
			cfg:     Config{Root: " ", Files: []string{"a.tsx"}},
			wantErr: "no root directory",
		},
		{
			name:    "absolute path",
			cfg:     Config{Root: "/r", Files: []string{"/etc/passwd"}},
			wantErr: "must be relative",
		},
		{
			name:    "escaping path",
			cfg:     Config{Root: "/r", Files: []string{"../outside.tsx"}},
			wantErr: "must be relative",
		},
		{
			name:    "duplicate path",
			cfg:     Config{Root: "/r", Files: []string{"a.tsx", "a.tsx"}},
			wantErr: "listed twice",
		},
		{
			name:    "bad locale",
			cfg:     Config{Root: "/r", Files: []string{"a.tsx"}, Locales: []string{"not a tag"}},
			wantErr: "invalid locale",
		},
		{
			name: "ok",
			cfg:  Config{Root: "/r", Files: []string{"src/a.tsx"}, Locales: []string{"pt-BR"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}
