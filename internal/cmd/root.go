// Package cmd provides CLI commands for the i18nhook tool.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teo/biosi-i18n/internal/config"
	"github.com/teo/biosi-i18n/internal/constants"
	"github.com/teo/biosi-i18n/internal/style"
)

var (
	configPath string
	rootDir    string
	noColor    bool
)

// errSilent signals a non-zero exit whose message has already been printed.
var errSilent = errors.New("silent exit")

var rootCmd = &cobra.Command{
	Use:   "i18nhook",
	Short: "Add the react-i18next translation hook to Biosi screens",
	Long: `Insert the useTranslation import and hook declaration into the Biosi
screen sources.

For each file in the batch, the import is added after the last import line
unless "useTranslation" already appears, and "const { t } = useTranslation();"
is added after the last "const ... = useX();" line unless t or i18n is
already destructured. Files are only written when their content changes,
so the tool is safe to re-run.

Run without a subcommand to patch the whole batch.

Examples:
  i18nhook                          # Patch the default batch
  i18nhook --root ~/src/Biosi       # Patch a different checkout
  i18nhook apply --dry-run          # Show what would change
  i18nhook check                    # Exit 1 if any file still needs the hook
  i18nhook list                     # Show the batch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			style.Disable()
		}
	},
	RunE: runApply,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML batch config (default ./"+constants.DefaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "Biosi checkout root (overrides config and $"+constants.EnvRoot+")")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable styled output")
	addApplyFlags(rootCmd)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilent) {
			style.PrintError("%v", err)
		}
		return 1
	}
	return 0
}

// loadConfig resolves the batch config: file, then environment, then flags.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()

	path := configPath
	if path == "" {
		if _, err := os.Stat(constants.DefaultConfigFile); err == nil {
			path = constants.DefaultConfigFile
		}
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	cfg.ApplyEnv()
	if rootDir != "" {
		cfg.Root = rootDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
