package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teo/biosi-i18n/internal/style"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show the batch of files and whether they exist",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", style.Bold.Render("Root:"), cfg.Root)
	fmt.Fprintf(out, "%s\n", style.Bold.Render(fmt.Sprintf("Files (%d):", len(cfg.Files))))
	for i, f := range cfg.Files {
		marker := style.Success.Render("✓")
		if _, err := os.Stat(filepath.Join(cfg.Root, f)); err != nil {
			marker = style.Warning.Render("✗")
		}
		fmt.Fprintf(out, "  %2d. %s %s\n", i+1, marker, f)
	}
	if len(cfg.Locales) > 0 {
		fmt.Fprintf(out, "%s\n", style.Bold.Render("Locales:"))
		for _, f := range cfg.LocaleFiles() {
			fmt.Fprintf(out, "  %s\n", style.Dim.Render(f))
		}
	}
	return nil
}
