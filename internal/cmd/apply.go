package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teo/biosi-i18n/internal/batch"
	"github.com/teo/biosi-i18n/internal/report"
)

var (
	applyDryRun     bool
	applyJSON       bool
	applyReportPath string
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Patch every file in the batch",
	Long: `Patch every file in the batch, in order.

Each file is reported as updated, unchanged or not found. Missing files are
skipped and do not fail the run; any other read or write error stops the
run immediately.

Examples:
  i18nhook apply
  i18nhook apply --dry-run
  i18nhook apply --json
  i18nhook apply --report out/i18n-run.json`,
	Args: cobra.NoArgs,
	RunE: runApply,
}

func init() {
	addApplyFlags(applyCmd)
	rootCmd.AddCommand(applyCmd)
}

func addApplyFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&applyDryRun, "dry-run", "n", false, "Show what would change without writing")
	cmd.Flags().BoolVar(&applyJSON, "json", false, "Output the run report as JSON")
	cmd.Flags().StringVar(&applyReportPath, "report", "", "Also write the run report as JSON to this file")
}

func runApply(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rep, err := runBatch(cmd, cfg.Root, cfg.Files, applyDryRun, !applyJSON)
	if err != nil {
		return err
	}

	if applyReportPath != "" {
		if err := rep.WriteJSON(applyReportPath); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if applyJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	report.PrintReminder(out, cfg.LocaleFiles())
	return nil
}

// runBatch processes the batch, printing one line per file when verbose.
func runBatch(cmd *cobra.Command, root string, files []string, dryRun, verbose bool) (*report.Report, error) {
	p := batch.New(root, files)
	p.DryRun = dryRun

	rep := report.NewReport(root, dryRun)
	out := cmd.OutOrStdout()
	err := p.Run(func(res batch.Result) {
		rep.Add(res)
		if verbose {
			rep.PrintLine(out, res)
		}
	})
	if err != nil {
		return rep, fmt.Errorf("processing batch: %w", err)
	}
	return rep, nil
}
