package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teo/biosi-i18n/internal/style"
)

var checkQuiet bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Fail if any file still needs the translation hook",
	Long: `Run the batch without writing and exit non-zero if any file would be
updated. Missing files are reported but do not fail the check.

Useful as a CI guard after the batch has been applied.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Only print files that need the hook")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rep, err := runBatch(cmd, cfg.Root, cfg.Files, true, !checkQuiet)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	pending := rep.Pending()
	if checkQuiet {
		for _, path := range pending {
			fmt.Fprintln(out, path)
		}
	} else {
		fmt.Fprintln(out)
		rep.PrintSummary(out)
	}

	if len(pending) > 0 {
		if !checkQuiet {
			fmt.Fprintf(out, "%s %d file(s) need the translation hook; run %s\n",
				style.ErrorPrefix(), len(pending), style.Bold.Render("i18nhook apply"))
		}
		return errSilent
	}
	return nil
}
