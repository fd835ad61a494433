// Package report collects and prints the outcome of a patch run.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teo/biosi-i18n/internal/batch"
	"github.com/teo/biosi-i18n/internal/style"
	"github.com/teo/biosi-i18n/internal/util"
)

// Summary counts results by status.
type Summary struct {
	Total     int `json:"total"`
	Updated   int `json:"updated"`
	Unchanged int `json:"unchanged"`
	NotFound  int `json:"not_found"`
}

// Report contains all results of one run and a summary.
type Report struct {
	RunID     string         `json:"run_id"`
	Root      string         `json:"root"`
	DryRun    bool           `json:"dry_run"`
	Timestamp time.Time      `json:"timestamp"`
	Results   []batch.Result `json:"results"`
	Summary   Summary        `json:"summary"`
}

// NewReport creates an empty report for a run against root.
func NewReport(root string, dryRun bool) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Root:      root,
		DryRun:    dryRun,
		Timestamp: time.Now().UTC(),
		Results:   make([]batch.Result, 0),
	}
}

// Add adds a result to the report and updates the summary.
func (r *Report) Add(res batch.Result) {
	r.Results = append(r.Results, res)
	r.Summary.Total++

	switch res.Status {
	case batch.StatusUpdated:
		r.Summary.Updated++
	case batch.StatusUnchanged:
		r.Summary.Unchanged++
	case batch.StatusNotFound:
		r.Summary.NotFound++
	}
}

// Pending returns the paths that were (or, in a dry run, would be) updated.
func (r *Report) Pending() []string {
	var paths []string
	for _, res := range r.Results {
		if res.Status == batch.StatusUpdated {
			paths = append(paths, res.Path)
		}
	}
	return paths
}

// Label returns the console label for a status.
func Label(status batch.Status, dryRun bool) string {
	switch status {
	case batch.StatusUpdated:
		if dryRun {
			return "Would update:"
		}
		return "Updated:"
	case batch.StatusUnchanged:
		return "No changes needed:"
	case batch.StatusNotFound:
		return "File not found:"
	default:
		return "Unknown:"
	}
}

// PrintLine outputs one result as "<label> <path>".
func (r *Report) PrintLine(w io.Writer, res batch.Result) {
	label := Label(res.Status, r.DryRun)
	switch res.Status {
	case batch.StatusUpdated:
		if r.DryRun {
			label = style.Info.Render(label)
		} else {
			label = style.Success.Render(label)
		}
	case batch.StatusUnchanged:
		label = style.Dim.Render(label)
	case batch.StatusNotFound:
		label = style.Warning.Render(label)
	}
	fmt.Fprintf(w, "%s %s\n", label, res.Path)
}

// PrintSummary outputs the count summary line.
func (r *Report) PrintSummary(w io.Writer) {
	parts := []string{
		fmt.Sprintf("%d files", r.Summary.Total),
	}

	if r.Summary.Updated > 0 {
		verb := "updated"
		if r.DryRun {
			verb = "to update"
		}
		parts = append(parts, style.Success.Render(fmt.Sprintf("%d %s", r.Summary.Updated, verb)))
	}
	if r.Summary.Unchanged > 0 {
		parts = append(parts, style.Dim.Render(fmt.Sprintf("%d unchanged", r.Summary.Unchanged)))
	}
	if r.Summary.NotFound > 0 {
		parts = append(parts, style.Warning.Render(fmt.Sprintf("%d not found", r.Summary.NotFound)))
	}

	fmt.Fprintln(w, strings.Join(parts, ", "))
}

// PrintReminder outputs the closing note about the manual follow-up work.
func PrintReminder(w io.Writer, localeFiles []string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Bold.Render("Done! Now you need to replace hardcoded strings with t() calls manually."))
	if len(localeFiles) > 0 {
		fmt.Fprintf(w, "See the translation keys in %s\n", joinAnd(localeFiles))
	}
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// WriteJSON writes the report to path atomically.
func (r *Report) WriteJSON(path string) error {
	if err := util.EnsureDirAndWriteJSON(path, r); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
