package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/teo/biosi-i18n/internal/batch"
	"github.com/teo/biosi-i18n/internal/style"
)

func init() {
	style.Disable()
}

func TestAddUpdatesSummary(t *testing.T) {
	r := NewReport("/root", false)
	r.Add(batch.Result{Path: "a", Status: batch.StatusUpdated})
	r.Add(batch.Result{Path: "b", Status: batch.StatusUnchanged})
	r.Add(batch.Result{Path: "c", Status: batch.StatusNotFound})
	r.Add(batch.Result{Path: "d", Status: batch.StatusUpdated})

	want := Summary{Total: 4, Updated: 2, Unchanged: 1, NotFound: 1}
	if r.Summary != want {
		t.Errorf("Summary = %+v, want %+v", r.Summary, want)
	}
	if got := strings.Join(r.Pending(), ","); got != "a,d" {
		t.Errorf("Pending() = %s, want a,d", got)
	}
	if r.RunID == "" {
		t.Error("RunID not set")
	}
}

func TestPrintLine(t *testing.T) {
	tests := []struct {
		status batch.Status
		dryRun bool
		want   string
	}{
		{batch.StatusUpdated, false, "Updated: src/A.tsx\n"},
		{batch.StatusUpdated, true, "Would update: src/A.tsx\n"},
		{batch.StatusUnchanged, false, "No changes needed: src/A.tsx\n"},
		{batch.StatusNotFound, false, "File not found: src/A.tsx\n"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewReport("/root", tt.dryRun)
			r.PrintLine(&buf, batch.Result{Path: "src/A.tsx", Status: tt.status})
			if buf.String() != tt.want {
				t.Errorf("PrintLine() = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewReport("/root", false)
	r.Add(batch.Result{Path: "a", Status: batch.StatusUpdated})
	r.Add(batch.Result{Path: "b", Status: batch.StatusNotFound})
	r.PrintSummary(&buf)

	if got := buf.String(); got != "2 files, 1 updated, 1 not found\n" {
		t.Errorf("PrintSummary() = %q", got)
	}
}

func TestPrintReminder(t *testing.T) {
	var buf bytes.Buffer
	PrintReminder(&buf, []string{"src/locales/en.json", "src/locales/fr.json"})

	want := "\nDone! Now you need to replace hardcoded strings with t() calls manually.\n" +
		"See the translation keys in src/locales/en.json and src/locales/fr.json\n"
	if buf.String() != want {
		t.Errorf("PrintReminder() = %q, want %q", buf.String(), want)
	}
}

func TestJoinAnd(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a and b"},
		{[]string{"a", "b", "c"}, "a, b and c"},
	}
	for _, tt := range tests {
		if got := joinAnd(tt.in); got != tt.want {
			t.Errorf("joinAnd(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.json")
	r := NewReport("/root", true)
	r.Add(batch.Result{Path: "a.tsx", Status: batch.StatusNotFound})

	if err := r.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var decoded struct {
		RunID   string `json:"run_id"`
		DryRun  bool   `json:"dry_run"`
		Results []struct {
			Path   string `json:"path"`
			Status string `json:"status"`
		} `json:"results"`
		Summary Summary `json:"summary"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if decoded.RunID != r.RunID || !decoded.DryRun {
		t.Errorf("decoded header = %+v", decoded)
	}
	if len(decoded.Results) != 1 || decoded.Results[0].Status != "not-found" {
		t.Errorf("decoded results = %+v", decoded.Results)
	}
	if decoded.Summary.NotFound != 1 {
		t.Errorf("decoded summary = %+v", decoded.Summary)
	}
}
