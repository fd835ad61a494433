// Package batch applies the translation hook patch to an ordered list of files.
package batch

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"syscall"

	"github.com/teo/biosi-i18n/internal/patch"
	"github.com/teo/biosi-i18n/internal/util"
)

// Status is the outcome of processing one file.
type Status int

const (
	// StatusUpdated means the file content changed (and was written unless dry-run).
	StatusUpdated Status = iota
	// StatusUnchanged means both insertions were already present or had no anchor.
	StatusUnchanged
	// StatusNotFound means the file does not exist under the root.
	StatusNotFound
)

// String returns a human-readable status.
func (s Status) String() string {
	switch s {
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the status of one file in the batch.
type Result struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
}

// Processor walks a batch of paths relative to Root.
type Processor struct {
	Root  string
	Paths []string

	// DryRun computes statuses without writing anything.
	DryRun bool

	// Patch transforms file content. Defaults to patch.Apply.
	Patch func(string) string
}

// New creates a Processor using the default patch.
func New(root string, paths []string) *Processor {
	return &Processor{
		Root:  root,
		Paths: paths,
		Patch: patch.Apply,
	}
}

// All returns the batch as a lazy sequence, in path order. Each iteration
// reads the file system afresh, so the sequence can be ranged over again.
// A missing file yields StatusNotFound; any other I/O failure is yielded as
// an error and ends the sequence.
func (p *Processor) All() iter.Seq2[Result, error] {
	return func(yield func(Result, error) bool) {
		for _, rel := range p.Paths {
			res, err := p.process(rel)
			if !yield(res, err) || err != nil {
				return
			}
		}
	}
}

// Run processes the whole batch, calling fn for each result.
// It stops at the first I/O error.
func (p *Processor) Run(fn func(Result)) error {
	for res, err := range p.All() {
		if err != nil {
			return err
		}
		if fn != nil {
			fn(res)
		}
	}
	return nil
}

func (p *Processor) process(rel string) (Result, error) {
	res := Result{Path: rel}
	full := filepath.Join(p.Root, rel)

	if _, err := os.Stat(full); err != nil {
		if isNotExist(err) {
			res.Status = StatusNotFound
			return res, nil
		}
		return res, fmt.Errorf("checking %s: %w", rel, err)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", rel, err)
	}

	apply := p.Patch
	if apply == nil {
		apply = patch.Apply
	}

	original := string(data)
	content := apply(original)
	if content == original {
		res.Status = StatusUnchanged
		return res, nil
	}

	if !p.DryRun {
		if err := util.ReplaceFile(full, []byte(content)); err != nil {
			return res, fmt.Errorf("writing %s: %w", rel, err)
		}
	}
	res.Status = StatusUpdated
	return res, nil
}

// isNotExist reports whether err means the path is absent, including a
// parent component that is a regular file rather than a directory.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
