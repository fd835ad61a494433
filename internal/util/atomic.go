// Package util provides common file utilities for i18nhook.
package util

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteJSON writes indented JSON to a file atomically.
func AtomicWriteJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return AtomicWriteFile(path, append(data, '\n'), 0644)
}

// EnsureDirAndWriteJSON creates parent directories if needed, then atomically writes JSON.
func EnsureDirAndWriteJSON(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return AtomicWriteJSON(path, v)
}

// AtomicWriteFile stages data in a sibling temp file and renames it over
// path, so readers see either the old or the new content, never a mix.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// ReplaceFile rewrites an existing file atomically. Symlinks are followed so
// the link stays in place and its target receives the new content, and the
// target's permission bits are kept. Files with more than one hard link are
// rewritten in place instead, since a rename would detach the other names.
func ReplaceFile(path string, data []byte) error {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return err
	}
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	if linkCount(info) > 1 {
		return os.WriteFile(target, data, info.Mode().Perm())
	}
	return AtomicWriteFile(target, data, info.Mode().Perm())
}
