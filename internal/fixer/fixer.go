// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fixer applies diagnostic text edits to source buffers and files.
package fixer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// ApplyEdits splices the edits into src and returns the result. Edits are
// applied against the original offsets; overlapping or out-of-range edits
// are rejected.
func ApplyEdits(src []byte, edits []types.TextEdit) ([]byte, error) {
	if len(edits) == 0 {
		return src, nil
	}

	sorted := make([]types.TextEdit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var out []byte
	pos := 0
	for _, e := range sorted {
		if e.Start < 0 || e.End > len(src) || e.Start > e.End {
			return nil, fmt.Errorf("edit range [%d, %d) outside source of %d bytes", e.Start, e.End, len(src))
		}
		if e.Start < pos {
			return nil, fmt.Errorf("overlapping edit at offset %d", e.Start)
		}
		out = append(out, src[pos:e.Start]...)
		out = append(out, e.NewText...)
		pos = e.End
	}
	out = append(out, src[pos:]...)

	return out, nil
}

// CollectEdits gathers the fix edits of the given diagnostics, skipping
// any diagnostic without a fix.
func CollectEdits(diags []types.Diagnostic) []types.TextEdit {
	var edits []types.TextEdit
	for i := range diags {
		if diags[i].HasFix() {
			edits = append(edits, diags[i].Fix.Edits...)
		}
	}
	return edits
}

// ApplyFile applies the edits to the file at path, writing the result
// atomically and preserving permissions.
func ApplyFile(path string, edits []types.TextEdit) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := ApplyEdits(src, edits)
	if err != nil {
		return fmt.Errorf("fixing %s: %w", path, err)
	}

	if err := atomicWrite(path, out); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// atomicWrite writes data to a temp file in the same directory, then renames
// it to the target path. This prevents partial writes from corrupting files.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	// Preserve original file permissions if the file exists.
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	f, err := os.CreateTemp(dir, ".tslint-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}

	return nil
}
