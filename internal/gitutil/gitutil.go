// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package gitutil lists files touched in the working tree so lint runs can
// be scoped to what changed.
package gitutil

import (
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
)

// ErrNoGit is returned when the working directory is not a git repository.
var ErrNoGit = errors.New("not a git repository")

// Repo wraps a go-git repository for the operations we need.
type Repo struct {
	repo *gogit.Repository
}

// Open opens an existing git repository at workDir. Returns ErrNoGit if the
// directory is not a git repository.
func Open(workDir string) (*Repo, error) {
	r, err := gogit.PlainOpen(workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoGit, err)
	}
	return &Repo{repo: r}, nil
}

// ChangedFiles returns the repo-relative paths of files that are modified,
// staged, or untracked, sorted for stable output. Deleted files are skipped.
func (r *Repo) ChangedFiles() ([]string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("getting worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("getting status: %w", err)
	}

	var paths []string
	for path, st := range status {
		if st.Worktree == gogit.Unmodified && st.Staging == gogit.Unmodified {
			continue
		}
		if st.Worktree == gogit.Deleted || st.Staging == gogit.Deleted {
			continue
		}
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths, nil
}
