// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runner drives a lint pass: discover files, consult the cache,
// run the engine, and apply fixes.
package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/anikethsaha/typescript-eslint/internal/cache"
	"github.com/anikethsaha/typescript-eslint/internal/engine"
	"github.com/anikethsaha/typescript-eslint/internal/fixer"
	"github.com/anikethsaha/typescript-eslint/internal/gitutil"
	"github.com/anikethsaha/typescript-eslint/internal/parser"
	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// Deps wires the runner's collaborators.
type Deps struct {
	Engine  *engine.Engine
	Cache   *cache.Cache // nil disables caching
	Logger  *slog.Logger
	WorkDir string
	Fix     bool
	Changed bool
}

// Result accumulates the outcome of one lint pass.
type Result struct {
	FilesLinted int
	Diagnostics []types.Diagnostic
	FixedFiles  []string
	Errors      []string
}

// Runner executes lint passes. One runner can serve successive runs; each
// run is independent.
type Runner struct {
	deps Deps
}

// NewRunner creates a runner from its dependencies.
func NewRunner(deps Deps) *Runner {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Runner{deps: deps}
}

// Run lints the given paths (files or directories) relative to the work
// directory. Per-file failures are recorded in Result.Errors; only setup
// failures abort the pass.
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	files, err := r.resolveFiles(paths)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, file := range files {
		if ctx.Err() != nil {
			return result, ctx.Err()
		}
		if err := r.lintFile(ctx, file, result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", file, err))
			r.deps.Logger.Warn("lint failed", "path", file, "error", err)
		}
	}
	return result, nil
}

// lintFile lints one file, reusing cached results when the content digest
// matches, and applies fixes when enabled.
func (r *Runner) lintFile(ctx context.Context, path string, result *Result) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	result.FilesLinted++

	key := cache.DigestOf(src)
	diags, hit, err := r.deps.Cache.Get(key)
	if err != nil {
		r.deps.Logger.Debug("cache read failed", "path", path, "error", err)
		hit = false
	}
	if hit {
		// Cached entries carry the path they were produced under; refresh it.
		for i := range diags {
			diags[i].FilePath = path
		}
	} else {
		diags, err = r.deps.Engine.Lint(ctx, path, src)
		if err != nil {
			return err
		}
		if err := r.deps.Cache.Put(key, diags); err != nil {
			r.deps.Logger.Debug("cache write failed", "path", path, "error", err)
		}
	}

	if r.deps.Fix {
		if edits := fixer.CollectEdits(diags); len(edits) > 0 {
			fixed, err := fixer.ApplyEdits(src, edits)
			if err != nil {
				return err
			}
			if err := fixer.ApplyFile(path, edits); err != nil {
				return err
			}
			result.FixedFiles = append(result.FixedFiles, path)

			// Report what remains after the rewrite.
			diags, err = r.deps.Engine.Lint(ctx, path, fixed)
			if err != nil {
				return err
			}
			if err := r.deps.Cache.Put(cache.DigestOf(fixed), diags); err != nil {
				r.deps.Logger.Debug("cache write failed", "path", path, "error", err)
			}
		}
	}

	result.Diagnostics = append(result.Diagnostics, diags...)
	return nil
}

// resolveFiles expands the requested paths into the list of lintable files,
// in stable walk order.
func (r *Runner) resolveFiles(paths []string) ([]string, error) {
	if r.deps.Changed {
		return r.changedFiles()
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(r.deps.WorkDir, p)
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.Walk(p, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return nil // Skip files we cannot stat.
			}
			if info.IsDir() {
				base := filepath.Base(path)
				if base == ".git" || base == "vendor" || base == "node_modules" {
					return filepath.SkipDir
				}
				return nil
			}
			if _, ok := parser.LanguageForPath(path); ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// changedFiles lists lintable files the working tree has touched.
func (r *Runner) changedFiles() ([]string, error) {
	repo, err := gitutil.Open(r.deps.WorkDir)
	if err != nil {
		return nil, err
	}
	changed, err := repo.ChangedFiles()
	if err != nil {
		return nil, err
	}

	var files []string
	for _, rel := range changed {
		if _, ok := parser.LanguageForPath(rel); ok {
			files = append(files, filepath.Join(r.deps.WorkDir, rel))
		}
	}
	return files, nil
}
