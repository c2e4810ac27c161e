// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package linter defines the public interface for the TypeScript linter.
package linter

import (
	"context"
	"errors"
	"log/slog"

	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// Error types for the Linter API.
var (
	ErrInvalidConfig = errors.New("invalid config")
)

// Config configures a Linter instance.
type Config struct {
	WorkDir  string       // Root directory lint paths resolve against (required)
	Paths    []string     // Files or directories to lint (default ".")
	Fix      bool         // Apply fixes to disk
	Changed  bool         // Restrict to files the git working tree touched
	UseCache bool         // Reuse results for unchanged file content
	CacheDir string       // Cache location override (default XDG cache dir)
	Logger   *slog.Logger // Structured logger (default slog.Default())
}

// Result holds the outcome of a Linter.Run invocation.
type Result struct {
	FilesLinted int                // Number of files processed
	Diagnostics []types.Diagnostic // Findings in traversal order
	FixedFiles  []string           // Files rewritten by --fix
	Errors      []string           // Per-file failures (unreadable, unparseable)
	Clean       bool               // True when no findings and no errors remain
}

// Linter runs the rule set over a working tree.
type Linter interface {
	// Run discovers the configured files, lints each one, optionally
	// applies fixes, and returns the combined result.
	Run(ctx context.Context) (*Result, error)
}
