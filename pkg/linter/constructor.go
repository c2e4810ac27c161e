// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package linter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/anikethsaha/typescript-eslint/internal/cache"
	"github.com/anikethsaha/typescript-eslint/internal/engine"
	"github.com/anikethsaha/typescript-eslint/internal/rules/preferfunctiontype"
	"github.com/anikethsaha/typescript-eslint/internal/runner"
)

const cacheAppName = "tslint"

// New validates the config, assembles the rule engine, and returns a
// ready-to-use Linter. File discovery happens in Run.
func New(cfg Config) (Linter, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	applyDefaults(&cfg)

	eng := engine.New(cfg.Logger, preferfunctiontype.New())

	var store *cache.Cache
	if cfg.UseCache {
		var err error
		if cfg.CacheDir != "" {
			store, err = cache.OpenAt(cfg.CacheDir)
		} else {
			store, err = cache.Open(cacheAppName)
		}
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
	}

	r := runner.NewRunner(runner.Deps{
		Engine:  eng,
		Cache:   store,
		Logger:  cfg.Logger,
		WorkDir: cfg.WorkDir,
		Fix:     cfg.Fix,
		Changed: cfg.Changed,
	})

	return &linterAdapter{runner: r, paths: cfg.Paths}, nil
}

// linterAdapter adapts internal/runner.Runner to the public Linter interface.
type linterAdapter struct {
	runner *runner.Runner
	paths  []string
}

func (a *linterAdapter) Run(ctx context.Context) (*Result, error) {
	ir, err := a.runner.Run(ctx, a.paths)
	if ir == nil {
		return &Result{}, err
	}
	return &Result{
		FilesLinted: ir.FilesLinted,
		Diagnostics: ir.Diagnostics,
		FixedFiles:  ir.FixedFiles,
		Errors:      ir.Errors,
		Clean:       len(ir.Diagnostics) == 0 && len(ir.Errors) == 0,
	}, err
}

// validateConfig checks that required fields are present.
func validateConfig(cfg Config) error {
	if cfg.WorkDir == "" {
		return fmt.Errorf("WorkDir is required")
	}
	if info, err := os.Stat(cfg.WorkDir); err != nil || !info.IsDir() {
		return fmt.Errorf("WorkDir %q does not exist or is not a directory", cfg.WorkDir)
	}
	return nil
}

// applyDefaults fills in zero-value fields with their defaults.
func applyDefaults(cfg *Config) {
	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{"."}
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
}
