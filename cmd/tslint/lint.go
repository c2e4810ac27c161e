// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anikethsaha/typescript-eslint/internal/fixer"
	"github.com/anikethsaha/typescript-eslint/internal/format"
	"github.com/anikethsaha/typescript-eslint/internal/logging"
	"github.com/anikethsaha/typescript-eslint/pkg/linter"
	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// newLintCmd creates the "lint" command.
func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint TypeScript files",
		Long:  "Lint parses the given files or directories (default: the work directory) and reports rule findings. With --fix the suggested rewrites are applied in place.",
		RunE:  runLint,
	}
}

// runLint executes a lint pass and reports findings.
func runLint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logger, cleanup, err := logging.Setup(
		viper.GetString("log-file"),
		logging.ParseLevel(viper.GetString("log-level")),
	)
	if err != nil {
		return fmt.Errorf("configuring logging: %w", err)
	}
	defer cleanup()

	diffMode := viper.GetBool("diff")

	cfg := linter.Config{
		WorkDir:  viper.GetString("workdir"),
		Paths:    args,
		Fix:      viper.GetBool("fix") && !diffMode,
		Changed:  viper.GetBool("changed"),
		UseCache: viper.GetBool("cache"),
		Logger:   logger,
	}

	l, err := linter.New(cfg)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := l.Run(ctx)
	if err != nil {
		return err
	}

	if diffMode {
		if err := printDiffs(result.Diagnostics); err != nil {
			return err
		}
	} else if err := printResult(result); err != nil {
		return err
	}

	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "Error: %s\n", e)
	}
	if !result.Clean && !cfg.Fix {
		os.Exit(1)
	}
	return nil
}

// printResult renders diagnostics in the configured format.
func printResult(result *linter.Result) error {
	switch f := viper.GetString("format"); f {
	case "json":
		return format.JSON(os.Stdout, result.Diagnostics)
	case "stylish":
		return format.Stylish(os.Stdout, result.Diagnostics)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}

// printDiffs previews every file's fixes as a diff without touching disk.
func printDiffs(diags []types.Diagnostic) error {
	byFile := make(map[string][]types.Diagnostic)
	var order []string
	for _, d := range diags {
		if _, seen := byFile[d.FilePath]; !seen {
			order = append(order, d.FilePath)
		}
		byFile[d.FilePath] = append(byFile[d.FilePath], d)
	}

	for _, path := range order {
		edits := fixer.CollectEdits(byFile[path])
		if len(edits) == 0 {
			continue
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		fixed, err := fixer.ApplyEdits(src, edits)
		if err != nil {
			return err
		}
		fmt.Printf("--- %s\n", path)
		fmt.Print(fixer.Diff(src, fixed))
	}
	return nil
}
