// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package format renders lint results for the terminal and for tooling.
package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

var (
	pathColor     = color.New(color.Bold, color.Underline)
	errorColor    = color.New(color.FgRed)
	warnColor     = color.New(color.FgYellow)
	locationColor = color.New(color.Faint)
	ruleColor     = color.New(color.Faint)
)

// Stylish writes diagnostics grouped by file, one finding per line, with a
// trailing problem count. Color degrades to plain text on non-TTY writers.
func Stylish(w io.Writer, diags []types.Diagnostic) error {
	lastFile := ""
	for _, d := range diags {
		if d.FilePath != lastFile {
			if lastFile != "" {
				fmt.Fprintln(w)
			}
			pathColor.Fprintln(w, d.FilePath)
			lastFile = d.FilePath
		}

		sev := errorColor
		if d.Severity == types.SeverityWarning {
			sev = warnColor
		}
		fmt.Fprintf(w, "  %s  %s  %s  %s\n",
			locationColor.Sprintf("%d:%d", d.StartLine, d.StartColumn),
			sev.Sprint(d.Severity),
			d.Message,
			ruleColor.Sprint(d.RuleID),
		)
	}

	if len(diags) > 0 {
		fmt.Fprintln(w)
		errorColor.Fprintf(w, "%d problem(s) found\n", len(diags))
	}
	return nil
}

// JSON writes the diagnostics as an indented JSON array.
func JSON(w io.Writer, diags []types.Diagnostic) error {
	if diags == nil {
		diags = []types.Diagnostic{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}
