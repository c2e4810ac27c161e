// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package fixer

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff renders a line-oriented preview of before vs after for the --diff
// mode. Unchanged runs are elided to their boundary lines.
func Diff(before, after []byte) string {
	dmp := diffmatchpatch.New()

	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffEqual:
			writeContext(&sb, d.Text)
			continue
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// writeContext keeps at most the first and last line of an unchanged run.
func writeContext(sb *strings.Builder, text string) {
	lines := splitLines(text)
	switch {
	case len(lines) == 0:
	case len(lines) <= 2:
		for _, line := range lines {
			sb.WriteString("  " + line + "\n")
		}
	default:
		sb.WriteString("  " + lines[0] + "\n")
		sb.WriteString("  ...\n")
		sb.WriteString("  " + lines[len(lines)-1] + "\n")
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
