// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package types holds the data structures shared between the lint engine,
// the rules, and the consumers of lint results.
package types

import "fmt"

// Severity indicates how a diagnostic should be treated.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// TextEdit replaces the half-open byte range [Start, End) of the original
// source with NewText. Offsets always refer to the unmodified buffer.
type TextEdit struct {
	Start   int    `json:"start" msgpack:"start"`
	End     int    `json:"end" msgpack:"end"`
	NewText string `json:"new_text" msgpack:"new_text"`
}

// Fix is the mechanical repair attached to a diagnostic. Edits are expressed
// against the original source text and must not overlap.
type Fix struct {
	Edits []TextEdit `json:"edits" msgpack:"edits"`
}

// Diagnostic is a single lint finding in one file.
type Diagnostic struct {
	RuleID    string            `json:"rule_id" msgpack:"rule_id"`
	MessageID string            `json:"message_id" msgpack:"message_id"`
	Message   string            `json:"message" msgpack:"message"` // Rendered from the rule's template
	Params    map[string]string `json:"params" msgpack:"params"`
	Severity  Severity          `json:"severity" msgpack:"severity"`
	FilePath  string            `json:"file_path" msgpack:"file_path"`

	// 1-based position of the offending node.
	StartLine   int `json:"start_line" msgpack:"start_line"`
	StartColumn int `json:"start_column" msgpack:"start_column"`
	EndLine     int `json:"end_line" msgpack:"end_line"`
	EndColumn   int `json:"end_column" msgpack:"end_column"`

	Fix *Fix `json:"fix,omitempty" msgpack:"fix"`
}

// HasFix reports whether the diagnostic carries at least one text edit.
func (d *Diagnostic) HasFix() bool {
	return d.Fix != nil && len(d.Fix.Edits) > 0
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s (%s)",
		d.FilePath, d.StartLine, d.StartColumn, d.Message, d.RuleID)
}
