// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package preferfunctiontype reports named interfaces and anonymous object
// types whose only member is a call or construct signature, and rewrites
// them to an equivalent function type. Replacement text is assembled from
// slices of the original source, never re-emitted from the tree.
package preferfunctiontype

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/anikethsaha/typescript-eslint/internal/engine"
	"github.com/anikethsaha/typescript-eslint/internal/parser"
	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// RuleID is the public identifier of this rule.
const RuleID = "prefer-function-type"

const msgFunctionType = "functionTypeOverCallableType"

// Rule is stateless; one value serves any number of files.
type Rule struct{}

// New returns the prefer-function-type rule.
func New() *Rule {
	return &Rule{}
}

func (r *Rule) Meta() engine.RuleMeta {
	return engine.RuleMeta{
		ID:          RuleID,
		Description: "Enforce using function types instead of interfaces and object type literals with a single call signature",
		Messages: map[string]string{
			msgFunctionType: "{{constructKind}} only has a call signature, you should use a function type instead: `{{suggestionText}}`",
		},
	}
}

func (r *Rule) NodeKinds() []string {
	return []string{parser.KindInterfaceDeclaration, parser.KindObjectType}
}

// Check reports at most one diagnostic per qualifying node. Anything outside
// the eligibility set is silently skipped.
func (r *Rule) Check(n *sitter.Node, src []byte) []types.Diagnostic {
	var member, annotation *sitter.Node
	constructKind := "Interface"

	switch n.Type() {
	case parser.KindInterfaceDeclaration:
		member, annotation = matchInterface(n, src)
	case parser.KindObjectType:
		// Older grammars reuse object_type for interface bodies; those are
		// handled through the interface hook.
		if p := n.Parent(); p != nil && p.Type() == parser.KindInterfaceDeclaration {
			return nil
		}
		member, annotation = matchLiteral(n)
		constructKind = "Type literal"
	}
	if member == nil {
		return nil
	}

	s := buildSuggestion(n, member, annotation, src)

	line, col := parser.Position(member)
	endLine, endCol := parser.EndPosition(member)

	return []types.Diagnostic{{
		MessageID: msgFunctionType,
		Params: map[string]string{
			"constructKind":  constructKind,
			"suggestionText": s.Text,
		},
		Severity:    types.SeverityError,
		StartLine:   line,
		StartColumn: col,
		EndLine:     endLine,
		EndColumn:   endCol,
		Fix: &types.Fix{
			Edits: []types.TextEdit{{Start: s.Start, End: s.End, NewText: s.Text}},
		},
	}}
}
