// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package engine walks a parsed syntax tree once and dispatches nodes to the
// rules registered for their kind. Diagnostics come out in traversal order;
// the engine never reorders or batches across nodes.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/anikethsaha/typescript-eslint/internal/parser"
	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// RuleMeta describes a rule: its identifier and the message templates it
// reports with. Templates refer to params as {{name}}.
type RuleMeta struct {
	ID          string
	Description string
	Messages    map[string]string
}

// Rule checks individual nodes of the kinds it registers for. Check must be
// a pure function of (node, source); the engine may reuse one Rule value
// across files and goroutines, so rules hold no per-file state.
type Rule interface {
	Meta() RuleMeta
	NodeKinds() []string
	Check(n *sitter.Node, src []byte) []types.Diagnostic
}

// Engine runs a fixed set of rules over parsed files.
type Engine struct {
	rules  []Rule
	byKind map[string][]Rule
	logger *slog.Logger
}

// New builds an engine from the given rules. Rule order is preserved for
// nodes that more than one rule registers for.
func New(logger *slog.Logger, rules ...Rule) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		rules:  rules,
		byKind: make(map[string][]Rule),
		logger: logger,
	}
	for _, r := range rules {
		for _, kind := range r.NodeKinds() {
			e.byKind[kind] = append(e.byKind[kind], r)
		}
	}
	return e
}

// Rules returns the registered rules in registration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Lint parses src and runs every registered rule over the tree, returning
// the diagnostics in traversal order with file, rule, and message filled in.
func (e *Engine) Lint(ctx context.Context, filePath string, src []byte) ([]types.Diagnostic, error) {
	lang, ok := parser.LanguageForPath(filePath)
	if !ok {
		return nil, fmt.Errorf("unsupported file type: %s", filePath)
	}

	root, err := parser.Parse(ctx, src, lang)
	if err != nil {
		return nil, err
	}

	diags := e.check(root, src)
	for i := range diags {
		diags[i].FilePath = filePath
	}

	e.logger.Debug("linted file", "path", filePath, "diagnostics", len(diags))
	return diags, nil
}

// check walks the tree depth-first in document order, dispatching each node
// to the rules registered for its kind.
func (e *Engine) check(root *sitter.Node, src []byte) []types.Diagnostic {
	var diags []types.Diagnostic

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, r := range e.byKind[n.Type()] {
			for _, d := range r.Check(n, src) {
				e.finalize(&d, r)
				diags = append(diags, d)
			}
		}

		// Push named children in reverse so they pop in source order.
		count := int(n.NamedChildCount())
		for i := count - 1; i >= 0; i-- {
			stack = append(stack, n.NamedChild(i))
		}
	}

	return diags
}

// finalize stamps the rule id and renders the message template.
func (e *Engine) finalize(d *types.Diagnostic, r Rule) {
	meta := r.Meta()
	if d.RuleID == "" {
		d.RuleID = meta.ID
	}
	if d.Message == "" {
		d.Message = RenderMessage(meta.Messages[d.MessageID], d.Params)
	}
}

// RenderMessage substitutes {{name}} placeholders in a template with the
// given params. Unknown placeholders are left verbatim.
func RenderMessage(template string, params map[string]string) string {
	if len(params) == 0 {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
