// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"io"
	"log/slog"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikethsaha/typescript-eslint/internal/parser"
	"github.com/anikethsaha/typescript-eslint/pkg/types"
)

// recordingRule flags every node of its kinds and remembers visit order.
type recordingRule struct {
	kinds  []string
	visits []int
}

func (r *recordingRule) Meta() RuleMeta {
	return RuleMeta{
		ID: "recording-rule",
		Messages: map[string]string{
			"found": "found a {{kind}} node",
		},
	}
}

func (r *recordingRule) NodeKinds() []string { return r.kinds }

func (r *recordingRule) Check(n *sitter.Node, src []byte) []types.Diagnostic {
	r.visits = append(r.visits, parser.StartByte(n))
	return []types.Diagnostic{{
		MessageID: "found",
		Params:    map[string]string{"kind": n.Type()},
	}}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEngine_DispatchesInTraversalOrder(t *testing.T) {
	rule := &recordingRule{kinds: []string{parser.KindInterfaceDeclaration}}
	eng := New(testLogger(), rule)

	src := "interface A { (): void }\ninterface B { (): void }\ninterface C { (): void }\n"
	diags, err := eng.Lint(context.Background(), "order.ts", []byte(src))
	require.NoError(t, err)

	require.Len(t, diags, 3)
	require.Len(t, rule.visits, 3)
	assert.IsIncreasing(t, rule.visits, "nodes must arrive in document order")
}

func TestEngine_FillsDiagnosticFields(t *testing.T) {
	rule := &recordingRule{kinds: []string{parser.KindInterfaceDeclaration}}
	eng := New(testLogger(), rule)

	diags, err := eng.Lint(context.Background(), "file.ts", []byte("interface A { (): void }\n"))
	require.NoError(t, err)
	require.Len(t, diags, 1)

	assert.Equal(t, "recording-rule", diags[0].RuleID)
	assert.Equal(t, "file.ts", diags[0].FilePath)
	assert.Equal(t, "found a interface_declaration node", diags[0].Message)
}

func TestEngine_UnsupportedFileType(t *testing.T) {
	eng := New(testLogger())

	_, err := eng.Lint(context.Background(), "script.py", []byte("x = 1\n"))
	assert.Error(t, err)
}

func TestEngine_NoRulesNoDiagnostics(t *testing.T) {
	eng := New(testLogger())

	diags, err := eng.Lint(context.Background(), "file.ts", []byte("interface A { (): void }\n"))
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestRenderMessage(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]string
		want     string
	}{
		{
			name:     "substitutes params",
			template: "{{kind}} has {{count}} members",
			params:   map[string]string{"kind": "Interface", "count": "1"},
			want:     "Interface has 1 members",
		},
		{
			name:     "no params returns template",
			template: "static message",
			params:   nil,
			want:     "static message",
		},
		{
			name:     "unknown placeholder left verbatim",
			template: "{{unknown}} stays",
			params:   map[string]string{"kind": "x"},
			want:     "{{unknown}} stays",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderMessage(tt.template, tt.params))
		})
	}
}
