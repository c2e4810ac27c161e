// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package preferfunctiontype

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anikethsaha/typescript-eslint/internal/parser"
)

// findNode parses src and returns the first node of the given kind in
// document order.
func findNode(t *testing.T, src, kind string) *sitter.Node {
	t.Helper()
	root, err := parser.Parse(context.Background(), []byte(src), parser.TypeScript)
	require.NoError(t, err)

	stack := []*sitter.Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Type() == kind {
			return n
		}
		for i := int(n.NamedChildCount()) - 1; i >= 0; i-- {
			stack = append(stack, n.NamedChild(i))
		}
	}
	t.Fatalf("no %s node in %q", kind, src)
	return nil
}

func TestExtendsBlocksRewrite(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want bool
	}{
		{"no extends clause", "interface Foo { (): void }", false},
		{"sole Function supertype", "interface Foo extends Function { (): void }", false},
		{"sole named supertype", "interface Foo extends Bar { (): void }", true},
		{"sole generic supertype", "interface Foo extends Bar<string> { (): void }", true},
		{"sole qualified supertype", "interface Foo extends ns.Function { (): void }", true},
		{"two supertypes", "interface Foo extends A, B { (): void }", true},
		{"Function among others", "interface Foo extends Function, Bar { (): void }", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := findNode(t, tt.src, parser.KindInterfaceDeclaration)
			assert.Equal(t, tt.want, extendsBlocksRewrite(decl, []byte(tt.src)))
		})
	}
}

func TestMatchInterface(t *testing.T) {
	t.Run("qualifying interface yields member and annotation", func(t *testing.T) {
		src := "interface Foo { (x: number): string }"
		decl := findNode(t, src, parser.KindInterfaceDeclaration)

		member, annotation := matchInterface(decl, []byte(src))
		require.NotNil(t, member)
		require.NotNil(t, annotation)
		assert.Equal(t, parser.KindCallSignature, member.Type())
		assert.Equal(t, ": string", parser.Text(annotation, []byte(src)))
	})

	t.Run("missing return annotation disqualifies", func(t *testing.T) {
		src := "interface Foo { () }"
		decl := findNode(t, src, parser.KindInterfaceDeclaration)

		member, _ := matchInterface(decl, []byte(src))
		assert.Nil(t, member)
	})

	t.Run("two members disqualify", func(t *testing.T) {
		src := "interface Foo { (): void; n: number }"
		decl := findNode(t, src, parser.KindInterfaceDeclaration)

		member, _ := matchInterface(decl, []byte(src))
		assert.Nil(t, member)
	})
}

func TestMatchLiteral(t *testing.T) {
	t.Run("construct signature qualifies", func(t *testing.T) {
		src := "type F = { new (): object }"
		lit := findNode(t, src, parser.KindObjectType)

		member, annotation := matchLiteral(lit)
		require.NotNil(t, member)
		require.NotNil(t, annotation)
		assert.Equal(t, parser.KindConstructSignature, member.Type())
	})

	t.Run("method signature does not qualify", func(t *testing.T) {
		src := "type F = { call(): void }"
		lit := findNode(t, src, parser.KindObjectType)

		member, _ := matchLiteral(lit)
		assert.Nil(t, member)
	})
}
