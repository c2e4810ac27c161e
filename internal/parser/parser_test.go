// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTS(t *testing.T, src string) *sitter.Node {
	t.Helper()
	root, err := Parse(context.Background(), []byte(src), TypeScript)
	require.NoError(t, err)
	return root
}

// firstOfKind walks the tree in document order for the first matching node.
func firstOfKind(n *sitter.Node, kind string) *sitter.Node {
	if n.Type() == kind {
		return n
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if found := firstOfKind(n.NamedChild(i), kind); found != nil {
			return found
		}
	}
	return nil
}

func TestLanguageForPath(t *testing.T) {
	tests := []struct {
		path     string
		wantLang Language
		wantOK   bool
	}{
		{"src/index.ts", TypeScript, true},
		{"src/app.tsx", TSX, true},
		{"mod.mts", TypeScript, true},
		{"mod.cts", TypeScript, true},
		{"script.js", TypeScript, false},
		{"README.md", TypeScript, false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			lang, ok := LanguageForPath(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantLang, lang)
			}
		})
	}
}

func TestParse_ProducesTree(t *testing.T) {
	root := parseTS(t, "interface Foo { (): void }\n")
	assert.Equal(t, KindProgram, root.Type())

	decl := firstOfKind(root, KindInterfaceDeclaration)
	require.NotNil(t, decl)
}

func TestBodyAndMembers(t *testing.T) {
	src := "interface Foo {\n  // comment\n  (): void;\n  bar: string;\n}\n"
	decl := firstOfKind(parseTS(t, src), KindInterfaceDeclaration)
	require.NotNil(t, decl)

	body := Body(decl)
	require.NotNil(t, body)

	members := Members(body)
	require.Len(t, members, 2, "comments are not members")
	assert.Equal(t, KindCallSignature, members[0].Type())
	assert.Equal(t, KindPropertySignature, members[1].Type())
}

func TestExtendsTypes(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		wantTexts []string
	}{
		{"no clause", "interface Foo { (): void }", nil},
		{"single", "interface Foo extends Bar { (): void }", []string{"Bar"}},
		{"multiple", "interface Foo extends A, B { (): void }", []string{"A", "B"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl := firstOfKind(parseTS(t, tt.src), KindInterfaceDeclaration)
			require.NotNil(t, decl)

			types := ExtendsTypes(decl)
			require.Len(t, types, len(tt.wantTexts))
			for i, want := range tt.wantTexts {
				assert.Equal(t, want, Text(types[i], []byte(tt.src)))
			}
		})
	}
}

func TestPositionAndRange(t *testing.T) {
	src := "let x = 1;\ninterface Foo { (): void }\n"
	decl := firstOfKind(parseTS(t, src), KindInterfaceDeclaration)
	require.NotNil(t, decl)

	line, col := Position(decl)
	assert.Equal(t, 2, line)
	assert.Equal(t, 1, col)

	start, end := StartByte(decl), EndByte(decl)
	assert.Equal(t, "interface Foo { (): void }", string([]byte(src)[start:end]))
}

func TestChildOfKind_FindsKeywordToken(t *testing.T) {
	src := "interface Foo { (): void }"
	decl := firstOfKind(parseTS(t, src), KindInterfaceDeclaration)
	require.NotNil(t, decl)

	kw := ChildOfKind(decl, KindInterface)
	require.NotNil(t, kw)
	assert.Equal(t, 0, StartByte(kw))
}

func TestFieldChild_TriesAllSpellings(t *testing.T) {
	src := "interface Foo { (): void }"
	decl := firstOfKind(parseTS(t, src), KindInterfaceDeclaration)
	require.NotNil(t, decl)

	name := FieldChild(decl, "no_such_field", "name")
	require.NotNil(t, name)
	assert.Equal(t, "Foo", Text(name, []byte(src)))
}
