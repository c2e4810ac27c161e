// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

// Package parser wraps the tree-sitter TypeScript grammar and provides the
// node helpers the lint engine and rules work with. The syntax tree and the
// source buffer are read-only; everything downstream is expressed as byte
// ranges into the original text.
package parser

import (
	"context"
	"fmt"
	"path/filepath"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// Language selects the grammar dialect for a file.
type Language int

const (
	TypeScript Language = iota
	TSX
)

func (l Language) sitterLanguage() *sitter.Language {
	if l == TSX {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

// LanguageForPath maps a file extension to its dialect. The second return
// is false for files this linter does not handle.
func LanguageForPath(path string) (Language, bool) {
	switch filepath.Ext(path) {
	case ".ts", ".mts", ".cts":
		return TypeScript, true
	case ".tsx":
		return TSX, true
	default:
		return TypeScript, false
	}
}

// Parse parses src and returns the root node of the syntax tree.
func Parse(ctx context.Context, src []byte, lang Language) (*sitter.Node, error) {
	root, err := sitter.ParseCtx(ctx, src, lang.sitterLanguage())
	if err != nil {
		return nil, fmt.Errorf("parsing typescript: %w", err)
	}
	if root == nil {
		return nil, fmt.Errorf("parsing typescript: no tree produced")
	}
	return root, nil
}
