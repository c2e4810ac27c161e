// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package preferfunctiontype

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/anikethsaha/typescript-eslint/internal/parser"
)

// selfTypeToken is the self-referential type keyword substituted with the
// enclosing interface's name.
const selfTypeToken = "this"

// suggestion is a replacement for the byte range [Start, End) of the
// original source.
type suggestion struct {
	Text  string
	Start int
	End   int
}

// buildSuggestion assembles the function-type replacement for a qualifying
// member. decl is the enclosing interface declaration or the object type
// itself; annotation is the member's return-type annotation, whose first
// byte is the colon the member text is split at.
func buildSuggestion(decl, member, annotation *sitter.Node, src []byte) suggestion {
	memberStart := parser.StartByte(member)
	colon := parser.StartByte(annotation) - memberStart
	text := string(src[memberStart:parser.EndByte(member)])

	// lhs keeps any type-parameter list and the parameter list; rhs is the
	// return type without its colon (leading space intact, matching the
	// original spacing).
	lhs := text[:colon]
	rhs := text[colon+1:]

	isInterface := decl.Type() == parser.KindInterfaceDeclaration
	var nameNode *sitter.Node
	if isInterface {
		nameNode = parser.FieldChild(decl, "name", "id")
	}

	// Self-type substitution only applies when there is a name to
	// substitute. Each qualifying occurrence is a first-occurrence text
	// replacement; "this" appearing elsewhere in the slice is an accepted
	// limitation of the textual approach.
	if nameNode != nil {
		name := parser.Text(nameNode, src)
		if returnsSelfType(annotation, src) {
			rhs = strings.Replace(rhs, selfTypeToken, name, 1)
		}
		for i := 0; i < countSelfTypedParams(member, src); i++ {
			lhs = strings.Replace(lhs, selfTypeToken, name, 1)
		}
	}

	assembled := lhs + " =>" + rhs

	// Member slices normally exclude the separator, but tolerate one.
	trailer := ""
	if strings.HasSuffix(assembled, ";") {
		trailer = ";"
		assembled = assembled[:len(assembled)-1]
	}

	// A bare arrow type binds looser than union, intersection, and array
	// operators, so those contexts need parentheses.
	if needsParens(decl.Parent()) {
		assembled = "(" + assembled + ")"
	}

	start := parser.StartByte(decl)
	if isInterface && nameNode != nil {
		head := parser.Text(nameNode, src)
		if tps := parser.FieldChild(decl, "type_parameters"); tps != nil {
			// Slice name through type parameters verbatim so constraints
			// and defaults survive exactly.
			head = string(src[parser.StartByte(nameNode):parser.EndByte(tps)])
		}
		assembled = "type " + head + " = " + assembled + trailer

		// Replace from the interface keyword, not the declaration start,
		// leaving any leading modifiers in place.
		if kw := parser.ChildOfKind(decl, parser.KindInterface); kw != nil {
			start = parser.StartByte(kw)
		}
	}

	return suggestion{Text: assembled, Start: start, End: parser.EndByte(decl)}
}

// returnsSelfType reports whether the return-type annotation resolves to the
// self type, looking through at most one level of function-type nesting.
// Deeper nesting is deliberately left alone.
func returnsSelfType(annotation *sitter.Node, src []byte) bool {
	t := annotatedType(annotation)
	if t == nil {
		return false
	}
	if isSelfType(t, src) {
		return true
	}
	if t.Type() == parser.KindFunctionType {
		ret := parser.FieldChild(t, "return_type", "type")
		if ret == nil {
			// The return type is the last named child of a function type.
			if kids := parser.NamedChildren(t); len(kids) > 0 {
				ret = kids[len(kids)-1]
			}
		}
		return ret != nil && isSelfType(ret, src)
	}
	return false
}

// countSelfTypedParams counts parameters whose declared type is exactly the
// self type.
func countSelfTypedParams(member *sitter.Node, src []byte) int {
	params := parser.FieldChild(member, "parameters")
	if params == nil {
		return 0
	}
	n := 0
	for _, p := range parser.NamedChildren(params) {
		ann := parser.FieldChild(p, "type")
		if ann == nil {
			continue
		}
		if t := annotatedType(ann); t != nil && isSelfType(t, src) {
			n++
		}
	}
	return n
}

// annotatedType returns the type node inside a type annotation, or the node
// itself when it is already a bare type.
func annotatedType(n *sitter.Node) *sitter.Node {
	if n.Type() != parser.KindTypeAnnotation {
		return n
	}
	kids := parser.NamedChildren(n)
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

func isSelfType(t *sitter.Node, src []byte) bool {
	switch t.Type() {
	case parser.KindThis, parser.KindThisType:
		return true
	}
	return parser.Text(t, src) == selfTypeToken
}

func needsParens(parent *sitter.Node) bool {
	if parent == nil {
		return false
	}
	switch parent.Type() {
	case parser.KindUnionType, parser.KindIntersectionType, parser.KindArrayType:
		return true
	}
	return false
}
