// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package preferfunctiontype

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/anikethsaha/typescript-eslint/internal/parser"
)

// matchInterface decides whether a named interface declaration qualifies for
// rewriting. On a match it returns the sole callable member and its
// return-type annotation; otherwise both are nil.
func matchInterface(decl *sitter.Node, src []byte) (member, annotation *sitter.Node) {
	if extendsBlocksRewrite(decl, src) {
		return nil, nil
	}
	members := parser.Members(parser.Body(decl))
	if len(members) != 1 {
		return nil, nil
	}
	return qualifyMember(members[0])
}

// matchLiteral decides whether an anonymous object type qualifies. Literals
// have no supertype concept; only the member shape matters.
func matchLiteral(lit *sitter.Node) (member, annotation *sitter.Node) {
	members := parser.Members(lit)
	if len(members) != 1 {
		return nil, nil
	}
	return qualifyMember(members[0])
}

// extendsBlocksRewrite reports whether the interface's heritage rules out a
// function-type rewrite. An interface with no extends clause can always be
// expressed as a type alias; so can one whose only supertype is the bare
// identifier Function, since that adds nothing a function type lacks. Any
// other supertype contributes members a function type cannot carry.
func extendsBlocksRewrite(decl *sitter.Node, src []byte) bool {
	supertypes := parser.ExtendsTypes(decl)
	if len(supertypes) == 0 {
		return false
	}
	if len(supertypes) > 1 {
		return true
	}
	t := supertypes[0]
	if t.Type() == parser.KindTypeIdentifier && parser.Text(t, src) == "Function" {
		return false
	}
	return true
}

// qualifyMember accepts only call and construct signatures that carry an
// explicit return-type annotation. The annotation's leading colon is the
// anchor the rewriter splits the member text at, so unannotated signatures
// are never rewritten.
func qualifyMember(m *sitter.Node) (member, annotation *sitter.Node) {
	switch m.Type() {
	case parser.KindCallSignature, parser.KindConstructSignature:
	default:
		return nil, nil
	}
	ann := parser.FieldChild(m, "return_type", "type")
	if ann == nil {
		// Field names drifted across grammar releases; a type_annotation
		// directly under the signature is always its return annotation.
		ann = parser.ChildOfKind(m, parser.KindTypeAnnotation)
	}
	if ann == nil {
		return nil, nil
	}
	return m, ann
}
