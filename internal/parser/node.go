// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

import (
	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"
)

// StartByte returns the node's starting byte offset. Offsets of parseable
// inputs always fit in an int; overflow maps to 0.
func StartByte(n *sitter.Node) int {
	v, err := safecast.Conv[int](n.StartByte())
	if err != nil {
		return 0
	}
	return v
}

// EndByte returns the node's ending byte offset (exclusive).
func EndByte(n *sitter.Node) int {
	v, err := safecast.Conv[int](n.EndByte())
	if err != nil {
		return 0
	}
	return v
}

// Text returns the node's source slice.
func Text(n *sitter.Node, src []byte) string {
	return n.Content(src)
}

// Position returns the 1-based line and column of the node's start.
func Position(n *sitter.Node) (line, column int) {
	p := n.StartPoint()
	return int(p.Row) + 1, int(p.Column) + 1
}

// EndPosition returns the 1-based line and column of the node's end.
func EndPosition(n *sitter.Node) (line, column int) {
	p := n.EndPoint()
	return int(p.Row) + 1, int(p.Column) + 1
}

// FieldChild returns the first child found under any of the given field
// names. Grammar releases renamed a few fields; callers pass all spellings.
func FieldChild(n *sitter.Node, names ...string) *sitter.Node {
	for _, name := range names {
		if c := n.ChildByFieldName(name); c != nil {
			return c
		}
	}
	return nil
}

// ChildOfKind returns the first child (named or anonymous) of one of the
// given kinds.
func ChildOfKind(n *sitter.Node, kinds ...string) *sitter.Node {
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		c := n.Child(i)
		for _, k := range kinds {
			if c.Type() == k {
				return c
			}
		}
	}
	return nil
}

// NamedChildren returns all named children of n, excluding comments.
func NamedChildren(n *sitter.Node) []*sitter.Node {
	count := int(n.NamedChildCount())
	out := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		c := n.NamedChild(i)
		if c.Type() == KindComment {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Body returns the member-holding body of an interface declaration or the
// object type itself. Interface bodies are interface_body in current
// grammars and object_type in older ones.
func Body(decl *sitter.Node) *sitter.Node {
	if decl.Type() == KindObjectType {
		return decl
	}
	if b := decl.ChildByFieldName("body"); b != nil {
		return b
	}
	return ChildOfKind(decl, KindInterfaceBody, KindObjectType)
}

// Members returns the member nodes of an interface body or object type:
// its named children minus comments.
func Members(body *sitter.Node) []*sitter.Node {
	if body == nil {
		return nil
	}
	return NamedChildren(body)
}

// ExtendsTypes returns the supertype nodes of an interface declaration,
// one per extended type, in source order. Nil when there is no extends
// clause.
func ExtendsTypes(decl *sitter.Node) []*sitter.Node {
	clause := ChildOfKind(decl, KindExtendsTypeClause, KindExtendsClause)
	if clause == nil {
		return nil
	}
	return NamedChildren(clause)
}
