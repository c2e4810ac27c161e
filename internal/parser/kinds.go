// Copyright (c) 2026 Aniketh Saha. All rights reserved.
// SPDX-License-Identifier: MIT

package parser

// Tree-sitter node kinds for the TypeScript grammar.
//
// Kinds that changed spelling across grammar releases are listed in both
// spellings; lookups in this package accept either.
const (
	KindProgram = "program"

	// Declarations.
	KindInterfaceDeclaration = "interface_declaration"
	KindTypeAliasDeclaration = "type_alias_declaration"
	KindClassDeclaration     = "class_declaration"

	// Interface and object-type bodies.
	KindInterfaceBody = "interface_body"
	KindObjectType    = "object_type"

	// Members of an interface body or object type.
	KindCallSignature      = "call_signature"
	KindConstructSignature = "construct_signature"
	KindPropertySignature  = "property_signature"
	KindMethodSignature    = "method_signature"
	KindIndexSignature     = "index_signature"

	// Heritage. Interfaces use extends_type_clause in current grammars,
	// extends_clause in older ones.
	KindExtendsTypeClause = "extends_type_clause"
	KindExtendsClause     = "extends_clause"

	// Types.
	KindTypeAnnotation       = "type_annotation"
	KindTypeIdentifier       = "type_identifier"
	KindNestedTypeIdentifier = "nested_type_identifier"
	KindGenericType          = "generic_type"
	KindUnionType            = "union_type"
	KindIntersectionType     = "intersection_type"
	KindArrayType            = "array_type"
	KindFunctionType         = "function_type"
	KindParenthesizedType    = "parenthesized_type"
	KindPredefinedType       = "predefined_type"
	KindThis                 = "this"
	KindThisType             = "this_type"

	// Parameters.
	KindFormalParameters  = "formal_parameters"
	KindRequiredParameter = "required_parameter"
	KindOptionalParameter = "optional_parameter"
	KindTypeParameters    = "type_parameters"

	// Misc.
	KindComment   = "comment"
	KindInterface = "interface" // the bare keyword token
)
