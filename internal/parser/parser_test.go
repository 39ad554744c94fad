package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
)

func parse(t *testing.T, src string) *model.Program {
	t.Helper()
	f, err := Parse(src, DefaultGrammar())
	require.NoError(t, err)
	return f.Program
}

func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []model.Kind
	}{
		{"variable", "let a: ?string;", []model.Kind{model.KindVariableDeclaration}},
		{"asi", "a = 1\nb = 2", []model.Kind{model.KindExpressionStatement, model.KindExpressionStatement}},
		{"type alias", "type T = {x: number};", []model.Kind{model.KindTypeAlias}},
		{"opaque", "opaque type ID: string = string;", []model.Kind{model.KindOpaqueType}},
		{"interface", "interface I { m(): void }", []model.Kind{model.KindInterfaceDeclaration}},
		{"declare class", "declare class C<T> extends B<T> { static x: number; m(): T }", []model.Kind{model.KindDeclareClass}},
		{"declare function", "declare function f(x: number): string;", []model.Kind{model.KindDeclareFunction}},
		{"declare export default", "declare export default string;", []model.Kind{model.KindDeclareExportDeclaration}},
		{"declare module", "declare module 'm' { declare function f(): void; declare module.exports: () => void; }", []model.Kind{model.KindDeclareModule}},
		{"import type", `import type { A } from "./a";`, []model.Kind{model.KindImportDeclaration}},
		{"export type", "export type A = string;", []model.Kind{model.KindExportNamedDeclaration}},
		{"export type star", `export type * from "./a";`, []model.Kind{model.KindExportAllDeclaration}},
		{"class", "class A<T> extends B<T> implements I { +x: T; #y = 1; static async *gen() {} }", []model.Kind{model.KindClassDeclaration}},
		{"for of", "for (const x of xs) { y(x) }", []model.Kind{model.KindForOfStatement}},
		{"for in", "for (const k in o) {}", []model.Kind{model.KindForInStatement}},
		{"labeled", "outer: for (;;) { break outer; }", []model.Kind{model.KindLabeledStatement}},
		{"try", "try { a() } catch (e) { b() } finally { c() }", []model.Kind{model.KindTryStatement}},
		{"switch", "switch (x) { case 1: y(); break; default: z() }", []model.Kind{model.KindSwitchStatement}},
		{"async function", "async function f(): Promise<void> { await g() }", []model.Kind{model.KindFunctionDeclaration}},
		{"type as identifier", "type = 5;", []model.Kind{model.KindExpressionStatement}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			var got []model.Kind
			for _, s := range prog.Body {
				got = append(got, s.Kind())
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseNullable(t *testing.T) {
	prog := parse(t, "let a: ?string;")
	decl := prog.Body[0].(*model.VariableDeclaration)
	require.Len(t, decl.Declarations, 1)
	id := decl.Declarations[0].(*model.VariableDeclarator).ID.(*model.Identifier)
	ann := id.TypeAnnotation.(*model.TypeAnnotation)
	nullable, ok := ann.TypeAnnotation.(*model.NullableTypeAnnotation)
	require.True(t, ok)
	assert.Equal(t, model.KindStringTypeAnnotation, nullable.TypeAnnotation.Kind())
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want model.Kind
	}{
		{"union", "type T = | 'a' | 'b';", model.KindUnionTypeAnnotation},
		{"intersection", "type T = A & B;", model.KindIntersectionTypeAnnotation},
		{"array", "type T = string[];", model.KindArrayTypeAnnotation},
		{"indexed", "type T = O['k'];", model.KindIndexedAccessType},
		{"tuple", "type T = [number, string];", model.KindTupleTypeAnnotation},
		{"function", "type T = (x: number, ...rest: Array<string>) => void;", model.KindFunctionTypeAnnotation},
		{"anonymous function", "type T = string => void;", model.KindFunctionTypeAnnotation},
		{"grouped", "type T = (string | number);", model.KindUnionTypeAnnotation},
		{"generic function", "type T = <U>(u: U) => U;", model.KindFunctionTypeAnnotation},
		{"exact object", "type T = {| a: 1 | 2 |};", model.KindObjectTypeAnnotation},
		{"empty exact object", "type T = {||};", model.KindObjectTypeAnnotation},
		{"qualified", "type T = React.Node;", model.KindGenericTypeAnnotation},
		{"typeof", "type T = typeof x;", model.KindTypeofTypeAnnotation},
		{"existential", "type T = *;", model.KindExistsTypeAnnotation},
		{"negative literal", "type T = -1;", model.KindNumberLiteralTypeAnnotation},
		{"mixed", "type T = mixed;", model.KindMixedTypeAnnotation},
		{"nested generics", "type T = Array<Array<string>>;", model.KindGenericTypeAnnotation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			alias := prog.Body[0].(*model.TypeAlias)
			assert.Equal(t, tt.want, alias.Right.Kind())
		})
	}
}

func TestParseExactObject(t *testing.T) {
	prog := parse(t, "type T = {| a: 1 | 2, ...Base, [k: string]: number, m(): void, ... |};")
	obj := prog.Body[0].(*model.TypeAlias).Right.(*model.ObjectTypeAnnotation)
	assert.True(t, obj.Exact)
	assert.True(t, obj.Inexact)
	require.Len(t, obj.Members, 4)
	assert.Equal(t, model.KindUnionTypeAnnotation, obj.Members[0].(*model.ObjectTypeProperty).Value.Kind())
	assert.Equal(t, model.KindObjectTypeSpreadProperty, obj.Members[1].Kind())
	ix := obj.Members[2].(*model.ObjectTypeIndexer)
	assert.Equal(t, "k", ix.ID.(*model.Identifier).Name)
	assert.True(t, obj.Members[3].(*model.ObjectTypeProperty).Method)
}

func TestParseFunctionTypeParams(t *testing.T) {
	prog := parse(t, "type F = (string, b?: number, ...Array<mixed>) => void;")
	fn := prog.Body[0].(*model.TypeAlias).Right.(*model.FunctionTypeAnnotation)
	require.Len(t, fn.Params, 2)
	assert.Nil(t, fn.Params[0].(*model.FunctionTypeParam).Name)
	b := fn.Params[1].(*model.FunctionTypeParam)
	assert.True(t, b.Optional)
	assert.Equal(t, "b", b.Name.(*model.Identifier).Name)
	require.NotNil(t, fn.Rest)
	assert.Nil(t, fn.Rest.(*model.FunctionTypeParam).Name)
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want model.Kind
	}{
		{"arrow", "(a: number, b): string => a;", model.KindArrowFunctionExpression},
		{"async arrow", "async (x) => { await x };", model.KindArrowFunctionExpression},
		{"generic arrow", "<T>(x: T): T => x;", model.KindArrowFunctionExpression},
		{"typecast", "(x: any);", model.KindTypeCastExpression},
		{"parenthesized", "(a, b);", model.KindParenthesizedExpression},
		{"optional chain", "a?.b?.[c]?.(d);", model.KindCallExpression},
		{"nullish", "a ?? b;", model.KindBinaryExpression},
		{"call with type args", "f<string>(x);", model.KindCallExpression},
		{"comparison", "a < b;", model.KindBinaryExpression},
		{"template", "`a${b}c`;", model.KindTemplateLiteral},
		{"regexp", "/a[/]b/g;", model.KindRegExpLiteral},
		{"dynamic import", `import("./x");`, model.KindCallExpression},
		{"new", "new Map<string, number>();", model.KindNewExpression},
		{"object", "({ a, b: 1, ...c, m() {}, get x() { return 1 }, [k]: 2 });", model.KindParenthesizedExpression},
		{"assign destructure", "[a, b] = c;", model.KindAssignmentExpression},
		{"jsx", "<div className=\"a\">{x}<br /></div>;", model.KindJSXElement},
		{"fragment", "<><A.B c={1} /></>;", model.KindJSXFragment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog := parse(t, tt.src)
			stmt := prog.Body[0].(*model.ExpressionStatement)
			assert.Equal(t, tt.want, stmt.Expression.Kind())
		})
	}
}

func TestParseRegExpParts(t *testing.T) {
	prog := parse(t, "x = /a\\/b/gi;")
	assign := prog.Body[0].(*model.ExpressionStatement).Expression.(*model.AssignmentExpression)
	re := assign.Right.(*model.RegExpLiteral)
	assert.Equal(t, "a\\/b", re.Pattern)
	assert.Equal(t, "gi", re.Flags)
}

func TestParseImportKinds(t *testing.T) {
	prog := parse(t, `import React, { type Node, typeof Foo, useState } from "react";
import typeof Bar from "./bar";
import type from "./type";`)
	first := prog.Body[0].(*model.ImportDeclaration)
	assert.Equal(t, "value", first.ImportKind)
	require.Len(t, first.Specifiers, 4)
	assert.Equal(t, model.KindImportDefaultSpecifier, first.Specifiers[0].Kind())
	assert.Equal(t, "type", first.Specifiers[1].(*model.ImportSpecifier).ImportKind)
	assert.Equal(t, "typeof", first.Specifiers[2].(*model.ImportSpecifier).ImportKind)
	assert.Equal(t, "value", first.Specifiers[3].(*model.ImportSpecifier).ImportKind)

	assert.Equal(t, "typeof", prog.Body[1].(*model.ImportDeclaration).ImportKind)

	third := prog.Body[2].(*model.ImportDeclaration)
	assert.Equal(t, "value", third.ImportKind)
	assert.Equal(t, "type", third.Specifiers[0].(*model.ImportDefaultSpecifier).Local.(*model.Identifier).Name)
}

func TestParsePredicate(t *testing.T) {
	prog := parse(t, "function isString(x: mixed): boolean %checks { return typeof x === 'string' }")
	fn := prog.Body[0].(*model.FunctionDeclaration)
	assert.Equal(t, model.KindInferredPredicate, fn.Predicate.Kind())
	assert.NotNil(t, fn.ReturnType)
}

func TestParseShiftInTypeArgs(t *testing.T) {
	prog := parse(t, "let m: Map<string, Array<number>>= new Map();")
	d := prog.Body[0].(*model.VariableDeclaration).Declarations[0].(*model.VariableDeclarator)
	assert.Equal(t, model.KindNewExpression, d.Init.Kind())
}

func TestParseComments(t *testing.T) {
	src := `// @flow
const a = 1; // trailing a

// own line
const b = 2;
/* after b */`
	f, err := Parse(src, DefaultGrammar())
	require.NoError(t, err)
	require.Len(t, f.Comments, 4)

	a, b := f.Program.Body[0].Base(), f.Program.Body[1].Base()
	require.Len(t, a.Leading, 1)
	assert.Equal(t, " @flow", a.Leading[0].Text)

	require.Len(t, a.Trailing, 2)
	assert.Equal(t, " trailing a", a.Trailing[0].Text)
	assert.Equal(t, " own line", a.Trailing[1].Text)

	require.Len(t, b.Leading, 1)
	assert.Same(t, a.Trailing[1], b.Leading[0])

	require.Len(t, b.Trailing, 1)
	assert.True(t, b.Trailing[0].Block)
}

func TestParseCommentsInnerLists(t *testing.T) {
	src := `function f() {
  // inside
  return 1;
}
type T = {
  a: number,
  // dangling
};
const o = {};`
	f, err := Parse(src, DefaultGrammar())
	require.NoError(t, err)

	fn := f.Program.Body[0].(*model.FunctionDeclaration)
	assert.Empty(t, fn.Leading)
	ret := fn.Body.(*model.BlockStatement).Body[0]
	require.Len(t, ret.Base().Leading, 1)
	assert.Equal(t, " inside", ret.Base().Leading[0].Text)

	obj := f.Program.Body[1].(*model.TypeAlias).Right.(*model.ObjectTypeAnnotation)
	assert.Empty(t, obj.Members[0].Base().Trailing)
	assert.Empty(t, f.Program.Body[2].Base().Leading)
}

func TestParseParamComments(t *testing.T) {
	src := `function f(
  a: ?string, // a
  b: number, // b
): void {}
class C { m(/* x */ x) {} }`
	f, err := Parse(src, DefaultGrammar())
	require.NoError(t, err)

	fn := f.Program.Body[0].(*model.FunctionDeclaration)
	assert.Empty(t, fn.Leading)
	require.Len(t, fn.Params, 2)
	require.Len(t, fn.Params[0].Base().Trailing, 1)
	assert.Equal(t, " a", fn.Params[0].Base().Trailing[0].Text)
	require.Len(t, fn.Params[1].Base().Trailing, 1)
	assert.Equal(t, " b", fn.Params[1].Base().Trailing[0].Text)

	class := f.Program.Body[1].(*model.ClassDeclaration)
	m := class.Body.(*model.ClassBody).Body[0].(*model.ClassMethod)
	assert.Empty(t, m.Leading)
	require.Len(t, m.Params[0].Base().Leading, 1)
	assert.Equal(t, " x ", m.Params[0].Base().Leading[0].Text)
}

func TestParseEmptyContainerComments(t *testing.T) {
	f, err := Parse("const x = <div>{/* note */}</div>;", DefaultGrammar())
	require.NoError(t, err)
	var container *model.JSXExpressionContainer
	model.Walk(f.Program, func(n model.Node) bool {
		if c, ok := n.(*model.JSXExpressionContainer); ok {
			container = c
		}
		return true
	})
	require.NotNil(t, container)
	require.Len(t, container.Inner, 1)
	assert.Equal(t, " note ", container.Inner[0].Text)
}

func TestParseInterpreter(t *testing.T) {
	prog := parse(t, "#!/usr/bin/env node\nrun();")
	assert.Equal(t, "/usr/bin/env node", prog.Interpreter)
	assert.Len(t, prog.Body, 1)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
	}{
		{"unterminated string", "let a = 'x", 1},
		{"missing brace", "function f() {\n", 2},
		{"bad type", "let a: = 1;", 1},
		{"try without handler", "try {}", 1},
		{"internal slot", "type T = { [[foo]]: number };", 1},
		{"mismatched jsx", "<a></b>;", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src, DefaultGrammar())
			require.Error(t, err)
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.line, se.Line)
		})
	}
}

func TestParseWithoutJSX(t *testing.T) {
	_, err := Parse("<div />;", Grammar{})
	require.Error(t, err)
}
