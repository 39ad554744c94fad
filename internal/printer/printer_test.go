package printer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
	"github.com/cmmoran/flowts/internal/parser"
)

func generate(t *testing.T, src string, f Format) string {
	t.Helper()
	file, err := parser.Parse(src, parser.DefaultGrammar())
	require.NoError(t, err)
	return Generate(file, src, f)
}

func program(stmts ...model.Node) *model.File {
	return &model.File{Program: &model.Program{Body: stmts}}
}

func alias(typ model.Node) *model.File {
	return program(&model.TSTypeAliasDeclaration{ID: model.Ident("T"), TypeAnnotation: typ})
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"blank line", "let a = 1;\n\nlet b = 2;\n"},
		{"flat object", "const x = { a: 1, b };\n"},
		{"expanded object", "const x = {\n  a: 1,\n  b: 2\n};\n"},
		{"comments", "// lead\nfoo(); // trail\n"},
		{"function", "function f(a, b) {\n  return a + b;\n}\n"},
		{"if else", "if (a) {\n  b();\n} else {\n  c();\n}\n"},
		{"for", "for (let i = 0; i < n; i++) {}\n"},
		{"class", "class A {\n  a = 1;\n\n  b() {}\n}\n"},
		{"switch", "switch (x) {\n  case 1:\n    y();\n    break;\n  default:\n    z();\n}\n"},
		{"async arrow", "const f = async (x) => {\n  await x;\n};\n"},
		{"conditional", "x = a ? b : c;\n"},
		{"template", "const t = `a${b}c`;\n"},
		{"import", "import React, { useState } from 'react';\n"},
		{"export", "export { a as b };\n"},
		{"holes", "const a = [1, , 3];\n"},
		{"optional chain", "a?.b?.[c]?.(d);\n"},
		{"destructuring", "const { a, b: [c] } = o;\n"},
		{"doc comment", "/**\n * Doc\n */\nfunction f() {}\n"},
		{"inner comment", "function f() {\n  // todo\n}\n"},
		{"jsx", "const a = <div className=\"x\">{y}</div>;\n"},
		{"new", "new Foo(a);\n"},
		{"do while", "do {\n  a();\n} while (b);\n"},
		{"try", "try {\n  a();\n} catch (e) {\n  b();\n} finally {\n  c();\n}\n"},
		{"header comment", "// header\n\nlet a = 1;\n"},
		{"own-line trailing", "a;\n// c\nb;\n"},
		{"blank before comment", "a;\n\n// c\nb;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.src, DefaultFormat())
			if diff := cmp.Diff(tt.src, got); diff != "" {
				t.Errorf("Generate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommentForcesMultiline(t *testing.T) {
	got := generate(t, "const o = { a: 1, // one\n b: 2 };\n", DefaultFormat())
	assert.Equal(t, "const o = {\n  a: 1, // one\n  b: 2\n};\n", got)
}

func TestFormatOptions(t *testing.T) {
	prettier := PrettierFormat()

	avoid := PrettierFormat()
	avoid.ArrowParens = ArrowParensAvoid

	single := PrettierFormat()
	single.SingleQuote = true

	noSemi := DefaultFormat()
	noSemi.Semicolons = false

	narrow := DefaultFormat()
	narrow.PrintWidth = 20

	narrowAll := narrow
	narrowAll.TrailingComma = TrailingCommaAll

	wide := DefaultFormat()
	wide.TabWidth = 4

	tight := DefaultFormat()
	tight.BracketSpacing = false

	tests := []struct {
		name string
		f    Format
		src  string
		want string
	}{
		{"source arrow parens kept", DefaultFormat(), "const f = x => x;\n", "const f = x => x;\n"},
		{"arrow parens always", prettier, "const f = x => x;\n", "const f = (x) => x;\n"},
		{"arrow parens avoid", avoid, "const f = (x) => x;\n", "const f = x => x;\n"},
		{"source quotes kept", DefaultFormat(), "const s = 'a';\n", "const s = 'a';\n"},
		{"double quotes", prettier, "const s = 'it\\'s';\n", "const s = \"it's\";\n"},
		{"single quotes", single, "const s = \"a\";\n", "const s = 'a';\n"},
		{"quote with fewer escapes", single, "const s = \"it's\";\n", "const s = \"it's\";\n"},
		{"no semicolons", noSemi, "let a = 1;\n[1].forEach(f);\n", "let a = 1\n;[1].forEach(f)\n"},
		{"arguments break", narrow, "foo(aaaaaaaaaa, bbbbbbbbbb);\n", "foo(\n  aaaaaaaaaa,\n  bbbbbbbbbb\n);\n"},
		{"trailing comma all", narrowAll, "foo(aaaaaaaaaa, bbbbbbbbbb);\n", "foo(\n  aaaaaaaaaa,\n  bbbbbbbbbb,\n);\n"},
		{"tab width", wide, "function f() {\n  return 1;\n}\n", "function f() {\n    return 1;\n}\n"},
		{"bracket spacing", tight, "const x = { a: 1 };\n", "const x = {a: 1};\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generate(t, tt.src, tt.f))
		})
	}
}

func TestTypes(t *testing.T) {
	ref := func(name string) model.Node { return model.TypeRef(model.Ident(name)) }
	str := func(s string) model.Node { return &model.TSLiteralType{Literal: &model.StringLiteral{Value: s}} }
	void := model.Annotate(model.Keyword("void"))

	tests := []struct {
		name string
		typ  model.Node
		want string
	}{
		{
			"function in union",
			&model.TSUnionType{Types: []model.Node{&model.TSFunctionType{ReturnType: void}, model.Keyword("null")}},
			"type T = (() => void) | null;\n",
		},
		{
			"union element",
			&model.TSArrayType{ElementType: &model.TSUnionType{Types: []model.Node{model.Keyword("string"), model.Keyword("number")}}},
			"type T = (string | number)[];\n",
		},
		{
			"keyof union",
			&model.TSTypeOperator{Operator: "keyof", TypeAnnotation: &model.TSUnionType{Types: []model.Node{ref("A"), ref("B")}}},
			"type T = keyof (A | B);\n",
		},
		{
			"indexed keyof",
			&model.TSIndexedAccessType{
				ObjectType: &model.TSTypeOperator{Operator: "keyof", TypeAnnotation: ref("T")},
				IndexType:  str("a"),
			},
			"type T = (keyof T)[\"a\"];\n",
		},
		{
			"union in intersection",
			&model.TSIntersectionType{Types: []model.Node{ref("A"), &model.TSUnionType{Types: []model.Node{ref("B"), ref("C")}}}},
			"type T = A & (B | C);\n",
		},
		{
			"intersection in union",
			&model.TSUnionType{Types: []model.Node{ref("A"), &model.TSIntersectionType{Types: []model.Node{ref("B"), ref("C")}}}},
			"type T = A | B & C;\n",
		},
		{
			"record",
			model.TypeRef(model.Ident("Record"), model.Keyword("number"), model.Keyword("string")),
			"type T = Record<number, string>;\n",
		},
		{
			"readonly literal",
			model.TypeRef(model.Ident("Readonly"), &model.TSTypeLiteral{Members: []model.Node{
				&model.TSPropertySignature{Key: model.Ident("x"), TypeAnnotation: model.Annotate(model.Keyword("number"))},
			}}),
			"type T = Readonly<{ x: number }>;\n",
		},
		{
			"two members",
			&model.TSTypeLiteral{Members: []model.Node{
				&model.TSPropertySignature{Key: model.Ident("x"), TypeAnnotation: model.Annotate(model.Keyword("number"))},
				&model.TSPropertySignature{Key: model.Ident("y"), Optional: true, TypeAnnotation: model.Annotate(model.Keyword("string"))},
			}},
			"type T = { x: number; y?: string };\n",
		},
		{
			"mapped",
			&model.TSMappedType{
				TypeParameter:  &model.TSTypeParameter{Name: "K", Constraint: &model.TSTypeOperator{Operator: "keyof", TypeAnnotation: ref("T")}},
				TypeAnnotation: &model.TSIndexedAccessType{ObjectType: ref("T"), IndexType: ref("K")},
				Optional:       true,
			},
			"type T = { [K in keyof T]?: T[K] };\n",
		},
		{
			"function params",
			&model.TSFunctionType{
				Parameters: []model.Node{
					&model.Identifier{Name: "a", Optional: true, TypeAnnotation: model.Annotate(model.Keyword("string"))},
					&model.RestElement{Argument: model.Ident("rest"), TypeAnnotation: model.Annotate(&model.TSArrayType{ElementType: model.Keyword("any")})},
				},
				ReturnType: void,
			},
			"type T = (a?: string, ...rest: any[]) => void;\n",
		},
		{
			"typeof import",
			&model.TSTypeQuery{ExprName: &model.TSImportType{
				Argument:  &model.StringLiteral{Value: "m", Raw: `"m"`},
				Qualifier: model.Ident("default"),
			}},
			"type T = typeof import(\"m\").default;\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(alias(tt.typ), "", DefaultFormat()))
		})
	}
}

func TestLongUnionBreaks(t *testing.T) {
	u := &model.TSUnionType{}
	for _, s := range []string{"aaaa", "bbbb", "cccc"} {
		u.Types = append(u.Types, &model.TSLiteralType{Literal: &model.StringLiteral{Value: s}})
	}
	f := DefaultFormat()
	f.PrintWidth = 20
	assert.Equal(t, "type T =\n  | \"aaaa\"\n  | \"bbbb\"\n  | \"cccc\";\n", Generate(alias(u), "", f))
}

func TestDeclarations(t *testing.T) {
	num := model.Annotate(model.Keyword("number"))
	tests := []struct {
		name string
		node model.Node
		want string
	}{
		{
			"interface",
			&model.TSInterfaceDeclaration{
				ID:      model.Ident("I"),
				Extends: []model.Node{&model.TSExpressionWithTypeArguments{Expression: model.Ident("A")}},
				Body: &model.TSInterfaceBody{Body: []model.Node{
					&model.TSPropertySignature{Key: model.Ident("x"), Readonly: true, TypeAnnotation: num},
					&model.TSMethodSignature{Method: "method", Key: model.Ident("m"), TypeAnnotation: model.Annotate(model.Keyword("void"))},
				}},
			},
			"interface I extends A {\n  readonly x: number;\n  m(): void;\n}\n",
		},
		{
			"support import",
			&model.ImportDeclaration{
				ImportKind: "value",
				Specifiers: []model.Node{&model.ImportSpecifier{
					ImportKind: "value",
					Imported:   model.Ident("$ReadOnly"),
					Local:      model.Ident("$ReadOnly"),
				}},
				Source: &model.StringLiteral{Value: "utility-types"},
			},
			"import { $ReadOnly } from \"utility-types\";\n",
		},
		{
			"as expression",
			&model.ExpressionStatement{Expression: &model.TSAsExpression{Expression: model.Ident("x"), TypeAnnotation: model.Keyword("any")}},
			"(x as any);\n",
		},
		{
			"declare function",
			&model.TSDeclareFunction{
				Declare:    true,
				ID:         model.Ident("f"),
				Params:     []model.Node{&model.Identifier{Name: "x", TypeAnnotation: num}},
				ReturnType: model.Annotate(model.Keyword("string")),
			},
			"declare function f(x: number): string;\n",
		},
		{
			"declare class",
			&model.ClassDeclaration{Declare: true, Class: model.Class{
				ID: model.Ident("C"),
				Body: &model.TSTypeLiteral{Members: []model.Node{
					&model.TSPropertySignature{Key: model.Ident("x"), Static: true, TypeAnnotation: num},
				}},
			}},
			"declare class C {\n  static x: number;\n}\n",
		},
		{
			"index signature",
			&model.TSTypeAliasDeclaration{ID: model.Ident("T"), TypeAnnotation: &model.TSTypeLiteral{Members: []model.Node{
				&model.TSIndexSignature{
					Parameters:     []model.Node{&model.Identifier{Name: "k", TypeAnnotation: model.Annotate(model.Keyword("string"))}},
					TypeAnnotation: num,
					Readonly:       true,
				},
			}}},
			"type T = { readonly [k: string]: number };\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Generate(program(tt.node), "", DefaultFormat()))
		})
	}
}

func TestCommentPrintedOnce(t *testing.T) {
	c := &model.Comment{Text: " shared"}
	a := &model.ExpressionStatement{Expression: model.Ident("a")}
	b := &model.ExpressionStatement{Expression: model.Ident("b")}
	a.Trailing = []*model.Comment{c}
	b.Leading = []*model.Comment{c}
	assert.Equal(t, "a;\n// shared\nb;\n", Generate(program(a, b), "", DefaultFormat()))
}

func TestFormatValidate(t *testing.T) {
	assert.NoError(t, DefaultFormat().Validate())
	assert.NoError(t, Format{}.Validate())

	bad := DefaultFormat()
	bad.TrailingComma = "some"
	assert.Error(t, bad.Validate())

	bad = DefaultFormat()
	bad.ArrowParens = "never"
	assert.Error(t, bad.Validate())

	bad = DefaultFormat()
	bad.TabWidth = 3
	assert.Error(t, bad.Validate())

	n := Format{Prettier: true}.Normalize()
	assert.Equal(t, 2, n.TabWidth)
	assert.Equal(t, 80, n.PrintWidth)
	assert.Equal(t, TrailingCommaAll, n.TrailingComma)
}
