package transform

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmmoran/flowts/internal/model"
	"github.com/cmmoran/flowts/internal/parser"
)

func run(t *testing.T, src string, opts Options) (*model.Program, *State) {
	t.Helper()
	f, err := parser.Parse(src, parser.DefaultGrammar())
	require.NoError(t, err)
	st := NewState(opts, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, Run(st, f))
	require.Empty(t, model.FindOrigin(f.Program))
	return f.Program, st
}

// varType returns the annotation of the first declarator of statement i.
func varType(t *testing.T, p *model.Program, i int) model.Node {
	t.Helper()
	decl, ok := p.Body[i].(*model.VariableDeclaration)
	require.True(t, ok, "statement %d is %s", i, p.Body[i].Kind())
	id := decl.Declarations[0].(*model.VariableDeclarator).ID.(*model.Identifier)
	ann, ok := id.TypeAnnotation.(*model.TSTypeAnnotation)
	require.True(t, ok)
	return ann.TypeAnnotation
}

// aliasType returns the right-hand side of the type alias at statement i.
func aliasType(t *testing.T, p *model.Program, i int) model.Node {
	t.Helper()
	a, ok := p.Body[i].(*model.TSTypeAliasDeclaration)
	require.True(t, ok, "statement %d is %s", i, p.Body[i].Kind())
	return a.TypeAnnotation
}

func refName(t *testing.T, n model.Node) string {
	t.Helper()
	ref, ok := n.(*model.TSTypeReference)
	require.True(t, ok, "got %s", n.Kind())
	switch name := ref.TypeName.(type) {
	case *model.Identifier:
		return name.Name
	case *model.TSQualifiedName:
		return name.Left.(*model.Identifier).Name + "." + name.Right.(*model.Identifier).Name
	}
	return ""
}

func TestEveryOriginKindIsHandled(t *testing.T) {
	for _, k := range model.Kinds() {
		if k.Flavor() != model.Origin {
			continue
		}
		_, ok := rules[k]
		assert.True(t, ok || consumed[k], "no rule for %s", k)
	}
}

func TestKeywords(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"string", "string"},
		{"number", "number"},
		{"boolean", "boolean"},
		{"mixed", "unknown"},
		{"empty", "never"},
		{"void", "void"},
		{"null", "null"},
		{"any", "any"},
		{"symbol", "symbol"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, _ := run(t, "let a: "+tt.src+";", Options{})
			kw, ok := varType(t, p, 0).(*model.TSKeyword)
			require.True(t, ok)
			assert.Equal(t, tt.want, kw.Name)
		})
	}
}

func TestExistentialWarns(t *testing.T) {
	p, st := run(t, "let a: *;", Options{})
	assert.Equal(t, "any", varType(t, p, 0).(*model.TSKeyword).Name)
	require.Len(t, st.Warnings, 1)
	assert.Equal(t, 1, st.Warnings[0].Span.Start.Line)
}

func TestLiteralTypes(t *testing.T) {
	p, _ := run(t, `type T = "a" | 1 | true;`, Options{})
	u := aliasType(t, p, 0).(*model.TSUnionType)
	require.Len(t, u.Types, 3)
	assert.IsType(t, &model.StringLiteral{}, u.Types[0].(*model.TSLiteralType).Literal)
	assert.IsType(t, &model.NumericLiteral{}, u.Types[1].(*model.TSLiteralType).Literal)
	assert.Equal(t, true, u.Types[2].(*model.TSLiteralType).Literal.(*model.BooleanLiteral).Value)
}

func TestNullable(t *testing.T) {
	p, _ := run(t, "let a: ?string;", Options{})
	u, ok := varType(t, p, 0).(*model.TSUnionType)
	require.True(t, ok)
	require.Len(t, u.Types, 3)
	var names []string
	for _, typ := range u.Types {
		names = append(names, typ.(*model.TSKeyword).Name)
	}
	assert.Equal(t, []string{"string", "null", "undefined"}, names)
}

func TestNullableFunctionIsParenthesized(t *testing.T) {
	p, _ := run(t, "let f: ?() => void;", Options{})
	u := varType(t, p, 0).(*model.TSUnionType)
	require.Len(t, u.Types, 3)
	paren, ok := u.Types[0].(*model.TSParenthesizedType)
	require.True(t, ok, "got %s", u.Types[0].Kind())
	assert.IsType(t, &model.TSFunctionType{}, paren.TypeAnnotation)
}

func TestFunctionTypeInUnion(t *testing.T) {
	p, _ := run(t, "type F = (() => void) | string;", Options{})
	u := aliasType(t, p, 0).(*model.TSUnionType)
	assert.IsType(t, &model.TSParenthesizedType{}, u.Types[0])
}

func TestFunctionTypeParams(t *testing.T) {
	p, _ := run(t, "type F = (string, y?: number, ...Array<boolean>) => void;", Options{})
	fn := aliasType(t, p, 0).(*model.TSFunctionType)
	require.Len(t, fn.Parameters, 3)
	assert.Equal(t, "arg0", fn.Parameters[0].(*model.Identifier).Name)
	y := fn.Parameters[1].(*model.Identifier)
	assert.Equal(t, "y", y.Name)
	assert.True(t, y.Optional)
	rest, ok := fn.Parameters[2].(*model.RestElement)
	require.True(t, ok)
	assert.Equal(t, "rest", rest.Argument.(*model.Identifier).Name)
	assert.Equal(t, "Array", refName(t, unwrap(rest.TypeAnnotation)))
	assert.Equal(t, "void", unwrap(fn.ReturnType).(*model.TSKeyword).Name)
}

func TestTypeParameters(t *testing.T) {
	p, st := run(t, "type Box<+T: Object = {}> = T;", Options{})
	a := p.Body[0].(*model.TSTypeAliasDeclaration)
	decl := a.TypeParameters.(*model.TSTypeParameterDeclaration)
	require.Len(t, decl.Params, 1)
	tp := decl.Params[0].(*model.TSTypeParameter)
	assert.Equal(t, "T", tp.Name)
	assert.IsType(t, &model.TSTypeLiteral{}, tp.Constraint)
	assert.NotNil(t, tp.Default)
	assert.Len(t, st.Warnings, 1)
}

func TestLegacyAliases(t *testing.T) {
	p, _ := run(t, "let f: Function; let o: Object; let r: $ReadOnlyArray<string>;", Options{})
	fn := varType(t, p, 0).(*model.TSFunctionType)
	require.Len(t, fn.Parameters, 1)
	assert.IsType(t, &model.RestElement{}, fn.Parameters[0])

	lit := varType(t, p, 1).(*model.TSTypeLiteral)
	require.Len(t, lit.Members, 1)
	assert.IsType(t, &model.TSIndexSignature{}, lit.Members[0])

	assert.Equal(t, "ReadonlyArray", refName(t, varType(t, p, 2)))
}

func TestUtilityTypes(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		inline  bool
		kind    model.Kind
		ref     string
		imports []string
	}{
		{"readonly inline", "type T = $ReadOnly<{x: number}>;", true, model.KindTSTypeReference, "Readonly", nil},
		{"readonly import", "type T = $ReadOnly<{x: number}>;", false, model.KindTSTypeReference, "$ReadOnly", []string{"$ReadOnly"}},
		{"keys inline", "type T = $Keys<O>;", true, model.KindTSTypeOperator, "", nil},
		{"values inline", "type T = $Values<O>;", true, model.KindTSIndexedAccessType, "", nil},
		{"exact always inline", "type T = $Exact<O>;", false, model.KindTSTypeReference, "O", nil},
		{"fixme always inline", "type T = $FlowFixMe;", false, model.KindTSKeyword, "", nil},
		{"diff import", "type T = $Diff<A, B>;", true, model.KindTSTypeReference, "$Diff", []string{"$Diff"}},
		{"rest renamed", "type T = $Rest<A, B>;", false, model.KindTSTypeReference, "$Diff", []string{"$Diff"}},
		{"property type", "type T = $PropertyType<O, 'k'>;", true, model.KindTSIndexedAccessType, "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, st := run(t, tt.src, Options{InlineUtilityTypes: tt.inline})
			typ := aliasType(t, p, len(p.Body)-1)
			assert.Equal(t, tt.kind, typ.Kind())
			if tt.ref != "" {
				assert.Equal(t, tt.ref, refName(t, typ))
			}
			assert.Equal(t, tt.imports, st.UsedImports.Items())
		})
	}
}

func TestUtilityImportedOnce(t *testing.T) {
	p, st := run(t, "type A = $Keys<O>;\ntype B = $Keys<P>;\ntype C = $Shape<O>;", Options{})
	assert.Equal(t, []string{"$Keys", "$Shape"}, st.UsedImports.Items())

	require.Len(t, p.Body, 4)
	imp, ok := p.Body[0].(*model.ImportDeclaration)
	require.True(t, ok)
	assert.Equal(t, "utility-types", imp.Source.(*model.StringLiteral).Value)
	require.Len(t, imp.Specifiers, 2)
	assert.Equal(t, "$Keys", imp.Specifiers[0].(*model.ImportSpecifier).Local.(*model.Identifier).Name)
}

func TestUtilityMissingArguments(t *testing.T) {
	p, st := run(t, "type T = $PropertyType<O>;", Options{InlineUtilityTypes: true})
	assert.Equal(t, "$PropertyType", refName(t, aliasType(t, p, 1)))
	assert.Len(t, st.Warnings, 1)
}

func TestObjectTypes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want func(t *testing.T, n model.Node)
	}{
		{"record", "type T = {[key: number]: string};", func(t *testing.T, n model.Node) {
			assert.Equal(t, "Record", refName(t, n))
			args := n.(*model.TSTypeReference).TypeParameters.(*model.TSTypeParameterInstantiation).Params
			require.Len(t, args, 2)
			assert.Equal(t, "number", args[0].(*model.TSKeyword).Name)
			assert.Equal(t, "string", args[1].(*model.TSKeyword).Name)
		}},
		{"readonly record", "type T = {+[string]: number};", func(t *testing.T, n model.Node) {
			assert.Equal(t, "Readonly", refName(t, n))
			inner := n.(*model.TSTypeReference).TypeParameters.(*model.TSTypeParameterInstantiation).Params[0]
			assert.Equal(t, "Record", refName(t, inner))
		}},
		{"literal", "type T = {a: number, +b?: string, m(): void};", func(t *testing.T, n model.Node) {
			lit := n.(*model.TSTypeLiteral)
			require.Len(t, lit.Members, 3)
			b := lit.Members[1].(*model.TSPropertySignature)
			assert.True(t, b.Readonly)
			assert.True(t, b.Optional)
			m := lit.Members[2].(*model.TSMethodSignature)
			assert.Equal(t, "method", m.Method)
		}},
		{"spread only", "type T = {...A};", func(t *testing.T, n model.Node) {
			assert.Equal(t, "A", refName(t, n))
		}},
		{"spreads", "type T = {...A, ...B};", func(t *testing.T, n model.Node) {
			assert.Len(t, n.(*model.TSIntersectionType).Types, 2)
		}},
		{"spread and members", "type T = {...A, b: number};", func(t *testing.T, n model.Node) {
			i := n.(*model.TSIntersectionType)
			require.Len(t, i.Types, 2)
			assert.Equal(t, "A", refName(t, i.Types[0]))
			assert.IsType(t, &model.TSTypeLiteral{}, i.Types[1])
		}},
		{"mapped key", "type T = {[k: 'a' | 'b']: number};", func(t *testing.T, n model.Node) {
			m, ok := n.(*model.TSMappedType)
			require.True(t, ok, "got %s", n.Kind())
			assert.True(t, m.Optional)
			assert.Equal(t, "k", m.TypeParameter.(*model.TSTypeParameter).Name)
		}},
		{"indexer with members", "type T = {[string]: number, a: number};", func(t *testing.T, n model.Node) {
			lit := n.(*model.TSTypeLiteral)
			require.Len(t, lit.Members, 2)
			sig := lit.Members[0].(*model.TSIndexSignature)
			assert.Equal(t, "key", sig.Parameters[0].(*model.Identifier).Name)
		}},
		{"call property", "type T = {(x: number): string};", func(t *testing.T, n model.Node) {
			lit := n.(*model.TSTypeLiteral)
			require.Len(t, lit.Members, 1)
			assert.IsType(t, &model.TSCallSignatureDeclaration{}, lit.Members[0])
		}},
		{"symbol key", "type T = {@@iterator(): Iterator<string>};", func(t *testing.T, n model.Node) {
			m := n.(*model.TSTypeLiteral).Members[0].(*model.TSMethodSignature)
			assert.True(t, m.Computed)
			assert.IsType(t, &model.MemberExpression{}, m.Key)
		}},
		{"accessors", "type T = {get x(): number, set x(v: number): void};", func(t *testing.T, n model.Node) {
			lit := n.(*model.TSTypeLiteral)
			require.Len(t, lit.Members, 2)
			assert.Equal(t, "get", lit.Members[0].(*model.TSMethodSignature).Method)
			set := lit.Members[1].(*model.TSMethodSignature)
			assert.Equal(t, "set", set.Method)
			assert.Nil(t, set.TypeAnnotation)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := run(t, tt.src, Options{})
			tt.want(t, aliasType(t, p, 0))
		})
	}
}

func TestObjectTypeWarnings(t *testing.T) {
	_, st := run(t, "type T = {| a: number, -b: string |};", Options{})
	assert.Len(t, st.Warnings, 2)
}

func TestInterface(t *testing.T) {
	p, _ := run(t, "interface I<T> extends J<T> { [k: string]: T; m(): void }", Options{})
	d, ok := p.Body[0].(*model.TSInterfaceDeclaration)
	require.True(t, ok)
	require.Len(t, d.Extends, 1)
	h := d.Extends[0].(*model.TSExpressionWithTypeArguments)
	assert.Equal(t, "J", h.Expression.(*model.Identifier).Name)
	body := d.Body.(*model.TSInterfaceBody)
	require.Len(t, body.Body, 2)
	assert.IsType(t, &model.TSIndexSignature{}, body.Body[0])
}

func TestTypeof(t *testing.T) {
	p, st := run(t, "type T = typeof a.b;\ntype U = typeof c;", Options{})
	q, ok := aliasType(t, p, 0).(*model.TSTypeQuery)
	require.True(t, ok)
	assert.IsType(t, &model.TSQualifiedName{}, q.ExprName)

	q, ok = aliasType(t, p, 1).(*model.TSTypeQuery)
	require.True(t, ok)
	assert.Equal(t, "c", localName(q.ExprName))
	assert.Empty(t, st.Warnings)
}

func TestDeclarations(t *testing.T) {
	src := `declare var x: number;
declare function f(a: number): string;
declare class C<T> extends B<T> { m(): T }
declare type D = string;
declare opaque type O: string;
declare export function g(): void;
opaque type P = number;`
	p, st := run(t, src, Options{})
	require.Len(t, p.Body, 7)

	v := p.Body[0].(*model.VariableDeclaration)
	assert.True(t, v.Declare)
	assert.Equal(t, "var", v.DeclKind)

	f := p.Body[1].(*model.TSDeclareFunction)
	assert.True(t, f.Declare)
	assert.Equal(t, "f", f.ID.(*model.Identifier).Name)
	require.Len(t, f.Params, 1)
	assert.NotNil(t, f.ReturnType)

	c := p.Body[2].(*model.ClassDeclaration)
	assert.True(t, c.Declare)
	assert.Equal(t, "B", c.SuperClass.(*model.Identifier).Name)
	assert.NotNil(t, c.SuperTypeParameters)
	assert.IsType(t, &model.TSTypeLiteral{}, c.Body)

	d := p.Body[3].(*model.TSTypeAliasDeclaration)
	assert.True(t, d.Declare)

	o := p.Body[4].(*model.TSTypeAliasDeclaration)
	assert.Equal(t, "string", o.TypeAnnotation.(*model.TSKeyword).Name)

	e := p.Body[5].(*model.ExportNamedDeclaration)
	assert.False(t, e.Declaration.(*model.TSDeclareFunction).Declare)

	assert.IsType(t, &model.TSTypeAliasDeclaration{}, p.Body[6])
	assert.Len(t, st.Warnings, 2)
}

func TestDeclareModule(t *testing.T) {
	src := `declare module 'm' {
  declare var v: number;
  declare type T = string;
  declare module.exports: T;
}
declare module.exports: number;`
	p, st := run(t, src, Options{})
	require.Len(t, p.Body, 3)

	m := p.Body[0].(*model.TSModuleDeclaration)
	assert.Equal(t, "m", m.ID.(*model.StringLiteral).Value)
	require.Len(t, m.Body, 4)
	assert.False(t, m.Body[0].(*model.VariableDeclaration).Declare)
	assert.False(t, m.Body[1].(*model.TSTypeAliasDeclaration).Declare)
	exports := m.Body[2].(*model.VariableDeclaration)
	assert.False(t, exports.Declare)
	assert.Equal(t, "const", exports.DeclKind)
	assert.IsType(t, &model.TSExportAssignment{}, m.Body[3])

	top := p.Body[1].(*model.VariableDeclaration)
	assert.True(t, top.Declare)
	assert.IsType(t, &model.TSExportAssignment{}, p.Body[2])
	assert.Empty(t, st.Warnings)
}

func TestFunctionsAndClasses(t *testing.T) {
	src := `function f(x?: number = 1): boolean %checks { return !!x; }
class A { +x: number = 1; -y: string; }
const z = (v: any);`
	p, st := run(t, src, Options{})

	fn := p.Body[0].(*model.FunctionDeclaration)
	assert.Nil(t, fn.Predicate)
	assert.False(t, fn.Params[0].(*model.AssignmentPattern).Left.(*model.Identifier).Optional)

	body := p.Body[1].(*model.ClassDeclaration).Body.(*model.ClassBody)
	x := body.Body[0].(*model.ClassProperty)
	assert.True(t, x.Readonly)
	assert.Nil(t, x.Variance)
	assert.False(t, body.Body[1].(*model.ClassProperty).Readonly)

	init := p.Body[2].(*model.VariableDeclaration).Declarations[0].(*model.VariableDeclarator).Init
	as, ok := init.(*model.TSAsExpression)
	require.True(t, ok, "got %s", init.Kind())
	assert.Equal(t, "any", as.TypeAnnotation.(*model.TSKeyword).Name)

	assert.Len(t, st.Warnings, 2)
}
