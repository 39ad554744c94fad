package transform

import (
	"fmt"

	"github.com/cmmoran/flowts/internal/flavor"
	"github.com/cmmoran/flowts/internal/model"
)

var keywords = map[model.Kind]string{
	model.KindAnyTypeAnnotation:         "any",
	model.KindMixedTypeAnnotation:       "unknown",
	model.KindEmptyTypeAnnotation:       "never",
	model.KindVoidTypeAnnotation:        "void",
	model.KindNullLiteralTypeAnnotation: "null",
	model.KindStringTypeAnnotation:      "string",
	model.KindNumberTypeAnnotation:      "number",
	model.KindBooleanTypeAnnotation:     "boolean",
	model.KindSymbolTypeAnnotation:      "symbol",
	model.KindBigIntTypeAnnotation:      "bigint",
	model.KindExistsTypeAnnotation:      "any",
	model.KindThisTypeAnnotation:        "this",
}

func exitKeyword(st *State, n, _ model.Node) Result {
	if n.Kind() == model.KindExistsTypeAnnotation {
		st.Warn(n, "downgrading * to any")
	}
	return Replace(seed(model.Keyword(keywords[n.Kind()]), n))
}

func exitLiteralType(_ *State, n, _ model.Node) Result {
	var lit model.Node
	switch t := n.(type) {
	case *model.StringLiteralTypeAnnotation:
		lit = &model.StringLiteral{Value: t.Value, Raw: t.Raw}
	case *model.NumberLiteralTypeAnnotation:
		lit = &model.NumericLiteral{Raw: t.Raw}
	case *model.BooleanLiteralTypeAnnotation:
		lit = &model.BooleanLiteral{Value: t.Value}
	case *model.BigIntLiteralTypeAnnotation:
		lit = &model.BigIntLiteral{Raw: t.Raw}
	default:
		return Keep()
	}
	model.WithSpan(lit, n)
	return Replace(seed(&model.TSLiteralType{Literal: lit}, n))
}

func exitTypeAnnotation(_ *State, n, _ model.Node) Result {
	a := n.(*model.TypeAnnotation)
	return Replace(model.CopyBase(&model.TSTypeAnnotation{TypeAnnotation: a.TypeAnnotation}, n))
}

// parenthesize wraps function types, which would otherwise absorb the rest of
// a union, intersection or array into their return type.
func parenthesize(t model.Node) model.Node {
	if _, ok := t.(*model.TSFunctionType); ok {
		return model.WithSpan(&model.TSParenthesizedType{TypeAnnotation: t}, t)
	}
	return t
}

func exitNullable(_ *State, n, _ model.Node) Result {
	t := parenthesize(unwrap(n.(*model.NullableTypeAnnotation).TypeAnnotation))
	return Replace(seed(&model.TSUnionType{Types: []model.Node{
		t, model.Keyword("null"), model.Keyword("undefined"),
	}}, n))
}

func exitArray(_ *State, n, _ model.Node) Result {
	a := n.(*model.ArrayTypeAnnotation)
	return Replace(seed(&model.TSArrayType{ElementType: a.ElementType}, n))
}

func exitTuple(_ *State, n, _ model.Node) Result {
	t := n.(*model.TupleTypeAnnotation)
	return Replace(seed(&model.TSTupleType{ElementTypes: t.Types}, n))
}

func exitUnion(_ *State, n, _ model.Node) Result {
	return Replace(seed(&model.TSUnionType{Types: n.(*model.UnionTypeAnnotation).Types}, n))
}

func exitIntersection(_ *State, n, _ model.Node) Result {
	return Replace(seed(&model.TSIntersectionType{Types: n.(*model.IntersectionTypeAnnotation).Types}, n))
}

func exitIndexedAccess(_ *State, n, _ model.Node) Result {
	ia := n.(*model.IndexedAccessType)
	return Replace(seed(&model.TSIndexedAccessType{ObjectType: ia.ObjectType, IndexType: ia.IndexType}, n))
}

// enterTypeof converts "typeof x.y" before its argument is visited, so the
// argument is never resolved as a type reference.
func enterTypeof(st *State, n, _ model.Node) Result {
	arg := n.(*model.TypeofTypeAnnotation).Argument
	switch a := arg.(type) {
	case *model.Identifier, *model.QualifiedTypeIdentifier:
		return Replace(seed(&model.TSTypeQuery{ExprName: entityName(a)}, n))
	case *model.GenericTypeAnnotation:
		if a.TypeParameters != nil {
			st.Warn(n, "dropping type arguments of typeof")
		}
		return Replace(seed(&model.TSTypeQuery{ExprName: entityName(a.ID)}, n))
	}
	st.Warn(n, "typeof of a non-identifier type is not supported, using any")
	return Replace(seed(model.Keyword("any"), n))
}

// entityName converts a possibly qualified type identifier.
func entityName(n model.Node) model.Node {
	if q, ok := n.(*model.QualifiedTypeIdentifier); ok {
		return model.WithSpan(&model.TSQualifiedName{Left: entityName(q.Qualification), Right: q.ID}, n)
	}
	return n
}

func exitQualifiedTypeIdentifier(_ *State, n, _ model.Node) Result {
	q := n.(*model.QualifiedTypeIdentifier)
	return Replace(seed(&model.TSQualifiedName{Left: q.Qualification, Right: q.ID}, n))
}

// ---------------------------------------------------------------------------
// Functions and type parameters
// ---------------------------------------------------------------------------

func exitFunctionTypeParam(_ *State, n, _ model.Node) Result {
	p := n.(*model.FunctionTypeParam)
	id := &model.Identifier{Optional: p.Optional, TypeAnnotation: model.Annotate(p.TypeAnnotation)}
	if name, ok := p.Name.(*model.Identifier); ok {
		id.Name = name.Name
	}
	return Replace(seed(id, n))
}

func exitFunctionType(_ *State, n, parent model.Node) Result {
	f := n.(*model.FunctionTypeAnnotation)
	params := make([]model.Node, 0, len(f.Params)+1)
	for i, p := range f.Params {
		if id, ok := p.(*model.Identifier); ok && id.Name == "" {
			id.Name = fmt.Sprintf("arg%d", i)
		}
		params = append(params, p)
	}
	if f.Rest != nil {
		rest := &model.RestElement{}
		if id, ok := f.Rest.(*model.Identifier); ok {
			if id.Name == "" {
				id.Name = "rest"
			}
			rest.TypeAnnotation = id.TypeAnnotation
			rest.Argument = model.WithSpan(model.Ident(id.Name), id)
		}
		params = append(params, seed(rest, f.Rest))
	}
	fn := seed(&model.TSFunctionType{
		TypeParameters: f.TypeParameters,
		Parameters:     params,
		ReturnType:     model.Annotate(f.ReturnType),
	}, n)
	switch parent.(type) {
	case *model.UnionTypeAnnotation, *model.IntersectionTypeAnnotation,
		*model.ArrayTypeAnnotation, *model.NullableTypeAnnotation:
		return Replace(parenthesize(fn))
	}
	return Replace(fn)
}

func exitTypeParameterDeclaration(_ *State, n, _ model.Node) Result {
	d := n.(*model.TypeParameterDeclaration)
	return Replace(seed(&model.TSTypeParameterDeclaration{Params: d.Params}, n))
}

func exitTypeParameterInstantiation(_ *State, n, _ model.Node) Result {
	d := n.(*model.TypeParameterInstantiation)
	return Replace(seed(&model.TSTypeParameterInstantiation{Params: d.Params}, n))
}

func exitTypeParameter(st *State, n, _ model.Node) Result {
	p := n.(*model.TypeParameter)
	if p.Variance != nil {
		st.Warn(p.Variance, "type parameter variance is not supported, dropping it")
	}
	tp := &model.TSTypeParameter{Name: p.Name, Default: p.Default}
	if p.Bound != nil {
		tp.Constraint = unwrap(p.Bound)
	}
	return Replace(seed(tp, n))
}

// ---------------------------------------------------------------------------
// Generic type references
// ---------------------------------------------------------------------------

// exitGeneric resolves a named type reference: legacy aliases first, then the
// utility table, then the framework table, then a plain reference.
func exitGeneric(st *State, n, _ model.Node) Result {
	g := n.(*model.GenericTypeAnnotation)
	args := typeArgs(g.TypeParameters)

	var out model.Node
	switch id := g.ID.(type) {
	case *model.Identifier:
		if id.Name == "$ReadOnlyArray" {
			id.Name = "ReadonlyArray"
		}
		switch id.Name {
		case "Function":
			out = anyFunction()
		case "Object":
			out = anyObject()
		default:
			out = st.resolveUtility(n, id.Name, args)
			if out == nil {
				out = st.resolveReact(id.Name, args)
			}
		}
	case *model.TSQualifiedName:
		if left, ok := id.Left.(*model.Identifier); ok && left.Name == flavor.ReactNamespace {
			if right, ok := id.Right.(*model.Identifier); ok {
				if r, ok := flavor.LookupReactMember(right.Name); ok {
					out = r.Resolve(args, false)
				}
			}
		}
	}
	if out == nil {
		out = &model.TSTypeReference{TypeName: g.ID, TypeParameters: g.TypeParameters}
	}
	return Replace(seed(out, n))
}

// anyFunction is the target form of the legacy Function type.
func anyFunction() model.Node {
	return &model.TSFunctionType{
		Parameters: []model.Node{&model.RestElement{
			Argument:       model.Ident("args"),
			TypeAnnotation: model.Annotate(model.TypeRef(model.Ident("Array"), model.Keyword("any"))),
		}},
		ReturnType: model.Annotate(model.Keyword("any")),
	}
}

// anyObject is the target form of the legacy Object type.
func anyObject() model.Node {
	key := model.Ident("key")
	key.TypeAnnotation = model.Annotate(model.Keyword("string"))
	return &model.TSTypeLiteral{Members: []model.Node{&model.TSIndexSignature{
		Parameters:     []model.Node{key},
		TypeAnnotation: model.Annotate(model.Keyword("any")),
	}}}
}

// resolveUtility returns the target form of a utility type reference, or nil
// when name is not a utility type.
func (st *State) resolveUtility(n model.Node, name string, args []model.Node) model.Node {
	u, ok := flavor.LookupUtility(name)
	if !ok {
		return nil
	}
	e := u.Entry()
	if e.Policy(st.Options.InlineUtilityTypes) == flavor.Inline {
		if len(args) >= e.Arity {
			return e.Expand(args)
		}
		st.Warn(n, fmt.Sprintf("%s expects %d type arguments", name, e.Arity))
		if e.AlwaysInline {
			return model.Keyword("any")
		}
	}
	st.UseImport(e.ImportName)
	return model.TypeRef(model.Ident(e.ImportName), args...)
}

// resolveReact returns the target form of a framework type name written
// without a namespace, or nil when name is not one. Module members only
// count when they were imported from the framework module.
func (st *State) resolveReact(name string, args []model.Node) model.Node {
	r, ok := flavor.LookupReact(name)
	if !ok {
		return nil
	}
	bare := st.UnqualifiedReact[name]
	if r.Entry().Scope == flavor.Exported && !bare {
		return nil
	}
	return r.Resolve(args, bare)
}
