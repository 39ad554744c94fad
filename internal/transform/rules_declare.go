package transform

import (
	"github.com/cmmoran/flowts/internal/model"
)

func exitTypeAlias(_ *State, n, _ model.Node) Result {
	a := n.(*model.TypeAlias)
	return Replace(seed(&model.TSTypeAliasDeclaration{
		ID:             a.ID,
		TypeParameters: a.TypeParameters,
		TypeAnnotation: a.Right,
	}, n))
}

// exitOpaqueType exposes the underlying type: the target dialect has no
// opaque aliases.
func exitOpaqueType(st *State, n, _ model.Node) Result {
	o := n.(*model.OpaqueType)
	st.Warn(n, "opaque type is not supported, converting to a type alias")
	right := o.Impltype
	if right == nil {
		right = o.Supertype
	}
	if right == nil {
		right = model.Keyword("unknown")
	}
	return Replace(seed(&model.TSTypeAliasDeclaration{
		ID:             o.ID,
		TypeParameters: o.TypeParameters,
		TypeAnnotation: right,
	}, n))
}

// exitInterface builds the interface body from the members of the object
// type, which is always converted to a type literal in this position.
func exitInterface(_ *State, n, parent model.Node) Result {
	d := n.(*model.InterfaceDeclaration)
	return Replace(seed(&model.TSInterfaceDeclaration{
		Declare:        d.Declare && !inModule(parent),
		ID:             d.ID,
		TypeParameters: d.TypeParameters,
		Extends:        d.Extends,
		Body:           interfaceBody(d.Body),
	}, n))
}

func interfaceBody(n model.Node) model.Node {
	body := &model.TSInterfaceBody{}
	if lit, ok := n.(*model.TSTypeLiteral); ok {
		body.Body = lit.Members
		return model.CopyBase(body, lit)
	}
	return body
}

// exitHeritage converts an "extends" or "implements" clause entry.
func exitHeritage(_ *State, n, _ model.Node) Result {
	var id, targs model.Node
	switch h := n.(type) {
	case *model.InterfaceExtends:
		id, targs = h.ID, h.TypeParameters
	case *model.ClassImplements:
		id, targs = h.ID, h.TypeParameters
	default:
		return Keep()
	}
	return Replace(seed(&model.TSExpressionWithTypeArguments{Expression: id, TypeParameters: targs}, n))
}

// ---------------------------------------------------------------------------
// AMBIENT DECLARATIONS
// ---------------------------------------------------------------------------

// exported reports whether parent is a "declare export", which already
// makes its declaration ambient.
func exported(parent model.Node) (ok, isDefault bool) {
	d, ok := parent.(*model.DeclareExportDeclaration)
	if !ok {
		return false, false
	}
	return true, d.Default
}

// inModule reports whether parent is a module declaration, whose body is
// already ambient.
func inModule(parent model.Node) bool {
	_, ok := parent.(*model.DeclareModule)
	return ok
}

func exitDeclareModule(_ *State, n, _ model.Node) Result {
	d := n.(*model.DeclareModule)
	return Replace(seed(&model.TSModuleDeclaration{ID: d.ID, Body: d.Body}, n))
}

// exitDeclareModuleExports declares the exported value under a local name
// and assigns it as the module export.
func exitDeclareModuleExports(_ *State, n, parent model.Node) Result {
	d := n.(*model.DeclareModuleExports)
	id := &model.Identifier{Name: "exports", TypeAnnotation: d.TypeAnnotation}
	decl := seed(&model.VariableDeclaration{
		Declare:      !inModule(parent),
		DeclKind:     "const",
		Declarations: []model.Node{&model.VariableDeclarator{ID: id}},
	}, n)
	return Splice(decl, &model.TSExportAssignment{Expression: model.Ident("exports")})
}

func exitDeclareVariable(_ *State, n, parent model.Node) Result {
	d := n.(*model.DeclareVariable)
	kind := d.DeclKind
	if kind == "" {
		kind = "var"
	}
	declarator := model.WithSpan(&model.VariableDeclarator{ID: d.ID}, d.ID)
	return Replace(seed(&model.VariableDeclaration{
		Declare:      !inModule(parent),
		DeclKind:     kind,
		Declarations: []model.Node{declarator},
	}, n))
}

// exitDeclareFunction takes parameters and return type from the converted
// function type annotating the declared name.
func exitDeclareFunction(st *State, n, parent model.Node) Result {
	d := n.(*model.DeclareFunction)
	if d.Predicate != nil {
		st.Warn(d.Predicate, "removing %checks")
	}
	isExported, _ := exported(parent)
	out := &model.TSDeclareFunction{Declare: !isExported && !inModule(parent)}
	if id, ok := d.ID.(*model.Identifier); ok {
		out.ID = model.WithSpan(model.Ident(id.Name), id)
		if fn, ok := unwrap(id.TypeAnnotation).(*model.TSFunctionType); ok {
			out.TypeParameters = fn.TypeParameters
			out.Params = fn.Parameters
			out.ReturnType = fn.ReturnType
		}
	}
	return Replace(seed(out, n))
}

func exitDeclareClass(st *State, n, parent model.Node) Result {
	d := n.(*model.DeclareClass)
	_, isDefault := exported(parent)
	out := &model.ClassDeclaration{Declare: !isDefault && !inModule(parent)}
	out.ID = d.ID
	out.TypeParameters = d.TypeParameters
	out.Implements = d.Implements
	out.Body = d.Body
	if len(d.Extends) > 1 {
		st.Warn(d.Extends[1], "a class can only extend one class, dropping the rest")
	}
	if len(d.Extends) > 0 {
		if h, ok := d.Extends[0].(*model.TSExpressionWithTypeArguments); ok {
			out.SuperClass = h.Expression
			out.SuperTypeParameters = h.TypeParameters
		}
	}
	return Replace(seed(out, n))
}

func exitDeclareTypeAlias(_ *State, n, parent model.Node) Result {
	d := n.(*model.DeclareTypeAlias)
	isExported, _ := exported(parent)
	return Replace(seed(&model.TSTypeAliasDeclaration{
		Declare:        !isExported && !inModule(parent),
		ID:             d.ID,
		TypeParameters: d.TypeParameters,
		TypeAnnotation: d.Right,
	}, n))
}

func exitDeclareOpaqueType(st *State, n, parent model.Node) Result {
	d := n.(*model.DeclareOpaqueType)
	st.Warn(n, "opaque type is not supported, converting to a type alias")
	right := d.Supertype
	if right == nil {
		right = model.Keyword("unknown")
	}
	isExported, _ := exported(parent)
	return Replace(seed(&model.TSTypeAliasDeclaration{
		Declare:        !isExported && !inModule(parent),
		ID:             d.ID,
		TypeParameters: d.TypeParameters,
		TypeAnnotation: right,
	}, n))
}

func exitDeclareExport(_ *State, n, _ model.Node) Result {
	d := n.(*model.DeclareExportDeclaration)
	if d.Default {
		return Replace(seed(&model.ExportDefaultDeclaration{Declaration: d.Declaration}, n))
	}
	stripSuffix(d.Source)
	return Replace(seed(&model.ExportNamedDeclaration{
		ExportKind:  "value",
		Declaration: d.Declaration,
		Specifiers:  d.Specifiers,
		Source:      d.Source,
	}, n))
}
