package printer

import (
	"github.com/cmmoran/flowts/internal/model"
)

// annotation prints ": T" for a type annotation slot.
func (p *printer) annotation(n model.Node) {
	if model.IsNil(n) {
		return
	}
	p.write(": ")
	p.node(n)
}

func (p *printer) tsType(n model.Node) bool {
	switch n := n.(type) {
	case *model.TSTypeAnnotation:
		p.node(n.TypeAnnotation)
	case *model.TSKeyword:
		p.write(n.Name)
	case *model.TSLiteralType:
		p.node(n.Literal)
	case *model.TSUnionType:
		p.joinTypes(n, n.Types, " | ")
	case *model.TSIntersectionType:
		p.joinTypes(n, n.Types, " & ")
	case *model.TSArrayType:
		p.operand(n, n.ElementType)
		p.write("[]")
	case *model.TSTupleType:
		p.list(nil, n.ElementTypes, listStyle{
			open:     "[",
			close:    "]",
			trailing: p.f.es5Commas(),
		})
	case *model.TSFunctionType:
		p.node(n.TypeParameters)
		p.params(n.Parameters)
		p.write(" => ")
		p.node(n.ReturnType)
	case *model.TSParenthesizedType:
		p.write("(")
		p.node(n.TypeAnnotation)
		p.write(")")
	case *model.TSTypeReference:
		p.node(n.TypeName)
		p.node(n.TypeParameters)
	case *model.TSQualifiedName:
		p.node(n.Left)
		p.write(".")
		p.node(n.Right)
	case *model.TSTypeLiteral:
		p.members(n, n.Members, expanded(n, n.Members))
	case *model.TSPropertySignature:
		p.modifiers(n.Static, n.Readonly)
		p.key(n.Key, n.Computed)
		if n.Optional {
			p.write("?")
		}
		p.annotation(n.TypeAnnotation)
	case *model.TSMethodSignature:
		p.modifiers(n.Static, false)
		if n.Method == "get" || n.Method == "set" {
			p.write(n.Method + " ")
		}
		p.key(n.Key, n.Computed)
		if n.Optional {
			p.write("?")
		}
		p.node(n.TypeParameters)
		p.params(n.Parameters)
		p.annotation(n.TypeAnnotation)
	case *model.TSIndexSignature:
		p.modifiers(n.Static, n.Readonly)
		p.list(nil, n.Parameters, listStyle{open: "[", close: "]"})
		p.annotation(n.TypeAnnotation)
	case *model.TSCallSignatureDeclaration:
		p.node(n.TypeParameters)
		p.params(n.Parameters)
		p.annotation(n.TypeAnnotation)
	case *model.TSMappedType:
		p.mappedType(n)
	case *model.TSTypeOperator:
		p.write(n.Operator + " ")
		p.operand(n, n.TypeAnnotation)
	case *model.TSIndexedAccessType:
		p.operand(n, n.ObjectType)
		p.write("[")
		p.node(n.IndexType)
		p.write("]")
	case *model.TSTypeQuery:
		p.write("typeof ")
		p.node(n.ExprName)
	case *model.TSImportType:
		p.write("import(")
		p.node(n.Argument)
		p.write(")")
		if n.Qualifier != nil {
			p.write(".")
			p.node(n.Qualifier)
		}
	case *model.TSTypeParameterDeclaration:
		p.typeList(n.Params)
	case *model.TSTypeParameterInstantiation:
		p.typeList(n.Params)
	case *model.TSTypeParameter:
		p.write(n.Name)
		if n.Constraint != nil {
			p.write(" extends ")
			p.node(n.Constraint)
		}
		if n.Default != nil {
			p.write(" = ")
			p.node(n.Default)
		}
	case *model.TSExpressionWithTypeArguments:
		p.node(n.Expression)
		p.node(n.TypeParameters)
	case *model.TSAsExpression:
		p.write("(")
		p.node(n.Expression)
		p.write(" as ")
		p.node(n.TypeAnnotation)
		p.write(")")
	default:
		return false
	}
	return true
}

func (p *printer) tsDeclaration(n model.Node) bool {
	switch n := n.(type) {
	case *model.TSTypeAliasDeclaration:
		if n.Declare {
			p.write("declare ")
		}
		p.write("type ")
		p.node(n.ID)
		p.node(n.TypeParameters)
		p.aliasBody(n.TypeAnnotation)
		p.semi()
	case *model.TSInterfaceDeclaration:
		if n.Declare {
			p.write("declare ")
		}
		p.write("interface ")
		p.node(n.ID)
		p.node(n.TypeParameters)
		if len(n.Extends) > 0 {
			p.write(" extends ")
			for i, e := range n.Extends {
				if i > 0 {
					p.write(", ")
				}
				p.node(e)
			}
		}
		p.write(" ")
		p.node(n.Body)
	case *model.TSInterfaceBody:
		p.members(n, n.Body, true)
	case *model.TSDeclareFunction:
		if n.Declare {
			p.write("declare ")
		}
		p.write("function ")
		p.node(n.ID)
		p.node(n.TypeParameters)
		p.params(n.Params)
		p.annotation(n.ReturnType)
		p.semi()
	case *model.TSModuleDeclaration:
		p.write("declare module ")
		p.node(n.ID)
		p.write(" ")
		p.braced(n, n.Body)
	case *model.TSExportAssignment:
		p.write("export = ")
		p.node(n.Expression)
		p.semi()
	default:
		return false
	}
	return true
}

func (p *printer) modifiers(static, readonly bool) {
	if static {
		p.write("static ")
	}
	if readonly {
		p.write("readonly ")
	}
}

// members prints the body of a type literal, interface or ambient class.
func (p *printer) members(owner model.Node, items []model.Node, expand bool) {
	p.list(owner, items, listStyle{
		open:    "{",
		close:   "}",
		pad:     p.f.BracketSpacing,
		members: true,
		expand:  expand,
	})
}

func (p *printer) typeList(params []model.Node) {
	p.list(nil, params, listStyle{
		open:     "<",
		close:    ">",
		trailing: p.f.allCommas(),
	})
}

func (p *printer) mappedType(n *model.TSMappedType) {
	p.write("{")
	if p.f.BracketSpacing {
		p.write(" ")
	}
	if n.Readonly {
		p.write("readonly ")
	}
	p.write("[")
	if tp, ok := n.TypeParameter.(*model.TSTypeParameter); ok {
		p.write(tp.Name + " in ")
		p.node(tp.Constraint)
	}
	p.write("]")
	if n.Optional {
		p.write("?")
	}
	p.annotation(n.TypeAnnotation)
	if p.f.BracketSpacing {
		p.write(" ")
	}
	p.write("}")
}

// aliasBody prints "= T" for a type alias. A union that does not fit on the
// line is broken with one member per line.
func (p *printer) aliasBody(t model.Node) {
	u, ok := t.(*model.TSUnionType)
	if !ok || len(u.Types) < 2 || u.HasComments() || p.fits(func(q *printer) {
		q.write(" = ")
		q.node(u)
	}) {
		p.write(" = ")
		p.node(t)
		return
	}
	p.write(" =")
	p.depth++
	for _, m := range u.Types {
		p.newline()
		p.write("| ")
		p.operand(u, m)
	}
	p.depth--
}

func (p *printer) joinTypes(parent model.Node, types []model.Node, sep string) {
	for i, t := range types {
		if i > 0 {
			p.write(sep)
		}
		p.operand(parent, t)
	}
}

// operand prints t in operand position of parent, parenthesized when its
// operator binds looser than parent's.
func (p *printer) operand(parent, t model.Node) {
	if !needsParens(parent, t) {
		p.node(t)
		return
	}
	p.write("(")
	p.node(t)
	p.write(")")
}

// needsParens reports whether type t must be parenthesized inside parent.
func needsParens(parent, t model.Node) bool {
	if a, ok := t.(*model.TSTypeAnnotation); ok {
		t = a.TypeAnnotation
	}
	switch parent.(type) {
	case *model.TSArrayType, *model.TSIndexedAccessType:
		switch t.(type) {
		case *model.TSUnionType, *model.TSIntersectionType, *model.TSFunctionType, *model.TSTypeOperator:
			return true
		}
	case *model.TSTypeOperator:
		switch t.(type) {
		case *model.TSUnionType, *model.TSIntersectionType, *model.TSFunctionType:
			return true
		}
	case *model.TSIntersectionType:
		switch t.(type) {
		case *model.TSUnionType, *model.TSFunctionType:
			return true
		}
	case *model.TSUnionType:
		_, ok := t.(*model.TSFunctionType)
		return ok
	}
	return false
}
