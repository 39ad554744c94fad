package transform

import (
	"strings"

	"github.com/cmmoran/flowts/internal/model"
)

// enterObjectType gives the last member the comments that follow it inside
// the braces, which the parser leaves unattached when no member follows.
func enterObjectType(st *State, n, _ model.Node) Result {
	obj := n.(*model.ObjectTypeAnnotation)
	if len(obj.Members) > 0 {
		st.recoverTrailing(obj.Members[len(obj.Members)-1], obj.Span.End.Line)
	}
	return Keep()
}

// exitObjectType chooses between a record, an intersection of spread
// operands and a type literal. Interface and declared class bodies always
// become a type literal.
func exitObjectType(st *State, n, parent model.Node) Result {
	obj := n.(*model.ObjectTypeAnnotation)
	if obj.Exact {
		st.Warn(n, "downgrading exact object type")
	}
	bodyOnly := false
	switch parent.(type) {
	case *model.InterfaceDeclaration, *model.DeclareClass:
		bodyOnly = true
	}

	var elements, spreads []model.Node
	for _, m := range obj.Members {
		switch m := m.(type) {
		case *model.ObjectTypeSpreadProperty:
			if bodyOnly {
				st.Warn(m, "spread in an interface body is not supported, dropping it")
				continue
			}
			spreads = append(spreads, m.Argument)
		case *model.TSIndexSignature:
			switch {
			case indexKey(m):
				elements = append(elements, m)
			case bodyOnly:
				st.Warn(m, "mapped key in an interface body is not supported")
				elements = append(elements, m)
			default:
				spreads = append(spreads, mappedType(m))
			}
		default:
			elements = append(elements, m)
		}
	}

	if bodyOnly {
		return Replace(seed(&model.TSTypeLiteral{Members: elements}, n))
	}
	if len(spreads) == 0 && len(elements) == 1 {
		if ix, ok := elements[0].(*model.TSIndexSignature); ok && !ix.Static {
			return Replace(seed(record(ix), n))
		}
	}
	switch {
	case len(spreads) > 0 && len(elements) > 0:
		lit := model.WithSpan(&model.TSTypeLiteral{Members: elements}, n)
		return Replace(seed(&model.TSIntersectionType{Types: append(spreads, lit)}, n))
	case len(spreads) == 1:
		return Replace(seed(spreads[0], n))
	case len(spreads) > 0:
		return Replace(seed(&model.TSIntersectionType{Types: spreads}, n))
	}
	return Replace(seed(&model.TSTypeLiteral{Members: elements}, n))
}

// indexKey reports whether the key of ix is valid in an index signature.
func indexKey(ix *model.TSIndexSignature) bool {
	switch k := indexParam(ix).(type) {
	case *model.TSKeyword:
		return k.Name == "string" || k.Name == "number" || k.Name == "symbol"
	case *model.TSTypeReference:
		return true
	}
	return false
}

func indexParam(ix *model.TSIndexSignature) model.Node {
	if len(ix.Parameters) == 0 {
		return nil
	}
	if id, ok := ix.Parameters[0].(*model.Identifier); ok {
		return unwrap(id.TypeAnnotation)
	}
	return nil
}

func indexName(ix *model.TSIndexSignature) string {
	if len(ix.Parameters) > 0 {
		if id, ok := ix.Parameters[0].(*model.Identifier); ok {
			return id.Name
		}
	}
	return "key"
}

// mappedType turns an indexer over an arbitrary key type into an optional
// mapped type over the same key.
func mappedType(ix *model.TSIndexSignature) model.Node {
	return model.WithSpan(&model.TSMappedType{
		TypeParameter:  &model.TSTypeParameter{Name: indexName(ix), Constraint: indexParam(ix)},
		TypeAnnotation: unwrap(ix.TypeAnnotation),
		Optional:       true,
		Readonly:       ix.Readonly,
	}, ix)
}

func record(ix *model.TSIndexSignature) model.Node {
	rec := model.TypeRef(model.Ident("Record"), indexParam(ix), unwrap(ix.TypeAnnotation))
	if ix.Readonly {
		return model.TypeRef(model.Ident("Readonly"), rec)
	}
	return rec
}

// readonly converts a variance marker. Write-only has no equivalent and is
// dropped.
func (st *State) readonly(v model.Node) bool {
	vr, ok := v.(*model.Variance)
	if !ok {
		return false
	}
	if !vr.Plus {
		st.Warn(v, "write-only variance is not supported, dropping it")
	}
	return vr.Plus
}

// propertyKey rewrites "@@name" keys into the computed Symbol.name form.
func propertyKey(key model.Node) (model.Node, bool) {
	id, ok := key.(*model.Identifier)
	if !ok || !strings.HasPrefix(id.Name, "@@") {
		return key, false
	}
	return model.WithSpan(&model.MemberExpression{
		Object:   model.Ident("Symbol"),
		Property: model.Ident(strings.TrimPrefix(id.Name, "@@")),
	}, key), true
}

func exitObjectTypeProperty(st *State, n, _ model.Node) Result {
	p := n.(*model.ObjectTypeProperty)
	key, computed := propertyKey(p.Key)
	if p.Method || p.Accessor != "" {
		m := &model.TSMethodSignature{
			Method:   "method",
			Key:      key,
			Computed: computed,
			Optional: p.Optional,
			Static:   p.Static,
		}
		if p.Accessor != "" {
			m.Method = p.Accessor
		}
		if fn, ok := p.Value.(*model.TSFunctionType); ok {
			m.TypeParameters = fn.TypeParameters
			m.Parameters = fn.Parameters
			if m.Method != "set" {
				m.TypeAnnotation = fn.ReturnType
			}
		}
		return Replace(seed(m, n))
	}
	return Replace(seed(&model.TSPropertySignature{
		Key:            key,
		TypeAnnotation: model.Annotate(p.Value),
		Computed:       computed,
		Optional:       p.Optional,
		Readonly:       st.readonly(p.Variance),
		Static:         p.Static,
	}, n))
}

func exitObjectTypeIndexer(st *State, n, _ model.Node) Result {
	ix := n.(*model.ObjectTypeIndexer)
	param := model.Ident("key")
	if id, ok := ix.ID.(*model.Identifier); ok {
		param = model.WithSpan(model.Ident(id.Name), id)
	}
	param.TypeAnnotation = model.Annotate(ix.Key)
	return Replace(seed(&model.TSIndexSignature{
		Parameters:     []model.Node{param},
		TypeAnnotation: model.Annotate(ix.Value),
		Readonly:       st.readonly(ix.Variance),
		Static:         ix.Static,
	}, n))
}

func exitObjectTypeCallProperty(st *State, n, _ model.Node) Result {
	c := n.(*model.ObjectTypeCallProperty)
	if c.Static {
		st.Warn(n, "static call signature is not supported, dropping static")
	}
	sig := &model.TSCallSignatureDeclaration{}
	if fn, ok := c.Value.(*model.TSFunctionType); ok {
		sig.TypeParameters = fn.TypeParameters
		sig.Parameters = fn.Parameters
		sig.TypeAnnotation = fn.ReturnType
	}
	return Replace(seed(sig, n))
}
