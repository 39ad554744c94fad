package transform

import (
	"github.com/cmmoran/flowts/internal/model"
)

func functionOf(n model.Node) *model.Function {
	switch f := n.(type) {
	case *model.FunctionDeclaration:
		return &f.Function
	case *model.FunctionExpression:
		return &f.Function
	case *model.ArrowFunctionExpression:
		return &f.Function
	case *model.ObjectMethod:
		return &f.Function
	case *model.ClassMethod:
		return &f.Function
	}
	return nil
}

// enterFunction edits the function in place before its children are
// visited: "%checks" predicates are removed and parameters with a default
// lose their optional marker.
func enterFunction(st *State, n, _ model.Node) Result {
	f := functionOf(n)
	if f == nil {
		return Keep()
	}
	if f.Predicate != nil {
		st.Warn(f.Predicate, "removing %checks")
		f.Predicate = nil
	}
	for _, p := range f.Params {
		ap, ok := p.(*model.AssignmentPattern)
		if !ok {
			continue
		}
		if id, ok := ap.Left.(*model.Identifier); ok {
			id.Optional = false
		}
	}
	return Keep()
}

func enterClassProperty(st *State, n, _ model.Node) Result {
	p := n.(*model.ClassProperty)
	if p.Variance != nil {
		if st.readonly(p.Variance) {
			p.Readonly = true
		}
		p.Variance = nil
	}
	return Keep()
}

func exitTypeCast(_ *State, n, _ model.Node) Result {
	tc := n.(*model.TypeCastExpression)
	return Replace(seed(&model.TSAsExpression{
		Expression:     tc.Expression,
		TypeAnnotation: unwrap(tc.TypeAnnotation),
	}, n))
}
