package parser

import (
	"github.com/cmmoran/flowts/internal/model"
)

// commentList is a node owning an ordered list of children that comments can
// attach to.
type commentList struct {
	owner    model.Node
	items    []model.Node
	typeBody bool
	// span narrows the region the list claims comments from. It is the span
	// of owner when unset.
	span model.Span
}

func (l commentList) region() model.Span {
	if l.span.Valid() {
		return l.span
	}
	return l.owner.Base().Span
}

// paramList claims the comments between the parameters of fn, from the end
// of its name or type parameters to the start of its return type or body.
func paramList(owner model.Node, fn *model.Function, key model.Node) (commentList, bool) {
	if len(fn.Params) == 0 {
		return commentList{}, false
	}
	span := owner.Base().Span
	for _, n := range []model.Node{key, fn.ID, fn.TypeParameters} {
		if !model.IsNil(n) && n.Base().Span.End.Offset > span.Start.Offset {
			span.Start = n.Base().Span.End
		}
	}
	switch {
	case !model.IsNil(fn.ReturnType):
		span.End = fn.ReturnType.Base().Span.Start
	case !model.IsNil(fn.Body):
		span.End = fn.Body.Base().Span.Start
	}
	return commentList{owner: owner, items: fn.Params, span: span}, true
}

func listOf(n model.Node) (commentList, bool) {
	switch n := n.(type) {
	case *model.Program:
		return commentList{owner: n, items: n.Body}, true
	case *model.BlockStatement:
		return commentList{owner: n, items: n.Body}, true
	case *model.DeclareModule:
		return commentList{owner: n, items: n.Body}, true
	case *model.TSModuleDeclaration:
		return commentList{owner: n, items: n.Body}, true
	case *model.SwitchStatement:
		return commentList{owner: n, items: n.Cases}, true
	case *model.SwitchCase:
		return commentList{owner: n, items: n.Consequent}, true
	case *model.ClassBody:
		return commentList{owner: n, items: n.Body}, true
	case *model.ObjectExpression:
		return commentList{owner: n, items: n.Properties}, true
	case *model.ObjectTypeAnnotation:
		return commentList{owner: n, items: n.Members, typeBody: true}, true
	case *model.FunctionDeclaration:
		return paramList(n, &n.Function, nil)
	case *model.FunctionExpression:
		return paramList(n, &n.Function, nil)
	case *model.ArrowFunctionExpression:
		return paramList(n, &n.Function, nil)
	case *model.ObjectMethod:
		return paramList(n, &n.Function, n.Key)
	case *model.ClassMethod:
		return paramList(n, &n.Function, n.Key)
	case *model.JSXExpressionContainer:
		if n.Expression == nil {
			return commentList{owner: n}, true
		}
	}
	return commentList{}, false
}

func within(c *model.Comment, s model.Span) bool {
	return c.Span.Start.Offset >= s.Start.Offset && c.Span.End.Offset <= s.End.Offset
}

// attachComments distributes comments over the lists that own them, innermost
// lists first.
//
// A comment before the first item leads it. A comment between two items
// trails the previous item when it starts on the line where that item ends;
// otherwise it is recorded as trailing the previous item and leading the next
// one, and the duplicate is resolved once the rewrite knows which owners
// survive. A comment after the last item trails it, except in object types
// where an own-line comment is left for the line index to recover. Comments
// inside an item that no inner list claims lead that item, and comments in an
// empty list become its inner comments.
func attachComments(prog *model.Program, comments []*model.Comment) {
	if len(comments) == 0 {
		return
	}
	var lists []commentList
	model.Walk(prog, func(n model.Node) bool {
		if l, ok := listOf(n); ok {
			lists = append(lists, l)
		}
		return true
	})

	claimed := make(map[*model.Comment]bool, len(comments))
	for i := len(lists) - 1; i >= 0; i-- {
		l := lists[i]
		span := l.region()
		for _, c := range comments {
			if claimed[c] || !within(c, span) {
				continue
			}
			claimed[c] = true
			attachToList(l, c)
		}
	}
}

func attachToList(l commentList, c *model.Comment) {
	var items []model.Node
	for _, it := range l.items {
		if it != nil {
			items = append(items, it)
		}
	}
	if len(items) == 0 {
		b := l.owner.Base()
		b.Inner = append(b.Inner, c)
		return
	}

	for i, it := range items {
		s := it.Base().Span
		if within(c, s) {
			b := it.Base()
			b.Leading = append(b.Leading, c)
			return
		}
		if c.Span.End.Offset > s.Start.Offset {
			continue
		}
		// c lies before it.
		if i == 0 {
			it.Base().Leading = append(it.Base().Leading, c)
			return
		}
		prev := items[i-1].Base()
		prev.Trailing = append(prev.Trailing, c)
		if c.Span.Start.Line != prev.Span.End.Line {
			it.Base().Leading = append(it.Base().Leading, c)
		}
		return
	}

	last := items[len(items)-1].Base()
	if l.typeBody && c.Span.Start.Line != last.Span.End.Line {
		return
	}
	last.Trailing = append(last.Trailing, c)
}
