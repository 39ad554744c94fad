package parser

import (
	"fmt"

	"github.com/cmmoran/flowts/internal/model"
)

// jsxAfter selects how the token following an element's final ">" is
// scanned, which depends on where the element appears.
type jsxAfter int

const (
	jsxAfterNormal jsxAfter = iota // expression position
	jsxAfterTag                    // attribute value
	jsxAfterChild                  // child of another element
)

// parseJSX parses an element or fragment whose "<" is the current token.
func (p *parser) parseJSX(after jsxAfter) model.Node {
	start := p.tok.start
	p.nextTag()
	return p.parseJSXElementAt(start, after)
}

// finishJSX ends n at the current ">" and moves past it.
func (p *parser) finishJSX(n model.Node, start model.Position, after jsxAfter) model.Node {
	if !p.is(">") {
		p.fail(fmt.Sprintf("expected %q, found %q", ">", p.tok.text))
	}
	n.Base().Span = model.Span{Start: start, End: p.tok.end}
	switch after {
	case jsxAfterNormal:
		p.next()
	case jsxAfterTag:
		p.nextTag()
	}
	return n
}

// parseJSXElementAt continues an element after its opening "<".
func (p *parser) parseJSXElementAt(start model.Position, after jsxAfter) model.Node {
	if p.is(">") {
		children, _ := p.parseJSXChildren()
		p.nextTag()
		return p.finishJSX(&model.JSXFragment{Children: children}, start, after)
	}

	open := &model.JSXOpeningElement{Name: p.parseJSXElementName()}
	for !p.is(">") && !p.is("/") {
		if p.tok.kind == tEOF {
			p.unexpected()
		}
		open.Attributes = append(open.Attributes, p.parseJSXAttribute())
	}
	el := &model.JSXElement{Opening: open}
	if p.is("/") {
		p.nextTag()
		open.SelfClosing = true
		open.Span = model.Span{Start: start, End: p.tok.end}
		return p.finishJSX(el, start, after)
	}
	open.Span = model.Span{Start: start, End: p.tok.end}

	var closeStart model.Position
	el.Children, closeStart = p.parseJSXChildren()
	p.nextTag()
	closing := &model.JSXClosingElement{Name: p.parseJSXElementName()}
	if got, want := jsxName(closing.Name), jsxName(open.Name); got != want {
		p.fail(fmt.Sprintf("expected corresponding closing tag for <%s>", want))
	}
	closing.Span = model.Span{Start: closeStart, End: p.tok.end}
	el.Closing = closing
	return p.finishJSX(el, start, after)
}

// parseJSXChildren scans children until a closing tag. It returns with the
// "/" of the closing tag as the current token.
func (p *parser) parseJSXChildren() ([]model.Node, model.Position) {
	var children []model.Node
	for {
		p.nextChild()
		start := p.tok.start
		switch {
		case p.tok.kind == tEOF:
			p.fail("unterminated JSX contents")
		case p.tok.kind == tJSXText:
			children = append(children, &model.JSXText{
				NodeBase: model.NodeBase{Span: model.Span{Start: start, End: p.tok.end}},
				Raw:      p.tok.text,
			})
		case p.is("{"):
			p.next()
			c := &model.JSXExpressionContainer{}
			if !p.is("}") {
				c.Expression = p.parseExpression()
			}
			if !p.is("}") {
				p.unexpected()
			}
			c.Span = model.Span{Start: start, End: p.tok.end}
			children = append(children, c)
		case p.is("<"):
			p.nextTag()
			if p.is("/") {
				return children, start
			}
			children = append(children, p.parseJSXElementAt(start, jsxAfterChild))
		}
	}
}

func (p *parser) parseJSXIdentifier() model.Node {
	if p.tok.kind != tName {
		p.fail(fmt.Sprintf("expected JSX name, found %q", p.tok.text))
	}
	id := &model.JSXIdentifier{
		NodeBase: model.NodeBase{Span: model.Span{Start: p.tok.start, End: p.tok.end}},
		Name:     p.tok.text,
	}
	p.nextTag()
	return id
}

func (p *parser) parseJSXElementName() model.Node {
	start := p.tok.start
	name := p.parseJSXIdentifier()
	if p.is(":") {
		p.nextTag()
		local := p.parseJSXIdentifier()
		return &model.JSXNamespacedName{
			NodeBase:  model.NodeBase{Span: model.Span{Start: start, End: local.Base().Span.End}},
			Namespace: name,
			Name:      local,
		}
	}
	for p.is(".") {
		p.nextTag()
		prop := p.parseJSXIdentifier()
		name = &model.JSXMemberExpression{
			NodeBase: model.NodeBase{Span: model.Span{Start: start, End: prop.Base().Span.End}},
			Object:   name,
			Property: prop,
		}
	}
	return name
}

func (p *parser) parseJSXAttribute() model.Node {
	start := p.tok.start
	if p.is("{") {
		p.next()
		p.expect("...")
		arg := p.parseAssign()
		if !p.is("}") {
			p.unexpected()
		}
		attr := &model.JSXSpreadAttribute{
			NodeBase: model.NodeBase{Span: model.Span{Start: start, End: p.tok.end}},
			Argument: arg,
		}
		p.nextTag()
		return attr
	}

	attr := &model.JSXAttribute{Name: p.parseJSXIdentifier()}
	if p.is(":") {
		p.nextTag()
		local := p.parseJSXIdentifier()
		attr.Name = &model.JSXNamespacedName{
			NodeBase:  model.NodeBase{Span: model.Span{Start: start, End: local.Base().Span.End}},
			Namespace: attr.Name,
			Name:      local,
		}
	}
	end := attr.Name.Base().Span.End
	if p.is("=") {
		p.nextTag()
		vstart := p.tok.start
		switch {
		case p.tok.kind == tString:
			attr.Value = &model.StringLiteral{
				NodeBase: model.NodeBase{Span: model.Span{Start: vstart, End: p.tok.end}},
				Value:    p.tok.value,
				Raw:      p.tok.text,
			}
			end = p.tok.end
			p.nextTag()
		case p.is("{"):
			p.next()
			c := &model.JSXExpressionContainer{Expression: p.parseAssign()}
			if !p.is("}") {
				p.unexpected()
			}
			c.Span = model.Span{Start: vstart, End: p.tok.end}
			attr.Value = c
			end = p.tok.end
			p.nextTag()
		case p.is("<"):
			p.nextTag()
			attr.Value = p.parseJSXElementAt(vstart, jsxAfterTag)
			end = attr.Value.Base().Span.End
		default:
			p.unexpected()
		}
	}
	attr.Span = model.Span{Start: start, End: end}
	return attr
}

// jsxName flattens an element name for matching opening and closing tags.
func jsxName(n model.Node) string {
	switch n := n.(type) {
	case *model.JSXIdentifier:
		return n.Name
	case *model.JSXNamespacedName:
		return jsxName(n.Namespace) + ":" + jsxName(n.Name)
	case *model.JSXMemberExpression:
		return jsxName(n.Object) + "." + jsxName(n.Property)
	}
	return ""
}
