package printer

import (
	"strings"

	"github.com/cmmoran/flowts/internal/model"
)

func (p *printer) expression(n model.Node) bool {
	switch n := n.(type) {
	case *model.Identifier:
		p.write(n.Name)
		if n.Optional {
			p.write("?")
		}
		p.annotation(n.TypeAnnotation)
	case *model.PrivateName:
		p.write("#" + n.Name)
	case *model.StringLiteral:
		p.write(p.quote(n))
	case *model.NumericLiteral:
		p.write(n.Raw)
	case *model.BigIntLiteral:
		p.write(n.Raw)
	case *model.BooleanLiteral:
		if n.Value {
			p.write("true")
		} else {
			p.write("false")
		}
	case *model.NullLiteral:
		p.write("null")
	case *model.RegExpLiteral:
		p.write("/" + n.Pattern + "/" + n.Flags)
	case *model.TemplateLiteral:
		p.write("`")
		for i, q := range n.Quasis {
			p.write(q)
			if i < len(n.Expressions) {
				p.write("${")
				p.node(n.Expressions[i])
				p.write("}")
			}
		}
		p.write("`")
	case *model.TaggedTemplateExpression:
		p.node(n.Tag)
		p.node(n.TypeArguments)
		p.node(n.Quasi)
	case *model.ThisExpression:
		p.write("this")
	case *model.Super:
		p.write("super")
	case *model.Import:
		p.write("import")
	case *model.MetaProperty:
		p.write(n.Meta + "." + n.Property)
	case *model.ArrayExpression:
		p.array(n.Elements, nil)
	case *model.ObjectExpression:
		p.list(n, n.Properties, listStyle{
			open:     "{",
			close:    "}",
			pad:      p.f.BracketSpacing,
			trailing: p.f.es5Commas(),
			expand:   expanded(n, n.Properties),
		})
	case *model.ObjectProperty:
		if n.Shorthand {
			p.node(n.Value)
			break
		}
		p.key(n.Key, n.Computed)
		p.write(": ")
		p.node(n.Value)
	case *model.ObjectMethod:
		if n.Async {
			p.write("async ")
		}
		if n.Method == "get" || n.Method == "set" {
			p.write(n.Method + " ")
		}
		if n.Generator {
			p.write("*")
		}
		p.key(n.Key, n.Computed)
		p.signature(&n.Function)
		p.write(" ")
		p.node(n.Body)
	case *model.SpreadElement:
		p.write("...")
		p.node(n.Argument)
	case *model.FunctionExpression:
		p.function(&n.Function)
	case *model.ArrowFunctionExpression:
		p.arrow(n)
	case *model.ClassExpression:
		p.decorators(n.Decorators)
		p.class(&n.Class)
	case *model.UnaryExpression:
		p.write(n.Operator)
		if isWordOperator(n.Operator) || sameSign(n.Operator, n.Argument) {
			p.write(" ")
		}
		p.node(n.Argument)
	case *model.UpdateExpression:
		if n.Prefix {
			p.write(n.Operator)
			p.node(n.Argument)
		} else {
			p.node(n.Argument)
			p.write(n.Operator)
		}
	case *model.BinaryExpression:
		p.node(n.Left)
		p.write(" " + n.Operator + " ")
		p.node(n.Right)
	case *model.AssignmentExpression:
		p.node(n.Left)
		p.write(" " + n.Operator + " ")
		p.node(n.Right)
	case *model.ConditionalExpression:
		p.node(n.Test)
		p.write(" ? ")
		p.node(n.Consequent)
		p.write(" : ")
		p.node(n.Alternate)
	case *model.CallExpression:
		p.node(n.Callee)
		if n.Optional {
			p.write("?.")
		}
		p.node(n.TypeArguments)
		p.arguments(n.Arguments)
	case *model.NewExpression:
		p.write("new ")
		p.node(n.Callee)
		p.node(n.TypeArguments)
		p.arguments(n.Arguments)
	case *model.MemberExpression:
		p.node(n.Object)
		switch {
		case n.Computed && n.Optional:
			p.write("?.[")
		case n.Computed:
			p.write("[")
		case n.Optional:
			p.write("?.")
		default:
			p.write(".")
		}
		p.node(n.Property)
		if n.Computed {
			p.write("]")
		}
	case *model.SequenceExpression:
		for i, e := range n.Expressions {
			if i > 0 {
				p.write(", ")
			}
			p.node(e)
		}
	case *model.YieldExpression:
		p.write("yield")
		if n.Delegate {
			p.write("*")
		}
		if n.Argument != nil {
			p.write(" ")
			p.node(n.Argument)
		}
	case *model.AwaitExpression:
		p.write("await ")
		p.node(n.Argument)
	case *model.ParenthesizedExpression:
		p.write("(")
		p.node(n.Expression)
		p.write(")")
	case *model.ObjectPattern:
		p.list(n, n.Properties, listStyle{
			open:     "{",
			close:    "}",
			pad:      p.f.BracketSpacing,
			trailing: p.f.es5Commas(),
		})
		p.annotation(n.TypeAnnotation)
	case *model.ArrayPattern:
		p.array(n.Elements, n.TypeAnnotation)
	case *model.RestElement:
		p.write("...")
		p.node(n.Argument)
		p.annotation(n.TypeAnnotation)
	case *model.AssignmentPattern:
		p.node(n.Left)
		p.write(" = ")
		p.node(n.Right)
	case *model.Decorator:
		p.write("@")
		p.node(n.Expression)
	default:
		return false
	}
	return true
}

func (p *printer) array(elements []model.Node, ann model.Node) {
	p.list(nil, elements, listStyle{
		open:     "[",
		close:    "]",
		trailing: p.f.es5Commas(),
	})
	p.annotation(ann)
}

func (p *printer) arguments(args []model.Node) {
	p.list(nil, args, listStyle{
		open:     "(",
		close:    ")",
		trailing: p.f.allCommas(),
	})
}

func (p *printer) arrow(n *model.ArrowFunctionExpression) {
	if n.Async {
		p.write("async ")
	}
	p.node(n.TypeParameters)
	if p.arrowParens(n) {
		p.params(n.Params)
	} else {
		p.node(n.Params[0])
	}
	p.annotation(n.ReturnType)
	p.write(" => ")
	p.node(n.Body)
}

// arrowParens decides whether the parameters of an arrow function are
// parenthesized. Only a lone plain identifier may go without.
func (p *printer) arrowParens(n *model.ArrowFunctionExpression) bool {
	if len(n.Params) != 1 || n.TypeParameters != nil || n.ReturnType != nil {
		return true
	}
	id, ok := n.Params[0].(*model.Identifier)
	if !ok || id.Optional || id.TypeAnnotation != nil || id.HasComments() {
		return true
	}
	if p.f.Prettier {
		return p.f.ArrowParens == ArrowParensAlways
	}
	return n.Parens
}

// key prints a property key, bracketing computed keys.
func (p *printer) key(k model.Node, computed bool) {
	if computed {
		p.write("[")
		p.node(k)
		p.write("]")
		return
	}
	p.node(k)
}

func isWordOperator(op string) bool {
	return op == "typeof" || op == "void" || op == "delete"
}

// sameSign reports whether printing op directly before arg would merge two
// operators into one token, as in "- -x" or "+ ++x".
func sameSign(op string, arg model.Node) bool {
	var inner string
	switch a := arg.(type) {
	case *model.UnaryExpression:
		inner = a.Operator
	case *model.UpdateExpression:
		if !a.Prefix {
			return false
		}
		inner = a.Operator
	default:
		return false
	}
	return (op == "-" || op == "+") && strings.HasPrefix(inner, op)
}

// ---------------------------------------------------------------------------
// STRINGS
// ---------------------------------------------------------------------------

// quote renders a string literal. Source quotes are kept unless the format
// normalizes them; synthesized literals use the preferred quote.
func (p *printer) quote(n *model.StringLiteral) string {
	if n.Raw != "" && !p.f.Prettier {
		return n.Raw
	}
	q := byte('"')
	if p.f.SingleQuote {
		q = '\''
	}
	if n.Raw == "" {
		return escape(n.Value, q)
	}
	alt := byte('\'')
	if q == '\'' {
		alt = '"'
	}
	if strings.Count(n.Value, string(q)) > strings.Count(n.Value, string(alt)) {
		q = alt
	}
	return requote(n.Raw, q)
}

// requote changes the delimiters of a raw string literal to q, adjusting the
// escapes of both quote characters.
func requote(raw string, q byte) string {
	if len(raw) < 2 || raw[0] == q {
		return raw
	}
	orig := raw[0]
	body := raw[1 : len(raw)-1]
	var sb strings.Builder
	sb.WriteByte(q)
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch {
		case c == '\\' && i+1 < len(body):
			if body[i+1] == orig {
				sb.WriteByte(orig)
			} else {
				sb.WriteByte(c)
				sb.WriteByte(body[i+1])
			}
			i++
		case c == q:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

func escape(value string, q byte) string {
	var sb strings.Builder
	sb.WriteByte(q)
	for i := 0; i < len(value); i++ {
		switch c := value[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case q:
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}

// ---------------------------------------------------------------------------
// JSX
// ---------------------------------------------------------------------------

func (p *printer) jsx(n model.Node) bool {
	switch n := n.(type) {
	case *model.JSXElement:
		p.node(n.Opening)
		for _, c := range n.Children {
			p.node(c)
		}
		p.node(n.Closing)
	case *model.JSXOpeningElement:
		p.write("<")
		p.node(n.Name)
		p.node(n.TypeArguments)
		for _, a := range n.Attributes {
			p.write(" ")
			p.node(a)
		}
		if n.SelfClosing {
			p.write(" />")
		} else {
			p.write(">")
		}
	case *model.JSXClosingElement:
		p.write("</")
		p.node(n.Name)
		p.write(">")
	case *model.JSXFragment:
		p.write("<>")
		for _, c := range n.Children {
			p.node(c)
		}
		p.write("</>")
	case *model.JSXAttribute:
		p.node(n.Name)
		if n.Value == nil {
			break
		}
		p.write("=")
		if s, ok := n.Value.(*model.StringLiteral); ok && s.Raw != "" {
			p.write(s.Raw)
			break
		}
		p.node(n.Value)
	case *model.JSXSpreadAttribute:
		p.write("{...")
		p.node(n.Argument)
		p.write("}")
	case *model.JSXIdentifier:
		p.write(n.Name)
	case *model.JSXMemberExpression:
		p.node(n.Object)
		p.write(".")
		p.node(n.Property)
	case *model.JSXNamespacedName:
		p.node(n.Namespace)
		p.write(":")
		p.node(n.Name)
	case *model.JSXExpressionContainer:
		p.write("{")
		if n.Expression == nil {
			for i, c := range n.Inner {
				if i > 0 {
					p.write(" ")
				}
				p.comment(c)
			}
		} else {
			p.node(n.Expression)
		}
		p.write("}")
	case *model.JSXText:
		p.write(n.Raw)
	default:
		return false
	}
	return true
}
