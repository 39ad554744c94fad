package parser

import (
	"strings"

	"github.com/cmmoran/flowts/internal/model"
)

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"**=": true, "<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true,
	"^=": true, "&&=": true, "||=": true, "??=": true,
}

var binaryPrec = map[string]int{
	"??": 1,
	"||": 2,
	"&&": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"==": 7, "!=": 7, "===": 7, "!==": 7,
	"<": 8, ">": 8, "<=": 8, ">=": 8, "instanceof": 8, "in": 8,
	"<<": 9, ">>": 9, ">>>": 9,
	"+": 10, "-": 10,
	"*": 11, "/": 11, "%": 11,
	"**": 12,
}

func (p *parser) parseExpression() model.Node {
	start := p.tok.start
	e := p.parseAssign()
	if !p.is(",") {
		return e
	}
	seq := &model.SequenceExpression{Expressions: []model.Node{e}}
	for p.eat(",") {
		seq.Expressions = append(seq.Expressions, p.parseAssign())
	}
	return done(p, seq, start)
}

func (p *parser) parseAssign() model.Node {
	start := p.tok.start
	if p.isWord("yield") && p.inGenerator {
		return p.parseYield(start)
	}
	if arrow := p.tryArrow(); arrow != nil {
		return arrow
	}
	left := p.parseConditional()
	if p.tok.kind == tPunct && assignOps[p.tok.text] {
		op := p.tok.text
		p.next()
		right := p.parseAssign()
		return done(p, &model.AssignmentExpression{Operator: op, Left: toAssignable(left), Right: right}, start)
	}
	return left
}

func (p *parser) parseYield(start model.Position) model.Node {
	p.next()
	y := &model.YieldExpression{}
	if p.tok.nlBefore {
		return done(p, y, start)
	}
	y.Delegate = p.eat("*")
	if y.Delegate || !(p.is(")") || p.is("]") || p.is("}") || p.is(",") || p.is(";") || p.is(":") || p.tok.kind == tEOF) {
		y.Argument = p.parseAssign()
	}
	return done(p, y, start)
}

func (p *parser) parseConditional() model.Node {
	start := p.tok.start
	test := p.parseBinary(0)
	if !p.is("?") {
		return test
	}
	p.next()
	noIn := p.noIn
	p.noIn = false
	cons := p.parseAssign()
	p.noIn = noIn
	p.expect(":")
	alt := p.parseAssign()
	return done(p, &model.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, start)
}

func (p *parser) binaryOp() (string, int) {
	switch p.tok.kind {
	case tPunct:
		prec, ok := binaryPrec[p.tok.text]
		if ok {
			return p.tok.text, prec
		}
	case tName:
		if p.tok.text == "instanceof" || (p.tok.text == "in" && !p.noIn) {
			return p.tok.text, binaryPrec[p.tok.text]
		}
	}
	return "", 0
}

func (p *parser) parseBinary(minPrec int) model.Node {
	start := p.tok.start
	left := p.parseUnary()
	for {
		op, prec := p.binaryOp()
		if prec == 0 || prec <= minPrec {
			return left
		}
		p.next()
		next := prec
		if op == "**" {
			next = prec - 1
		}
		right := p.parseBinary(next)
		left = done(p, &model.BinaryExpression{Operator: op, Left: left, Right: right}, start)
	}
}

func (p *parser) parseUnary() model.Node {
	start := p.tok.start
	switch {
	case p.is("!") || p.is("~") || p.is("+") || p.is("-") ||
		p.isWord("typeof") || p.isWord("void") || p.isWord("delete"):
		op := p.tok.text
		p.next()
		arg := p.parseUnary()
		return done(p, &model.UnaryExpression{Operator: op, Argument: arg}, start)
	case p.is("++") || p.is("--"):
		op := p.tok.text
		p.next()
		arg := p.parseUnary()
		return done(p, &model.UpdateExpression{Operator: op, Prefix: true, Argument: arg}, start)
	case p.isWord("await") && (p.inAsync || !p.inFunction):
		if nt := p.peek(); !nt.is(")") && !nt.is(";") && !nt.is(",") && !nt.is("=") && !nt.is(".") {
			p.next()
			arg := p.parseUnary()
			return done(p, &model.AwaitExpression{Argument: arg}, start)
		}
	}
	e := p.parseLeftHandSide()
	if (p.is("++") || p.is("--")) && !p.tok.nlBefore {
		op := p.tok.text
		p.next()
		return done(p, &model.UpdateExpression{Operator: op, Argument: e}, start)
	}
	return e
}

func (p *parser) parseLeftHandSide() model.Node {
	start := p.tok.start
	var e model.Node
	if p.isWord("new") {
		e = p.parseNew()
	} else {
		e = p.parsePrimary()
	}
	return p.parseChain(e, start, true)
}

func (p *parser) parseNew() model.Node {
	start := p.tok.start
	p.next()
	if p.eat(".") {
		prop := p.anyName()
		return done(p, &model.MetaProperty{Meta: "new", Property: prop.Name}, start)
	}
	cstart := p.tok.start
	var callee model.Node
	if p.isWord("new") {
		callee = p.parseNew()
	} else {
		callee = p.parsePrimary()
	}
	callee = p.parseChain(callee, cstart, false)
	n := &model.NewExpression{Callee: callee}
	if p.is("<") {
		if targs, ok := p.try(func() model.Node {
			t := p.parseTypeArguments()
			if !p.is("(") {
				p.unexpected()
			}
			return t
		}); ok {
			n.TypeArguments = targs
		}
	}
	if p.is("(") {
		n.Arguments = p.parseArguments()
	}
	return done(p, n, start)
}

// parseChain parses member accesses, calls and tagged templates following e.
func (p *parser) parseChain(e model.Node, start model.Position, allowCall bool) model.Node {
	for {
		switch {
		case p.is("."):
			p.next()
			e = done(p, &model.MemberExpression{Object: e, Property: p.parseMemberName()}, start)
		case p.is("?.") && allowCall:
			p.next()
			switch {
			case p.is("("):
				args := p.parseArguments()
				e = done(p, &model.CallExpression{Callee: e, Arguments: args, Optional: true}, start)
			case p.is("["):
				p.next()
				prop := p.parseExpression()
				p.expect("]")
				e = done(p, &model.MemberExpression{Object: e, Property: prop, Computed: true, Optional: true}, start)
			case p.is("<"):
				targs := p.parseTypeArguments()
				args := p.parseArguments()
				e = done(p, &model.CallExpression{Callee: e, TypeArguments: targs, Arguments: args, Optional: true}, start)
			default:
				e = done(p, &model.MemberExpression{Object: e, Property: p.parseMemberName(), Optional: true}, start)
			}
		case p.is("["):
			p.next()
			noIn := p.noIn
			p.noIn = false
			prop := p.parseExpression()
			p.noIn = noIn
			p.expect("]")
			e = done(p, &model.MemberExpression{Object: e, Property: prop, Computed: true}, start)
		case p.is("(") && allowCall:
			args := p.parseArguments()
			e = done(p, &model.CallExpression{Callee: e, Arguments: args}, start)
		case p.tok.kind == tTemplate:
			quasi := p.parseTemplate()
			e = done(p, &model.TaggedTemplateExpression{Tag: e, Quasi: quasi}, start)
		case p.is("<") && allowCall && !p.tok.nlBefore:
			call, ok := p.try(func() model.Node {
				targs := p.parseTypeArguments()
				if p.tok.kind == tTemplate {
					quasi := p.parseTemplate()
					return done(p, &model.TaggedTemplateExpression{Tag: e, TypeArguments: targs, Quasi: quasi}, start)
				}
				if !p.is("(") {
					p.unexpected()
				}
				args := p.parseArguments()
				return done(p, &model.CallExpression{Callee: e, TypeArguments: targs, Arguments: args}, start)
			})
			if !ok {
				return e
			}
			e = call
		default:
			return e
		}
	}
}

func (p *parser) parseMemberName() model.Node {
	if p.tok.kind == tPrivate {
		start := p.tok.start
		name := p.tok.value
		p.next()
		return done(p, &model.PrivateName{Name: name}, start)
	}
	return p.anyName()
}

func (p *parser) parseArguments() []model.Node {
	p.expect("(")
	noIn := p.noIn
	p.noIn = false
	var args []model.Node
	for !p.is(")") {
		start := p.tok.start
		if p.eat("...") {
			args = append(args, done(p, &model.SpreadElement{Argument: p.parseAssign()}, start))
		} else {
			args = append(args, p.parseAssign())
		}
		if !p.is(")") {
			p.expect(",")
		}
	}
	p.next()
	p.noIn = noIn
	return args
}

func (p *parser) parsePrimary() model.Node {
	start := p.tok.start
	t := p.tok
	switch t.kind {
	case tNumber:
		p.next()
		return done(p, &model.NumericLiteral{Raw: t.text}, start)
	case tBigInt:
		p.next()
		return done(p, &model.BigIntLiteral{Raw: t.text}, start)
	case tString:
		p.next()
		return done(p, &model.StringLiteral{Value: t.value, Raw: t.text}, start)
	case tTemplate:
		return p.parseTemplate()
	case tPrivate:
		p.next()
		return done(p, &model.PrivateName{Name: t.value}, start)
	case tPunct:
		switch t.text {
		case "(":
			return p.parseParenthesized()
		case "[":
			return p.parseArrayLiteral()
		case "{":
			return p.parseObjectLiteral()
		case "/", "/=":
			p.tok = p.lx.regexp(t)
			re := p.tok.text
			slash := strings.LastIndexByte(re, '/')
			p.next()
			return done(p, &model.RegExpLiteral{Pattern: re[1:slash], Flags: re[slash+1:]}, start)
		case "<":
			if p.g.JSX {
				return p.parseJSX(jsxAfterNormal)
			}
		case "@":
			decorators := p.parseDecorators()
			return p.parseClassExpression(start, decorators)
		}
		p.unexpected()
	case tName:
		switch t.text {
		case "this":
			p.next()
			return done(p, &model.ThisExpression{}, start)
		case "super":
			p.next()
			return done(p, &model.Super{}, start)
		case "null":
			p.next()
			return done(p, &model.NullLiteral{}, start)
		case "true", "false":
			p.next()
			return done(p, &model.BooleanLiteral{Value: t.text == "true"}, start)
		case "function":
			fn := p.parseFunction(false, false)
			return done(p, &model.FunctionExpression{Function: fn}, start)
		case "async":
			if nt := p.peek(); nt.isName("function") && !nt.nlBefore {
				p.next()
				fn := p.parseFunction(true, false)
				return done(p, &model.FunctionExpression{Function: fn}, start)
			}
		case "class":
			return p.parseClassExpression(start, nil)
		case "import":
			p.next()
			if p.eat(".") {
				prop := p.anyName()
				return done(p, &model.MetaProperty{Meta: "import", Property: prop.Name}, start)
			}
			if !p.is("(") {
				p.unexpected()
			}
			return done(p, &model.Import{}, start)
		}
		if reserved[t.text] {
			p.unexpected()
		}
		p.next()
		return done(p, &model.Identifier{Name: t.text}, start)
	}
	p.unexpected()
	return nil
}

// parseParenthesized parses "(expr)" and the Flow typecast "(expr: T)".
func (p *parser) parseParenthesized() model.Node {
	start := p.tok.start
	p.next()
	noIn := p.noIn
	p.noIn = false
	defer func() { p.noIn = noIn }()

	expr := p.parseExpression()
	if p.is(":") {
		ann := p.parseTypeAnnotation()
		p.expect(")")
		return done(p, &model.TypeCastExpression{Expression: expr, TypeAnnotation: ann}, start)
	}
	p.expect(")")
	return done(p, &model.ParenthesizedExpression{Expression: expr}, start)
}

func (p *parser) parseArrayLiteral() model.Node {
	start := p.tok.start
	p.next()
	noIn := p.noIn
	p.noIn = false
	arr := &model.ArrayExpression{}
	for !p.is("]") {
		if p.is(",") {
			p.next()
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		estart := p.tok.start
		if p.eat("...") {
			arr.Elements = append(arr.Elements, done(p, &model.SpreadElement{Argument: p.parseAssign()}, estart))
		} else {
			arr.Elements = append(arr.Elements, p.parseAssign())
		}
		if !p.is("]") {
			p.expect(",")
		}
	}
	p.next()
	p.noIn = noIn
	return done(p, arr, start)
}

// isPropertyKeyStart reports whether the current token can begin a property
// key, which is what tells a "get"/"set"/"async"/"static" modifier apart from
// a property of that name.
func (p *parser) isPropertyKeyStart() bool {
	switch p.tok.kind {
	case tName, tString, tNumber, tBigInt, tPrivate:
		return true
	}
	return p.is("[") || p.is("*")
}

func (p *parser) parsePropertyKey() (model.Node, bool) {
	start := p.tok.start
	t := p.tok
	switch t.kind {
	case tString:
		p.next()
		return done(p, &model.StringLiteral{Value: t.value, Raw: t.text}, start), false
	case tNumber:
		p.next()
		return done(p, &model.NumericLiteral{Raw: t.text}, start), false
	case tBigInt:
		p.next()
		return done(p, &model.BigIntLiteral{Raw: t.text}, start), false
	case tPrivate:
		p.next()
		return done(p, &model.PrivateName{Name: t.value}, start), false
	case tName:
		return p.anyName(), false
	}
	p.expect("[")
	noIn := p.noIn
	p.noIn = false
	key := p.parseAssign()
	p.noIn = noIn
	p.expect("]")
	return key, true
}

func (p *parser) parseObjectLiteral() model.Node {
	start := p.tok.start
	p.next()
	noIn := p.noIn
	p.noIn = false
	obj := &model.ObjectExpression{}
	for !p.is("}") {
		obj.Properties = append(obj.Properties, p.parseObjectMember())
		if !p.is("}") {
			p.expect(",")
		}
	}
	p.next()
	p.noIn = noIn
	return done(p, obj, start)
}

func (p *parser) parseObjectMember() model.Node {
	start := p.tok.start
	if p.eat("...") {
		return done(p, &model.SpreadElement{Argument: p.parseAssign()}, start)
	}

	m := &model.ObjectMethod{Method: "method"}
	if p.isWord("async") {
		if nt := p.peek(); !nt.nlBefore && !isKeyTerminator(nt) {
			p.next()
			m.Async = true
		}
	}
	if p.eat("*") {
		m.Generator = true
	}
	if !m.Async && !m.Generator && (p.isWord("get") || p.isWord("set")) {
		if nt := p.peek(); !isKeyTerminator(nt) {
			m.Method = p.tok.text
			p.next()
		}
	}

	key, computed := p.parsePropertyKey()
	if p.is("(") || p.is("<") || m.Async || m.Generator || m.Method != "method" {
		m.Key, m.Computed = key, computed
		p.parseMethodRest(&m.Function)
		return done(p, m, start)
	}

	prop := &model.ObjectProperty{Key: key, Computed: computed}
	if p.eat(":") {
		prop.Value = p.parseAssign()
		return done(p, prop, start)
	}
	id, ok := key.(*model.Identifier)
	if !ok || computed {
		p.unexpected()
	}
	prop.Shorthand = true
	prop.Value = &model.Identifier{NodeBase: model.NodeBase{Span: id.Span}, Name: id.Name}
	if p.is("=") {
		p.next()
		right := p.parseAssign()
		prop.Value = done(p, &model.AssignmentPattern{Left: prop.Value, Right: right}, start)
	}
	return done(p, prop, start)
}

// parseMethodRest parses the signature and body of an object or class method.
func (p *parser) parseMethodRest(fn *model.Function) {
	if p.is("<") {
		fn.TypeParameters = p.parseTypeParameterDeclaration()
	}
	fn.Params = p.parseParams()
	if p.is(":") {
		fn.ReturnType, fn.Predicate = p.parseReturnType()
	}
	fn.Body = p.parseFunctionBody(fn.Async, fn.Generator)
}

func isKeyTerminator(t token) bool {
	return t.is("(") || t.is(":") || t.is(",") || t.is("}") || t.is("=") || t.is(";") || t.is("?") || t.is("<") || t.kind == tEOF
}

func (p *parser) parseTemplate() model.Node {
	start := p.tok.start
	tl := &model.TemplateLiteral{}
	for {
		if p.tok.kind != tTemplate {
			p.unexpected()
		}
		tl.Quasis = append(tl.Quasis, p.tok.value)
		if p.tok.tail {
			p.next()
			return done(p, tl, start)
		}
		p.next()
		tl.Expressions = append(tl.Expressions, p.parseExpression())
		if !p.is("}") {
			p.unexpected()
		}
		p.tok = p.lx.templateContinue(p.tok)
	}
}

// tryArrow parses an arrow function if one starts at the current token.
func (p *parser) tryArrow() model.Node {
	switch {
	case p.isIdent() && !p.isWord("async"):
		if !p.peek().is("=>") {
			return nil
		}
	case p.isWord("async"):
		nt := p.peek()
		if !nt.is("=>") && (nt.nlBefore || !(nt.kind == tName || nt.is("(") || nt.is("<"))) {
			return nil
		}
	case p.is("(") || p.is("<"):
	default:
		return nil
	}
	head, ok := p.try(func() model.Node { return p.parseArrowHead() })
	if !ok {
		return nil
	}
	arrow := head.(*model.ArrowFunctionExpression)
	saved := [3]bool{p.inFunction, p.inAsync, p.inGenerator}
	if p.is("{") {
		arrow.Body = p.parseFunctionBody(arrow.Async, false)
	} else {
		p.inFunction, p.inAsync, p.inGenerator = true, arrow.Async, false
		arrow.Body = p.parseAssign()
		p.inFunction, p.inAsync, p.inGenerator = saved[0], saved[1], saved[2]
	}
	return done(p, arrow, arrow.Span.Start)
}

// parseArrowHead parses everything up to and including "=>".
func (p *parser) parseArrowHead() model.Node {
	start := p.tok.start
	arrow := &model.ArrowFunctionExpression{}
	if p.isWord("async") && !p.peek().is("=>") {
		p.next()
		arrow.Async = true
	}
	if p.is("<") {
		arrow.TypeParameters = p.parseTypeParameterDeclaration()
	}
	if p.isIdent() && arrow.TypeParameters == nil {
		arrow.Params = []model.Node{p.ident()}
	} else {
		arrow.Params = p.parseParams()
		arrow.Parens = true
	}
	if p.is(":") {
		noAnon := p.noAnonFn
		p.noAnonFn = true
		arrow.ReturnType, arrow.Predicate = p.parseReturnType()
		p.noAnonFn = noAnon
	}
	if !p.is("=>") || p.tok.nlBefore {
		p.unexpected()
	}
	p.next()
	arrow.Span.Start = start
	return arrow
}

func (p *parser) parseDecorators() []model.Node {
	var out []model.Node
	for p.is("@") {
		start := p.tok.start
		p.next()
		estart := p.tok.start
		var e model.Node
		if p.is("(") {
			e = p.parseParenthesized()
		} else {
			e = p.ident()
			for p.eat(".") {
				e = done(p, &model.MemberExpression{Object: e, Property: p.parseMemberName()}, estart)
			}
			if p.is("(") {
				args := p.parseArguments()
				e = done(p, &model.CallExpression{Callee: e, Arguments: args}, estart)
			}
		}
		out = append(out, done(p, &model.Decorator{Expression: e}, start))
	}
	return out
}

// toAssignable converts an expression parsed with the cover grammar into the
// pattern it denotes on the left of "=" or in a for-in/of head.
func toAssignable(n model.Node) model.Node {
	switch e := n.(type) {
	case *model.ArrayExpression:
		pat := &model.ArrayPattern{NodeBase: e.NodeBase}
		for _, el := range e.Elements {
			pat.Elements = append(pat.Elements, toAssignableElement(el))
		}
		return pat
	case *model.ObjectExpression:
		pat := &model.ObjectPattern{NodeBase: e.NodeBase}
		for _, prop := range e.Properties {
			if op, ok := prop.(*model.ObjectProperty); ok {
				op.Value = toAssignable(op.Value)
				pat.Properties = append(pat.Properties, op)
				continue
			}
			pat.Properties = append(pat.Properties, toAssignableElement(prop))
		}
		return pat
	case *model.AssignmentExpression:
		if e.Operator == "=" {
			return &model.AssignmentPattern{NodeBase: e.NodeBase, Left: e.Left, Right: e.Right}
		}
	}
	return n
}

func toAssignableElement(n model.Node) model.Node {
	if s, ok := n.(*model.SpreadElement); ok {
		return &model.RestElement{NodeBase: s.NodeBase, Argument: toAssignable(s.Argument)}
	}
	if n == nil {
		return nil
	}
	return toAssignable(n)
}
