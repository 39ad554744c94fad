package parser

import (
	"github.com/cmmoran/flowts/internal/model"
)

var declareTargets = map[string]bool{
	"var": true, "let": true, "const": true, "function": true, "class": true,
	"type": true, "opaque": true, "interface": true, "export": true, "module": true,
}

func (p *parser) parseStatement() model.Node {
	start := p.tok.start
	switch {
	case p.is("{"):
		return p.parseBlock()
	case p.is(";"):
		p.next()
		return done(p, &model.EmptyStatement{}, start)
	case p.is("@"):
		decorators := p.parseDecorators()
		if p.isWord("export") {
			return p.parseExport(start, decorators)
		}
		return p.parseClass(start, decorators, true)
	case p.tok.kind != tName:
		return p.parseExpressionStatement(start)
	}

	switch p.tok.text {
	case "var", "const":
		return p.parseVarStatement(start)
	case "let":
		if nt := p.peek(); nt.kind == tName || nt.is("[") || nt.is("{") {
			return p.parseVarStatement(start)
		}
	case "function":
		return p.parseFunctionDeclaration(start, false)
	case "async":
		if nt := p.peek(); nt.isName("function") && !nt.nlBefore {
			p.next()
			return p.parseFunctionDeclaration(start, true)
		}
	case "class":
		return p.parseClass(start, nil, true)
	case "if":
		return p.parseIf(start)
	case "for":
		return p.parseFor(start)
	case "while":
		p.next()
		test := p.parseParenExpression()
		body := p.parseStatement()
		return done(p, &model.WhileStatement{Test: test, Body: body}, start)
	case "do":
		p.next()
		body := p.parseStatement()
		p.expectWord("while")
		test := p.parseParenExpression()
		p.eat(";")
		return done(p, &model.DoWhileStatement{Body: body, Test: test}, start)
	case "return":
		p.next()
		ret := &model.ReturnStatement{}
		if !p.is(";") && !p.is("}") && p.tok.kind != tEOF && !p.tok.nlBefore {
			ret.Argument = p.parseExpression()
		}
		p.semicolon()
		return done(p, ret, start)
	case "break", "continue":
		isBreak := p.tok.text == "break"
		p.next()
		var label model.Node
		if p.isIdent() && !p.tok.nlBefore {
			label = p.ident()
		}
		p.semicolon()
		if isBreak {
			return done(p, &model.BreakStatement{Label: label}, start)
		}
		return done(p, &model.ContinueStatement{Label: label}, start)
	case "throw":
		p.next()
		arg := p.parseExpression()
		p.semicolon()
		return done(p, &model.ThrowStatement{Argument: arg}, start)
	case "try":
		return p.parseTry(start)
	case "switch":
		return p.parseSwitch(start)
	case "debugger":
		p.next()
		p.semicolon()
		return done(p, &model.DebuggerStatement{}, start)
	case "with":
		p.next()
		obj := p.parseParenExpression()
		body := p.parseStatement()
		return done(p, &model.WithStatement{Object: obj, Body: body}, start)
	case "import":
		if nt := p.peek(); !nt.is("(") && !nt.is(".") {
			return p.parseImport(start)
		}
	case "export":
		return p.parseExport(start, nil)
	case "type":
		if nt := p.peek(); nt.kind == tName && !nt.nlBefore {
			return p.parseTypeAlias(start)
		}
	case "opaque":
		if nt := p.peek(); nt.isName("type") && !nt.nlBefore {
			return p.parseOpaqueType(start, false)
		}
	case "interface":
		if nt := p.peek(); nt.kind == tName && !nt.nlBefore {
			return p.parseInterface(start, false)
		}
	case "declare":
		if nt := p.peek(); nt.kind == tName && !nt.nlBefore && declareTargets[nt.text] {
			return p.parseDeclare(start)
		}
	}

	if p.isIdent() && p.peek().is(":") {
		label := p.ident()
		p.expect(":")
		body := p.parseStatement()
		return done(p, &model.LabeledStatement{Label: label, Body: body}, start)
	}
	return p.parseExpressionStatement(start)
}

func (p *parser) parseExpressionStatement(start model.Position) model.Node {
	expr := p.parseExpression()
	p.semicolon()
	return done(p, &model.ExpressionStatement{Expression: expr}, start)
}

func (p *parser) parseBlock() *model.BlockStatement {
	start := p.tok.start
	p.expect("{")
	block := &model.BlockStatement{}
	for !p.is("}") {
		if p.tok.kind == tEOF {
			p.unexpected()
		}
		block.Body = append(block.Body, p.parseStatement())
	}
	p.next()
	return done(p, block, start)
}

func (p *parser) parseParenExpression() model.Node {
	p.expect("(")
	e := p.parseExpression()
	p.expect(")")
	return e
}

func (p *parser) parseVarStatement(start model.Position) model.Node {
	decl := p.parseVarDeclaration(start)
	p.semicolon()
	return done(p, decl, start)
}

// parseVarDeclaration parses "kind a = 1, b" without the terminating semicolon.
func (p *parser) parseVarDeclaration(start model.Position) *model.VariableDeclaration {
	decl := &model.VariableDeclaration{DeclKind: p.tok.text}
	p.next()
	for {
		dstart := p.tok.start
		d := &model.VariableDeclarator{ID: p.parseBindingTarget()}
		if p.is(":") {
			setAnnotation(d.ID, p.parseTypeAnnotation())
		}
		if p.eat("=") {
			d.Init = p.parseAssign()
		}
		decl.Declarations = append(decl.Declarations, done(p, d, dstart))
		if !p.eat(",") {
			break
		}
	}
	return done(p, decl, start)
}

func (p *parser) parseIf(start model.Position) model.Node {
	p.next()
	s := &model.IfStatement{Test: p.parseParenExpression()}
	s.Consequent = p.parseStatement()
	if p.eatWord("else") {
		s.Alternate = p.parseStatement()
	}
	return done(p, s, start)
}

func (p *parser) parseFor(start model.Position) model.Node {
	p.next()
	await := p.eatWord("await")
	p.expect("(")

	var init model.Node
	if !p.is(";") {
		istart := p.tok.start
		p.noIn = true
		if p.isWord("var") || p.isWord("const") || (p.isWord("let") && p.peek().kind == tName) ||
			(p.isWord("let") && (p.peek().is("[") || p.peek().is("{"))) {
			init = p.parseVarDeclaration(istart)
		} else {
			init = p.parseExpression()
		}
		p.noIn = false

		if p.isWord("of") || p.isWord("in") {
			of := p.tok.text == "of"
			p.next()
			left := init
			if _, isDecl := left.(*model.VariableDeclaration); !isDecl {
				left = toAssignable(left)
			}
			var right model.Node
			if of {
				right = p.parseAssign()
			} else {
				right = p.parseExpression()
			}
			p.expect(")")
			body := p.parseStatement()
			if of {
				return done(p, &model.ForOfStatement{Await: await, Left: left, Right: right, Body: body}, start)
			}
			return done(p, &model.ForInStatement{Left: left, Right: right, Body: body}, start)
		}
	}

	s := &model.ForStatement{Init: init}
	p.expect(";")
	if !p.is(";") {
		s.Test = p.parseExpression()
	}
	p.expect(";")
	if !p.is(")") {
		s.Update = p.parseExpression()
	}
	p.expect(")")
	s.Body = p.parseStatement()
	return done(p, s, start)
}

func (p *parser) parseTry(start model.Position) model.Node {
	p.next()
	s := &model.TryStatement{Block: p.parseBlock()}
	if p.isWord("catch") {
		cstart := p.tok.start
		p.next()
		c := &model.CatchClause{}
		if p.eat("(") {
			c.Param = p.parseBindingTarget()
			if p.is(":") {
				setAnnotation(c.Param, p.parseTypeAnnotation())
			}
			p.expect(")")
		}
		c.Body = p.parseBlock()
		s.Handler = done(p, c, cstart)
	}
	if p.eatWord("finally") {
		s.Finalizer = p.parseBlock()
	}
	if s.Handler == nil && s.Finalizer == nil {
		p.fail("missing catch or finally clause")
	}
	return done(p, s, start)
}

func (p *parser) parseSwitch(start model.Position) model.Node {
	p.next()
	s := &model.SwitchStatement{Discriminant: p.parseParenExpression()}
	p.expect("{")
	for !p.eat("}") {
		cstart := p.tok.start
		c := &model.SwitchCase{}
		if p.eatWord("case") {
			c.Test = p.parseExpression()
		} else {
			p.expectWord("default")
		}
		p.expect(":")
		for !p.is("}") && !p.isWord("case") && !p.isWord("default") {
			if p.tok.kind == tEOF {
				p.unexpected()
			}
			c.Consequent = append(c.Consequent, p.parseStatement())
		}
		s.Cases = append(s.Cases, done(p, c, cstart))
	}
	return done(p, s, start)
}

func (p *parser) parseFunctionDeclaration(start model.Position, async bool) model.Node {
	fn := p.parseFunction(async, true)
	return done(p, &model.FunctionDeclaration{Function: fn}, start)
}

// parseFunction parses from the "function" keyword to the end of the body.
func (p *parser) parseFunction(async, requireID bool) model.Function {
	p.expectWord("function")
	fn := model.Function{Async: async, Generator: p.eat("*")}
	if p.tok.kind == tName && !p.is("(") {
		fn.ID = p.ident()
	} else if requireID {
		p.fail("function name expected")
	}
	p.parseFunctionRest(&fn)
	return fn
}

// parseFunctionRest parses type parameters, parameters, return type,
// predicate and body.
func (p *parser) parseFunctionRest(fn *model.Function) {
	if p.is("<") {
		fn.TypeParameters = p.parseTypeParameterDeclaration()
	}
	fn.Params = p.parseParams()
	if p.is(":") {
		fn.ReturnType, fn.Predicate = p.parseReturnType()
	}
	fn.Body = p.parseFunctionBody(fn.Async, fn.Generator)
}

func (p *parser) parseFunctionBody(async, generator bool) *model.BlockStatement {
	saved := [3]bool{p.inFunction, p.inAsync, p.inGenerator}
	p.inFunction, p.inAsync, p.inGenerator = true, async, generator
	body := p.parseBlock()
	p.inFunction, p.inAsync, p.inGenerator = saved[0], saved[1], saved[2]
	return body
}

// parseReturnType parses ": T", ": T %checks" or ": %checks".
func (p *parser) parseReturnType() (model.Node, model.Node) {
	start := p.tok.start
	p.expect(":")
	var ret model.Node
	if !p.is("%") {
		t := p.parseType()
		ret = done(p, &model.TypeAnnotation{TypeAnnotation: t}, start)
	}
	return ret, p.parsePredicate()
}

func (p *parser) parsePredicate() model.Node {
	if !p.is("%") || !p.peek().isName("checks") {
		return nil
	}
	start := p.tok.start
	p.next()
	p.next()
	if p.eat("(") {
		value := p.parseExpression()
		p.expect(")")
		return done(p, &model.DeclaredPredicate{Value: value}, start)
	}
	return done(p, &model.InferredPredicate{}, start)
}

func (p *parser) parseParams() []model.Node {
	p.expect("(")
	var params []model.Node
	for !p.is(")") {
		params = append(params, p.parseParam())
		if !p.is(")") {
			p.expect(",")
		}
	}
	p.next()
	return params
}

func (p *parser) parseParam() model.Node {
	start := p.tok.start
	if p.eat("...") {
		rest := &model.RestElement{Argument: p.parseBindingTarget()}
		if p.is(":") {
			rest.TypeAnnotation = p.parseTypeAnnotation()
		}
		return done(p, rest, start)
	}
	if p.isWord("this") && p.peek().is(":") {
		id := p.anyName()
		id.TypeAnnotation = p.parseTypeAnnotation()
		return done(p, id, start)
	}
	return p.parseBindingElement()
}

// parseBindingElement parses a binding target with optional marker, type
// annotation and default value.
func (p *parser) parseBindingElement() model.Node {
	start := p.tok.start
	target := p.parseBindingTarget()
	if p.is("?") {
		p.next()
		if id, ok := target.(*model.Identifier); ok {
			id.Optional = true
		}
	}
	if p.is(":") {
		setAnnotation(target, p.parseTypeAnnotation())
	}
	target.Base().Span.End = p.prev.end
	if p.eat("=") {
		right := p.parseAssign()
		return done(p, &model.AssignmentPattern{Left: target, Right: right}, start)
	}
	return target
}

func (p *parser) parseBindingTarget() model.Node {
	start := p.tok.start
	switch {
	case p.is("["):
		p.next()
		arr := &model.ArrayPattern{}
		for !p.is("]") {
			if p.is(",") {
				p.next()
				arr.Elements = append(arr.Elements, nil)
				continue
			}
			arr.Elements = append(arr.Elements, p.parseParam())
			if !p.is("]") {
				p.expect(",")
			}
		}
		p.next()
		return done(p, arr, start)
	case p.is("{"):
		p.next()
		obj := &model.ObjectPattern{}
		for !p.is("}") {
			pstart := p.tok.start
			if p.eat("...") {
				obj.Properties = append(obj.Properties, done(p, &model.RestElement{Argument: p.parseBindingTarget()}, pstart))
			} else {
				key, computed := p.parsePropertyKey()
				prop := &model.ObjectProperty{Key: key, Computed: computed}
				if p.eat(":") {
					prop.Value = p.parseBindingElement()
				} else {
					id, ok := key.(*model.Identifier)
					if !ok || computed {
						p.unexpected()
					}
					prop.Shorthand = true
					prop.Value = &model.Identifier{NodeBase: model.NodeBase{Span: id.Span}, Name: id.Name}
					if p.eat("=") {
						right := p.parseAssign()
						prop.Value = done(p, &model.AssignmentPattern{Left: prop.Value, Right: right}, pstart)
					}
				}
				obj.Properties = append(obj.Properties, done(p, prop, pstart))
			}
			if !p.is("}") {
				p.expect(",")
			}
		}
		p.next()
		return done(p, obj, start)
	default:
		return p.ident()
	}
}

func setAnnotation(target model.Node, ann model.Node) {
	switch t := target.(type) {
	case *model.Identifier:
		t.TypeAnnotation = ann
	case *model.ObjectPattern:
		t.TypeAnnotation = ann
	case *model.ArrayPattern:
		t.TypeAnnotation = ann
	case *model.RestElement:
		t.TypeAnnotation = ann
	}
}
