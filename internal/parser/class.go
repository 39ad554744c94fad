package parser

import (
	"github.com/cmmoran/flowts/internal/model"
)

func (p *parser) parseClass(start model.Position, decorators []model.Node, isDecl bool) model.Node {
	decl := &model.ClassDeclaration{}
	decl.Decorators = decorators
	p.parseClassTail(&decl.Class, isDecl)
	return done(p, decl, start)
}

func (p *parser) parseClassExpression(start model.Position, decorators []model.Node) model.Node {
	expr := &model.ClassExpression{}
	expr.Decorators = decorators
	p.parseClassTail(&expr.Class, false)
	return done(p, expr, start)
}

// parseClassTail parses from the "class" keyword to the closing brace.
func (p *parser) parseClassTail(c *model.Class, requireID bool) {
	p.expectWord("class")
	if p.isIdent() && !p.isWord("implements") {
		c.ID = p.ident()
	} else if requireID && !p.is("{") {
		p.fail("class name expected")
	}
	if p.is("<") {
		c.TypeParameters = p.parseTypeParameterDeclaration()
	}
	if p.eatWord("extends") {
		start := p.tok.start
		c.SuperClass = p.parseChain(p.parsePrimary(), start, true)
		if p.is("<") {
			c.SuperTypeParameters = p.parseTypeArguments()
		}
	}
	if p.eatWord("implements") {
		for {
			start := p.tok.start
			impl := &model.ClassImplements{ID: p.ident()}
			if p.is("<") {
				impl.TypeParameters = p.parseTypeArguments()
			}
			c.Implements = append(c.Implements, done(p, impl, start))
			if !p.eat(",") {
				break
			}
		}
	}
	c.Body = p.parseClassBody()
}

func (p *parser) parseClassBody() model.Node {
	start := p.tok.start
	p.expect("{")
	body := &model.ClassBody{}
	for !p.is("}") {
		if p.tok.kind == tEOF {
			p.unexpected()
		}
		if p.eat(";") {
			continue
		}
		body.Body = append(body.Body, p.parseClassMember())
	}
	p.next()
	return done(p, body, start)
}

// modifier consumes a contextual keyword such as "static" when it is used as
// a modifier rather than as a member name.
func (p *parser) modifier(word string) bool {
	if !p.isWord(word) {
		return false
	}
	nt := p.peek()
	if isKeyTerminator(nt) || (word == "async" && nt.nlBefore) {
		return false
	}
	p.next()
	return true
}

func (p *parser) parseClassMember() model.Node {
	start := p.tok.start
	decorators := p.parseDecorators()

	declare := p.modifier("declare")
	static := p.modifier("static")
	variance := p.parseVariance()

	m := &model.ClassMethod{Method: "method", Decorators: decorators, Static: static}
	if variance == nil && !declare {
		m.Async = p.modifier("async")
		m.Generator = p.eat("*")
		if !m.Async && !m.Generator && (p.isWord("get") || p.isWord("set")) {
			if nt := p.peek(); !isKeyTerminator(nt) {
				m.Method = p.tok.text
				p.next()
			}
		}
	}

	key, computed := p.parsePropertyKey()
	if p.is("(") || p.is("<") {
		m.Key, m.Computed = key, computed
		if id, ok := key.(*model.Identifier); ok && id.Name == "constructor" && !static && !computed && m.Method == "method" {
			m.Method = "constructor"
		}
		p.parseMethodRest(&m.Function)
		return done(p, m, start)
	}
	if m.Async || m.Generator || m.Method != "method" {
		p.unexpected()
	}

	prop := &model.ClassProperty{
		Decorators: decorators,
		Key:        key,
		Variance:   variance,
		Computed:   computed,
		Static:     static,
		Declare:    declare,
	}
	prop.Optional = p.eat("?")
	if p.is(":") {
		prop.TypeAnnotation = p.parseTypeAnnotation()
	}
	if p.eat("=") {
		saved := [3]bool{p.inFunction, p.inAsync, p.inGenerator}
		p.inFunction, p.inAsync, p.inGenerator = true, false, false
		prop.Value = p.parseAssign()
		p.inFunction, p.inAsync, p.inGenerator = saved[0], saved[1], saved[2]
	}
	p.semicolon()
	return done(p, prop, start)
}
