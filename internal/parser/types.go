package parser

import (
	"github.com/cmmoran/flowts/internal/model"
)

var keywordTypes = map[string]model.Kind{
	"any":     model.KindAnyTypeAnnotation,
	"mixed":   model.KindMixedTypeAnnotation,
	"empty":   model.KindEmptyTypeAnnotation,
	"void":    model.KindVoidTypeAnnotation,
	"null":    model.KindNullLiteralTypeAnnotation,
	"string":  model.KindStringTypeAnnotation,
	"number":  model.KindNumberTypeAnnotation,
	"boolean": model.KindBooleanTypeAnnotation,
	"bool":    model.KindBooleanTypeAnnotation,
	"symbol":  model.KindSymbolTypeAnnotation,
	"bigint":  model.KindBigIntTypeAnnotation,
}

// parseTypeAnnotation parses ": T".
func (p *parser) parseTypeAnnotation() model.Node {
	start := p.tok.start
	p.expect(":")
	t := p.parseType()
	return done(p, &model.TypeAnnotation{TypeAnnotation: t}, start)
}

// inType runs fn with anonymous function types allowed again, as they are
// inside any bracketed type context.
func (p *parser) inType(fn func()) {
	noAnon := p.noAnonFn
	p.noAnonFn = false
	fn()
	p.noAnonFn = noAnon
}

func (p *parser) parseType() model.Node {
	start := p.tok.start
	p.eat("|")
	t := p.parseIntersectionType()
	if !p.isUnionBar() {
		return t
	}
	u := &model.UnionTypeAnnotation{Types: []model.Node{t}}
	for p.isUnionBar() {
		p.next()
		u.Types = append(u.Types, p.parseIntersectionType())
	}
	return done(p, u, start)
}

// isUnionBar reports a "|" that continues a union rather than closing an
// exact object type.
func (p *parser) isUnionBar() bool {
	return p.is("|") && !p.peek().is("}")
}

func (p *parser) parseIntersectionType() model.Node {
	start := p.tok.start
	p.eat("&")
	t := p.parseAnonFunctionType()
	if !p.is("&") {
		return t
	}
	in := &model.IntersectionTypeAnnotation{Types: []model.Node{t}}
	for p.eat("&") {
		in.Types = append(in.Types, p.parseAnonFunctionType())
	}
	return done(p, in, start)
}

// parseAnonFunctionType handles the unparenthesized "T => U" form.
func (p *parser) parseAnonFunctionType() model.Node {
	start := p.tok.start
	t := p.parsePrefixType()
	if p.noAnonFn || !p.is("=>") {
		return t
	}
	p.next()
	param := model.WithSpan(&model.FunctionTypeParam{TypeAnnotation: t}, t)
	fn := &model.FunctionTypeAnnotation{Params: []model.Node{param}, ReturnType: p.parseType()}
	return done(p, fn, start)
}

func (p *parser) parsePrefixType() model.Node {
	start := p.tok.start
	if p.eat("?") {
		t := p.parsePrefixType()
		return done(p, &model.NullableTypeAnnotation{TypeAnnotation: t}, start)
	}
	return p.parsePostfixType()
}

func (p *parser) parsePostfixType() model.Node {
	start := p.tok.start
	t := p.parsePrimaryType()
	for p.is("[") && !p.tok.nlBefore {
		p.next()
		if p.eat("]") {
			t = done(p, &model.ArrayTypeAnnotation{ElementType: t}, start)
			continue
		}
		var index model.Node
		p.inType(func() { index = p.parseType() })
		p.expect("]")
		t = done(p, &model.IndexedAccessType{ObjectType: t, IndexType: index}, start)
	}
	return t
}

func (p *parser) parsePrimaryType() model.Node {
	start := p.tok.start
	t := p.tok
	switch t.kind {
	case tString:
		p.next()
		return done(p, &model.StringLiteralTypeAnnotation{Value: t.value, Raw: t.text}, start)
	case tNumber:
		p.next()
		return done(p, &model.NumberLiteralTypeAnnotation{Raw: t.text}, start)
	case tBigInt:
		p.next()
		return done(p, &model.BigIntLiteralTypeAnnotation{Raw: t.text}, start)
	case tPunct:
		switch t.text {
		case "{":
			return p.parseObjectType(false)
		case "[":
			return p.parseTupleType()
		case "(":
			return p.parseParenType()
		case "<":
			fn := &model.FunctionTypeAnnotation{TypeParameters: p.parseTypeParameterDeclaration()}
			if !p.is("(") {
				p.unexpected()
			}
			p.parseFunctionTypeParams(fn)
			p.expect("=>")
			fn.ReturnType = p.parseType()
			return done(p, fn, start)
		case "*":
			p.next()
			return done(p, &model.FlowKeyword{Type: model.KindExistsTypeAnnotation}, start)
		case "-":
			if nt := p.peek(); nt.kind == tNumber || nt.kind == tBigInt {
				p.next()
				p.next()
				raw := "-" + p.prev.text
				if nt.kind == tBigInt {
					return done(p, &model.BigIntLiteralTypeAnnotation{Raw: raw}, start)
				}
				return done(p, &model.NumberLiteralTypeAnnotation{Raw: raw}, start)
			}
		}
		p.unexpected()
	case tName:
		if k, ok := keywordTypes[t.text]; ok && !p.peek().is(".") {
			p.next()
			return done(p, &model.FlowKeyword{Type: k}, start)
		}
		switch t.text {
		case "true", "false":
			p.next()
			return done(p, &model.BooleanLiteralTypeAnnotation{Value: t.text == "true"}, start)
		case "this":
			p.next()
			return done(p, &model.FlowKeyword{Type: model.KindThisTypeAnnotation}, start)
		case "typeof":
			p.next()
			arg := p.parseGenericID()
			return done(p, &model.TypeofTypeAnnotation{Argument: arg}, start)
		}
		g := &model.GenericTypeAnnotation{ID: p.parseGenericID()}
		if p.is("<") {
			g.TypeParameters = p.parseTypeArguments()
		}
		return done(p, g, start)
	}
	p.unexpected()
	return nil
}

// parseGenericID parses "A" or "A.B.C".
func (p *parser) parseGenericID() model.Node {
	start := p.tok.start
	var id model.Node = p.anyName()
	for p.eat(".") {
		id = done(p, &model.QualifiedTypeIdentifier{Qualification: id, ID: p.anyName()}, start)
	}
	return id
}

func (p *parser) parseTupleType() model.Node {
	start := p.tok.start
	p.expect("[")
	tuple := &model.TupleTypeAnnotation{}
	p.inType(func() {
		for !p.is("]") {
			tuple.Types = append(tuple.Types, p.parseType())
			if !p.is("]") {
				p.expect(",")
			}
		}
	})
	p.next()
	return done(p, tuple, start)
}

// parseParenType disambiguates a parenthesized type from the parameter list
// of a function type. Grouping parentheses are not kept in the tree.
func (p *parser) parseParenType() model.Node {
	start := p.tok.start
	noAnon := p.noAnonFn
	p.noAnonFn = false
	defer func() { p.noAnonFn = noAnon }()

	s := p.save()
	p.next()
	isFunc := p.is(")") || p.is("...")
	if !isFunc && p.tok.kind == tName {
		nt := p.peek()
		isFunc = nt.is(":") || nt.is("?")
	}
	if !isFunc {
		t := p.parseType()
		if !p.is(",") && !(p.is(")") && p.peek().is("=>")) {
			p.expect(")")
			return t
		}
	}
	p.restore(s)
	fn := &model.FunctionTypeAnnotation{}
	p.parseFunctionTypeParams(fn)
	p.expect("=>")
	p.noAnonFn = noAnon
	fn.ReturnType = p.parseType()
	return done(p, fn, start)
}

// parseFunctionTypeParams parses "(a: A, B, ...rest: C)" into fn.
func (p *parser) parseFunctionTypeParams(fn *model.FunctionTypeAnnotation) {
	p.expect("(")
	p.inType(func() {
		for !p.is(")") {
			if p.is("...") {
				start := p.tok.start
				p.next()
				fn.Rest = p.parseFunctionTypeParam(start)
				p.eat(",")
				break
			}
			fn.Params = append(fn.Params, p.parseFunctionTypeParam(p.tok.start))
			if !p.is(")") {
				p.expect(",")
			}
		}
	})
	p.expect(")")
}

func (p *parser) parseFunctionTypeParam(start model.Position) model.Node {
	param := &model.FunctionTypeParam{}
	if p.tok.kind == tName {
		if nt := p.peek(); nt.is(":") || nt.is("?") {
			param.Name = p.anyName()
			param.Optional = p.eat("?")
			p.expect(":")
		}
	}
	param.TypeAnnotation = p.parseType()
	return done(p, param, start)
}

// parseTypeArguments parses "<A, B>" in type or expression position.
func (p *parser) parseTypeArguments() model.Node {
	start := p.tok.start
	p.expect("<")
	inst := &model.TypeParameterInstantiation{}
	p.inType(func() {
		for !p.isGT() {
			inst.Params = append(inst.Params, p.parseType())
			if !p.isGT() {
				p.expect(",")
			}
		}
	})
	p.expectGT()
	return done(p, inst, start)
}

// isGT reports a token starting with ">", which may still need splitting.
func (p *parser) isGT() bool {
	return p.tok.kind == tPunct && p.tok.text[0] == '>'
}

func (p *parser) parseTypeParameterDeclaration() model.Node {
	start := p.tok.start
	p.expect("<")
	decl := &model.TypeParameterDeclaration{}
	p.inType(func() {
		for !p.isGT() {
			pstart := p.tok.start
			tp := &model.TypeParameter{Variance: p.parseVariance()}
			tp.Name = p.ident().Name
			if p.is(":") {
				tp.Bound = p.parseTypeAnnotation()
			}
			if p.eat("=") {
				tp.Default = p.parseType()
			}
			decl.Params = append(decl.Params, done(p, tp, pstart))
			if !p.isGT() {
				p.expect(",")
			}
		}
	})
	p.expectGT()
	return done(p, decl, start)
}

func (p *parser) parseVariance() model.Node {
	if !p.is("+") && !p.is("-") {
		return nil
	}
	start := p.tok.start
	plus := p.is("+")
	p.next()
	return done(p, &model.Variance{Plus: plus}, start)
}

// parseObjectType parses "{ ... }" and the exact "{| ... |}" form. Static
// members are only accepted in declare class bodies.
func (p *parser) parseObjectType(allowStatic bool) model.Node {
	start := p.tok.start
	p.expect("{")
	obj := &model.ObjectTypeAnnotation{}
	adjacent := p.tok.start.Offset == p.prev.end.Offset
	switch {
	case adjacent && p.is("||"):
		p.next()
		p.expect("}")
		obj.Exact = true
		return done(p, obj, start)
	case adjacent && p.is("|"):
		p.next()
		obj.Exact = true
	}

	closing := func() bool {
		if obj.Exact {
			return p.is("|") && p.peek().is("}")
		}
		return p.is("}")
	}

	p.inType(func() {
		for !closing() {
			if p.tok.kind == tEOF {
				p.unexpected()
			}
			if m := p.parseObjectTypeMember(obj, allowStatic); m != nil {
				obj.Members = append(obj.Members, m)
			}
			if !closing() && !p.eat(",") {
				p.expect(";")
			}
		}
	})
	if obj.Exact {
		p.expect("|")
	}
	p.expect("}")
	return done(p, obj, start)
}

// parseObjectTypeMember returns nil for the inexact "..." marker.
func (p *parser) parseObjectTypeMember(obj *model.ObjectTypeAnnotation, allowStatic bool) model.Node {
	start := p.tok.start

	if p.is("...") {
		p.next()
		if p.is("}") || p.is("|") || p.is(",") || p.is(";") {
			obj.Inexact = true
			return nil
		}
		arg := p.parseType()
		return done(p, &model.ObjectTypeSpreadProperty{Argument: arg}, start)
	}

	static := false
	if allowStatic && p.isWord("static") {
		if nt := p.peek(); !isKeyTerminator(nt) {
			p.next()
			static = true
		}
	}

	variance := p.parseVariance()

	if p.is("[") {
		p.next()
		if p.is("[") {
			p.fail("internal slot types are not supported")
		}
		ix := &model.ObjectTypeIndexer{Variance: variance, Static: static}
		if p.tok.kind == tName && p.peek().is(":") {
			ix.ID = p.anyName()
			p.next()
		}
		ix.Key = p.parseType()
		p.expect("]")
		p.expect(":")
		ix.Value = p.parseType()
		return done(p, ix, start)
	}

	if variance == nil && (p.is("(") || p.is("<")) {
		fn := p.parseMethodType(start)
		return done(p, &model.ObjectTypeCallProperty{Value: fn, Static: static}, start)
	}

	prop := &model.ObjectTypeProperty{Variance: variance, Static: static}
	if variance == nil && (p.isWord("get") || p.isWord("set")) {
		if nt := p.peek(); !isKeyTerminator(nt) {
			prop.Accessor = p.tok.text
			p.next()
		}
	}
	prop.Key = p.parseObjectTypeKey()
	if p.is("(") || p.is("<") {
		prop.Method = true
		prop.Value = p.parseMethodType(p.tok.start)
		return done(p, prop, start)
	}
	if prop.Accessor != "" {
		p.unexpected()
	}
	prop.Optional = p.eat("?")
	p.expect(":")
	prop.Value = p.parseType()
	return done(p, prop, start)
}

func (p *parser) parseObjectTypeKey() model.Node {
	start := p.tok.start
	switch t := p.tok; {
	case t.kind == tString:
		p.next()
		return done(p, &model.StringLiteral{Value: t.value, Raw: t.text}, start)
	case t.kind == tNumber:
		p.next()
		return done(p, &model.NumericLiteral{Raw: t.text}, start)
	case t.is("@") && p.peek().is("@"):
		p.next()
		p.next()
		name := p.anyName()
		return done(p, &model.Identifier{Name: "@@" + name.Name}, start)
	}
	return p.anyName()
}

// parseMethodType parses "<T>(a: A): R" as a function type.
func (p *parser) parseMethodType(start model.Position) model.Node {
	fn := &model.FunctionTypeAnnotation{}
	if p.is("<") {
		fn.TypeParameters = p.parseTypeParameterDeclaration()
	}
	p.parseFunctionTypeParams(fn)
	p.expect(":")
	fn.ReturnType = p.parseType()
	return done(p, fn, start)
}
