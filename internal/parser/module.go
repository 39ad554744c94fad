package parser

import (
	"github.com/cmmoran/flowts/internal/model"
)

func (p *parser) parseSource() model.Node {
	start := p.tok.start
	if p.tok.kind != tString {
		p.fail("expected module source string")
	}
	t := p.tok
	p.next()
	return done(p, &model.StringLiteral{Value: t.value, Raw: t.text}, start)
}

// isImportKind reports whether the current "type" or "typeof" word is a kind
// modifier rather than a binding of that name.
func (p *parser) isImportKind() bool {
	if !p.isWord("type") && !p.isWord("typeof") {
		return false
	}
	nt := p.peek()
	switch {
	case nt.is("{") || nt.is("*"):
		return true
	case nt.isName("from"):
		s := p.save()
		p.next()
		p.next()
		isSource := p.tok.kind == tString
		p.restore(s)
		return !isSource
	}
	return nt.kind == tName
}

func (p *parser) parseImport(start model.Position) model.Node {
	p.expectWord("import")
	decl := &model.ImportDeclaration{ImportKind: "value"}
	if p.isImportKind() {
		decl.ImportKind = p.tok.text
		p.next()
	}
	if p.tok.kind == tString {
		decl.Source = p.parseSource()
		p.semicolon()
		return done(p, decl, start)
	}

	if p.tok.kind == tName {
		sstart := p.tok.start
		local := p.ident()
		decl.Specifiers = append(decl.Specifiers, done(p, &model.ImportDefaultSpecifier{Local: local}, sstart))
		if p.eat(",") {
			p.parseImportBindings(decl)
		}
	} else {
		p.parseImportBindings(decl)
	}
	p.expectWord("from")
	decl.Source = p.parseSource()
	p.semicolon()
	return done(p, decl, start)
}

// parseImportBindings parses "* as ns" or "{ a, b as c }".
func (p *parser) parseImportBindings(decl *model.ImportDeclaration) {
	if p.is("*") {
		start := p.tok.start
		p.next()
		p.expectWord("as")
		local := p.ident()
		decl.Specifiers = append(decl.Specifiers, done(p, &model.ImportNamespaceSpecifier{Local: local}, start))
		return
	}
	p.expect("{")
	for !p.is("}") {
		decl.Specifiers = append(decl.Specifiers, p.parseImportSpecifier())
		if !p.is("}") {
			p.expect(",")
		}
	}
	p.next()
}

func (p *parser) parseImportSpecifier() model.Node {
	start := p.tok.start
	spec := &model.ImportSpecifier{ImportKind: "value"}
	if p.isWord("type") || p.isWord("typeof") {
		if nt := p.peek(); nt.kind == tName && nt.text != "as" {
			spec.ImportKind = p.tok.text
			p.next()
		}
	}
	if p.tok.kind == tString {
		spec.Imported = p.parseSource()
	} else {
		spec.Imported = p.anyName()
	}
	if p.eatWord("as") {
		spec.Local = p.ident()
	} else {
		id, ok := spec.Imported.(*model.Identifier)
		if !ok {
			p.fail("string import name requires an alias")
		}
		spec.Local = &model.Identifier{NodeBase: model.NodeBase{Span: id.Span}, Name: id.Name}
	}
	return done(p, spec, start)
}

func (p *parser) parseExportSpecifiers() []model.Node {
	p.expect("{")
	var out []model.Node
	for !p.is("}") {
		start := p.tok.start
		spec := &model.ExportSpecifier{Local: p.anyName()}
		if p.eatWord("as") {
			spec.Exported = p.anyName()
		} else {
			local := spec.Local.(*model.Identifier)
			spec.Exported = &model.Identifier{NodeBase: model.NodeBase{Span: local.Span}, Name: local.Name}
		}
		out = append(out, done(p, spec, start))
		if !p.is("}") {
			p.expect(",")
		}
	}
	p.next()
	return out
}

func (p *parser) parseExport(start model.Position, decorators []model.Node) model.Node {
	p.expectWord("export")

	switch {
	case p.is("*") || (p.isWord("type") && p.peek().is("*")):
		all := &model.ExportAllDeclaration{ExportKind: "value"}
		if p.isWord("type") {
			all.ExportKind = "type"
			p.next()
		}
		p.next()
		if p.eatWord("as") {
			all.Exported = p.anyName()
		}
		p.expectWord("from")
		all.Source = p.parseSource()
		p.semicolon()
		return done(p, all, start)

	case p.is("{") || (p.isWord("type") && p.peek().is("{")):
		named := &model.ExportNamedDeclaration{ExportKind: "value"}
		if p.isWord("type") {
			named.ExportKind = "type"
			p.next()
		}
		named.Specifiers = p.parseExportSpecifiers()
		if p.eatWord("from") {
			named.Source = p.parseSource()
		}
		p.semicolon()
		return done(p, named, start)

	case p.isWord("default"):
		p.next()
		dstart := p.tok.start
		var decl model.Node
		switch {
		case p.isWord("function"):
			decl = done(p, &model.FunctionDeclaration{Function: p.parseFunction(false, false)}, dstart)
		case p.isWord("async") && p.peek().isName("function"):
			p.next()
			decl = done(p, &model.FunctionDeclaration{Function: p.parseFunction(true, false)}, dstart)
		case p.isWord("class"):
			decl = p.parseClass(dstart, decorators, false)
		case p.is("@"):
			decl = p.parseClass(dstart, p.parseDecorators(), false)
		default:
			decl = p.parseAssign()
			p.semicolon()
		}
		return done(p, &model.ExportDefaultDeclaration{Declaration: decl}, start)
	}

	named := &model.ExportNamedDeclaration{ExportKind: "value"}
	dstart := p.tok.start
	switch {
	case p.isWord("type"):
		named.ExportKind = "type"
		named.Declaration = p.parseTypeAlias(dstart)
	case p.isWord("opaque"):
		named.ExportKind = "type"
		named.Declaration = p.parseOpaqueType(dstart, false)
	case p.isWord("interface"):
		named.ExportKind = "type"
		named.Declaration = p.parseInterface(dstart, false)
	case p.isWord("class") || p.is("@"):
		if p.is("@") {
			decorators = append(decorators, p.parseDecorators()...)
		}
		named.Declaration = p.parseClass(dstart, decorators, true)
	default:
		named.Declaration = p.parseStatement()
	}
	return done(p, named, start)
}

func (p *parser) parseTypeAlias(start model.Position) model.Node {
	p.expectWord("type")
	alias := &model.TypeAlias{ID: p.ident()}
	if p.is("<") {
		alias.TypeParameters = p.parseTypeParameterDeclaration()
	}
	p.expect("=")
	alias.Right = p.parseType()
	p.semicolon()
	return done(p, alias, start)
}

func (p *parser) parseOpaqueType(start model.Position, declare bool) model.Node {
	p.expectWord("opaque")
	p.expectWord("type")
	id := p.ident()
	var tparams, super model.Node
	if p.is("<") {
		tparams = p.parseTypeParameterDeclaration()
	}
	if p.eat(":") {
		super = p.parseType()
	}
	if declare {
		p.semicolon()
		return done(p, &model.DeclareOpaqueType{ID: id, TypeParameters: tparams, Supertype: super}, start)
	}
	p.expect("=")
	impl := p.parseType()
	p.semicolon()
	return done(p, &model.OpaqueType{ID: id, TypeParameters: tparams, Supertype: super, Impltype: impl}, start)
}

func (p *parser) parseInterfaceExtends() []model.Node {
	var out []model.Node
	for {
		start := p.tok.start
		ext := &model.InterfaceExtends{ID: p.parseGenericID()}
		if p.is("<") {
			ext.TypeParameters = p.parseTypeArguments()
		}
		out = append(out, done(p, ext, start))
		if !p.eat(",") {
			return out
		}
	}
}

func (p *parser) parseInterface(start model.Position, declare bool) model.Node {
	p.expectWord("interface")
	decl := &model.InterfaceDeclaration{Declare: declare, ID: p.ident()}
	if p.is("<") {
		decl.TypeParameters = p.parseTypeParameterDeclaration()
	}
	if p.eatWord("extends") {
		decl.Extends = p.parseInterfaceExtends()
	}
	decl.Body = p.parseObjectType(false)
	return done(p, decl, start)
}

// parseDeclare parses the ambient "declare ..." forms.
func (p *parser) parseDeclare(start model.Position) model.Node {
	p.expectWord("declare")
	switch p.tok.text {
	case "var", "let", "const":
		return p.parseDeclareVariable(start)
	case "function":
		return p.parseDeclareFunction(start)
	case "class":
		return p.parseDeclareClass(start)
	case "type":
		alias := p.parseTypeAlias(start).(*model.TypeAlias)
		return done(p, &model.DeclareTypeAlias{ID: alias.ID, TypeParameters: alias.TypeParameters, Right: alias.Right}, start)
	case "opaque":
		return p.parseOpaqueType(start, true)
	case "interface":
		return p.parseInterface(start, true)
	case "export":
		return p.parseDeclareExport(start)
	case "module":
		return p.parseDeclareModule(start)
	}
	p.fail("declare " + p.tok.text + " is not supported")
	return nil
}

// parseDeclareModule parses "declare module 'm' { ... }" and the
// "declare module.exports: T" statement found in its body.
func (p *parser) parseDeclareModule(start model.Position) model.Node {
	p.expectWord("module")
	if p.eat(".") {
		p.expectWord("exports")
		exports := &model.DeclareModuleExports{TypeAnnotation: p.parseTypeAnnotation()}
		p.semicolon()
		return done(p, exports, start)
	}
	decl := &model.DeclareModule{}
	if p.tok.kind == tString {
		decl.ID = p.parseSource()
	} else {
		decl.ID = p.ident()
	}
	p.expect("{")
	for !p.is("}") {
		if p.tok.kind == tEOF {
			p.unexpected()
		}
		decl.Body = append(decl.Body, p.parseStatement())
	}
	p.next()
	return done(p, decl, start)
}

func (p *parser) parseDeclareVariable(start model.Position) model.Node {
	kind := p.tok.text
	p.next()
	id := p.ident()
	if p.is(":") {
		id.TypeAnnotation = p.parseTypeAnnotation()
	}
	done(p, id, id.Span.Start)
	p.semicolon()
	return done(p, &model.DeclareVariable{DeclKind: kind, ID: id}, start)
}

func (p *parser) parseDeclareFunction(start model.Position) model.Node {
	p.expectWord("function")
	id := p.ident()
	fstart := p.tok.start
	fn := &model.FunctionTypeAnnotation{}
	if p.is("<") {
		fn.TypeParameters = p.parseTypeParameterDeclaration()
	}
	p.parseFunctionTypeParams(fn)
	astart := p.tok.start
	p.expect(":")
	fn.ReturnType = p.parseType()
	done(p, fn, fstart)
	id.TypeAnnotation = done(p, &model.TypeAnnotation{TypeAnnotation: fn}, astart)
	done(p, id, id.Span.Start)
	decl := &model.DeclareFunction{ID: id, Predicate: p.parsePredicate()}
	p.semicolon()
	return done(p, decl, start)
}

func (p *parser) parseDeclareClass(start model.Position) model.Node {
	p.expectWord("class")
	decl := &model.DeclareClass{ID: p.ident()}
	if p.is("<") {
		decl.TypeParameters = p.parseTypeParameterDeclaration()
	}
	if p.eatWord("extends") {
		decl.Extends = p.parseInterfaceExtends()
	}
	if p.eatWord("implements") {
		for {
			istart := p.tok.start
			impl := &model.ClassImplements{ID: p.ident()}
			if p.is("<") {
				impl.TypeParameters = p.parseTypeArguments()
			}
			decl.Implements = append(decl.Implements, done(p, impl, istart))
			if !p.eat(",") {
				break
			}
		}
	}
	decl.Body = p.parseObjectType(true)
	return done(p, decl, start)
}

func (p *parser) parseDeclareExport(start model.Position) model.Node {
	p.expectWord("export")
	decl := &model.DeclareExportDeclaration{}
	dstart := p.tok.start
	if p.eatWord("default") {
		decl.Default = true
		dstart = p.tok.start
		switch {
		case p.isWord("function"):
			decl.Declaration = p.parseDeclareFunction(dstart)
		case p.isWord("class"):
			decl.Declaration = p.parseDeclareClass(dstart)
		default:
			decl.Declaration = p.parseType()
			p.semicolon()
		}
		return done(p, decl, start)
	}

	switch {
	case p.isWord("var") || p.isWord("let") || p.isWord("const"):
		decl.Declaration = p.parseDeclareVariable(dstart)
	case p.isWord("function"):
		decl.Declaration = p.parseDeclareFunction(dstart)
	case p.isWord("class"):
		decl.Declaration = p.parseDeclareClass(dstart)
	case p.isWord("type"):
		decl.Declaration = p.parseTypeAlias(dstart)
	case p.isWord("opaque"):
		decl.Declaration = p.parseOpaqueType(dstart, true)
	case p.isWord("interface"):
		decl.Declaration = p.parseInterface(dstart, false)
	case p.is("{"):
		decl.Specifiers = p.parseExportSpecifiers()
		if p.eatWord("from") {
			decl.Source = p.parseSource()
		}
		p.semicolon()
	default:
		p.unexpected()
	}
	return done(p, decl, start)
}
