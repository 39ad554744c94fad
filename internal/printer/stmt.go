package printer

import (
	"github.com/cmmoran/flowts/internal/model"
)

func (p *printer) statement(n model.Node) bool {
	switch n := n.(type) {
	case *model.ExpressionStatement:
		if !p.f.Semicolons && startsRisky(n.Expression) {
			p.write(";")
		}
		p.node(n.Expression)
		p.semi()
	case *model.BlockStatement:
		p.braced(n, n.Body)
	case *model.EmptyStatement:
		p.write(";")
	case *model.DebuggerStatement:
		p.write("debugger")
		p.semi()
	case *model.WithStatement:
		p.write("with (")
		p.node(n.Object)
		p.write(")")
		p.clause(n.Body)
	case *model.ReturnStatement:
		p.keywordArgument("return", n.Argument)
	case *model.ThrowStatement:
		p.keywordArgument("throw", n.Argument)
	case *model.LabeledStatement:
		p.node(n.Label)
		p.write(": ")
		p.node(n.Body)
	case *model.BreakStatement:
		p.keywordArgument("break", n.Label)
	case *model.ContinueStatement:
		p.keywordArgument("continue", n.Label)
	case *model.IfStatement:
		p.ifStatement(n)
	case *model.SwitchStatement:
		p.write("switch (")
		p.node(n.Discriminant)
		p.write(") ")
		p.braced(n, n.Cases)
	case *model.SwitchCase:
		p.switchCase(n)
	case *model.TryStatement:
		p.write("try ")
		p.node(n.Block)
		if n.Handler != nil {
			p.write(" ")
			p.node(n.Handler)
		}
		if n.Finalizer != nil {
			p.write(" finally ")
			p.node(n.Finalizer)
		}
	case *model.CatchClause:
		p.write("catch ")
		if n.Param != nil {
			p.write("(")
			p.node(n.Param)
			p.write(") ")
		}
		p.node(n.Body)
	case *model.WhileStatement:
		p.write("while (")
		p.node(n.Test)
		p.write(")")
		p.clause(n.Body)
	case *model.DoWhileStatement:
		p.write("do")
		p.clause(n.Body)
		if _, ok := n.Body.(*model.BlockStatement); ok {
			p.write(" ")
		} else {
			p.newline()
		}
		p.write("while (")
		p.node(n.Test)
		p.write(")")
		p.semi()
	case *model.ForStatement:
		p.write("for (")
		p.head(n.Init)
		p.write(";")
		if n.Test != nil {
			p.write(" ")
			p.node(n.Test)
		}
		p.write(";")
		if n.Update != nil {
			p.write(" ")
			p.node(n.Update)
		}
		p.write(")")
		p.clause(n.Body)
	case *model.ForInStatement:
		p.write("for (")
		p.head(n.Left)
		p.write(" in ")
		p.node(n.Right)
		p.write(")")
		p.clause(n.Body)
	case *model.ForOfStatement:
		p.write("for ")
		if n.Await {
			p.write("await ")
		}
		p.write("(")
		p.head(n.Left)
		p.write(" of ")
		p.node(n.Right)
		p.write(")")
		p.clause(n.Body)
	case *model.VariableDeclaration:
		p.variables(n)
		p.semi()
	case *model.VariableDeclarator:
		p.node(n.ID)
		if n.Init != nil {
			p.write(" = ")
			p.node(n.Init)
		}
	case *model.FunctionDeclaration:
		p.function(&n.Function)
	case *model.ClassDeclaration:
		p.classDeclaration(n, true)
	case *model.ClassBody:
		p.braced(n, n.Body)
	case *model.ClassMethod:
		p.classMethod(n)
	case *model.ClassProperty:
		p.classProperty(n)
	case *model.ImportDeclaration:
		p.importDeclaration(n)
	case *model.ImportSpecifier:
		if n.ImportKind != "" && n.ImportKind != "value" {
			p.write(n.ImportKind + " ")
		}
		p.node(n.Imported)
		if n.Local != nil && nameOf(n.Local) != nameOf(n.Imported) {
			p.write(" as ")
			p.node(n.Local)
		}
	case *model.ImportDefaultSpecifier:
		p.node(n.Local)
	case *model.ImportNamespaceSpecifier:
		p.write("* as ")
		p.node(n.Local)
	case *model.ExportNamedDeclaration:
		p.exportNamed(n)
	case *model.ExportSpecifier:
		p.node(n.Local)
		if n.Exported != nil && nameOf(n.Exported) != nameOf(n.Local) {
			p.write(" as ")
			p.node(n.Exported)
		}
	case *model.ExportDefaultDeclaration:
		p.exported("export default ", n.Declaration)
		if !isDeclaration(n.Declaration) {
			p.semi()
		}
	case *model.ExportAllDeclaration:
		p.write("export ")
		if n.ExportKind == "type" {
			p.write("type ")
		}
		p.write("*")
		if n.Exported != nil {
			p.write(" as ")
			p.node(n.Exported)
		}
		p.write(" from ")
		p.node(n.Source)
		p.semi()
	default:
		return false
	}
	return true
}

func (p *printer) keywordArgument(kw string, arg model.Node) {
	p.write(kw)
	if arg != nil {
		p.write(" ")
		p.node(arg)
	}
	p.semi()
}

// clause prints the body of a control statement.
func (p *printer) clause(body model.Node) {
	switch body.(type) {
	case *model.EmptyStatement:
		p.write(";")
	default:
		p.write(" ")
		p.node(body)
	}
}

func (p *printer) ifStatement(n *model.IfStatement) {
	p.write("if (")
	p.node(n.Test)
	p.write(")")
	p.clause(n.Consequent)
	if n.Alternate == nil {
		return
	}
	if _, ok := n.Consequent.(*model.BlockStatement); ok {
		p.write(" ")
	} else {
		p.newline()
	}
	p.write("else")
	p.clause(n.Alternate)
}

func (p *printer) switchCase(n *model.SwitchCase) {
	if n.Test == nil {
		p.write("default:")
	} else {
		p.write("case ")
		p.node(n.Test)
		p.write(":")
	}
	if len(n.Consequent) == 1 {
		if b, ok := n.Consequent[0].(*model.BlockStatement); ok {
			p.write(" ")
			p.node(b)
			return
		}
	}
	if len(n.Consequent) == 0 {
		return
	}
	p.depth++
	p.newline()
	p.statements(n.Consequent)
	p.depth--
}

// head prints the initializer of a for statement, where a declaration takes
// no semicolon.
func (p *printer) head(n model.Node) {
	if d, ok := n.(*model.VariableDeclaration); ok {
		p.leading(d)
		p.variables(d)
		p.trailing(d)
		return
	}
	p.node(n)
}

func (p *printer) variables(d *model.VariableDeclaration) {
	if d.Declare {
		p.write("declare ")
	}
	p.write(d.DeclKind + " ")
	for i, decl := range d.Declarations {
		if i > 0 {
			p.write(", ")
		}
		p.node(decl)
	}
}

// ---------------------------------------------------------------------------
// FUNCTIONS AND CLASSES
// ---------------------------------------------------------------------------

func (p *printer) function(fn *model.Function) {
	if fn.Async {
		p.write("async ")
	}
	p.write("function")
	if fn.Generator {
		p.write("*")
	}
	p.write(" ")
	p.node(fn.ID)
	p.signature(fn)
	p.write(" ")
	p.node(fn.Body)
}

// signature prints type parameters, parameters and return type.
func (p *printer) signature(fn *model.Function) {
	p.node(fn.TypeParameters)
	p.params(fn.Params)
	p.annotation(fn.ReturnType)
}

func (p *printer) params(params []model.Node) {
	p.list(nil, params, listStyle{
		open:     "(",
		close:    ")",
		trailing: p.f.allCommas(),
	})
}

func (p *printer) decorators(ds []model.Node) {
	for _, d := range ds {
		p.node(d)
		p.newline()
	}
}

func (p *printer) classDeclaration(n *model.ClassDeclaration, decorated bool) {
	if decorated {
		p.decorators(n.Decorators)
	}
	if n.Declare {
		p.write("declare ")
	}
	if n.Abstract {
		p.write("abstract ")
	}
	p.class(&n.Class)
}

func (p *printer) class(c *model.Class) {
	p.write("class")
	if c.ID != nil {
		p.write(" ")
		p.node(c.ID)
	}
	p.node(c.TypeParameters)
	if c.SuperClass != nil {
		p.write(" extends ")
		p.node(c.SuperClass)
		p.node(c.SuperTypeParameters)
	}
	if len(c.Implements) > 0 {
		p.write(" implements ")
		for i, impl := range c.Implements {
			if i > 0 {
				p.write(", ")
			}
			p.node(impl)
		}
	}
	p.write(" ")
	if lit, ok := c.Body.(*model.TSTypeLiteral); ok {
		p.leading(lit)
		p.members(lit, lit.Members, true)
		p.trailing(lit)
		return
	}
	p.node(c.Body)
}

func (p *printer) classMethod(m *model.ClassMethod) {
	p.decorators(m.Decorators)
	if m.Static {
		p.write("static ")
	}
	if m.Async {
		p.write("async ")
	}
	if m.Method == "get" || m.Method == "set" {
		p.write(m.Method + " ")
	}
	if m.Generator {
		p.write("*")
	}
	p.key(m.Key, m.Computed)
	if m.Optional {
		p.write("?")
	}
	p.signature(&m.Function)
	if m.Body == nil {
		p.semi()
		return
	}
	p.write(" ")
	p.node(m.Body)
}

func (p *printer) classProperty(c *model.ClassProperty) {
	p.decorators(c.Decorators)
	if c.Declare {
		p.write("declare ")
	}
	if c.Static {
		p.write("static ")
	}
	if c.Readonly {
		p.write("readonly ")
	}
	p.key(c.Key, c.Computed)
	if c.Optional {
		p.write("?")
	}
	p.annotation(c.TypeAnnotation)
	if c.Value != nil {
		p.write(" = ")
		p.node(c.Value)
	}
	p.semi()
}

// ---------------------------------------------------------------------------
// MODULES
// ---------------------------------------------------------------------------

func (p *printer) importDeclaration(n *model.ImportDeclaration) {
	p.write("import ")
	if n.ImportKind != "" && n.ImportKind != "value" {
		p.write(n.ImportKind + " ")
	}
	var named []model.Node
	wrote := false
	for _, s := range n.Specifiers {
		switch s.(type) {
		case *model.ImportDefaultSpecifier, *model.ImportNamespaceSpecifier:
			if wrote {
				p.write(", ")
			}
			p.node(s)
			wrote = true
		default:
			named = append(named, s)
		}
	}
	if len(named) > 0 {
		if wrote {
			p.write(", ")
		}
		p.specifiers(named)
		wrote = true
	}
	if wrote {
		p.write(" from ")
	}
	p.node(n.Source)
	p.semi()
}

func (p *printer) exportNamed(n *model.ExportNamedDeclaration) {
	if n.Declaration != nil {
		p.exported("export ", n.Declaration)
		return
	}
	p.write("export ")
	if n.ExportKind == "type" {
		p.write("type ")
	}
	p.specifiers(n.Specifiers)
	if n.Source != nil {
		p.write(" from ")
		p.node(n.Source)
	}
	p.semi()
}

// exported prints prefix and decl, hoisting class decorators above the
// export keyword.
func (p *printer) exported(prefix string, decl model.Node) {
	c, ok := decl.(*model.ClassDeclaration)
	if !ok || len(c.Decorators) == 0 {
		p.write(prefix)
		p.node(decl)
		return
	}
	p.decorators(c.Decorators)
	p.write(prefix)
	p.leading(c)
	p.classDeclaration(c, false)
	p.trailing(c)
}

func (p *printer) specifiers(specs []model.Node) {
	p.list(nil, specs, listStyle{
		open:     "{",
		close:    "}",
		pad:      p.f.BracketSpacing,
		trailing: p.f.es5Commas(),
	})
}

// isDeclaration reports whether n ends without a semicolon after export
// default.
func isDeclaration(n model.Node) bool {
	switch n.(type) {
	case *model.FunctionDeclaration, *model.ClassDeclaration, *model.TSInterfaceDeclaration:
		return true
	}
	return false
}

// nameOf returns the name an identifier or string literal stands for.
func nameOf(n model.Node) string {
	switch n := n.(type) {
	case *model.Identifier:
		return n.Name
	case *model.StringLiteral:
		return n.Value
	}
	return ""
}

// startsRisky reports whether a statement starting with n would continue the
// previous line when semicolons are omitted.
func startsRisky(n model.Node) bool {
	switch n := n.(type) {
	case *model.ParenthesizedExpression, *model.TSAsExpression, *model.ArrayExpression,
		*model.ArrayPattern, *model.TemplateLiteral, *model.RegExpLiteral:
		return true
	case *model.UnaryExpression:
		return n.Operator == "+" || n.Operator == "-"
	case *model.UpdateExpression:
		if n.Prefix {
			return true
		}
		return startsRisky(n.Argument)
	case *model.ArrowFunctionExpression:
		return !n.Async
	case *model.BinaryExpression:
		return startsRisky(n.Left)
	case *model.AssignmentExpression:
		return startsRisky(n.Left)
	case *model.MemberExpression:
		return startsRisky(n.Object)
	case *model.CallExpression:
		return startsRisky(n.Callee)
	case *model.TaggedTemplateExpression:
		return startsRisky(n.Tag)
	case *model.ConditionalExpression:
		return startsRisky(n.Test)
	case *model.SequenceExpression:
		return len(n.Expressions) > 0 && startsRisky(n.Expressions[0])
	}
	return false
}
