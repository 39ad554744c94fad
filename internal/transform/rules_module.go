package transform

import (
	"regexp"

	"github.com/cmmoran/flowts/internal/flavor"
	"github.com/cmmoran/flowts/internal/model"
)

var (
	relativeSource = regexp.MustCompile(`^\.\.?/`)
	scriptSuffix   = regexp.MustCompile(`\.jsx?$`)
)

// stripSuffix removes the .js or .jsx extension from a relative module
// source, keeping the quote style of the literal.
func stripSuffix(src model.Node) {
	lit, ok := src.(*model.StringLiteral)
	if !ok || !relativeSource.MatchString(lit.Value) {
		return
	}
	suffix := scriptSuffix.FindString(lit.Value)
	if suffix == "" {
		return
	}
	lit.Value = lit.Value[:len(lit.Value)-len(suffix)]
	if len(lit.Raw) >= 2 {
		q := lit.Raw[len(lit.Raw)-1:]
		body := lit.Raw[1 : len(lit.Raw)-1]
		if len(body) >= len(suffix) && body[len(body)-len(suffix):] == suffix {
			lit.Raw = lit.Raw[:1] + body[:len(body)-len(suffix)] + q
		} else {
			lit.Raw = ""
		}
	}
}

func exitExportNamed(_ *State, n, _ model.Node) Result {
	e := n.(*model.ExportNamedDeclaration)
	if e.Declaration != nil {
		e.ExportKind = "value"
	}
	stripSuffix(e.Source)
	return Keep()
}

// exitExportAll downgrades "export type *", which has no target equivalent.
func exitExportAll(_ *State, n, _ model.Node) Result {
	e := n.(*model.ExportAllDeclaration)
	e.ExportKind = "value"
	stripSuffix(e.Source)
	return Keep()
}

func importedName(s *model.ImportSpecifier) string {
	switch id := s.Imported.(type) {
	case *model.Identifier:
		return id.Name
	case *model.StringLiteral:
		return id.Value
	}
	return ""
}

func localName(n model.Node) string {
	if id, ok := n.(*model.Identifier); ok {
		return id.Name
	}
	return ""
}

// noteReactImports records the framework names a program imports under
// their own name, before any reference to them is converted.
func (st *State) noteReactImports(p *model.Program) {
	for _, stmt := range p.Body {
		imp, ok := stmt.(*model.ImportDeclaration)
		if !ok || sourceValue(imp.Source) != flavor.ReactModule {
			continue
		}
		for _, s := range imp.Specifiers {
			is, ok := s.(*model.ImportSpecifier)
			if !ok {
				continue
			}
			name := importedName(is)
			if _, ok := flavor.LookupReactMember(name); ok && localName(is.Local) == name {
				st.UnqualifiedReact[name] = true
			}
		}
	}
}

func sourceValue(n model.Node) string {
	if lit, ok := n.(*model.StringLiteral); ok {
		return lit.Value
	}
	return ""
}

// renameReactImports rewrites framework type specifiers to their target
// names. A specifier whose new local name is already bound by the same
// declaration is dropped. A specifier bound to another local name keeps that
// name.
func (st *State) renameReactImports(imp *model.ImportDeclaration) {
	bound := map[string]bool{}
	for _, s := range imp.Specifiers {
		if is, ok := s.(*model.ImportSpecifier); ok {
			bound[localName(is.Local)] = true
		}
	}
	out := make([]model.Node, 0, len(imp.Specifiers))
	var extra []model.Node
	for _, s := range imp.Specifiers {
		is, ok := s.(*model.ImportSpecifier)
		if !ok {
			out = append(out, s)
			continue
		}
		name := importedName(is)
		r, ok := flavor.LookupReactMember(name)
		if !ok || r.Entry().TS == name {
			out = append(out, s)
			continue
		}
		ts := r.Entry().TS
		aliased := localName(is.Local) != name
		if !aliased {
			st.UnqualifiedReact[name] = true
			if bound[ts] {
				continue
			}
			is.Local = model.WithSpan(model.Ident(ts), is.Local)
			bound[ts] = true
		}
		is.Imported = model.WithSpan(model.Ident(ts), is.Imported)
		out = append(out, is)
		// Element<T> expands to ReactElement<ComponentProps<T>, T>.
		if r == flavor.Element && !aliased && !bound["ComponentProps"] {
			bound["ComponentProps"] = true
			extra = append(extra, &model.ImportSpecifier{
				ImportKind: is.ImportKind,
				Imported:   model.Ident("ComponentProps"),
				Local:      model.Ident("ComponentProps"),
			})
		}
	}
	imp.Specifiers = append(out, extra...)
}

// typeofAlias binds local to the type of a member of module src. An empty
// member refers to the module namespace itself.
func typeofAlias(local model.Node, src model.Node, member string) *model.TSTypeAliasDeclaration {
	imp := &model.TSImportType{Argument: model.Clone(src)}
	if member != "" {
		imp.Qualifier = model.Ident(member)
	}
	return &model.TSTypeAliasDeclaration{
		ID:             model.WithSpan(model.Ident(localName(local)), local),
		TypeAnnotation: &model.TSTypeQuery{ExprName: imp},
	}
}

// exitImport strips relative suffixes, renames framework types and splits
// the declaration by specifier kind: type specifiers move to a type-only
// import emitted first, "typeof" specifiers become type aliases.
func exitImport(st *State, n, _ model.Node) Result {
	imp := n.(*model.ImportDeclaration)
	stripSuffix(imp.Source)
	if sourceValue(imp.Source) == flavor.ReactModule {
		st.renameReactImports(imp)
	}

	var types, values, aliases []model.Node
	for _, s := range imp.Specifiers {
		switch s := s.(type) {
		case *model.ImportDefaultSpecifier:
			if imp.ImportKind == "typeof" {
				aliases = append(aliases, typeofAlias(s.Local, imp.Source, "default"))
				continue
			}
			values = append(values, s)
		case *model.ImportNamespaceSpecifier:
			if imp.ImportKind == "typeof" {
				aliases = append(aliases, typeofAlias(s.Local, imp.Source, ""))
				continue
			}
			values = append(values, s)
		case *model.ImportSpecifier:
			switch {
			case imp.ImportKind == "typeof" || s.ImportKind == "typeof":
				aliases = append(aliases, typeofAlias(s.Local, imp.Source, importedName(s)))
			case imp.ImportKind == "value" && s.ImportKind == "type":
				s.ImportKind = "value"
				types = append(types, s)
			default:
				values = append(values, s)
			}
		default:
			values = append(values, s)
		}
	}
	if len(types) == 0 && len(aliases) == 0 {
		return Keep()
	}

	var out []model.Node
	if len(types) > 0 {
		out = append(out, model.WithSpan(&model.ImportDeclaration{
			ImportKind: "type",
			Specifiers: types,
			Source:     model.Clone(imp.Source),
		}, n))
	}
	if len(values) > 0 {
		out = append(out, model.WithSpan(&model.ImportDeclaration{
			ImportKind: imp.ImportKind,
			Specifiers: values,
			Source:     model.Clone(imp.Source),
		}, n))
	}
	for _, a := range aliases {
		out = append(out, model.WithSpan(a, n))
	}
	if len(out) == 0 {
		return Remove()
	}
	b, first, last := n.Base(), out[0].Base(), out[len(out)-1].Base()
	first.Leading = b.Leading
	last.Trailing = b.Trailing
	if len(out) == 1 {
		return Replace(out[0])
	}
	return Splice(out...)
}
