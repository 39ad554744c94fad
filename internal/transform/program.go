package transform

import (
	"regexp"
	"strings"

	"github.com/cmmoran/flowts/internal/flavor"
	"github.com/cmmoran/flowts/internal/model"
)

var (
	// pragma is a marker that only means something to the origin checker.
	pragma = regexp.MustCompile(`^(@flow|@noflow)(\s+(strict|strict-local|weak))?$`)
	// pragmaLine is a docblock line holding nothing but a pragma.
	pragmaLine = regexp.MustCompile(`^\s*\*?\s*(@flow|@noflow)(\s+(strict|strict-local|weak))?\s*$`)
	// suppressionScope opens an origin suppression scope.
	suppressionScope = regexp.MustCompile(`^\$FlowIssue\b`)
)

var suppressions = strings.NewReplacer(
	"$FlowFixMe", "@ts-expect-error",
	"$FlowExpectedError", "@ts-expect-error",
	"$FlowExpectError", "@ts-expect-error",
	"$FlowIgnore", "@ts-ignore",
)

// stripPragma removes pragma lines from c and reports whether anything of c
// is left to print. A comment holding only a pragma or a suppression scope
// marker is dropped whole; a docblock only loses its pragma lines.
func stripPragma(c *model.Comment) bool {
	text := strings.Trim(c.Text, " \t\r\n*")
	if pragma.MatchString(text) || suppressionScope.MatchString(text) {
		return false
	}
	if !c.Block || !strings.Contains(c.Text, "\n") {
		return true
	}
	lines := strings.Split(c.Text, "\n")
	kept := lines[:0:0]
	for _, l := range lines {
		if !pragmaLine.MatchString(l) {
			kept = append(kept, l)
		}
	}
	if len(kept) == len(lines) {
		return true
	}
	c.Text = strings.Join(kept, "\n")
	return strings.Trim(c.Text, " \t\r\n*") != ""
}

// normalize drops pragma comments from cs and rewrites suppression
// directives in the rest.
func (st *State) normalize(cs []*model.Comment) []*model.Comment {
	if len(cs) == 0 {
		return cs
	}
	out := make([]*model.Comment, 0, len(cs))
	for _, c := range cs {
		if !stripPragma(c) {
			st.forget(c)
			continue
		}
		c.Text = suppressions.Replace(c.Text)
		out = append(out, c)
	}
	return out
}

// enterProgram normalizes the comments of top-level statements and records
// unqualified framework imports before any type is converted.
func enterProgram(st *State, n, _ model.Node) Result {
	p := n.(*model.Program)
	p.Inner = st.normalize(p.Inner)
	for _, stmt := range p.Body {
		b := stmt.Base()
		b.Leading = st.normalize(b.Leading)
		b.Trailing = st.normalize(b.Trailing)
	}
	st.noteReactImports(p)
	return Keep()
}

// exitProgram prepends the import of every utility type referenced by name.
func exitProgram(st *State, n, _ model.Node) Result {
	p := n.(*model.Program)
	if st.UsedImports.Len() == 0 {
		return Keep()
	}
	specs := make([]model.Node, 0, st.UsedImports.Len())
	for _, name := range st.UsedImports.Items() {
		specs = append(specs, &model.ImportSpecifier{
			ImportKind: "value",
			Imported:   model.Ident(name),
			Local:      model.Ident(name),
		})
	}
	imp := &model.ImportDeclaration{
		ImportKind: "value",
		Specifiers: specs,
		Source:     &model.StringLiteral{Value: flavor.SupportModule},
	}
	p.Body = append([]model.Node{imp}, p.Body...)
	return Keep()
}
