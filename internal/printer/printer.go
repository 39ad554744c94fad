// Package printer renders a syntax tree back to source text.
package printer

import (
	"fmt"
	"strings"

	"github.com/cmmoran/flowts/internal/model"
)

// Generate renders f as source text. src is the text f was parsed from; it is
// consulted to keep blank lines between statements and members.
func Generate(f *model.File, src string, format Format) string {
	if f == nil || f.Program == nil {
		return ""
	}
	p := &printer{
		f:       format.Normalize(),
		src:     src,
		printed: map[*model.Comment]bool{},
	}
	p.program(f.Program)
	out := strings.TrimRight(string(p.out), " \n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

type printer struct {
	f     Format
	src   string
	out   []byte
	depth int

	// printed records comments already written so none appears twice.
	printed map[*model.Comment]bool
	// lineOpen is set after a line comment; the next write starts a new line.
	lineOpen bool

	// measuring marks the scratch printers used to test whether a group fits
	// on one line. broken is set when the scratch output cannot be flat.
	measuring bool
	broken    bool
}

func (p *printer) write(s string) {
	if p.lineOpen {
		p.newline()
	}
	p.out = append(p.out, s...)
}

// newline ends the current line and indents the next one. Indentation left
// on an empty line is removed.
func (p *printer) newline() {
	p.lineOpen = false
	i := len(p.out)
	for i > 0 && p.out[i-1] == ' ' {
		i--
	}
	if i == 0 || p.out[i-1] == '\n' {
		p.out = p.out[:i]
	}
	p.out = append(p.out, '\n')
	for range p.depth * p.f.TabWidth {
		p.out = append(p.out, ' ')
	}
}

func (p *printer) col() int {
	i := len(p.out) - 1
	for i >= 0 && p.out[i] != '\n' {
		i--
	}
	return len(p.out) - i - 1
}

func (p *printer) semi() {
	if p.f.Semicolons {
		p.write(";")
	}
}

// fits renders with a scratch printer and reports whether the first line of
// the result stays within the print width.
func (p *printer) fits(render func(q *printer)) bool {
	if p.measuring {
		return true
	}
	q := &printer{
		f:         p.f,
		src:       p.src,
		depth:     p.depth,
		printed:   p.printed,
		measuring: true,
	}
	render(q)
	line, _, _ := strings.Cut(string(q.out), "\n")
	return !q.broken && p.col()+len(line) <= p.f.PrintWidth
}

// node prints n with its comments.
func (p *printer) node(n model.Node) {
	if model.IsNil(n) {
		return
	}
	p.leading(n)
	p.body(n)
	p.trailing(n)
}

func (p *printer) body(n model.Node) {
	if model.IsNil(n) {
		return
	}
	if p.statement(n) || p.expression(n) || p.jsx(n) || p.tsType(n) || p.tsDeclaration(n) {
		return
	}
	p.write(fmt.Sprintf("/* %s */", n.Kind()))
}

func (p *printer) program(prog *model.Program) {
	if prog.Interpreter != "" {
		p.write("#!" + prog.Interpreter)
		p.newline()
	}
	if len(prog.Body) == 0 {
		p.comments(prog.Inner)
		return
	}
	p.leading(prog)
	p.statements(prog.Body)
	p.trailing(prog)
}

// statements prints a statement or member list, one item per line, keeping
// single blank lines found between items in the source.
func (p *printer) statements(items []model.Node) {
	first := true
	var prev model.Node
	for _, s := range items {
		if model.IsNil(s) {
			continue
		}
		if !first {
			p.newline()
			if p.gap(prev, s) {
				p.newline()
			}
		}
		first = false
		p.node(s)
		prev = s
	}
}

// braced prints a "{ ... }" block of statements or members. Inner comments
// of an empty owner are kept.
func (p *printer) braced(owner model.Node, items []model.Node) {
	p.write("{")
	if len(items) == 0 {
		if inner := owner.Base().Inner; p.unprinted(inner) {
			p.depth++
			p.newline()
			p.comments(inner)
			p.depth--
			p.newline()
		}
		p.write("}")
		return
	}
	p.depth++
	p.newline()
	p.statements(items)
	p.depth--
	p.newline()
	p.write("}")
}

// ---------------------------------------------------------------------------
// LISTS
// ---------------------------------------------------------------------------

type listStyle struct {
	open, close string
	// pad puts spaces inside the brackets of a one-line list.
	pad bool
	// members separates items with semicolons instead of commas.
	members bool
	// trailing allows a separator after the last item of a multi-line list.
	trailing bool
	// expand forces the multi-line form.
	expand bool
}

// list prints items as a comma (or semicolon) separated group. The group
// stays on one line when it fits and no item carries comments.
func (p *printer) list(owner model.Node, items []model.Node, ls listStyle) {
	if len(items) == 0 {
		p.write(ls.open)
		if owner != nil {
			if inner := owner.Base().Inner; p.unprinted(inner) {
				p.depth++
				p.newline()
				p.comments(inner)
				p.depth--
				p.newline()
			}
		}
		p.write(ls.close)
		return
	}
	multi := ls.expand || anyComments(items)
	if !multi && !p.measuring {
		multi = !p.fits(func(q *printer) { q.listLine(items, ls) })
	}
	if multi {
		p.listBlock(items, ls)
	} else {
		p.listLine(items, ls)
	}
}

func (p *printer) listLine(items []model.Node, ls listStyle) {
	p.write(ls.open)
	if ls.pad {
		p.write(" ")
	}
	for i, it := range items {
		if i > 0 {
			if ls.members {
				p.write("; ")
			} else {
				p.write(", ")
			}
		}
		p.node(it)
	}
	if !ls.members && model.IsNil(items[len(items)-1]) {
		// A trailing hole needs its comma.
		p.write(",")
	}
	if ls.pad {
		p.write(" ")
	}
	p.write(ls.close)
}

func (p *printer) listBlock(items []model.Node, ls listStyle) {
	p.write(ls.open)
	p.depth++
	var prev model.Node
	for i, it := range items {
		p.newline()
		if prev != nil && !model.IsNil(it) && p.gap(prev, it) {
			p.newline()
		}
		last := i == len(items)-1
		if model.IsNil(it) {
			p.write(",")
			prev = nil
			continue
		}
		p.leading(it)
		p.body(it)
		switch {
		case ls.members:
			if p.f.Semicolons {
				p.write(";")
			}
		case !last:
			p.write(",")
		case ls.trailing && it.Kind() != model.KindRestElement:
			p.write(",")
		}
		p.trailing(it)
		prev = it
	}
	p.depth--
	p.newline()
	p.write(ls.close)
}

func anyComments(items []model.Node) bool {
	for _, it := range items {
		if !model.IsNil(it) && it.Base().HasComments() {
			return true
		}
	}
	return false
}

// expanded reports whether the source put the first item of a bracketed
// list on a later line than the opening bracket.
func expanded(owner model.Node, items []model.Node) bool {
	if len(items) == 0 || model.IsNil(items[0]) {
		return false
	}
	os, is := owner.Base().Span, items[0].Base().Span
	return os.Valid() && is.Valid() && is.Start.Line > os.Start.Line
}

// ---------------------------------------------------------------------------
// COMMENTS AND BLANK LINES
// ---------------------------------------------------------------------------

func (p *printer) unprinted(cs []*model.Comment) bool {
	for _, c := range cs {
		if !p.printed[c] {
			return true
		}
	}
	return false
}

// comments prints cs one per line, keeping blank lines between them.
func (p *printer) comments(cs []*model.Comment) {
	var prev *model.Comment
	for _, c := range cs {
		if p.printed[c] {
			continue
		}
		if prev != nil {
			p.newline()
			if p.blankBetween(prev.Span.End.Offset, c.Span.Start.Offset) {
				p.newline()
			}
		}
		p.comment(c)
		prev = c
	}
}

func (p *printer) comment(c *model.Comment) {
	if !p.measuring {
		p.printed[c] = true
	}
	if !c.Block {
		p.write("//" + c.Text)
		p.lineOpen = true
		p.broken = true
		return
	}
	text := p.reindent(c.Text)
	if strings.Contains(text, "\n") {
		p.broken = true
	}
	p.write("/*" + text + "*/")
}

// reindent aligns the continuation lines of a documentation block whose
// lines all start with "*".
func (p *printer) reindent(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return text
	}
	last := len(lines) - 1
	for i, l := range lines[1:] {
		t := strings.TrimSpace(l)
		if !strings.HasPrefix(t, "*") && (t != "" || i+1 != last) {
			return text
		}
	}
	indent := strings.Repeat(" ", p.depth*p.f.TabWidth)
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + " " + strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, "\n")
}

func (p *printer) leading(n model.Node) {
	b := n.Base()
	for i, c := range b.Leading {
		if p.printed[c] {
			continue
		}
		p.comment(c)
		next := b.Span.Start
		if i+1 < len(b.Leading) {
			next = b.Leading[i+1].Span.Start
		}
		if c.Block && (!b.Span.Valid() || c.Span.End.Line == next.Line) {
			p.write(" ")
			continue
		}
		p.newline()
		if b.Span.Valid() && p.blankBetween(c.Span.End.Offset, next.Offset) {
			p.newline()
		}
	}
}

// trailing prints the trailing comments of n. A comment that started on the
// line n ends on stays there; any other goes on its own line.
func (p *printer) trailing(n model.Node) {
	b := n.Base()
	end := b.Span.End
	for _, c := range b.Trailing {
		if p.printed[c] {
			continue
		}
		if b.Span.Valid() && c.Span.Start.Line == end.Line {
			p.write(" ")
		} else {
			p.newline()
			if b.Span.Valid() && p.blankBetween(end.Offset, c.Span.Start.Offset) {
				p.newline()
			}
		}
		p.comment(c)
		end = c.Span.End
	}
}

// gap reports whether a blank line separated prev and next in the source,
// counting the comments printed with them.
func (p *printer) gap(prev, next model.Node) bool {
	pb, nb := prev.Base(), next.Base()
	if !pb.Span.Valid() || !nb.Span.Valid() {
		return false
	}
	from := pb.Span.End.Offset
	for _, c := range pb.Trailing {
		from = max(from, c.Span.End.Offset)
	}
	to := nb.Span.Start.Offset
	for _, c := range nb.Leading {
		if !p.printed[c] {
			to = min(to, c.Span.Start.Offset)
		}
	}
	return p.blankBetween(from, to)
}

// blankBetween reports whether the source holds an empty line between the
// offsets from and to.
func (p *printer) blankBetween(from, to int) bool {
	if from < 0 || to > len(p.src) || from >= to {
		return false
	}
	seenNewline := false
	for i := from; i < to; i++ {
		switch p.src[i] {
		case '\n':
			if seenNewline {
				return true
			}
			seenNewline = true
		case ' ', '\t', '\r':
		default:
			seenNewline = false
		}
	}
	return false
}
