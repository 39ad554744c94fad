package parser

import (
	"fmt"

	"github.com/cmmoran/flowts/internal/model"
)

// Grammar toggles optional syntax extensions. Flow annotations, optional
// chaining, nullish coalescing, class fields, private members, dynamic import
// and decorators are always recognized.
type Grammar struct {
	JSX bool `json:"jsx" yaml:"jsx" mapstructure:"jsx"`
}

// DefaultGrammar enables every extension.
func DefaultGrammar() Grammar {
	return Grammar{JSX: true}
}

// SyntaxError reports a parse failure at a source position.
type SyntaxError struct {
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s (%d:%d)", e.Msg, e.Line, e.Column+1)
}

// Parse parses a Flow-annotated module. Comments are collected in source
// order and attached to the statement and member lists that own them.
func Parse(src string, g Grammar) (f *model.File, err error) {
	p := &parser{lx: newLexer(src), g: g}
	defer func() {
		if r := recover(); r != nil {
			se, ok := r.(*SyntaxError)
			if !ok {
				panic(r)
			}
			f, err = nil, se
		}
	}()
	prog := p.parseProgram()
	attachComments(prog, p.lx.comments)
	return &model.File{Program: prog, Comments: p.lx.comments}, nil
}

type parser struct {
	lx   *lexer
	g    Grammar
	tok  token
	prev token

	inFunction  bool
	inAsync     bool
	inGenerator bool
	// noIn forbids the "in" operator while parsing a for-statement head.
	noIn bool
	// noAnonFn forbids "T => U" function types in arrow return positions.
	noAnonFn bool
}

type snapshot struct {
	lx       lexer
	tok      token
	prev     token
	noIn     bool
	noAnonFn bool
}

func (p *parser) save() snapshot {
	return snapshot{lx: *p.lx, tok: p.tok, prev: p.prev, noIn: p.noIn, noAnonFn: p.noAnonFn}
}

func (p *parser) restore(s snapshot) {
	*p.lx = s.lx
	p.tok, p.prev = s.tok, s.prev
	p.noIn, p.noAnonFn = s.noIn, s.noAnonFn
}

// try runs fn speculatively. On a syntax error the parser is rewound and ok
// is false.
func (p *parser) try(fn func() model.Node) (n model.Node, ok bool) {
	s := p.save()
	defer func() {
		if r := recover(); r != nil {
			if _, isSyntax := r.(*SyntaxError); !isSyntax {
				panic(r)
			}
			p.restore(s)
			n, ok = nil, false
		}
	}()
	return fn(), true
}

func (p *parser) next() {
	p.prev = p.tok
	p.tok = p.lx.next()
}

func (p *parser) nextTag() {
	p.prev = p.tok
	p.tok = p.lx.jsxTag()
}

func (p *parser) nextChild() {
	p.prev = p.tok
	p.tok = p.lx.jsxChild()
}

// peek returns the token after the current one without consuming anything.
func (p *parser) peek() token {
	s := p.save()
	p.next()
	t := p.tok
	p.restore(s)
	return t
}

func (p *parser) fail(msg string) {
	p.lx.fail(p.tok.start, msg)
}

func (p *parser) unexpected() {
	if p.tok.kind == tEOF {
		p.fail("unexpected end of input")
	}
	p.fail(fmt.Sprintf("unexpected token %q", p.tok.text))
}

func (p *parser) is(punct string) bool { return p.tok.is(punct) }

func (p *parser) isWord(w string) bool { return p.tok.isName(w) }

func (p *parser) eat(punct string) bool {
	if p.tok.is(punct) {
		p.next()
		return true
	}
	return false
}

func (p *parser) eatWord(w string) bool {
	if p.tok.isName(w) {
		p.next()
		return true
	}
	return false
}

func (p *parser) expect(punct string) {
	if !p.eat(punct) {
		p.fail(fmt.Sprintf("expected %q, found %q", punct, p.tok.text))
	}
}

func (p *parser) expectWord(w string) {
	if !p.eatWord(w) {
		p.fail(fmt.Sprintf("expected %q, found %q", w, p.tok.text))
	}
}

// expectGT consumes one ">" in type context, splitting ">>", ">=" and
// friends that the regular-mode lexer scans greedily.
func (p *parser) expectGT() {
	if p.is(">") {
		p.next()
		return
	}
	if p.tok.kind == tPunct && len(p.tok.text) > 1 && p.tok.text[0] == '>' {
		p.prev = p.tok
		p.prev.text = ">"
		p.prev.end = p.tok.start
		p.prev.end.Offset++
		p.prev.end.Column++
		p.tok.text = p.tok.text[1:]
		p.tok.start = p.prev.end
		p.tok.nlBefore = false
		return
	}
	p.fail(fmt.Sprintf("expected %q, found %q", ">", p.tok.text))
}

// semicolon applies automatic semicolon insertion.
func (p *parser) semicolon() {
	if p.eat(";") {
		return
	}
	if p.is("}") || p.tok.kind == tEOF || p.tok.nlBefore {
		return
	}
	p.unexpected()
}

// isIdent reports whether the current token can be a binding identifier.
func (p *parser) isIdent() bool {
	return p.tok.kind == tName && !reserved[p.tok.text]
}

func (p *parser) ident() *model.Identifier {
	if !p.isIdent() {
		p.fail(fmt.Sprintf("expected identifier, found %q", p.tok.text))
	}
	return p.anyName()
}

// anyName accepts reserved words too, for property names and type members.
func (p *parser) anyName() *model.Identifier {
	if p.tok.kind != tName {
		p.fail(fmt.Sprintf("expected name, found %q", p.tok.text))
	}
	start := p.tok.start
	id := &model.Identifier{Name: p.tok.text}
	p.next()
	return done(p, id, start)
}

// done sets the span of n from start to the end of the last consumed token.
func done[T model.Node](p *parser, n T, start model.Position) T {
	n.Base().Span = model.Span{Start: start, End: p.prev.end}
	return n
}

func (p *parser) parseProgram() *model.Program {
	prog := &model.Program{Interpreter: p.lx.interpreter()}
	p.next()
	for p.tok.kind != tEOF {
		prog.Body = append(prog.Body, p.parseStatement())
	}
	prog.Span = model.Span{Start: model.Position{Line: 1}, End: p.tok.end}
	return prog
}
