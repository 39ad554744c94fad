package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cmmoran/flowts/internal/model"
)

// lexer scans tokens on demand. The parser picks the scanning mode (regular,
// regular expression, template continuation, JSX child, JSX tag) at the point
// where the grammar knows which one applies, so the lexer never reads ahead of
// the current token.
type lexer struct {
	src       string
	pos       int
	line      int
	lineStart int
	comments  []*model.Comment
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) here() model.Position {
	return model.Position{Offset: l.pos, Line: l.line, Column: l.pos - l.lineStart}
}

// seek moves back to p, which must be a position handed out earlier.
func (l *lexer) seek(p model.Position) {
	l.pos = p.Offset
	l.line = p.Line
	l.lineStart = p.Offset - p.Column
}

// advance moves to offset to, counting newlines on the way.
func (l *lexer) advance(to int) {
	for i := l.pos; i < to; i++ {
		if l.src[i] == '\n' {
			l.line++
			l.lineStart = i + 1
		}
	}
	l.pos = to
}

func (l *lexer) fail(p model.Position, msg string) {
	panic(&SyntaxError{Line: p.Line, Column: p.Column, Msg: msg})
}

func (l *lexer) peekByte(off int) byte {
	if l.pos+off < len(l.src) {
		return l.src[l.pos+off]
	}
	return 0
}

// interpreter consumes a leading "#!" line.
func (l *lexer) interpreter() string {
	if !strings.HasPrefix(l.src, "#!") {
		return ""
	}
	end := strings.IndexByte(l.src, '\n')
	if end < 0 {
		end = len(l.src)
	}
	line := l.src[2:end]
	l.advance(end)
	return line
}

// skipSpace skips whitespace and comments, recording comments. It reports
// whether a line terminator was crossed.
func (l *lexer) skipSpace() bool {
	nl := false
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == '\n':
			nl = true
			l.advance(l.pos + 1)
		case c == ' ' || c == '\t' || c == '\r' || c == '\f' || c == '\v':
			l.pos++
		case c == '/' && l.peekByte(1) == '/':
			start := l.here()
			end := strings.IndexByte(l.src[l.pos:], '\n')
			if end < 0 {
				end = len(l.src) - l.pos
			}
			text := strings.TrimSuffix(l.src[l.pos+2:l.pos+end], "\r")
			l.advance(l.pos + 2 + len(text))
			l.comments = append(l.comments, &model.Comment{Text: text, Span: model.Span{Start: start, End: l.here()}})
		case c == '/' && l.peekByte(1) == '*':
			start := l.here()
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				l.fail(start, "unterminated comment")
			}
			text := l.src[l.pos+2 : l.pos+2+end]
			if strings.ContainsRune(text, '\n') {
				nl = true
			}
			l.advance(l.pos + 4 + end)
			l.comments = append(l.comments, &model.Comment{Text: text, Block: true, Span: model.Span{Start: start, End: l.here()}})
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(l.src[l.pos:])
			if r == '\u2028' || r == '\u2029' {
				nl = true
			} else if !unicode.IsSpace(r) && r != '\uFEFF' {
				return nl
			}
			l.pos += size
		default:
			return nl
		}
	}
	return nl
}

// next scans a token in regular mode.
func (l *lexer) next() token {
	nl := l.skipSpace()
	start := l.here()
	t := l.scan(start)
	t.nlBefore = nl
	t.start = start
	t.end = l.here()
	t.text = l.src[start.Offset:l.pos]
	return t
}

func (l *lexer) scan(start model.Position) token {
	if l.pos >= len(l.src) {
		return token{kind: tEOF}
	}
	c := l.src[l.pos]
	switch {
	case isIdentStart(c) || c >= utf8.RuneSelf:
		name := l.ident()
		if name == "" {
			l.fail(start, "unexpected character")
		}
		return token{kind: tName, value: name}
	case c == '#' && l.pos+1 < len(l.src) && isIdentStart(l.src[l.pos+1]):
		l.pos++
		return token{kind: tPrivate, value: l.ident()}
	case isDigit(c) || (c == '.' && isDigit(l.peekByte(1))):
		return l.number()
	case c == '"' || c == '\'':
		return l.string(start, c)
	case c == '`':
		l.pos++
		return l.template(start)
	}
	if c == '?' && l.peekByte(1) == '.' && isDigit(l.peekByte(2)) {
		l.pos++
		return token{kind: tPunct}
	}
	for _, p := range puncts {
		if strings.HasPrefix(l.src[l.pos:], p) {
			l.pos += len(p)
			return token{kind: tPunct}
		}
	}
	if strings.IndexByte("{}()[];,<>+-*/%&|^!~?:=.@#", c) >= 0 {
		l.pos++
		return token{kind: tPunct}
	}
	l.fail(start, "unexpected character "+strconv.QuoteRune(rune(c)))
	return token{}
}

func (l *lexer) ident() string {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c < utf8.RuneSelf {
			if !isIdentPart(c) {
				break
			}
			l.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.In(r, unicode.Mn, unicode.Mc, unicode.Pc) {
			break
		}
		l.pos += size
	}
	return l.src[start:l.pos]
}

func (l *lexer) number() token {
	src := l.src
	if src[l.pos] == '0' && l.pos+1 < len(src) && strings.IndexByte("xXoObB", src[l.pos+1]) >= 0 {
		l.pos += 2
		for l.pos < len(src) && (isHex(src[l.pos]) || src[l.pos] == '_') {
			l.pos++
		}
	} else {
		l.digits()
		if l.pos < len(src) && src[l.pos] == '.' {
			l.pos++
			l.digits()
		}
		if l.pos < len(src) && (src[l.pos] == 'e' || src[l.pos] == 'E') {
			l.pos++
			if l.pos < len(src) && (src[l.pos] == '+' || src[l.pos] == '-') {
				l.pos++
			}
			l.digits()
		}
	}
	if l.pos < len(src) && src[l.pos] == 'n' {
		l.pos++
		return token{kind: tBigInt}
	}
	return token{kind: tNumber}
}

func (l *lexer) digits() {
	for l.pos < len(l.src) && (isDigit(l.src[l.pos]) || l.src[l.pos] == '_') {
		l.pos++
	}
}

func (l *lexer) string(start model.Position, quote byte) token {
	var sb strings.Builder
	l.pos++
	for {
		if l.pos >= len(l.src) {
			l.fail(start, "unterminated string")
		}
		c := l.src[l.pos]
		switch c {
		case quote:
			l.pos++
			return token{kind: tString, value: sb.String()}
		case '\n':
			l.fail(start, "unterminated string")
		case '\\':
			l.escape(&sb)
		default:
			sb.WriteByte(c)
			l.pos++
		}
	}
}

// escape decodes one escape sequence starting at the backslash.
func (l *lexer) escape(sb *strings.Builder) {
	l.pos++
	if l.pos >= len(l.src) {
		return
	}
	c := l.src[l.pos]
	l.pos++
	switch c {
	case 'n':
		sb.WriteByte('\n')
	case 't':
		sb.WriteByte('\t')
	case 'r':
		sb.WriteByte('\r')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case '\r':
		if l.peekByte(0) == '\n' {
			l.pos++
			l.line++
			l.lineStart = l.pos
		}
	case '\n':
		l.line++
		l.lineStart = l.pos
	case 'x':
		if l.pos+2 <= len(l.src) {
			if v, err := strconv.ParseUint(l.src[l.pos:l.pos+2], 16, 8); err == nil {
				sb.WriteRune(rune(v))
				l.pos += 2
			}
		}
	case 'u':
		var hex string
		if l.peekByte(0) == '{' {
			end := strings.IndexByte(l.src[l.pos:], '}')
			if end > 0 {
				hex = l.src[l.pos+1 : l.pos+end]
				l.pos += end + 1
			}
		} else if l.pos+4 <= len(l.src) {
			hex = l.src[l.pos : l.pos+4]
			l.pos += 4
		}
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			sb.WriteRune(rune(v))
		}
	default:
		l.pos--
		r, size := utf8.DecodeRuneInString(l.src[l.pos:])
		sb.WriteRune(r)
		l.pos += size
	}
}

// template scans a template chunk after "`" or "}" up to and including the
// next "${" or closing backtick.
func (l *lexer) template(start model.Position) token {
	from := l.pos
	for {
		if l.pos >= len(l.src) {
			l.fail(start, "unterminated template")
		}
		switch l.src[l.pos] {
		case '`':
			raw := l.src[from:l.pos]
			l.advance(l.pos + 1)
			return token{kind: tTemplate, value: raw, tail: true}
		case '\\':
			l.advance(min(l.pos+2, len(l.src)))
		case '$':
			if l.peekByte(1) == '{' {
				raw := l.src[from:l.pos]
				l.advance(l.pos + 2)
				return token{kind: tTemplate, value: raw}
			}
			l.pos++
		default:
			l.advance(l.pos + 1)
		}
	}
}

// templateContinue scans the template chunk following the "}" token t.
func (l *lexer) templateContinue(t token) token {
	l.seek(t.end)
	start := t.start
	tok := l.template(start)
	tok.start = start
	tok.end = l.here()
	tok.text = l.src[start.Offset:l.pos]
	return tok
}

// regexp rescans the "/" or "/=" token t as a regular expression literal.
func (l *lexer) regexp(t token) token {
	l.seek(t.start)
	start := t.start
	l.pos++
	inClass := false
	for {
		if l.pos >= len(l.src) || l.src[l.pos] == '\n' {
			l.fail(start, "unterminated regular expression")
		}
		c := l.src[l.pos]
		l.pos++
		if c == '\\' {
			l.pos++
			continue
		}
		if c == '[' {
			inClass = true
		} else if c == ']' {
			inClass = false
		} else if c == '/' && !inClass {
			break
		}
	}
	pattern := l.src[start.Offset+1 : l.pos-1]
	flags := l.ident()
	return token{
		kind:     tRegExp,
		text:     l.src[start.Offset:l.pos],
		value:    pattern + "/" + flags,
		start:    start,
		end:      l.here(),
		nlBefore: t.nlBefore,
	}
}

// jsxChild scans JSX text, or the "{" / "<" that ends it.
func (l *lexer) jsxChild() token {
	start := l.here()
	if l.pos >= len(l.src) {
		return token{kind: tEOF, start: start, end: start}
	}
	switch l.src[l.pos] {
	case '{', '<':
		l.pos++
		return token{kind: tPunct, text: l.src[start.Offset:l.pos], start: start, end: l.here()}
	}
	end := strings.IndexAny(l.src[l.pos:], "{<")
	if end < 0 {
		end = len(l.src) - l.pos
	}
	l.advance(l.pos + end)
	return token{kind: tJSXText, text: l.src[start.Offset:l.pos], start: start, end: l.here()}
}

// jsxTag scans a token inside a JSX tag, where names may contain "-" and
// attribute strings carry no escapes.
func (l *lexer) jsxTag() token {
	nl := l.skipSpace()
	start := l.here()
	t := token{nlBefore: nl, start: start}
	if l.pos >= len(l.src) {
		t.kind = tEOF
		t.end = start
		return t
	}
	c := l.src[l.pos]
	switch {
	case isIdentStart(c) || c >= utf8.RuneSelf:
		for {
			l.ident()
			if l.pos < len(l.src) && l.src[l.pos] == '-' {
				l.pos++
				continue
			}
			break
		}
		t.kind = tName
		t.value = l.src[start.Offset:l.pos]
	case c == '"' || c == '\'':
		end := strings.IndexByte(l.src[l.pos+1:], c)
		if end < 0 {
			l.fail(start, "unterminated string")
		}
		t.kind = tString
		t.value = l.src[l.pos+1 : l.pos+1+end]
		l.advance(l.pos + end + 2)
	default:
		l.pos++
		t.kind = tPunct
	}
	t.text = l.src[start.Offset:l.pos]
	t.end = l.here()
	return t
}

func isIdentStart(c byte) bool {
	return c == '$' || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
