package parser

import "github.com/cmmoran/flowts/internal/model"

type tokenKind int

const (
	tEOF tokenKind = iota
	tName
	tPrivate
	tString
	tNumber
	tBigInt
	tTemplate
	tRegExp
	tPunct
	tJSXText
)

func (k tokenKind) String() string {
	switch k {
	case tEOF:
		return "end of input"
	case tName:
		return "identifier"
	case tPrivate:
		return "private name"
	case tString:
		return "string"
	case tNumber, tBigInt:
		return "number"
	case tTemplate:
		return "template"
	case tRegExp:
		return "regular expression"
	case tJSXText:
		return "JSX text"
	default:
		return "punctuator"
	}
}

type token struct {
	kind tokenKind
	// text is the raw source slice of the token.
	text string
	// value is the cooked string for strings and names, and the raw
	// template chunk (without delimiters) for templates.
	value    string
	start    model.Position
	end      model.Position
	nlBefore bool
	// tail marks a template chunk that ends with a backtick.
	tail bool
}

func (t token) is(punct string) bool {
	return t.kind == tPunct && t.text == punct
}

func (t token) isName(name string) bool {
	return t.kind == tName && t.text == name
}

var reserved = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "debugger": true, "default": true, "delete": true,
	"do": true, "else": true, "export": true, "extends": true, "finally": true,
	"for": true, "function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "new": true, "return": true, "super": true,
	"switch": true, "this": true, "throw": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "null": true,
	"true": true, "false": true, "enum": true,
}

// puncts lists multi-character punctuators, longest first.
var puncts = []string{
	">>>=", "...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "?.", "++", "--", "+=", "-=",
	"*=", "/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
}
