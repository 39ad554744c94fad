package model

import "fmt"

// Position is a point in the source text. Line is 1-based, Column is a
// 0-based byte offset into the line.
type Position struct {
	Offset int `json:"offset"`
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span is the half-open source range [Start, End) covered by a node or comment.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Valid reports whether the span was produced from source text. Synthesized
// nodes that were never given a span report false.
func (s Span) Valid() bool {
	return s.Start.Line > 0 && s.End.Line > 0
}

// SpanKey identifies a comment by its source offsets ("start:end").
type SpanKey string

// Comment is a line (//) or block (/* */) comment. Text excludes the delimiters.
type Comment struct {
	Text  string
	Block bool
	Span  Span
}

// Key returns the span key used to index attachments of this comment.
func (c *Comment) Key() SpanKey {
	return SpanKey(fmt.Sprintf("%d:%d", c.Span.Start.Offset, c.Span.End.Offset))
}

// NodeBase carries the fields common to every node.
type NodeBase struct {
	Span     Span
	Leading  []*Comment
	Trailing []*Comment
	// Inner holds comments found inside an otherwise empty container.
	Inner []*Comment
}

// Base returns the receiver so that embedding types satisfy Node.
func (b *NodeBase) Base() *NodeBase { return b }

// HasComments reports whether any comment is attached to the node.
func (b *NodeBase) HasComments() bool {
	return len(b.Leading) > 0 || len(b.Trailing) > 0 || len(b.Inner) > 0
}

// Node is implemented by every syntax tree node.
type Node interface {
	Kind() Kind
	Base() *NodeBase
}

// File is the result of parsing one source document.
type File struct {
	Program  *Program
	Comments []*Comment
}

// CopyBase moves span and comments of from onto to, the way a rewrite seeds
// the node that replaces an original. It returns to for chaining.
func CopyBase[T Node](to T, from Node) T {
	if from == nil {
		return to
	}
	fb, tb := from.Base(), to.Base()
	tb.Span = fb.Span
	tb.Leading = fb.Leading
	tb.Trailing = fb.Trailing
	if len(tb.Inner) == 0 {
		tb.Inner = fb.Inner
	}
	return to
}

// WithSpan sets the span of n from from without touching comments.
func WithSpan[T Node](n T, from Node) T {
	if from != nil {
		n.Base().Span = from.Base().Span
	}
	return n
}
