// Package transform rewrites a Flow-annotated syntax tree into its
// TypeScript-annotated equivalent.
package transform

import (
	"fmt"
	"log/slog"

	"github.com/cmmoran/flowts/internal/model"
)

// Options control how the rewrite treats constructs with more than one
// acceptable translation.
type Options struct {
	// InlineUtilityTypes expands utility types that have a target-dialect
	// construct instead of importing them from the support module.
	InlineUtilityTypes bool `json:"inline_utility_types" yaml:"inline_utility_types" mapstructure:"inline_utility_types"`
	// Debug logs every replacement made by the rules.
	Debug bool `json:"debug" yaml:"debug" mapstructure:"debug"`
}

// Warning records a construct that was converted with loss of precision.
type Warning struct {
	Msg  string     `json:"msg" yaml:"msg"`
	Span model.Span `json:"span" yaml:"span"`
}

func (w Warning) String() string {
	if !w.Span.Valid() {
		return w.Msg
	}
	return fmt.Sprintf("%d:%d: %s", w.Span.Start.Line, w.Span.Start.Column+1, w.Msg)
}

// Attachment is the pair of nodes a comment is recorded against.
type Attachment struct {
	Leading  model.Node
	Trailing model.Node
}

// State is owned by a single conversion and threaded through every rule.
type State struct {
	Options Options
	Logger  *slog.Logger

	// UsedImports holds utility names to import from the support module in
	// first-use order.
	UsedImports *OrderedSet
	// UnqualifiedReact holds framework names imported without a namespace.
	UnqualifiedReact map[string]bool

	Attachments   map[model.SpanKey]*Attachment
	LineToComment map[int]*model.Comment
	Warnings      []Warning

	comments map[model.SpanKey]*model.Comment
}

// NewState returns a state for converting one file.
func NewState(opts Options, l *slog.Logger) *State {
	if l == nil {
		l = slog.Default()
	}
	return &State{
		Options:          opts,
		Logger:           l,
		UsedImports:      NewOrderedSet(),
		UnqualifiedReact: map[string]bool{},
		Attachments:      map[model.SpanKey]*Attachment{},
		LineToComment:    map[int]*model.Comment{},
		comments:         map[model.SpanKey]*model.Comment{},
	}
}

// Warn records a degradation at the position of n.
func (st *State) Warn(n model.Node, msg string) {
	w := Warning{Msg: msg}
	if n != nil && !model.IsNil(n) {
		w.Span = n.Base().Span
	}
	st.Warnings = append(st.Warnings, w)
	l := st.Logger
	if w.Span.Valid() {
		l = l.With("line", w.Span.Start.Line, "column", w.Span.Start.Column+1)
	}
	l.Warn(msg)
}

// UseImport records a utility name for import synthesis.
func (st *State) UseImport(name string) {
	st.UsedImports.Add(name)
}

// OrderedSet is a set of strings that remembers insertion order.
type OrderedSet struct {
	items []string
	seen  map[string]bool
}

func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: map[string]bool{}}
}

// Add inserts s unless it is already present.
func (o *OrderedSet) Add(s string) {
	if o.seen[s] {
		return
	}
	o.seen[s] = true
	o.items = append(o.items, s)
}

func (o *OrderedSet) Has(s string) bool { return o.seen[s] }

func (o *OrderedSet) Len() int { return len(o.items) }

// Items returns the members in insertion order.
func (o *OrderedSet) Items() []string {
	return append([]string(nil), o.items...)
}
