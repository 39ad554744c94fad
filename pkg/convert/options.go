package convert

import (
	"log/slog"

	"github.com/cmmoran/flowts/internal/printer"
)

// Options control a single conversion.
//
// InlineUtilityTypes – expand utility types that have a TypeScript equivalent
// instead of importing them from "utility-types".
// Prettier           – normalize quotes and arrow parentheses using the
// format fields below; otherwise their source form is kept.
// Semicolons ... PrintWidth – output layout.
// Debug              – log every rewrite and dump the converted tree.
type Options struct {
	InlineUtilityTypes bool   `json:"inline_utility_types,omitempty" yaml:"inline_utility_types,omitempty" toml:"inline_utility_types,omitempty" mapstructure:"inline_utility_types,omitempty"`
	Prettier           bool   `json:"prettier,omitempty" yaml:"prettier,omitempty" toml:"prettier,omitempty" mapstructure:"prettier,omitempty"`
	Semicolons         bool   `json:"semi,omitempty" yaml:"semi,omitempty" toml:"semi,omitempty" mapstructure:"semi,omitempty"`
	SingleQuote        bool   `json:"single_quote,omitempty" yaml:"single_quote,omitempty" toml:"single_quote,omitempty" mapstructure:"single_quote,omitempty"`
	TabWidth           int    `json:"tab_width,omitempty" yaml:"tab_width,omitempty" toml:"tab_width,omitempty" mapstructure:"tab_width,omitempty"`
	TrailingComma      string `json:"trailing_comma,omitempty" yaml:"trailing_comma,omitempty" toml:"trailing_comma,omitempty" mapstructure:"trailing_comma,omitempty"`
	BracketSpacing     bool   `json:"bracket_spacing,omitempty" yaml:"bracket_spacing,omitempty" toml:"bracket_spacing,omitempty" mapstructure:"bracket_spacing,omitempty"`
	ArrowParens        string `json:"arrow_parens,omitempty" yaml:"arrow_parens,omitempty" toml:"arrow_parens,omitempty" mapstructure:"arrow_parens,omitempty"`
	PrintWidth         int    `json:"print_width,omitempty" yaml:"print_width,omitempty" toml:"print_width,omitempty" mapstructure:"print_width,omitempty"`
	Debug              bool   `json:"debug,omitempty" yaml:"debug,omitempty" toml:"debug,omitempty" mapstructure:"debug,omitempty"`

	Logger *slog.Logger `json:"-" yaml:"-" toml:"-" mapstructure:"-"`
}

func NewOptions() *Options {
	return &Options{
		Semicolons:     true,
		TabWidth:       2,
		TrailingComma:  printer.TrailingCommaAll,
		BracketSpacing: true,
		ArrowParens:    printer.ArrowParensAlways,
		PrintWidth:     80,
	}
}

// Normalize fills unset layout fields and validates the rest.
func (o *Options) Normalize() error {
	if o.TabWidth == 0 {
		o.TabWidth = 2
	}
	if o.PrintWidth == 0 {
		o.PrintWidth = 80
	}
	if o.TrailingComma == "" {
		o.TrailingComma = printer.TrailingCommaAll
	}
	if o.ArrowParens == "" {
		o.ArrowParens = printer.ArrowParensAlways
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o.Format().Validate()
}

// Format returns the printer layout the options describe. Without Prettier
// the plain generator layout is used.
func (o *Options) Format() printer.Format {
	if !o.Prettier {
		return printer.DefaultFormat()
	}
	return printer.Format{
		Prettier:       true,
		Semicolons:     o.Semicolons,
		SingleQuote:    o.SingleQuote,
		TabWidth:       o.TabWidth,
		TrailingComma:  o.TrailingComma,
		BracketSpacing: o.BracketSpacing,
		ArrowParens:    o.ArrowParens,
		PrintWidth:     o.PrintWidth,
	}
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithInlineUtilityTypes() Option { return func(o *Options) { o.InlineUtilityTypes = true } }
func WithPrettier() Option           { return func(o *Options) { o.Prettier = true } }
func WithSemicolons(b bool) Option   { return func(o *Options) { o.Semicolons = b } }
func WithSingleQuote() Option        { return func(o *Options) { o.SingleQuote = true } }
func WithTabWidth(n int) Option      { return func(o *Options) { o.TabWidth = n } }
func WithTrailingComma(s string) Option {
	return func(o *Options) { o.TrailingComma = s }
}
func WithBracketSpacing(b bool) Option { return func(o *Options) { o.BracketSpacing = b } }
func WithArrowParens(s string) Option  { return func(o *Options) { o.ArrowParens = s } }
func WithPrintWidth(n int) Option      { return func(o *Options) { o.PrintWidth = n } }
func WithDebug() Option                { return func(o *Options) { o.Debug = true } }
func WithLogger(l *slog.Logger) Option { return func(o *Options) { o.Logger = l } }
