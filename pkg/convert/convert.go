// Package convert turns Flow-annotated JavaScript into TypeScript.
package convert

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/cmmoran/flowts/internal/model"
	"github.com/cmmoran/flowts/internal/parser"
	"github.com/cmmoran/flowts/internal/printer"
	"github.com/cmmoran/flowts/internal/transform"
)

// Result is the outcome of converting one source text.
type Result struct {
	Code string `json:"code" yaml:"code"`
	// JSX reports whether the input contained a JSX element or fragment; the
	// output then belongs in a .tsx file.
	JSX      bool                `json:"jsx" yaml:"jsx"`
	Warnings []transform.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Extension returns the file extension the converted code should be written
// with.
func (r *Result) Extension() string {
	if r.JSX {
		return ".tsx"
	}
	return ".ts"
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Convert converts src. A syntax error is returned as *parser.SyntaxError;
// constructs without a faithful translation are downgraded and reported in
// Result.Warnings.
func Convert(src string, opts ...Option) (*Result, error) {
	o := NewOptions()
	for _, opt := range opts {
		opt(o)
	}
	return ConvertWithOpts(src, o)
}

func ConvertWithOpts(src string, o *Options) (*Result, error) {
	if err := o.Normalize(); err != nil {
		return nil, err
	}
	f, err := parser.Parse(src, parser.DefaultGrammar())
	if err != nil {
		return nil, err
	}
	jsx := model.Contains(f.Program, func(n model.Node) bool {
		k := n.Kind()
		return k == model.KindJSXElement || k == model.KindJSXFragment
	})

	st := transform.NewState(transform.Options{
		InlineUtilityTypes: o.InlineUtilityTypes,
		Debug:              o.Debug,
	}, o.Logger)
	if err = transform.Run(st, f); err != nil {
		return nil, err
	}
	if o.Debug {
		o.Logger.Debug("converted tree\n" + dumper.Sdump(f.Program))
	}

	return &Result{
		Code:     printer.Generate(f, src, o.Format()),
		JSX:      jsx,
		Warnings: st.Warnings,
	}, nil
}
