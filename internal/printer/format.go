package printer

import "fmt"

const (
	TrailingCommaAll  = "all"
	TrailingCommaES5  = "es5"
	TrailingCommaNone = "none"

	ArrowParensAlways = "always"
	ArrowParensAvoid  = "avoid"
)

// Format controls the layout choices Generate makes.
//
// Without Prettier the printer behaves like a plain code generator: string
// quotes and arrow parameter parentheses keep their source form. With
// Prettier they are normalized according to SingleQuote and ArrowParens.
// The remaining fields apply in both modes.
type Format struct {
	Prettier       bool
	Semicolons     bool
	SingleQuote    bool
	TabWidth       int
	TrailingComma  string
	BracketSpacing bool
	ArrowParens    string
	PrintWidth     int
}

// DefaultFormat is the layout used when no pretty-printing was requested.
func DefaultFormat() Format {
	return Format{
		Semicolons:     true,
		TabWidth:       2,
		TrailingComma:  TrailingCommaNone,
		BracketSpacing: true,
		ArrowParens:    ArrowParensAlways,
		PrintWidth:     80,
	}
}

// PrettierFormat returns the pretty-printer defaults.
func PrettierFormat() Format {
	f := DefaultFormat()
	f.Prettier = true
	f.TrailingComma = TrailingCommaAll
	return f
}

// Normalize fills zero values with defaults.
func (f Format) Normalize() Format {
	if f.TabWidth <= 0 {
		f.TabWidth = 2
	}
	if f.PrintWidth <= 0 {
		f.PrintWidth = 80
	}
	if f.TrailingComma == "" {
		f.TrailingComma = TrailingCommaNone
		if f.Prettier {
			f.TrailingComma = TrailingCommaAll
		}
	}
	if f.ArrowParens == "" {
		f.ArrowParens = ArrowParensAlways
	}
	return f
}

// Validate reports option values the printer does not understand.
func (f Format) Validate() error {
	switch f.TrailingComma {
	case "", TrailingCommaAll, TrailingCommaES5, TrailingCommaNone:
	default:
		return fmt.Errorf("invalid trailing comma style %q", f.TrailingComma)
	}
	switch f.ArrowParens {
	case "", ArrowParensAlways, ArrowParensAvoid:
	default:
		return fmt.Errorf("invalid arrow parens style %q", f.ArrowParens)
	}
	if f.TabWidth != 0 && f.TabWidth != 2 && f.TabWidth != 4 {
		return fmt.Errorf("invalid tab width %d", f.TabWidth)
	}
	if f.PrintWidth < 0 {
		return fmt.Errorf("invalid print width %d", f.PrintWidth)
	}
	return nil
}

// es5Commas reports whether trailing commas go after object, array and
// module specifier lists.
func (f Format) es5Commas() bool {
	return f.TrailingComma == TrailingCommaES5 || f.TrailingComma == TrailingCommaAll
}

// allCommas reports whether trailing commas also go after parameters,
// arguments and type parameter lists.
func (f Format) allCommas() bool {
	return f.TrailingComma == TrailingCommaAll
}
