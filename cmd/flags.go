package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/flowts/internal/printer"
	"github.com/cmmoran/flowts/pkg/convert"
)

// addConvertFlags registers the flags that shape a single conversion.
func addConvertFlags(c *cobra.Command) {
	d := convert.NewOptions()
	f := c.Flags()
	f.Bool("inline-utility-types", false, "expand utility types with a TypeScript equivalent instead of importing them from utility-types")
	f.Bool("prettier", false, "format the output with the options below")
	f.Bool("semi", d.Semicolons, "end statements with semicolons")
	f.Bool("single-quote", false, "prefer single quotes")
	f.Int("tab-width", d.TabWidth, "spaces per indentation level (2 or 4)")
	f.String("trailing-comma", d.TrailingComma, "trailing commas: "+printer.TrailingCommaAll+", "+printer.TrailingCommaES5+" or "+printer.TrailingCommaNone)
	f.Bool("bracket-spacing", d.BracketSpacing, "put spaces inside object braces")
	f.String("arrow-parens", d.ArrowParens, "parentheses around a lone arrow parameter: "+printer.ArrowParensAlways+" or "+printer.ArrowParensAvoid)
	f.Int("print-width", d.PrintWidth, "line width the printer tries to stay within")
	f.Bool("debug", false, "log every rewrite and dump the converted tree (needs --level debug)")
	f.String("manifest", "", "manifest file recording converted files")
}

// bindFlags binds the flags of c to viper so config files and FLOWTS_*
// environment variables supply their defaults. Binding happens when c runs
// because commands share flag names.
func bindFlags(c *cobra.Command, _ []string) error {
	return viper.BindPFlags(c.Flags())
}

func convertOptions() *convert.Options {
	return &convert.Options{
		InlineUtilityTypes: viper.GetBool("inline-utility-types"),
		Prettier:           viper.GetBool("prettier"),
		Semicolons:         viper.GetBool("semi"),
		SingleQuote:        viper.GetBool("single-quote"),
		TabWidth:           viper.GetInt("tab-width"),
		TrailingComma:      viper.GetString("trailing-comma"),
		BracketSpacing:     viper.GetBool("bracket-spacing"),
		ArrowParens:        viper.GetString("arrow-parens"),
		PrintWidth:         viper.GetInt("print-width"),
		Debug:              viper.GetBool("debug"),
		Logger:             slog.Default(),
	}
}
