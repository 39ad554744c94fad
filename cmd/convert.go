package cmd

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/flowts/pkg/action/convert"
)

func init() {
	rootCmd.AddCommand(NewConvertCommand())
}

func NewConvertCommand() *cobra.Command {
	var convertCmd = &cobra.Command{
		Use:   "convert [globs...]",
		Short: "convert files",
		Long: `Convert every file matched by the glob patterns. Patterns support ** to
match any number of directories.

Without --write the converted code is printed to stdout. With --write it is
written next to the source as .tsx when the file contains JSX and as .ts
otherwise.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: bindFlags,
		RunE: func(c *cobra.Command, args []string) error {
			if viper.GetBool("no-color") {
				color.NoColor = true
			}
			opts := &convert.Options{
				Convert:      convertOptions(),
				Write:        viper.GetBool("write"),
				DeleteSource: viper.GetBool("delete-source"),
				Jobs:         viper.GetInt("jobs"),
				Manifest:     viper.GetString("manifest"),
			}
			if opts.DeleteSource && !opts.Write {
				return fmt.Errorf("--delete-source requires --write")
			}
			report, err := convert.Run(c.Context(), args, opts)
			if err != nil {
				return err
			}

			if !opts.Write {
				for _, f := range report.Files {
					if f.Err == nil {
						fmt.Fprint(c.OutOrStdout(), f.Code)
					}
				}
			}
			report.Status(c.ErrOrStderr())
			if viper.GetBool("summary") {
				report.Summary(c.ErrOrStderr())
			}
			if n := report.Failed(); n > 0 {
				return fmt.Errorf("%s failed", convert.Count(n, "file"))
			}
			return nil
		},
	}
	addConvertFlags(convertCmd)
	f := convertCmd.Flags()
	f.BoolP("write", "w", false, "write the output next to each source file")
	f.Bool("delete-source", false, "delete each source file once its output is written")
	f.IntP("jobs", "j", runtime.NumCPU(), "files converted in parallel")
	f.Bool("summary", false, "print a table of converted files")
	f.Bool("no-color", false, "disable colored output")

	return convertCmd
}
