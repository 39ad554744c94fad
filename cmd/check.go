package cmd

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cmmoran/flowts/pkg/action/check"
)

func init() {
	rootCmd.AddCommand(NewCheckCommand())
}

func NewCheckCommand() *cobra.Command {
	var checkCmd = &cobra.Command{
		Use:   "check [globs...]",
		Short: "check converted files are up to date",
		Long: `Convert every file matched by the glob patterns without writing anything
and compare the result with the output recorded in --manifest, or with the
.ts or .tsx file next to the source. Exits non-zero when any output is
missing or differs.`,
		Args:    cobra.MinimumNArgs(1),
		PreRunE: bindFlags,
		RunE: func(c *cobra.Command, args []string) error {
			if viper.GetBool("no-color") {
				color.NoColor = true
			}
			report, err := check.Run(c.Context(), args, convertOptions(), viper.GetString("manifest"))
			if err != nil {
				return err
			}
			report.Print(c.OutOrStdout(), viper.GetBool("verbose"))
			if !report.Clean() {
				return errors.New("converted files are out of date")
			}
			return nil
		},
	}
	addConvertFlags(checkCmd)
	checkCmd.Flags().BoolP("verbose", "v", false, "print the diff of every file that differs")
	checkCmd.Flags().Bool("no-color", false, "disable colored output")

	return checkCmd
}
