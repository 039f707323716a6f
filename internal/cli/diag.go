package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"closedform/internal/diag"
	"closedform/internal/plugins"
)

// DiagOptions holds flags for the diag command.
type DiagOptions struct {
	*RootOptions
	SuitePath string
	Modulus   int64
}

// NewDiagCommand creates the diag command.
func NewDiagCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DiagOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "diag",
		Short: "Run the diagnostic regression battery",
		Long: `Run regression cases through the dispatcher and report pass/fail.

Without --suite the built-in battery runs: one case per recognizer plus
the no-match sentinel. With --suite a YAML case file is loaded instead.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (suite not found, malformed YAML)

Examples:
  closedform diag
  closedform diag --suite ./cases.yaml --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiag(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.SuitePath, "suite", "", "YAML suite file (defaults to the built-in battery)")
	cmd.Flags().Int64Var(&opts.Modulus, "modulus", plugins.DefaultModulus, "modulus for combinatorial answers")

	return cmd
}

func runDiag(opts *DiagOptions, cmd *cobra.Command) error {
	logger := commandLogger(opts.RootOptions, cmd.ErrOrStderr())
	harness := diag.New(plugins.NewSolver(plugins.Config{Modulus: opts.Modulus}), diag.WithLogger(logger))

	var report *diag.Report
	if opts.SuitePath != "" {
		suite, err := diag.LoadSuite(opts.SuitePath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load suite", err)
		}
		report = harness.RunCases(suite.Cases)
	} else {
		report = harness.Run()
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
	} else {
		writeDiagText(formatter, report)
	}

	if !report.Pass() {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d cases failed", report.Failed, report.Total))
	}
	return nil
}

func writeDiagText(f *OutputFormatter, report *diag.Report) {
	for _, c := range report.Cases {
		marker := "PASS"
		if c.Status != "pass" {
			marker = "FAIL"
		}
		fmt.Fprintf(f.Writer, "%s  %s (%dms)\n", marker, c.Name, c.DurationMs)
		if c.Status != "pass" {
			if c.Error != "" {
				fmt.Fprintf(f.Writer, "      %s\n", c.Error)
			}
			if c.Expected != "" {
				fmt.Fprintf(f.Writer, "      expected: %s\n", c.Expected)
				fmt.Fprintf(f.Writer, "      actual:   %s\n", c.Actual)
			}
		}
	}
	fmt.Fprintf(f.Writer, "\n%d passed, %d failed, %d total\n", report.Passed, report.Failed, report.Total)
}
