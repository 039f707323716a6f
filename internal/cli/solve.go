package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"closedform/internal/console"
	"closedform/internal/fallback"
	"closedform/internal/history"
	"closedform/internal/plugins"
	"closedform/internal/solver"
)

// apiKeyEnv names the environment variable holding the reasoning
// service credential. It is read here, at the outermost layer, so the
// inner packages never touch the environment.
const apiKeyEnv = "OPENAI_API_KEY"

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Fallback      bool
	HighReasoning bool
	ImageURL      string
	HistoryPath   string
	Modulus       int64
}

// SolveResult is the JSON payload for a solved problem.
type SolveResult struct {
	Answer     string            `json:"answer"`
	Tag        string            `json:"tag,omitempty"`
	Source     string            `json:"source"`
	DurationMS int64             `json:"duration_ms"`
	Steps      []string          `json:"steps,omitempty"`
	Reasoning  string            `json:"reasoning,omitempty"`
	Citations  []solver.Citation `json:"citations,omitempty"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <problem...>",
		Short: "Answer a math word problem",
		Long: `Answer a math word problem.

The problem statement is matched against the invariant recognizers in
their fixed priority order. The first recognizer that matches produces
the answer. With --fallback, problems no recognizer matches are sent to
the external reasoning service (requires ` + apiKeyEnv + `).

Examples:
  closedform solve "What is 3^4 mod 10?"
  closedform solve --format json "Find the Frobenius number of 6 and 11."
  closedform solve --fallback --high-reasoning "How many apples does Maria have?"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, strings.Join(args, " "), cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Fallback, "fallback", false, "consult the external reasoning service when no recognizer matches")
	cmd.Flags().BoolVar(&opts.HighReasoning, "high-reasoning", false, "request the service's highest reasoning effort")
	cmd.Flags().StringVar(&opts.ImageURL, "image", "", "URL of an image of the problem, forwarded to the service")
	cmd.Flags().StringVar(&opts.HistoryPath, "history", "", "SQLite database recording answered problems")
	cmd.Flags().Int64Var(&opts.Modulus, "modulus", plugins.DefaultModulus, "modulus for combinatorial answers")

	return cmd
}

func runSolve(opts *SolveOptions, problem string, cmd *cobra.Command) error {
	logger := commandLogger(opts.RootOptions, cmd.ErrOrStderr())

	consoleOpts := []console.Option{console.WithLogger(logger)}

	if opts.Fallback {
		apiKey := os.Getenv(apiKeyEnv)
		if apiKey == "" {
			return NewExitError(ExitCommandError, fmt.Sprintf("--fallback requires %s to be set", apiKeyEnv))
		}
		reasoner := fallback.NewOpenAIReasoner(apiKey, fallback.WithLogger(logger))
		consoleOpts = append(consoleOpts, console.WithReasoner(reasoner))
	}

	if opts.HistoryPath != "" {
		store, err := history.Open(opts.HistoryPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open history database", err)
		}
		defer store.Close()
		consoleOpts = append(consoleOpts, console.WithHistory(store))
	}

	c := console.New(
		plugins.NewSolver(plugins.Config{Modulus: opts.Modulus}, solver.WithLogger(logger)),
		consoleOpts...,
	)

	res, err := c.Ask(cmd.Context(), problem, console.AskOptions{
		UseFallback:   opts.Fallback,
		HighReasoning: opts.HighReasoning,
		ImageURL:      opts.ImageURL,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "fallback reasoning failed", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		return formatter.Success(SolveResult{
			Answer:     res.Outcome.Answer,
			Tag:        string(res.Outcome.Tag),
			Source:     string(res.Source),
			DurationMS: res.Duration.Milliseconds(),
			Steps:      res.Outcome.Steps,
			Reasoning:  res.Outcome.Reasoning,
			Citations:  res.Outcome.Citations,
		})
	}

	writeSolveText(formatter.Writer, res, opts.Verbose)
	return nil
}

func writeSolveText(w io.Writer, res *console.Result, verbose bool) {
	out := res.Outcome

	fmt.Fprintf(w, "Answer: %s\n", out.Answer)
	if out.Tag != "" {
		fmt.Fprintf(w, "Tag:    %s\n", out.Tag)
	}
	fmt.Fprintf(w, "Source: %s\n", res.Source)

	if len(out.Steps) > 0 {
		fmt.Fprintln(w)
		for i, step := range out.Steps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}

	if out.Reasoning != "" {
		fmt.Fprintf(w, "\nReasoning:\n%s\n", out.Reasoning)
	}
	for _, cit := range out.Citations {
		fmt.Fprintf(w, "  [%s] %s\n", cit.Title, cit.URI)
	}

	if verbose && len(out.Log) > 0 {
		fmt.Fprintln(w)
		for _, entry := range out.Log {
			fmt.Fprintf(w, "  %s %s\n", entry.Severity, entry.Message)
		}
	}
}

// commandLogger builds the structured logger shared by all commands:
// silent by default, debug-level text on stderr under --verbose.
func commandLogger(opts *RootOptions, stderr io.Writer) *slog.Logger {
	if !opts.Verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
