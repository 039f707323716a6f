package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"closedform/internal/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DBPath string
	Limit  int
}

// HistoryResult is the JSON payload listing recorded solves.
type HistoryResult struct {
	Total   int64         `json:"total"`
	Records []HistoryItem `json:"records"`
}

// HistoryItem is one recorded solve in CLI output.
type HistoryItem struct {
	ID         string `json:"id"`
	AskedAt    string `json:"asked_at"`
	Problem    string `json:"problem"`
	Answer     string `json:"answer"`
	Tag        string `json:"tag,omitempty"`
	Source     string `json:"source"`
	DurationMS int64  `json:"duration_ms"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List previously answered problems",
		Long: `List previously answered problems, newest first.

Reads the SQLite database written by solve --history.

Examples:
  closedform history --db ./solves.db
  closedform history --db ./solves.db --limit 5 --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "SQLite history database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum records to list (0 for all)")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	if _, err := os.Stat(opts.DBPath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("history database not found: %s", opts.DBPath))
	}

	store, err := history.Open(opts.DBPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open history database", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	total, err := store.Count(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to count history", err)
	}
	records, err := store.Recent(ctx, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read history", err)
	}

	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if opts.Format == "json" {
		result := HistoryResult{Total: total, Records: make([]HistoryItem, 0, len(records))}
		for _, rec := range records {
			result.Records = append(result.Records, HistoryItem{
				ID:         rec.ID,
				AskedAt:    rec.AskedAt.Format(time.RFC3339),
				Problem:    rec.Problem,
				Answer:     rec.Answer,
				Tag:        rec.Tag,
				Source:     string(rec.Source),
				DurationMS: rec.DurationMS,
			})
		}
		return formatter.Success(result)
	}

	if len(records) == 0 {
		fmt.Fprintln(formatter.Writer, "No recorded solves.")
		return nil
	}
	for _, rec := range records {
		tag := rec.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(formatter.Writer, "%s  %-14s %-8s %s => %s\n",
			rec.AskedAt.Format("2006-01-02 15:04:05"), tag, rec.Source, rec.Problem, rec.Answer)
	}
	fmt.Fprintf(formatter.Writer, "\n%d of %d records\n", len(records), total)
	return nil
}
