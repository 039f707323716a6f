// Command closedform is the deterministic math problem console.
//
// Problems are matched against a fixed priority list of invariant
// recognizers; the first match produces the answer. Problems nothing
// recognizes can optionally be escalated to an external reasoning
// service.
//
// Usage:
//
//	closedform solve "What is 3^4 mod 10?"
//	closedform diag --format json
//	closedform plugins
//	closedform history --db ./solves.db
//
// Exit codes: 0 success, 1 diagnostic failure, 2 command error.
package main

import (
	"fmt"
	"os"

	"closedform/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
