package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/diag"
)

func TestDiag_BuiltinPasses(t *testing.T) {
	out, err := execute(t, "diag")

	require.NoError(t, err)
	assert.Contains(t, out, "PASS")
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, out, "0 failed")
}

func TestDiag_JSONReport(t *testing.T) {
	out, err := execute(t, "--format", "json", "diag")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   diag.Report `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, resp.Data.Total, resp.Data.Passed)
	assert.Zero(t, resp.Data.Failed)
	assert.Len(t, resp.Data.Cases, resp.Data.Total)
}

func writeSuite(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiag_SuitePasses(t *testing.T) {
	path := writeSuite(t, `
name: smoke
cases:
  - name: frobenius
    input: "Find the largest integer that cannot be written as 6a + 11b for nonnegative integers a, b."
    want_answer: "49"
    want_tag: Diophantine
`)

	out, err := execute(t, "diag", "--suite", path)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS  frobenius")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestDiag_SuiteFailureExitsOne(t *testing.T) {
	path := writeSuite(t, `
name: failing
cases:
  - name: wrong-answer
    input: "What is 3^4 mod 10?"
    want_answer: "999"
    want_tag: NumberTheory
`)

	out, err := execute(t, "diag", "--suite", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "FAIL  wrong-answer")
	assert.Contains(t, out, "expected: 999")
}

func TestDiag_MissingSuiteIsCommandError(t *testing.T) {
	_, err := execute(t, "diag", "--suite", filepath.Join(t.TempDir(), "absent.yaml"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDiag_MalformedSuiteIsCommandError(t *testing.T) {
	path := writeSuite(t, "cases: [not a case")

	_, err := execute(t, "diag", "--suite", path)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
