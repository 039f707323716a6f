package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"closedform/internal/history"
)

func seedHistory(t *testing.T, records ...history.Record) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "solves.db")
	store, err := history.Open(path)
	require.NoError(t, err)
	defer store.Close()

	for _, rec := range records {
		_, err := store.Append(context.Background(), rec)
		require.NoError(t, err)
	}
	return path
}

func TestHistory_TextListing(t *testing.T) {
	path := seedHistory(t,
		history.Record{Problem: "What is 3^4 mod 10?", Answer: "1", Tag: "NumberTheory"},
		history.Record{Problem: "How many apples does Maria have?", Answer: "0", Source: history.SourceNone},
	)

	out, err := execute(t, "history", "--db", path)

	require.NoError(t, err)
	assert.Contains(t, out, "What is 3^4 mod 10? => 1")
	assert.Contains(t, out, "NumberTheory")
	assert.Contains(t, out, "2 of 2 records")
}

func TestHistory_JSONListing(t *testing.T) {
	path := seedHistory(t,
		history.Record{Problem: "p1", Answer: "49", Tag: "Diophantine"},
		history.Record{Problem: "p2", Answer: "8", Tag: "Combinatorial"},
		history.Record{Problem: "p3", Answer: "13", Tag: "RootDynamics"},
	)

	out, err := execute(t, "--format", "json", "history", "--db", path, "--limit", "2")
	require.NoError(t, err)

	var resp struct {
		Status string        `json:"status"`
		Data   HistoryResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, int64(3), resp.Data.Total)
	require.Len(t, resp.Data.Records, 2)
	assert.Equal(t, "p3", resp.Data.Records[0].Problem, "newest first")
}

func TestHistory_EmptyDatabase(t *testing.T) {
	path := seedHistory(t)

	out, err := execute(t, "history", "--db", path)
	require.NoError(t, err)
	assert.Contains(t, out, "No recorded solves.")
}

func TestHistory_MissingDatabaseIsCommandError(t *testing.T) {
	_, err := execute(t, "history", "--db", filepath.Join(t.TempDir(), "absent.db"))

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestHistory_RequiresDBFlag(t *testing.T) {
	_, err := execute(t, "history")
	require.Error(t, err)
}
