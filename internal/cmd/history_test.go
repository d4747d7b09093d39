package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/harrison/bucketize/internal/journal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedJournal(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	store, err := journal.NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	id, err := store.BeginRun(ctx, "/data", 0, false)
	require.NoError(t, err)
	require.NoError(t, store.RecordMove(ctx, id, "/data/a.txt", "/data/a/a.txt", true, ""))
	require.NoError(t, store.RecordMove(ctx, id, "/data/b.txt", "/data/b/b.txt", false, "permission denied"))
	require.NoError(t, store.FinishRun(ctx, id, 2, 1, 1))

	return dbPath
}

func runHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewHistoryCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestHistoryShowListsRuns(t *testing.T) {
	dbPath := seedJournal(t)

	out, err := runHistory(t, "show", "--db", dbPath)

	require.NoError(t, err)
	assert.Contains(t, out, "/data")
	assert.Contains(t, out, "2 folder(s)")
	assert.Contains(t, out, "1 failed")
}

func TestHistoryShowWithMoves(t *testing.T) {
	dbPath := seedJournal(t)

	out, err := runHistory(t, "show", "--db", dbPath, "--moves")

	require.NoError(t, err)
	assert.Contains(t, out, "/data/a.txt")
	assert.Contains(t, out, "permission denied")
}

func TestHistoryStats(t *testing.T) {
	dbPath := seedJournal(t)

	out, err := runHistory(t, "stats", "--db", dbPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Runs: 1")
	assert.Contains(t, out, "Moves: 2 (1 failed)")
}

func TestHistoryClearWithYes(t *testing.T) {
	dbPath := seedJournal(t)

	out, err := runHistory(t, "clear", "--db", dbPath, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Journal cleared.")

	out, err = runHistory(t, "show", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestHistoryMissingDatabase(t *testing.T) {
	_, err := runHistory(t, "show", "--db", filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}
