package database

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/arenadl/arena-dl/core"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := log.NewWithOptions(io.Discard, log.Options{ReportTimestamp: false})
	return log.WithContext(context.Background(), logger)
}

func TestRunHistory(t *testing.T) {
	ctx := testContext()
	_, err := GetRecentRuns(ctx, 10)
	require.ErrorIs(t, err, ErrNotInitialized)

	require.NoError(t, Init(ctx, filepath.Join(t.TempDir(), "data", "history.db")))
	t.Cleanup(func() { Close() })

	older := core.NewReport(2)
	older.StartedAt = time.Now().Add(-time.Hour)
	older.FinishedAt = older.StartedAt.Add(time.Minute)
	older.Processed = 2
	older.Images = 2
	require.NoError(t, SaveReport(ctx, older, "old.txt"))

	newer := core.NewReport(3)
	newer.FinishedAt = newer.StartedAt.Add(time.Second)
	newer.Processed = 3
	newer.Links = 1
	newer.AddFailure(core.Failure{BlockID: "9", Reason: core.ReasonAPIRequest, Err: errors.New("boom")})
	newer.AddFailure(core.Failure{BlockID: core.NoBlockID, Reason: core.ReasonInvalidURL})
	require.NoError(t, SaveReport(ctx, newer, "lst.txt"))

	runs, err := GetRecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, newer.RunID, runs[0].UID)
	assert.Equal(t, "lst.txt", runs[0].Input)
	assert.Equal(t, 1, runs[0].Saved())
	require.Len(t, runs[0].Failures, 2)
	assert.Equal(t, "boom", runs[0].Failures[0].Error)
	assert.Equal(t, older.RunID, runs[1].UID)
	assert.Empty(t, runs[1].Failures)

	limited, err := GetRecentRuns(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, newer.RunID, limited[0].UID)

	run, err := GetRunByUID(ctx, older.RunID)
	require.NoError(t, err)
	assert.Equal(t, 2, run.Images)
}
