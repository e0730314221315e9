package journal

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/stocktracker/report"
)

func newTestSQLite(t *testing.T) (*SQLite, string) {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	j, err := NewSQLite(path)
	require.NoError(t, err)

	return j, path
}

func TestSQLiteSchemaCreated(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	assert.NoError(t, j.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	rows, err := db.Query(`SELECT name FROM sqlite_master WHERE type='table' AND name IN ('snapshots','snapshot_rows')`)
	require.NoError(t, err)
	defer rows.Close()

	found := map[string]bool{}
	for rows.Next() {
		var name string
		assert.NoError(t, rows.Scan(&name))
		found[name] = true
	}
	assert.NoError(t, rows.Err())

	assert.True(t, found["snapshots"])
	assert.True(t, found["snapshot_rows"])
}

func TestSQLiteRecordAndGetSnapshot(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })
	ctx := context.Background()

	saved := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s := Snapshot{
		ID:      "S1",
		SavedAt: saved,
		File:    "portfolio_2024-01-02_03-04-05.csv",
		Report:  sample,
	}
	require.NoError(t, j.RecordSnapshot(ctx, s))

	got, err := j.GetSnapshot(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "S1", got.ID)
	assert.True(t, saved.Equal(got.SavedAt))
	assert.Equal(t, s.File, got.File)
	assert.Equal(t, sample, got.Report)
}

func TestSQLiteRecordAssignsID(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })
	ctx := context.Background()

	require.NoError(t, j.RecordSnapshot(ctx, Snapshot{
		SavedAt: time.Now(),
		File:    "a.csv",
		Report:  report.Report{},
	}))

	snaps, err := j.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Len(t, snaps[0].ID, 26)
}

func TestSQLiteDuplicateIDRollsBack(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })
	ctx := context.Background()

	s := Snapshot{ID: "DUP", SavedAt: time.Now(), File: "a.csv", Report: sample}
	require.NoError(t, j.RecordSnapshot(ctx, s))
	assert.Error(t, j.RecordSnapshot(ctx, s))

	got, err := j.GetSnapshot(ctx, "DUP")
	require.NoError(t, err)
	assert.Len(t, got.Report.Rows, 2)
}

func TestSQLiteListSnapshotsNewestFirst(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"A", "B", "C"} {
		require.NoError(t, j.RecordSnapshot(ctx, Snapshot{
			ID:      id,
			SavedAt: base.Add(time.Duration(i) * time.Hour),
			File:    id + ".csv",
			Report:  report.Report{Total: 100},
		}))
	}

	snaps, err := j.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, snaps, 3)
	assert.Equal(t, "C", snaps[0].ID)
	assert.Equal(t, "B", snaps[1].ID)
	assert.Equal(t, "A", snaps[2].ID)
	assert.Nil(t, snaps[0].Report.Rows)
	assert.EqualValues(t, 100, snaps[0].Report.Total)
}

func TestSQLiteGetSnapshotNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	t.Cleanup(func() { _ = j.Close() })

	_, err := j.GetSnapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestOpenSQLiteMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "typo.sqlite")
	_, err := OpenSQLite(path)
	assert.ErrorIs(t, err, ErrJournalNotFound)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestOpenSQLiteReadsExistingArchive(t *testing.T) {
	t.Parallel()

	j, path := newTestSQLite(t)
	ctx := context.Background()
	require.NoError(t, j.RecordSnapshot(ctx, Snapshot{ID: "R1", SavedAt: time.Now(), File: "r.csv", Report: sample}))
	require.NoError(t, j.Close())

	ro, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ro.Close() })

	got, err := ro.GetSnapshot(ctx, "R1")
	require.NoError(t, err)
	assert.Equal(t, sample, got.Report)

	assert.Error(t, ro.RecordSnapshot(ctx, Snapshot{ID: "R2", SavedAt: time.Now(), File: "r.csv"}))
}
