package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "runs.db")
	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestBestRunEmpty(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.BestRun()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSaveAndBestRun(t *testing.T) {
	store := openTestStore(t)
	base := time.Unix(1_700_000_000, 0)

	runs := []RunRecord{
		{ID: "a", Seed: 1, Level: 2, XP: 3, BlocksMined: 4, Duration: 90 * time.Second, EndedAt: base},
		{ID: "b", Seed: 2, Level: 3, XP: 1, BlocksMined: 7, Duration: 2 * time.Minute, EndedAt: base.Add(time.Minute)},
		{ID: "c", Seed: 3, Level: 3, XP: 9, BlocksMined: 9, Duration: 3 * time.Minute, EndedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range runs {
		require.NoError(t, store.SaveRun(r))
	}

	best, ok, err := store.BestRun()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, runs[2], best)

	recent, err := store.RecentRuns(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
}

func TestSaveRunDuplicateID(t *testing.T) {
	store := openTestStore(t)
	r := RunRecord{ID: "same", Level: 1, EndedAt: time.Unix(1, 0)}

	require.NoError(t, store.SaveRun(r))
	assert.Error(t, store.SaveRun(r))
}
