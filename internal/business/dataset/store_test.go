package dataset

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

func copyFixture(t *testing.T, dst string) {
	t.Helper()
	data, err := os.ReadFile("testdata/students.csv")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(dst, data, 0o644))
}

func TestStore_MemoisesByIdentity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	copyFixture(t, path)
	store := NewStore(NewCSVSource(path), BuildOptions{}, nil)
	ctx := context.Background()

	first, err := store.Current(ctx)
	require.NoError(t, err)
	second, err := store.Current(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Loads())
	assert.Equal(t, 4, first.Info.Records)
	assert.NotEmpty(t, first.Info.Fingerprint)

	// Replacing the file changes its identity.
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	third, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Loads())
	assert.NotEqual(t, first.Info.Fingerprint, third.Info.Fingerprint)
}

func TestStore_MissingSourceRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.csv")
	store := NewStore(NewCSVSource(path), BuildOptions{}, nil)
	ctx := context.Background()

	_, err := store.Current(ctx)
	require.ErrorIs(t, err, ErrSourceNotFound)

	copyFixture(t, path)
	ds, err := store.Current(ctx)
	require.NoError(t, err)
	assert.Len(t, ds.Records, 4)

	require.NoError(t, os.Remove(path))
	_, err = store.Current(ctx)
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestStore_StrictFailure(t *testing.T) {
	store := NewStore(NewCSVSource("testdata/students.csv"), BuildOptions{Strict: true}, nil)

	_, err := store.Current(context.Background())

	assert.ErrorIs(t, err, ErrRejectedRows)
	assert.Equal(t, 0, store.Loads())
}

func TestStore_ConcurrentReadersShareOneLoad(t *testing.T) {
	store := NewStore(NewCSVSource("testdata/students.csv"), BuildOptions{}, nil)

	var wg sync.WaitGroup
	results := make([]*Dataset, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ds, err := store.Current(context.Background())
			assert.NoError(t, err)
			results[i] = ds
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, store.Loads())
	for _, ds := range results {
		assert.Same(t, results[0], ds)
	}
}

type fakeRowStore struct {
	rows  []model.RawRow
	calls int
}

func (f *fakeRowStore) FetchAll(context.Context) ([]model.RawRow, error) {
	f.calls++
	return f.rows, nil
}

func TestFirestoreSource(t *testing.T) {
	rows := fixtureTable(t).Rows
	fake := &fakeRowStore{rows: rows}
	src := NewFirestoreSource(fake, "proj", "student_responses", time.Minute)
	clock := time.Date(2026, 1, 1, 10, 0, 5, 0, time.UTC)
	src.now = func() time.Time { return clock }
	ctx := context.Background()

	a, err := src.Identity(ctx)
	require.NoError(t, err)
	assert.Equal(t, "firestore://proj/student_responses", a.Source)

	clock = clock.Add(30 * time.Second)
	b, _ := src.Identity(ctx)
	assert.Equal(t, a, b, "same refresh bucket")

	clock = clock.Add(time.Minute)
	c, _ := src.Identity(ctx)
	assert.NotEqual(t, a.Key(), c.Key())

	table, err := src.Rows(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.AllColumns, table.Columns)
	assert.Len(t, table.Rows, 6)

	store := NewStore(src, BuildOptions{}, nil)
	_, err = store.Current(ctx)
	require.NoError(t, err)
	_, err = store.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls, "one fetch for Rows above, one for the store")
}

func TestFirestoreSource_EmptyCollection(t *testing.T) {
	src := NewFirestoreSource(&fakeRowStore{}, "proj", "student_responses", 0)

	_, err := src.Rows(context.Background())

	assert.ErrorIs(t, err, ErrSourceNotFound)
}
