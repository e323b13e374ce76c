package dataset

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// RowStore fetches raw response rows. repository.ResponseRepository
// implements it over Firestore.
type RowStore interface {
	FetchAll(ctx context.Context) ([]model.RawRow, error)
}

// FirestoreSource serves rows imported into a Firestore collection. A
// collection has no cheap version stamp, so its identity changes once per
// refresh interval and the snapshot is reloaded at most that often.
type FirestoreSource struct {
	store      RowStore
	project    string
	collection string
	refresh    time.Duration
	now        func() time.Time
}

func NewFirestoreSource(store RowStore, project, collection string, refresh time.Duration) *FirestoreSource {
	if refresh <= 0 {
		refresh = 5 * time.Minute
	}
	return &FirestoreSource{
		store:      store,
		project:    project,
		collection: collection,
		refresh:    refresh,
		now:        time.Now,
	}
}

func (s *FirestoreSource) Identity(_ context.Context) (Identity, error) {
	bucket := s.now().Truncate(s.refresh).Unix()
	return Identity{
		Source:  fmt.Sprintf("firestore://%s/%s", s.project, s.collection),
		Version: strconv.FormatInt(bucket, 10),
	}, nil
}

// Rows returns ErrSourceNotFound when the collection holds no documents.
func (s *FirestoreSource) Rows(ctx context.Context) (Table, error) {
	rows, err := s.store.FetchAll(ctx)
	if err != nil {
		return Table{}, fmt.Errorf("fetch %s: %w", s.collection, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("%w: collection %s is empty", ErrSourceNotFound, s.collection)
	}
	return Table{Columns: columnsOf(rows), Rows: rows}, nil
}

// columnsOf lists the union of document keys, known columns first.
func columnsOf(rows []model.RawRow) []string {
	seen := make(map[string]struct{})
	for _, r := range rows {
		for k := range r.Fields {
			seen[k] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for _, c := range model.AllColumns {
		if _, ok := seen[c]; ok {
			cols = append(cols, c)
			delete(seen, c)
		}
	}
	rest := make([]string, 0, len(seen))
	for c := range seen {
		rest = append(rest, c)
	}
	sort.Strings(rest)
	return append(cols, rest...)
}
