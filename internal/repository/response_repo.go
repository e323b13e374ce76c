package repository

import (
	"context"
	"fmt"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// rowField holds the 1-based source line so documents read back in file order.
const rowField = "row"

// ResponseRepository handles Firestore read/write for imported survey responses.
type ResponseRepository struct {
	client     *firestore.Client
	collection string
}

func NewResponseRepository(client *firestore.Client, collection string) *ResponseRepository {
	return &ResponseRepository{client: client, collection: collection}
}

// FetchAll loads every response ordered by source line. Values are returned
// as strings so the dataset builder parses CSV and Firestore input alike.
func (r *ResponseRepository) FetchAll(ctx context.Context) ([]model.RawRow, error) {
	iter := r.client.Collection(r.collection).OrderBy(rowField, firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var rows []model.RawRow
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterate %s: %w", r.collection, err)
		}
		rows = append(rows, rowFromDocument(doc.Data(), len(rows)+2))
	}
	return rows, nil
}

// Count returns the number of documents in the collection.
func (r *ResponseRepository) Count(ctx context.Context) (int64, error) {
	res, err := r.client.Collection(r.collection).NewAggregationQuery().WithCount("all").Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", r.collection, err)
	}
	v, ok := res["all"]
	if !ok {
		return 0, fmt.Errorf("count %s: missing result", r.collection)
	}
	return parseCount(v)
}

// BatchUpsert writes rows in batches to reduce round trips. Document IDs are
// derived from the source line, so re-importing the same file overwrites.
func (r *ResponseRepository) BatchUpsert(ctx context.Context, rows []model.RawRow) error {
	if len(rows) == 0 {
		return nil
	}
	const batchSize = 400

	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		batch := r.client.Batch()
		for _, row := range rows[start:end] {
			ref := r.client.Collection(r.collection).Doc(DocumentID(row))
			batch.Set(ref, documentFromRow(row))
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("commit batch [%d:%d]: %w", start, end, err)
		}
	}
	return nil
}

// DocumentID is the Firestore document ID for a source row.
func DocumentID(row model.RawRow) string {
	return fmt.Sprintf("row-%06d", row.Line)
}

func documentFromRow(row model.RawRow) map[string]interface{} {
	doc := make(map[string]interface{}, len(row.Fields)+1)
	for k, v := range row.Fields {
		doc[k] = v
	}
	doc[rowField] = row.Line
	return doc
}

// rowFromDocument stringifies document values. fallbackLine is used when the
// document predates the row field.
func rowFromDocument(data map[string]interface{}, fallbackLine int) model.RawRow {
	row := model.RawRow{Line: fallbackLine, Fields: make(map[string]string, len(data))}
	for k, v := range data {
		if k == rowField {
			if line, ok := v.(int64); ok {
				row.Line = int(line)
			}
			continue
		}
		row.Fields[k] = stringify(v)
	}
	return row
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// parseCount unwraps an aggregation value. The client returns a protobuf
// value wrapper; plain integers are accepted as well.
func parseCount(v interface{}) (int64, error) {
	type integerValue interface{ GetIntegerValue() int64 }
	switch t := v.(type) {
	case int64:
		return t, nil
	case integerValue:
		return t.GetIntegerValue(), nil
	}
	return 0, fmt.Errorf("unexpected count type %T", v)
}
