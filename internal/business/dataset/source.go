// Package dataset turns a tabular source of survey responses into the
// immutable record snapshot served by the dashboard.
package dataset

import (
	"context"
	"errors"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

var (
	// ErrSourceNotFound means the configured source does not exist yet.
	ErrSourceNotFound = errors.New("data source not found")
	// ErrMissingColumn means a required column is absent from the header.
	ErrMissingColumn = errors.New("missing required column")
	// ErrRejectedRows is returned in strict mode when any row fails to parse.
	ErrRejectedRows = errors.New("rows rejected")
)

// Identity names a particular version of a source. Two loads with the same
// identity are guaranteed to yield the same rows.
type Identity struct {
	Source  string
	Version string
}

// Key joins the identity into one comparable string.
func (id Identity) Key() string {
	return id.Source + "@" + id.Version
}

// Table is the raw content of a source: its header and untyped rows.
type Table struct {
	Columns []string
	Rows    []model.RawRow
}

// Source provides the raw survey table.
type Source interface {
	// Identity is cheap and is consulted on every request.
	Identity(ctx context.Context) (Identity, error)
	Rows(ctx context.Context) (Table, error)
}
