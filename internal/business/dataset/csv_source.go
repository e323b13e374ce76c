package dataset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/util"
)

// CSVSource reads the cleaned survey export from a local file.
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

// Identity is the path together with the file's modification time and size,
// so replacing the file invalidates the memoised snapshot.
func (s *CSVSource) Identity(_ context.Context) (Identity, error) {
	info, err := os.Stat(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Identity{}, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return Identity{}, fmt.Errorf("stat %s: %w", s.Path, err)
	}
	return Identity{
		Source:  "csv://" + s.Path,
		Version: strconv.FormatInt(info.ModTime().UnixNano(), 10) + "-" + strconv.FormatInt(info.Size(), 10),
	}, nil
}

// Rows loads every column as a string; typing happens in Build.
func (s *CSVSource) Rows(_ context.Context) (Table, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Table{}, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return Table{}, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return Table{}, fmt.Errorf("read csv %s: %w", s.Path, df.Err)
	}
	return tableFromRecords(df.Records()), nil
}

// tableFromRecords converts header-first string records into a Table. Line
// numbers are 1-based file lines, the header being line 1.
func tableFromRecords(records [][]string) Table {
	if len(records) == 0 {
		return Table{}
	}
	header := make([]string, len(records[0]))
	for i, h := range records[0] {
		header[i] = util.CleanLabel(h)
	}
	rows := make([]model.RawRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		fields := make(map[string]string, len(header))
		for j, col := range header {
			if j < len(rec) {
				fields[col] = rec[j]
			}
		}
		rows = append(rows, model.RawRow{Line: i + 2, Fields: fields})
	}
	return Table{Columns: header, Rows: rows}
}
