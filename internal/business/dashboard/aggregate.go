package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

var (
	// ErrUnknownOp is returned for an aggregate operation that does not exist.
	ErrUnknownOp = errors.New("unknown aggregate operation")
	// ErrBadQuery is returned for malformed query parameters.
	ErrBadQuery = errors.New("bad query")
)

// Aggregate operations exposed over HTTP.
const (
	OpValueCounts = "value-counts"
	OpGroupMean   = "group-mean"
	OpTwoWay      = "two-way"
	OpPivotMean   = "pivot-mean"
	OpTopN        = "top-n"
	OpDescribe    = "describe"
)

// DefaultTopN applies when a top-n query gives no size.
const DefaultTopN = 5

// AggregateQuery names the columns an operation works on, by source header.
type AggregateQuery struct {
	Filter analytics.FilterSpec
	// Field is the column of value-counts (categorical) and describe (numeric).
	Field string
	// By groups group-mean and top-n.
	By string
	// Value is the numeric column averaged by group-mean, pivot-mean and top-n.
	Value string
	// Row and Col are the categorical axes of two-way and pivot-mean.
	Row string
	Col string
	N   int
	// Order is "asc" or "desc" (default) for top-n.
	Order string
}

// Aggregate runs one analytics operation over the filtered records.
func (s *Service) Aggregate(ctx context.Context, op string, q AggregateQuery) (interface{}, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return nil, err
	}
	return RunAggregate(analytics.Filter(ds.Records, q.Filter), op, q)
}

// RunAggregate resolves the query's columns and applies op to records.
func RunAggregate(records []model.StudentRecord, op string, q AggregateQuery) (interface{}, error) {
	switch op {
	case OpValueCounts:
		f, err := analytics.CategoryByName(q.Field)
		if err != nil {
			return nil, err
		}
		return analytics.ValueCounts(records, f), nil

	case OpDescribe:
		f, err := analytics.NumericByName(q.Field)
		if err != nil {
			return nil, err
		}
		return analytics.Describe(records, f), nil

	case OpGroupMean, OpTopN:
		by, err := analytics.CategoryByName(q.By)
		if err != nil {
			return nil, err
		}
		value, err := analytics.NumericByName(q.Value)
		if err != nil {
			return nil, err
		}
		if op == OpGroupMean {
			return analytics.GroupMean(records, by, value), nil
		}
		dir, err := parseDirection(q.Order)
		if err != nil {
			return nil, err
		}
		n := q.N
		if n <= 0 {
			n = DefaultTopN
		}
		return analytics.TopN(records, by, value, n, dir), nil

	case OpTwoWay, OpPivotMean:
		row, err := analytics.CategoryByName(q.Row)
		if err != nil {
			return nil, err
		}
		col, err := analytics.CategoryByName(q.Col)
		if err != nil {
			return nil, err
		}
		if op == OpTwoWay {
			return analytics.TwoWayCount(records, row, col), nil
		}
		value, err := analytics.NumericByName(q.Value)
		if err != nil {
			return nil, err
		}
		return analytics.PivotMean(records, row, col, value), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownOp, op)
}

func parseDirection(order string) (analytics.Direction, error) {
	switch strings.ToLower(strings.TrimSpace(order)) {
	case "", "desc":
		return analytics.Descending, nil
	case "asc":
		return analytics.Ascending, nil
	}
	return 0, fmt.Errorf("%w: order must be asc or desc, got %q", ErrBadQuery, order)
}
