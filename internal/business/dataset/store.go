package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/logger"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/util"
)

// Dataset is an immutable snapshot of the loaded records. Callers must not
// modify Records.
type Dataset struct {
	Info    model.DatasetInfo
	Records []model.StudentRecord
}

// Store memoises the last snapshot keyed by source identity. A request only
// pays for a load when the source has changed since the previous one.
type Store struct {
	source Source
	opts   BuildOptions
	log    *logger.Logger
	now    func() time.Time

	mu      sync.RWMutex
	key     string
	current *Dataset
	loads   int
}

func NewStore(source Source, opts BuildOptions, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{source: source, opts: opts, log: log, now: time.Now}
}

// Current returns the snapshot for the source's present identity, loading it
// if needed. A missing source yields ErrSourceNotFound even when an older
// snapshot is held.
func (s *Store) Current(ctx context.Context) (*Dataset, error) {
	id, err := s.source.Identity(ctx)
	if err != nil {
		return nil, err
	}
	key := id.Key()

	s.mu.RLock()
	if s.current != nil && s.key == key {
		ds := s.current
		s.mu.RUnlock()
		return ds, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.key == key {
		return s.current, nil
	}
	ds, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	s.key = key
	s.current = ds
	s.loads++
	return ds, nil
}

// Loads reports how many snapshots have been built.
func (s *Store) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

func (s *Store) load(ctx context.Context, id Identity) (*Dataset, error) {
	ctx, span := otel.Tracer("dataset").Start(ctx, "dataset.load")
	defer span.End()
	span.SetAttributes(attribute.String("dataset.source", id.Source))

	start := s.now()
	table, err := s.source.Rows(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read source")
		return nil, err
	}
	records, report, err := Build(table, s.opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "build records")
		s.log.Error("dataset rejected", "source", id.Source, "error", err, "rejected", len(report.Rejected))
		return nil, fmt.Errorf("build %s: %w", id.Source, err)
	}

	ds := &Dataset{
		Info: model.DatasetInfo{
			Source:      id.Source,
			Fingerprint: util.Fingerprint(id.Source, id.Version),
			LoadedAt:    s.now().UTC(),
			Records:     len(records),
			Report:      report,
		},
		Records: records,
	}
	span.SetAttributes(
		attribute.Int("dataset.rows", report.Rows),
		attribute.Int("dataset.accepted", report.Accepted),
	)

	kv := []interface{}{
		"source", id.Source,
		"rows", report.Rows,
		"accepted", report.Accepted,
		"rejected", len(report.Rejected),
		"duration_ms", s.now().Sub(start).Milliseconds(),
	}
	if len(report.Warnings) > 0 {
		kv = append(kv, "warnings", report.Warnings)
	}
	s.log.Info("dataset loaded", kv...)
	return ds, nil
}
