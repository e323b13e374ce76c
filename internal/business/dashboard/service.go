// Package dashboard composes the analytics primitives into the views served
// by the API. Views are recomputed from the current dataset snapshot and, when
// a cache is configured, memoised per snapshot and filter selection.
package dashboard

import (
	"context"
	"errors"

	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/analytics"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/business/dataset"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/cache"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/internal/platform/logger"
	"github.com/raihanardiansah/Dashboard-Kecanduan-Media-Sosial-Mahasiswa/pkg/model"
)

// Cached view names.
const (
	ViewOverview   = "overview"
	ViewVulnerable = "vulnerable"
	ViewPlatforms  = "platforms"
	ViewOptions    = "options"
)

// DatasetProvider returns the current snapshot. dataset.Store implements it.
type DatasetProvider interface {
	Current(ctx context.Context) (*dataset.Dataset, error)
}

// Service builds dashboard views.
type Service struct {
	data  DatasetProvider
	cache cache.Cache
	log   *logger.Logger
}

func NewService(data DatasetProvider, c cache.Cache, log *logger.Logger) *Service {
	if c == nil {
		c = cache.Noop{}
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{data: data, cache: c, log: log}
}

// Dataset describes the snapshot currently served.
func (s *Service) Dataset(ctx context.Context) (model.DatasetInfo, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return model.DatasetInfo{}, err
	}
	return ds.Info, nil
}

// Options lists the values of every filter control.
func (s *Service) Options(ctx context.Context) (model.FilterOptions, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return model.FilterOptions{}, err
	}
	return cached(ctx, s, ds, ViewOptions, "", func() model.FilterOptions {
		return analytics.Options(ds.Records)
	}), nil
}

// Records returns the records matching the selection together with the dataset size.
func (s *Service) Records(ctx context.Context, spec analytics.FilterSpec) ([]model.StudentRecord, int, error) {
	ds, err := s.data.Current(ctx)
	if err != nil {
		return nil, 0, err
	}
	return analytics.Filter(ds.Records, spec), len(ds.Records), nil
}

// cached returns the view stored for (snapshot, view, key) or computes and
// stores it. Cache failures only cost a recomputation.
func cached[T any](ctx context.Context, s *Service, ds *dataset.Dataset, view, key string, compute func() T) T {
	cacheKey := cache.ViewKey(ds.Info.Fingerprint, view, key)
	var out T
	err := s.cache.Get(ctx, cacheKey, &out)
	if err == nil {
		return out
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.log.Warn("view cache read failed", "view", view, "error", err)
	}
	out = compute()
	if err := s.cache.Set(ctx, cacheKey, out); err != nil {
		s.log.Warn("view cache write failed", "view", view, "error", err)
	}
	return out
}
