package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/extract"
	"github.com/couchcryptid/cyclone-track-service/internal/observability"
	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// TrackStore persists extracted tracks across restarts.
type TrackStore interface {
	Get(ctx context.Context, dataset, stormID string, mode domain.IDMode) (domain.Track, bool, error)
	Put(ctx context.Context, mode domain.IDMode, track domain.Track) error
}

// TrackPublisher emits freshly extracted tracks to downstream consumers.
type TrackPublisher interface {
	PublishTrack(ctx context.Context, track domain.Track) error
}

type dataset struct {
	src         source.RecordSource
	defaultMode domain.IDMode
}

// Service resolves storm tracks from registered datasets, caching
// extractions in memory and optionally in a durable store.
type Service struct {
	logger    *slog.Logger
	metrics   *observability.Metrics
	extractor *extract.Extractor
	cache     *trackCache
	store     TrackStore
	publisher TrackPublisher

	mu       sync.RWMutex
	datasets map[string]dataset
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithStore attaches a durable track store consulted after the memory cache.
func WithStore(s TrackStore) Option {
	return func(svc *Service) { svc.store = s }
}

// WithPublisher attaches a publisher notified on every fresh extraction.
func WithPublisher(p TrackPublisher) Option {
	return func(svc *Service) { svc.publisher = p }
}

func New(logger *slog.Logger, metrics *observability.Metrics, cacheSize int, opts ...Option) *Service {
	svc := &Service{
		logger:    logger,
		metrics:   metrics,
		extractor: extract.New(logger, metrics),
		cache:     newTrackCache(cacheSize),
		datasets:  make(map[string]dataset),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// RegisterDataset makes a parsed record source available under name.
// Registering the same name again replaces the previous source.
func (s *Service) RegisterDataset(name string, src source.RecordSource, defaultMode domain.IDMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.datasets[name] = dataset{src: src, defaultMode: defaultMode}
	s.metrics.DatasetsLoaded.Set(float64(len(s.datasets)))
	s.logger.Info("dataset registered", "dataset", name, "default_mode", string(defaultMode))
}

// Datasets returns the registered dataset names in sorted order.
func (s *Service) Datasets() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckReadiness reports whether the service can answer track queries.
func (s *Service) CheckReadiness(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.datasets) == 0 {
		return fmt.Errorf("no datasets registered")
	}
	return nil
}

// Track resolves the track for stormID in the named dataset. An empty
// mode falls back to the dataset's default identifier mode.
func (s *Service) Track(ctx context.Context, datasetName, stormID string, mode domain.IDMode) (domain.Track, error) {
	s.mu.RLock()
	ds, ok := s.datasets[datasetName]
	s.mu.RUnlock()
	if !ok {
		return domain.Track{}, &domain.UnknownDatasetError{Dataset: datasetName}
	}

	if mode == "" {
		mode = ds.defaultMode
	}
	if !mode.Valid() {
		return domain.Track{}, fmt.Errorf("invalid identifier mode %q", mode)
	}

	key := cacheKey(datasetName, stormID, mode)
	if track, ok := s.cache.get(key); ok {
		s.metrics.CacheLookups.WithLabelValues("memory", "hit").Inc()
		return track, nil
	}
	s.metrics.CacheLookups.WithLabelValues("memory", "miss").Inc()

	if s.store != nil {
		track, found, err := s.store.Get(ctx, datasetName, stormID, mode)
		if err != nil {
			s.logger.Warn("store lookup failed", "dataset", datasetName, "storm_id", stormID, "error", err)
		} else if found {
			s.metrics.CacheLookups.WithLabelValues("store", "hit").Inc()
			s.cache.put(key, track)
			return track, nil
		} else {
			s.metrics.CacheLookups.WithLabelValues("store", "miss").Inc()
		}
	}

	track, err := s.extractor.Extract(ds.src, datasetName, stormID, mode)
	if err != nil {
		return domain.Track{}, err
	}

	if s.store != nil {
		if err := s.store.Put(ctx, mode, track); err != nil {
			s.logger.Warn("store write failed", "dataset", datasetName, "storm_id", stormID, "error", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.PublishTrack(ctx, track); err != nil {
			s.metrics.PublishErrors.Inc()
			s.logger.Warn("track publish failed", "dataset", datasetName, "storm_id", stormID, "error", err)
		} else {
			s.metrics.TracksPublished.Inc()
		}
	}

	s.cache.put(key, track)
	return track, nil
}

func cacheKey(dataset, stormID string, mode domain.IDMode) string {
	return dataset + "|" + stormID + "|" + string(mode)
}
