// Package extract materializes normalized storm tracks from any record
// source. One extractor covers all three source layouts; the per-format
// differences live entirely in the source adapters.
package extract

import (
	"log/slog"
	"sort"
	"time"

	"github.com/couchcryptid/cyclone-track-service/internal/domain"
	"github.com/couchcryptid/cyclone-track-service/internal/observability"
	"github.com/couchcryptid/cyclone-track-service/internal/source"
)

// Extractor turns raw observation candidates into clean, ordered tracks.
// It is stateless; each call is independent and the returned track belongs
// exclusively to the caller.
type Extractor struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates an Extractor with the given observability.
func New(logger *slog.Logger, metrics *observability.Metrics) *Extractor {
	return &Extractor{logger: logger, metrics: metrics}
}

// Extract resolves one storm's track from src. The identifier must exist in
// the source's universe under mode, or a StormNotFoundError is returned
// before any iteration. Candidates failing any validity predicate are
// removed whole; survivors are stable-sorted by timestamp ascending. A
// present storm whose candidates all filter out yields an empty track, not
// an error.
func (e *Extractor) Extract(src source.RecordSource, dataset, stormID string, mode domain.IDMode) (domain.Track, error) {
	start := time.Now()

	if !src.HasStorm(stormID, mode) {
		e.metrics.Extractions.WithLabelValues(dataset, "not_found").Inc()
		return domain.Track{}, &domain.StormNotFoundError{Dataset: dataset, StormID: stormID, Mode: mode}
	}

	candidates := src.Candidates(stormID, mode)
	kept := make([]domain.Observation, 0, len(candidates))
	for _, o := range candidates {
		if reason, ok := dropReason(o); ok {
			e.metrics.ObservationsDropped.WithLabelValues(reason).Inc()
			continue
		}
		kept = append(kept, o)
	}

	// Stable keeps source order for equal timestamps, and is a no-op for
	// the array layout where positional order is already temporal.
	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Timestamp.Before(kept[j].Timestamp)
	})

	track := domain.NewTrack(dataset, stormID, kept)

	outcome := "ok"
	if track.Empty() {
		outcome = "empty"
	}
	e.metrics.Extractions.WithLabelValues(dataset, outcome).Inc()
	e.metrics.TrackLength.Observe(float64(len(kept)))
	e.metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	e.logger.Debug("track extracted",
		"dataset", dataset,
		"storm_id", stormID,
		"mode", string(mode),
		"candidates", len(candidates),
		"observations", len(kept),
	)

	return track, nil
}

// dropReason names the first validity predicate a candidate fails. The
// predicates are independent; failing any one removes the whole record.
func dropReason(o domain.Observation) (string, bool) {
	switch {
	case !o.HasPosition():
		return "position", true
	case !o.HasWind():
		return "wind", true
	case !o.HasPressure():
		return "pressure", true
	}
	return "", false
}
