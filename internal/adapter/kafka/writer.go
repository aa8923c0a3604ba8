// Package kafka publishes extracted tracks to the sink topic for
// downstream presentation consumers.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/cyclone-track-service/internal/config"
	"github.com/couchcryptid/cyclone-track-service/internal/domain"
)

// Writer produces track messages on the configured sink topic.
// It implements service.TrackPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishTrack serializes one track and writes it to the sink topic.
func (w *Writer) PublishTrack(ctx context.Context, track domain.Track) error {
	msg, err := serializeTrack(track)
	if err != nil {
		return err
	}
	return w.writer.WriteMessages(ctx, msg)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeTrack marshals a track into a Kafka message keyed by dataset and
// storm, so one storm's extractions land on one partition.
func serializeTrack(track domain.Track) (kafkago.Message, error) {
	data, err := json.Marshal(track)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize track: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(track.Dataset + "|" + track.StormID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "dataset", Value: []byte(track.Dataset)},
			{Key: "storm_id", Value: []byte(track.StormID)},
			{Key: "observations", Value: []byte(strconv.Itoa(len(track.Observations)))},
			{Key: "extracted_at", Value: []byte(track.ExtractedAt.Format(time.RFC3339))},
		},
	}, nil
}
