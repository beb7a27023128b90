// Package service turns request bodies into stored envelopes.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/telhawk-systems/sdk-mockservers/common/logging"
	"github.com/telhawk-systems/sdk-mockservers/common/middleware"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/metrics"
	"github.com/telhawk-systems/sdk-mockservers/envelope/internal/notify"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/storage"
	"github.com/telhawk-systems/sdk-mockservers/envelope/pkg/envelope"
)

// Result is what Ingest produced for one body.
type Result struct {
	Record  storage.Record
	Decoded *envelope.Decoded
}

type EnvelopeService struct {
	store    storage.Store
	notifier notify.Notifier
	logger   *logging.Logger
	now      func() time.Time
}

// NotificationStatus reports whether saved-envelope events reach a broker.
func (s *EnvelopeService) NotificationStatus() string {
	return s.notifier.Status()
}

func NewEnvelopeService(store storage.Store, notifier notify.Notifier, logger *logging.Logger) *EnvelopeService {
	if notifier == nil {
		notifier = notify.NoOp{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &EnvelopeService{
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Ingest decodes body and stores the result. Only decompression and storage
// failures are returned; a failed notification is logged and ignored.
func (s *EnvelopeService) Ingest(ctx context.Context, body []byte) (*Result, error) {
	received := s.now()
	metrics.EnvelopeBytesTotal.Add(float64(len(body)))

	start := time.Now()
	decoded, err := envelope.Decode(body)
	metrics.DecodeDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, envelope.ErrDecompression) {
			metrics.DecompressionFailures.Inc()
			metrics.EnvelopesTotal.WithLabelValues("decompression_failed").Inc()
			s.logger.ErrorContext(ctx, "Failed to decompress gzip content", logging.Error(err), logging.Bytes(len(body)))
		}
		return nil, err
	}

	for _, w := range decoded.Warnings {
		metrics.DecodeWarnings.Inc()
		s.logger.WarnContext(ctx, "Envelope segment replaced by placeholder", "warning", w.String())
	}

	rec, err := s.store.Save(ctx, decoded.Text())
	if err != nil {
		metrics.StorageErrors.Inc()
		metrics.EnvelopesTotal.WithLabelValues("store_failed").Inc()
		s.logger.ErrorContext(ctx, "Error saving envelope", logging.Error(err))
		return nil, fmt.Errorf("save envelope: %w", err)
	}

	metrics.EnvelopesTotal.WithLabelValues("saved").Inc()
	metrics.ItemsTotal.Add(float64(decoded.Items))
	metrics.BinaryPayloadsTotal.Add(float64(decoded.BinaryPayloads))

	s.logger.InfoContext(ctx, "Envelope saved",
		logging.EnvelopeID(rec.ID),
		logging.File(rec.Path),
		logging.Bytes(rec.Size),
		"items", decoded.Items,
		"compressed", decoded.Compressed,
	)

	ev := notify.SavedEvent{
		ID:             rec.ID,
		Path:           rec.Path,
		Size:           rec.Size,
		Items:          decoded.Items,
		BinaryPayloads: decoded.BinaryPayloads,
		Compressed:     decoded.Compressed,
		RequestID:      middleware.GetRequestID(ctx),
		ReceivedAt:     received.UTC(),
	}
	if err := s.notifier.EnvelopeSaved(ctx, ev); err != nil {
		metrics.NotifyErrors.Inc()
		s.logger.WarnContext(ctx, "Failed to publish envelope event", logging.Error(err), logging.EnvelopeID(rec.ID))
	}

	return &Result{Record: rec, Decoded: decoded}, nil
}
