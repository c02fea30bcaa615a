package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/extract"
	"github.com/chrisformoso-ca/rvezy-calgary/models"
	"github.com/chrisformoso-ca/rvezy-calgary/storage"
	"github.com/chrisformoso-ca/rvezy-calgary/utils"
)

// Pipeline drives the batch: each input record is extracted, normalized
// and written to completion before the next one starts. Records are
// independent; a failed record is logged with its URL and skipped, never
// blocking the rest of the batch.
type Pipeline struct {
	extractor     *extract.Extractor
	normalizer    *Normalizer
	store         *storage.Store
	tracker       *utils.URLTracker
	logger        *zap.SugaredLogger
	progressEvery int
}

// NewPipeline wires the extraction engine and normalizer around the store.
func NewPipeline(store *storage.Store, logger *zap.SugaredLogger, progressEvery int) *Pipeline {
	return &Pipeline{
		extractor:     extract.New(logger),
		normalizer:    NewNormalizer(store, logger),
		store:         store,
		tracker:       utils.NewURLTracker(),
		logger:        logger,
		progressEvery: progressEvery,
	}
}

// Run processes the source to exhaustion and returns the run stats.
// Only a failure of the source itself aborts the run; every per-record
// failure is contained.
func (p *Pipeline) Run(ctx context.Context, source storage.RecordSource) (*models.RunStats, error) {
	stats := &models.RunStats{RunID: uuid.New().String()}
	log := p.logger.With("run_id", stats.RunID)

	log.Infow("starting extraction run")

	for {
		record, err := source.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read input record: %w", err)
		}

		if !p.tracker.Add(record.URL) {
			log.Debugw("duplicate input URL, listing will be replaced", "url", record.URL)
		}

		if err := p.process(ctx, record); err != nil {
			stats.Failed++
			log.Errorw("failed to process listing", "url", record.URL, "error", err)
		}
		stats.Processed++

		if stats.Processed%p.progressEvery == 0 {
			log.Infow("progress", "processed", stats.Processed, "failed", stats.Failed)
		}
	}

	stats.DuplicateURLs = p.tracker.Duplicates()
	log.Infow("run complete",
		"processed", stats.Processed,
		"failed", stats.Failed,
		"duplicate_urls", stats.DuplicateURLs,
	)
	return stats, nil
}

func (p *Pipeline) process(ctx context.Context, record *models.RawRecord) error {
	fields := p.extractor.Extract(record.Title, record.Body)

	resolved, err := p.normalizer.Resolve(ctx, record, fields)
	if err != nil {
		return err
	}

	return p.store.SaveListing(ctx, resolved)
}
