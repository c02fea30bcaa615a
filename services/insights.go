package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
	"github.com/chrisformoso-ca/rvezy-calgary/storage"
)

// InsightService computes the post-run summary purely by reading the
// persisted dataset back, never from in-flight pipeline state. The same
// queries back the downstream analytics scripts.
type InsightService struct {
	store  *storage.Store
	logger *zap.SugaredLogger
}

// NewInsightService creates a new InsightService
func NewInsightService(store *storage.Store, logger *zap.SugaredLogger) *InsightService {
	return &InsightService{store: store, logger: logger}
}

// Generate assembles the full insight report.
func (s *InsightService) Generate(ctx context.Context) (*models.InsightReport, error) {
	report := &models.InsightReport{}

	var err error
	if report.TotalListings, err = s.store.CountListings(ctx); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.TotalHosts, err = s.store.CountHosts(ctx); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.TotalAmenities, err = s.store.CountAmenities(ctx); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.ByRVType, err = s.store.ListingsByRVType(ctx); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.TopCities, err = s.store.TopCities(ctx, 10); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.Prices, err = s.store.PriceRange(ctx); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}
	if report.TopAmenities, err = s.store.TopAmenities(ctx, 10); err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	delivery, err := s.store.CountDeliveryListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("summary: %w", err)
	}

	if report.TotalListings > 0 {
		report.DeliveryShare = float64(delivery) * 100 / float64(report.TotalListings)
		for i := range report.TopAmenities {
			report.TopAmenities[i].Share = float64(report.TopAmenities[i].Count) * 100 / float64(report.TotalListings)
		}
	}

	s.logger.Infow("summary generated",
		"listings", report.TotalListings,
		"hosts", report.TotalHosts,
		"amenities", report.TotalAmenities,
	)
	return report, nil
}
