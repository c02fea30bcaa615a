package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// Read-side aggregate queries for the post-run summary. The same read
// contract is what the downstream analytics scripts consume.

// CountListings returns the total number of listing rows.
func (s *Store) CountListings(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM listings"); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

// ListingsByRVType returns listing counts and average nightly price per
// RV type, most common type first.
func (s *Store) ListingsByRVType(ctx context.Context) ([]models.RVTypeStat, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("rv_type", "COUNT(*) AS count", "AVG(base_price) AS avg_price")
	sb.From(listingsTable)
	sb.Where(sb.IsNotNull("rv_type"), sb.IsNotNull("base_price"))
	sb.GroupBy("rv_type")
	sb.OrderBy("count").Desc()

	query, args := sb.Build()
	var stats []models.RVTypeStat
	if err := s.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate by rv type: %w", err)
	}
	return stats, nil
}

// TopCities returns the cities with the most listings.
func (s *Store) TopCities(ctx context.Context, limit int) ([]models.CityStat, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("location_city", "COUNT(*) AS count")
	sb.From(listingsTable)
	sb.Where(sb.IsNotNull("location_city"))
	sb.GroupBy("location_city")
	sb.OrderBy("count").Desc()
	sb.Limit(limit)

	query, args := sb.Build()
	var stats []models.CityStat
	if err := s.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate by city: %w", err)
	}
	return stats, nil
}

// PriceRange returns the global min/max/avg base price over listings
// that have one. All fields are nil on an empty dataset.
func (s *Store) PriceRange(ctx context.Context) (models.PriceStats, error) {
	const query = `
		SELECT MIN(base_price) AS min_price,
		       MAX(base_price) AS max_price,
		       AVG(base_price) AS avg_price
		FROM listings
		WHERE base_price IS NOT NULL`

	var stats models.PriceStats
	if err := s.db.GetContext(ctx, &stats, query); err != nil {
		return models.PriceStats{}, fmt.Errorf("failed to compute price range: %w", err)
	}
	return stats, nil
}

// TopAmenities returns the most common amenities by listing count.
func (s *Store) TopAmenities(ctx context.Context, limit int) ([]models.AmenityStat, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("a.name", "COUNT(*) AS count")
	sb.From("listing_amenities la")
	sb.Join("amenities a", "la.amenity_id = a.amenity_id")
	sb.GroupBy("a.name")
	sb.OrderBy("count").Desc()
	sb.Limit(limit)

	query, args := sb.Build()
	var stats []models.AmenityStat
	if err := s.db.SelectContext(ctx, &stats, query, args...); err != nil {
		return nil, fmt.Errorf("failed to aggregate amenities: %w", err)
	}
	return stats, nil
}

// GetListingByURL returns the current listing row for a URL, or nil if
// the URL has never been ingested.
func (s *Store) GetListingByURL(ctx context.Context, url string) (*models.ListingRow, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("*")
	sb.From(listingsTable)
	sb.Where(sb.Equal("url", url))

	query, args := sb.Build()
	var row models.ListingRow
	if err := s.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", url, err)
	}
	return &row, nil
}

// CountDeliveryListings returns how many listings offer delivery.
func (s *Store) CountDeliveryListings(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, "SELECT COUNT(*) FROM listings WHERE delivery_available"); err != nil {
		return 0, fmt.Errorf("failed to count delivery listings: %w", err)
	}
	return n, nil
}
