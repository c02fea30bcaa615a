package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
	"github.com/chrisformoso-ca/rvezy-calgary/storage"
)

// Normalizer resolves an extracted field bag into relational identities:
// the owning host and the amenity vocabulary rows, both get-or-create by
// natural key. Add-ons, beds and discounts are listing-scoped and need
// no resolution.
type Normalizer struct {
	store  *storage.Store
	logger *zap.SugaredLogger
}

// NewNormalizer creates a Normalizer backed by the given store.
func NewNormalizer(store *storage.Store, logger *zap.SugaredLogger) *Normalizer {
	return &Normalizer{store: store, logger: logger}
}

// Resolve produces a ResolvedListing ready for the transactional writer.
// The first record to mention a host or amenity creates the shared row;
// later records reuse it.
func (n *Normalizer) Resolve(ctx context.Context, record *models.RawRecord, fields *models.ListingFields) (*models.ResolvedListing, error) {
	hostID, err := n.store.GetOrCreateHost(ctx, fields.Host)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve host: %w", err)
	}

	amenityIDs := make([]int64, 0, len(fields.Amenities))
	for _, name := range fields.Amenities {
		id, err := n.store.GetOrCreateAmenity(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve amenity %q: %w", name, err)
		}
		amenityIDs = append(amenityIDs, id)
	}

	return &models.ResolvedListing{
		URL:        record.URL,
		Title:      record.Title,
		HostID:     hostID,
		Fields:     fields,
		AmenityIDs: amenityIDs,
	}, nil
}
