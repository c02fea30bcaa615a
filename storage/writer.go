package storage

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

const (
	listingsTable         = "listings"
	pricingTable          = "pricing"
	listingAmenitiesTable = "listing_amenities"
	addonsTable           = "addons"
	bedsTable             = "beds"
)

// SaveListing persists one resolved listing atomically: the listing row
// is replaced by URL, then all child rows are inserted against the new
// listing identity, then the transaction commits. On any error the whole
// listing write rolls back and the caller skips the record.
//
// Replace means delete-then-insert, so a re-ingested URL gets a fresh
// listing_id and the child rows written by earlier runs are stranded
// rather than cleared. Known accumulation behavior, kept as is.
func (s *Store) SaveListing(ctx context.Context, listing *models.ResolvedListing) (err error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s: %w", listing.URL, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = s.replaceListing(ctx, tx, listing); err != nil {
		return err
	}

	var listingID int64
	if listingID, err = s.listingIDByURL(ctx, tx, listing.URL); err != nil {
		return err
	}

	if err = s.insertDiscounts(ctx, tx, listingID, listing.Fields.Pricing.Discounts); err != nil {
		return err
	}
	if err = s.insertAmenityLinks(ctx, tx, listingID, listing.AmenityIDs); err != nil {
		return err
	}
	if err = s.insertAddons(ctx, tx, listingID, listing.Fields.Addons); err != nil {
		return err
	}
	if err = s.insertBeds(ctx, tx, listingID, listing.Fields.Beds); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit listing %s: %w", listing.URL, err)
	}
	return nil
}

func (s *Store) replaceListing(ctx context.Context, tx *sqlx.Tx, listing *models.ResolvedListing) error {
	del := s.flavor.NewDeleteBuilder()
	del.DeleteFrom(listingsTable)
	del.Where(del.Equal("url", listing.URL))

	query, args := del.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear listing %s: %w", listing.URL, err)
	}

	f := listing.Fields
	ib := s.flavor.NewInsertBuilder()
	ib.InsertInto(listingsTable)
	ib.Cols(
		"url", "title", "host_id", "location_city", "location_province",
		"rv_type", "rv_year", "rv_make", "rv_model", "length_ft", "sleeps",
		"num_slide_outs", "weight_lbs", "hitch_size", "hitch_weight_lbs",
		"base_price", "security_deposit", "pet_friendly", "delivery_available",
		"delivery_max_km", "delivery_price_per_km", "overall_rating", "num_reviews",
		"accuracy_rating", "value_rating", "cleanliness_rating", "communication_rating",
		"flexible_pickup", "flexible_dropoff", "towing_experience_required",
	)
	ib.Values(
		listing.URL, listing.Title, listing.HostID, f.Location.City, f.Location.Province,
		f.Specs.Type, f.Specs.Year, f.Specs.Make, f.Specs.Model, f.Specs.LengthFt, f.Specs.Sleeps,
		f.Specs.NumSlideOuts, f.Specs.WeightLbs, f.Specs.HitchSize, f.Specs.HitchWeightLbs,
		f.Pricing.BasePrice, f.Pricing.SecurityDeposit, f.Rules.PetsAllowed, f.Delivery.Available,
		f.Delivery.MaxKm, f.Delivery.PricePerKm, f.Reviews.OverallRating, f.Reviews.NumReviews,
		f.Reviews.Accuracy, f.Reviews.Value, f.Reviews.Cleanliness, f.Reviews.Communication,
		f.Rules.FlexiblePickup, f.Rules.FlexibleDropoff, f.Rules.TowingExperienceRequired,
	)

	query, args = ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert listing %s: %w", listing.URL, err)
	}
	return nil
}

// listingIDByURL reads back the identity of the row just inserted.
// Portable across drivers, unlike LastInsertId.
func (s *Store) listingIDByURL(ctx context.Context, tx *sqlx.Tx, url string) (int64, error) {
	sb := s.flavor.NewSelectBuilder()
	sb.Select("listing_id")
	sb.From(listingsTable)
	sb.Where(sb.Equal("url", url))

	query, args := sb.Build()
	var id int64
	if err := tx.GetContext(ctx, &id, query, args...); err != nil {
		return 0, fmt.Errorf("failed to read back listing %s: %w", url, err)
	}
	return id, nil
}

func (s *Store) insertDiscounts(ctx context.Context, tx *sqlx.Tx, listingID int64, discounts []models.Discount) error {
	if len(discounts) == 0 {
		return nil
	}
	ib := s.flavor.NewInsertBuilder()
	ib.InsertInto(pricingTable)
	ib.Cols("listing_id", "discount_type", "discount_percent", "discounted_price")
	for _, d := range discounts {
		ib.Values(listingID, d.Type, d.Percent, d.Price)
	}

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert discounts: %w", err)
	}
	return nil
}

func (s *Store) insertAmenityLinks(ctx context.Context, tx *sqlx.Tx, listingID int64, amenityIDs []int64) error {
	if len(amenityIDs) == 0 {
		return nil
	}
	ib := s.flavor.NewInsertBuilder()
	ib.InsertIgnoreInto(listingAmenitiesTable)
	ib.Cols("listing_id", "amenity_id")
	for _, amenityID := range amenityIDs {
		ib.Values(listingID, amenityID)
	}

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to link amenities: %w", err)
	}
	return nil
}

func (s *Store) insertAddons(ctx context.Context, tx *sqlx.Tx, listingID int64, addons []models.Addon) error {
	if len(addons) == 0 {
		return nil
	}
	ib := s.flavor.NewInsertBuilder()
	ib.InsertInto(addonsTable)
	ib.Cols("listing_id", "name", "price")
	for _, a := range addons {
		ib.Values(listingID, a.Name, a.Price)
	}

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert add-ons: %w", err)
	}
	return nil
}

func (s *Store) insertBeds(ctx context.Context, tx *sqlx.Tx, listingID int64, beds []models.Bed) error {
	if len(beds) == 0 {
		return nil
	}
	ib := s.flavor.NewInsertBuilder()
	ib.InsertInto(bedsTable)
	ib.Cols("listing_id", "bed_type", "bed_size", "quantity")
	for _, b := range beds {
		ib.Values(listingID, b.Type, b.Size, b.Quantity)
	}

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert beds: %w", err)
	}
	return nil
}
