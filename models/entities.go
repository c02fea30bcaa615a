package models

// Host is a row in the hosts table. Hosts are identified by the natural
// key (name, joined_year); two real hosts sharing both collapse into one
// row, a known limitation of the source data.
type Host struct {
	HostID       int64  `db:"host_id"`
	Name         string `db:"name"`
	JoinedYear   int    `db:"joined_year"`
	ResponseRate *int   `db:"response_rate"`
	IsSuperhost  bool   `db:"is_superhost"`
}

// Amenity is a row in the global amenity vocabulary table.
type Amenity struct {
	AmenityID int64  `db:"amenity_id"`
	Name      string `db:"name"`
}

// ListingRow is a row in the listings table, one per source URL.
type ListingRow struct {
	ListingID                int64    `db:"listing_id"`
	URL                      string   `db:"url"`
	Title                    string   `db:"title"`
	HostID                   *int64   `db:"host_id"`
	LocationCity             *string  `db:"location_city"`
	LocationProvince         *string  `db:"location_province"`
	RVType                   *string  `db:"rv_type"`
	RVYear                   *int     `db:"rv_year"`
	RVMake                   *string  `db:"rv_make"`
	RVModel                  *string  `db:"rv_model"`
	LengthFt                 *int     `db:"length_ft"`
	Sleeps                   *int     `db:"sleeps"`
	NumSlideOuts             *int     `db:"num_slide_outs"`
	WeightLbs                *int     `db:"weight_lbs"`
	HitchSize                *string  `db:"hitch_size"`
	HitchWeightLbs           *int     `db:"hitch_weight_lbs"`
	BasePrice                *float64 `db:"base_price"`
	SecurityDeposit          *float64 `db:"security_deposit"`
	PetFriendly              bool     `db:"pet_friendly"`
	DeliveryAvailable        bool     `db:"delivery_available"`
	DeliveryMaxKm            *int     `db:"delivery_max_km"`
	DeliveryPricePerKm       *float64 `db:"delivery_price_per_km"`
	OverallRating            *float64 `db:"overall_rating"`
	NumReviews               *int     `db:"num_reviews"`
	AccuracyRating           *float64 `db:"accuracy_rating"`
	ValueRating              *float64 `db:"value_rating"`
	CleanlinessRating        *float64 `db:"cleanliness_rating"`
	CommunicationRating      *float64 `db:"communication_rating"`
	FlexiblePickup           bool     `db:"flexible_pickup"`
	FlexibleDropoff          bool     `db:"flexible_dropoff"`
	TowingExperienceRequired bool     `db:"towing_experience_required"`
}

// ResolvedListing is the output of the normalizer: a field bag whose
// shared identities (host, amenities) have been resolved against the
// store, ready for the transactional writer.
type ResolvedListing struct {
	URL        string
	Title      string
	HostID     *int64
	Fields     *ListingFields
	AmenityIDs []int64
}
