package models

// ListingFields is the field bag produced by the extraction engine for a
// single record. Pointer fields are nil when no pattern matched (a soft
// miss); boolean fields default to false.
type ListingFields struct {
	Host      HostInfo
	Specs     RVSpecs
	Location  Location
	Pricing   PricingInfo
	Reviews   Reviews
	Delivery  Delivery
	Rules     Rules
	Amenities []string
	Addons    []Addon
	Beds      []Bed
}

// HostInfo holds the host attributes recovered from the body text.
type HostInfo struct {
	Name         *string
	JoinedYear   *int
	ResponseRate *int
	IsSuperhost  bool
}

// RVSpecs holds the vehicle specification attributes.
type RVSpecs struct {
	Type           *string
	Year           *int
	Make           *string
	Model          *string
	LengthFt       *int
	Sleeps         *int
	NumSlideOuts   *int
	WeightLbs      *int
	HitchSize      *string
	HitchWeightLbs *int
}

// Location is all-or-nothing: either both city and province matched or
// neither did.
type Location struct {
	City     *string
	Province *string
}

// PricingInfo holds the nightly base price, deposit and any discount tiers.
type PricingInfo struct {
	BasePrice       *float64
	SecurityDeposit *float64
	Discounts       []Discount
}

// Discount is one rate-reduction tier (midweek, weekly or monthly).
type Discount struct {
	Type    string
	Percent int
	Price   float64
}

// Reviews holds the overall rating plus the four sub-ratings.
type Reviews struct {
	OverallRating *float64
	NumReviews    *int
	Accuracy      *float64
	Value         *float64
	Cleanliness   *float64
	Communication *float64
}

// Delivery reports whether the host delivers, and if so the optional
// distance and per-km price refinements.
type Delivery struct {
	Available  bool
	MaxKm      *int
	PricePerKm *float64
}

// Rules holds the four boolean rule flags.
type Rules struct {
	FlexiblePickup           bool
	FlexibleDropoff          bool
	TowingExperienceRequired bool
	PetsAllowed              bool
}

// Addon is a named, priced optional extra scoped to one listing.
type Addon struct {
	Name  string
	Price float64
}

// Bed is one sleeping arrangement entry.
type Bed struct {
	Quantity int
	Type     string
	Size     string
}
