package models

// RunStats summarizes one batch run of the pipeline.
type RunStats struct {
	RunID         string
	Processed     int
	Failed        int
	DuplicateURLs int
}

// RVTypeStat is one row of the listings-per-RV-type aggregate.
type RVTypeStat struct {
	RVType   string  `db:"rv_type"`
	Count    int     `db:"count"`
	AvgPrice float64 `db:"avg_price"`
}

// CityStat is one row of the listings-per-city aggregate.
type CityStat struct {
	City  string `db:"location_city"`
	Count int    `db:"count"`
}

// AmenityStat is one row of the amenity frequency aggregate. Share is
// the percentage of all listings carrying the amenity.
type AmenityStat struct {
	Name  string  `db:"name"`
	Count int     `db:"count"`
	Share float64 `db:"-"`
}

// PriceStats is the global base-price range over all listings that have one.
type PriceStats struct {
	Min *float64 `db:"min_price"`
	Max *float64 `db:"max_price"`
	Avg *float64 `db:"avg_price"`
}

// InsightReport holds the post-run aggregates read back from the store.
// This is the seam consumed by the downstream analytics scripts.
type InsightReport struct {
	TotalListings  int
	TotalHosts     int
	TotalAmenities int
	ByRVType       []RVTypeStat
	TopCities      []CityStat
	TopAmenities   []AmenityStat
	Prices         PriceStats
	DeliveryShare  float64
}
