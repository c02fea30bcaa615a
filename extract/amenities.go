package extract

import "strings"

// amenityVocabulary is the closed set of amenity names the marketplace
// renders. Membership is a plain substring check; negation is handled
// only for pets, by the rules extractor.
var amenityVocabulary = []string{
	"Air conditioner", "Heater", "Awning", "Solar", "Inverter",
	"Inside shower", "Outside shower", "Toilet", "TV & DVD",
	"Refrigerator", "Freezer", "Stove range", "Microwave", "Oven",
	"Kitchen sink", "Dining table", "Linens provided", "Camping chairs",
	"Pet friendly", "Family friendly", "Backup camera", "Leveling jacks",
	"Tow hitch", "On board generator", "CD player", "Radio", "Aux input",
	"USB input", "Extra storage", "Full-Winter rental available",
}

// extractAmenities returns the vocabulary terms present in the body, in
// vocabulary order.
func extractAmenities(body string) []string {
	var amenities []string
	for _, amenity := range amenityVocabulary {
		if strings.Contains(body, amenity) {
			amenities = append(amenities, amenity)
		}
	}
	return amenities
}
