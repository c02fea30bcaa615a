package extract

import (
	"regexp"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	deliveryKmRegex    = regexp.MustCompile(`delivery up to (\d+) km`)
	deliveryPriceRegex = regexp.MustCompile(`Delivery\$(\d+\.?\d*) per km`)
)

const deliveryPhrase = "No truck no problem"

// extractDelivery detects delivery from either the marketing phrase or
// the generic term, then refines distance and per-km price. Without the
// initial detection both refinements stay absent.
func extractDelivery(body string) models.Delivery {
	var delivery models.Delivery

	if !strings.Contains(body, deliveryPhrase) && !strings.Contains(strings.ToLower(body), "delivery") {
		return delivery
	}

	delivery.Available = true
	delivery.MaxKm = firstInt(body, deliveryKmRegex)
	delivery.PricePerKm = firstFloat(body, deliveryPriceRegex)

	return delivery
}
