package extract

import (
	"regexp"
	"strconv"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	basePriceRegex = regexp.MustCompile(`from \$(\d+)/night`)
	depositRegex   = regexp.MustCompile(`Security Deposit\$(\d+)`)
)

// Each discount tier has its own pattern capturing the discounted
// nightly price and the percent off. Any subset may be present.
var discountPatterns = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`Midweek\$(\d+)/Night(\d+)% off`), "midweek"},
	{regexp.MustCompile(`Weekly\$(\d+)/Night(\d+)% off`), "weekly"},
	{regexp.MustCompile(`Monthly\$(\d+)/Night(\d+)% off`), "monthly"},
}

// extractPricing recovers the base nightly price from the title, the
// security deposit and the discount tiers from the body.
func extractPricing(title, body string) models.PricingInfo {
	pricing := models.PricingInfo{
		BasePrice:       firstFloat(title, basePriceRegex),
		SecurityDeposit: firstFloat(body, depositRegex),
	}

	for _, p := range discountPatterns {
		m := p.re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		price, _ := strconv.ParseFloat(m[1], 64)
		percent, _ := strconv.Atoi(m[2])
		pricing.Discounts = append(pricing.Discounts, models.Discount{
			Type:    p.kind,
			Percent: percent,
			Price:   price,
		})
	}

	return pricing
}
