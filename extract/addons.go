package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	addonSectionRegex = regexp.MustCompile(`(?s)Add-ons(.+?)RV rules`)
	addonItemRegex    = regexp.MustCompile(`([A-Za-z\s]+):\s*\$(\d+)`)
)

// extractAddons collects NAME: $PRICE pairs, but only from the slice of
// the body between the "Add-ons" marker and the "RV rules" marker. No
// marker means no add-ons, not an error.
func extractAddons(body string) []models.Addon {
	section := addonSectionRegex.FindStringSubmatch(body)
	if section == nil {
		return nil
	}

	var addons []models.Addon
	for _, m := range addonItemRegex.FindAllStringSubmatch(section[1], -1) {
		price, _ := strconv.ParseFloat(m[2], 64)
		addons = append(addons, models.Addon{
			Name:  strings.TrimSpace(m[1]),
			Price: price,
		})
	}
	return addons
}
