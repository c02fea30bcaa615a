package extract

import (
	"regexp"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// The city sits between the "NN ft" length marker and a two-letter
// province code in the scraped text, e.g. "24 ftAirdrie, AB".
var locationRegex = regexp.MustCompile(`ft([A-Za-z\-\s]+), ([A-Z]{2})`)

// extractLocation recovers the city and province pair. All or nothing:
// a partial match never populates one side alone.
func extractLocation(body string) models.Location {
	m := locationRegex.FindStringSubmatch(body)
	if m == nil {
		return models.Location{}
	}
	city := strings.TrimSpace(m[1])
	province := m[2]
	return models.Location{City: &city, Province: &province}
}
