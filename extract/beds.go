package extract

import (
	"regexp"
	"strconv"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// Bed entries render as e.g. "1 bedQueen" or "2 bunk bedTwin": quantity,
// bed type, then the size fused straight onto the type word.
var bedPatterns = []struct {
	re   *regexp.Regexp
	kind string
}{
	{regexp.MustCompile(`(\d+) bed([A-Za-z]+)`), "bed"},
	{regexp.MustCompile(`(\d+) dinette bed([A-Za-z]+)`), "dinette bed"},
	{regexp.MustCompile(`(\d+) pullout sofa([A-Za-z]+)`), "pullout sofa"},
	{regexp.MustCompile(`(\d+) bunk bed([A-Za-z]+)`), "bunk bed"},
}

// extractBeds scans the whole body with each bed-type pattern and
// accumulates every match.
func extractBeds(body string) []models.Bed {
	var beds []models.Bed
	for _, p := range bedPatterns {
		for _, m := range p.re.FindAllStringSubmatch(body, -1) {
			qty, _ := strconv.Atoi(m[1])
			beds = append(beds, models.Bed{
				Quantity: qty,
				Type:     p.kind,
				Size:     m[2],
			})
		}
	}
	return beds
}
