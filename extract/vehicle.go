package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	titleRegex     = regexp.MustCompile(`Rent my (\d{4}) ([A-Za-z0-9\-\s]+?) from`)
	rvTypeRegex    = regexp.MustCompile(`Type of RV\s*([A-Za-z\s]+?)(?:Accommodations|What)`)
	slideOutsRegex = regexp.MustCompile(`# of slide outs\s*(\d+)`)
	weightRegex    = regexp.MustCompile(`Weight\s*(\d+)\s*lbs`)
	hitchWtRegex   = regexp.MustCompile(`Hitch Weight\s*(\d+)\s*lbs`)
	lengthRegex    = regexp.MustCompile(`Length\(ft\)\s*(\d+)\s*ft`)
	hitchSizeRegex = regexp.MustCompile(`Hitch Size\s*([0-9\s/"]+")`)
	// Require a non-digit after the capture so "Sleeps 6" doesn't merge
	// with an adjacent number like the length that often follows it.
	sleepsRegex = regexp.MustCompile(`Sleeps\s*(\d{1,2})(?:\s|$|[^0-9])`)
)

// rvTypeVocabulary is the closed set of RV type names used when the
// structured "Type of RV" field is missing. First hit anywhere in the
// body wins, in this order.
var rvTypeVocabulary = []string{
	"Travel Trailer", "Class A", "Class B", "Class C", "Fifth Wheel",
	"Toy Hauler", "Campervan", "Tent Trailer", "Micro Trailer",
	"Hybrid", "Truck Camper", "RV Cottage",
}

// multiWordMakes lists the manufacturers whose names span more than one
// word. A plain first-word split would cut "Forest River Cherokee 274RK"
// into make "Forest", so known multi-word makes are tried first.
var multiWordMakes = []string{
	"Forest River", "Grand Design", "Gulf Stream", "Prime Time",
	"Highland Ridge",
}

const (
	minSleeps = 1
	maxSleeps = 20
)

// extractSpecs recovers the vehicle specification group: year, make and
// model from the title template, the RV type with its vocabulary
// fallback, and the labeled numeric specs from the body.
func (e *Extractor) extractSpecs(title, body string) models.RVSpecs {
	var specs models.RVSpecs

	if m := titleRegex.FindStringSubmatch(title); m != nil {
		year, _ := strconv.Atoi(m[1])
		specs.Year = &year
		specs.Make, specs.Model = splitMakeModel(strings.TrimSpace(m[2]))
	}

	specs.Type = extractRVType(body)

	specs.NumSlideOuts = firstInt(body, slideOutsRegex)
	specs.WeightLbs = firstInt(body, weightRegex)
	specs.HitchWeightLbs = firstInt(body, hitchWtRegex)
	specs.LengthFt = firstInt(body, lengthRegex)
	specs.HitchSize = firstString(body, hitchSizeRegex)

	if n := firstInt(body, sleepsRegex); n != nil {
		if *n >= minSleeps && *n <= maxSleeps {
			specs.Sleeps = n
		} else {
			e.logger.Warnw("discarding out-of-range sleeps value", "sleeps", *n)
		}
	}

	return specs
}

// splitMakeModel divides the "MAKE MODEL" remainder of the title. Known
// multi-word makes are matched as a prefix; otherwise the first word is
// the make and everything after it the model.
func splitMakeModel(s string) (*string, *string) {
	if s == "" {
		return nil, nil
	}

	for _, makeName := range multiWordMakes {
		if rest, ok := strings.CutPrefix(s, makeName+" "); ok {
			m := makeName
			model := strings.TrimSpace(rest)
			if model == "" {
				return &m, nil
			}
			return &m, &model
		}
	}

	makeName, model, found := strings.Cut(s, " ")
	if !found {
		return &makeName, nil
	}
	model = strings.TrimSpace(model)
	return &makeName, &model
}

// extractRVType tries the structured field first, then falls back to
// scanning the body for the first vocabulary entry present.
func extractRVType(body string) *string {
	if t := firstString(body, rvTypeRegex); t != nil {
		return t
	}
	for _, rvType := range rvTypeVocabulary {
		if strings.Contains(body, rvType) {
			t := rvType
			return &t
		}
	}
	return nil
}
