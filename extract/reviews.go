package extract

import (
	"regexp"
	"strconv"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

var (
	overallRegex       = regexp.MustCompile(`(\d+\.\d+)\((\d+) reviews\)`)
	accuracyRegex      = regexp.MustCompile(`Accuracy(\d+\.\d+)`)
	valueRegex         = regexp.MustCompile(`Value(\d+\.\d+)`)
	cleanlinessRegex   = regexp.MustCompile(`Cleanliness(\d+\.\d+)`)
	communicationRegex = regexp.MustCompile(`Communication(\d+\.\d+)`)
)

// extractReviews recovers the combined "X.Y(N reviews)" rating plus the
// four independently labeled sub-ratings.
func extractReviews(body string) models.Reviews {
	var reviews models.Reviews

	if m := overallRegex.FindStringSubmatch(body); m != nil {
		rating, _ := strconv.ParseFloat(m[1], 64)
		count, _ := strconv.Atoi(m[2])
		reviews.OverallRating = &rating
		reviews.NumReviews = &count
	}

	reviews.Accuracy = firstFloat(body, accuracyRegex)
	reviews.Value = firstFloat(body, valueRegex)
	reviews.Cleanliness = firstFloat(body, cleanlinessRegex)
	reviews.Communication = firstFloat(body, communicationRegex)

	return reviews
}
