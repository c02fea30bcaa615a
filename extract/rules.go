package extract

import (
	"strings"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// extractRules recovers the four rule flags. Pets are allowed only when
// the "Pet friendly" marker appears without a "No pets" marker elsewhere
// in the body.
func extractRules(body string) models.Rules {
	return models.Rules{
		FlexiblePickup:           strings.Contains(body, "Flexible pickup time"),
		FlexibleDropoff:          strings.Contains(body, "Flexible drop-off time"),
		TowingExperienceRequired: strings.Contains(body, "Towing experience required"),
		PetsAllowed:              strings.Contains(body, "Pet friendly") && !strings.Contains(body, "No pets"),
	}
}
