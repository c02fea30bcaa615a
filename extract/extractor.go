// Package extract recovers structured listing attributes from the raw
// title and body text of a scraped record. Each field group has its own
// set of patterns; every extractor fails soft, returning nil on a miss.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

// Extractor derives a full field bag from one record's text. It holds no
// per-record state; the same Extractor is reused for the whole batch.
type Extractor struct {
	logger *zap.SugaredLogger
}

// New creates an Extractor.
func New(logger *zap.SugaredLogger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract runs every field-group extractor over the record's title and
// body. Extractors are independent: no group reads another's result and
// none of them can fail the record.
func (e *Extractor) Extract(title, body string) *models.ListingFields {
	return &models.ListingFields{
		Host:      extractHost(body),
		Specs:     e.extractSpecs(title, body),
		Location:  extractLocation(body),
		Pricing:   extractPricing(title, body),
		Reviews:   extractReviews(body),
		Delivery:  extractDelivery(body),
		Rules:     extractRules(body),
		Amenities: extractAmenities(body),
		Addons:    extractAddons(body),
		Beds:      extractBeds(body),
	}
}

// firstString applies candidate patterns in priority order and returns
// the trimmed first capture group of the first one that matches.
func firstString(text string, res ...*regexp.Regexp) *string {
	for _, re := range res {
		if m := re.FindStringSubmatch(text); m != nil {
			s := strings.TrimSpace(m[1])
			return &s
		}
	}
	return nil
}

// firstInt is firstString for integer captures.
func firstInt(text string, res ...*regexp.Regexp) *int {
	for _, re := range res {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &n
	}
	return nil
}

// firstFloat is firstString for decimal captures.
func firstFloat(text string, res ...*regexp.Regexp) *float64 {
	for _, re := range res {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		return &f
	}
	return nil
}
