package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisformoso-ca/rvezy-calgary/models"
)

func TestExtractLocation(t *testing.T) {
	t.Run("city and province after the length marker", func(t *testing.T) {
		loc := extractLocation("Length(ft) 24 ftAirdrie, AB more text")

		require.NotNil(t, loc.City)
		require.NotNil(t, loc.Province)
		assert.Equal(t, "Airdrie", *loc.City)
		assert.Equal(t, "AB", *loc.Province)
	})

	t.Run("all or nothing", func(t *testing.T) {
		loc := extractLocation("somewhere in Alberta")

		assert.Nil(t, loc.City)
		assert.Nil(t, loc.Province)
	})
}

func TestExtractAmenities(t *testing.T) {
	body := "well equipped with Air conditioner, Microwave and Outside shower"
	amenities := extractAmenities(body)

	assert.Equal(t, []string{"Air conditioner", "Outside shower", "Microwave"}, amenities)
}

func TestExtractReviews(t *testing.T) {
	t.Run("combined rating and count", func(t *testing.T) {
		reviews := extractReviews("4.9(23 reviews)Accuracy4.8Value4.9Cleanliness5.0Communication4.7")

		require.NotNil(t, reviews.OverallRating)
		require.NotNil(t, reviews.NumReviews)
		assert.Equal(t, 4.9, *reviews.OverallRating)
		assert.Equal(t, 23, *reviews.NumReviews)
		require.NotNil(t, reviews.Accuracy)
		assert.Equal(t, 4.8, *reviews.Accuracy)
		require.NotNil(t, reviews.Communication)
		assert.Equal(t, 4.7, *reviews.Communication)
	})

	t.Run("unreviewed listing", func(t *testing.T) {
		reviews := extractReviews("brand new listing")

		assert.Nil(t, reviews.OverallRating)
		assert.Nil(t, reviews.NumReviews)
		assert.Nil(t, reviews.Accuracy)
	})
}

func TestExtractDelivery(t *testing.T) {
	t.Run("phrase with refinements", func(t *testing.T) {
		delivery := extractDelivery("No truck no problem! delivery up to 100 km, Delivery$2.50 per km")

		assert.True(t, delivery.Available)
		require.NotNil(t, delivery.MaxKm)
		assert.Equal(t, 100, *delivery.MaxKm)
		require.NotNil(t, delivery.PricePerKm)
		assert.Equal(t, 2.5, *delivery.PricePerKm)
	})

	t.Run("generic term is case-insensitive", func(t *testing.T) {
		delivery := extractDelivery("Delivery available on request")

		assert.True(t, delivery.Available)
		assert.Nil(t, delivery.MaxKm)
		assert.Nil(t, delivery.PricePerKm)
	})

	t.Run("refinements stay absent without detection", func(t *testing.T) {
		delivery := extractDelivery("pickup only, up to 100 km away is fine")

		assert.False(t, delivery.Available)
		assert.Nil(t, delivery.MaxKm)
		assert.Nil(t, delivery.PricePerKm)
	})
}

func TestExtractRules(t *testing.T) {
	t.Run("all flags", func(t *testing.T) {
		body := "Flexible pickup timeFlexible drop-off timeTowing experience requiredPet friendly"
		rules := extractRules(body)

		assert.True(t, rules.FlexiblePickup)
		assert.True(t, rules.FlexibleDropoff)
		assert.True(t, rules.TowingExperienceRequired)
		assert.True(t, rules.PetsAllowed)
	})

	t.Run("no pets marker negates pet friendly", func(t *testing.T) {
		rules := extractRules("Pet friendly amenities listed, but No pets inside")

		assert.False(t, rules.PetsAllowed)
	})
}

func TestExtractAddons(t *testing.T) {
	t.Run("items between markers", func(t *testing.T) {
		body := "intro text Add-onsPropane Refill: $25 Cleaning: $75 RV rules apply"
		addons := extractAddons(body)

		require.Len(t, addons, 2)
		assert.Equal(t, models.Addon{Name: "Propane Refill", Price: 25.0}, addons[0])
		assert.Equal(t, models.Addon{Name: "Cleaning", Price: 75.0}, addons[1])
	})

	t.Run("no marker means no add-ons", func(t *testing.T) {
		addons := extractAddons("Propane Refill: $25 mentioned outside any section")

		assert.Empty(t, addons)
	})

	t.Run("pairs outside the section are ignored", func(t *testing.T) {
		body := "Generator: $30 Add-onsFirewood: $15 RV rules"
		addons := extractAddons(body)

		require.Len(t, addons, 1)
		assert.Equal(t, "Firewood", addons[0].Name)
	})
}

func TestExtractBeds(t *testing.T) {
	t.Run("mixed bed types", func(t *testing.T) {
		body := "sleeping: 1 bedQueen2 bunk bedTwin1 dinette bedDouble"
		beds := extractBeds(body)

		assert.Contains(t, beds, models.Bed{Quantity: 1, Type: "bed", Size: "Queen"})
		assert.Contains(t, beds, models.Bed{Quantity: 2, Type: "bunk bed", Size: "Twin"})
		assert.Contains(t, beds, models.Bed{Quantity: 1, Type: "dinette bed", Size: "Double"})
	})

	t.Run("no bed entries", func(t *testing.T) {
		assert.Empty(t, extractBeds("nothing about sleeping arrangements"))
	})
}
