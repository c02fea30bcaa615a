package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testExtractor() *Extractor {
	return New(zap.NewNop().Sugar())
}

func TestExtractSpecs_Title(t *testing.T) {
	e := testExtractor()

	t.Run("multi-word make", func(t *testing.T) {
		specs := e.extractSpecs("Rent my 2021 Forest River Cherokee 274RK from $129/night", "")

		require.NotNil(t, specs.Year)
		require.NotNil(t, specs.Make)
		require.NotNil(t, specs.Model)
		assert.Equal(t, 2021, *specs.Year)
		assert.Equal(t, "Forest River", *specs.Make)
		assert.Equal(t, "Cherokee 274RK", *specs.Model)
	})

	t.Run("single-word make", func(t *testing.T) {
		specs := e.extractSpecs("Rent my 2019 Jayco Jay Flight from $95/night", "")

		require.NotNil(t, specs.Make)
		require.NotNil(t, specs.Model)
		assert.Equal(t, "Jayco", *specs.Make)
		assert.Equal(t, "Jay Flight", *specs.Model)
	})

	t.Run("unrecognized title is a soft miss", func(t *testing.T) {
		specs := e.extractSpecs("Cozy trailer for rent", "")

		assert.Nil(t, specs.Year)
		assert.Nil(t, specs.Make)
		assert.Nil(t, specs.Model)
	})
}

func TestExtractSpecs_Body(t *testing.T) {
	e := testExtractor()

	body := `Type of RV Travel TrailerAccommodations ... # of slide outs 2 ` +
		`Weight 4800 lbsHitch Weight 450 lbs ... Length(ft) 28 ft ... Hitch Size 2 5/16" ... Sleeps 6 people`
	specs := e.extractSpecs("", body)

	require.NotNil(t, specs.Type)
	assert.Equal(t, "Travel Trailer", *specs.Type)
	require.NotNil(t, specs.NumSlideOuts)
	assert.Equal(t, 2, *specs.NumSlideOuts)
	require.NotNil(t, specs.WeightLbs)
	assert.Equal(t, 4800, *specs.WeightLbs)
	require.NotNil(t, specs.HitchWeightLbs)
	assert.Equal(t, 450, *specs.HitchWeightLbs)
	require.NotNil(t, specs.LengthFt)
	assert.Equal(t, 28, *specs.LengthFt)
	require.NotNil(t, specs.HitchSize)
	assert.Equal(t, `2 5/16"`, *specs.HitchSize)
	require.NotNil(t, specs.Sleeps)
	assert.Equal(t, 6, *specs.Sleeps)
}

func TestExtractSpecs_RVTypeFallback(t *testing.T) {
	e := testExtractor()

	t.Run("vocabulary scan when structured field is missing", func(t *testing.T) {
		specs := e.extractSpecs("", "a spacious Fifth Wheel in great condition")

		require.NotNil(t, specs.Type)
		assert.Equal(t, "Fifth Wheel", *specs.Type)
	})

	t.Run("structured field wins over vocabulary", func(t *testing.T) {
		specs := e.extractSpecs("", "Type of RV CampervanWhat a ride, drives like a Class B")

		require.NotNil(t, specs.Type)
		assert.Equal(t, "Campervan", *specs.Type)
	})

	t.Run("no type anywhere", func(t *testing.T) {
		specs := e.extractSpecs("", "no vehicle words here")
		assert.Nil(t, specs.Type)
	})
}

func TestExtractSpecs_SleepsBounds(t *testing.T) {
	e := testExtractor()

	t.Run("out-of-range value is discarded", func(t *testing.T) {
		specs := e.extractSpecs("", "Sleeps 45")
		assert.Nil(t, specs.Sleeps)
	})

	t.Run("boundary values kept", func(t *testing.T) {
		specs := e.extractSpecs("", "Sleeps 20")
		require.NotNil(t, specs.Sleeps)
		assert.Equal(t, 20, *specs.Sleeps)
	})

	t.Run("digits after the count do not merge", func(t *testing.T) {
		// "Sleeps 628" renders when sleeps 6 abuts a 28 ft length.
		specs := e.extractSpecs("", "Sleeps 628 ft")
		assert.Nil(t, specs.Sleeps)
	})
}
