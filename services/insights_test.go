package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInsightService_Generate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	pipeline := NewPipeline(store, zap.NewNop().Sugar(), 50)
	_, err := pipeline.Run(ctx, &sliceSource{records: testRecords()})
	require.NoError(t, err)

	report, err := NewInsightService(store, zap.NewNop().Sugar()).Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalListings)
	assert.Equal(t, 1, report.TotalHosts)
	assert.Equal(t, 2, report.TotalAmenities)

	require.Len(t, report.ByRVType, 1)
	assert.Equal(t, "Travel Trailer", report.ByRVType[0].RVType)
	assert.Equal(t, 2, report.ByRVType[0].Count)
	assert.InDelta(t, 112.0, report.ByRVType[0].AvgPrice, 0.01) // (129+95)/2

	require.Len(t, report.TopCities, 1)
	assert.Equal(t, "Calgary", report.TopCities[0].City)
	assert.Equal(t, 2, report.TopCities[0].Count)

	require.NotNil(t, report.Prices.Min)
	require.NotNil(t, report.Prices.Max)
	assert.Equal(t, 95.0, *report.Prices.Min)
	assert.Equal(t, 129.0, *report.Prices.Max)

	require.Len(t, report.TopAmenities, 2)
	for _, st := range report.TopAmenities {
		assert.Equal(t, 2, st.Count)
		assert.InDelta(t, 66.7, st.Share, 0.1)
	}

	assert.Zero(t, report.DeliveryShare)
}

func TestInsightService_EmptyDataset(t *testing.T) {
	store := newTestStore(t)

	report, err := NewInsightService(store, zap.NewNop().Sugar()).Generate(context.Background())
	require.NoError(t, err)

	assert.Zero(t, report.TotalListings)
	assert.Empty(t, report.ByRVType)
	assert.Nil(t, report.Prices.Min)
	assert.Nil(t, report.Prices.Max)
}
