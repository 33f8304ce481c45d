package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDayDuplicateGuard(t *testing.T) {
	c := New(Experiment{Name: "Test", Culture: "HepG2"})

	assert.True(t, c.RegisterDay(0))
	assert.True(t, c.RegisterDay(2.5))
	assert.False(t, c.RegisterDay(0), "re-registering an existing day must be rejected")
	assert.Len(t, c.Days(), 2)
}

func TestDaysAscendingRegardlessOfRegistrationOrder(t *testing.T) {
	c := New(Experiment{Name: "Test"})

	for _, d := range []float64{3, 0.5, 7, 1} {
		require.True(t, c.RegisterDay(d))
	}
	assert.Equal(t, []float64{0.5, 1, 3, 7}, c.Days())

	recs := c.Records()
	require.Len(t, recs, 4)
	assert.Equal(t, 0.5, recs[0].Day)
	assert.Equal(t, 7.0, recs[3].Day)
}

func TestRecordResultIndexOrder(t *testing.T) {
	c := New(Experiment{Name: "Test"})
	require.True(t, c.RegisterDay(1))
	require.NoError(t, c.AddImages(1, []string{"a.png", "b.png"}))

	// Index 2 before index 1 is out of order.
	err := c.RecordResult(1, 2, ProcessedImage{Percentage: 5})
	assert.Error(t, err)

	require.NoError(t, c.RecordResult(1, 1, ProcessedImage{OriginalPath: "a.png", Percentage: 5}))
	require.NoError(t, c.RecordResult(1, 2, ProcessedImage{OriginalPath: "b.png", Percentage: 10}))

	// A third result exceeds the registered images.
	err = c.RecordResult(1, 3, ProcessedImage{Percentage: 1})
	assert.Error(t, err)
}

func TestRecordUnregisteredDay(t *testing.T) {
	c := New(Experiment{Name: "Test"})

	assert.Error(t, c.AddImages(9, []string{"a.png"}))
	assert.Error(t, c.RecordResult(9, 1, ProcessedImage{}))
	assert.Nil(t, c.Day(9))
}

func TestFailureKeepsIndexAlignment(t *testing.T) {
	c := New(Experiment{Name: "Test"})
	require.True(t, c.RegisterDay(0))
	require.NoError(t, c.AddImages(0, []string{"a.png", "broken.png", "c.png"}))

	require.NoError(t, c.RecordResult(0, 1, ProcessedImage{OriginalPath: "a.png", FusedPath: "f1", Percentage: 12.5}))
	require.NoError(t, c.RecordFailure(0, 2, "broken.png"))
	require.NoError(t, c.RecordResult(0, 3, ProcessedImage{OriginalPath: "c.png", FusedPath: "f3", Percentage: 20}))

	rec := c.Day(0)
	require.NotNil(t, rec)
	assert.Len(t, rec.Images, 3)
	assert.Len(t, rec.Percentages, 3)
	assert.Len(t, rec.Records, 3)

	// The failed image holds its position with a zero value and no paths.
	assert.Equal(t, []float64{12.5, 0, 20}, rec.Percentages)
	assert.Equal(t, "broken.png", rec.Records[1].OriginalPath)
	assert.Empty(t, rec.Records[1].FusedPath)
	assert.Empty(t, rec.Records[1].ComparisonPath)
}

func TestTotalImages(t *testing.T) {
	c := New(Experiment{Name: "Test"})
	require.True(t, c.RegisterDay(0))
	require.True(t, c.RegisterDay(1))
	require.NoError(t, c.AddImages(0, []string{"a.png", "b.png"}))
	require.NoError(t, c.AddImages(1, []string{"c.png"}))

	assert.Equal(t, 3, c.TotalImages())
}
