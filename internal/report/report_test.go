package report

import (
	"os"
	"path/filepath"
	"testing"

	"lipidscan/internal/analysis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteTextReport(t *testing.T) {
	c := sampleCollection(t)
	results := analysis.Aggregate(c)

	path := filepath.Join(t.TempDir(), SummaryTextName)
	require.NoError(t, WriteText(c, results, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "CELL CULTURE ANALYSIS SUMMARY")
	assert.Contains(t, text, "Experiment: Test")
	assert.Contains(t, text, "Culture Type: HepG2")
	assert.Contains(t, text, "Days Analyzed: 2")
	assert.Contains(t, text, "Total Images: 3")

	// Day stanzas use 2-decimal display rounding.
	assert.Contains(t, text, "Day 0:")
	assert.Contains(t, text, "Average: 20.00%")
	assert.Contains(t, text, "Minimum: 15.00%")
	assert.Contains(t, text, "Maximum: 25.00%")
	assert.Contains(t, text, "Error Margin (95%): ±9.80%")
	assert.Contains(t, text, "Interval: [10.20%, 29.80%]")

	assert.Contains(t, text, "Day 1:")
	assert.Contains(t, text, "Average: 40.00%")
	assert.Contains(t, text, "Error Margin (95%): ±0.00%")

	// Manifest of generated artifacts.
	assert.Contains(t, text, "Graph_Evolution.png")
	assert.Contains(t, text, "Detailed_Data.csv")
	assert.Contains(t, text, "Day_0/")
	assert.Contains(t, text, "Day_1/")
	assert.Contains(t, text, "END OF REPORT")
}

func TestWriteWorkbook(t *testing.T) {
	c := sampleCollection(t)
	results := analysis.Aggregate(c)

	path := filepath.Join(t.TempDir(), WorkbookName)
	require.NoError(t, WriteWorkbook(c, results, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	detailed, err := f.GetRows("Detailed Data")
	require.NoError(t, err)
	require.Len(t, detailed, 4, "header plus one row per image")
	assert.Equal(t, "Experiment", detailed[0][0])
	assert.Equal(t, "a.png", detailed[1][4])

	summary, err := f.GetRows("Summary By Day")
	require.NoError(t, err)
	require.Len(t, summary, 3, "header plus one row per day")
	assert.Equal(t, "Day", summary[0][0])
	assert.Equal(t, "40", summary[2][2])
}

func TestWriteWorkbookEmptyIsNoop(t *testing.T) {
	c := sampleCollection(t)
	path := filepath.Join(t.TempDir(), WorkbookName)
	require.NoError(t, WriteWorkbook(c, nil, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
