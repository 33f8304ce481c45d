// Package collection holds the day-indexed experiment data model.
//
// Each registered day tracks three parallel sequences: the source image
// paths, the measured percentages, and the processed-image records.
// Index i of every sequence refers to the same source image, including
// images that failed to load (recorded as zero so positions stay
// aligned). That alignment is the structural invariant every
// downstream consumer relies on.
package collection

import (
	"fmt"
	"sort"
)

// Experiment identifies a single analysis run. Immutable once collected.
type Experiment struct {
	Name    string
	Culture string
}

// ProcessedImage records the outputs for one successfully processed image.
type ProcessedImage struct {
	OriginalPath   string
	FusedPath      string
	ComparisonPath string
	Percentage     float64
}

// DayRecord holds every measurement for one culture day.
type DayRecord struct {
	Day         float64
	Images      []string
	Percentages []float64
	Records     []ProcessedImage
}

// Collection owns the per-day records for an experiment run.
type Collection struct {
	Experiment Experiment
	days       map[float64]*DayRecord
}

// New creates an empty collection for the given experiment.
func New(exp Experiment) *Collection {
	return &Collection{
		Experiment: exp,
		days:       make(map[float64]*DayRecord),
	}
}

// RegisterDay adds a new day to the collection. It returns false if the
// day is already registered; days are never removed once added.
func (c *Collection) RegisterDay(day float64) bool {
	if _, exists := c.days[day]; exists {
		return false
	}
	c.days[day] = &DayRecord{Day: day}
	return true
}

// AddImages appends source image paths to a registered day, preserving
// the supplied order.
func (c *Collection) AddImages(day float64, paths []string) error {
	rec, ok := c.days[day]
	if !ok {
		return fmt.Errorf("day %v is not registered", day)
	}
	rec.Images = append(rec.Images, paths...)
	return nil
}

// RecordResult stores the measurement for the image at 1-based index.
// Results must be recorded in index order 1..N matching AddImages order.
func (c *Collection) RecordResult(day float64, index int, img ProcessedImage) error {
	rec, ok := c.days[day]
	if !ok {
		return fmt.Errorf("day %v is not registered", day)
	}
	if index != len(rec.Percentages)+1 {
		return fmt.Errorf("day %v: result index %d out of order (want %d)",
			day, index, len(rec.Percentages)+1)
	}
	if index > len(rec.Images) {
		return fmt.Errorf("day %v: result index %d exceeds %d images",
			day, index, len(rec.Images))
	}
	rec.Percentages = append(rec.Percentages, img.Percentage)
	rec.Records = append(rec.Records, img)
	return nil
}

// RecordFailure consumes an index for an image that could not be loaded.
// A zero percentage and empty artifact paths are recorded so the
// positional correspondence with the source list is preserved.
func (c *Collection) RecordFailure(day float64, index int, originalPath string) error {
	return c.RecordResult(day, index, ProcessedImage{
		OriginalPath: originalPath,
		Percentage:   0,
	})
}

// Day returns the record for a registered day, or nil.
func (c *Collection) Day(day float64) *DayRecord {
	return c.days[day]
}

// Days returns the registered day identifiers in ascending numeric
// order, regardless of registration order.
func (c *Collection) Days() []float64 {
	days := make([]float64, 0, len(c.days))
	for d := range c.days {
		days = append(days, d)
	}
	sort.Float64s(days)
	return days
}

// Records returns the day records in ascending day order.
func (c *Collection) Records() []*DayRecord {
	days := c.Days()
	recs := make([]*DayRecord, 0, len(days))
	for _, d := range days {
		recs = append(recs, c.days[d])
	}
	return recs
}

// TotalImages counts the source images registered across all days.
func (c *Collection) TotalImages() int {
	total := 0
	for _, rec := range c.days {
		total += len(rec.Images)
	}
	return total
}
