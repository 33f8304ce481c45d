// Package analysis reduces per-day measurements into summary statistics.
package analysis

import (
	"math"

	"lipidscan/internal/collection"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// zScore95 is the normal-approximation critical value for a 95%
// confidence interval. Applied regardless of sample size; small days
// get optimistic intervals, a documented simplification.
const zScore95 = 1.96

// DayStatistics summarizes the measurements of one culture day.
type DayStatistics struct {
	Day           float64
	Count         int
	Mean          float64
	StdDev        float64
	StandardError float64
	ErrorMargin95 float64
	Min           float64
	Max           float64
	Median        float64
}

// Interval returns the 95% confidence interval [mean-margin, mean+margin].
func (s DayStatistics) Interval() (lo, hi float64) {
	return s.Mean - s.ErrorMargin95, s.Mean + s.ErrorMargin95
}

// Results holds per-day statistics in ascending day order.
type Results []DayStatistics

// Empty reports whether no day produced any measurements.
func (r Results) Empty() bool {
	return len(r) == 0
}

// Trend returns the change in mean between the last and first day.
// It reports ok=false when fewer than two days are present.
func (r Results) Trend() (change float64, ok bool) {
	if len(r) < 2 {
		return 0, false
	}
	return r[len(r)-1].Mean - r[0].Mean, true
}

// Aggregate computes per-day statistics from the collection. Days with
// no recorded values are skipped; an experiment with no values at all
// yields an empty result.
func Aggregate(c *collection.Collection) Results {
	var results Results
	for _, rec := range c.Records() {
		if len(rec.Percentages) == 0 {
			continue
		}
		results = append(results, summarize(rec.Day, rec.Percentages))
	}
	return results
}

func summarize(day float64, values []float64) DayStatistics {
	n := len(values)

	mean := stat.Mean(values, nil)

	// Sample standard deviation (n-1 denominator). A single-image day
	// reports zero variance rather than NaN.
	stdDev := 0.0
	if n > 1 {
		stdDev = stat.StdDev(values, nil)
	}
	stdErr := stdDev / math.Sqrt(float64(n))

	min, _ := stats.Min(values)
	max, _ := stats.Max(values)
	median, _ := stats.Median(values)

	return DayStatistics{
		Day:           day,
		Count:         n,
		Mean:          mean,
		StdDev:        stdDev,
		StandardError: stdErr,
		ErrorMargin95: zScore95 * stdErr,
		Min:           min,
		Max:           max,
		Median:        median,
	}
}
