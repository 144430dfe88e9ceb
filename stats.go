package dieroll

import (
	"errors"
	"math"
	"slices"
)

// ErrNoRolls is returned by Summarize for an empty sample.
var ErrNoRolls = errors.New("dieroll: no rolls to summarize")

// Summary describes a sample of die rolls.
type Summary struct {
	Sides    uint64
	Rolls    uint64
	Counts   []uint64 // Counts[i] is the number of rolls that showed face i+1
	Mean     float64
	Variance float64
	StdDev   float64
	Median   float64
	ChiSq    float64 // Pearson statistic against a fair die
	PValue   float64 // P(χ² ≥ ChiSq) with Sides-1 degrees of freedom
}

// Tally counts how often each face of a die with the given number of sides occurs in rolls.
// Values outside [1, sides] are ignored.
func Tally(sides uint64, rolls []uint64) []uint64 {
	counts := make([]uint64, sides)
	for _, r := range rolls {
		if r >= 1 && r <= sides {
			counts[r-1]++
		}
	}
	return counts
}

// Summarize computes descriptive statistics and a chi-square goodness-of-fit
// test of rolls against a fair die with the given number of sides.
// Values outside [1, sides] are ignored.
func Summarize(sides uint64, rolls []uint64) (Summary, error) {
	if sides == 0 {
		return Summary{}, ErrNoSides
	}
	return SummarizeCounts(Tally(sides, rolls))
}

// SummarizeCounts is Summarize for a face histogram as returned by Tally, where
// counts[i] is the number of rolls showing face i+1. It lets callers tally an
// arbitrarily long stream of rolls without keeping them.
func SummarizeCounts(counts []uint64) (Summary, error) {
	if len(counts) == 0 {
		return Summary{}, ErrNoSides
	}
	s := Summary{Sides: uint64(len(counts)), Counts: counts}
	var sum float64
	for i, c := range counts {
		s.Rolls += c
		sum += float64(i+1) * float64(c)
	}
	if s.Rolls == 0 {
		return Summary{}, ErrNoRolls
	}
	n := float64(s.Rolls)
	s.Mean = sum / n
	for i, c := range counts {
		d := float64(i+1) - s.Mean
		s.Variance += float64(c) * d * d
	}
	s.Variance /= n
	s.StdDev = math.Sqrt(s.Variance)

	if s.Rolls%2 == 0 {
		s.Median = (faceAt(counts, s.Rolls/2-1) + faceAt(counts, s.Rolls/2)) / 2
	} else {
		s.Median = faceAt(counts, s.Rolls/2)
	}
	s.ChiSq = chiSquare(counts, n/float64(s.Sides))
	s.PValue = chiSquarePValue(s.ChiSq, len(counts)-1)
	return s, nil
}

// faceAt returns the k-th smallest roll (0-based) of the histogram.
func faceAt(counts []uint64, k uint64) float64 {
	for i, c := range counts {
		if k < c {
			return float64(i + 1)
		}
		k -= c
	}
	return float64(len(counts))
}

// Median returns the median of data without modifying it. It returns 0 for empty data.
func Median(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)

	l := len(sorted)
	if l%2 == 0 {
		return (sorted[l/2-1] + sorted[l/2]) / 2
	}
	return sorted[l/2]
}

// Statistics returns the mean and the population variance and standard deviation of data.
// For empty data it returns 0, -1, -1.
func Statistics(data []float64) (mean, variance, stddev float64) {
	if len(data) == 0 {
		return 0, -1, -1
	}

	var sum float64
	n := float64(len(data))

	for _, value := range data {
		sum += value
	}
	mean = sum / n

	for _, value := range data {
		variance += (value - mean) * (value - mean)
	}
	variance /= n
	stddev = math.Sqrt(variance)
	return
}

// chiSquare computes Σ (observed_i - expected)^2 / expected.
func chiSquare(counts []uint64, expected float64) float64 {
	var x2 float64
	for _, o := range counts {
		diff := float64(o) - expected
		x2 += (diff * diff) / expected
	}
	return x2
}

// chiSquarePValueEven evaluates the closed form for df = 2m:
//
//	P(χ² ≥ x2) = e^{-x2/2} * sum_{j=0}^{m-1} (x2/2)^j / j!
func chiSquarePValueEven(x2 float64, df int) float64 {
	m := df / 2
	sum := 1.0
	term := 1.0
	for j := 1; j < m; j++ {
		term *= x2 / (2.0 * float64(j))
		sum += term
	}
	return math.Exp(-x2/2.0) * sum
}

// chiSquarePValueApprox uses the Wilson–Hilferty cube-root transform, which is
// accurate enough for the odd degrees of freedom of d4..d20 and d_percent.
func chiSquarePValueApprox(x2 float64, df int) float64 {
	nu := float64(df)
	z := (math.Pow(x2/nu, 1.0/3.0) - (1.0 - 2.0/(9.0*nu))) / math.Sqrt(2.0/(9.0*nu))
	return 0.5 * math.Erfc(z/math.Sqrt2)
}

func chiSquarePValue(x2 float64, df int) float64 {
	if df <= 0 {
		return 1.0
	}
	if df%2 == 0 {
		return chiSquarePValueEven(x2, df)
	}
	return chiSquarePValueApprox(x2, df)
}
