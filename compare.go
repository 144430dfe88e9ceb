package dieroll

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// MinimumSamples is the smallest sample size CompareRuntimes accepts for each side.
const MinimumSamples = 11

// ErrTooFewSamples is returned by CompareRuntimes when a sample is shorter than MinimumSamples.
var ErrTooFewSamples = errors.New("dieroll: not enough runtime samples")

// Comparison is the confidence that sample A is faster than sample B by at least RelativeSpeedup.
type Comparison struct {
	RelativeSpeedup float64
	Confidence      float64
}

// TimeRolls measures the runtime of a Roller. It performs repeats measurements of
// rolls consecutive rolls each and returns the average nanoseconds per roll of every measurement.
func TimeRolls(r Roller, rolls, repeats uint64) []float64 {
	samples := make([]float64, 0, repeats)
	if rolls == 0 {
		return samples
	}
	var sink uint64
	for range repeats {
		t1 := SampleTime()
		for range rolls {
			sink += r.Roll()
		}
		t2 := SampleTime()
		samples = append(samples, float64(DiffTimeStamps(t1, t2))/float64(rolls))
	}
	if sink == 0 {
		// unreachable, every roll is at least 1; keeps the loop from being optimized away
		samples = append(samples, 0)
	}
	return samples
}

// CompareRuntimes computes, for every threshold t in relativeSpeedups, the confidence
// that a (e.g. ns per roll of one engine) is faster than b by at least t, where
// the relative speedup is 1 - median(a)/median(b). precision is the number of
// bootstrap replicates. The results are sorted by threshold.
func CompareRuntimes(a, b []float64, relativeSpeedups []float64, precision uint64) ([]Comparison, error) {
	if len(a) < MinimumSamples || len(b) < MinimumSamples {
		return nil, fmt.Errorf("%w: need at least %d for each of A and B, got %d and %d",
			ErrTooFewSamples, MinimumSamples, len(a), len(b))
	}
	thresholds := slices.Clone(relativeSpeedups)
	if len(thresholds) == 0 {
		thresholds = []float64{0.0}
	}
	slices.Sort(thresholds)

	conf := BootstrapConfidence(a, b, thresholds, precision, 0)

	result := make([]Comparison, 0, len(thresholds))
	for _, t := range thresholds {
		result = append(result, Comparison{RelativeSpeedup: t, Confidence: conf[t]})
	}
	return result, nil
}

// BootstrapConfidence estimates the probability that the relative speedup of a over b
// is at least each of thresholds, using reps bootstrap replicates.
//
// Each replicate resamples a and b with replacement, takes their medians and computes
// delta = 1 - median(a*)/median(b*). Replicates with a NaN median never count; equal
// medians give delta = 0; a median of b that is (numerically) zero is replaced by a
// small scale-aware epsilon. If reps is zero every threshold maps to NaN.
//
// seed drives the resampling generator. With seed 0 the generator is seeded from
// the wall clock; any other value makes the result reproducible.
func BootstrapConfidence(a, b []float64, thresholds []float64, reps uint64, seed uint64) map[float64]float64 {
	confidence := make(map[float64]float64, len(thresholds))
	if reps == 0 {
		for _, t := range thresholds {
			confidence[t] = math.NaN()
		}
		return confidence
	}

	rng := NewXorshiftStar()
	if seed != 0 {
		rng.Seed(seed)
	}
	counts := make(map[float64]uint64, len(thresholds))
	bufA := make([]float64, len(a))
	bufB := make([]float64, len(b))

	for range reps {
		medA := QuickMedian(bootstrapSample(rng, a, bufA), rng)
		medB := QuickMedian(bootstrapSample(rng, b, bufB), rng)
		delta := relativeSpeedup(medA, medB)
		for _, t := range thresholds {
			if delta >= t {
				counts[t]++
			}
		}
	}

	for _, t := range thresholds {
		confidence[t] = float64(counts[t]) / float64(reps)
	}
	return confidence
}

func relativeSpeedup(medA, medB float64) float64 {
	switch {
	case math.IsNaN(medA) || math.IsNaN(medB):
		return math.NaN()
	case medA == medB:
		return 0.0
	}
	eps := math.Max(math.Abs(medB)*1e-12, math.SmallestNonzeroFloat64)
	denom := medB
	if math.Abs(medB) < eps {
		denom = eps
	}
	return 1.0 - medA/denom
}

// bootstrapSample fills dst with len(xs) values drawn from xs with replacement.
func bootstrapSample(rng Source, xs, dst []float64) []float64 {
	n := uint64(len(xs))
	for i := range dst {
		dst[i] = xs[BoundedFromZero(rng, n)]
	}
	return dst
}

// partition moves xs[high] to its sorted position within xs[low..high] and returns that index.
func partition(xs []float64, low, high int) int {
	pivot := xs[high]
	i := low
	for j := low; j < high; j++ {
		if xs[j] < pivot {
			xs[i], xs[j] = xs[j], xs[i]
			i++
		}
	}
	xs[i], xs[high] = xs[high], xs[i]
	return i
}

// quickselect returns the k-th smallest element (0-based), see https://en.wikipedia.org/wiki/Quickselect
func quickselect(xs []float64, k int, rng Source) float64 {
	low, high := 0, len(xs)-1
	for low < high {
		pivot := low + int(BoundedFromZero(rng, uint64(high-low+1)))
		xs[pivot], xs[high] = xs[high], xs[pivot]
		p := partition(xs, low, high)
		switch {
		case p == k:
			return xs[p]
		case p < k:
			low = p + 1
		default:
			high = p - 1
		}
	}
	return xs[k]
}

// QuickMedian returns the median of xs in expected O(n) time, choosing pivots with rng.
// For an even number of elements it returns the higher of the two middle ones.
// It returns NaN for empty input. QuickMedian reorders xs.
func QuickMedian(xs []float64, rng Source) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}
	return quickselect(xs, len(xs)/2, rng)
}
