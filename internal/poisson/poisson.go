// Package poisson implements the sample-size estimator at the heart of
// sampledepth.
//
// The model: species abundances across the pool follow a Poisson
// distribution with rate equal to the target copy number. A single sample
// of S phage misses a species present at k copies with probability
// (1 - k/(N*M))^S, where N*M is the total pool size. Averaging that miss
// probability over the (truncated) Poisson distribution of k gives the
// expected per-sample miss probability; n independent samples then miss
// with probability miss^n, and the smallest n driving miss^n below
// 1-confidence is the answer.
//
// The mixture sum runs in log space. Poisson mass at k involves k!, which
// overflows float64 past k=170, so ln(k!) is accumulated incrementally
// instead of ever forming the factorial itself.
package poisson

import (
	"errors"
	"fmt"
	"math"

	"github.com/phagelab/sampledepth/internal/debug"
	"github.com/phagelab/sampledepth/internal/types"
)

// ErrDegenerate is returned when the expected per-sample miss probability
// is 1 or greater, so no finite number of samples can reach the requested
// confidence. This happens when the pool size N*M is absurdly small
// relative to the sample size, pushing miss terms above 1.
var ErrDegenerate = errors.New("per-sample miss probability is not below 1; no sample count can reach the requested confidence")

// maxTruncation caps the Poisson mixture sum. Mass beyond min(1000, 5λ)
// is treated as negligible.
const maxTruncation = 1000

// probFloor keeps log(miss) finite when a miss probability underflows to 0.
const probFloor = 1e-308

// RequiredSamples computes the minimum number of independent samples
// needed so that a species present at p.TargetCopies or more copies is
// captured with probability at least p.Confidence.
func RequiredSamples(p types.Parameters) (int, error) {
	if p.Confidence == 0 {
		p.Confidence = types.DefaultConfidence
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	lambda := p.TargetCopies
	pool := p.PoolSize()
	maxK := maxTruncation
	if bound := int(lambda * 5); bound < maxK {
		maxK = bound
	}

	// Running log-sum of Poisson(k) * missSingle(k) over k = 0..maxK.
	acc := math.Inf(-1)
	lnFact := 0.0 // ln(k!) built incrementally; ln(0!) = 0
	for k := 0; k <= maxK; k++ {
		if k > 0 {
			lnFact += math.Log(float64(k))
		}
		logPoisson := float64(k)*math.Log(lambda) - lambda - lnFact

		miss := math.Pow(1-float64(k)/pool, float64(p.PerSample))
		if miss < probFloor {
			miss = probFloor
		}
		acc = logAdd(acc, logPoisson+math.Log(miss))
	}

	debug.Logf("poisson: maxK=%d log-miss=%g\n", maxK, acc)

	if acc >= 0 {
		return 0, fmt.Errorf("pool of %d species x %g mean copies sampled %d at a time: %w",
			p.TotalSpecies, p.MeanCopies, p.PerSample, ErrDegenerate)
	}

	// Both logs are negative, so the ratio is positive and ceil gives a
	// sample count of at least 1.
	return int(math.Ceil(math.Log(1-p.Confidence) / acc)), nil
}

// CaptureProbability returns the probability, as a percentage in [0, 100],
// of capturing a species present at copies copies in at least one of
// numSamples samples of p.PerSample phage each.
//
// copies may be zero (never captured) and may be fractional. numSamples
// may be zero, in which case the probability is 0.
func CaptureProbability(copies float64, numSamples int, p types.Parameters) (float64, error) {
	if p.Confidence == 0 {
		p.Confidence = types.DefaultConfidence
	}
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if math.IsNaN(copies) || math.IsInf(copies, 0) || copies < 0 {
		return 0, fmt.Errorf("copy number must be a non-negative finite number (got %v)", copies)
	}
	if numSamples < 0 {
		return 0, fmt.Errorf("sample count must be non-negative (got %d)", numSamples)
	}

	missSingle := math.Pow(1-copies/p.PoolSize(), float64(p.PerSample))
	// Past the pool bound the base goes negative; the species cannot be
	// missed at that point, so clamp into [0, 1].
	if missSingle < 0 || math.IsNaN(missSingle) {
		missSingle = 0
	} else if missSingle > 1 {
		missSingle = 1
	}
	missAll := math.Pow(missSingle, float64(numSamples))
	return (1 - missAll) * 100, nil
}

// DetectionCurve evaluates CaptureProbability for every integer copy
// number from 1 through 2*TargetCopies, using a fixed sample count.
// Points are returned in increasing copy-number order.
func DetectionCurve(p types.Parameters, numSamples int) ([]types.CurvePoint, error) {
	maxCopies := int(p.TargetCopies * 2)
	if maxCopies < 1 {
		maxCopies = 1
	}
	curve := make([]types.CurvePoint, 0, maxCopies)
	for copies := 1; copies <= maxCopies; copies++ {
		prob, err := CaptureProbability(float64(copies), numSamples, p)
		if err != nil {
			return nil, err
		}
		curve = append(curve, types.CurvePoint{Copies: copies, Probability: prob})
	}
	return curve, nil
}

// logAdd returns ln(exp(a) + exp(b)) without leaving log space, shifting
// by the larger operand so the exponentials cannot overflow.
func logAdd(a, b float64) float64 {
	if math.IsInf(a, -1) {
		return b
	}
	if math.IsInf(b, -1) {
		return a
	}
	if a < b {
		a, b = b, a
	}
	return a + math.Log1p(math.Exp(b-a))
}
