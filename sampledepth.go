// Package sampledepth estimates how deeply a phage display library must be
// sampled to capture rare species.
//
// Given a pool of N species averaging M copies each, sampled S phage at a
// time, it computes the minimum number of independent samples needed to
// capture, with a chosen confidence (95% by default), every species present
// at a target copy number or above, plus the detection-probability curve
// across copy numbers.
//
// This package is the public API for programmatic use; the sdepth command
// under cmd/sdepth is the interactive front-end.
package sampledepth

import (
	"time"

	"github.com/google/uuid"

	"github.com/phagelab/sampledepth/internal/poisson"
	"github.com/phagelab/sampledepth/internal/types"
)

// Core value types
type (
	Parameters = types.Parameters
	CurvePoint = types.CurvePoint
	Result     = types.Result
)

// DefaultConfidence is the detection confidence used when Parameters.Confidence
// is left zero.
const DefaultConfidence = types.DefaultConfidence

// ErrDegenerate reports parameters for which no finite sample count can
// reach the requested confidence. Test with errors.Is.
var ErrDegenerate = poisson.ErrDegenerate

// RequiredSamples returns the minimum number of independent samples needed
// to capture a species at p.TargetCopies or more copies with probability
// at least p.Confidence.
func RequiredSamples(p Parameters) (int, error) {
	return poisson.RequiredSamples(p)
}

// CaptureProbability returns the probability, in percent, of capturing a
// species present at the given copy number in at least one of numSamples
// samples.
func CaptureProbability(copies float64, numSamples int, p Parameters) (float64, error) {
	return poisson.CaptureProbability(copies, numSamples, p)
}

// DetectionCurve returns capture probabilities for copy numbers 1 through
// 2*p.TargetCopies at a fixed sample count.
func DetectionCurve(p Parameters, numSamples int) ([]CurvePoint, error) {
	return poisson.DetectionCurve(p, numSamples)
}

// Estimate runs the full estimation: solves for the required sample count
// and evaluates the detection curve at that count. Each call is tagged with
// a fresh run ID.
func Estimate(p Parameters) (*Result, error) {
	if p.Confidence == 0 {
		p.Confidence = DefaultConfidence
	}
	n, err := poisson.RequiredSamples(p)
	if err != nil {
		return nil, err
	}
	curve, err := poisson.DetectionCurve(p, n)
	if err != nil {
		return nil, err
	}
	return &Result{
		RunID:           uuid.New().String(),
		GeneratedAt:     time.Now().UTC(),
		Params:          p,
		RequiredSamples: n,
		Curve:           curve,
	}, nil
}
