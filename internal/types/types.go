package types

import (
	"fmt"
	"math"
	"time"
)

// DefaultConfidence is the detection confidence the estimator targets when
// the caller does not override it.
const DefaultConfidence = 0.95

// Parameters describes one sampling experiment: a pool of TotalSpecies
// distinct species averaging MeanCopies copies each, sampled PerSample
// phage at a time, with the goal of capturing every species present at
// TargetCopies or more copies.
type Parameters struct {
	TargetCopies float64 `json:"target_copies"`
	PerSample    int     `json:"per_sample"`
	TotalSpecies int     `json:"total_species"`
	MeanCopies   float64 `json:"mean_copies"`
	Confidence   float64 `json:"confidence"`
}

// Validate checks that the parameters describe a computable experiment.
// Every field must be strictly positive and finite; the estimator divides
// by TotalSpecies*MeanCopies, so bad values are rejected here rather than
// surfacing later as NaN.
func (p *Parameters) Validate() error {
	if !isFinite(p.TargetCopies) || p.TargetCopies <= 0 {
		return fmt.Errorf("target copies must be a positive finite number (got %v)", p.TargetCopies)
	}
	if p.PerSample <= 0 {
		return fmt.Errorf("phage per sample must be positive (got %d)", p.PerSample)
	}
	if p.TotalSpecies <= 0 {
		return fmt.Errorf("total species must be positive (got %d)", p.TotalSpecies)
	}
	if !isFinite(p.MeanCopies) || p.MeanCopies <= 0 {
		return fmt.Errorf("mean copies must be a positive finite number (got %v)", p.MeanCopies)
	}
	if !isFinite(p.Confidence) || p.Confidence <= 0 || p.Confidence >= 1 {
		return fmt.Errorf("confidence must be between 0 and 1 exclusive (got %v)", p.Confidence)
	}
	return nil
}

// PoolSize returns the total number of phage units in the pool,
// TotalSpecies * MeanCopies.
func (p *Parameters) PoolSize() float64 {
	return float64(p.TotalSpecies) * p.MeanCopies
}

// CurvePoint is one point on the detection-probability curve: the
// probability (0-100) of capturing a species present at Copies copies.
type CurvePoint struct {
	Copies      int     `json:"copies"`
	Probability float64 `json:"probability"`
}

// Result is the outcome of one estimation run.
type Result struct {
	RunID           string       `json:"run_id"`
	GeneratedAt     time.Time    `json:"generated_at"`
	Params          Parameters   `json:"params"`
	RequiredSamples int          `json:"required_samples"`
	Curve           []CurvePoint `json:"curve,omitempty"`
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
