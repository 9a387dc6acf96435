package trajcost

import (
	"context"
	"sync"

	goutils "go.viam.com/utils"

	"github.com/roadgraph/dppath/curve"
)

// Candidate is one curve to score over a segment at a search level.
type Candidate struct {
	Curve      curve.Curve
	StartS     float64
	EndS       float64
	CurrLevel  uint32
	TotalLevel uint32
}

// EvaluateCandidates scores every candidate against one oracle concurrently.
// Calculate is a pure function of immutable state, so candidates fan out onto
// goroutines freely; results are index-aligned with the input. Cancelling the
// context abandons candidates not yet started.
func EvaluateCandidates(ctx context.Context, oracle *TrajectoryCost, candidates []Candidate) ([]ComparableCost, error) {
	results := make([]ComparableCost, len(candidates))
	var wg sync.WaitGroup
	for i := range candidates {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		idx := i
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			cand := candidates[idx]
			results[idx] = oracle.Calculate(cand.Curve, cand.StartS, cand.EndS, cand.CurrLevel, cand.TotalLevel)
		})
	}
	wg.Wait()
	return results, nil
}
