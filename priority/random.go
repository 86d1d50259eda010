package priority

import (
	"math"

	"github.com/koykov/shufflebag/rng"
)

// Random priority evaluator.
// Each call draws independent uniform priority in [0, 1) from the Source.
type Random struct {
	// Source of randomness.
	// If this param omit entropy seeded rng.Rand will use instead.
	Source rng.Source
}

// Eval returns fresh priority.
// Panics with ErrNaN if the source breaks its contract, since NaN priorities can't be ordered.
func (p *Random) Eval() float64 {
	if p.Source == nil {
		p.Source = rng.NewEntropy()
	}
	f := p.Source.Float64()
	if math.IsNaN(f) {
		panic(ErrNaN)
	}
	return f
}
