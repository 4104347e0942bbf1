package engine

import "github.com/kupikrutcher/relationship-app/internal/model"

// Significance scores an event from its ratings as a plain weighted sum:
//
//	cost*costWeight + romanticism*romanticismWeight + scale*scaleWeight
//
// Nil ratings score 0. Inputs are not clamped; weights need not sum to 1.
func Significance(r *model.Ratings, f model.Formula) float64 {
	if r == nil {
		return 0
	}
	return float64(r.Cost)*f.CostWeight +
		float64(r.Romanticism)*f.RomanticismWeight +
		float64(r.Scale)*f.ScaleWeight
}
