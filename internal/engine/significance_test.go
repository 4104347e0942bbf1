package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

func TestSignificance(t *testing.T) {
	tests := []struct {
		name    string
		ratings *model.Ratings
		formula model.Formula
		want    float64
	}{
		{"nil ratings", nil, model.DefaultFormula(), 0},
		{"default formula max", &model.Ratings{Cost: 10, Romanticism: 10, Scale: 10}, model.DefaultFormula(), 10},
		{"default formula mixed", &model.Ratings{Cost: 2, Romanticism: 6, Scale: 5}, model.DefaultFormula(), 0.6 + 3 + 1},
		{"unnormalised weights", &model.Ratings{Cost: 1, Romanticism: 2, Scale: 3}, model.Formula{CostWeight: 1, RomanticismWeight: 1, ScaleWeight: 1}, 6},
		{"out of range inputs", &model.Ratings{Cost: -4, Romanticism: 50, Scale: 0}, model.Formula{CostWeight: 2, RomanticismWeight: -1, ScaleWeight: 7}, -8 - 50},
		{"zero weights", &model.Ratings{Cost: 9, Romanticism: 9, Scale: 9}, model.Formula{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Significance(tt.ratings, tt.formula), 1e-9)
		})
	}
}
