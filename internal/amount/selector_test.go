package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanthoshArigela/smartscan/internal/model"
)

func candidate(value int64, score int) model.AmountCandidate {
	return model.AmountCandidate{
		Value:  decimal.NewFromInt(value),
		Score:  score,
		Origin: model.OriginDigits,
	}
}

func TestRank(t *testing.T) {
	t.Run("orders by score descending", func(t *testing.T) {
		ranked := Rank([]model.AmountCandidate{
			candidate(1, 10),
			candidate(2, 80),
			candidate(3, 50),
		})

		require.Len(t, ranked, 3)
		assert.Equal(t, []int{80, 50, 10}, []int{ranked[0].Score, ranked[1].Score, ranked[2].Score})
	})

	t.Run("ties preserve extraction order", func(t *testing.T) {
		ranked := Rank([]model.AmountCandidate{
			candidate(100, 50),
			candidate(200, 50),
		})

		assert.True(t, ranked[0].Value.Equal(decimal.NewFromInt(100)))
		assert.True(t, ranked[1].Value.Equal(decimal.NewFromInt(200)))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		input := []model.AmountCandidate{candidate(1, 10), candidate(2, 80)}
		Rank(input)

		assert.Equal(t, 10, input[0].Score)
	})
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		candidates []model.AmountCandidate
		want       int64
	}{
		{name: "no candidates", candidates: nil, want: 0},
		{name: "winner above floor", candidates: []model.AmountCandidate{candidate(450, 80)}, want: 450},
		{name: "weak winner still accepted", candidates: []model.AmountCandidate{candidate(7, -19)}, want: 7},
		{name: "floor is strict", candidates: []model.AmountCandidate{candidate(7, -20)}, want: 0},
		{name: "penalized candidate rejected", candidates: []model.AmountCandidate{candidate(2023, -40)}, want: 0},
		{
			name: "best of several wins",
			candidates: []model.AmountCandidate{
				candidate(12, 10),
				candidate(1250, 95),
				candidate(2023, -40),
			},
			want: 1250,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.candidates, DefaultAcceptanceFloor)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"amount = %s, want %d", got, tt.want)
		})
	}
}
