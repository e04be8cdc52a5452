package amount

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/SanthoshArigela/smartscan/internal/model"
)

// DefaultAcceptanceFloor is the score a winning candidate must strictly
// exceed. The value lets weakly scored candidates win when nothing better
// exists while rejecting candidates actively penalized as implausible. It is
// exposed as a tunable because nothing documents its derivation; do not
// change the default without new data.
const DefaultAcceptanceFloor = -20

// Rank returns the candidates sorted by score descending. The sort is
// stable, so ties keep extraction order: digit candidates before textual
// candidates on the same line, lines in document order. The input slice is
// not modified.
func Rank(candidates []model.AmountCandidate) []model.AmountCandidate {
	ranked := make([]model.AmountCandidate, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Select picks the winning amount: the top-ranked candidate's value when its
// score strictly exceeds floor, otherwise zero. Zero tells the caller the
// amount is unconfirmed and needs manual entry.
func Select(candidates []model.AmountCandidate, floor int) decimal.Decimal {
	ranked := Rank(candidates)
	if len(ranked) > 0 && ranked[0].Score > floor {
		return ranked[0].Value
	}
	return decimal.Zero
}
