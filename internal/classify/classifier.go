// Package classify scores receipt text against the fixed category set and
// derives a human-readable note for the winner.
package classify

import (
	"regexp"
	"strings"

	"github.com/SanthoshArigela/smartscan/internal/common"
	"github.com/SanthoshArigela/smartscan/internal/model"
)

const (
	// substringScore is awarded for any keyword present in the text.
	substringScore = 5
	// wholeWordScore is awarded on top when the keyword also matches
	// bounded by non-word characters.
	wholeWordScore = 10

	// DefaultConfidenceFloor is the winning score below which brand
	// overrides are consulted. Tunable for compatibility experiments only;
	// nothing documents a better value.
	DefaultConfidenceFloor = 10
)

// KeywordHit records a dictionary keyword found in the text. Hits are kept
// in scan order and reused for label derivation.
type KeywordHit struct {
	Keyword  string
	Category model.Category
}

// Result carries the winning category together with the evidence that
// produced it, so callers can expose confidence instead of recomputing it.
type Result struct {
	Category model.Category
	Score    int
	Scores   []model.CategoryScore
	Hits     []KeywordHit
}

// Classifier scores lowercased receipt text with weighted keyword
// dictionaries plus a small set of structural overrides. It is immutable
// after construction and safe for concurrent use.
type Classifier struct {
	wholeWord map[string]*regexp.Regexp
	floor     int
}

// New builds a classifier, precompiling a whole-word pattern per dictionary
// keyword.
func New(confidenceFloor int) *Classifier {
	c := &Classifier{
		wholeWord: make(map[string]*regexp.Regexp),
		floor:     confidenceFloor,
	}
	for _, cat := range model.AllCategories() {
		for _, kw := range keywordTable[cat] {
			if _, ok := c.wholeWord[kw]; !ok {
				c.wholeWord[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			}
		}
	}
	return c
}

// Classify scores every category against the full normalized text and picks
// the winner. Ties resolve to the first-declared category; when no category
// scores above zero the winner defaults to bills. A winner below the
// confidence floor may still be replaced by a brand override, otherwise it
// stands - confidence is informational, not a gate.
func (c *Classifier) Classify(text string) Result {
	lower := strings.ToLower(text)

	scores := make(map[model.Category]int, len(keywordTable))
	var hits []KeywordHit
	for _, cat := range model.AllCategories() {
		for _, kw := range keywordTable[cat] {
			if !strings.Contains(lower, kw) {
				continue
			}
			scores[cat] += substringScore
			if c.wholeWord[kw].MatchString(lower) {
				scores[cat] += wholeWordScore
			}
			hits = append(hits, KeywordHit{Keyword: kw, Category: cat})
		}
	}

	applyStructural(lower, scores)

	best := model.CategoryBills
	bestScore := 0
	ranked := make([]model.CategoryScore, 0, len(keywordTable))
	for _, cat := range model.AllCategories() {
		ranked = append(ranked, model.CategoryScore{Category: cat, Score: scores[cat]})
		if scores[cat] > bestScore {
			best = cat
			bestScore = scores[cat]
		}
	}

	if bestScore < c.floor {
		best = brandCategory(lower, best)
	}

	return Result{
		Category: best,
		Score:    bestScore,
		Scores:   ranked,
		Hits:     hits,
	}
}

// applyStructural adds layout-cue bonuses that are independent of the
// keyword dictionaries. Each fires at most once per text. The gstin check
// runs last: a tax registration number suggests retail only when nothing
// points at food.
func applyStructural(lower string, scores map[model.Category]int) {
	if common.ContainsAny(lower, "table no", "server") {
		scores[model.CategoryFood] += 15
	}
	if common.ContainsAny(lower, "vehicle", "km") {
		scores[model.CategoryTransport] += 15
	}
	if common.ContainsAny(lower, "shipping", "delivery") {
		scores[model.CategoryShopping] += 10
	}
	if strings.Contains(lower, "gstin") && scores[model.CategoryFood] == 0 {
		scores[model.CategoryShopping] += 5
	}
}

// brandCategory applies the low-confidence brand overrides: well-known
// telecom names force bills, ride-hailing names force transport. The rules
// run in order, so the ride-hailing override wins when both fire.
func brandCategory(lower string, current model.Category) model.Category {
	winner := current
	if common.ContainsAny(lower, "airtel", "jio") {
		winner = model.CategoryBills
	}
	if common.ContainsAny(lower, "uber", "ola") {
		winner = model.CategoryTransport
	}
	return winner
}
