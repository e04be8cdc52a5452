package amount

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SanthoshArigela/smartscan/internal/common"
	"github.com/SanthoshArigela/smartscan/internal/model"
)

// wordBaseScore is the base plausibility of any spelled-out amount; receipts
// that bother to write "Rupees Five Hundred Only" rarely mean anything else.
const wordBaseScore = 30

var unitWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var magnitudeWords = map[string]int64{
	"hundred":  100,
	"thousand": 1000,
	"lakh":     100000,
	"crore":    10000000,
}

// wordPunct strips everything that is not a word character or whitespace,
// after hyphens have been turned into separators.
var wordPunct = regexp.MustCompile(`[^\w\s]`)

// ParseWords reads a spelled-out English quantity from a line, e.g.
// "two thousand five hundred" -> 2500. Unit words accumulate, magnitude
// words multiply the running group and fold it into the total, "and" and
// unrecognized words are skipped without aborting the scan.
//
// found is false only when no number or magnitude word was seen at all,
// which keeps "zero rupees" distinguishable from a line with no numeric
// content.
func ParseWords(line string) (value int64, found bool) {
	text := strings.ReplaceAll(strings.ToLower(line), "-", " ")
	text = wordPunct.ReplaceAllString(text, "")

	var total, current int64
	for _, word := range strings.Fields(text) {
		if v, ok := unitWords[word]; ok {
			current += v
			found = true
			continue
		}
		if m, ok := magnitudeWords[word]; ok {
			if current == 0 {
				current = 1
			}
			total += current * m
			current = 0
			found = true
		}
	}
	if !found {
		return 0, false
	}
	return total + current, true
}

var wordRules = []rule{
	{"spelled-out amount", func(candidateContext) int {
		return wordBaseScore
	}},
	{"total wording", func(c candidateContext) int {
		if common.ContainsAny(c.line, "total", "only", "rupees") {
			return 40
		}
		return 0
	}},
	{"label on line above", func(c candidateContext) int {
		if strings.Contains(c.prev, "total") {
			return 40
		}
		return 0
	}},
}

// ExtractWords parses a spelled-out amount from one line and scores it. Only
// strictly positive parses become candidates; a textual zero never outranks
// anything. prev is the lowercased previous non-empty line.
func ExtractWords(line model.Line, prev string) (model.AmountCandidate, bool) {
	value, found := ParseWords(line.Text)
	if !found || value <= 0 {
		return model.AmountCandidate{}, false
	}

	ctx := candidateContext{
		line: strings.ToLower(line.Text),
		prev: prev,
	}
	return model.AmountCandidate{
		Value:  decimal.NewFromInt(value),
		Raw:    strconv.FormatInt(value, 10),
		Origin: model.OriginWords,
		Score:  scoreCandidate(wordRules, ctx),
	}, true
}
