// Package amount finds and ranks monetary value candidates in receipt text.
// Extraction produces scored candidates from numeric substrings and from
// spelled-out English quantities; selection picks the winner.
package amount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/SanthoshArigela/smartscan/internal/common"
	"github.com/SanthoshArigela/smartscan/internal/model"
)

// digitPattern matches an optional currency marker, optional whitespace, then
// digits with optional thousands separators and up to two fractional digits.
// A single embedded space inside the digit run is tolerated as an OCR
// grouping artifact and stripped before parsing.
var digitPattern = regexp.MustCompile(`(?i)(₹|rs\.?|inr)?\s*([\d,]+[. ]?\d{0,2})`)

var (
	ten             = decimal.NewFromInt(10)
	one             = decimal.NewFromInt(1)
	yearLow         = decimal.NewFromInt(1990)
	yearHigh        = decimal.NewFromInt(2030)
	plausibleCeil   = decimal.NewFromInt(50000)
	implausibleCeil = decimal.NewFromInt(100000)
)

// candidateContext carries everything a scoring rule may inspect: the
// lowercased line, its predecessor, and the cleaned match.
type candidateContext struct {
	line        string
	prev        string
	raw         string
	value       decimal.Decimal
	hasCurrency bool
}

// rule is one independent plausibility heuristic. Rules are pure functions
// of the candidate context; the final score is their sum over zero.
type rule struct {
	name  string
	apply func(candidateContext) int
}

var digitRules = []rule{
	{"total keyword", func(c candidateContext) int {
		if common.ContainsAny(c.line, "total", "amount", "payable", "paid") {
			return 50
		}
		return 0
	}},
	{"bill keyword", func(c candidateContext) int {
		if common.ContainsAny(c.line, "bill", "due") {
			return 30
		}
		return 0
	}},
	{"currency marker", func(c candidateContext) int {
		if c.hasCurrency {
			return 20
		}
		return 0
	}},
	{"plausible range", func(c candidateContext) int {
		if c.value.GreaterThan(ten) && c.value.LessThan(plausibleCeil) {
			return 10
		}
		return 0
	}},
	{"calendar year", func(c candidateContext) int {
		if c.value.IsInteger() && c.value.GreaterThanOrEqual(yearLow) && c.value.LessThanOrEqual(yearHigh) {
			return -50
		}
		return 0
	}},
	{"sub-unit value", func(c candidateContext) int {
		if c.value.LessThan(one) {
			return -10
		}
		return 0
	}},
	{"implausibly large", func(c candidateContext) int {
		if c.value.GreaterThan(implausibleCeil) {
			return -100
		}
		return 0
	}},
	{"fractional part", func(c candidateContext) int {
		if strings.Contains(c.raw, ".") {
			return 15
		}
		return 0
	}},
	{"label on line above", func(c candidateContext) int {
		if common.ContainsAny(c.prev, "total", "amount") {
			return 40
		}
		return 0
	}},
}

func scoreCandidate(rules []rule, c candidateContext) int {
	score := 0
	for _, r := range rules {
		score += r.apply(c)
	}
	return score
}

// ExtractDigits scans one line for numeric substrings and scores every match
// against its context. prev is the lowercased previous non-empty line, or ""
// for the first line.
func ExtractDigits(line model.Line, prev string) []model.AmountCandidate {
	lower := strings.ToLower(line.Text)

	var out []model.AmountCandidate
	for _, m := range digitPattern.FindAllStringSubmatch(line.Text, -1) {
		raw := strings.NewReplacer(",", "", " ", "").Replace(m[2])
		if raw == "" || raw == "." {
			continue
		}
		value, err := decimal.NewFromString(strings.TrimSuffix(raw, "."))
		if err != nil {
			continue
		}

		ctx := candidateContext{
			line:        lower,
			prev:        prev,
			raw:         raw,
			value:       value,
			hasCurrency: m[1] != "",
		}
		out = append(out, model.AmountCandidate{
			Value:  value,
			Raw:    raw,
			Origin: model.OriginDigits,
			Score:  scoreCandidate(digitRules, ctx),
		})
	}
	return out
}
