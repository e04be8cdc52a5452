package classify

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/SanthoshArigela/smartscan/internal/common"
	"github.com/SanthoshArigela/smartscan/internal/model"
)

// titleLineScan is how many leading lines are considered when falling back
// to a title-like line for the note.
const titleLineScan = 6

// DeriveNote chooses the short human-readable note for a classified receipt:
// the strongest keyword match for the winning category, then a title-like
// line near the top, then the generic placeholder. Brand overrides replace
// the heuristic note unconditionally because they are unambiguous signals.
func DeriveNote(text string, lines []model.Line, res Result) string {
	note := model.DefaultNote

	if kw, ok := bestKeyword(res); ok {
		note = titleCase(kw)
		if res.Category == model.CategoryBills && !strings.Contains(strings.ToLower(note), "bill") {
			note += " Bill"
		}
	} else if title, ok := titleLine(lines); ok {
		note = title
	}

	return brandNote(strings.ToLower(text), note)
}

// bestKeyword picks the longest keyword hit belonging to the winning
// category; the stable sort keeps first occurrence ahead on length ties.
func bestKeyword(res Result) (string, bool) {
	hits := make([]KeywordHit, len(res.Hits))
	copy(hits, res.Hits)
	sort.SliceStable(hits, func(i, j int) bool {
		return len(hits[i].Keyword) > len(hits[j].Keyword)
	})
	for _, h := range hits {
		if h.Category == res.Category {
			return h.Keyword, true
		}
	}
	return "", false
}

// titleLine scans at most the first six lines for something that reads like
// a storefront header: trimmed length strictly between 3 and 30 characters,
// no digits, no colons. The line is used verbatim.
func titleLine(lines []model.Line) (string, bool) {
	for i := 0; i < len(lines) && i < titleLineScan; i++ {
		l := strings.TrimSpace(lines[i].Text)
		n := utf8.RuneCountInString(l)
		if n > 3 && n < 30 && !strings.ContainsAny(l, "0123456789:") {
			return l, true
		}
	}
	return "", false
}

// titleCase uppercases the first letter of each space-separated word, e.g.
// "indian oil" -> "Indian Oil".
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// brandNote applies the unconditional note overrides in order; a later rule
// wins when several brands appear in the same text.
func brandNote(lower, note string) string {
	if strings.Contains(lower, "airtel") && common.ContainsAny(lower, "recharge", "prepaid") {
		note = "Airtel Recharge"
	}
	if strings.Contains(lower, "swiggy") {
		note = "Swiggy Order"
	}
	if strings.Contains(lower, "zomato") {
		note = "Zomato Order"
	}
	if strings.Contains(lower, "uber") {
		note = "Uber Ride"
	}
	return note
}
