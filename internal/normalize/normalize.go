// Package normalize prepares raw OCR text for interpretation: it repairs
// common digit/letter confusions and splits the text into ordered lines.
package normalize

import "regexp"

// repair is one digit-adjacent substitution. Each pattern fires only when a
// confusable letter touches a digit, so ordinary words stay intact.
type repair struct {
	re   *regexp.Regexp
	repl string
}

// repairs lists the corrections in application order: o↔0, l/i→1, s→5, b→8,
// z→2, covering both letter-before-digit and digit-before-letter forms.
// Each substitution runs once over the whole text, not recursively.
var repairs = []repair{
	{regexp.MustCompile(`(?i)(\d)o`), "${1}0"},
	{regexp.MustCompile(`(?i)o(\d)`), "0${1}"},
	{regexp.MustCompile(`(?i)l(\d)`), "1${1}"},
	{regexp.MustCompile(`(?i)(\d)i`), "${1}1"},
	{regexp.MustCompile(`(?i)(\d)s`), "${1}5"},
	{regexp.MustCompile(`(?i)s(\d)`), "5${1}"},
	{regexp.MustCompile(`(?i)(\d)b`), "${1}8"},
	{regexp.MustCompile(`(?i)b(\d)`), "8${1}"},
	{regexp.MustCompile(`(?i)(\d)z`), "${1}2"},
	{regexp.MustCompile(`(?i)z(\d)`), "2${1}"},
}

// RepairDigits corrects OCR leetspeak inside digit-adjacent sequences, e.g.
// "Rs. 1o0" becomes "Rs. 100" while "hello" is untouched. It always returns
// a usable string and never fails.
func RepairDigits(s string) string {
	for _, r := range repairs {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
