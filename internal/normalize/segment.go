package normalize

import (
	"strings"

	"github.com/SanthoshArigela/smartscan/internal/model"
)

// Segment splits normalized text into its non-empty lines, preserving
// document order. Line text keeps its original spacing; only lines that are
// empty after trimming are dropped. Indices are assigned over the kept
// lines, so "the previous line" always means the previous non-empty line.
//
// Segment is a pure function: calling it again with the same input yields a
// fresh, identical slice.
func Segment(s string) []model.Line {
	var lines []model.Line
	for _, raw := range strings.Split(s, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, model.Line{Text: raw, Index: len(lines)})
	}
	return lines
}
