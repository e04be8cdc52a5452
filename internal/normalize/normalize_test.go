package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepairDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "o after digit", input: "5o", want: "50"},
		{name: "o before digit", input: "o5", want: "05"},
		{name: "l before digit", input: "l5", want: "15"},
		{name: "i after digit", input: "5i", want: "51"},
		{name: "s after digit", input: "5s", want: "55"},
		{name: "s before digit", input: "s5", want: "55"},
		{name: "b after digit", input: "5b", want: "58"},
		{name: "b before digit", input: "b5", want: "85"},
		{name: "z after digit", input: "5z", want: "52"},
		{name: "z before digit", input: "z5", want: "25"},
		{name: "uppercase confusion", input: "4O", want: "40"},
		{name: "inside an amount", input: "Rs. 1o0", want: "Rs. 100"},
		{name: "ordinary words untouched", input: "hello world", want: "hello world"},
		{name: "keyword untouched", input: "TOTAL", want: "TOTAL"},
		{name: "letter separated by space untouched", input: "snack 5", want: "snack 5"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairDigits(tt.input))
		})
	}
}

func TestSegment(t *testing.T) {
	t.Run("drops empty lines and keeps order", func(t *testing.T) {
		lines := Segment("Cafe Blue\n\n   \nTotal: 120\n")

		assert.Len(t, lines, 2)
		assert.Equal(t, "Cafe Blue", lines[0].Text)
		assert.Equal(t, 0, lines[0].Index)
		assert.Equal(t, "Total: 120", lines[1].Text)
		assert.Equal(t, 1, lines[1].Index)
	})

	t.Run("keeps original spacing on kept lines", func(t *testing.T) {
		lines := Segment("  indented  ")

		assert.Len(t, lines, 1)
		assert.Equal(t, "  indented  ", lines[0].Text)
	})

	t.Run("empty input yields no lines", func(t *testing.T) {
		assert.Empty(t, Segment(""))
	})

	t.Run("restartable", func(t *testing.T) {
		input := "a\nb"
		assert.Equal(t, Segment(input), Segment(input))
	})
}
