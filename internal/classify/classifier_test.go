package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanthoshArigela/smartscan/internal/model"
)

func scoreFor(res Result, cat model.Category) int {
	for _, s := range res.Scores {
		if s.Category == cat {
			return s.Score
		}
	}
	return 0
}

func TestClassifierClassify(t *testing.T) {
	c := New(DefaultConfidenceFloor)

	tests := []struct {
		name         string
		text         string
		wantCategory model.Category
		wantScore    int
	}{
		{
			// substring 5 + whole word 10
			name:         "whole word keyword",
			text:         "zomato",
			wantCategory: model.CategoryFood,
			wantScore:    15,
		},
		{
			// substring only, low confidence, no brand override applies
			name:         "substring keyword stands despite low confidence",
			text:         "myzomatox",
			wantCategory: model.CategoryFood,
			wantScore:    5,
		},
		{
			name:         "tie resolves to first declared category",
			text:         "food fuel",
			wantCategory: model.CategoryFood,
			wantScore:    15,
		},
		{
			name:         "no keywords defaults to bills",
			text:         "qwerty asdfgh",
			wantCategory: model.CategoryBills,
			wantScore:    0,
		},
		{
			name:         "empty text defaults to bills",
			text:         "",
			wantCategory: model.CategoryBills,
			wantScore:    0,
		},
		{
			// "table" keyword 15 + structural table no 15
			name:         "structural dining cue",
			text:         "table no 4",
			wantCategory: model.CategoryFood,
			wantScore:    30,
		},
		{
			// structural only, no transport dictionary hit
			name:         "structural vehicle cue",
			text:         "vehicle reading 40 km",
			wantCategory: model.CategoryTransport,
			wantScore:    15,
		},
		{
			name:         "gstin nudges shopping when food is silent",
			text:         "gstin",
			wantCategory: model.CategoryShopping,
			wantScore:    5,
		},
		{
			name:         "telecom brand forces bills at low confidence",
			text:         "jiox",
			wantCategory: model.CategoryBills,
			wantScore:    5,
		},
		{
			name:         "ride hailing override outranks telecom override",
			text:         "airtelx uberx",
			wantCategory: model.CategoryTransport,
			wantScore:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.text)

			assert.Equal(t, tt.wantCategory, res.Category)
			assert.Equal(t, tt.wantScore, res.Score)
		})
	}
}

func TestClassifierGstinYieldsToFood(t *testing.T) {
	c := New(DefaultConfidenceFloor)

	res := c.Classify("gstin cafe")

	assert.Equal(t, model.CategoryFood, res.Category)
	assert.Equal(t, 0, scoreFor(res, model.CategoryShopping))
}

func TestClassifierMonotonicKeywordDensity(t *testing.T) {
	c := New(DefaultConfidenceFloor)

	base := scoreFor(c.Classify("cafe"), model.CategoryFood)
	denser := scoreFor(c.Classify("cafe pizza"), model.CategoryFood)
	densest := scoreFor(c.Classify("cafe pizza biryani"), model.CategoryFood)

	assert.Greater(t, denser, base)
	assert.Greater(t, densest, denser)
}

func TestClassifierRecordsHits(t *testing.T) {
	c := New(DefaultConfidenceFloor)

	res := c.Classify("zomato pizza")

	require.Len(t, res.Hits, 2)
	assert.Equal(t, "zomato", res.Hits[0].Keyword)
	assert.Equal(t, model.CategoryFood, res.Hits[0].Category)
	assert.Equal(t, "pizza", res.Hits[1].Keyword)
}

func TestClassifierDeterministic(t *testing.T) {
	c := New(DefaultConfidenceFloor)

	first := c.Classify("uber trip fare")
	second := c.Classify("uber trip fare")

	assert.Equal(t, first, second)
}
