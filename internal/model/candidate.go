package model

import "github.com/shopspring/decimal"

// CandidateOrigin records how an amount candidate was produced.
type CandidateOrigin string

const (
	// OriginDigits marks candidates extracted from numeric substrings.
	OriginDigits CandidateOrigin = "digits"
	// OriginWords marks candidates parsed from spelled-out quantities.
	OriginWords CandidateOrigin = "words"
)

// AmountCandidate is a provisional monetary value paired with its contextual
// plausibility score. Candidates are created during extraction and consumed
// during selection; they are never mutated. Scores are unbounded integers and
// may go negative.
type AmountCandidate struct {
	Value  decimal.Decimal
	Raw    string
	Origin CandidateOrigin
	Score  int
}

// CategoryScore pairs a category with its accumulated classification score.
type CategoryScore struct {
	Category Category
	Score    int
}
