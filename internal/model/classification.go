// Package model defines the core domain values produced by the receipt
// interpretation engine.
package model

import "github.com/shopspring/decimal"

// DefaultNote is the placeholder used when no better label can be derived.
// Results always carry a non-empty note.
const DefaultNote = "Scanned Receipt"

// Line is one non-empty line of normalized receipt text. Index is the line's
// position among the kept lines; positional heuristics such as "the line
// after one containing total" are defined over these indices.
type Line struct {
	Text  string
	Index int
}

// ClassificationResult is the engine's sole output: a best-effort structured
// guess the user can still edit. Amount is never negative; a zero amount
// means no candidate cleared the acceptance floor and the caller should
// prompt for manual entry.
type ClassificationResult struct {
	Amount   decimal.Decimal
	Category Category
	Note     string
}
