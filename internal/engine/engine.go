// Package engine composes the receipt interpretation pipeline: normalize,
// segment, extract amount candidates, select, classify, label.
package engine

import (
	"log/slog"
	"strings"

	"github.com/SanthoshArigela/smartscan/internal/amount"
	"github.com/SanthoshArigela/smartscan/internal/classify"
	"github.com/SanthoshArigela/smartscan/internal/model"
	"github.com/SanthoshArigela/smartscan/internal/normalize"
)

// Config holds the engine's tunable thresholds. The defaults preserve the
// behavior the rest of the product was calibrated against.
type Config struct {
	// AcceptanceFloor is the score an amount candidate must strictly exceed
	// to be selected.
	AcceptanceFloor int
	// ConfidenceFloor is the category score below which brand overrides are
	// consulted.
	ConfidenceFloor int
}

// DefaultConfig returns the long-standing thresholds.
func DefaultConfig() Config {
	return Config{
		AcceptanceFloor: amount.DefaultAcceptanceFloor,
		ConfidenceFloor: classify.DefaultConfidenceFloor,
	}
}

// Report is the full output of one interpretation run: the result plus the
// intermediate evidence, for debugging and verbose CLI output.
type Report struct {
	Result     model.ClassificationResult
	Candidates []model.AmountCandidate // ranked, best first
	Scores     []model.CategoryScore
	Confidence int
}

// Engine turns raw OCR text into a structured expense guess. It performs no
// I/O, holds no state across calls, and is safe for concurrent use.
type Engine struct {
	classifier *classify.Classifier
	cfg        Config
}

// New creates an engine with the given thresholds.
func New(cfg Config) *Engine {
	return &Engine{
		classifier: classify.New(cfg.ConfidenceFloor),
		cfg:        cfg,
	}
}

// Classify runs the full pipeline over one receipt's OCR text. It is total:
// empty or garbage input degrades to amount zero, category bills and the
// placeholder note rather than an error.
func (e *Engine) Classify(rawText string) model.ClassificationResult {
	return e.Inspect(rawText).Result
}

// Inspect runs the pipeline and additionally returns the ranked amount
// candidates and per-category scores.
func (e *Engine) Inspect(rawText string) Report {
	text := normalize.RepairDigits(rawText)
	lines := normalize.Segment(text)

	var candidates []model.AmountCandidate
	for i, line := range lines {
		prev := ""
		if i > 0 {
			prev = strings.ToLower(lines[i-1].Text)
		}
		candidates = append(candidates, amount.ExtractDigits(line, prev)...)
		if cand, ok := amount.ExtractWords(line, prev); ok {
			candidates = append(candidates, cand)
		}
	}

	ranked := amount.Rank(candidates)
	value := amount.Select(ranked, e.cfg.AcceptanceFloor)

	scored := e.classifier.Classify(text)
	note := classify.DeriveNote(text, lines, scored)

	slog.Debug("receipt interpreted",
		"lines", len(lines),
		"candidates", len(ranked),
		"amount", value.String(),
		"category", scored.Category.String(),
		"category_score", scored.Score,
		"note", note,
	)

	return Report{
		Result: model.ClassificationResult{
			Amount:   value,
			Category: scored.Category,
			Note:     note,
		},
		Candidates: ranked,
		Scores:     scored.Scores,
		Confidence: scored.Score,
	}
}
