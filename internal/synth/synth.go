// Package synth turns analyzed legal articles into exam questions.
//
// Each generator consumes candidate articles in order, skips articles
// that lack the entities its question type needs, and stops once the
// target count is reached or the candidates run out. Falling short of
// the target is a valid outcome, never an error. All randomness comes
// from the single *rand.Rand threaded through every call, so a fixed
// seed reproduces the exam byte for byte.
package synth

import (
	"math/rand"

	"github.com/553059210/Exam-gen/internal/analyze"
)

// Synthesizer generates exam questions of one type per call, sharing a
// single analyzer (and its memoization) across all generators in a run.
type Synthesizer struct {
	analyzer *analyze.Analyzer
}

// NewSynthesizer creates a synthesizer backed by the given analyzer
func NewSynthesizer(analyzer *analyze.Analyzer) *Synthesizer {
	return &Synthesizer{analyzer: analyzer}
}

// letter converts an option index to its exam letter (A, B, C, ...)
func letter(i int) string {
	return string(rune('A' + i))
}

// sampleStrings draws n distinct elements from pool without replacement.
// If the pool is smaller than n, every element is returned (in drawn
// order). The pool itself is never reordered.
func sampleStrings(pool []string, n int, rng *rand.Rand) []string {
	if n > len(pool) {
		n = len(pool)
	}
	if n <= 0 {
		return nil
	}
	perm := rng.Perm(len(pool))
	out := make([]string, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, pool[idx])
	}
	return out
}

// choice picks one element uniformly. Callers guarantee a non-empty slice.
func choice(items []string, rng *rand.Rand) string {
	return items[rng.Intn(len(items))]
}

// headRunes returns the first n runes of s
func headRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
