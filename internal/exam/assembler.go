// Package exam assembles the full question battery from parsed articles.
package exam

import (
	"math/rand"

	"github.com/553059210/Exam-gen/internal/model"
	"github.com/553059210/Exam-gen/internal/synth"
)

// Assembler orchestrates weighted article sampling and the five
// question generators.
type Assembler struct {
	synth *synth.Synthesizer
}

// NewAssembler creates an assembler over the given synthesizer
func NewAssembler(s *synth.Synthesizer) *Assembler {
	return &Assembler{synth: s}
}

// Assemble builds the complete exam. The result is deterministic for a
// fixed (articles, config, seed) triple: sampling and generation consume
// the single rng in a fixed call order, so identical inputs reproduce
// identical exams. Sparse input yields short or empty question lists,
// never an error.
func (a *Assembler) Assemble(articles []model.Article, cfg *model.Config, rng *rand.Rand) *model.Exam {
	eligible := make([]model.Article, 0, len(articles))
	for _, art := range articles {
		if art.Eligible() {
			eligible = append(eligible, art)
		}
	}

	counts := cfg.Counts
	weights := cfg.Weights

	// Sampling order is part of the determinism contract: four draws,
	// then the generators, all against the same rng.
	tfArts := WeightedSample(eligible, weights, counts.TrueFalse*2, rng)
	scArts := WeightedSample(eligible, weights, counts.SingleChoice*2, rng)
	mcArts := WeightedSample(eligible, weights, counts.MultipleChoice*2, rng)
	fbArts := WeightedSample(eligible, weights, counts.FillBlank*2, rng)
	shortArts := shortAnswerCandidates(eligible, weights, counts.ShortAnswer)

	return &model.Exam{
		TrueFalse: a.synth.TrueFalse(tfArts, counts.TrueFalse, rng),
		Single:    a.synth.SingleChoice(scArts, counts.SingleChoice, rng),
		Multiple:  a.synth.MultipleChoice(mcArts, counts.MultipleChoice, rng),
		Fill:      a.synth.FillBlank(fbArts, counts.FillBlank, rng),
		Short:     a.synth.ShortAnswer(shortArts, counts.ShortAnswer),
	}
}
