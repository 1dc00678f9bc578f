package synth

import (
	"math/rand"
	"strings"

	"github.com/553059210/Exam-gen/internal/analyze"
	"github.com/553059210/Exam-gen/internal/model"
)

// FillBlank generates up to count 填空题. The blank target is drawn
// from the article's terms and numbers; the question text is a random
// sentence containing the target, falling back to the full article text
// so the marker is never inserted into a span lacking the target.
func (s *Synthesizer) FillBlank(articles []model.Article, count int, rng *rand.Rand) []model.Question {
	var results []model.Question

	for _, art := range articles {
		if len(results) >= count {
			break
		}
		bundle := s.analyzer.Extract(art.Text)
		candidates := append(append([]string{}, bundle.Terms...), bundle.Numbers...)
		if len(candidates) == 0 {
			continue
		}

		// Candidates were extracted from the normalized text, so the
		// fallback must be normalized too or the target may not occur.
		full := analyze.Normalize(art.Text)
		target := choice(candidates, rng)
		sent := full
		if len(bundle.Sentences) > 0 {
			sent = choice(bundle.Sentences, rng)
		}
		if !strings.Contains(sent, target) {
			sent = full
		}
		if !strings.Contains(sent, target) {
			continue
		}

		results = append(results, model.Question{
			Type:   model.TypeFill,
			Text:   strings.Replace(sent, target, model.BlankMarker, 1),
			Answer: target,
			Source: model.SourceRef{File: art.SourceFile, ArticleNo: art.ArticleNo},
		})
	}
	return results
}
