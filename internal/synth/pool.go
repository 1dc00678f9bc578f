package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/553059210/Exam-gen/internal/analyze"
	"github.com/553059210/Exam-gen/internal/model"
)

// poolKeywordsPerArticle bounds the keywords each article contributes
const poolKeywordsPerArticle = 4

// BuildDistractorPool builds the shared pool of incorrect-framing option
// strings for the choice-based generators: one entry per keyword across
// all candidate articles, deduplicated keeping first-seen order.
func (s *Synthesizer) BuildDistractorPool(articles []model.Article) []string {
	seen := make(map[string]bool)
	var pool []string
	for _, art := range articles {
		bundle := s.analyzer.Extract(art.Text)
		for _, kw := range analyze.PickKeywords(bundle, poolKeywordsPerArticle) {
			entry := fmt.Sprintf("关于“%s”的表述不符合该法条", kw)
			if !seen[entry] {
				seen[entry] = true
				pool = append(pool, entry)
			}
		}
	}
	return pool
}

// SampleDistractors draws n distractors without replacement, excluding
// pool entries that textually contain key. If fewer than n remain after
// filtering, it falls back to the unfiltered pool.
func SampleDistractors(pool []string, key string, n int, rng *rand.Rand) []string {
	candidates := make([]string, 0, len(pool))
	for _, entry := range pool {
		if !strings.Contains(entry, key) {
			candidates = append(candidates, entry)
		}
	}
	if len(candidates) < n {
		candidates = pool
	}
	return sampleStrings(candidates, n, rng)
}
