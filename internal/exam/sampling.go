package exam

import (
	"math/rand"

	"github.com/553059210/Exam-gen/internal/model"
)

// WeightedSample draws k articles with replacement, each article
// weighted by important_weight when its number is in the important set
// and default otherwise. Oversampling compensates for per-article skip
// and dedup losses in the generators. An empty article list or k <= 0
// yields an empty subset, never a failure. If every weight is zero or
// negative the draw degrades to uniform.
func WeightedSample(articles []model.Article, w model.WeightsConfig, k int, rng *rand.Rand) []model.Article {
	if len(articles) == 0 || k <= 0 {
		return nil
	}

	important := w.ImportantSet()
	weights := make([]float64, len(articles))
	total := 0.0
	for i, art := range articles {
		weight := w.Default
		if important[art.ArticleNo] {
			weight = w.ImportantWeight
		}
		if weight < 0 {
			weight = 0
		}
		weights[i] = weight
		total += weight
	}
	if total <= 0 {
		for i := range weights {
			weights[i] = 1
		}
		total = float64(len(weights))
	}

	chosen := make([]model.Article, 0, k)
	for n := 0; n < k; n++ {
		r := rng.Float64() * total
		for i, weight := range weights {
			r -= weight
			if r < 0 || i == len(weights)-1 {
				chosen = append(chosen, articles[i])
				break
			}
		}
	}
	return chosen
}

// shortAnswerCandidates builds the 简答题 candidate list: important
// articles first, padded with the full list up to count when the
// important subset alone cannot cover it. The generator's own article
// dedup removes any repeats the padding introduces.
func shortAnswerCandidates(articles []model.Article, w model.WeightsConfig, count int) []model.Article {
	important := w.ImportantSet()
	var candidates []model.Article
	for _, art := range articles {
		if important[art.ArticleNo] {
			candidates = append(candidates, art)
		}
	}
	if len(candidates) < count {
		candidates = append(candidates, articles...)
		if len(candidates) > count {
			candidates = candidates[:count]
		}
	}
	return candidates
}
