package exam

import (
	"math/rand"
	"testing"

	"github.com/553059210/Exam-gen/internal/model"
)

func sampleLaw() []model.Article {
	return []model.Article{
		{SourceFile: "law.docx", ArticleNo: "第1条", Text: "公民应当遵守法律。"},
		{SourceFile: "law.docx", ArticleNo: "第2条", Text: "禁止滥用权利。"},
		{SourceFile: "law.docx", ArticleNo: "第3条", Text: "违反规定的，处以罚款。"},
	}
}

func TestWeightedSample_EmptyInput(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if got := WeightedSample(nil, model.WeightsConfig{Default: 1}, 10, rng); len(got) != 0 {
		t.Errorf("Expected empty subset for empty input, got %d", len(got))
	}
	if got := WeightedSample(sampleLaw(), model.WeightsConfig{Default: 1}, 0, rng); len(got) != 0 {
		t.Errorf("Expected empty subset for k=0, got %d", len(got))
	}
}

func TestWeightedSample_DrawsWithReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	got := WeightedSample(sampleLaw(), model.WeightsConfig{Default: 1}, 20, rng)
	if len(got) != 20 {
		t.Errorf("Expected 20 draws (with replacement), got %d", len(got))
	}
}

func TestWeightedSample_ZeroDefaultWeightPicksOnlyImportant(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	w := model.WeightsConfig{
		ImportantArticles: []string{"第2条"},
		ImportantWeight:   1,
		Default:           0,
	}
	for _, art := range WeightedSample(sampleLaw(), w, 30, rng) {
		if art.ArticleNo != "第2条" {
			t.Errorf("Sampled %s despite zero default weight", art.ArticleNo)
		}
	}
}

func TestWeightedSample_AllZeroWeightsDegradeToUniform(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	got := WeightedSample(sampleLaw(), model.WeightsConfig{}, 10, rng)
	if len(got) != 10 {
		t.Errorf("Expected uniform fallback to still draw 10, got %d", len(got))
	}
}

func TestShortAnswerCandidates_ImportantFirst(t *testing.T) {
	w := model.WeightsConfig{ImportantArticles: []string{"第3条"}}

	got := shortAnswerCandidates(sampleLaw(), w, 2)
	if len(got) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(got))
	}
	if got[0].ArticleNo != "第3条" {
		t.Errorf("First candidate = %s, want the important 第3条", got[0].ArticleNo)
	}
}

func TestShortAnswerCandidates_ImportantSubsetCovers(t *testing.T) {
	w := model.WeightsConfig{ImportantArticles: []string{"第1条", "第2条"}}

	got := shortAnswerCandidates(sampleLaw(), w, 2)
	if len(got) != 2 {
		t.Fatalf("Expected the important subset untouched, got %d", len(got))
	}
	for _, art := range got {
		if art.ArticleNo == "第3条" {
			t.Errorf("Unimportant article padded in despite full important subset")
		}
	}
}
