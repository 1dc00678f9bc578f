package model

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.ExamTimeMinutes != 120 {
		t.Errorf("ExamTimeMinutes = %d, want 120", cfg.ExamTimeMinutes)
	}
	if cfg.Weights.ImportantWeight <= cfg.Weights.Default {
		t.Error("Important weight should exceed the default weight")
	}
	if cfg.Analysis.Extractor != "heuristic" {
		t.Errorf("Extractor = %q, want heuristic", cfg.Analysis.Extractor)
	}
	if cfg.Counts.TrueFalse == 0 || cfg.Points.TrueFalse == 0 {
		t.Error("Default counts and points must be non-zero")
	}
}

func TestConfig_TotalPoints(t *testing.T) {
	cfg := &Config{
		Counts: CountsConfig{TrueFalse: 10, SingleChoice: 5, MultipleChoice: 2, FillBlank: 4, ShortAnswer: 1},
		Points: PointsConfig{TrueFalse: 1, SingleChoice: 2, MultipleChoice: 3, FillBlank: 2, ShortAnswer: 10},
	}
	if got := cfg.TotalPoints(); got != 10+10+6+8+10 {
		t.Errorf("TotalPoints() = %d, want 44", got)
	}
}

func TestWeightsConfig_ImportantSet(t *testing.T) {
	w := WeightsConfig{ImportantArticles: []string{"第1条", "第3条"}}
	set := w.ImportantSet()

	if !set["第1条"] || !set["第3条"] {
		t.Error("Expected listed articles in the set")
	}
	if set["第2条"] {
		t.Error("Unlisted article reported as important")
	}
}

func TestArticle_Eligible(t *testing.T) {
	tests := []struct {
		art  Article
		want bool
	}{
		{Article{ArticleNo: "第1条", Text: "正文"}, true},
		{Article{ArticleNo: "", Text: "正文"}, false},
		{Article{ArticleNo: "第1条", Text: ""}, false},
	}
	for _, tt := range tests {
		if got := tt.art.Eligible(); got != tt.want {
			t.Errorf("Eligible(%+v) = %v, want %v", tt.art, got, tt.want)
		}
	}
}

func TestExam_CountsAndTotal(t *testing.T) {
	exam := &Exam{
		TrueFalse: []Question{{Type: TypeTrueFalse}},
		Fill:      []Question{{Type: TypeFill}, {Type: TypeFill}},
	}

	counts := exam.Counts()
	if counts[TypeTrueFalse] != 1 || counts[TypeFill] != 2 || counts[TypeShort] != 0 {
		t.Errorf("Counts() = %v", counts)
	}
	if exam.Total() != 3 {
		t.Errorf("Total() = %d, want 3", exam.Total())
	}
}
