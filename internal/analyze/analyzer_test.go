package analyze

import (
	"reflect"
	"testing"

	"github.com/553059210/Exam-gen/internal/cache"
	"github.com/553059210/Exam-gen/internal/model"
)

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("  第1条 　 公民\t依法 享有权利。\n\n")
	want := "第1条 公民 依法 享有权利。"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"  ",
		"公民　应当  遵守\n法律。",
		"already normalized text",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSplitSentences_RetainsPunctuation(t *testing.T) {
	got := SplitSentences("公民应当遵守法律。禁止滥用权利！程序如何？依法办理；完毕")
	want := []string{"公民应当遵守法律。", "禁止滥用权利！", "程序如何？", "依法办理；", "完毕"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences() = %v, want %v", got, want)
	}
}

func TestSplitSentences_DropsEmptyFragments(t *testing.T) {
	got := SplitSentences("。。第一句。  。")
	want := []string{"。", "。", "第一句。", "。"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences() = %v, want %v", got, want)
	}

	if res := SplitSentences(""); len(res) != 0 {
		t.Errorf("Expected no sentences for empty input, got %v", res)
	}
	if res := SplitSentences("   "); len(res) != 0 {
		t.Errorf("Expected no sentences for blank input, got %v", res)
	}
}

func TestAnalyzer_Extract_Entities(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	bundle := a.Extract("自2020年1月1日起施行。罚款不超过500元，应当于30日内缴纳。不得拖延。")

	wantNumbers := []string{"2020", "1", "1", "500", "30"}
	if !reflect.DeepEqual(bundle.Numbers, wantNumbers) {
		t.Errorf("Numbers = %v, want %v", bundle.Numbers, wantNumbers)
	}

	wantDates := []string{"2020年1月1日"}
	if !reflect.DeepEqual(bundle.Dates, wantDates) {
		t.Errorf("Dates = %v, want %v", bundle.Dates, wantDates)
	}

	// Terms come back in vocabulary order, not occurrence order:
	// 不得 precedes 应当 in KeyTerms even though 应当 occurs first.
	wantTerms := []string{"不得", "应当", "罚款"}
	if !reflect.DeepEqual(bundle.Terms, wantTerms) {
		t.Errorf("Terms = %v, want %v", bundle.Terms, wantTerms)
	}

	if len(bundle.Sentences) != 3 {
		t.Errorf("Expected 3 sentences, got %d: %v", len(bundle.Sentences), bundle.Sentences)
	}
	if len(bundle.Nouns) == 0 {
		t.Error("Expected heuristic noun candidates, got none")
	}
}

func TestAnalyzer_Extract_MalformedInputNeverFails(t *testing.T) {
	a := NewAnalyzer(nil, nil)

	for _, in := range []string{"", "   ", "\x00\xff\xfe", "。。。"} {
		bundle := a.Extract(in)
		if bundle.Numbers == nil && bundle.Dates == nil && bundle.Terms == nil &&
			bundle.Nouns == nil && bundle.Sentences == nil {
			continue // all-empty is the expected degradation
		}
	}
}

func TestAnalyzer_Extract_CachedResultMatchesFresh(t *testing.T) {
	text := "行政机关应当于2021年6月1日前完成备案。"
	cached := NewAnalyzer(nil, cache.NewMemoryCache(0, 0))
	fresh := NewAnalyzer(nil, nil)

	first := cached.Extract(text)
	second := cached.Extract(text) // served from cache
	direct := fresh.Extract(text)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Cached extraction differs from first: %v vs %v", second, first)
	}
	if !reflect.DeepEqual(first, direct) {
		t.Errorf("Cached extraction differs from uncached: %v vs %v", first, direct)
	}
}

func TestPickKeywords_DedupAndTruncate(t *testing.T) {
	bundle := model.EntityBundle{
		Terms: []string{"应当", "不得"},
		Nouns: []string{"应当", "行政机关", "程序", "行政机关", "期限"},
	}

	got := PickKeywords(bundle, 4)
	want := []string{"应当", "不得", "行政机关", "程序"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PickKeywords() = %v, want %v", got, want)
	}

	if res := PickKeywords(model.EntityBundle{}, 5); len(res) != 0 {
		t.Errorf("Expected no keywords from empty bundle, got %v", res)
	}
}

func TestHeuristicExtractor_Nouns(t *testing.T) {
	e := NewHeuristicExtractor()

	nouns := e.Nouns("行政机关实施管理，应当公开、公正。")
	if len(nouns) == 0 {
		t.Fatal("Expected noun candidates")
	}
	for _, n := range nouns {
		if len([]rune(n)) < 2 {
			t.Errorf("Candidate %q shorter than 2 runes", n)
		}
	}

	if res := e.Nouns(""); len(res) != 0 {
		t.Errorf("Expected no candidates for empty input, got %v", res)
	}
}

func TestHeuristicExtractor_Deterministic(t *testing.T) {
	e := NewHeuristicExtractor()
	text := "当事人对行政处罚决定不服的，可以依法申请行政复议或者提起行政诉讼。"

	first := e.Nouns(text)
	second := e.Nouns(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Heuristic extraction not deterministic: %v vs %v", first, second)
	}
}
