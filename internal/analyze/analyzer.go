package analyze

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/553059210/Exam-gen/internal/cache"
	"github.com/553059210/Exam-gen/internal/model"
)

var (
	whitespaceRe = regexp.MustCompile(`[\x{3000}\s]+`)
	numberRe     = regexp.MustCompile(`\d+`)
	dateRe       = regexp.MustCompile(`(\d{4})年(\d{1,2})月(\d{1,2})日`)
)

// KeyTerms is the fixed legal-modal vocabulary. Term extraction reports
// hits in this order, not in occurrence order.
var KeyTerms = []string{
	"不得", "应当", "可以", "必须", "禁止", "批准", "备案", "罚款", "责任", "义务",
}

// sentence terminators: Chinese terminal punctuation and ASCII equivalents
const sentenceTerminators = "。；！？!?;."

// KeywordExtractor produces candidate noun phrases from normalized text.
// Implementations must never fail: on any problem they return an empty
// slice and downstream generation degrades to fewer keyword questions.
type KeywordExtractor interface {
	Name() string
	Nouns(text string) []string
}

// Analyzer derives entity bundles from raw article text. Extraction is
// deterministic, so the optional cache is purely a speedup for repeated
// analysis of the same article within one run.
type Analyzer struct {
	extractor KeywordExtractor
	cache     cache.Cache
}

// NewAnalyzer creates an analyzer with the given extractor. A nil
// extractor falls back to the heuristic one; a nil cache disables
// memoization.
func NewAnalyzer(extractor KeywordExtractor, c cache.Cache) *Analyzer {
	if extractor == nil {
		extractor = NewHeuristicExtractor()
	}
	return &Analyzer{extractor: extractor, cache: c}
}

// Normalize collapses whitespace runs (including full-width space) to a
// single ASCII space and trims the ends. Idempotent.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, " ", " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitSentences splits text on terminal punctuation, retaining the
// punctuation with the preceding sentence and dropping empty fragments.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(sentenceTerminators, r) {
			flush()
		}
	}
	flush()

	return sentences
}

// Extract computes the entity bundle for one article text. It never
// fails: malformed or empty input yields empty entity slices.
func (a *Analyzer) Extract(text string) model.EntityBundle {
	if a.cache != nil {
		if data, ok := a.cache.Get(cache.Key(text)); ok {
			var bundle model.EntityBundle
			if err := json.Unmarshal(data, &bundle); err == nil {
				return bundle
			}
		}
	}

	norm := Normalize(text)

	var dates []string
	for _, m := range dateRe.FindAllStringSubmatch(norm, -1) {
		dates = append(dates, m[1]+"年"+m[2]+"月"+m[3]+"日")
	}

	var terms []string
	for _, t := range KeyTerms {
		if strings.Contains(norm, t) {
			terms = append(terms, t)
		}
	}

	bundle := model.EntityBundle{
		Numbers:   numberRe.FindAllString(norm, -1),
		Dates:     dates,
		Terms:     terms,
		Nouns:     a.extractor.Nouns(norm),
		Sentences: SplitSentences(norm),
	}

	if a.cache != nil {
		if data, err := json.Marshal(bundle); err == nil {
			_ = a.cache.Set(cache.Key(text), data, 0)
		}
	}

	return bundle
}

// PickKeywords concatenates terms then nouns, removes duplicates keeping
// the first occurrence, and truncates to maxK.
func PickKeywords(bundle model.EntityBundle, maxK int) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, kw := range append(append([]string{}, bundle.Terms...), bundle.Nouns...) {
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		keywords = append(keywords, kw)
		if len(keywords) >= maxK {
			break
		}
	}
	return keywords
}
