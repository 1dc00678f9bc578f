package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/553059210/Exam-gen/internal/analyze"
	"github.com/553059210/Exam-gen/internal/model"
)

const (
	singleKeywords   = 5 // keyword budget per article for 单选题
	multipleKeywords = 6 // keyword budget per article for 多选题
	optionTotal      = 5 // target option count for 多选题
	stemFallback     = 50 // stem length in runes when an article has no sentences
)

// SingleChoice generates up to count 单选题: one correct option built
// around a random keyword plus three distractors from the shared pool,
// shuffled, with the answer letter tracking the correct option's
// post-shuffle position. Articles without keywords are skipped, as are
// articles whose question text duplicates an earlier one this run.
func (s *Synthesizer) SingleChoice(articles []model.Article, count int, rng *rand.Rand) []model.Question {
	var results []model.Question
	seen := make(map[string]bool)
	pool := s.BuildDistractorPool(articles)

	for _, art := range articles {
		if len(results) >= count {
			break
		}
		bundle := s.analyzer.Extract(art.Text)
		keywords := analyze.PickKeywords(bundle, singleKeywords)
		if len(keywords) == 0 {
			continue
		}

		stem := headRunes(art.Text, stemFallback)
		if len(bundle.Sentences) > 0 {
			stem = choice(bundle.Sentences, rng)
		}
		key := choice(keywords, rng)
		correct := fmt.Sprintf("关于“%s”的表述符合该法条", key)

		options := append([]string{correct}, SampleDistractors(pool, key, 3, rng)...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		answer := ""
		for i, opt := range options {
			if opt == correct {
				answer = letter(i)
				break
			}
		}

		text := fmt.Sprintf("依据%s，下列哪一项是正确的？\n%s", art.ArticleNo, stem)
		if seen[text] {
			continue
		}
		seen[text] = true

		results = append(results, model.Question{
			Type:    model.TypeSingle,
			Text:    text,
			Options: options,
			Answer:  answer,
			Source:  model.SourceRef{File: art.SourceFile, ArticleNo: art.ArticleNo},
		})
	}
	return results
}

// MultipleChoice generates up to count 多选题: k correct options built
// from k distinct keywords (k random in [2, min(4, keywords)]), padded
// to five options with distractors, shuffled. The answer letter set is
// recomputed after the shuffle by option-text membership, never by
// pre-shuffle index. Articles with fewer than two keywords are skipped.
func (s *Synthesizer) MultipleChoice(articles []model.Article, count int, rng *rand.Rand) []model.Question {
	var results []model.Question
	pool := s.BuildDistractorPool(articles)

	for _, art := range articles {
		if len(results) >= count {
			break
		}
		bundle := s.analyzer.Extract(art.Text)
		keywords := analyze.PickKeywords(bundle, multipleKeywords)
		if len(keywords) < 2 {
			continue
		}

		stem := headRunes(art.Text, stemFallback)
		if len(bundle.Sentences) > 0 {
			stem = choice(bundle.Sentences, rng)
		}

		maxCorrect := len(keywords)
		if maxCorrect > 4 {
			maxCorrect = 4
		}
		numCorrect := 2 + rng.Intn(maxCorrect-1)

		correctSet := make(map[string]bool, numCorrect)
		var options []string
		for _, kw := range sampleStrings(keywords, numCorrect, rng) {
			opt := fmt.Sprintf("与“%s”相关的规定符合该法条", kw)
			correctSet[opt] = true
			options = append(options, opt)
		}
		exclusionKey := strings.Join(keywords, "|")
		options = append(options, SampleDistractors(pool, exclusionKey, optionTotal-numCorrect, rng)...)
		rng.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})

		var answers []string
		for i, opt := range options {
			if correctSet[opt] {
				answers = append(answers, letter(i))
			}
		}

		results = append(results, model.Question{
			Type:    model.TypeMultiple,
			Text:    fmt.Sprintf("依据%s，下列哪些项是正确的？\n%s", art.ArticleNo, stem),
			Options: options,
			Answers: answers,
			Source:  model.SourceRef{File: art.SourceFile, ArticleNo: art.ArticleNo},
		})
	}
	return results
}
