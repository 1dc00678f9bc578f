package synth

import (
	"math/rand"
	"unicode/utf8"

	"github.com/553059210/Exam-gen/internal/model"
)

// minSentenceRunes is the shortest sentence usable as a statement
const minSentenceRunes = 6

// TrueFalse generates up to count 判断题. Each retained sentence gets a
// coin flip: heads negates the statement and labels it 错, tails keeps
// it verbatim and labels it 对. A global per-run dedup set guarantees no
// sentence is used twice.
func (s *Synthesizer) TrueFalse(articles []model.Article, count int, rng *rand.Rand) []model.Question {
	var results []model.Question
	seen := make(map[string]bool)

	for _, art := range articles {
		if len(results) >= count {
			break
		}
		bundle := s.analyzer.Extract(art.Text)
		for _, sent := range bundle.Sentences {
			if len(results) >= count {
				break
			}
			if seen[sent] || utf8.RuneCountInString(sent) < minSentenceRunes {
				continue
			}
			seen[sent] = true

			flip := rng.Float64() < 0.5
			text := sent
			answer := "对"
			if flip {
				text = NegateStatement(sent)
				answer = "错"
			}

			results = append(results, model.Question{
				Type:    model.TypeTrueFalse,
				Text:    text,
				Options: []string{"对", "错"},
				Answer:  answer,
				Source:  model.SourceRef{File: art.SourceFile, ArticleNo: art.ArticleNo},
			})
		}
	}
	return results
}
