package synth

import (
	"fmt"

	"github.com/553059210/Exam-gen/internal/model"
)

// ShortAnswer generates up to count 简答题, one per distinct article
// number in first-seen order. The verbatim article text is the answer,
// kept as an opaque grading reference.
func (s *Synthesizer) ShortAnswer(articles []model.Article, count int) []model.Question {
	var results []model.Question
	taken := make(map[string]bool)

	for _, art := range articles {
		if len(results) >= count {
			break
		}
		if taken[art.ArticleNo] {
			continue
		}
		taken[art.ArticleNo] = true

		results = append(results, model.Question{
			Type:   model.TypeShort,
			Text:   fmt.Sprintf("简述%s的主要内容或立法目的。", art.ArticleNo),
			Answer: art.Text,
			Source: model.SourceRef{File: art.SourceFile, ArticleNo: art.ArticleNo},
		})
	}
	return results
}
