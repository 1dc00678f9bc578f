package source

import "github.com/553059210/Exam-gen/internal/model"

// SampleArticles returns two fabricated articles so a run with no input
// documents can still produce a reviewable exam.
func SampleArticles() []model.Article {
	return []model.Article{
		{
			SourceFile: "sample.docx",
			ArticleNo:  "第1条",
			Title:      "总则",
			Text:       "公民依法享有权利并履行义务。不得侵犯他人合法权益。违反规定的，应当承担相应责任。",
			Clauses: []string{
				"公民依法享有权利并履行义务。",
				"不得侵犯他人合法权益。",
				"违反规定的，应当承担相应责任。",
			},
		},
		{
			SourceFile: "sample.docx",
			ArticleNo:  "第2条",
			Title:      "管理",
			Text:       "行政机关可以依照法定权限和程序实施行政管理。应当公开、公正、公平。",
			Clauses: []string{
				"行政机关可以依照法定权限和程序实施行政管理。",
				"应当公开、公正、公平。",
			},
		},
	}
}
