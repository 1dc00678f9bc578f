package model

// QuestionType identifies one of the five exam question variants
type QuestionType string

const (
	TypeTrueFalse QuestionType = "true_false" // 判断题
	TypeSingle    QuestionType = "single"     // 单选题
	TypeMultiple  QuestionType = "multiple"   // 多选题
	TypeFill      QuestionType = "fill"       // 填空题
	TypeShort     QuestionType = "short"      // 简答题
)

// BlankMarker is the neutral placeholder inserted by the fill-blank
// generator. Renderers map it to their own markup (e.g. a LaTeX rule);
// the core never embeds output markup in question text.
const BlankMarker = "____"

// SourceRef points a question back at the article it was built from
type SourceRef struct {
	File      string `json:"file"`
	ArticleNo string `json:"article"`
}

// Question is one synthesized exam question. Created once by a generator,
// immutable afterward.
//
// Answer carries the key for true_false (对/错), single (one letter),
// fill (the blanked span) and short (reference text used as a grading
// rubric, not an exact-match key). Answers carries the letter set for
// multiple and is nil for every other type.
type Question struct {
	Type    QuestionType `json:"type"`
	Text    string       `json:"question"`
	Options []string     `json:"options,omitempty"`
	Answer  string       `json:"answer,omitempty"`
	Answers []string     `json:"answers,omitempty"`
	Source  SourceRef    `json:"source"`
}

// Exam maps each question type to its ordered question list.
// Built once per generation run and consumed by renderers.
type Exam struct {
	TrueFalse []Question `json:"true_false"`
	Single    []Question `json:"single"`
	Multiple  []Question `json:"multiple"`
	Fill      []Question `json:"fill"`
	Short     []Question `json:"short"`
}

// Counts returns the number of questions per type
func (e *Exam) Counts() map[QuestionType]int {
	return map[QuestionType]int{
		TypeTrueFalse: len(e.TrueFalse),
		TypeSingle:    len(e.Single),
		TypeMultiple:  len(e.Multiple),
		TypeFill:      len(e.Fill),
		TypeShort:     len(e.Short),
	}
}

// Total returns the total number of questions in the exam
func (e *Exam) Total() int {
	return len(e.TrueFalse) + len(e.Single) + len(e.Multiple) + len(e.Fill) + len(e.Short)
}
