// Package render produces output documents from an assembled exam.
package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/553059210/Exam-gen/internal/model"
)

const latexHeader = `\documentclass[12pt]{ctexart}
\usepackage[a4paper,margin=2cm]{geometry}
%s
\usepackage{enumitem}
\usepackage{xeCJK}
\setCJKmainfont{Noto Serif CJK SC}

\begin{document}
%s\vspace*{-2em}
\begin{center}
  {\LARGE %s}\\[4pt]
  考试时间：%d分钟 \quad 满分：%d分
\end{center}
\vspace{0.5em}

`

const latexFooter = "\n\\end{document}\n"

// blankRule is the printed form of the fill-blank marker
const blankRule = `\rule{2cm}{0.4pt}`

// LaTeXRenderer renders an exam to a ctexart/exam-zh document pair:
// one plain paper and one with \printanswers enabled.
type LaTeXRenderer struct{}

// NewLaTeXRenderer creates a LaTeX renderer
func NewLaTeXRenderer() *LaTeXRenderer {
	return &LaTeXRenderer{}
}

// WriteFiles writes <prefix>.tex and <prefix>_answers.tex into the
// configured output directory and returns both paths.
func (r *LaTeXRenderer) WriteFiles(exam *model.Exam, cfg *model.Config, outPrefix string) (string, string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	examPath := filepath.Join(cfg.OutputDir, outPrefix+".tex")
	answersPath := filepath.Join(cfg.OutputDir, outPrefix+"_answers.tex")

	if err := os.WriteFile(examPath, []byte(r.Render(exam, cfg, false)), 0o644); err != nil {
		return "", "", fmt.Errorf("write exam tex: %w", err)
	}
	if err := os.WriteFile(answersPath, []byte(r.Render(exam, cfg, true)), 0o644); err != nil {
		return "", "", fmt.Errorf("write answers tex: %w", err)
	}
	return examPath, answersPath, nil
}

// Render produces the full LaTeX document for one exam variant
func (r *LaTeXRenderer) Render(exam *model.Exam, cfg *model.Config, withAnswers bool) string {
	// The plain paper loads exam-zh with answers disabled; the answers
	// paper loads it unrestricted and turns on \printanswers.
	examPkg := `\usepackage[answers=false]{exam-zh}`
	printAnswers := ""
	if withAnswers {
		examPkg = `\usepackage{exam-zh}`
		printAnswers = "\\printanswers\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, latexHeader, examPkg, printAnswers, Escape(cfg.ExamTitle), cfg.ExamTimeMinutes, cfg.TotalPoints())

	r.section(&b, "一、判断题", exam.TrueFalse, func(b *strings.Builder, q model.Question) {
		fmt.Fprintf(b, "\\question %s\n", Escape(q.Text))
		r.answerLine(b, "答案", q.Answer)
	})
	r.section(&b, "二、单选题", exam.Single, func(b *strings.Builder, q model.Question) {
		fmt.Fprintf(b, "\\question %s\n", Escape(q.Text))
		r.choices(b, q.Options)
		r.answerLine(b, "答案", q.Answer)
	})
	r.section(&b, "三、多选题", exam.Multiple, func(b *strings.Builder, q model.Question) {
		fmt.Fprintf(b, "\\question %s\n", Escape(q.Text))
		r.choices(b, q.Options)
		r.answerLine(b, "答案", strings.Join(q.Answers, ","))
	})
	r.section(&b, "四、填空题", exam.Fill, func(b *strings.Builder, q model.Question) {
		fmt.Fprintf(b, "\\question %s\n", FillText(q.Text))
		r.answerLine(b, "答案", q.Answer)
	})
	r.section(&b, "五、简答题", exam.Short, func(b *strings.Builder, q model.Question) {
		fmt.Fprintf(b, "\\question %s\n", Escape(q.Text))
		r.answerLine(b, "要点", q.Answer)
	})

	b.WriteString(latexFooter)
	return b.String()
}

// section writes one numbered question section; empty lists are omitted
func (r *LaTeXRenderer) section(b *strings.Builder, title string, questions []model.Question, render func(*strings.Builder, model.Question)) {
	if len(questions) == 0 {
		return
	}
	fmt.Fprintf(b, "\\section*{%s}\n\\begin{questions}\n", title)
	for _, q := range questions {
		render(b, q)
	}
	b.WriteString("\\end{questions}\n")
}

// choices writes an A./B./C. option list
func (r *LaTeXRenderer) choices(b *strings.Builder, options []string) {
	b.WriteString("\\begin{enumerate}[label=\\Alph*.]\n")
	for _, opt := range options {
		fmt.Fprintf(b, "\\item %s\n", Escape(opt))
	}
	b.WriteString("\\end{enumerate}\n")
}

// answerLine writes the conditionally printed answer block
func (r *LaTeXRenderer) answerLine(b *strings.Builder, label, answer string) {
	fmt.Fprintf(b, "\\ifprintanswers\\par\\textbf{%s：}%s\\fi\n", label, Escape(answer))
}

// FillText escapes a fill-blank question, mapping the neutral blank
// marker to a printed rule. The marker is replaced before escaping so
// the underscores never reach the escaper.
func FillText(text string) string {
	parts := strings.Split(text, model.BlankMarker)
	for i, part := range parts {
		parts[i] = Escape(part)
	}
	return strings.Join(parts, blankRule)
}

var latexReplacer = strings.NewReplacer(
	"\\", `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// Escape performs minimal escaping of LaTeX special characters
func Escape(s string) string {
	return latexReplacer.Replace(s)
}
