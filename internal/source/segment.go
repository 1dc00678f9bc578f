package source

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/553059210/Exam-gen/internal/model"
)

var (
	articleHeadingRe = regexp.MustCompile(`^第[一二三四五六七八九十百千0-9]+条`)
	clauseMarkerRe   = regexp.MustCompile(`第[一二三四五六七八九十0-9]+款|[（(][一二三四五六七八九十0-9]+[)）]`)
)

// titleTrimCutset is stripped from heading remainders before treating
// them as article titles
const titleTrimCutset = " 　：:.-"

// maxTitleRunes: a heading remainder longer than this is body text that
// happens to share the heading paragraph, not a title
const maxTitleRunes = 50

// SegmentArticles groups document paragraphs into articles. A paragraph
// matching 第X条 opens a new article; preface text before the first
// heading is dropped.
func SegmentArticles(sourceFile string, paragraphs []string) []model.Article {
	var articles []model.Article
	var currentNo, currentTitle string
	var buffer []string

	flush := func() {
		if currentNo == "" {
			return
		}
		text := strings.TrimSpace(strings.Join(buffer, "\n"))
		articles = append(articles, model.Article{
			SourceFile: sourceFile,
			ArticleNo:  currentNo,
			Title:      currentTitle,
			Text:       text,
			Clauses:    SplitClauses(text),
		})
		currentNo, currentTitle = "", ""
		buffer = nil
	}

	for _, para := range paragraphs {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		if m := articleHeadingRe.FindString(para); m != "" {
			flush()
			currentNo = m
			rest := strings.Trim(para[len(m):], titleTrimCutset)
			if rest != "" && utf8.RuneCountInString(rest) > maxTitleRunes {
				buffer = append(buffer, para)
			} else {
				currentTitle = rest
			}
			continue
		}
		if currentNo == "" {
			continue
		}
		buffer = append(buffer, para)
	}
	flush()

	return articles
}

// SplitClauses splits article text into 款/项 sub-units: lines first,
// then each line is cut before every clause marker.
func SplitClauses(text string) []string {
	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		prev := 0
		for _, loc := range clauseMarkerRe.FindAllStringIndex(line, -1) {
			if part := strings.TrimSpace(line[prev:loc[0]]); part != "" {
				chunks = append(chunks, part)
			}
			prev = loc[0]
		}
		if part := strings.TrimSpace(line[prev:]); part != "" {
			chunks = append(chunks, part)
		}
	}
	if len(chunks) == 0 && text != "" {
		return []string{text}
	}
	return chunks
}
