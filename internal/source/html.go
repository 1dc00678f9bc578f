package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/553059210/Exam-gen/internal/model"
	"golang.org/x/net/html"
)

// blockTags are the elements treated as paragraph boundaries
var blockTags = map[string]bool{
	"p": true, "div": true, "li": true, "section": true, "article": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"br": true, "tr": true,
}

// HTMLSource parses law pages saved as .html files
type HTMLSource struct{}

// NewHTMLSource creates an .html handler
func NewHTMLSource() *HTMLSource {
	return &HTMLSource{}
}

// Name returns the handler name
func (s *HTMLSource) Name() string {
	return "html"
}

// CanHandle reports whether the file is an HTML document
func (s *HTMLSource) CanHandle(path string) bool {
	return hasExt(path, ".html", ".htm")
}

// Parse extracts articles from one HTML file
func (s *HTMLSource) Parse(path string) ([]model.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read html file: %w", err)
	}

	doc, err := html.Parse(strings.NewReader(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	return SegmentArticles(filepath.Base(path), visibleParagraphs(doc)), nil
}

// visibleParagraphs walks the DOM collecting text nodes, flushing the
// accumulated run at every block element boundary. Script, style and
// other non-content subtrees are skipped.
func visibleParagraphs(doc *html.Node) []string {
	var paragraphs []string
	var buf strings.Builder

	flush := func() {
		if text := strings.TrimSpace(buf.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		buf.Reset()
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe", "head":
				return
			}
			if blockTags[n.Data] {
				flush()
			}
		}
		if n.Type == html.TextNode {
			if text := strings.TrimSpace(n.Data); text != "" {
				buf.WriteString(text)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockTags[n.Data] {
			flush()
		}
	}

	walk(doc)
	flush()
	return paragraphs
}
