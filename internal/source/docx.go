package source

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/553059210/Exam-gen/internal/model"
)

// DocxSource parses .docx law documents. A .docx file is a zip archive;
// the paragraph text lives in word/document.xml as w:t runs grouped
// under w:p elements.
type DocxSource struct{}

// NewDocxSource creates a .docx handler
func NewDocxSource() *DocxSource {
	return &DocxSource{}
}

// Name returns the handler name
func (s *DocxSource) Name() string {
	return "docx"
}

// CanHandle reports whether the file is a .docx document
func (s *DocxSource) CanHandle(path string) bool {
	return hasExt(path, ".docx")
}

// Parse extracts articles from one .docx file
func (s *DocxSource) Parse(path string) ([]model.Article, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer reader.Close()

	var document *zip.File
	for _, f := range reader.File {
		if f.Name == "word/document.xml" {
			document = f
			break
		}
	}
	if document == nil {
		return nil, fmt.Errorf("open docx %s: missing word/document.xml", path)
	}

	rc, err := document.Open()
	if err != nil {
		return nil, fmt.Errorf("read document.xml: %w", err)
	}
	defer rc.Close()

	paragraphs, err := docxParagraphs(rc)
	if err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}

	return SegmentArticles(filepath.Base(path), paragraphs), nil
}

// docxParagraphs streams document.xml and collects the text of each w:p
func docxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var paragraphs []string
	var current strings.Builder
	inParagraph := false
	inText := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				current.Reset()
			case "t":
				inText = inParagraph
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if inParagraph {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
				}
				inParagraph = false
			}
		}
	}
	return paragraphs, nil
}
