package source

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
)

const lawText = `第1条 总则
公民依法享有权利并履行义务。
不得侵犯他人合法权益。
第2条
行政机关应当公开、公正、公平。
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTextSource_Parse(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "law.txt", lawText)

	src := NewTextSource()
	if !src.CanHandle(path) {
		t.Fatal("TextSource should handle .txt")
	}

	articles, err := src.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	if articles[0].ArticleNo != "第1条" || articles[0].Title != "总则" {
		t.Errorf("First article = %+v", articles[0])
	}
	if articles[0].SourceFile != "law.txt" {
		t.Errorf("SourceFile = %q", articles[0].SourceFile)
	}
	if len(articles[0].Clauses) == 0 {
		t.Error("Expected clause split")
	}
}

func TestHTMLSource_Parse(t *testing.T) {
	dir := t.TempDir()
	page := `<html><head><script>var x = "第9条 假条文";</script></head><body>
	<p>第1条 范围</p>
	<p>本法适用于全部活动。</p>
	<div>第2条</div>
	<div>应当依法管理。</div>
	</body></html>`
	path := writeFile(t, dir, "law.html", page)

	articles, err := NewHTMLSource().Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d: %+v", len(articles), articles)
	}
	if articles[0].ArticleNo != "第1条" || articles[0].Text != "本法适用于全部活动。" {
		t.Errorf("First article = %+v", articles[0])
	}
}

// writeDocx builds a minimal .docx: a zip holding word/document.xml
func writeDocx(t *testing.T, dir, name string, paragraphs []string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create docx: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create document.xml: %v", err)
	}
	content := `<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`
	for _, p := range paragraphs {
		content += `<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`
	}
	content += `</w:body></w:document>`
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write document.xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return path
}

func TestDocxSource_Parse(t *testing.T) {
	dir := t.TempDir()
	path := writeDocx(t, dir, "law.docx", []string{
		"第1条 总则",
		"公民依法享有权利并履行义务。",
		"第2条",
		"应当公开、公正、公平。",
	})

	src := NewDocxSource()
	if !src.CanHandle(path) {
		t.Fatal("DocxSource should handle .docx")
	}

	articles, err := src.Parse(path)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("Expected 2 articles, got %d", len(articles))
	}
	if articles[1].Text != "应当公开、公正、公平。" {
		t.Errorf("Second article text = %q", articles[1].Text)
	}
}

func TestDocxSource_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "broken.docx", "not a zip at all")

	if _, err := NewDocxSource().Parse(path); err == nil {
		t.Error("Expected error for corrupt docx")
	}
}

func TestLoader_LoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b_second.txt", "第3条\n另一部法律的条文。")
	writeFile(t, dir, "a_first.txt", lawText)
	writeFile(t, dir, "broken.docx", "not a zip")
	writeFile(t, dir, "ignored.pdf", "binary stuff")

	loader := NewLoader(2, false)
	articles := loader.LoadDirectory(context.Background(), dir)

	// a_first.txt (2 articles) then b_second.txt (1), broken and
	// unrecognized files skipped.
	if len(articles) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(articles))
	}
	if articles[0].SourceFile != "a_first.txt" || articles[2].SourceFile != "b_second.txt" {
		t.Errorf("Directory order not preserved: %q ... %q", articles[0].SourceFile, articles[2].SourceFile)
	}
}

func TestLoader_MissingDirectory(t *testing.T) {
	loader := NewLoader(1, false)
	if got := loader.LoadDirectory(context.Background(), "/nonexistent/path"); len(got) != 0 {
		t.Errorf("Expected empty result for missing directory, got %d", len(got))
	}
}

func TestLoader_EmptyDirectory(t *testing.T) {
	loader := NewLoader(1, false)
	if got := loader.LoadDirectory(context.Background(), t.TempDir()); len(got) != 0 {
		t.Errorf("Expected empty result for empty directory, got %d", len(got))
	}
}
