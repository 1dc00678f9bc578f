package model

// Article represents one parsed legal provision from a source document.
// Created once by a document source and never mutated afterward.
type Article struct {
	SourceFile string   `json:"source_file"`       // File the article was parsed from
	ArticleNo  string   `json:"article_no"`        // Canonical identifier, e.g. "第12条"
	Title      string   `json:"title,omitempty"`   // Optional short title from the heading line
	Text       string   `json:"text"`              // Full concatenated article body
	Clauses    []string `json:"clauses,omitempty"` // Best-effort 款/项 sub-unit split
}

// Eligible reports whether the article can be sampled for question
// generation. Articles without an identifier or body are never sampled.
func (a Article) Eligible() bool {
	return a.ArticleNo != "" && a.Text != ""
}

// EntityBundle holds entities derived from one article's text.
// It is recomputed on demand and must be deterministic for identical input.
type EntityBundle struct {
	Numbers   []string `json:"numbers"`   // All digit runs, in occurrence order
	Dates     []string `json:"dates"`     // Reassembled <year>年<month>月<day>日 matches
	Terms     []string `json:"terms"`     // Legal-modal vocabulary hits, in vocabulary order
	Nouns     []string `json:"nouns"`     // Heuristic keyword candidates
	Sentences []string `json:"sentences"` // Sentence split of the normalized text
}
