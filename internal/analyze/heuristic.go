package analyze

import (
	"strings"
	"unicode"
)

// fragmentDelims are the punctuation marks that bound candidate phrases
const fragmentDelims = "，、。；：？！,.!?;:（）()「」『』“”\"'《》〈〉—-"

const (
	maxFragmentRunes = 6 // fragments up to this length are kept whole
	windowRunes      = 4 // longer fragments are chunked to this length
)

// HeuristicExtractor is the default keyword extractor. Without a real
// segmentation model the best we can do is punctuation-delimited
// fragments, chunking long clauses into fixed-length windows. The
// result is a set of plausible keyword candidates, not true nouns.
type HeuristicExtractor struct{}

// NewHeuristicExtractor creates the default heuristic extractor
func NewHeuristicExtractor() *HeuristicExtractor {
	return &HeuristicExtractor{}
}

// Name returns the extractor name
func (e *HeuristicExtractor) Name() string {
	return "heuristic"
}

// Nouns returns candidate phrases of length >= 2 runes
func (e *HeuristicExtractor) Nouns(text string) []string {
	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(fragmentDelims, r)
	})

	var nouns []string
	for _, frag := range fragments {
		runes := []rune(frag)
		if len(runes) < 2 {
			continue
		}
		if len(runes) <= maxFragmentRunes {
			nouns = append(nouns, frag)
			continue
		}
		for i := 0; i < len(runes); i += windowRunes {
			end := i + windowRunes
			if end > len(runes) {
				end = len(runes)
			}
			if end-i >= 2 {
				nouns = append(nouns, string(runes[i:end]))
			}
		}
	}
	return nouns
}
