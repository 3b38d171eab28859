package seglib

import (
	"strings"

	"github.com/jdkato/prose/v2"
)

type proseSegmenter struct{}

// NewProse tokenizes English text. The vocabulary does not apply to it.
func NewProse([]Entry, Options) (Segmenter, error) {
	return proseSegmenter{}, nil
}

func (proseSegmenter) Cut(sentence string) []string {
	if strings.TrimSpace(sentence) == "" {
		return nil
	}
	doc, err := prose.NewDocument(sentence,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return strings.Fields(sentence)
	}

	toks := doc.Tokens()
	words := make([]string, 0, len(toks))
	for _, tok := range toks {
		words = append(words, tok.Text)
	}
	return words
}
