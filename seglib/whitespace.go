package seglib

import "strings"

// Whitespace splits on runs of white space. Useful for text that was
// segmented beforehand.
type Whitespace struct{}

// Cut implements Segmenter.
func (Whitespace) Cut(sentence string) []string {
	return strings.Fields(sentence)
}
