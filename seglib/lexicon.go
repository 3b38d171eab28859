package seglib

import (
	"unicode"
	"unicode/utf8"
)

// Lexicon segments by forward longest match against the user vocabulary only.
// Text with no dictionary match is emitted rune by rune, except that runs of
// ASCII letters and digits stay together.
type Lexicon struct {
	trie *prefixTrie
}

// NewLexicon builds a Lexicon from vocab. Frequencies are kept but only the
// word boundaries matter for matching.
func NewLexicon(vocab []Entry, _ Options) (Segmenter, error) {
	l := &Lexicon{trie: newPrefixTrie()}
	for _, e := range vocab {
		freq := e.Freq
		if freq <= 0 {
			freq = DefaultFreq
		}
		l.trie.add(e.Word, freq)
	}
	return l, nil
}

// NumEntries returns the number of distinct words in the lexicon
func (l *Lexicon) NumEntries() int {
	return l.trie.entries
}

// Cut implements Segmenter.
func (l *Lexicon) Cut(sentence string) []string {
	var words []string
	offset := 0
	for offset < len(sentence) {
		if end := l.longestMatch(sentence, offset); end > offset {
			words = append(words, sentence[offset:end])
			offset = end
			continue
		}
		end := nonLexicalEnd(sentence, offset)
		words = append(words, sentence[offset:end])
		offset = end
	}
	return words
}

// longestMatch returns the end offset of the longest entry starting at
// offset, or offset when none does.
func (l *Lexicon) longestMatch(text string, offset int) int {
	best := offset
	end := offset
	for end < len(text) {
		_, width := utf8.DecodeRuneInString(text[end:])
		end += width
		_, isPrefix, exists := l.trie.lookup(text[offset:end])
		if exists {
			best = end
		}
		if !isPrefix {
			break
		}
	}
	return best
}

func nonLexicalEnd(text string, offset int) int {
	r, width := utf8.DecodeRuneInString(text[offset:])
	end := offset + width
	if !isASCIIWordRune(r) {
		return end
	}
	for end < len(text) {
		r, width = utf8.DecodeRuneInString(text[end:])
		if !isASCIIWordRune(r) {
			break
		}
		end += width
	}
	return end
}

func isASCIIWordRune(r rune) bool {
	return r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
