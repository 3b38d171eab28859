// Package seglib splits free-text sentences into word tokens.
//
// Segmentation is a capability boundary: the aggregation code only sees the
// Segmenter interface, and the backends (a dictionary+HMM segmenter, a pure
// dictionary trie, an English word tokenizer) are picked by name.
package seglib

import (
	"fmt"
	"sort"
)

// DefaultFreq is the frequency given to user vocabulary entries that carry none
const DefaultFreq = 100000

// Segmenter cuts a sentence into tokens. The tokens cover the sentence in
// order; an empty sentence yields no tokens.
type Segmenter interface {
	Cut(sentence string) []string
}

// Entry is one user vocabulary line: word [freq] [pos]
type Entry struct {
	Word string
	Freq float64
	Pos  string
}

// Options tune the backends. Fields a backend does not understand are ignored.
type Options struct {
	// HMM enables discovery of words missing from the dictionary
	HMM bool
}

// Builder constructs a backend with the user vocabulary already registered
type Builder func(vocab []Entry, opts Options) (Segmenter, error)

var builders = map[string]Builder{
	"gse":        NewGse,
	"lexicon":    NewLexicon,
	"prose":      NewProse,
	"whitespace": func([]Entry, Options) (Segmenter, error) { return Whitespace{}, nil },
}

// New builds the backend registered under name
func New(name string, vocab []Entry, opts Options) (Segmenter, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown segmenter: %q (known: %v)", name, Names())
	}
	return b(vocab, opts)
}

// Names returns the registered backend names, sorted
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
