// Package freqlib counts tokens and ranks them.
//
// Tables are sorted by descending count; equal counts keep the order in which
// the tokens were first seen. Filtering happens after sorting, so removing a
// word never reorders the others.
package freqlib

import (
	"slices"
	"sort"

	"goWordFreq/corpuslib"
)

// Entry is one ranked token
type Entry struct {
	Word  string
	Count int
}

// Table is a ranked list of distinct tokens
type Table []Entry

// Filter is a set of excluded tokens
type Filter map[string]struct{}

// Has tells whether w is excluded
func (f Filter) Has(w string) bool {
	_, ok := f[w]
	return ok
}

/***************************************************************************************************************
****************************************************************************************************************
* Counter ******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Counter is a multiset remembering first-occurrence order
type Counter struct {
	index  map[string]int
	counts []Entry
	total  int
}

// NewCounter returns an empty Counter
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add counts each token once
func (c *Counter) Add(tokens ...string) {
	for _, t := range tokens {
		i, ok := c.index[t]
		if !ok {
			i = len(c.counts)
			c.index[t] = i
			c.counts = append(c.counts, Entry{Word: t})
		}
		c.counts[i].Count++
		c.total++
	}
}

// Total returns the number of tokens added, duplicates included
func (c *Counter) Total() int {
	return c.total
}

// Len returns the number of distinct tokens
func (c *Counter) Len() int {
	return len(c.counts)
}

// Sorted ranks the counted tokens
func (c *Counter) Sorted() Table {
	t := make(Table, len(c.counts))
	copy(t, c.counts)
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].Count > t[j].Count
	})
	return t
}

/***************************************************************************************************************
****************************************************************************************************************
* Tables *******************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Without drops the filtered words and any of the extra words, keeping order
func (t Table) Without(filter Filter, extra ...string) Table {
	out := make(Table, 0, len(t))
	for _, e := range t {
		if filter.Has(e.Word) || slices.Contains(extra, e.Word) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Top returns the first n words of t, or all of them when t is shorter
func (t Table) Top(n int) []string {
	n = max(0, min(n, len(t)))
	words := make([]string, 0, n)
	for _, e := range t[:n] {
		words = append(words, e.Word)
	}
	return words
}

// Total sums the counts of t
func (t Table) Total() int {
	n := 0
	for _, e := range t {
		n += e.Count
	}
	return n
}

// Global ranks every token of the corpus, then drops the filtered ones
func Global(c *corpuslib.Corpus, filter Filter) Table {
	counter := NewCounter()
	for _, tokens := range c.Tokens {
		counter.Add(tokens...)
	}
	return counter.Sorted().Without(filter)
}

// Related ranks every token of the sentences that contain word, then drops
// the filtered ones and word itself.
func Related(c *corpuslib.Corpus, word string, filter Filter) Table {
	counter := NewCounter()
	for _, tokens := range c.Tokens {
		if slices.Contains(tokens, word) {
			counter.Add(tokens...)
		}
	}
	return counter.Sorted().Without(filter, word)
}
