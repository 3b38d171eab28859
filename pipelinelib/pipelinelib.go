// Package pipelinelib runs the word frequency passes of one report: the
// global table, then related words of the top-ranked words, then related
// words of the configured words.
package pipelinelib

import (
	"io"

	"go.uber.org/zap"

	"goWordFreq/configlib"
	"goWordFreq/corpuslib"
	"goWordFreq/freqlib"
	"goWordFreq/reportlib"
	"goWordFreq/seglib"
)

// Sheet names
const (
	AllSheet     = "ALL"
	TopPrefix    = "top_"
	SelectPrefix = "select_"
)

// Sink receives one table per pass
type Sink interface {
	AddSheet(name string, table freqlib.Table) error
}

// Pipeline holds everything a run needs. Build it with New; it is not modified afterwards.
type Pipeline struct {
	settings *configlib.Settings
	seg      seglib.Segmenter
	filter   freqlib.Filter
	logger   *zap.Logger
	preview  io.Writer
}

// New prepares a pipeline. Filter entries go through the same normalization
// as tokens. preview, when non-nil, receives a console table of the top words.
func New(settings *configlib.Settings, seg seglib.Segmenter, filter map[string]struct{}, logger *zap.Logger, preview io.Writer) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	norm := make(freqlib.Filter, len(filter))
	for w := range filter {
		norm[settings.Normalize.Word(w)] = struct{}{}
	}
	return &Pipeline{
		settings: settings,
		seg:      seg,
		filter:   norm,
		logger:   logger,
		preview:  preview,
	}
}

// BuildSegmenter constructs the configured backend with the user vocabulary
// registered, memoized when cache_tokens is on.
func BuildSegmenter(settings *configlib.Settings, vocab []seglib.Entry) (seglib.Segmenter, error) {
	seg, err := seglib.New(settings.Segmenter, vocab, seglib.Options{HMM: settings.HMM})
	if err != nil {
		return nil, err
	}
	if settings.CacheTokens {
		seg = seglib.NewCached(seg)
	}
	return seg, nil
}

// Run tokenizes sentences once and hands every table to sink. It returns the global table.
func (p *Pipeline) Run(sentences []corpuslib.Sentence, sink Sink) (freqlib.Table, error) {
	p.logger.Info("segmenting", zap.Int("entries", len(sentences)))
	corpus := corpuslib.Tokenize(sentences, p.seg, p.settings.Normalize)
	if c, ok := p.seg.(*seglib.Cached); ok {
		hits, misses := c.Stats()
		p.logger.Debug("segmentation cache", zap.Int("hits", hits), zap.Int("misses", misses))
	}

	p.logger.Info("counting word frequency", zap.Int("tokens", corpus.NumTokens()))
	all := freqlib.Global(corpus, p.filter)
	if err := sink.AddSheet(AllSheet, all); err != nil {
		return nil, err
	}
	if p.preview != nil {
		reportlib.Preview(p.preview, all, p.settings.PreviewRows)
	}

	related := make(map[string]freqlib.Table)
	relatedOf := func(word string) freqlib.Table {
		if t, ok := related[word]; ok {
			return t
		}
		p.logger.Info("counting related word frequency", zap.String("word", word))
		t := freqlib.Related(corpus, word, p.filter)
		related[word] = t
		return t
	}

	top := all.Top(p.settings.RelatedTop)
	for _, word := range top {
		if err := sink.AddSheet(TopPrefix+word, relatedOf(word)); err != nil {
			return nil, err
		}
	}

	for _, word := range p.settings.RelatedWords {
		word = p.settings.Normalize.Word(word)
		if p.settings.DedupeRelated && contains(top, word) {
			p.logger.Info("skipping word already reported", zap.String("word", word))
			continue
		}
		if err := sink.AddSheet(SelectPrefix+word, relatedOf(word)); err != nil {
			return nil, err
		}
	}

	return all, nil
}

func contains(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
