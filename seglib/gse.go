package seglib

import (
	"fmt"

	"github.com/go-ego/gse"
)

type gseSegmenter struct {
	seg *gse.Segmenter
	hmm bool
}

// NewGse loads the embedded simplified Chinese dictionary, adds vocab on top
// of it and recomputes the token weights once. Tokens keep the case of the
// input; case folding is left to stringlib.Normalizer.
func NewGse(vocab []Entry, opts Options) (Segmenter, error) {
	gse.ToLower = false
	seg := new(gse.Segmenter)
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, fmt.Errorf("gse: load dictionary: %w", err)
	}

	for _, e := range vocab {
		freq := e.Freq
		if freq <= 0 {
			freq = DefaultFreq
		}
		var err error
		if e.Pos != "" {
			err = seg.AddToken(e.Word, freq, e.Pos)
		} else {
			err = seg.AddToken(e.Word, freq)
		}
		if err != nil {
			return nil, fmt.Errorf("gse: add %q: %w", e.Word, err)
		}
	}
	if len(vocab) > 0 {
		seg.CalcToken()
	}

	return &gseSegmenter{seg: seg, hmm: opts.HMM}, nil
}

func (s *gseSegmenter) Cut(sentence string) []string {
	if sentence == "" {
		return nil
	}
	return s.seg.Cut(sentence, s.hmm)
}
