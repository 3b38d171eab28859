// Package stringlib provides string functions beyond goLang primitives:
// the per-token rewriting applied between segmentation and counting.
package stringlib

import (
	"strconv"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"
	"golang.org/x/text/width"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// IsNumeric tells whether input is a number or not
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// IsBlank tells whether s holds nothing but white space
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsLatin reports whether every letter of s is an ASCII letter and s has at least one
func IsLatin(s string) bool {
	letters := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			if r > unicode.MaxASCII {
				return false
			}
			letters++
		}
	}
	return letters > 0
}

// FoldWidth maps full-width forms (ＣＰＵ，１２) to their narrow equivalents
func FoldWidth(s string) string {
	return width.Fold.String(s)
}

// StemLatin stems English tokens and leaves every other token untouched
func StemLatin(s string) string {
	if !IsLatin(s) {
		return s
	}
	return snowballeng.Stem(s, false)
}

/***************************************************************************************************************
****************************************************************************************************************
* Normalizer ***************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Normalizer rewrites tokens before they are counted. The zero value is the
// identity, which keeps the segmenter output exactly as produced.
type Normalizer struct {
	FoldWidth   bool
	Lowercase   bool
	Stem        bool
	SkipNumeric bool
}

// Enabled reports whether Normalize can change or drop anything
func (n Normalizer) Enabled() bool {
	return n.FoldWidth || n.Lowercase || n.Stem || n.SkipNumeric
}

// Normalize returns the rewritten token and false when the token must be dropped
func (n Normalizer) Normalize(token string) (string, bool) {
	if n.FoldWidth {
		token = FoldWidth(token)
	}
	if n.Lowercase {
		token = strings.ToLower(token)
	}
	if n.Stem {
		token = StemLatin(token)
	}
	if n.SkipNumeric && IsNumeric(strings.TrimSpace(token)) {
		return "", false
	}
	return token, true
}

// Apply normalizes tokens in place and returns the kept prefix
func (n Normalizer) Apply(tokens []string) []string {
	if !n.Enabled() {
		return tokens
	}
	kept := tokens[:0]
	for _, t := range tokens {
		if t, ok := n.Normalize(t); ok {
			kept = append(kept, t)
		}
	}
	return kept
}

// Word normalizes a configured word (filter entry, target word). Words that
// would be dropped as tokens are returned unchanged.
func (n Normalizer) Word(w string) string {
	if out, ok := n.Normalize(w); ok {
		return out
	}
	return w
}
