// Package configlib loads the run settings, the user vocabulary and the
// filter list from the configuration directory.
package configlib

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"goWordFreq/iolib"
	"goWordFreq/seglib"
	"goWordFreq/stringlib"
)

// ErrConfig marks a missing or malformed configuration, dictionary or filter file
var ErrConfig = errors.New("configuration error")

// File names inside the configuration directory
const (
	SetupFile      = "setup.json"
	DictionaryFile = "dict.txt"
	FilterFile     = "filt.txt"
)

var requiredKeys = []string{"years", "related_top", "related_words"}

// Settings is the immutable configuration of one run
type Settings struct {
	Years        []string
	RelatedTop   int
	RelatedWords []string

	DataDir     string
	TextColumn  int
	HeaderRows  int
	Segmenter   string
	HMM         bool
	CacheTokens bool
	Normalize   stringlib.Normalizer
	PreviewRows int
	// DedupeRelated skips select sweep words already reported by the top sweep
	DedupeRelated bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_dir", "data")
	v.SetDefault("text_column", 2)
	v.SetDefault("header_rows", 1)
	v.SetDefault("segmenter", "gse")
	v.SetDefault("hmm", true)
	v.SetDefault("cache_tokens", true)
	v.SetDefault("normalize.fold_width", false)
	v.SetDefault("normalize.lowercase", false)
	v.SetDefault("normalize.stem", false)
	v.SetDefault("skip_numeric", false)
	v.SetDefault("preview_rows", 20)
	v.SetDefault("dedupe_related", false)
}

// Load reads <dir>/setup.json
func Load(dir string) (*Settings, error) {
	filename := filepath.Join(dir, SetupFile)
	if !iolib.FileExists(filename) {
		return nil, fmt.Errorf("%w: %s not found", ErrConfig, filename)
	}

	v := viper.New()
	v.SetConfigFile(filename)
	v.SetConfigType("json")
	setDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, filename, err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("%w: %s: missing %q", ErrConfig, filename, key)
		}
	}

	s := &Settings{
		Years:        v.GetStringSlice("years"),
		RelatedTop:   v.GetInt("related_top"),
		RelatedWords: v.GetStringSlice("related_words"),

		DataDir:     v.GetString("data_dir"),
		TextColumn:  v.GetInt("text_column"),
		HeaderRows:  v.GetInt("header_rows"),
		Segmenter:   v.GetString("segmenter"),
		HMM:         v.GetBool("hmm"),
		CacheTokens: v.GetBool("cache_tokens"),
		Normalize: stringlib.Normalizer{
			FoldWidth:   v.GetBool("normalize.fold_width"),
			Lowercase:   v.GetBool("normalize.lowercase"),
			Stem:        v.GetBool("normalize.stem"),
			SkipNumeric: v.GetBool("skip_numeric"),
		},
		PreviewRows:   v.GetInt("preview_rows"),
		DedupeRelated: v.GetBool("dedupe_related"),
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfig, filename, err)
	}

	return s, nil
}

func (s *Settings) validate() error {
	if len(s.Years) == 0 {
		return errors.New("years is empty")
	}
	if s.RelatedTop < 0 {
		return fmt.Errorf("related_top must not be negative, got %d", s.RelatedTop)
	}
	if s.TextColumn < 0 {
		return fmt.Errorf("text_column must not be negative, got %d", s.TextColumn)
	}
	if s.HeaderRows < 0 {
		return fmt.Errorf("header_rows must not be negative, got %d", s.HeaderRows)
	}
	return nil
}

// LoadVocabulary reads a user dictionary. Each non-blank line is
// "word [freq] [pos]"; a lone second field that is not a number is a pos tag.
func LoadVocabulary(filename string, logger *zap.Logger) ([]seglib.Entry, error) {
	lines, err := iolib.ReadLines(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: dictionary: %v", ErrConfig, err)
	}

	var vocab []seglib.Entry
	for _, l := range lines {
		if stringlib.IsBlank(l) {
			continue
		}
		fields := strings.Fields(l)
		e := seglib.Entry{Word: fields[0]}
		rest := fields[1:]
		if len(rest) > 0 {
			if f, err := strconv.ParseFloat(rest[0], 64); err == nil {
				e.Freq = f
				rest = rest[1:]
			}
		}
		if len(rest) > 0 {
			e.Pos = rest[0]
		}
		logger.Debug("dictionary word", zap.String("word", e.Word), zap.Float64("freq", e.Freq), zap.String("pos", e.Pos))
		vocab = append(vocab, e)
	}

	return vocab, nil
}

// LoadFilter reads the excluded words, one per line, trimmed. Blank lines are dropped.
func LoadFilter(filename string, logger *zap.Logger) (map[string]struct{}, error) {
	lines, err := iolib.ReadLines(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: filter: %v", ErrConfig, err)
	}

	filter := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if stringlib.IsBlank(l) {
			continue
		}
		w := strings.TrimSpace(l)
		logger.Debug("excluded word", zap.String("word", w))
		filter[w] = struct{}{}
	}

	return filter, nil
}
