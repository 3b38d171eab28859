// Package corpuslib reads the yearly shift-log workbooks into sentences and
// keeps them tokenized for the aggregation passes.
package corpuslib

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"goWordFreq/iolib"
	"goWordFreq/seglib"
	"goWordFreq/stringlib"
)

// ErrDataAccess marks a missing or unreadable year workbook
var ErrDataAccess = errors.New("data access error")

// Sentence is one log entry. Month is the 0-based sheet position in its workbook.
type Sentence struct {
	Year  string
	Month int
	Sheet string
	Text  string
}

// Options select the text column of the month sheets
type Options struct {
	// TextColumn is the 0-based column holding the free-text entry
	TextColumn int
	// HeaderRows are skipped at the top of every sheet
	HeaderRows int
	Logger     *zap.Logger
}

// WorkbookName is the file name of a year's shift log
func WorkbookName(year string) string {
	return year + "年值班日志记录表.xlsx"
}

// Load reads every sheet of every year's workbook, in year then sheet then row order
func Load(dataDir string, years []string, opts Options) ([]Sentence, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var sentences []Sentence
	for _, year := range years {
		n := len(sentences)
		var err error
		sentences, err = loadYear(sentences, filepath.Join(dataDir, WorkbookName(year)), year, opts)
		if err != nil {
			return nil, err
		}
		logger.Info("year loaded", zap.String("year", year), zap.Int("entries", len(sentences)-n))
	}

	return sentences, nil
}

func loadYear(dst []Sentence, filename, year string, opts Options) ([]Sentence, error) {
	if !iolib.FileExists(filename) {
		return nil, fmt.Errorf("%w: %s not found", ErrDataAccess, filename)
	}

	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDataAccess, filename, err)
	}
	defer f.Close()

	for month, sheet := range f.GetSheetList() {
		dst, err = readSheet(dst, f, sheet, Sentence{Year: year, Month: month, Sheet: sheet}, opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %s sheet %q: %v", ErrDataAccess, filename, sheet, err)
		}
	}

	return dst, nil
}

func readSheet(dst []Sentence, f *excelize.File, sheet string, proto Sentence, opts Options) ([]Sentence, error) {
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for i := 0; rows.Next(); i++ {
		cols, err := rows.Columns()
		if err != nil {
			return nil, err
		}
		if i < opts.HeaderRows {
			continue
		}
		s := proto
		if opts.TextColumn < len(cols) {
			s.Text = cols[opts.TextColumn]
		}
		dst = append(dst, s)
	}

	return dst, rows.Error()
}

/***************************************************************************************************************
****************************************************************************************************************
* Tokenized corpus *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// Corpus holds every sentence cut into normalized tokens, sentence by sentence
type Corpus struct {
	Sentences []Sentence
	Tokens    [][]string
}

// Tokenize cuts each sentence once. Blank entries produce no tokens.
func Tokenize(sentences []Sentence, seg seglib.Segmenter, norm stringlib.Normalizer) *Corpus {
	c := &Corpus{
		Sentences: sentences,
		Tokens:    make([][]string, len(sentences)),
	}
	for i, s := range sentences {
		if s.Text == "" {
			continue
		}
		c.Tokens[i] = norm.Apply(seg.Cut(s.Text))
	}
	return c
}

// NumTokens returns the number of tokens over all sentences
func (c *Corpus) NumTokens() int {
	n := 0
	for _, tokens := range c.Tokens {
		n += len(tokens)
	}
	return n
}
