// Package reportlib writes frequency tables as sheets of one workbook.
//
// The output file is claimed when the Writer is opened, before any input is
// read, and only written once, by Save, which renames a complete temporary
// file over it. A run that fails leaves an existing report untouched and no
// new file behind.
package reportlib

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/xuri/excelize/v2"

	"goWordFreq/freqlib"
	"goWordFreq/iolib"
)

// ErrOutputLocked means the output file is open in another program
var ErrOutputLocked = errors.New("output file is locked")

// Column headers of every sheet
const (
	WordHeader  = "词语"
	CountHeader = "计数"
)

const (
	maxSheetName = 31
	defaultSheet = "Sheet1"
)

// Opener claims a file for writing. It reports whether the file was created.
type Opener func(name string) (f *os.File, created bool, err error)

type sheet struct {
	name  string
	table freqlib.Table
}

// Writer accumulates sheets in memory
type Writer struct {
	path    string
	out     *os.File
	created bool
	sheets  []sheet
}

// Open claims path for writing
func Open(path string) (*Writer, error) {
	return OpenWith(path, iolib.OpenExclusive)
}

// OpenWith claims path with open
func OpenWith(path string, open Opener) (*Writer, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	out, created, err := open(abs)
	if err != nil {
		if iolib.IsLocked(err) {
			return nil, fmt.Errorf("%w: Close the %s file first.", ErrOutputLocked, filepath.Base(path))
		}
		return nil, fmt.Errorf("opening %s: %w", abs, err)
	}

	return &Writer{
		path:    abs,
		out:     out,
		created: created,
	}, nil
}

// Path returns the absolute output path
func (w *Writer) Path() string {
	return w.path
}

// Sheets returns the sheet names written so far, in order
func (w *Writer) Sheets() []string {
	names := make([]string, len(w.sheets))
	for i, s := range w.sheets {
		names[i] = s.name
	}
	return names
}

// SheetName makes name acceptable to spreadsheet applications: no []:*?/\
// and at most 31 characters.
func SheetName(name string) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, name)
	name = strings.Trim(name, "'")
	name = truncate(name, maxSheetName)
	if name == "" {
		name = "_"
	}
	return name
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		return string([]rune(s)[:n])
	}
	return s
}

// AddSheet adds table as a sheet. A sheet of exactly the same name is
// replaced in place. Sheet names are compared without case by spreadsheet
// applications, so a name differing only in case gets a numeric suffix:
// top_ups after top_UPS becomes top_ups1.
func (w *Writer) AddSheet(name string, table freqlib.Table) error {
	name = SheetName(name)
	for i := range w.sheets {
		if w.sheets[i].name == name {
			w.sheets[i].table = table
			return nil
		}
	}
	w.sheets = append(w.sheets, sheet{name: w.uniqueName(name), table: table})
	return nil
}

func (w *Writer) uniqueName(name string) string {
	if !w.taken(name) {
		return name
	}
	for n := 1; ; n++ {
		suffix := strconv.Itoa(n)
		candidate := truncate(name, maxSheetName-len(suffix)) + suffix
		if !w.taken(candidate) {
			return candidate
		}
	}
}

func (w *Writer) taken(name string) bool {
	for _, s := range w.sheets {
		if strings.EqualFold(s.name, name) {
			return true
		}
	}
	return false
}

// Save writes the workbook over the claimed file and releases it. It
// returns the absolute output path. The file is replaced only once the new
// workbook is complete on disk.
func (w *Writer) Save() (string, error) {
	book, err := w.build()
	if err != nil {
		w.Abort()
		return "", err
	}
	defer book.Close()

	w.out.Close()
	err = iolib.WriteFileAtomic(w.path, func(dst io.Writer) error {
		_, err := book.WriteTo(dst)
		return err
	})
	if err != nil {
		if w.created {
			os.Remove(w.path)
		}
		return "", fmt.Errorf("writing %s: %w", w.path, err)
	}
	return w.path, nil
}

// build lays the sheets out in a new workbook. The first sheet takes over
// the placeholder sheet of the new workbook.
func (w *Writer) build() (*excelize.File, error) {
	book := excelize.NewFile()
	for i, s := range w.sheets {
		var err error
		if i == 0 {
			err = book.SetSheetName(defaultSheet, s.name)
		} else {
			_, err = book.NewSheet(s.name)
		}
		if err == nil {
			err = writeTable(book, s.name, s.table)
		}
		if err != nil {
			book.Close()
			return nil, fmt.Errorf("sheet %q: %w", s.name, err)
		}
	}
	book.SetActiveSheet(0)
	return book, nil
}

func writeTable(book *excelize.File, name string, table freqlib.Table) error {
	sw, err := book.NewStreamWriter(name)
	if err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{WordHeader, CountHeader}); err != nil {
		return err
	}
	for i, e := range table {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{e.Word, e.Count}); err != nil {
			return err
		}
	}
	return sw.Flush()
}

// Abort releases the output without writing it. A file created by Open is removed.
func (w *Writer) Abort() {
	w.out.Close()
	if w.created {
		os.Remove(w.path)
	}
}

// Preview prints the first n rows of table as a console table
func Preview(out io.Writer, table freqlib.Table, n int) {
	if n <= 0 || len(table) == 0 {
		return
	}
	if n > len(table) {
		n = len(table)
	}
	tw := tablewriter.NewWriter(out)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"#", WordHeader, CountHeader})
	for i, e := range table[:n] {
		tw.Append([]string{strconv.Itoa(i + 1), e.Word, strconv.Itoa(e.Count)})
	}
	tw.Render()
}
