// Package iolib provides I/O functions beyond goLang primitives
package iolib

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ssor/bom"
)

/***************************************************************************************************************
****************************************************************************************************************
* I/O functions ************************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

// maxLineBytes bounds a single line of a dictionary or filter file
const maxLineBytes = 1024 * 1024

// FileExists returns true if there is a file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

// ReadLines reads a UTF-8 text file line by line. A leading byte order mark,
// as left by Windows editors, is dropped. Lines are returned untrimmed.
func ReadLines(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r, err := bom.NewReaderWithoutBom(file)
	if err != nil {
		return nil, err
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// OpenExclusive opens filename for reading and writing without truncating it,
// creating it when missing. created reports whether this call created the file.
// On Windows a file held open by a spreadsheet application fails here.
func OpenExclusive(filename string) (f *os.File, created bool, err error) {
	created = !FileExists(filename)
	f, err = os.OpenFile(filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, false, err
	}
	return f, created, nil
}

// IsLocked tells whether err means another process holds the file
func IsLocked(err error) bool {
	return errors.Is(err, fs.ErrPermission) || isSharingViolation(err)
}

// WriteFileAtomic lets write fill a temporary file next to filename, flushes
// it to disk and renames it over filename. On failure filename is left as it
// was and the temporary file is removed.
func WriteFileAtomic(filename string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = write(bw); err != nil {
		return
	}
	if err = bw.Flush(); err != nil {
		return
	}
	if err = tmp.Sync(); err != nil {
		return
	}
	if err = tmp.Chmod(0644); err != nil {
		return
	}
	if err = tmp.Close(); err != nil {
		return
	}
	err = os.Rename(tmp.Name(), filename)
	return
}
