// Package writer appends dataset rows to a CSV file one record at a time,
// guaranteeing a single header line and durability after every row.
package writer

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// Writer holds an exclusively locked append handle on the output file for
// the lifetime of a run.
type Writer struct {
	file *os.File
	csv  *csv.Writer
}

// Open opens the target in append-create mode and takes an exclusive lock
// so a second generator on the same path fails fast instead of interleaving
// rows. The caller must Close the writer on every exit path.
func Open(path string) (*Writer, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %v", err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %v", err)
	}

	if err := lockFile(file); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to lock file: %v", err)
	}

	return &Writer{
		file: file,
		csv:  csv.NewWriter(file),
	}, nil
}

// EnsureHeader writes the header line if the file is new or empty. On a
// non-empty file it validates the existing first line instead, so re-running
// against the same output keeps appending to a consistent schema without
// ever duplicating the header.
func (w *Writer) EnsureHeader(header []string) error {
	stat, err := w.file.Stat()
	if err != nil {
		return err
	}

	if stat.Size() == 0 {
		if err := w.csv.Write(header); err != nil {
			return err
		}
		w.csv.Flush()
		if err := w.csv.Error(); err != nil {
			return err
		}
		return w.file.Sync()
	}

	// Existing file: seek moves only the read pointer, O_APPEND forces the
	// write position to the end regardless.
	if _, err := w.file.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek: %v", err)
	}

	reader := csv.NewReader(w.file)
	existing, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read existing headers: %v", err)
	}

	if !reflect.DeepEqual(existing, header) {
		return fmt.Errorf("header mismatch. File: %v, New: %v", existing, header)
	}

	return nil
}

// Append serializes one record in header order and forces it to disk before
// returning, so an interrupted run loses at most the in-flight row.
func (w *Writer) Append(record []string) error {
	if err := w.csv.Write(record); err != nil {
		return err
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return err
	}
	return w.file.Sync()
}

// Close releases the lock and the underlying handle. Rows already appended
// remain durable.
func (w *Writer) Close() error {
	unlockFile(w.file)
	return w.file.Close()
}
