package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/BarkinBalci/donation-session-service/internal/dataset"
	"github.com/BarkinBalci/donation-session-service/internal/domain"
)

// Writer is a SessionRowWriter backed by a CSV stream
type Writer struct {
	mu       sync.Mutex
	csv      *csv.Writer
	closer   io.Closer
	rowCount int
	log      *zap.Logger

	// set by Create: rows go to tmpPath until Commit renames it to path
	path    string
	tmpPath string
	closed  bool
}

// NewWriter writes the session table header to w and returns a writer for its rows
func NewWriter(w io.Writer, log *zap.Logger) (*Writer, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(dataset.SessionRowHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	writer := &Writer{csv: cw, log: log}
	if c, ok := w.(io.Closer); ok {
		writer.closer = c
	}
	return writer, nil
}

// Create returns a writer for path. Rows are staged in a temporary file in the
// same directory; path only appears once Commit succeeds.
func Create(path string, log *zap.Logger) (*Writer, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	w, err := NewWriter(f, log)
	if err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, err
	}
	w.path = path
	w.tmpPath = f.Name()

	log.Info("Writing session table", zap.String("path", path))
	return w, nil
}

// InsertBatch appends rows and flushes them to the underlying stream
func (w *Writer) InsertBatch(_ context.Context, rows []domain.SessionRow) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, row := range rows {
		if err := w.csv.Write(dataset.EncodeSessionRow(row)); err != nil {
			return 0, fmt.Errorf("failed to write session row: %w", err)
		}
	}

	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return 0, fmt.Errorf("failed to flush session rows: %w", err)
	}

	w.rowCount += len(rows)
	return len(rows), nil
}

// RowCount returns the number of rows written so far
func (w *Writer) RowCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rowCount
}

// Close flushes pending output and closes the stream if it is closable.
// For a writer from Create it behaves like Abort.
func (w *Writer) Close() error {
	w.mu.Lock()
	if w.tmpPath != "" {
		w.mu.Unlock()
		return w.Abort()
	}
	defer w.mu.Unlock()
	return w.closeLocked()
}

// Commit publishes a writer from Create at its final path
func (w *Writer) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tmpPath == "" {
		return fmt.Errorf("writer has no staged file to commit")
	}
	if err := w.closeLocked(); err != nil {
		_ = os.Remove(w.tmpPath)
		return err
	}
	if err := os.Chmod(w.tmpPath, 0o644); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("failed to set session table permissions: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("failed to move session table into place: %w", err)
	}

	w.log.Info("Session table written", zap.String("path", w.path), zap.Int("row_count", w.rowCount))
	w.tmpPath = ""
	return nil
}

// Abort discards a writer from Create, leaving any existing file at path untouched
func (w *Writer) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.tmpPath == "" {
		return nil
	}
	_ = w.closeLocked()
	err := os.Remove(w.tmpPath)
	w.tmpPath = ""
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove staged session table: %w", err)
	}
	return nil
}

func (w *Writer) closeLocked() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.csv.Flush()
	flushErr := w.csv.Error()
	var closeErr error
	if w.closer != nil {
		closeErr = w.closer.Close()
	}
	if flushErr != nil {
		return fmt.Errorf("failed to flush session rows: %w", flushErr)
	}
	return closeErr
}

// WriteFile writes rows to path as a complete session table
func WriteFile(ctx context.Context, path string, rows []domain.SessionRow, log *zap.Logger) error {
	w, err := Create(path, log)
	if err != nil {
		return err
	}

	if _, err := w.InsertBatch(ctx, rows); err != nil {
		_ = w.Abort()
		return err
	}
	return w.Commit()
}
