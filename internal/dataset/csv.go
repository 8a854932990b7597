package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// table is a header-mapped CSV reader
type table struct {
	reader  *csv.Reader
	columns map[string]int
	line    int
}

func newTable(r io.Reader, required ...string) (*table, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, expected %s", ErrMissingColumn, strings.Join(required, ", "))
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return &table{reader: reader, columns: columns, line: 1}, nil
}

// next returns the next record or io.EOF
func (t *table) next() ([]string, error) {
	record, err := t.reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read line %d: %w", t.line+1, err)
	}
	t.line++
	return record, nil
}

func (t *table) get(record []string, column string) string {
	i := t.columns[column]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func (t *table) parseError(column, value string, err error) error {
	return &ParseError{Line: t.line, Column: column, Value: value, Err: err}
}
